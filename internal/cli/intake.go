// Package cli runs the interactive intake interviews on a terminal. It is a
// plain scripted dialogue driver: it asks the flow's questions in order,
// records each reply in a session, and hands the completed session to the
// core for construction and rendering.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/labscout"
	"github.com/aretw0/labscout/pkg/domain"
	"github.com/aretw0/labscout/pkg/ports"
	"github.com/aretw0/labscout/pkg/schema"
	"github.com/aretw0/labscout/pkg/session"
)

// ErrInputClosed is returned when stdin ends before the interview does.
var ErrInputClosed = errors.New("input closed before the interview finished")

type answerKind int

const (
	kindText answerKind = iota
	kindOptionalText
	kindInt
	kindList
)

// Question is one scripted interview step.
type Question struct {
	Field  string
	Prompt string
	kind   answerKind
}

// TriageQuestions returns the coarse bottleneck interview script.
func TriageQuestions() []Question {
	return []Question{
		{domain.FieldProblemDomain, "What is the main lab bottleneck you want to automate? (e.g. 'weighing', 'sample handling logistics')", kindText},
		{domain.FieldSamplesPerDay, "How many samples do you need to process per day?", kindInt},
		{domain.FieldCurrentProcess, "Briefly describe the current manual process.", kindText},
		{domain.FieldBudget, "What is your estimated budget? (e.g. 'under 100k'; press Enter to skip)", kindOptionalText},
	}
}

// SpecificationQuestions returns the weighing-station interview script.
func SpecificationQuestions() []Question {
	return []Question{
		{domain.FieldProjectScope, "What does this station need to do, in one or two sentences?", kindText},
		{domain.FieldThroughput, "What throughput is required? (e.g. 'one campaign of 84 compounds per day')", kindText},
		{domain.FieldWeighingSpecs, "What weighing range and precision are required? (e.g. '0.2mg - 100g with 0.1mg precision')", kindText},
		{domain.FieldChemicalTypes, "Which chemical categories must be handled? (comma-separated, e.g. 'free-flowing powder, flakes, liquids')", kindList},
		{domain.FieldLabwareContainers, "Which source and destination containers are used? (comma-separated)", kindList},
		{domain.FieldIdentificationLabeling, "What are the barcode and labeling requirements?", kindText},
		{domain.FieldDataHandling, "How should the system import worklists and export results? (e.g. 'CSV/XML worklists, export all weights')", kindText},
		{domain.FieldWorkflowUseCases, "Which weighing workflows are needed? (comma-separated, e.g. 'one-to-many, many-to-one')", kindList},
	}
}

// Interviewer drives an intake interview over a line-based reader/writer pair.
type Interviewer struct {
	consultant *labscout.Consultant
	sessions   *session.Manager
	scanner    *bufio.Scanner
	out        io.Writer
	render     func(string) (string, error)
}

// Option configures the Interviewer.
type Option func(*Interviewer)

// WithRenderer post-processes the final report before printing, typically
// with the glamour terminal renderer.
func WithRenderer(render func(string) (string, error)) Option {
	return func(i *Interviewer) {
		i.render = render
	}
}

// NewInterviewer wires an interview over the given streams.
func NewInterviewer(consultant *labscout.Consultant, sessions *session.Manager, in io.Reader, out io.Writer, opts ...Option) *Interviewer {
	i := &Interviewer{
		consultant: consultant,
		sessions:   sessions,
		scanner:    bufio.NewScanner(in),
		out:        out,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// RunTriage runs the bottleneck interview, then matches the completed record
// against the catalog and prints the proposal. The raw report is returned for
// archiving.
func (i *Interviewer) RunTriage(ctx context.Context, sessionID string) (string, error) {
	record, err := completeInterview(ctx, i, sessionID, session.FlowTriage, TriageQuestions(), i.sessions.CompleteTriage)
	if err != nil {
		return "", err
	}
	report := i.consultant.MatchAndRender(record)
	if err := i.printReport(report); err != nil {
		return "", err
	}
	i.archive(ctx, sessionID, labscout.FlowTriage, report)
	return report, nil
}

// RunSpecification runs the weighing-station interview and prints the drafted
// requirements document.
func (i *Interviewer) RunSpecification(ctx context.Context, sessionID string) (string, error) {
	record, err := completeInterview(ctx, i, sessionID, session.FlowSpecification, SpecificationQuestions(), i.sessions.CompleteSpecification)
	if err != nil {
		return "", err
	}
	report := i.consultant.RenderSpecification(record)
	if err := i.printReport(report); err != nil {
		return "", err
	}
	i.archive(ctx, sessionID, labscout.FlowSpecification, report)
	return report, nil
}

// completeInterview asks every question, then tries to complete the session.
// A failed completion keeps the session, so only the rejected fields are asked
// again before retrying.
func completeInterview[R any](
	ctx context.Context,
	i *Interviewer,
	sessionID string,
	flow session.Flow,
	questions []Question,
	complete func(context.Context, string) (R, error),
) (R, error) {
	var zero R

	byField := make(map[string]Question, len(questions))
	for _, q := range questions {
		byField[q.Field] = q
	}

	for _, q := range questions {
		if err := i.ask(ctx, sessionID, flow, q); err != nil {
			return zero, err
		}
	}

	for {
		record, err := complete(ctx, sessionID)
		if err == nil {
			return record, nil
		}
		fieldErrs := schema.ValidationErrors(err)
		if len(fieldErrs) == 0 {
			return zero, err
		}
		for _, fieldErr := range fieldErrs {
			var v *schema.ValidationError
			if !errors.As(fieldErr, &v) {
				continue
			}
			q, ok := byField[v.Key]
			if !ok {
				return zero, err
			}
			printSystemMessage(i.out, "'%s' was not accepted: %s", v.Key, v.Reason)
			if err := i.ask(ctx, sessionID, flow, q); err != nil {
				return zero, err
			}
		}
	}
}

// ask prompts for one field until the reply passes field validation.
func (i *Interviewer) ask(ctx context.Context, sessionID string, flow session.Flow, q Question) error {
	for {
		fmt.Fprintf(i.out, "%s\n> ", q.Prompt)
		if !i.scanner.Scan() {
			if err := i.scanner.Err(); err != nil {
				return err
			}
			return ErrInputClosed
		}
		raw := strings.TrimSpace(i.scanner.Text())

		value, err := parseAnswer(q, raw)
		if err != nil {
			printSystemMessage(i.out, "%s", err)
			continue
		}
		if value == nil {
			// Optional question skipped.
			return nil
		}

		if err := i.sessions.Answer(ctx, sessionID, flow, q.Field, value); err != nil {
			if schema.IsValidation(err) {
				printSystemMessage(i.out, "%s", err)
				continue
			}
			return err
		}
		return nil
	}
}

func parseAnswer(q Question, raw string) (any, error) {
	switch q.kind {
	case kindOptionalText:
		if raw == "" {
			return nil, nil
		}
		return raw, nil
	case kindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("please enter a whole number")
		}
		return n, nil
	case kindList:
		items := make([]string, 0)
		for _, part := range strings.Split(raw, ",") {
			if item := strings.TrimSpace(part); item != "" {
				items = append(items, item)
			}
		}
		return items, nil
	default:
		return raw, nil
	}
}

func (i *Interviewer) printReport(report string) error {
	out := report
	if i.render != nil {
		rendered, err := i.render(report)
		if err == nil {
			out = rendered
		}
	}
	_, err := fmt.Fprintln(i.out, out)
	return err
}

func (i *Interviewer) archive(ctx context.Context, sessionID, flow, report string) {
	err := i.consultant.ArchiveReport(ctx, ports.ArchivedReport{ID: sessionID, Flow: flow, Content: report})
	if err != nil {
		printSystemMessage(i.out, "report could not be archived: %v", err)
	}
}
