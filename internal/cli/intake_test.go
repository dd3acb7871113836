package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/labscout"
	"github.com/aretw0/labscout/pkg/adapters/memory"
	"github.com/aretw0/labscout/pkg/consult"
	"github.com/aretw0/labscout/pkg/session"
)

func newInterviewer(script string) (*Interviewer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	sessions := session.NewManager(memory.NewStore())
	return NewInterviewer(labscout.New(), sessions, strings.NewReader(script), out), out
}

func TestRunTriage_Matched(t *testing.T) {
	script := "weighing\n84\nmanual weighing with a spatula\n\n"
	i, out := newInterviewer(script)

	report, err := i.RunTriage(context.Background(), "cli-test")
	if err != nil {
		t.Fatalf("RunTriage() error = %v", err)
	}
	if !strings.Contains(report, "Automated Weighing Station (URS APL01)") {
		t.Errorf("report missing catalog solution:\n%s", report)
	}
	if !strings.Contains(out.String(), report) {
		t.Error("report was not printed to the output stream")
	}
}

func TestRunTriage_BudgetCanBeSkipped(t *testing.T) {
	script := "weighing\n10\nmanual\n\n"
	i, _ := newInterviewer(script)

	report, err := i.RunTriage(context.Background(), "cli-test")
	if err != nil {
		t.Fatalf("RunTriage() error = %v", err)
	}
	if strings.Contains(report, "Stated budget") {
		t.Errorf("skipped budget should not appear in the report:\n%s", report)
	}
}

func TestRunTriage_RepromptsOnBadNumber(t *testing.T) {
	// "lots" and "-4" are rejected, "84" is accepted.
	script := "weighing\nlots\n-4\n84\nmanual weighing\nunder 100k\n"
	i, out := newInterviewer(script)

	report, err := i.RunTriage(context.Background(), "cli-test")
	if err != nil {
		t.Fatalf("RunTriage() error = %v", err)
	}
	if !strings.Contains(out.String(), ">>>") {
		t.Error("expected a system message for the rejected answers")
	}
	if !strings.Contains(report, "84 samples/day") {
		t.Errorf("report should carry the accepted count:\n%s", report)
	}
	if !strings.Contains(report, "under 100k") {
		t.Errorf("report should carry the budget:\n%s", report)
	}
}

func TestRunTriage_NoMatchStillProducesReport(t *testing.T) {
	script := "data analysis\n10\nspreadsheets\n\n"
	i, _ := newInterviewer(script)

	report, err := i.RunTriage(context.Background(), "cli-test")
	if err != nil {
		t.Fatalf("RunTriage() error = %v", err)
	}
	if !strings.HasPrefix(report, consult.NoMatchPrefix) {
		t.Errorf("expected a no-match report, got:\n%s", report)
	}
}

func TestRunTriage_InputClosed(t *testing.T) {
	i, _ := newInterviewer("weighing\n")

	if _, err := i.RunTriage(context.Background(), "cli-test"); err != ErrInputClosed {
		t.Fatalf("error = %v, want ErrInputClosed", err)
	}
}

func TestRunSpecification(t *testing.T) {
	script := strings.Join([]string{
		"Automate weighing of solids and liquids",
		"84 compounds per day",
		"0.2mg - 100g with 0.1mg precision",
		"free-flowing powder, flakes",
		"Sigma-Aldrich bottles, 8ml vials",
		"read source barcodes, print vial barcodes",
		"CSV/XML worklists, export all weights",
		"one-to-many, many-to-one",
	}, "\n") + "\n"
	i, _ := newInterviewer(script)

	report, err := i.RunSpecification(context.Background(), "cli-test")
	if err != nil {
		t.Fatalf("RunSpecification() error = %v", err)
	}
	for _, want := range []string{
		"### 1. Project Scope",
		"### 8. Workflows / Use Cases",
		"* free-flowing powder",
		"* one-to-many",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestRunSpecification_RepromptsOnEmptyList(t *testing.T) {
	script := strings.Join([]string{
		"Automate weighing",
		"84 compounds per day",
		"0.2mg - 100g",
		"   ,  ", // rejected: no usable entries
		"powder",
		"8ml vials",
		"barcodes both directions",
		"CSV worklists",
		"one-to-many",
	}, "\n") + "\n"
	i, out := newInterviewer(script)

	report, err := i.RunSpecification(context.Background(), "cli-test")
	if err != nil {
		t.Fatalf("RunSpecification() error = %v", err)
	}
	if !strings.Contains(out.String(), ">>>") {
		t.Error("expected a system message for the rejected list")
	}
	if !strings.Contains(report, "* powder") {
		t.Errorf("report missing the accepted list entry:\n%s", report)
	}
}

func TestParseAnswerListTrimsEntries(t *testing.T) {
	value, err := parseAnswer(Question{kind: kindList}, " powder ,  flakes ,, ")
	if err != nil {
		t.Fatalf("parseAnswer() error = %v", err)
	}
	items, ok := value.([]string)
	if !ok {
		t.Fatalf("value = %T, want []string", value)
	}
	if len(items) != 2 || items[0] != "powder" || items[1] != "flakes" {
		t.Errorf("items = %v", items)
	}
}
