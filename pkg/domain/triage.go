package domain

import (
	"github.com/aretw0/labscout/pkg/schema"
)

// Field keys shared by the triage construction gate, the session layer and
// the transport adapters. They mirror the wire names of the intake tools.
const (
	FieldProblemDomain  = "problem_domain"
	FieldSamplesPerDay  = "samples_per_day"
	FieldCurrentProcess = "current_process"
	FieldBudget         = "budget"
)

// TriageRecord is the coarse intake: enough to look the bottleneck up in the
// catalog. Construct via NewTriageRecord; fields are not mutated afterwards.
type TriageRecord struct {
	// ProblemDomain is the free-text bottleneck label as the user gave it,
	// e.g. "Weighing". Normalization happens at match time, not here.
	ProblemDomain string `json:"problem_domain"`

	// SamplesPerDay is the required daily throughput. Never negative.
	SamplesPerDay int `json:"samples_per_day"`

	// CurrentProcess describes the manual process being replaced, verbatim.
	CurrentProcess string `json:"current_process"`

	// Budget is the user's estimated budget; optional, may be empty.
	Budget string `json:"budget,omitempty"`
}

// TriageSchema returns the validation schema for the triage intake.
func TriageSchema() schema.Schema {
	return schema.Schema{
		FieldProblemDomain:  schema.NonEmptyString(),
		FieldSamplesPerDay:  schema.NonNegativeInt(),
		FieldCurrentProcess: schema.NonEmptyString(),
		FieldBudget:         schema.String(),
	}
}

// NewTriageRecord is the single validation gate for triage intakes.
// Required fields must be non-empty and samplesPerDay must not be negative;
// otherwise a *schema.AggregateError is returned and no record exists.
func NewTriageRecord(problemDomain string, samplesPerDay int, currentProcess, budget string) (TriageRecord, error) {
	data := map[string]any{
		FieldProblemDomain:  problemDomain,
		FieldSamplesPerDay:  samplesPerDay,
		FieldCurrentProcess: currentProcess,
		FieldBudget:         budget,
	}
	if err := schema.Validate(TriageSchema(), data); err != nil {
		return TriageRecord{}, err
	}
	return TriageRecord{
		ProblemDomain:  problemDomain,
		SamplesPerDay:  samplesPerDay,
		CurrentProcess: currentProcess,
		Budget:         budget,
	}, nil
}

// NewTriageRecordFromMap builds a TriageRecord from a raw answer map, as
// accumulated by a session or decoded from a tool call. The budget field is
// optional: an absent key means no budget was stated, but a present value of
// the wrong type is rejected like any other.
func NewTriageRecordFromMap(answers map[string]any) (TriageRecord, error) {
	data := make(map[string]any, 4)
	for _, key := range []string{FieldProblemDomain, FieldSamplesPerDay, FieldCurrentProcess, FieldBudget} {
		if value, ok := answers[key]; ok {
			data[key] = value
		}
	}
	if _, ok := data[FieldBudget]; !ok {
		data[FieldBudget] = ""
	}
	if err := schema.Validate(TriageSchema(), data); err != nil {
		return TriageRecord{}, err
	}
	domainLabel, _ := data[FieldProblemDomain].(string)
	process, _ := data[FieldCurrentProcess].(string)
	budget, _ := data[FieldBudget].(string)
	return TriageRecord{
		ProblemDomain:  domainLabel,
		SamplesPerDay:  toInt(data[FieldSamplesPerDay]),
		CurrentProcess: process,
		Budget:         budget,
	}, nil
}

func toInt(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
