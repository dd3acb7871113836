package domain

import (
	"fmt"

	"github.com/aretw0/labscout/pkg/schema"
)

// Field keys for the station-specification intake.
const (
	FieldProjectScope           = "project_scope"
	FieldThroughput             = "throughput"
	FieldWeighingSpecs          = "weighing_specs"
	FieldChemicalTypes          = "chemical_types"
	FieldLabwareContainers      = "labware_containers"
	FieldIdentificationLabeling = "identification_labeling"
	FieldDataHandling           = "data_handling"
	FieldWorkflowUseCases       = "workflow_use_cases"
)

// StationSpecRecord is the detailed intake used by the specification flow:
// the eight answers needed to draft a user requirements specification for an
// automated weighing station. All eight fields are supplied together at
// construction; there is no piecemeal accretion.
type StationSpecRecord struct {
	// ProjectScope summarizes what the station needs to do.
	ProjectScope string `json:"project_scope"`

	// Throughput states the required capacity, e.g. "84 compounds per day".
	Throughput string `json:"throughput"`

	// WeighingSpecs states range and precision, e.g. "0.2mg - 100g".
	WeighingSpecs string `json:"weighing_specs"`

	// ChemicalTypes lists the chemical categories handled, in input order.
	ChemicalTypes []string `json:"chemical_types"`

	// LabwareContainers lists source and destination containers.
	LabwareContainers []string `json:"labware_containers"`

	// IdentificationLabeling states barcode and labeling requirements.
	IdentificationLabeling string `json:"identification_labeling"`

	// DataHandling states import/export requirements, e.g. "CSV worklists".
	DataHandling string `json:"data_handling"`

	// WorkflowUseCases lists the weighing workflows, e.g. "one-to-many".
	WorkflowUseCases []string `json:"workflow_use_cases"`
}

// StationSpecSchema returns the validation schema for the specification
// intake. Scalars must be non-empty; lists must carry at least one entry.
func StationSpecSchema() schema.Schema {
	return schema.Schema{
		FieldProjectScope:           schema.NonEmptyString(),
		FieldThroughput:             schema.NonEmptyString(),
		FieldWeighingSpecs:          schema.NonEmptyString(),
		FieldChemicalTypes:          schema.StringList(),
		FieldLabwareContainers:      schema.StringList(),
		FieldIdentificationLabeling: schema.NonEmptyString(),
		FieldDataHandling:           schema.NonEmptyString(),
		FieldWorkflowUseCases:       schema.StringList(),
	}
}

// NewStationSpecRecord is the single validation gate for specification
// intakes. All eight fields are validated together; on failure a
// *schema.AggregateError names every offending field and no record exists.
// List arguments are copied, so the caller keeps no handle into the record.
func NewStationSpecRecord(
	projectScope string,
	throughput string,
	weighingSpecs string,
	chemicalTypes []string,
	labwareContainers []string,
	identificationLabeling string,
	dataHandling string,
	workflowUseCases []string,
) (StationSpecRecord, error) {
	data := map[string]any{
		FieldProjectScope:           projectScope,
		FieldThroughput:             throughput,
		FieldWeighingSpecs:          weighingSpecs,
		FieldChemicalTypes:          chemicalTypes,
		FieldLabwareContainers:      labwareContainers,
		FieldIdentificationLabeling: identificationLabeling,
		FieldDataHandling:           dataHandling,
		FieldWorkflowUseCases:       workflowUseCases,
	}
	if err := schema.Validate(StationSpecSchema(), data); err != nil {
		return StationSpecRecord{}, err
	}
	return StationSpecRecord{
		ProjectScope:           projectScope,
		Throughput:             throughput,
		WeighingSpecs:          weighingSpecs,
		ChemicalTypes:          copyList(chemicalTypes),
		LabwareContainers:      copyList(labwareContainers),
		IdentificationLabeling: identificationLabeling,
		DataHandling:           dataHandling,
		WorkflowUseCases:       copyList(workflowUseCases),
	}, nil
}

// NewStationSpecRecordFromMap builds a StationSpecRecord from a raw answer
// map, as accumulated by a session or decoded from a tool call.
func NewStationSpecRecordFromMap(answers map[string]any) (StationSpecRecord, error) {
	if err := schema.Validate(StationSpecSchema(), answers); err != nil {
		return StationSpecRecord{}, err
	}
	scope, _ := answers[FieldProjectScope].(string)
	throughput, _ := answers[FieldThroughput].(string)
	weighing, _ := answers[FieldWeighingSpecs].(string)
	identification, _ := answers[FieldIdentificationLabeling].(string)
	dataHandling, _ := answers[FieldDataHandling].(string)
	chemicals, err := listField(answers, FieldChemicalTypes)
	if err != nil {
		return StationSpecRecord{}, err
	}
	labware, err := listField(answers, FieldLabwareContainers)
	if err != nil {
		return StationSpecRecord{}, err
	}
	workflows, err := listField(answers, FieldWorkflowUseCases)
	if err != nil {
		return StationSpecRecord{}, err
	}
	return StationSpecRecord{
		ProjectScope:           scope,
		Throughput:             throughput,
		WeighingSpecs:          weighing,
		ChemicalTypes:          chemicals,
		LabwareContainers:      labware,
		IdentificationLabeling: identification,
		DataHandling:           dataHandling,
		WorkflowUseCases:       workflows,
	}, nil
}

func copyList(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// toList converts an answer into a fresh []string. Unlike the schema types it
// never coerces: a list carrying a non-string element is an error, not a
// shorter list.
func toList(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return copyList(v), nil
	case []any:
		out := make([]string, 0, len(v))
		for i, raw := range v {
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("entry %d: expected string, got %T", i+1, raw)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected list of strings, got %T", value)
}

func listField(answers map[string]any, key string) ([]string, error) {
	items, err := toList(answers[key])
	if err != nil {
		return nil, &schema.ValidationError{Key: key, Reason: err.Error(), Value: answers[key]}
	}
	return items, nil
}
