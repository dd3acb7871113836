package consult

import (
	"fmt"
	"strings"

	"github.com/aretw0/labscout/pkg/domain"
)

// NoMatchPrefix starts every no-match report, so string-only consumers can
// branch without parsing prose. Structured consumers should branch on
// MatchResult.Matched instead.
const NoMatchPrefix = "No pre-built solution:"

// RenderTriage formats the triage outcome as a markdown report.
//
// On a match it produces a header restating the intake verbatim, one block
// per matched solution in catalog (ranking) order, and a closing invitation.
// On a miss it produces a single acknowledgment sentence naming the
// normalized domain key. Rendering is deterministic and performs no I/O.
func RenderTriage(record domain.TriageRecord, result domain.MatchResult) string {
	if !result.Matched() {
		return fmt.Sprintf("%s your need for '%s' is understood, but the knowledge base has no pre-built solution for that domain.",
			NoMatchPrefix, result.DomainKey)
	}

	var b strings.Builder
	b.WriteString("## Solution Proposal\n\n")
	fmt.Fprintf(&b, "Based on your bottleneck with **%s** (processing **%d samples/day** using a '%s' process), the following automation solutions were identified in the URS knowledge base:\n\n",
		result.DomainKey, record.SamplesPerDay, record.CurrentProcess)
	if record.Budget != "" {
		fmt.Fprintf(&b, "Stated budget: %s\n\n", record.Budget)
	}

	for _, sol := range result.Solutions {
		fmt.Fprintf(&b, "### Recommended Solution: %s\n\n", sol.Name)
		fmt.Fprintf(&b, "**What it does:** %s\n\n", sol.Description)
		fmt.Fprintf(&b, "**Estimated Budget:** %s\n\n", sol.BudgetRange)
		b.WriteString("**Key Requirements:**\n")
		for _, req := range sol.KeyRequirements {
			fmt.Fprintf(&b, "* %s\n", req)
		}
		if len(sol.VendorHints) > 0 {
			b.WriteString("\n**Example Vendors:**\n")
			for _, vendor := range sol.VendorHints {
				fmt.Fprintf(&b, "* %s\n", vendor)
			}
		}
		b.WriteString("\n---\n\n")
	}

	b.WriteString("This proposal is a starting point. We can now dive deeper into specific products.\n")
	return b.String()
}

// Section titles of the specification document, in their fixed 1-8 order.
var specSections = []string{
	"Project Scope",
	"Throughput",
	"Weighing Specifications",
	"Categories of Chemicals",
	"Labware",
	"Identification & Labeling",
	"Input/Output Data",
	"Workflows / Use Cases",
}

// RenderSpecification formats a station-specification record as a markdown
// URS draft with eight numbered sections in fixed order. Every input field
// appears exactly once; scalars render as a single bullet, lists as one
// bullet per element in input order. The transform is total and idempotent.
func RenderSpecification(record domain.StationSpecRecord) string {
	var b strings.Builder
	b.WriteString("## Draft User Requirements Specification: Automated Weighing Station\n\n")
	b.WriteString("Based on the intake interview, the following requirements specification has been drafted.\n\n")

	scalar := func(index int, value string) {
		fmt.Fprintf(&b, "### %d. %s\n\n", index+1, specSections[index])
		fmt.Fprintf(&b, "* %s\n\n", value)
	}
	list := func(index int, lead string, values []string) {
		fmt.Fprintf(&b, "### %d. %s\n\n", index+1, specSections[index])
		b.WriteString(lead + "\n")
		for _, value := range values {
			fmt.Fprintf(&b, "* %s\n", value)
		}
		b.WriteString("\n")
	}

	scalar(0, record.ProjectScope)
	scalar(1, record.Throughput)
	scalar(2, record.WeighingSpecs)
	list(3, "The system must handle:", record.ChemicalTypes)
	list(4, "The system must handle:", record.LabwareContainers)
	scalar(5, record.IdentificationLabeling)
	scalar(6, record.DataHandling)
	list(7, "The system must support:", record.WorkflowUseCases)

	b.WriteString("---\n")
	b.WriteString("This draft can now be used for the solution-finding phase.\n")
	return b.String()
}
