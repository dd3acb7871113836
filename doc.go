/*
Package labscout is the core of a lab-automation intake consultant: it turns
a completed requirements intake into a recommendation or a drafted
specification document.

The package deliberately contains no dialogue logic. An external dialogue
driver — an LLM agent speaking MCP, an HTTP client, or the interactive CLI —
decides what to ask and when the intake is complete, then calls into the
core with a fully-populated record:

  - Construct a record (the single validation gate): ConstructTriage or
    ConstructSpecification. Construction is all-or-nothing; a validation
    failure means no record exists and the driver should re-prompt.
  - Hand the record back: MatchAndRender looks the triage bottleneck up in
    the compiled-in catalog and renders a solution proposal;
    RenderSpecification renders an eight-section requirements document.

Both pipelines are pure and deterministic, so the same record always yields
the same report.

# Usage

	consultant := labscout.New()

	record, err := consultant.ConstructTriage("Weighing", 84, "manual weighing", "")
	if err != nil {
		// Validation failure: re-prompt and try again.
	}

	report := consultant.MatchAndRender(record)
	fmt.Println(report)

The catalog is read-only after startup and the records are immutable value
objects, so a single Consultant serves any number of concurrent
conversations without synchronization.
*/
package labscout
