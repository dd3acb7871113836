package ports

import "context"

// ArchivedReport is one rendered report together with its provenance.
type ArchivedReport struct {
	// ID identifies the intake that produced the report (session ID or a
	// caller-chosen label).
	ID string

	// Flow names the pipeline that produced the report: "triage" or
	// "specification".
	Flow string

	// Content is the rendered markdown, stored verbatim.
	Content string
}

// ReportArchive persists rendered reports for later review. Archiving is an
// optional, best-effort concern of the driver side; the core never depends
// on it.
type ReportArchive interface {
	Save(ctx context.Context, report ArchivedReport) error
}
