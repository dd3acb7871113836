package labscout

import (
	"context"
	"log/slog"

	"github.com/aretw0/labscout/internal/logging"
	"github.com/aretw0/labscout/pkg/catalog"
	"github.com/aretw0/labscout/pkg/consult"
	"github.com/aretw0/labscout/pkg/domain"
	"github.com/aretw0/labscout/pkg/observability"
	"github.com/aretw0/labscout/pkg/ports"
)

// Version is the labscout release version.
var Version = "0.1.0"

// Flow labels used for logging and metrics.
const (
	FlowTriage        = "triage"
	FlowSpecification = "specification"
)

// Consultant is the high-level entry point for the labscout library.
// It binds the matcher to a catalog and composes the recommendation and
// specification pipelines behind a small API for dialogue drivers.
type Consultant struct {
	catalog *catalog.Catalog
	matcher *consult.Matcher
	logger  *slog.Logger
	metrics *observability.Metrics
	archive ports.ReportArchive
}

// Option defines a functional option for configuring the Consultant.
type Option func(*Consultant)

// WithCatalog replaces the compiled-in default catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(con *Consultant) {
		con.catalog = c
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(con *Consultant) {
		con.logger = logger
	}
}

// WithMetrics enables prometheus instrumentation of the pipelines.
func WithMetrics(m *observability.Metrics) Option {
	return func(con *Consultant) {
		con.metrics = m
	}
}

// WithArchive persists every rendered report to the given archive.
func WithArchive(archive ports.ReportArchive) Option {
	return func(con *Consultant) {
		con.archive = archive
	}
}

// New creates a Consultant over the compiled-in catalog unless WithCatalog
// overrides it.
func New(opts ...Option) *Consultant {
	con := &Consultant{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(con)
	}
	if con.catalog == nil {
		con.catalog = catalog.Default()
	}
	con.matcher = consult.NewMatcher(con.catalog)
	return con
}

// Catalog returns the read-only catalog backing this consultant.
func (c *Consultant) Catalog() *catalog.Catalog {
	return c.catalog
}

// ConstructTriage is the validation gate of the triage flow. It either
// returns a complete record or a validation error; no partial record exists.
func (c *Consultant) ConstructTriage(problemDomain string, samplesPerDay int, currentProcess, budget string) (domain.TriageRecord, error) {
	record, err := domain.NewTriageRecord(problemDomain, samplesPerDay, currentProcess, budget)
	if err != nil {
		c.metrics.RecordValidationFailure(FlowTriage)
		return domain.TriageRecord{}, err
	}
	c.metrics.RecordIntake(FlowTriage)
	return record, nil
}

// ConstructTriageFromMap constructs a triage record from a raw answer map,
// as decoded from a tool call or accumulated by a session.
func (c *Consultant) ConstructTriageFromMap(answers map[string]any) (domain.TriageRecord, error) {
	record, err := domain.NewTriageRecordFromMap(answers)
	if err != nil {
		c.metrics.RecordValidationFailure(FlowTriage)
		return domain.TriageRecord{}, err
	}
	c.metrics.RecordIntake(FlowTriage)
	return record, nil
}

// ConstructSpecification is the validation gate of the specification flow.
func (c *Consultant) ConstructSpecification(
	projectScope, throughput, weighingSpecs string,
	chemicalTypes, labwareContainers []string,
	identificationLabeling, dataHandling string,
	workflowUseCases []string,
) (domain.StationSpecRecord, error) {
	record, err := domain.NewStationSpecRecord(projectScope, throughput, weighingSpecs,
		chemicalTypes, labwareContainers, identificationLabeling, dataHandling, workflowUseCases)
	if err != nil {
		c.metrics.RecordValidationFailure(FlowSpecification)
		return domain.StationSpecRecord{}, err
	}
	c.metrics.RecordIntake(FlowSpecification)
	return record, nil
}

// ConstructSpecificationFromMap constructs a specification record from a raw
// answer map.
func (c *Consultant) ConstructSpecificationFromMap(answers map[string]any) (domain.StationSpecRecord, error) {
	record, err := domain.NewStationSpecRecordFromMap(answers)
	if err != nil {
		c.metrics.RecordValidationFailure(FlowSpecification)
		return domain.StationSpecRecord{}, err
	}
	c.metrics.RecordIntake(FlowSpecification)
	return record, nil
}

// Match resolves the record's problem domain against the catalog.
// NoMatch is a normal outcome, never an error.
func (c *Consultant) Match(record domain.TriageRecord) domain.MatchResult {
	result := c.matcher.Match(record)
	c.metrics.RecordMatch(result.Matched())
	c.logger.Debug("catalog lookup",
		"domain_key", result.DomainKey,
		"matched", result.Matched(),
		"solutions", len(result.Solutions))
	return result
}

// MatchAndRender composes the triage pipeline: catalog lookup followed by
// report rendering. The returned string is the complete report.
func (c *Consultant) MatchAndRender(record domain.TriageRecord) string {
	return consult.RenderTriage(record, c.Match(record))
}

// RenderSpecification renders the eight-section requirements document for a
// completed specification record.
func (c *Consultant) RenderSpecification(record domain.StationSpecRecord) string {
	return consult.RenderSpecification(record)
}

// ArchiveReport persists a rendered report when an archive is configured;
// without one it is a no-op. Archive failures are the caller's to handle —
// the report itself has already been produced.
func (c *Consultant) ArchiveReport(ctx context.Context, report ports.ArchivedReport) error {
	if c.archive == nil {
		return nil
	}
	if err := c.archive.Save(ctx, report); err != nil {
		return err
	}
	c.logger.Info("report archived", "intake", report.ID, "flow", report.Flow)
	return nil
}
