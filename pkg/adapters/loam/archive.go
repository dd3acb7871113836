// Package loam persists rendered reports as Loam documents, giving each
// intake a reviewable, optionally versioned paper trail on disk.
package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"

	"github.com/aretw0/labscout/pkg/ports"
)

// Archive implements ports.ReportArchive on top of a Loam repository.
type Archive struct {
	svc *core.Service
	now func() time.Time
}

// Option configures the Archive.
type Option func(*Archive)

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Archive) {
		a.now = now
	}
}

// NewArchive initializes a Loam repository at path and returns an archive
// writing into it. Versioning is off: each report is a standalone document,
// and the surrounding directory may already be under version control.
func NewArchive(path string, opts ...Option) (*Archive, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid archive path: %w", err)
	}
	repo, err := loam.Init(absPath, loam.WithVersioning(false))
	if err != nil {
		return nil, fmt.Errorf("failed to init report archive: %w", err)
	}
	a := &Archive{
		svc: core.NewService(repo),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Save writes the report as a markdown document named after its flow and
// intake ID, committing it with a descriptive message.
func (a *Archive) Save(ctx context.Context, report ports.ArchivedReport) error {
	tx, err := a.svc.Begin(ctx)
	if err != nil {
		return fmt.Errorf("archive tx begin failed: %w", err)
	}

	doc := core.Document{
		ID:      fmt.Sprintf("%s-%s.md", report.Flow, report.ID),
		Content: report.Content,
		Metadata: core.Metadata{
			"Flow":       report.Flow,
			"Intake":     report.ID,
			"ArchivedAt": a.now().UTC().Format(time.RFC3339),
		},
	}
	if err := tx.Save(ctx, doc); err != nil {
		return fmt.Errorf("archive save failed: %w", err)
	}
	if err := tx.Commit(ctx, fmt.Sprintf("Archive %s report for intake %s", report.Flow, report.ID)); err != nil {
		return fmt.Errorf("archive commit failed: %w", err)
	}
	return nil
}
