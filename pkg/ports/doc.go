// Package ports defines the driven-side contracts of the intake core:
// where in-progress conversation answers live (IntakeStore) and where
// rendered reports may be persisted (ReportArchive).
//
// The core itself never touches these ports; they serve the dialogue-driver
// side (CLI, HTTP, MCP hosts) that accumulates answers before the atomic
// record construction. Adapters live under pkg/adapters.
package ports
