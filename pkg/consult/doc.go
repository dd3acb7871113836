// Package consult implements the recommendation pipeline: matching a triage
// record against the catalog and rendering reports from completed records.
//
// Matching and rendering are pure functions over the catalog and the record.
// They never fail: validation happened at record construction, and a missing
// catalog key is a normal NoMatch outcome, not an error.
package consult
