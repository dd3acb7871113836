// Package session accumulates intake answers for multi-turn dialogue
// drivers and hands them off atomically to record construction.
//
// A session holds raw answers only, never a partial record: the validating
// constructors in pkg/domain run exactly once, when the driver declares the
// intake complete. Concurrent calls for the same session are serialized by a
// reference-counted per-session lock; different sessions never contend.
package session
