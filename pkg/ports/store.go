package ports

import "context"

// IntakeStore persists the raw answers of an in-progress intake
// conversation, keyed by session ID. It stores driver-side scratch state
// only: no validated record ever lives in a store, because records are
// constructed atomically from the completed answer set.
//
// Implementations must be safe for concurrent use across sessions; calls for
// the same session are serialized by the session manager.
type IntakeStore interface {
	// Put records a single answer, creating the session if needed.
	// An existing answer for the same field is overwritten (re-asking a
	// question replaces the previous reply).
	Put(ctx context.Context, sessionID, field string, value any) error

	// Get returns a copy of the accumulated answers.
	// Returns domain.ErrSessionNotFound for unknown sessions.
	Get(ctx context.Context, sessionID string) (map[string]any, error)

	// Complete atomically removes the session and returns its answers,
	// handing them off for record construction exactly once.
	// Returns domain.ErrSessionNotFound for unknown sessions.
	Complete(ctx context.Context, sessionID string) (map[string]any, error)

	// Delete discards a session. Deleting an unknown session is a no-op.
	Delete(ctx context.Context, sessionID string) error
}
