package session

import (
	"context"
	"fmt"
	"sync"

	"log/slog"

	"github.com/aretw0/labscout/internal/logging"
	"github.com/aretw0/labscout/pkg/domain"
	"github.com/aretw0/labscout/pkg/ports"
	"github.com/aretw0/labscout/pkg/schema"
)

// Flow identifies which intake variant a session is collecting answers for.
type Flow string

const (
	// FlowTriage collects the coarse bottleneck intake.
	FlowTriage Flow = "triage"
	// FlowSpecification collects the detailed station-specification intake.
	FlowSpecification Flow = "specification"
)

// Schema returns the validation schema governing the flow's answers.
func (f Flow) Schema() (schema.Schema, error) {
	switch f {
	case FlowTriage:
		return domain.TriageSchema(), nil
	case FlowSpecification:
		return domain.StationSpecSchema(), nil
	}
	return nil, fmt.Errorf("unknown intake flow %q", f)
}

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates intake sessions over an IntakeStore, ensuring safe
// concurrent operations. It uses reference counting to garbage collect
// unused locks.
type Manager struct {
	store ports.IntakeStore

	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	logger *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a session Manager backed by the given store.
func NewManager(store ports.IntakeStore, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		locks:  make(map[string]*lockEntry),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST lock entry.mu and call release(sessionID) after unlocking.
func (m *Manager) acquire(sessionID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		entry = &lockEntry{}
		m.locks[sessionID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry at zero.
func (m *Manager) release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, sessionID)
	}
}

// withLock runs fn while holding the session's lock.
func (m *Manager) withLock(sessionID string, fn func() error) error {
	entry := m.acquire(sessionID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(sessionID)
	}()
	return fn()
}

// Answer validates a single reply against the flow's schema and records it.
// Early per-field validation keeps the final construction gate from being
// the first place a typo is noticed, but construction remains the only gate
// that can produce a record.
func (m *Manager) Answer(ctx context.Context, sessionID string, flow Flow, field string, value any) error {
	flowSchema, err := flow.Schema()
	if err != nil {
		return err
	}
	if err := schema.ValidateField(flowSchema, field, value); err != nil {
		return err
	}
	return m.withLock(sessionID, func() error {
		m.logger.Debug("session answer recorded", "session", sessionID, "flow", string(flow), "field", field)
		return m.store.Put(ctx, sessionID, field, value)
	})
}

// Answers returns a copy of the answers collected so far.
func (m *Manager) Answers(ctx context.Context, sessionID string) (map[string]any, error) {
	var answers map[string]any
	err := m.withLock(sessionID, func() error {
		var err error
		answers, err = m.store.Get(ctx, sessionID)
		return err
	})
	return answers, err
}

// CompleteTriage constructs a TriageRecord from the session's answers and
// removes the session. The answers are taken through the store's atomic
// Complete, so when several server replicas share a store exactly one caller
// obtains them. If construction fails the answers are put back, so the driver
// can re-prompt for the offending fields and try again.
func (m *Manager) CompleteTriage(ctx context.Context, sessionID string) (domain.TriageRecord, error) {
	var record domain.TriageRecord
	err := m.withLock(sessionID, func() error {
		answers, err := m.store.Complete(ctx, sessionID)
		if err != nil {
			return err
		}
		record, err = domain.NewTriageRecordFromMap(answers)
		if err != nil {
			m.restore(ctx, sessionID, answers)
			return err
		}
		return nil
	})
	return record, err
}

// CompleteSpecification constructs a StationSpecRecord from the session's
// answers and removes the session. Construction failures put the answers back.
func (m *Manager) CompleteSpecification(ctx context.Context, sessionID string) (domain.StationSpecRecord, error) {
	var record domain.StationSpecRecord
	err := m.withLock(sessionID, func() error {
		answers, err := m.store.Complete(ctx, sessionID)
		if err != nil {
			return err
		}
		record, err = domain.NewStationSpecRecordFromMap(answers)
		if err != nil {
			m.restore(ctx, sessionID, answers)
			return err
		}
		return nil
	})
	return record, err
}

// restore writes answers back after a failed construction. The completing
// driver owns the conversation, so the brief absence of the session is not
// observable to it.
func (m *Manager) restore(ctx context.Context, sessionID string, answers map[string]any) {
	for field, value := range answers {
		if err := m.store.Put(ctx, sessionID, field, value); err != nil {
			m.logger.Warn("session restore failed", "session", sessionID, "field", field, "err", err)
			return
		}
	}
}

// Abandon discards a session without constructing anything.
func (m *Manager) Abandon(ctx context.Context, sessionID string) error {
	return m.withLock(sessionID, func() error {
		return m.store.Delete(ctx, sessionID)
	})
}
