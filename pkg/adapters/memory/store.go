// Package memory provides an in-memory IntakeStore for single-process
// deployments and tests.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/labscout/pkg/domain"
)

// Store implements ports.IntakeStore with a process-local map.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]map[string]any
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]map[string]any),
	}
}

// Put records a single answer, creating the session if needed.
func (s *Store) Put(_ context.Context, sessionID, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	answers, ok := s.sessions[sessionID]
	if !ok {
		answers = make(map[string]any)
		s.sessions[sessionID] = answers
	}
	answers[field] = value
	return nil
}

// Get returns a copy of the accumulated answers.
func (s *Store) Get(_ context.Context, sessionID string) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	answers, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return copyAnswers(answers), nil
}

// Complete atomically removes the session and returns its answers.
func (s *Store) Complete(_ context.Context, sessionID string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	answers, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return copyAnswers(answers), nil
}

// Delete discards a session. Unknown sessions are a no-op.
func (s *Store) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

func copyAnswers(answers map[string]any) map[string]any {
	out := make(map[string]any, len(answers))
	for k, v := range answers {
		out[k] = v
	}
	return out
}
