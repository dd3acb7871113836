// Package redis provides a Redis-backed IntakeStore, for deployments where
// several server replicas share in-progress conversations.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aretw0/labscout/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.IntakeStore using a Redis hash per session.
// Per-session call ordering is the session manager's job; the store only
// guarantees that each operation is individually atomic.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for in-progress sessions. Abandoned
// conversations then evaporate instead of accumulating forever.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for sessions.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "labscout:intake:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(sessionID string) string {
	return s.prefix + sessionID
}

// Put records a single answer, creating the session hash if needed.
func (s *Store) Put(ctx context.Context, sessionID, field string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal answer %q: %w", field, err)
	}

	pipe := s.client.Pipeline()
	pipe.HSet(ctx, s.key(sessionID), field, data)
	if s.ttl > 0 {
		pipe.Expire(ctx, s.key(sessionID), s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store answer: %w", err)
	}
	return nil
}

// Get returns the accumulated answers.
func (s *Store) Get(ctx context.Context, sessionID string) (map[string]any, error) {
	raw, err := s.client.HGetAll(ctx, s.key(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if len(raw) == 0 {
		// Sessions always carry at least one answer, so an empty hash
		// means the key does not exist.
		return nil, domain.ErrSessionNotFound
	}
	return decodeAnswers(raw)
}

// Complete removes the session and returns its answers.
func (s *Store) Complete(ctx context.Context, sessionID string) (map[string]any, error) {
	pipe := s.client.TxPipeline()
	getAll := pipe.HGetAll(ctx, s.key(sessionID))
	pipe.Del(ctx, s.key(sessionID))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}

	raw := getAll.Val()
	if len(raw) == 0 {
		return nil, domain.ErrSessionNotFound
	}
	return decodeAnswers(raw)
}

// Delete discards a session. Unknown sessions are a no-op.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func decodeAnswers(raw map[string]string) (map[string]any, error) {
	answers := make(map[string]any, len(raw))
	for field, data := range raw {
		var value any
		if err := json.Unmarshal([]byte(data), &value); err != nil {
			return nil, fmt.Errorf("failed to decode answer %q: %w", field, err)
		}
		answers[field] = value
	}
	return answers, nil
}
