package domain

import "errors"

// ErrSessionNotFound is returned when an intake session ID cannot be found
// in the store.
var ErrSessionNotFound = errors.New("session not found")
