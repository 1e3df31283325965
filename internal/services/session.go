package services

import (
	"fmt"

	"github.com/dmitrijs2005/secretvault/internal/common"
	"github.com/google/uuid"
)

// DefaultMaxAttempts is the number of consecutive failed retrievals that
// triggers the lockout warning.
const DefaultMaxAttempts = 3

// Session is one caller's interactive context. It owns the attempt counter,
// which is never persisted and never shared between sessions.
type Session struct {
	ID       uuid.UUID
	attempts int
}

func NewSession() *Session {
	return &Session{ID: uuid.New()}
}

// Attempts returns the number of consecutive failed passkey checks.
func (s *Session) Attempts() int {
	return s.attempts
}

// Reset sets the attempt counter back to zero.
func (s *Session) Reset() {
	s.attempts = 0
}

func (s *Session) fail() int {
	s.attempts++
	return s.attempts
}

// AuthError reports a passkey that did not verify. It matches
// common.ErrInvalidPasskey, and common.ErrLockout as well when Lockout is set.
type AuthError struct {
	// Attempts is the failure count reached by this attempt.
	Attempts int
	// MaxAttempts is the lockout threshold in effect.
	MaxAttempts int
	// Lockout is set when Attempts reached MaxAttempts; the session counter
	// has already been reset.
	Lockout bool
}

func (e *AuthError) Error() string {
	if e.Lockout {
		return fmt.Sprintf("%s: %s (%d/%d)", common.ErrInvalidPasskey, common.ErrLockout, e.Attempts, e.MaxAttempts)
	}
	return fmt.Sprintf("%s (%d/%d)", common.ErrInvalidPasskey, e.Attempts, e.MaxAttempts)
}

func (e *AuthError) Is(target error) bool {
	switch target {
	case common.ErrInvalidPasskey:
		return true
	case common.ErrLockout:
		return e.Lockout
	}
	return false
}
