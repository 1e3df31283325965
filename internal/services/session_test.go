package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/secretvault/internal/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSession_Counter(t *testing.T) {
	s := NewSession()
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, 0, s.Attempts())

	assert.Equal(t, 1, s.fail())
	assert.Equal(t, 2, s.fail())
	s.Reset()
	assert.Equal(t, 0, s.Attempts())
}

func TestAuthError_Matching(t *testing.T) {
	plain := &AuthError{Attempts: 1, MaxAttempts: 3}
	assert.ErrorIs(t, plain, common.ErrInvalidPasskey)
	assert.NotErrorIs(t, plain, common.ErrLockout)
	assert.NotErrorIs(t, plain, common.ErrNotFound)
	assert.Equal(t, "invalid passkey (1/3)", plain.Error())

	locked := &AuthError{Attempts: 3, MaxAttempts: 3, Lockout: true}
	wrapped := fmt.Errorf("retrieve: %w", locked)
	assert.ErrorIs(t, wrapped, common.ErrLockout)
	assert.ErrorIs(t, wrapped, common.ErrInvalidPasskey)
	assert.Equal(t, "invalid passkey: maximum attempts reached (3/3)", locked.Error())

	var target *AuthError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, 3, target.Attempts)
}
