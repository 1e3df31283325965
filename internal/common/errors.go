// Package common defines shared sentinel errors and small helpers used across
// secretvault packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Input errors.
	ErrValidation = errors.New("validation error")

	// Lookup / authentication errors.
	ErrNotFound       = errors.New("not found")
	ErrInvalidPasskey = errors.New("invalid passkey")
	ErrLockout        = errors.New("maximum attempts reached")

	// Codec errors.
	ErrDecryption = errors.New("decryption failed")

	// Storage errors.
	ErrStorageCorrupt = errors.New("storage unreadable")
	ErrStorageWrite   = errors.New("storage write failed")
)
