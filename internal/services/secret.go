// Package services holds the store and retrieve operations that tie the
// vault store to the secret codec.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/secretvault/internal/common"
	"github.com/dmitrijs2005/secretvault/internal/logging"
	"github.com/dmitrijs2005/secretvault/internal/models"
)

// Codec is the cryptographic surface the service needs. *cryptox.Codec
// implements it.
type Codec interface {
	GenerateKey() string
	Encrypt(key, plaintext string) (string, error)
	Decrypt(key, token string) (string, error)
	HashPasskey(passkey []byte) (string, error)
	VerifyPasskey(passkey []byte, hash string) bool
}

// RecordStore is the vault surface the service needs. *vault.Store
// implements it.
type RecordStore interface {
	Get(username string) (models.Record, bool)
	Put(ctx context.Context, username string, rec models.Record) error
}

// SecretService defines the two operations exposed to callers.
//
// Contract:
//   - Store: encrypt text under a fresh key, hash passkey, replace the
//     user's record and persist the vault.
//   - Retrieve: verify passkey and return the decrypted text, tracking
//     failures on the caller's Session.
type SecretService interface {
	Store(ctx context.Context, username, text string, passkey []byte) error
	Retrieve(ctx context.Context, sess *Session, username string, passkey []byte) (string, error)
}

type secretService struct {
	store       RecordStore
	codec       Codec
	maxAttempts int
	log         logging.Logger
}

// NewSecretService wires a SecretService. maxAttempts below 1 means
// DefaultMaxAttempts.
func NewSecretService(store RecordStore, codec Codec, maxAttempts int, log logging.Logger) SecretService {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &secretService{store: store, codec: codec, maxAttempts: maxAttempts, log: log}
}

// Store validates input, builds a fresh record and saves it. Empty fields
// fail with common.ErrValidation before anything changes. A save failure
// wraps common.ErrStorageWrite; the record is kept in memory regardless.
func (s *secretService) Store(ctx context.Context, username, text string, passkey []byte) error {
	var missing []string
	if username == "" {
		missing = append(missing, "username")
	}
	if text == "" {
		missing = append(missing, "text")
	}
	if len(passkey) == 0 {
		missing = append(missing, "passkey")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing fields: %s", common.ErrValidation, strings.Join(missing, ", "))
	}

	hash, err := s.codec.HashPasskey(passkey)
	if err != nil {
		return fmt.Errorf("hash passkey: %w", err)
	}

	key := s.codec.GenerateKey()
	token, err := s.codec.Encrypt(key, text)
	if err != nil {
		return fmt.Errorf("encrypt text: %w", err)
	}

	rec := models.Record{
		Username:      username,
		EncryptedText: token,
		PasskeyHash:   hash,
		EncryptionKey: key,
	}
	if err := s.store.Put(ctx, username, rec); err != nil {
		return err
	}

	s.log.Info(ctx, "record stored", "username", username)
	return nil
}

// Retrieve returns the decrypted text for username.
//
// Outcomes:
//   - unknown username: common.ErrNotFound, counter unchanged;
//   - wrong passkey: *AuthError, counter incremented; on reaching the
//     threshold the error also matches common.ErrLockout and the counter
//     is reset;
//   - right passkey but undecryptable record: error wrapping
//     common.ErrDecryption, counter unchanged;
//   - success: plaintext, counter reset;
//   - nil sess: common.ErrValidation.
func (s *secretService) Retrieve(ctx context.Context, sess *Session, username string, passkey []byte) (string, error) {
	if sess == nil {
		return "", fmt.Errorf("%w: nil session", common.ErrValidation)
	}

	log := s.log.With("session", sess.ID.String(), "username", username)

	rec, ok := s.store.Get(username)
	if !ok {
		log.Info(ctx, "no record for user")
		return "", fmt.Errorf("user %q: %w", username, common.ErrNotFound)
	}

	if !s.codec.VerifyPasskey(passkey, rec.PasskeyHash) {
		authErr := &AuthError{Attempts: sess.fail(), MaxAttempts: s.maxAttempts}
		if authErr.Attempts >= s.maxAttempts {
			authErr.Lockout = true
			sess.Reset()
			log.Warn(ctx, "maximum attempts reached", "attempts", authErr.Attempts)
		} else {
			log.Info(ctx, "invalid passkey", "attempts", authErr.Attempts)
		}
		return "", authErr
	}

	text, err := s.codec.Decrypt(rec.EncryptionKey, rec.EncryptedText)
	if err != nil {
		log.Error(ctx, "stored record cannot be decrypted", "error", err)
		return "", fmt.Errorf("user %q: %w", username, err)
	}

	sess.Reset()
	log.Info(ctx, "record retrieved")
	return text, nil
}
