// Package cryptox implements the secret codec: per-record Fernet keys for
// encrypting text payloads and bcrypt hashes for passkeys.
package cryptox

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/secretvault/internal/common"
	"github.com/fernet/fernet-go"
	"golang.org/x/crypto/bcrypt"
)

// KeySize is the length of a raw Fernet key before encoding.
const KeySize = 32

// Codec encrypts payloads and hashes passkeys. The zero value uses
// bcrypt.DefaultCost.
type Codec struct {
	Cost int
}

// NewCodec returns a Codec hashing passkeys with the given bcrypt cost.
// A cost outside [bcrypt.MinCost, bcrypt.MaxCost] falls back to the default.
func NewCodec(cost int) *Codec {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Codec{Cost: cost}
}

func (c *Codec) cost() int {
	if c == nil || c.Cost == 0 {
		return bcrypt.DefaultCost
	}
	return c.Cost
}

// GenerateKey returns a fresh random key in Fernet's URL-safe base64 form.
func (c *Codec) GenerateKey() string {
	raw := common.GenerateRandByteArray(KeySize)
	defer common.WipeByteArray(raw)

	var k fernet.Key
	copy(k[:], raw)
	return k.Encode()
}

// Encrypt seals plaintext under key. Every token carries a random IV and a
// timestamp, so encrypting the same text twice yields different tokens.
func (c *Codec) Encrypt(key, plaintext string) (string, error) {
	k, err := fernet.DecodeKey(key)
	if err != nil {
		return "", fmt.Errorf("decode key: %w", err)
	}
	tok, err := fernet.EncryptAndSign([]byte(plaintext), k)
	if err != nil {
		return "", fmt.Errorf("encrypt: %w", err)
	}
	return string(tok), nil
}

// Decrypt opens a token produced by Encrypt. A malformed key, a truncated or
// tampered token, or a token sealed under another key all fail with an error
// wrapping common.ErrDecryption. Tokens do not expire.
func (c *Codec) Decrypt(key, token string) (string, error) {
	k, err := fernet.DecodeKey(key)
	if err != nil {
		return "", fmt.Errorf("%w: decode key: %w", common.ErrDecryption, err)
	}
	msg := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{k})
	if msg == nil {
		return "", fmt.Errorf("%w: token rejected", common.ErrDecryption)
	}
	return string(msg), nil
}

// HashPasskey returns a bcrypt hash of passkey with a freshly generated salt,
// so two calls with the same input give different strings.
func (c *Codec) HashPasskey(passkey []byte) (string, error) {
	h, err := bcrypt.GenerateFromPassword(passkey, c.cost())
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: passkey longer than 72 bytes", common.ErrValidation)
		}
		return "", fmt.Errorf("hash passkey: %w", err)
	}
	return string(h), nil
}

// VerifyPasskey reports whether passkey matches hash. A malformed hash is
// treated as a mismatch.
func (c *Codec) VerifyPasskey(passkey []byte, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), passkey) == nil
}
