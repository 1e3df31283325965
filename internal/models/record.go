// Package models defines the vault data model: one Record per username and
// the Vault mapping that holds them.
package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/secretvault/internal/common"
)

// Record is one user's stored secret. Username is the vault key and is not
// repeated inside the serialized record.
type Record struct {
	// Username identifies the record; it is the primary key of the vault.
	Username string `json:"-" yaml:"-"`

	// EncryptedText is the Fernet token of the user's text.
	EncryptedText string `json:"encrypted_text"`

	// PasskeyHash is the bcrypt hash of the passkey.
	PasskeyHash string `json:"passkey"`

	// EncryptionKey is the Fernet key that produced EncryptedText.
	EncryptionKey string `json:"fernet_key"`
}

// Validate reports an error wrapping common.ErrValidation when any stored
// field is empty.
func (r Record) Validate() error {
	var missing []string
	if r.EncryptedText == "" {
		missing = append(missing, "encrypted_text")
	}
	if r.PasskeyHash == "" {
		missing = append(missing, "passkey")
	}
	if r.EncryptionKey == "" {
		missing = append(missing, "fernet_key")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: record %q has empty %s", common.ErrValidation, r.Username, strings.Join(missing, ", "))
	}
	return nil
}
