package records

import (
	"context"

	"github.com/dmitrijs2005/secretvault/internal/models"
)

// Repository is the durable home of the vault. The whole vault is read and
// written at once; there are no partial updates.
type Repository interface {
	// Load returns the persisted vault. Absent storage yields an empty vault
	// and no error. Unreadable or unparsable storage yields an error wrapping
	// common.ErrStorageCorrupt.
	Load(ctx context.Context) (models.Vault, error)

	// Save replaces the persisted vault with v. Readers never observe a
	// partially written vault.
	Save(ctx context.Context, v models.Vault) error

	// Close releases held resources.
	Close() error
}
