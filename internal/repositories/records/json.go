package records

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/secretvault/internal/common"
	"github.com/dmitrijs2005/secretvault/internal/filex"
	"github.com/dmitrijs2005/secretvault/internal/models"
)

// DefaultFileMode keeps the data file readable by its owner only.
const DefaultFileMode os.FileMode = 0o600

type JSONRepository struct {
	path string
	perm os.FileMode
}

func NewJSONRepository(path string) *JSONRepository {
	return &JSONRepository{path: path, perm: DefaultFileMode}
}

// Path returns the data file location.
func (r *JSONRepository) Path() string {
	return r.path
}

func (r *JSONRepository) Load(ctx context.Context) (models.Vault, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.NewVault(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", common.ErrStorageCorrupt, r.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", common.ErrStorageCorrupt, r.path)
	}

	var v models.Vault
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", common.ErrStorageCorrupt, r.path, err)
	}
	if v == nil {
		return nil, fmt.Errorf("%w: %s does not hold an object", common.ErrStorageCorrupt, r.path)
	}
	return v, nil
}

func (r *JSONRepository) Save(ctx context.Context, v models.Vault) error {
	if v == nil {
		v = models.NewVault()
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", common.ErrStorageWrite, err)
	}
	if err := filex.WriteFileAtomic(r.path, data, r.perm); err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorageWrite, err)
	}
	return nil
}

func (r *JSONRepository) Close() error {
	return nil
}
