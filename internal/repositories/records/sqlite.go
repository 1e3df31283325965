package records

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/secretvault/internal/common"
	"github.com/dmitrijs2005/secretvault/internal/dbx"
	"github.com/dmitrijs2005/secretvault/internal/migrations"
	"github.com/dmitrijs2005/secretvault/internal/models"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at dsn and applies
// migrations.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	// one connection keeps ":memory:" databases coherent and serializes writes
	db.SetMaxOpenConns(1)

	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewSQLiteRepository(db), nil
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) (models.Vault, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT username, encrypted_text, passkey, fernet_key FROM records`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list records: %w", common.ErrStorageCorrupt, err)
	}
	defer rows.Close()

	v := models.NewVault()
	for rows.Next() {
		var rec models.Record
		if err := rows.Scan(&rec.Username, &rec.EncryptedText, &rec.PasskeyHash, &rec.EncryptionKey); err != nil {
			return nil, fmt.Errorf("%w: failed to scan record row: %w", common.ErrStorageCorrupt, err)
		}
		v.Put(rec.Username, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate record rows: %w", common.ErrStorageCorrupt, err)
	}
	return v, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, v models.Vault) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
			return fmt.Errorf("failed to clear records: %w", err)
		}
		for username, rec := range v {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO records (username, encrypted_text, passkey, fernet_key)
				VALUES (?, ?, ?, ?)
			`, username, rec.EncryptedText, rec.PasskeyHash, rec.EncryptionKey)
			if err != nil {
				return fmt.Errorf("failed to insert record[%s]: %w", username, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrStorageWrite, err)
	}
	return nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
