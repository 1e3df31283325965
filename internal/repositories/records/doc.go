// Package records provides durable backends for the vault.
//
// # Backends
//
//   - JSONRepository: a single JSON file mapping username to
//     {"encrypted_text", "passkey", "fernet_key"}. Writes go through
//     filex.WriteFileAtomic (temp file + rename) with mode 0600.
//   - SQLiteRepository: a "records" table created by embedded goose
//     migrations. Save replaces every row inside one transaction.
//
// # Errors
//
// Load wraps common.ErrStorageCorrupt when data exists but cannot be read or
// decoded; Save wraps common.ErrStorageWrite. Use errors.Is to match.
package records
