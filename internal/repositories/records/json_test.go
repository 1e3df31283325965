package records

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dmitrijs2005/secretvault/internal/common"
	"github.com/dmitrijs2005/secretvault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleVault() models.Vault {
	return models.NewVault().
		Put("alice", models.Record{EncryptedText: "gAAAA-a", PasskeyHash: "$2a$04$a", EncryptionKey: "ka="}).
		Put("bob", models.Record{EncryptedText: "gAAAA-b", PasskeyHash: "$2a$04$b", EncryptionKey: "kb="})
}

func TestJSONRepository_MissingFileIsEmpty(t *testing.T) {
	r := NewJSONRepository(filepath.Join(t.TempDir(), "secure_data.json"))

	v, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())
}

func TestJSONRepository_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := filepath.Join(t.TempDir(), "secure_data.json")
	r := NewJSONRepository(p)
	assert.Equal(t, p, r.Path())

	require.NoError(t, r.Save(ctx, sampleVault()))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())

	alice, ok := got.Get("alice")
	require.True(t, ok)
	assert.Equal(t, "alice", alice.Username)
	assert.Equal(t, "gAAAA-a", alice.EncryptedText)
	assert.Equal(t, "$2a$04$a", alice.PasskeyHash)
	assert.Equal(t, "ka=", alice.EncryptionKey)

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(p)
		require.NoError(t, err)
		assert.Equal(t, DefaultFileMode, fi.Mode().Perm())
	}
}

func TestJSONRepository_ReadsOriginalLayout(t *testing.T) {
	p := filepath.Join(t.TempDir(), "secure_data.json")
	raw := `{"alice": {"encrypted_text": "gAAAA-x", "passkey": "$2b$12$h", "fernet_key": "k="}}`
	require.NoError(t, os.WriteFile(p, []byte(raw), 0o600))

	v, err := NewJSONRepository(p).Load(context.Background())
	require.NoError(t, err)

	rec, ok := v.Get("alice")
	require.True(t, ok)
	assert.Equal(t, models.Record{Username: "alice", EncryptedText: "gAAAA-x", PasskeyHash: "$2b$12$h", EncryptionKey: "k="}, rec)
}

func TestJSONRepository_CorruptContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"whitespace", "  \n"},
		{"not json", "{ this is not valid json"},
		{"null", "null"},
		{"array", `["alice"]`},
		{"wrong shape", `{"alice": "plain string"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "secure_data.json")
			require.NoError(t, os.WriteFile(p, []byte(tt.content), 0o600))

			v, err := NewJSONRepository(p).Load(context.Background())
			require.ErrorIs(t, err, common.ErrStorageCorrupt)
			assert.Nil(t, v)
		})
	}
}

func TestJSONRepository_UnreadablePathIsCorrupt(t *testing.T) {
	dir := t.TempDir()

	_, err := NewJSONRepository(dir).Load(context.Background())
	require.ErrorIs(t, err, common.ErrStorageCorrupt)
}

func TestJSONRepository_SaveFailureWrapsWriteError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	r := NewJSONRepository(filepath.Join(blocker, "secure_data.json"))
	err := r.Save(context.Background(), sampleVault())
	require.ErrorIs(t, err, common.ErrStorageWrite)
}

func TestJSONRepository_SaveNilVault(t *testing.T) {
	ctx := context.Background()
	r := NewJSONRepository(filepath.Join(t.TempDir(), "secure_data.json"))

	require.NoError(t, r.Save(ctx, nil))
	v, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())
	require.NoError(t, r.Close())
}
