package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/dmitrijs2005/secretvault/internal/common"
	"github.com/dmitrijs2005/secretvault/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecrets struct {
	storeUser string
	storeText string
	storePass []byte
	storeErr  error

	retrieveUser string
	retrievePass []byte
	retrieveText string
	retrieveErr  error
}

func (f *fakeSecrets) Store(_ context.Context, username, text string, passkey []byte) error {
	f.storeUser, f.storeText = username, text
	f.storePass = append([]byte(nil), passkey...)
	return f.storeErr
}

func (f *fakeSecrets) Retrieve(_ context.Context, _ *services.Session, username string, passkey []byte) (string, error) {
	f.retrieveUser = username
	f.retrievePass = append([]byte(nil), passkey...)
	return f.retrieveText, f.retrieveErr
}

// stubInputs makes the prompt helpers return the given values in order.
// The returned slice is the passkey buffer handed to the command, so tests
// can check it was wiped.
func stubInputs(t *testing.T, texts []string, multiline string, passkey string) []byte {
	t.Helper()
	origST, origML, origGP := getSimpleText, getMultiline, getPassword

	pw := []byte(passkey)
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		require.NotEmpty(t, texts, "unexpected prompt")
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return multiline, nil }
	getPassword = func(_ *bufio.Reader, _ string, _ io.Writer) ([]byte, error) { return pw, nil }

	t.Cleanup(func() {
		getSimpleText = origST
		getMultiline = origML
		getPassword = origGP
	})
	return pw
}

func newTestApp(svc services.SecretService) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{secretService: svc, session: services.NewSession(), out: &out}, &out
}

func TestStore_Success(t *testing.T) {
	f := &fakeSecrets{}
	a, out := newTestApp(f)
	pw := stubInputs(t, []string{"alice"}, "line1\nline2", "secret")

	require.NoError(t, a.Store(context.Background()))

	assert.Equal(t, "alice", f.storeUser)
	assert.Equal(t, "line1\nline2", f.storeText)
	assert.Equal(t, []byte("secret"), f.storePass)
	assert.Equal(t, make([]byte, len("secret")), pw, "passkey must be wiped")
	assert.Equal(t, "Data stored successfully!\n", out.String())
}

func TestStore_Outcomes(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		passkey   string
		err       error
		wantPrint string
	}{
		{
			name:      "missing fields",
			username:  "",
			passkey:   "secret",
			err:       fmt.Errorf("%w: missing fields: username", common.ErrValidation),
			wantPrint: "Please fill in all fields.",
		},
		{
			name:      "other validation failure",
			username:  "alice",
			passkey:   "secret",
			err:       fmt.Errorf("%w: passkey too long", common.ErrValidation),
			wantPrint: "Invalid input:",
		},
		{
			name:      "save failed",
			username:  "alice",
			passkey:   "secret",
			err:       fmt.Errorf("save: %w", common.ErrStorageWrite),
			wantPrint: "could not be saved",
		},
		{
			name:      "unexpected",
			username:  "alice",
			passkey:   "secret",
			err:       errors.New("boom"),
			wantPrint: "Error: boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeSecrets{storeErr: tt.err}
			a, out := newTestApp(f)
			stubInputs(t, []string{tt.username}, "text", tt.passkey)

			err := a.Store(context.Background())
			require.ErrorIs(t, err, tt.err)
			assert.Contains(t, out.String(), tt.wantPrint)
		})
	}
}

func TestStore_InputErrorStopsEarly(t *testing.T) {
	f := &fakeSecrets{}
	a, _ := newTestApp(f)
	stubInputs(t, nil, "", "")
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return "", io.EOF }

	require.ErrorIs(t, a.Store(context.Background()), io.EOF)
	assert.Empty(t, f.storeUser)
}

func TestRetrieve_Success(t *testing.T) {
	f := &fakeSecrets{retrieveText: "top secret"}
	a, out := newTestApp(f)
	pw := stubInputs(t, []string{"alice"}, "", "secret")

	require.NoError(t, a.Retrieve(context.Background()))

	assert.Equal(t, "alice", f.retrieveUser)
	assert.Equal(t, []byte("secret"), f.retrievePass)
	assert.Equal(t, make([]byte, len("secret")), pw, "passkey must be wiped")
	assert.Equal(t, "Retrieved Data: top secret\n", out.String())
}

func TestRetrieve_Outcomes(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantPrint []string
		notPrint  string
	}{
		{
			name:      "not found",
			err:       fmt.Errorf("user %q: %w", "bob", common.ErrNotFound),
			wantPrint: []string{"No data found for user"},
		},
		{
			name:      "invalid passkey",
			err:       &services.AuthError{Attempts: 1, MaxAttempts: 3},
			wantPrint: []string{"Invalid passkey! (attempt 1/3)"},
			notPrint:  "Maximum attempts reached",
		},
		{
			name: "lockout",
			err:  &services.AuthError{Attempts: 3, MaxAttempts: 3, Lockout: true},
			wantPrint: []string{
				"Invalid passkey! (attempt 3/3)",
				"Maximum attempts reached. Returning to main menu.",
			},
		},
		{
			name:      "undecryptable record",
			err:       fmt.Errorf("user %q: %w", "bob", common.ErrDecryption),
			wantPrint: []string{"could not be decrypted"},
			notPrint:  "Invalid passkey",
		},
		{
			name:      "unexpected",
			err:       errors.New("boom"),
			wantPrint: []string{"Error: boom"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeSecrets{retrieveErr: tt.err}
			a, out := newTestApp(f)
			stubInputs(t, []string{"bob"}, "", "pw")

			require.ErrorIs(t, a.Retrieve(context.Background()), tt.err)
			for _, w := range tt.wantPrint {
				assert.Contains(t, out.String(), w)
			}
			if tt.notPrint != "" {
				assert.NotContains(t, out.String(), tt.notPrint)
			}
		})
	}
}
