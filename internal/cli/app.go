package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/secretvault/internal/common"
	"github.com/dmitrijs2005/secretvault/internal/config"
	"github.com/dmitrijs2005/secretvault/internal/cryptox"
	"github.com/dmitrijs2005/secretvault/internal/filex"
	"github.com/dmitrijs2005/secretvault/internal/logging"
	"github.com/dmitrijs2005/secretvault/internal/repositories/records"
	"github.com/dmitrijs2005/secretvault/internal/services"
	"github.com/dmitrijs2005/secretvault/internal/vault"
)

// stdin and stdout are test seams for the process streams.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

type App struct {
	config        *config.Config
	log           logging.Logger
	store         *vault.Store
	secretService services.SecretService
	session       *services.Session
	reader        *bufio.Reader
	out           io.Writer
}

// NewApp opens the configured backend, loads the vault and builds the
// secret service. Unreadable storage is reported as a warning and the app
// starts with an empty vault.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	repo, err := openRepository(ctx, c)
	if err != nil {
		log.Error(ctx, "error opening storage", "path", c.StoragePath(), "error", err)
		return nil, err
	}

	a := &App{
		config:  c,
		log:     log,
		store:   vault.New(repo, log),
		session: services.NewSession(),
		reader:  bufio.NewReader(stdin),
		out:     stdout,
	}

	if err := a.store.Load(ctx); err != nil {
		if !errors.Is(err, common.ErrStorageCorrupt) {
			_ = repo.Close()
			return nil, err
		}
		fmt.Fprintln(a.out, "Warning: data file is empty or corrupted. Starting with empty data.")
	}

	codec := cryptox.NewCodec(c.BcryptCost)
	a.secretService = services.NewSecretService(a.store, codec, c.MaxAttempts, log)

	return a, nil
}

func openRepository(ctx context.Context, c *config.Config) (records.Repository, error) {
	path := c.StoragePath()

	switch c.Backend {
	case config.BackendSQLite:
		if err := filex.EnsureDir(filepath.Dir(path)); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return records.OpenSQLite(ctx, path)
	case config.BackendJSON:
		return records.NewJSONRepository(path), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", c.Backend)
	}
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			a.log.Error(ctx, "error closing storage", "error", err)
		}
	}()

	a.log.Debug(ctx, "session started", "session", a.session.ID.String(), "records", a.store.Len())
	fmt.Fprintln(a.out, "Secure Data Encryption System (type 'help' for commands)")

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the storage backend.
func (a *App) Close() error {
	return a.store.Close()
}

func (a *App) getStatus() string {
	if n := a.session.Attempts(); n > 0 {
		return fmt.Sprintf("(attempts %d/%d)", n, a.config.MaxAttempts)
	}
	return ""
}
