// Package vault owns the in-memory vault for the lifetime of the process and
// keeps it in step with durable storage.
package vault

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/secretvault/internal/common"
	"github.com/dmitrijs2005/secretvault/internal/logging"
	"github.com/dmitrijs2005/secretvault/internal/models"
	"github.com/dmitrijs2005/secretvault/internal/repositories/records"
)

// Store caches the vault in memory and rewrites it in full through a
// records.Repository after every mutation. It is safe for concurrent use:
// the put-then-save sequence runs under one lock, so concurrent writers
// cannot lose each other's updates.
type Store struct {
	repo records.Repository
	log  logging.Logger

	mu sync.RWMutex
	v  models.Vault
}

// New returns a Store with an empty vault. Call Load to read durable storage.
func New(repo records.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log, v: models.NewVault()}
}

// Load replaces the in-memory vault with the persisted one.
//
// Missing storage leaves the vault empty and returns nil. Storage that exists
// but cannot be read or parsed also leaves the vault empty; the returned
// error wraps common.ErrStorageCorrupt and should be shown as a warning.
// Persisted records with empty fields are skipped.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := s.repo.Load(ctx)

	if err != nil {
		s.v = models.NewVault()
		if errors.Is(err, common.ErrStorageCorrupt) {
			s.log.Warn(ctx, "data file is empty or corrupted, starting with an empty vault", "error", err)
		}
		return err
	}

	s.v = models.NewVault()
	for username := range loaded {
		rec, _ := loaded.Get(username)
		if err := rec.Validate(); err != nil {
			s.log.Warn(ctx, "skipping invalid record", "username", username, "error", err)
			continue
		}
		s.v.Put(username, rec)
	}
	s.log.Debug(ctx, "vault loaded", "records", s.v.Len())
	return nil
}

// Get returns the record for username.
func (s *Store) Get(username string) (models.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.Get(username)
}

// Put stores rec under username, replacing any previous record, and saves the
// vault. If saving fails the record stays in memory and the error, wrapping
// common.ErrStorageWrite, is returned.
func (s *Store) Put(ctx context.Context, username string, rec models.Record) error {
	rec.Username = username
	if err := rec.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.v.Put(username, rec)
	return s.saveLocked(ctx)
}

// Save writes the whole vault to durable storage.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

func (s *Store) saveLocked(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.v.Clone()); err != nil {
		s.log.Error(ctx, "failed to save vault", "error", err)
		if !errors.Is(err, common.ErrStorageWrite) {
			err = fmt.Errorf("%w: %w", common.ErrStorageWrite, err)
		}
		return err
	}
	return nil
}

// Len returns the number of records held in memory.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.Len()
}

// Close releases the underlying repository.
func (s *Store) Close() error {
	return s.repo.Close()
}
