// Package store persists notes, folders, tags and users in an embedded Badger database.
//
// Each collection is an Entity[T]: JSON documents under a key prefix plus
// optional unique secondary indexes. Every single-document write runs in one
// Badger transaction.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/notefulapp/noteful-server/internal/domain"
)

// Key prefixes for each collection.
const (
	notePrefix   = "note:"
	folderPrefix = "folder:"
	tagPrefix    = "tag:"
	userPrefix   = "user:"
)

// Index names.
const (
	IndexName     = "name"
	IndexUsername = "username"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	Notes   *Entity[domain.Note]
	Folders *Entity[domain.Folder]
	Tags    *Entity[domain.Tag]
	Users   *Entity[domain.User]
}

// Options tune how the database is opened.
type Options struct {
	// InMemory keeps all data in memory; path is ignored. Used by tests and
	// throwaway CLI runs.
	InMemory bool
}

// New opens (or creates) the database at path.
func New(path string, logger *slog.Logger) (*Store, error) {
	return Open(path, logger, Options{})
}

// Open opens the database with explicit options.
func Open(path string, logger *slog.Logger, o Options) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup
	if o.InMemory {
		opts = opts.WithInMemory(true).WithDir("").WithValueDir("")
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	s := &Store{db: db, logger: logger}
	s.initCollections()

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path, "in_memory", o.InMemory)
	}

	return s, nil
}

func (s *Store) initCollections() {
	s.Notes = NewEntity[domain.Note](s, notePrefix)

	s.Folders = NewEntity[domain.Folder](s, folderPrefix).
		WithIndex(IndexName, func(f *domain.Folder) []string {
			return []string{f.Name}
		})

	s.Tags = NewEntity[domain.Tag](s, tagPrefix).
		WithIndex(IndexName, func(t *domain.Tag) []string {
			return []string{t.Name}
		})

	s.Users = NewEntity[domain.User](s, userPrefix).
		WithIndex(IndexUsername, func(u *domain.User) []string {
			return []string{u.Username}
		})
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	return s.db.Close()
}

// Ping reports whether the database is usable.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return badger.ErrDBClosed
	}
	return s.db.View(func(*badger.Txn) error { return nil })
}

// Reset deletes every record in every collection.
func (s *Store) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.db.DropAll(); err != nil {
		return fmt.Errorf("drop all: %w", err)
	}
	if s.logger != nil {
		s.logger.Warn("Database reset")
	}
	return nil
}
