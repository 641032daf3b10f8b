package store

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// loadPendingWrites bounds in-flight batches during Restore.
const loadPendingWrites = 256

// Backup streams a full Badger backup of every collection to w and returns
// the version it is consistent at.
func (s *Store) Backup(ctx context.Context, w io.Writer) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	version, err := s.db.Backup(w, 0)
	if err != nil {
		return 0, fmt.Errorf("backup: %w", err)
	}
	return version, nil
}

// Restore replaces the database contents with a stream written by Backup.
// The stream is spooled to a temporary file and loaded into a scratch
// in-memory database first; the live data is only dropped once the whole
// backup has loaded cleanly.
func (s *Store) Restore(ctx context.Context, r io.Reader) error {
	spool, err := os.CreateTemp("", "noteful-restore-*.bak")
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	defer func() {
		_ = spool.Close()
		_ = os.Remove(spool.Name())
	}()

	if _, err := io.Copy(spool, r); err != nil {
		return fmt.Errorf("restore: read backup: %w", err)
	}
	if err := verifyBackup(spool); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := spool.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	if err := s.Reset(ctx); err != nil {
		return err
	}
	if err := s.db.Load(spool, loadPendingWrites); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("Database restored from backup")
	}
	return nil
}

// verifyBackup loads f into a throwaway in-memory database.
func verifyBackup(f *os.File) error {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	scratch, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return fmt.Errorf("restore: open scratch db: %w", err)
	}
	defer scratch.Close()

	if err := scratch.Load(f, loadPendingWrites); err != nil {
		return fmt.Errorf("restore: invalid backup: %w", err)
	}
	return nil
}

// DanglingRef is a note reference whose target no longer exists, typically
// left by a cascade whose dependent step failed.
type DanglingRef struct {
	NoteID   string `json:"noteId"`
	TargetID string `json:"targetId"`
}

// Report summarises collection sizes and dangling note references.
type Report struct {
	Notes   int `json:"notes"`
	Folders int `json:"folders"`
	Tags    int `json:"tags"`
	Users   int `json:"users"`

	DanglingFolders []DanglingRef `json:"danglingFolders"`
	DanglingTags    []DanglingRef `json:"danglingTags"`
}

// Inspect counts every collection and lists note references to folders or
// tags that do not exist.
func (s *Store) Inspect(ctx context.Context) (*Report, error) {
	rep := &Report{
		DanglingFolders: make([]DanglingRef, 0),
		DanglingTags:    make([]DanglingRef, 0),
	}

	folders := make(map[string]struct{})
	for f, err := range s.Folders.List(ctx) {
		if err != nil {
			return nil, err
		}
		folders[f.ID] = struct{}{}
	}
	rep.Folders = len(folders)

	tags := make(map[string]struct{})
	for t, err := range s.Tags.List(ctx) {
		if err != nil {
			return nil, err
		}
		tags[t.ID] = struct{}{}
	}
	rep.Tags = len(tags)

	users, err := s.Users.Count(ctx)
	if err != nil {
		return nil, err
	}
	rep.Users = users

	for n, err := range s.Notes.List(ctx) {
		if err != nil {
			return nil, err
		}
		rep.Notes++

		if n.FolderID != "" {
			if _, ok := folders[n.FolderID]; !ok {
				rep.DanglingFolders = append(rep.DanglingFolders, DanglingRef{NoteID: n.ID, TargetID: n.FolderID})
			}
		}
		for _, tagID := range n.Tags {
			if _, ok := tags[tagID]; !ok {
				rep.DanglingTags = append(rep.DanglingTags, DanglingRef{NoteID: n.ID, TargetID: tagID})
			}
		}
	}

	return rep, nil
}
