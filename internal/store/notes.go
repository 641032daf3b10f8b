package store

import (
	"context"

	"github.com/notefulapp/noteful-server/internal/domain"
)

// CreateNote stores a new note under n.ID.
func (s *Store) CreateNote(ctx context.Context, n *domain.Note) error {
	return s.Notes.Create(ctx, n.ID, n)
}

// GetNote returns the note with id or ErrNotFound.
func (s *Store) GetNote(ctx context.Context, id string) (*domain.Note, error) {
	return s.Notes.Get(ctx, id)
}

// ListNotes returns the notes matching f, most recently updated first.
func (s *Store) ListNotes(ctx context.Context, f NoteFilter) ([]*domain.Note, error) {
	var match func(*domain.Note) bool
	if !f.IsEmpty() {
		match = f.Match()
	}
	return s.Notes.Find(ctx, match, CompareNotes)
}

// UpdateNote applies fn to the note with id atomically and returns the result.
func (s *Store) UpdateNote(ctx context.Context, id string, fn func(*domain.Note) error) (*domain.Note, error) {
	return s.Notes.Modify(ctx, id, fn)
}

// DeleteNote removes the note with id or returns ErrNotFound.
func (s *Store) DeleteNote(ctx context.Context, id string) error {
	return s.Notes.Delete(ctx, id)
}

// DetachFolder clears FolderID on every note filed in folderID and
// returns how many notes changed.
func (s *Store) DetachFolder(ctx context.Context, folderID string) (int, error) {
	return s.Notes.UpdateWhere(ctx, func(n *domain.Note) bool {
		return domain.DetachFolder(n, folderID)
	})
}

// PullTag removes tagID from every note carrying it and returns how many
// notes changed.
func (s *Store) PullTag(ctx context.Context, tagID string) (int, error) {
	return s.Notes.UpdateWhere(ctx, func(n *domain.Note) bool {
		return domain.PullTag(n, tagID)
	})
}
