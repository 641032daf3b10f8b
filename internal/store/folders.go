package store

import (
	"cmp"
	"context"

	"github.com/notefulapp/noteful-server/internal/domain"
)

// CreateFolder stores a new folder. A taken name returns ErrAlreadyExists.
func (s *Store) CreateFolder(ctx context.Context, f *domain.Folder) error {
	return s.Folders.Create(ctx, f.ID, f)
}

// GetFolder returns the folder with id or ErrNotFound.
func (s *Store) GetFolder(ctx context.Context, id string) (*domain.Folder, error) {
	return s.Folders.Get(ctx, id)
}

// GetFolderByName looks a folder up by its exact name.
func (s *Store) GetFolderByName(ctx context.Context, name string) (*domain.Folder, error) {
	return s.Folders.GetByIndex(ctx, IndexName, name)
}

// ListFolders returns every folder ordered by name.
func (s *Store) ListFolders(ctx context.Context) ([]*domain.Folder, error) {
	return s.Folders.Find(ctx, nil, func(a, b *domain.Folder) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
}

// UpdateFolder applies fn to the folder with id atomically.
func (s *Store) UpdateFolder(ctx context.Context, id string, fn func(*domain.Folder) error) (*domain.Folder, error) {
	return s.Folders.Modify(ctx, id, fn)
}

// DeleteFolder removes the folder record only; notes are untouched.
func (s *Store) DeleteFolder(ctx context.Context, id string) error {
	return s.Folders.Delete(ctx, id)
}
