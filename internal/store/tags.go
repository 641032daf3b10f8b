package store

import (
	"cmp"
	"context"

	"github.com/notefulapp/noteful-server/internal/domain"
)

// CreateTag stores a new tag. A taken name returns ErrAlreadyExists.
func (s *Store) CreateTag(ctx context.Context, t *domain.Tag) error {
	return s.Tags.Create(ctx, t.ID, t)
}

// GetTag returns the tag with id or ErrNotFound.
func (s *Store) GetTag(ctx context.Context, id string) (*domain.Tag, error) {
	return s.Tags.Get(ctx, id)
}

// ListTags returns every tag ordered by name.
func (s *Store) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	return s.Tags.Find(ctx, nil, func(a, b *domain.Tag) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
}

// UpdateTag applies fn to the tag with id atomically.
func (s *Store) UpdateTag(ctx context.Context, id string, fn func(*domain.Tag) error) (*domain.Tag, error) {
	return s.Tags.Modify(ctx, id, fn)
}

// DeleteTag removes the tag record only; notes are untouched.
func (s *Store) DeleteTag(ctx context.Context, id string) error {
	return s.Tags.Delete(ctx, id)
}
