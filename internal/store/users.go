package store

import (
	"context"

	"github.com/notefulapp/noteful-server/internal/domain"
)

// CreateUser stores a new user. A taken username returns ErrAlreadyExists.
func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	return s.Users.Create(ctx, u.ID, u)
}

// GetUser returns the user with id or ErrNotFound.
func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.Users.Get(ctx, id)
}

// GetUserByUsername looks a user up by exact username.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.Users.GetByIndex(ctx, IndexUsername, username)
}
