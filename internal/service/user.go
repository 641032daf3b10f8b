package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/notefulapp/noteful-server/internal/domain"
	"github.com/notefulapp/noteful-server/internal/id"
	"github.com/notefulapp/noteful-server/internal/store"
	"github.com/notefulapp/noteful-server/internal/validation"
)

const usernameConflict = "Username already exists"

// UserStore is the persistence UserService needs.
type UserStore interface {
	CreateUser(ctx context.Context, u *domain.User) error
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(encodedHash, password string) (bool, error)
}

// UserService registers and authenticates users.
type UserService struct {
	store     UserStore
	hasher    PasswordHasher
	logger    *slog.Logger
	validator *validation.Validator
}

// NewUserService creates a new user service.
func NewUserService(store UserStore, hasher PasswordHasher, logger *slog.Logger) *UserService {
	return &UserService{
		store:     store,
		hasher:    hasher,
		logger:    logger,
		validator: validation.New(),
	}
}

// RegisterRequest contains fields for creating a user.
type RegisterRequest struct {
	Fullname string `json:"fullname"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,max=1024"`
}

// Register creates a user. The password is stored only as an argon2id hash.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, storeError(err, "", "")
	}

	userID, err := id.Generate()
	if err != nil {
		return nil, storeError(err, "", "")
	}

	u := &domain.User{
		Record:       domain.Record{ID: userID},
		Fullname:     req.Fullname,
		Username:     req.Username,
		PasswordHash: hash,
	}
	u.InitTimestamps()

	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, storeError(err, "", usernameConflict)
	}

	s.logger.Info("user registered", "id", u.ID, "username", u.Username)
	return u, nil
}

// Authenticate checks password against the stored hash for username.
// The comparison is exact: no trimming or case folding.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	u, err := s.store.GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, storeError(err, "", "")
	}

	ok, err := s.hasher.Verify(u.PasswordHash, password)
	if err != nil {
		return nil, storeError(err, "", "")
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
