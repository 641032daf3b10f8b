package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/notefulapp/noteful-server/internal/domain"
	domainerrors "github.com/notefulapp/noteful-server/internal/errors"
	"github.com/notefulapp/noteful-server/internal/id"
	"github.com/notefulapp/noteful-server/internal/store"
	"github.com/notefulapp/noteful-server/internal/validation"
)

const (
	tagNotFound = "Tag not found"
	tagConflict = "Tag name already exists"
)

// TagStore is the persistence TagService needs, including the note side
// of the delete cascade.
type TagStore interface {
	CreateTag(ctx context.Context, t *domain.Tag) error
	GetTag(ctx context.Context, id string) (*domain.Tag, error)
	ListTags(ctx context.Context) ([]*domain.Tag, error)
	UpdateTag(ctx context.Context, id string, fn func(*domain.Tag) error) (*domain.Tag, error)
	DeleteTag(ctx context.Context, id string) error
	PullTag(ctx context.Context, tagID string) (int, error)
}

// TagService orchestrates tag operations.
type TagService struct {
	store     TagStore
	cascade   *Cascade
	logger    *slog.Logger
	validator *validation.Validator
}

// NewTagService creates a new tag service.
func NewTagService(store TagStore, cascade *Cascade, logger *slog.Logger) *TagService {
	return &TagService{
		store:     store,
		cascade:   cascade,
		logger:    logger,
		validator: validation.New(),
	}
}

// TagRequest is the body for creating or renaming a tag.
type TagRequest struct {
	ID   *string `json:"id"`
	Name string  `json:"name" validate:"required"`
}

// ListTags returns every tag ordered by name.
func (s *TagService) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	tags, err := s.store.ListTags(ctx)
	if err != nil {
		return nil, storeError(err, "", "")
	}
	return tags, nil
}

// GetTag returns a single tag.
func (s *TagService) GetTag(ctx context.Context, tagID string) (*domain.Tag, error) {
	tagID, err := requireID(tagID)
	if err != nil {
		return nil, err
	}

	t, err := s.store.GetTag(ctx, tagID)
	if err != nil {
		return nil, storeError(err, tagNotFound, "")
	}
	return t, nil
}

// CreateTag stores a new tag. A taken name is a conflict.
func (s *TagService) CreateTag(ctx context.Context, req TagRequest) (*domain.Tag, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	tagID, err := id.Generate()
	if err != nil {
		return nil, storeError(err, "", "")
	}

	t := &domain.Tag{Record: domain.Record{ID: tagID}, Name: req.Name}
	t.InitTimestamps()

	if err := s.store.CreateTag(ctx, t); err != nil {
		return nil, storeError(err, "", tagConflict)
	}

	s.logger.Info("tag created", "id", t.ID, "name", t.Name)
	return t, nil
}

// UpdateTag renames a tag.
func (s *TagService) UpdateTag(ctx context.Context, tagID string, req TagRequest) (*domain.Tag, error) {
	tagID, err := requireID(tagID)
	if err != nil {
		return nil, err
	}
	if err := requireMatchingID(tagID, req.ID); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	t, err := s.store.UpdateTag(ctx, tagID, func(t *domain.Tag) error {
		t.Name = req.Name
		t.Touch()
		return nil
	})
	if err != nil {
		return nil, storeError(err, tagNotFound, tagConflict)
	}

	s.logger.Info("tag updated", "id", t.ID, "name", t.Name)
	return t, nil
}

// DeleteTag removes a tag and pulls it from every note carrying it.
func (s *TagService) DeleteTag(ctx context.Context, tagID string) (CascadeResult, error) {
	tagID, err := requireID(tagID)
	if err != nil {
		return CascadeResult{}, err
	}

	if _, err := s.store.GetTag(ctx, tagID); err != nil {
		return CascadeResult{}, storeError(err, tagNotFound, "")
	}

	res := s.cascade.Run(ctx, "tag", tagID,
		func(ctx context.Context) error { return s.store.DeleteTag(ctx, tagID) },
		func(ctx context.Context) (int, error) { return s.store.PullTag(ctx, tagID) },
	)
	if err := cascadeError(res, tagNotFound); err != nil {
		return res, err
	}

	s.logger.Info("tag deleted", "id", tagID, "notes_updated", res.NotesUpdated)
	return res, nil
}

// cascadeError maps a cascade outcome to the error reported to the caller.
// A record that vanished between the lookup and the delete (a concurrent
// delete won) is reported as not found.
func cascadeError(res CascadeResult, notFound string) error {
	if res.Err() == nil {
		return nil
	}
	if res.UpdateErr == nil && errors.Is(res.RemoveErr, store.ErrNotFound) {
		return domainerrors.NotFound(notFound)
	}
	return domainerrors.Internal(res.Err())
}
