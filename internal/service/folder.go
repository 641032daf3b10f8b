package service

import (
	"context"
	"log/slog"

	"github.com/notefulapp/noteful-server/internal/domain"
	"github.com/notefulapp/noteful-server/internal/id"
	"github.com/notefulapp/noteful-server/internal/validation"
)

const (
	folderNotFound = "Folder not found"
	folderConflict = "Folder name already exists"
)

// FolderStore is the persistence FolderService needs, including the note
// side of the delete cascade.
type FolderStore interface {
	CreateFolder(ctx context.Context, f *domain.Folder) error
	GetFolder(ctx context.Context, id string) (*domain.Folder, error)
	ListFolders(ctx context.Context) ([]*domain.Folder, error)
	UpdateFolder(ctx context.Context, id string, fn func(*domain.Folder) error) (*domain.Folder, error)
	DeleteFolder(ctx context.Context, id string) error
	DetachFolder(ctx context.Context, folderID string) (int, error)
}

// FolderService orchestrates folder operations.
type FolderService struct {
	store     FolderStore
	cascade   *Cascade
	logger    *slog.Logger
	validator *validation.Validator
}

// NewFolderService creates a new folder service.
func NewFolderService(store FolderStore, cascade *Cascade, logger *slog.Logger) *FolderService {
	return &FolderService{
		store:     store,
		cascade:   cascade,
		logger:    logger,
		validator: validation.New(),
	}
}

// FolderRequest is the body for creating or renaming a folder.
type FolderRequest struct {
	ID   *string `json:"id"`
	Name string  `json:"name" validate:"required"`
}

// ListFolders returns every folder ordered by name.
func (s *FolderService) ListFolders(ctx context.Context) ([]*domain.Folder, error) {
	folders, err := s.store.ListFolders(ctx)
	if err != nil {
		return nil, storeError(err, "", "")
	}
	return folders, nil
}

// GetFolder returns a single folder.
func (s *FolderService) GetFolder(ctx context.Context, folderID string) (*domain.Folder, error) {
	folderID, err := requireID(folderID)
	if err != nil {
		return nil, err
	}

	f, err := s.store.GetFolder(ctx, folderID)
	if err != nil {
		return nil, storeError(err, folderNotFound, "")
	}
	return f, nil
}

// CreateFolder stores a new folder. A taken name is a conflict.
func (s *FolderService) CreateFolder(ctx context.Context, req FolderRequest) (*domain.Folder, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	folderID, err := id.Generate()
	if err != nil {
		return nil, storeError(err, "", "")
	}

	f := &domain.Folder{Record: domain.Record{ID: folderID}, Name: req.Name}
	f.InitTimestamps()

	if err := s.store.CreateFolder(ctx, f); err != nil {
		return nil, storeError(err, "", folderConflict)
	}

	s.logger.Info("folder created", "id", f.ID, "name", f.Name)
	return f, nil
}

// UpdateFolder renames a folder.
func (s *FolderService) UpdateFolder(ctx context.Context, folderID string, req FolderRequest) (*domain.Folder, error) {
	folderID, err := requireID(folderID)
	if err != nil {
		return nil, err
	}
	if err := requireMatchingID(folderID, req.ID); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	f, err := s.store.UpdateFolder(ctx, folderID, func(f *domain.Folder) error {
		f.Name = req.Name
		f.Touch()
		return nil
	})
	if err != nil {
		return nil, storeError(err, folderNotFound, folderConflict)
	}

	s.logger.Info("folder updated", "id", f.ID, "name", f.Name)
	return f, nil
}

// DeleteFolder removes a folder and detaches every note filed in it.
func (s *FolderService) DeleteFolder(ctx context.Context, folderID string) (CascadeResult, error) {
	folderID, err := requireID(folderID)
	if err != nil {
		return CascadeResult{}, err
	}

	if _, err := s.store.GetFolder(ctx, folderID); err != nil {
		return CascadeResult{}, storeError(err, folderNotFound, "")
	}

	res := s.cascade.Run(ctx, "folder", folderID,
		func(ctx context.Context) error { return s.store.DeleteFolder(ctx, folderID) },
		func(ctx context.Context) (int, error) { return s.store.DetachFolder(ctx, folderID) },
	)
	if err := cascadeError(res, folderNotFound); err != nil {
		return res, err
	}

	s.logger.Info("folder deleted", "id", folderID, "notes_detached", res.NotesUpdated)
	return res, nil
}
