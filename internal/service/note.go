package service

import (
	"context"
	"log/slog"

	"github.com/notefulapp/noteful-server/internal/domain"
	domainerrors "github.com/notefulapp/noteful-server/internal/errors"
	"github.com/notefulapp/noteful-server/internal/id"
	"github.com/notefulapp/noteful-server/internal/store"
	"github.com/notefulapp/noteful-server/internal/validation"
)

const noteNotFound = "Note not found"

// NoteStore is the persistence NoteService needs.
type NoteStore interface {
	CreateNote(ctx context.Context, n *domain.Note) error
	GetNote(ctx context.Context, id string) (*domain.Note, error)
	ListNotes(ctx context.Context, f store.NoteFilter) ([]*domain.Note, error)
	UpdateNote(ctx context.Context, id string, fn func(*domain.Note) error) (*domain.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

// NoteService orchestrates note operations.
type NoteService struct {
	store     NoteStore
	logger    *slog.Logger
	validator *validation.Validator
}

// NewNoteService creates a new note service.
func NewNoteService(store NoteStore, logger *slog.Logger) *NoteService {
	return &NoteService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

// ListNotesRequest holds the optional listing filters.
// Empty values mean "no filter".
type ListNotesRequest struct {
	SearchTerm string `json:"searchTerm"`
	FolderID   string `json:"folderId" validate:"omitempty,objectid"`
	TagID      string `json:"tagId" validate:"omitempty,objectid"`
}

// ListNotes returns the notes matching every supplied filter, most
// recently updated first.
func (s *NoteService) ListNotes(ctx context.Context, req ListNotesRequest) ([]*domain.Note, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	notes, err := s.store.ListNotes(ctx, store.NoteFilter{
		SearchTerm: req.SearchTerm,
		FolderID:   id.Normalize(req.FolderID),
		TagID:      id.Normalize(req.TagID),
	})
	if err != nil {
		return nil, storeError(err, "", "")
	}
	return notes, nil
}

// GetNote returns a single note.
func (s *NoteService) GetNote(ctx context.Context, noteID string) (*domain.Note, error) {
	noteID, err := requireID(noteID)
	if err != nil {
		return nil, err
	}

	n, err := s.store.GetNote(ctx, noteID)
	if err != nil {
		return nil, storeError(err, noteNotFound, "")
	}
	return n, nil
}

// CreateNoteRequest contains fields for creating a note.
type CreateNoteRequest struct {
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content"`
	FolderID string   `json:"folderId"`
	Tags     []string `json:"tags"`
}

// CreateNote validates and stores a new note.
func (s *NoteService) CreateNote(ctx context.Context, req CreateNoteRequest) (*domain.Note, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if err := checkNoteReferences(req.FolderID, req.Tags); err != nil {
		return nil, err
	}

	noteID, err := id.Generate()
	if err != nil {
		return nil, storeError(err, "", "")
	}

	n := &domain.Note{
		Record:   domain.Record{ID: noteID},
		Title:    req.Title,
		Content:  req.Content,
		FolderID: id.Normalize(req.FolderID),
	}
	n.SetTags(id.NormalizeAll(req.Tags))
	n.InitTimestamps()

	if err := s.store.CreateNote(ctx, n); err != nil {
		return nil, storeError(err, "", "")
	}

	s.logger.Info("note created", "id", n.ID, "folder_id", n.FolderID, "tags", len(n.Tags))
	return n, nil
}

// UpdateNoteRequest contains fields for updating a note. Nil means "leave
// unchanged"; a non-nil zero value is applied, so an empty folderId
// detaches the note and an empty tags list clears it.
type UpdateNoteRequest struct {
	ID       *string   `json:"id"`
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	FolderID *string   `json:"folderId"`
	Tags     *[]string `json:"tags"`
}

// UpdateNote applies the present fields of req to the note.
func (s *NoteService) UpdateNote(ctx context.Context, noteID string, req UpdateNoteRequest) (*domain.Note, error) {
	noteID, err := requireID(noteID)
	if err != nil {
		return nil, err
	}
	if err := requireMatchingID(noteID, req.ID); err != nil {
		return nil, err
	}
	if req.Title != nil && *req.Title == "" {
		return nil, domainerrors.Validation("Missing `title` in request body")
	}

	var folderID string
	if req.FolderID != nil {
		folderID = *req.FolderID
	}
	var tags []string
	if req.Tags != nil {
		tags = *req.Tags
	}
	if err := checkNoteReferences(folderID, tags); err != nil {
		return nil, err
	}

	n, err := s.store.UpdateNote(ctx, noteID, func(n *domain.Note) error {
		if req.Title != nil {
			n.Title = *req.Title
		}
		if req.Content != nil {
			n.Content = *req.Content
		}
		if req.FolderID != nil {
			n.FolderID = id.Normalize(*req.FolderID)
		}
		if req.Tags != nil {
			n.SetTags(id.NormalizeAll(*req.Tags))
		}
		n.Touch()
		return nil
	})
	if err != nil {
		return nil, storeError(err, noteNotFound, "")
	}

	s.logger.Info("note updated", "id", n.ID)
	return n, nil
}

// DeleteNote removes a note. Nothing references notes, so there is no cascade.
func (s *NoteService) DeleteNote(ctx context.Context, noteID string) error {
	noteID, err := requireID(noteID)
	if err != nil {
		return err
	}

	if err := s.store.DeleteNote(ctx, noteID); err != nil {
		return storeError(err, noteNotFound, "")
	}

	s.logger.Info("note deleted", "id", noteID)
	return nil
}
