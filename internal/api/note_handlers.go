package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/notefulapp/noteful-server/internal/service"
)

func (s *Server) registerNoteRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listNotes",
		Method:      http.MethodGet,
		Path:        "/notes",
		Summary:     "List notes",
		Description: "Returns notes matching every supplied filter, most recently updated first",
		Tags:        []string{"Notes"},
	}, s.handleListNotes)

	huma.Register(s.api, huma.Operation{
		OperationID: "getNote",
		Method:      http.MethodGet,
		Path:        "/notes/{id}",
		Summary:     "Get note",
		Tags:        []string{"Notes"},
	}, s.handleGetNote)

	huma.Register(s.api, huma.Operation{
		OperationID:      "createNote",
		Method:           http.MethodPost,
		Path:             "/notes",
		Summary:          "Create note",
		Tags:             []string{"Notes"},
		DefaultStatus:    http.StatusCreated,
		SkipValidateBody: true,
	}, s.handleCreateNote)

	huma.Register(s.api, huma.Operation{
		OperationID:      "updateNote",
		Method:           http.MethodPut,
		Path:             "/notes/{id}",
		Summary:          "Update note",
		Description:      "Applies the fields present in the body; absent fields are left unchanged",
		Tags:             []string{"Notes"},
		DefaultStatus:    http.StatusNoContent,
		SkipValidateBody: true,
	}, s.handleUpdateNote)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteNote",
		Method:        http.MethodDelete,
		Path:          "/notes/{id}",
		Summary:       "Delete note",
		Tags:          []string{"Notes"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteNote)
}

// === DTOs ===

// ListNotesInput contains the optional listing filters.
type ListNotesInput struct {
	SearchTerm string `query:"searchTerm" doc:"Case-insensitive substring of title or content"`
	FolderID   string `query:"folderId" doc:"Only notes filed in this folder"`
	TagID      string `query:"tagId" doc:"Only notes carrying this tag"`
}

// ListNotesOutput wraps the note list for Huma.
type ListNotesOutput struct {
	Body []NoteResponse
}

// NoteIDInput identifies a note by path.
type NoteIDInput struct {
	ID string `path:"id" doc:"Note ID"`
}

// NoteOutput wraps a single note for Huma.
type NoteOutput struct {
	Body NoteResponse
}

// CreateNoteBody is the request body for creating a note.
type CreateNoteBody struct {
	Title    string   `json:"title,omitempty" doc:"Note title (required)"`
	Content  string   `json:"content,omitempty" doc:"Note body"`
	FolderID string   `json:"folderId,omitempty" doc:"Folder ID"`
	Tags     []string `json:"tags,omitempty" doc:"Tag IDs"`
}

// CreateNoteInput wraps the create note request for Huma.
type CreateNoteInput struct {
	Body CreateNoteBody `required:"false"`
}

// CreatedNoteOutput carries the new note and its location.
type CreatedNoteOutput struct {
	Location string `header:"Location"`
	Body     NoteResponse
}

// UpdateNoteBody is the request body for updating a note. Absent and null
// fields are left unchanged.
type UpdateNoteBody struct {
	ID       *string   `json:"id,omitempty" doc:"Must equal the path ID when present"`
	Title    *string   `json:"title,omitempty" doc:"Note title; must not be empty when present"`
	Content  *string   `json:"content,omitempty" doc:"Note body; empty clears it"`
	FolderID *string   `json:"folderId,omitempty" doc:"Folder ID; empty detaches the note"`
	Tags     *[]string `json:"tags,omitempty" doc:"Tag IDs; an empty list clears them"`
}

// UpdateNoteInput wraps the update note request for Huma.
type UpdateNoteInput struct {
	ID   string         `path:"id" doc:"Note ID"`
	Body UpdateNoteBody `required:"false"`
}

// === Handlers ===

func (s *Server) handleListNotes(ctx context.Context, input *ListNotesInput) (*ListNotesOutput, error) {
	notes, err := s.services.Note.ListNotes(ctx, service.ListNotesRequest{
		SearchTerm: input.SearchTerm,
		FolderID:   input.FolderID,
		TagID:      input.TagID,
	})
	if err != nil {
		return nil, s.apiError(err)
	}

	return &ListNotesOutput{Body: toNoteResponses(notes)}, nil
}

func (s *Server) handleGetNote(ctx context.Context, input *NoteIDInput) (*NoteOutput, error) {
	n, err := s.services.Note.GetNote(ctx, input.ID)
	if err != nil {
		return nil, s.apiError(err)
	}

	return &NoteOutput{Body: toNoteResponse(n)}, nil
}

func (s *Server) handleCreateNote(ctx context.Context, input *CreateNoteInput) (*CreatedNoteOutput, error) {
	n, err := s.services.Note.CreateNote(ctx, service.CreateNoteRequest{
		Title:    input.Body.Title,
		Content:  input.Body.Content,
		FolderID: input.Body.FolderID,
		Tags:     input.Body.Tags,
	})
	if err != nil {
		return nil, s.apiError(err)
	}

	return &CreatedNoteOutput{
		Location: s.location("notes", n.ID),
		Body:     toNoteResponse(n),
	}, nil
}

func (s *Server) handleUpdateNote(ctx context.Context, input *UpdateNoteInput) (*struct{}, error) {
	_, err := s.services.Note.UpdateNote(ctx, input.ID, service.UpdateNoteRequest{
		ID:       input.Body.ID,
		Title:    input.Body.Title,
		Content:  input.Body.Content,
		FolderID: input.Body.FolderID,
		Tags:     input.Body.Tags,
	})
	if err != nil {
		return nil, s.apiError(err)
	}
	return nil, nil
}

func (s *Server) handleDeleteNote(ctx context.Context, input *NoteIDInput) (*struct{}, error) {
	if err := s.services.Note.DeleteNote(ctx, input.ID); err != nil {
		return nil, s.apiError(err)
	}
	return nil, nil
}
