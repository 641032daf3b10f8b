package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/notefulapp/noteful-server/internal/service"
)

func (s *Server) registerFolderRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listFolders",
		Method:      http.MethodGet,
		Path:        "/folders",
		Summary:     "List folders",
		Tags:        []string{"Folders"},
	}, s.handleListFolders)

	huma.Register(s.api, huma.Operation{
		OperationID: "getFolder",
		Method:      http.MethodGet,
		Path:        "/folders/{id}",
		Summary:     "Get folder",
		Tags:        []string{"Folders"},
	}, s.handleGetFolder)

	huma.Register(s.api, huma.Operation{
		OperationID:      "createFolder",
		Method:           http.MethodPost,
		Path:             "/folders",
		Summary:          "Create folder",
		Tags:             []string{"Folders"},
		DefaultStatus:    http.StatusCreated,
		SkipValidateBody: true,
	}, s.handleCreateFolder)

	huma.Register(s.api, huma.Operation{
		OperationID:      "updateFolder",
		Method:           http.MethodPut,
		Path:             "/folders/{id}",
		Summary:          "Rename folder",
		Tags:             []string{"Folders"},
		DefaultStatus:    http.StatusNoContent,
		SkipValidateBody: true,
	}, s.handleUpdateFolder)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteFolder",
		Method:        http.MethodDelete,
		Path:          "/folders/{id}",
		Summary:       "Delete folder",
		Description:   "Deletes the folder and detaches every note filed in it",
		Tags:          []string{"Folders"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteFolder)
}

// === DTOs ===

// NamedBody is the request body shared by folders and tags.
type NamedBody struct {
	ID   *string `json:"id,omitempty" doc:"Must equal the path ID when present"`
	Name string  `json:"name,omitempty" doc:"Name (required, unique)"`
}

// ListFoldersOutput wraps the folder list for Huma.
type ListFoldersOutput struct {
	Body []FolderResponse
}

// FolderIDInput identifies a folder by path.
type FolderIDInput struct {
	ID string `path:"id" doc:"Folder ID"`
}

// FolderOutput wraps a single folder for Huma.
type FolderOutput struct {
	Body FolderResponse
}

// CreateFolderInput wraps the create folder request for Huma.
type CreateFolderInput struct {
	Body NamedBody `required:"false"`
}

// CreatedFolderOutput carries the new folder and its location.
type CreatedFolderOutput struct {
	Location string `header:"Location"`
	Body     FolderResponse
}

// UpdateFolderInput wraps the update folder request for Huma.
type UpdateFolderInput struct {
	ID   string    `path:"id" doc:"Folder ID"`
	Body NamedBody `required:"false"`
}

// === Handlers ===

func (s *Server) handleListFolders(ctx context.Context, _ *struct{}) (*ListFoldersOutput, error) {
	folders, err := s.services.Folder.ListFolders(ctx)
	if err != nil {
		return nil, s.apiError(err)
	}
	return &ListFoldersOutput{Body: toFolderResponses(folders)}, nil
}

func (s *Server) handleGetFolder(ctx context.Context, input *FolderIDInput) (*FolderOutput, error) {
	f, err := s.services.Folder.GetFolder(ctx, input.ID)
	if err != nil {
		return nil, s.apiError(err)
	}
	return &FolderOutput{Body: toFolderResponse(f)}, nil
}

func (s *Server) handleCreateFolder(ctx context.Context, input *CreateFolderInput) (*CreatedFolderOutput, error) {
	f, err := s.services.Folder.CreateFolder(ctx, service.FolderRequest{Name: input.Body.Name})
	if err != nil {
		return nil, s.apiError(err)
	}

	return &CreatedFolderOutput{
		Location: s.location("folders", f.ID),
		Body:     toFolderResponse(f),
	}, nil
}

func (s *Server) handleUpdateFolder(ctx context.Context, input *UpdateFolderInput) (*struct{}, error) {
	_, err := s.services.Folder.UpdateFolder(ctx, input.ID, service.FolderRequest{
		ID:   input.Body.ID,
		Name: input.Body.Name,
	})
	if err != nil {
		return nil, s.apiError(err)
	}
	return nil, nil
}

func (s *Server) handleDeleteFolder(ctx context.Context, input *FolderIDInput) (*struct{}, error) {
	if _, err := s.services.Folder.DeleteFolder(ctx, input.ID); err != nil {
		return nil, s.apiError(err)
	}
	return nil, nil
}
