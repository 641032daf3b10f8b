package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/notefulapp/noteful-server/internal/service"
)

func (s *Server) registerTagRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listTags",
		Method:      http.MethodGet,
		Path:        "/tags",
		Summary:     "List tags",
		Tags:        []string{"Tags"},
	}, s.handleListTags)

	huma.Register(s.api, huma.Operation{
		OperationID: "getTag",
		Method:      http.MethodGet,
		Path:        "/tags/{id}",
		Summary:     "Get tag",
		Tags:        []string{"Tags"},
	}, s.handleGetTag)

	huma.Register(s.api, huma.Operation{
		OperationID:      "createTag",
		Method:           http.MethodPost,
		Path:             "/tags",
		Summary:          "Create tag",
		Tags:             []string{"Tags"},
		DefaultStatus:    http.StatusCreated,
		SkipValidateBody: true,
	}, s.handleCreateTag)

	huma.Register(s.api, huma.Operation{
		OperationID:      "updateTag",
		Method:           http.MethodPut,
		Path:             "/tags/{id}",
		Summary:          "Rename tag",
		Tags:             []string{"Tags"},
		DefaultStatus:    http.StatusNoContent,
		SkipValidateBody: true,
	}, s.handleUpdateTag)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteTag",
		Method:        http.MethodDelete,
		Path:          "/tags/{id}",
		Summary:       "Delete tag",
		Description:   "Deletes the tag and removes it from every note carrying it",
		Tags:          []string{"Tags"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteTag)
}

// === DTOs ===

// ListTagsOutput wraps the tag list for Huma.
type ListTagsOutput struct {
	Body []TagResponse
}

// TagIDInput identifies a tag by path.
type TagIDInput struct {
	ID string `path:"id" doc:"Tag ID"`
}

// TagOutput wraps a single tag for Huma.
type TagOutput struct {
	Body TagResponse
}

// CreateTagInput wraps the create tag request for Huma.
type CreateTagInput struct {
	Body NamedBody `required:"false"`
}

// CreatedTagOutput carries the new tag and its location.
type CreatedTagOutput struct {
	Location string `header:"Location"`
	Body     TagResponse
}

// UpdateTagInput wraps the update tag request for Huma.
type UpdateTagInput struct {
	ID   string    `path:"id" doc:"Tag ID"`
	Body NamedBody `required:"false"`
}

// === Handlers ===

func (s *Server) handleListTags(ctx context.Context, _ *struct{}) (*ListTagsOutput, error) {
	tags, err := s.services.Tag.ListTags(ctx)
	if err != nil {
		return nil, s.apiError(err)
	}
	return &ListTagsOutput{Body: toTagResponses(tags)}, nil
}

func (s *Server) handleGetTag(ctx context.Context, input *TagIDInput) (*TagOutput, error) {
	t, err := s.services.Tag.GetTag(ctx, input.ID)
	if err != nil {
		return nil, s.apiError(err)
	}
	return &TagOutput{Body: toTagResponse(t)}, nil
}

func (s *Server) handleCreateTag(ctx context.Context, input *CreateTagInput) (*CreatedTagOutput, error) {
	t, err := s.services.Tag.CreateTag(ctx, service.TagRequest{Name: input.Body.Name})
	if err != nil {
		return nil, s.apiError(err)
	}

	return &CreatedTagOutput{
		Location: s.location("tags", t.ID),
		Body:     toTagResponse(t),
	}, nil
}

func (s *Server) handleUpdateTag(ctx context.Context, input *UpdateTagInput) (*struct{}, error) {
	_, err := s.services.Tag.UpdateTag(ctx, input.ID, service.TagRequest{
		ID:   input.Body.ID,
		Name: input.Body.Name,
	})
	if err != nil {
		return nil, s.apiError(err)
	}
	return nil, nil
}

func (s *Server) handleDeleteTag(ctx context.Context, input *TagIDInput) (*struct{}, error) {
	if _, err := s.services.Tag.DeleteTag(ctx, input.ID); err != nil {
		return nil, s.apiError(err)
	}
	return nil, nil
}
