package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/notefulapp/noteful-server/internal/service"
)

func (s *Server) registerUserRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:      "createUser",
		Method:           http.MethodPost,
		Path:             "/users",
		Summary:          "Register user",
		Description:      "Creates an account. Rate limited per client IP.",
		Tags:             []string{"Users"},
		DefaultStatus:    http.StatusCreated,
		SkipValidateBody: true,
		Middlewares:      huma.Middlewares{s.rateLimitRegistrations},
	}, s.handleCreateUser)
}

// CreateUserBody is the request body for registration.
type CreateUserBody struct {
	Fullname string `json:"fullname,omitempty" doc:"Display name"`
	Username string `json:"username,omitempty" doc:"Login name (required, unique)"`
	Password string `json:"password,omitempty" doc:"Password (required)"`
}

// CreateUserInput wraps the registration request for Huma.
type CreateUserInput struct {
	Body CreateUserBody `required:"false"`
}

// CreatedUserOutput carries the new user and its location.
type CreatedUserOutput struct {
	Location string `header:"Location"`
	Body     UserResponse
}

func (s *Server) handleCreateUser(ctx context.Context, input *CreateUserInput) (*CreatedUserOutput, error) {
	u, err := s.services.User.Register(ctx, service.RegisterRequest{
		Fullname: input.Body.Fullname,
		Username: input.Body.Username,
		Password: input.Body.Password,
	})
	if err != nil {
		return nil, s.apiError(err)
	}

	return &CreatedUserOutput{
		Location: s.location("users", u.ID),
		Body:     toUserResponse(u),
	}, nil
}
