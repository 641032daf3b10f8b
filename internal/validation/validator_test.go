package validation_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/notefulapp/noteful-server/internal/errors"
	"github.com/notefulapp/noteful-server/internal/validation"
)

type registerRequest struct {
	Fullname string `json:"fullname"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type noteRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitnil,min=1"`
	FolderID string  `json:"folderId" validate:"omitempty,objectid"`
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	err := v.Validate(registerRequest{Username: "bobuser", Password: "password123"})
	assert.NoError(t, err)
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name    string
		req     registerRequest
		wantMsg string
	}{
		{
			name:    "missing username",
			req:     registerRequest{Password: "password123"},
			wantMsg: "Missing `username` in request body",
		},
		{
			name:    "missing password",
			req:     registerRequest{Username: "bobuser"},
			wantMsg: "Missing `password` in request body",
		},
		{
			name:    "password too short",
			req:     registerRequest{Username: "bobuser", Password: "short"},
			wantMsg: "`password` must be at least 8 characters",
		},
		{
			name:    "password too long",
			req:     registerRequest{Username: "bobuser", Password: strings.Repeat("x", 73)},
			wantMsg: "`password` must not exceed 72 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			require.Error(t, err)

			var domainErr *domainerrors.Error
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())
			assert.Equal(t, tt.wantMsg, domainErr.Message)
		})
	}
}

func TestValidator_FirstFieldWinsMessage(t *testing.T) {
	v := validation.New()

	err := v.Validate(registerRequest{})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "Missing `username` in request body", domainErr.Message)

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Len(t, details, 2)
}

func TestValidator_PresenceOfPointerFields(t *testing.T) {
	v := validation.New()

	empty := ""
	title := "Cats"

	assert.NoError(t, v.Validate(noteRequest{}), "absent title is allowed")
	assert.NoError(t, v.Validate(noteRequest{Title: &title}))

	// min applies to the pointed-at value; required would only check non-nil.
	err := v.Validate(noteRequest{Title: &empty})
	require.Error(t, err)
	assert.Equal(t, "`title` must be at least 1 characters", err.Error())
}

func TestValidator_ObjectID(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Validate(noteRequest{FolderID: "111111111111111111111100"}))

	err := v.Validate(noteRequest{FolderID: "NOT-A-VALID-ID"})
	require.Error(t, err)
	assert.Equal(t, "Invalid `folderId`", err.Error())
}

func TestValidator_JSONFieldNames(t *testing.T) {
	v := validation.New()

	err := v.Validate(registerRequest{Password: "password123"})
	require.Error(t, err)

	// Should use JSON tag name "username", not struct field name "Username"
	assert.Contains(t, err.Error(), "username")
	assert.NotContains(t, err.Error(), "Username")
}
