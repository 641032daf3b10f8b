package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/notefulapp/noteful-server/internal/errors"
)

func TestUserService_Register(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	u, err := svc.users.Register(ctx, RegisterRequest{Fullname: "Bob User", Username: "bobuser", Password: "baseball"})
	require.NoError(t, err)
	assert.Len(t, u.ID, 24)
	assert.Equal(t, "Bob User", u.Fullname)
	assert.True(t, strings.HasPrefix(u.PasswordHash, "$argon2id$"))
	assert.NotContains(t, u.PasswordHash, "baseball")
}

func TestUserService_RegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantMsg string
	}{
		{"missing username", RegisterRequest{Password: "pw"}, "Missing `username` in request body"},
		{"missing password", RegisterRequest{Username: "bob"}, "Missing `password` in request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := setupServices(t)

			_, err := svc.users.Register(context.Background(), tt.req)
			de := requireCode(t, err, domainerrors.CodeValidation)
			assert.Equal(t, tt.wantMsg, de.Message)
		})
	}
}

func TestUserService_DuplicateUsername(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	_, err := svc.users.Register(ctx, RegisterRequest{Username: "bobuser", Password: "one"})
	require.NoError(t, err)

	before, err := svc.store.Users.Count(ctx)
	require.NoError(t, err)

	_, err = svc.users.Register(ctx, RegisterRequest{Username: "bobuser", Password: "two"})
	de := requireCode(t, err, domainerrors.CodeAlreadyExists)
	assert.Equal(t, "Username already exists", de.Message)

	after, err := svc.store.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "a conflict writes nothing")
	assert.Equal(t, 1, after)
}

func TestUserService_Authenticate(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	registered, err := svc.users.Register(ctx, RegisterRequest{Username: "bobuser", Password: "Base Ball"})
	require.NoError(t, err)

	u, err := svc.users.Authenticate(ctx, "bobuser", "Base Ball")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)

	for _, attempt := range []string{"base ball", "Base Ball ", "BaseBall"} {
		_, err = svc.users.Authenticate(ctx, "bobuser", attempt)
		assert.ErrorIs(t, err, ErrInvalidCredentials, attempt)
	}

	_, err = svc.users.Authenticate(ctx, "nobody", "Base Ball")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
