package service

import (
	"errors"
	"fmt"

	domainerrors "github.com/notefulapp/noteful-server/internal/errors"
	"github.com/notefulapp/noteful-server/internal/id"
	"github.com/notefulapp/noteful-server/internal/store"
)

// ErrInvalidCredentials is returned by Authenticate for an unknown user or
// a wrong password.
var ErrInvalidCredentials = errors.New("invalid username or password")

// invalidID is the error for a malformed path id.
func invalidID() *domainerrors.Error {
	return domainerrors.Validation("Invalid ID")
}

// requireID rejects malformed ids before any store call and returns the
// normalized form the store is keyed by.
func requireID(s string) (string, error) {
	if !id.IsValid(s) {
		return "", invalidID()
	}
	return id.Normalize(s), nil
}

// requireMatchingID enforces that an id carried in a PUT body names the
// record in the path. pathID is already normalized.
func requireMatchingID(pathID string, bodyID *string) error {
	if bodyID == nil || id.Normalize(*bodyID) == pathID {
		return nil
	}
	return domainerrors.Validationf("Request path id (%s) and request body id (%s) must match", pathID, *bodyID)
}

// storeError translates a store failure into a domain error.
// notFound and conflict are the messages for the two expected outcomes;
// anything else becomes an internal error.
func storeError(err error, notFound, conflict string) error {
	var domainErr *domainerrors.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &domainErr):
		return err
	case errors.Is(err, store.ErrNotFound):
		return domainerrors.NotFound(notFound)
	case errors.Is(err, store.ErrAlreadyExists) && conflict != "":
		return domainerrors.AlreadyExists(conflict).WithCause(err)
	default:
		return domainerrors.Internal(fmt.Errorf("store: %w", err))
	}
}
