package response

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notefulapp/noteful-server/internal/errors"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestJSON_WritesBareValue(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusOK, []string{"a", "b"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `["a","b"]`, w.Body.String())
}

func TestFromError_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"validation", errors.Validation("Invalid ID"), http.StatusBadRequest, "VALIDATION", "Invalid ID"},
		{"not found", errors.NotFound("Note not found"), http.StatusNotFound, "NOT_FOUND", "Note not found"},
		{"conflict", errors.AlreadyExists("Tag name already exists"), http.StatusBadRequest, "ALREADY_EXISTS", "Tag name already exists"},
		{"rate limited", errors.RateLimited("Too many registrations"), http.StatusTooManyRequests, "RATE_LIMITED", "Too many registrations"},
		{"wrapped", fmt.Errorf("handler: %w", errors.NotFound("gone")), http.StatusNotFound, "NOT_FOUND", "gone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := FromError(tt.err)
			assert.Equal(t, tt.wantStatus, body.GetStatus())
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestFromError_HidesInternalCauses(t *testing.T) {
	for _, err := range []error{
		stderrors.New("badger: txn conflict"),
		errors.Internal(stderrors.New("disk full")),
	} {
		body := FromError(err)
		assert.Equal(t, http.StatusInternalServerError, body.Status)
		assert.Equal(t, "Internal Server Error", body.Message)
		assert.Nil(t, body.Details)
	}
}

func TestError_LogsOnly5xx(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	w := httptest.NewRecorder()
	Error(w, errors.NotFound("Folder not found"), logger)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, logs.String())

	w = httptest.NewRecorder()
	Error(w, stderrors.New("secret cause"), logger)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret cause")
	assert.Contains(t, logs.String(), "secret cause")
}

func TestNotFound(t *testing.T) {
	w := httptest.NewRecorder()

	NotFound(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "Not Found", body["message"])
}

func TestMethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()

	MethodNotAllowed(w, httptest.NewRequest(http.MethodPatch, "/notes", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", decode(t, w)["code"])
}
