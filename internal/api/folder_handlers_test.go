package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createFolder(t *testing.T, ts *testServer, name string) FolderResponse {
	t.Helper()
	resp := ts.api.Post("/folders", map[string]any{"name": name})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	return decode[FolderResponse](t, resp)
}

func TestFolders_CreateAndGet(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/folders", map[string]any{"name": "Work"})
	require.Equal(t, http.StatusCreated, resp.Code)

	created := decode[FolderResponse](t, resp)
	assert.Len(t, created.ID, 24)
	assert.Equal(t, "Work", created.Name)
	assert.Equal(t, "/folders/"+created.ID, resp.Header().Get("Location"))
	assert.NotContains(t, resp.Body.String(), "$schema")

	resp = ts.api.Get("/folders/" + created.ID)
	require.Equal(t, http.StatusOK, resp.Code)
	got := decode[FolderResponse](t, resp)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Work", got.Name)
}

func TestFolders_ListIsAlwaysAnArray(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/folders")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())

	createFolder(t, ts, "b")
	createFolder(t, ts, "a")

	folders := decode[[]FolderResponse](t, ts.api.Get("/folders"))
	require.Len(t, folders, 2)
	assert.Equal(t, "a", folders[0].Name)
}

func TestFolders_CreateErrors(t *testing.T) {
	ts := setupTestServer(t)
	createFolder(t, ts, "Work")

	tests := []struct {
		name    string
		body    any
		message string
	}{
		{"missing name", map[string]any{}, "Missing `name` in request body"},
		{"empty name", map[string]any{"name": ""}, "Missing `name` in request body"},
		{"duplicate", map[string]any{"name": "Work"}, "Folder name already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.api.Post("/folders", tt.body)
			require.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())
			assert.Equal(t, tt.message, decode[map[string]any](t, resp)["message"])
		})
	}

	folders := decode[[]FolderResponse](t, ts.api.Get("/folders"))
	assert.Len(t, folders, 1, "failed creates persist nothing")
}

func TestFolders_MalformedBodyIs400(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/folders", "Content-Type: application/json", strings.NewReader(`{"name":`))

	requireError(t, resp, http.StatusBadRequest, "VALIDATION", "")
}

func TestFolders_InvalidAndAbsentIDs(t *testing.T) {
	ts := setupTestServer(t)

	for _, bad := range []string{"NOT-A-VALID-ID", "DOESNOTEXIST", "123"} {
		requireError(t, ts.api.Get("/folders/"+bad), http.StatusBadRequest, "VALIDATION", "Invalid ID")
		requireError(t, ts.api.Put("/folders/"+bad, map[string]any{"name": "x"}), http.StatusBadRequest, "VALIDATION", "Invalid ID")
		requireError(t, ts.api.Delete("/folders/"+bad), http.StatusBadRequest, "VALIDATION", "Invalid ID")
	}

	absent := "5ba146212e05e0150bcbdc26"
	requireError(t, ts.api.Get("/folders/"+absent), http.StatusNotFound, "NOT_FOUND", "Folder not found")
	requireError(t, ts.api.Put("/folders/"+absent, map[string]any{"name": "x"}), http.StatusNotFound, "NOT_FOUND", "Folder not found")
	requireError(t, ts.api.Delete("/folders/"+absent), http.StatusNotFound, "NOT_FOUND", "Folder not found")
}

func TestFolders_Update(t *testing.T) {
	ts := setupTestServer(t)
	work := createFolder(t, ts, "Work")
	createFolder(t, ts, "Home")

	resp := ts.api.Put("/folders/"+work.ID, map[string]any{"id": work.ID, "name": "Job"})
	require.Equal(t, http.StatusNoContent, resp.Code, resp.Body.String())
	assert.Empty(t, resp.Body.String())

	got := decode[FolderResponse](t, ts.api.Get("/folders/"+work.ID))
	assert.Equal(t, "Job", got.Name)

	requireError(t, ts.api.Put("/folders/"+work.ID, map[string]any{"name": "Home"}),
		http.StatusBadRequest, "ALREADY_EXISTS", "Folder name already exists")

	requireError(t, ts.api.Put("/folders/"+work.ID, map[string]any{}),
		http.StatusBadRequest, "VALIDATION", "Missing `name` in request body")

	resp = ts.api.Put("/folders/"+work.ID, map[string]any{"id": "5ba146212e05e0150bcbdc26", "name": "X"})
	requireError(t, resp, http.StatusBadRequest, "VALIDATION",
		"Request path id ("+work.ID+") and request body id (5ba146212e05e0150bcbdc26) must match")
}

// Create folder Work, file a note in it, delete the folder: the note loses
// its folder and a second delete is a 404.
func TestFolders_DeleteScenario(t *testing.T) {
	ts := setupTestServer(t)
	work := createFolder(t, ts, "Work")

	resp := ts.api.Post("/notes", map[string]any{"title": "Quarterly plan", "folderId": work.ID})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	note := decode[NoteResponse](t, resp)
	require.Equal(t, work.ID, note.FolderID)

	resp = ts.api.Delete("/folders/" + work.ID)
	require.Equal(t, http.StatusNoContent, resp.Code, resp.Body.String())

	resp = ts.api.Get("/notes/" + note.ID)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotContains(t, decode[map[string]any](t, resp), "folderId")

	inFolder := decode[[]NoteResponse](t, ts.api.Get("/notes?folderId="+work.ID))
	assert.Empty(t, inFolder)

	requireError(t, ts.api.Delete("/folders/"+work.ID), http.StatusNotFound, "NOT_FOUND", "Folder not found")
}
