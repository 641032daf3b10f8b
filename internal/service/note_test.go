package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/notefulapp/noteful-server/internal/errors"
)

const (
	validFolder = "111111111111111111111100"
	validTag    = "222222222222222222222200"
	absentID    = "999999999999999999999999"
)

func requireCode(t *testing.T, err error, code domainerrors.Code) *domainerrors.Error {
	t.Helper()
	require.Error(t, err)
	var de *domainerrors.Error
	require.ErrorAs(t, err, &de)
	require.Equal(t, code, de.Code, "message: %s", de.Message)
	return de
}

func TestNoteService_CreateAndGet(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	n, err := svc.notes.CreateNote(ctx, CreateNoteRequest{
		Title:    "Cats",
		Content:  "meow",
		FolderID: validFolder,
		Tags:     []string{validTag, validTag},
	})
	require.NoError(t, err)
	assert.Len(t, n.ID, 24)
	assert.Equal(t, []string{validTag}, n.Tags, "duplicate tags collapse")
	assert.False(t, n.CreatedAt.IsZero())

	got, err := svc.notes.GetNote(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cats", got.Title)
	assert.Equal(t, validFolder, got.FolderID)
}

func TestNoteService_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateNoteRequest
		wantMsg string
	}{
		{"missing title", CreateNoteRequest{Content: "x"}, "Missing `title` in request body"},
		{"bad folder", CreateNoteRequest{Title: "x", FolderID: "nope"}, "Invalid `folderId` value \"nope\""},
		{"one bad tag", CreateNoteRequest{Title: "x", Tags: []string{validTag, "NOT-A-VALID-ID"}}, "Invalid `tags` value \"NOT-A-VALID-ID\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := setupServices(t)

			_, err := svc.notes.CreateNote(context.Background(), tt.req)
			de := requireCode(t, err, domainerrors.CodeValidation)
			assert.Equal(t, tt.wantMsg, de.Message)
			assert.Equal(t, http.StatusBadRequest, de.HTTPStatus())

			assert.Zero(t, svc.store.calls.Load(), "no store call on invalid input")
			n, err := svc.store.Notes.Count(context.Background())
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

func TestNoteService_MalformedIDNeverTouchesStore(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	for _, bad := range []string{"NOT-A-VALID-ID", "DOESNOTEXIST", "", "123"} {
		_, err := svc.notes.GetNote(ctx, bad)
		requireCode(t, err, domainerrors.CodeValidation)

		_, err = svc.notes.UpdateNote(ctx, bad, UpdateNoteRequest{Title: ptr("x")})
		requireCode(t, err, domainerrors.CodeValidation)

		err = svc.notes.DeleteNote(ctx, bad)
		requireCode(t, err, domainerrors.CodeValidation)
	}

	assert.Zero(t, svc.store.calls.Load())
}

func TestNoteService_AbsentIDIsNotFound(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	_, err := svc.notes.GetNote(ctx, absentID)
	de := requireCode(t, err, domainerrors.CodeNotFound)
	assert.Equal(t, "Note not found", de.Message)

	_, err = svc.notes.UpdateNote(ctx, absentID, UpdateNoteRequest{Title: ptr("x")})
	requireCode(t, err, domainerrors.CodeNotFound)

	requireCode(t, svc.notes.DeleteNote(ctx, absentID), domainerrors.CodeNotFound)
}

func TestNoteService_UpdatePresentFieldsOnly(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	n, err := svc.notes.CreateNote(ctx, CreateNoteRequest{
		Title: "Title", Content: "Body", FolderID: validFolder, Tags: []string{validTag},
	})
	require.NoError(t, err)

	// Only content changes.
	updated, err := svc.notes.UpdateNote(ctx, n.ID, UpdateNoteRequest{Content: ptr("New body")})
	require.NoError(t, err)
	assert.Equal(t, "Title", updated.Title)
	assert.Equal(t, "New body", updated.Content)
	assert.Equal(t, validFolder, updated.FolderID)
	assert.Equal(t, []string{validTag}, updated.Tags)
	assert.True(t, updated.UpdatedAt.After(n.UpdatedAt))

	// Falsy-but-present values are applied.
	updated, err = svc.notes.UpdateNote(ctx, n.ID, UpdateNoteRequest{
		Content:  ptr(""),
		FolderID: ptr(""),
		Tags:     ptr([]string{}),
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Content)
	assert.Empty(t, updated.FolderID)
	assert.Empty(t, updated.Tags)
	assert.Equal(t, "Title", updated.Title)
}

func TestNoteService_UpdateValidation(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	n, err := svc.notes.CreateNote(ctx, CreateNoteRequest{Title: "Title", Tags: []string{validTag}})
	require.NoError(t, err)

	_, err = svc.notes.UpdateNote(ctx, n.ID, UpdateNoteRequest{Title: ptr("")})
	requireCode(t, err, domainerrors.CodeValidation)

	_, err = svc.notes.UpdateNote(ctx, n.ID, UpdateNoteRequest{Tags: ptr([]string{"bad"})})
	requireCode(t, err, domainerrors.CodeValidation)

	_, err = svc.notes.UpdateNote(ctx, n.ID, UpdateNoteRequest{FolderID: ptr("bad")})
	requireCode(t, err, domainerrors.CodeValidation)

	_, err = svc.notes.UpdateNote(ctx, n.ID, UpdateNoteRequest{ID: ptr(absentID), Title: ptr("x")})
	de := requireCode(t, err, domainerrors.CodeValidation)
	assert.Contains(t, de.Message, "must match")

	// Matching body id is accepted.
	_, err = svc.notes.UpdateNote(ctx, n.ID, UpdateNoteRequest{ID: ptr(n.ID), Title: ptr("ok")})
	require.NoError(t, err)

	got, err := svc.notes.GetNote(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "ok", got.Title)
	assert.Equal(t, []string{validTag}, got.Tags, "rejected updates left tags alone")
}

func TestNoteService_List(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	_, err := svc.notes.CreateNote(ctx, CreateNoteRequest{Title: "Cats", FolderID: validFolder})
	require.NoError(t, err)
	_, err = svc.notes.CreateNote(ctx, CreateNoteRequest{Title: "Dogs", Content: "not cats"})
	require.NoError(t, err)
	_, err = svc.notes.CreateNote(ctx, CreateNoteRequest{Title: "Birds"})
	require.NoError(t, err)

	all, err := svc.notes.ListNotes(ctx, ListNotesRequest{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Birds", all[0].Title, "newest first")

	cats, err := svc.notes.ListNotes(ctx, ListNotesRequest{SearchTerm: "CATS"})
	require.NoError(t, err)
	assert.Len(t, cats, 2)

	inFolder, err := svc.notes.ListNotes(ctx, ListNotesRequest{SearchTerm: "cats", FolderID: validFolder})
	require.NoError(t, err)
	require.Len(t, inFolder, 1)
	assert.Equal(t, "Cats", inFolder[0].Title)
}

func TestNoteService_ListRejectsMalformedFilters(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	_, err := svc.notes.ListNotes(ctx, ListNotesRequest{FolderID: "nope"})
	de := requireCode(t, err, domainerrors.CodeValidation)
	assert.Equal(t, "Invalid `folderId`", de.Message)

	_, err = svc.notes.ListNotes(ctx, ListNotesRequest{TagID: "nope"})
	requireCode(t, err, domainerrors.CodeValidation)

	assert.Zero(t, svc.store.calls.Load())
}

func TestNoteService_StoreFailureIsInternal(t *testing.T) {
	svc := setupServices(t)
	svc.store.failList = true

	_, err := svc.notes.ListNotes(context.Background(), ListNotesRequest{})
	de := requireCode(t, err, domainerrors.CodeInternal)
	assert.Equal(t, "Internal Server Error", de.Message)
	assert.ErrorIs(t, err, errBoom)
}
