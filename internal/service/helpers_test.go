package service

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/notefulapp/noteful-server/internal/auth"
	"github.com/notefulapp/noteful-server/internal/domain"
	"github.com/notefulapp/noteful-server/internal/store"
)

var errBoom = errors.New("boom")

// spyStore wraps a real store, counts calls and can inject failures.
type spyStore struct {
	*store.Store
	calls atomic.Int32

	failDelete bool
	failUpdate bool
	failList   bool
}

func (s *spyStore) hit() { s.calls.Add(1) }

func (s *spyStore) CreateNote(ctx context.Context, n *domain.Note) error {
	s.hit()
	return s.Store.CreateNote(ctx, n)
}

func (s *spyStore) GetNote(ctx context.Context, id string) (*domain.Note, error) {
	s.hit()
	return s.Store.GetNote(ctx, id)
}

func (s *spyStore) ListNotes(ctx context.Context, f store.NoteFilter) ([]*domain.Note, error) {
	s.hit()
	if s.failList {
		return nil, errBoom
	}
	return s.Store.ListNotes(ctx, f)
}

func (s *spyStore) UpdateNote(ctx context.Context, id string, fn func(*domain.Note) error) (*domain.Note, error) {
	s.hit()
	return s.Store.UpdateNote(ctx, id, fn)
}

func (s *spyStore) DeleteNote(ctx context.Context, id string) error {
	s.hit()
	return s.Store.DeleteNote(ctx, id)
}

func (s *spyStore) GetFolder(ctx context.Context, id string) (*domain.Folder, error) {
	s.hit()
	return s.Store.GetFolder(ctx, id)
}

func (s *spyStore) UpdateFolder(ctx context.Context, id string, fn func(*domain.Folder) error) (*domain.Folder, error) {
	s.hit()
	return s.Store.UpdateFolder(ctx, id, fn)
}

func (s *spyStore) DeleteFolder(ctx context.Context, id string) error {
	s.hit()
	if s.failDelete {
		return errBoom
	}
	return s.Store.DeleteFolder(ctx, id)
}

func (s *spyStore) DetachFolder(ctx context.Context, id string) (int, error) {
	s.hit()
	if s.failUpdate {
		return 0, errBoom
	}
	return s.Store.DetachFolder(ctx, id)
}

func (s *spyStore) GetTag(ctx context.Context, id string) (*domain.Tag, error) {
	s.hit()
	return s.Store.GetTag(ctx, id)
}

func (s *spyStore) DeleteTag(ctx context.Context, id string) error {
	s.hit()
	if s.failDelete {
		return errBoom
	}
	return s.Store.DeleteTag(ctx, id)
}

func (s *spyStore) PullTag(ctx context.Context, id string) (int, error) {
	s.hit()
	if s.failUpdate {
		return 0, errBoom
	}
	return s.Store.PullTag(ctx, id)
}

type testServices struct {
	store   *spyStore
	notes   *NoteService
	folders *FolderService
	tags    *TagService
	users   *UserService
}

func setupServices(t *testing.T) *testServices {
	t.Helper()

	s, err := store.New(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	spy := &spyStore{Store: s}
	logger := slog.New(slog.DiscardHandler)
	cascade := NewCascade(logger)
	hasher := auth.NewHasher(auth.Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})

	return &testServices{
		store:   spy,
		notes:   NewNoteService(spy, logger),
		folders: NewFolderService(spy, cascade, logger),
		tags:    NewTagService(spy, cascade, logger),
		users:   NewUserService(spy, hasher, logger),
	}
}

func ptr[T any](v T) *T { return &v }
