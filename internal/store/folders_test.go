package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notefulapp/noteful-server/internal/domain"
	"github.com/notefulapp/noteful-server/internal/store"
)

func folder(id, name string) *domain.Folder {
	f := &domain.Folder{Record: domain.Record{ID: id}, Name: name}
	f.InitTimestamps()
	return f
}

func TestFolders_UniqueName(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateFolder(ctx, folder(folderWork, "Work")))

	err := s.CreateFolder(ctx, folder(folderHome, "Work"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	folders, err := s.ListFolders(ctx)
	require.NoError(t, err)
	assert.Len(t, folders, 1)

	got, err := s.GetFolderByName(ctx, "Work")
	require.NoError(t, err)
	assert.Equal(t, folderWork, got.ID)
}

func TestFolders_ListSortedByName(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateFolder(ctx, folder("111111111111111111111103", "Personal")))
	require.NoError(t, s.CreateFolder(ctx, folder("111111111111111111111101", "Archive")))
	require.NoError(t, s.CreateFolder(ctx, folder("111111111111111111111102", "Drafts")))

	folders, err := s.ListFolders(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(folders))
	for _, f := range folders {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Archive", "Drafts", "Personal"}, names)
}

func TestFolders_RenameConflict(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateFolder(ctx, folder(folderWork, "Work")))
	require.NoError(t, s.CreateFolder(ctx, folder(folderHome, "Home")))

	_, err := s.UpdateFolder(ctx, folderHome, func(f *domain.Folder) error {
		f.Name = "Work"
		return nil
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	renamed, err := s.UpdateFolder(ctx, folderHome, func(f *domain.Folder) error {
		f.Name = "House"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "House", renamed.Name)
}

func TestFolders_DeleteFreesName(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateFolder(ctx, folder(folderWork, "Work")))
	require.NoError(t, s.DeleteFolder(ctx, folderWork))
	require.ErrorIs(t, s.DeleteFolder(ctx, folderWork), store.ErrNotFound)

	require.NoError(t, s.CreateFolder(ctx, folder(folderHome, "Work")))
}

func TestTags_UniqueNameAndSort(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	mk := func(id, name string) *domain.Tag {
		tg := &domain.Tag{Record: domain.Record{ID: id}, Name: name}
		tg.InitTimestamps()
		return tg
	}

	require.NoError(t, s.CreateTag(ctx, mk(tagUrgent, "urgent")))
	require.NoError(t, s.CreateTag(ctx, mk(tagLater, "later")))
	require.ErrorIs(t, s.CreateTag(ctx, mk("222222222222222222222202", "urgent")), store.ErrAlreadyExists)

	tags, err := s.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "later", tags[0].Name)
	assert.Equal(t, "urgent", tags[1].Name)

	require.NoError(t, s.DeleteTag(ctx, tagUrgent))
	_, err = s.GetTag(ctx, tagUrgent)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_UniqueUsername(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	u := &domain.User{Record: domain.Record{ID: "333333333333333333333300"}, Username: "bobuser", PasswordHash: "h"}
	require.NoError(t, s.CreateUser(ctx, u))

	dup := &domain.User{Record: domain.Record{ID: "333333333333333333333301"}, Username: "bobuser", PasswordHash: "h"}
	require.ErrorIs(t, s.CreateUser(ctx, dup), store.ErrAlreadyExists)

	got, err := s.GetUserByUsername(ctx, "bobuser")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.GetUser(ctx, "333333333333333333333301")
	require.ErrorIs(t, err, store.ErrNotFound)
}
