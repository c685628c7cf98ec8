package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedhaven/feedhaven/pkg/domain"
)

func TestFolderRepository_CreateFolder(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		folder, err := repos.Folder.CreateFolder(ctx, "News")
		require.NoError(t, err)
		assert.Positive(t, folder.ID)
		assert.Equal(t, "News", folder.Name)
		assert.False(t, folder.IsRoot)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		_, err := repos.Folder.CreateFolder(ctx, "News")
		assert.ErrorIs(t, err, domain.ErrFolderExists)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := repos.Folder.CreateFolder(ctx, "")
		assert.ErrorIs(t, err, domain.ErrInvalidFolderName)
	})
}

func TestFolderRepository_GetFolder(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	t.Run("zero id resolves to root", func(t *testing.T) {
		folder, err := repos.Folder.GetFolder(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(domain.RootFolderID), folder.ID)
		assert.True(t, folder.IsRoot)
	})

	t.Run("missing folder", func(t *testing.T) {
		_, err := repos.Folder.GetFolder(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrFolderNotFound)
	})
}

func TestFolderRepository_GetFolders(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	for _, name := range []string{"Zeta", "Alpha"} {
		_, err := repos.Folder.CreateFolder(ctx, name)
		require.NoError(t, err)
	}

	folders, err := repos.Folder.GetFolders(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 3)
	assert.True(t, folders[0].IsRoot, "root folder sorts first")
	assert.Equal(t, "Alpha", folders[1].Name)
	assert.Equal(t, "Zeta", folders[2].Name)
}

func TestFolderRepository_RenameFolder(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	folder, err := repos.Folder.CreateFolder(ctx, "Tech")
	require.NoError(t, err)
	other, err := repos.Folder.CreateFolder(ctx, "Science")
	require.NoError(t, err)

	t.Run("rename", func(t *testing.T) {
		require.NoError(t, repos.Folder.RenameFolder(ctx, folder.ID, "Technology"))
		stored, err := repos.Folder.GetFolder(ctx, folder.ID)
		require.NoError(t, err)
		assert.Equal(t, "Technology", stored.Name)
	})

	t.Run("rename to existing name rejected", func(t *testing.T) {
		err := repos.Folder.RenameFolder(ctx, other.ID, "Technology")
		assert.ErrorIs(t, err, domain.ErrFolderExists)
	})

	t.Run("root folder immutable", func(t *testing.T) {
		err := repos.Folder.RenameFolder(ctx, domain.RootFolderID, "Main")
		assert.ErrorIs(t, err, domain.ErrRootFolderImmutable)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		err := repos.Folder.RenameFolder(ctx, folder.ID, "")
		assert.ErrorIs(t, err, domain.ErrInvalidFolderName)
	})
}

func TestFolderRepository_DeleteFolder(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	folder, err := repos.Folder.CreateFolder(ctx, "Doomed")
	require.NoError(t, err)

	feed := &domain.Feed{URL: "https://doomed.example.com/feed", FolderID: folder.ID}
	require.NoError(t, repos.Feed.CreateFeed(ctx, feed))
	article := &domain.Article{FeedID: feed.ID, GUID: "g", GUIDHash: domain.HashGUID("g")}
	require.NoError(t, repos.Article.CreateArticle(ctx, article))

	t.Run("root folder immutable", func(t *testing.T) {
		err := repos.Folder.DeleteFolder(ctx, domain.RootFolderID)
		assert.ErrorIs(t, err, domain.ErrRootFolderImmutable)
	})

	t.Run("delete removes feeds and their articles", func(t *testing.T) {
		require.NoError(t, repos.Folder.DeleteFolder(ctx, folder.ID))

		_, err := repos.Folder.GetFolder(ctx, folder.ID)
		assert.ErrorIs(t, err, domain.ErrFolderNotFound)
		_, err = repos.Feed.GetFeed(ctx, feed.ID)
		assert.ErrorIs(t, err, domain.ErrFeedNotFound)
		_, err = repos.Article.GetArticle(ctx, article.ID)
		assert.ErrorIs(t, err, domain.ErrArticleNotFound)
	})

	t.Run("missing folder", func(t *testing.T) {
		err := repos.Folder.DeleteFolder(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrFolderNotFound)
	})
}
