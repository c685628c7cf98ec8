package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedhaven/feedhaven/pkg/domain"
)

func makeTestFeed(t *testing.T, repos *Repositories, url string) *domain.Feed {
	t.Helper()
	feed := &domain.Feed{URL: url, Added: time.Now().Unix()}
	require.NoError(t, repos.Feed.CreateFeed(context.Background(), feed))
	return feed
}

func makeTestArticle(t *testing.T, repos *Repositories, feedID int64, guid string, pubDate int64) *domain.Article {
	t.Helper()
	article := &domain.Article{
		FeedID:       feedID,
		Title:        "Article " + guid,
		Body:         "<p>body of " + guid + "</p>",
		URL:          "https://example.com/" + guid,
		GUID:         guid,
		GUIDHash:     domain.HashGUID(guid),
		PubDate:      pubDate,
		LastModified: pubDate,
		Unread:       true,
	}
	article.Fingerprint = domain.Fingerprint(article.Title, article.URL, article.Body)
	require.NoError(t, repos.Article.CreateArticle(context.Background(), article))
	return article
}

func TestArticleRepository_CreateArticle(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	feed := makeTestFeed(t, repos, "https://a.example.com/feed")

	t.Run("create assigns id", func(t *testing.T) {
		article := makeTestArticle(t, repos, feed.ID, "first", time.Now().Unix())
		assert.Positive(t, article.ID)
	})

	t.Run("duplicate guid hash rejected", func(t *testing.T) {
		dup := &domain.Article{FeedID: feed.ID, GUID: "first", GUIDHash: domain.HashGUID("first")}
		err := repos.Article.CreateArticle(ctx, dup)
		require.Error(t, err)
		assert.True(t, isUniqueError(err))
	})

	t.Run("dedup key is store-wide", func(t *testing.T) {
		otherFeed := makeTestFeed(t, repos, "https://b.example.com/feed")
		dup := &domain.Article{FeedID: otherFeed.ID, GUID: "first", GUIDHash: domain.HashGUID("first")}
		err := repos.Article.CreateArticle(ctx, dup)
		require.Error(t, err, "same guid hash under another feed still collides")

		exists, err := repos.Article.ExistsByGUIDHash(ctx, domain.HashGUID("first"))
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestArticleRepository_GetArticleByGUIDHash(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	feed := makeTestFeed(t, repos, "https://a.example.com/feed")
	article := makeTestArticle(t, repos, feed.ID, "guid-x", time.Now().Unix())

	found, err := repos.Article.GetArticleByGUIDHash(ctx, feed.ID, domain.HashGUID("guid-x"))
	require.NoError(t, err)
	assert.Equal(t, article.ID, found.ID)

	_, err = repos.Article.GetArticleByGUIDHash(ctx, feed.ID, domain.HashGUID("nope"))
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
}

func TestArticleRepository_ListArticles(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	now := time.Now().Unix()

	folder, err := repos.Folder.CreateFolder(ctx, "Tech")
	require.NoError(t, err)

	feedA := makeTestFeed(t, repos, "https://a.example.com/feed")
	feedB := &domain.Feed{URL: "https://b.example.com/feed", FolderID: folder.ID}
	require.NoError(t, repos.Feed.CreateFeed(ctx, feedB))

	var articlesA, articlesB []*domain.Article
	for i := 0; i < 5; i++ {
		articlesA = append(articlesA, makeTestArticle(t, repos, feedA.ID, fmt.Sprintf("a-%d", i), now+int64(i)))
	}
	for i := 0; i < 3; i++ {
		articlesB = append(articlesB, makeTestArticle(t, repos, feedB.ID, fmt.Sprintf("b-%d", i), now+int64(i)))
	}

	// star and read a couple for flag filters
	_, err = repos.Article.SetStarred(ctx, []int64{articlesA[0].ID, articlesA[1].ID}, true)
	require.NoError(t, err)
	_, err = repos.Article.SetRead(ctx, []int64{articlesA[0].ID}, true)
	require.NoError(t, err)

	t.Run("newest first by default", func(t *testing.T) {
		list, err := repos.Article.ListArticles(ctx, domain.ArticleFilter{})
		require.NoError(t, err)
		require.Len(t, list, 8)
		assert.Equal(t, articlesB[2].ID, list[0].ID)
	})

	t.Run("oldest first", func(t *testing.T) {
		list, err := repos.Article.ListArticles(ctx, domain.ArticleFilter{OldestFirst: true})
		require.NoError(t, err)
		require.Len(t, list, 8)
		assert.Equal(t, articlesA[0].ID, list[0].ID)
	})

	t.Run("by feed", func(t *testing.T) {
		list, err := repos.Article.ListArticles(ctx, domain.ArticleFilter{FeedID: feedB.ID})
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("by folder", func(t *testing.T) {
		list, err := repos.Article.ListArticles(ctx, domain.ArticleFilter{FolderID: folder.ID})
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("starred only", func(t *testing.T) {
		list, err := repos.Article.ListArticles(ctx, domain.ArticleFilter{StarredOnly: true})
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("unread only", func(t *testing.T) {
		list, err := repos.Article.ListArticles(ctx, domain.ArticleFilter{UnreadOnly: true})
		require.NoError(t, err)
		assert.Len(t, list, 7)
	})

	t.Run("newest item id caps the window", func(t *testing.T) {
		list, err := repos.Article.ListArticles(ctx, domain.ArticleFilter{NewestItemID: articlesA[4].ID})
		require.NoError(t, err)
		assert.Len(t, list, 5, "articles inserted after the anchor are excluded")
	})

	t.Run("limit and offset", func(t *testing.T) {
		list, err := repos.Article.ListArticles(ctx, domain.ArticleFilter{OldestFirst: true, Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, articlesA[1].ID, list[0].ID)
	})

	t.Run("last modified since", func(t *testing.T) {
		// flag toggles above bumped last_modified to wall-clock now
		list, err := repos.Article.ListArticles(ctx, domain.ArticleFilter{LastModifiedSince: now + 1000})
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestArticleRepository_SetFlags(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	now := time.Now().Unix()
	feed := makeTestFeed(t, repos, "https://a.example.com/feed")

	a1 := makeTestArticle(t, repos, feed.ID, "one", now-1000)
	a2 := makeTestArticle(t, repos, feed.ID, "two", now-1000)

	repos.Article.nowFunc = func() int64 { return now + 42 }

	t.Run("set read bumps last modified", func(t *testing.T) {
		affected, err := repos.Article.SetRead(ctx, []int64{a1.ID, a2.ID}, true)
		require.NoError(t, err)
		assert.Equal(t, int64(2), affected)

		stored, err := repos.Article.GetArticle(ctx, a1.ID)
		require.NoError(t, err)
		assert.False(t, stored.Unread)
		assert.Equal(t, now+42, stored.LastModified)
	})

	t.Run("set unread back", func(t *testing.T) {
		affected, err := repos.Article.SetRead(ctx, []int64{a1.ID}, false)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		stored, err := repos.Article.GetArticle(ctx, a1.ID)
		require.NoError(t, err)
		assert.True(t, stored.Unread)
	})

	t.Run("set starred", func(t *testing.T) {
		affected, err := repos.Article.SetStarred(ctx, []int64{a2.ID}, true)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		stored, err := repos.Article.GetArticle(ctx, a2.ID)
		require.NoError(t, err)
		assert.True(t, stored.Starred)
	})

	t.Run("empty id list is a no-op", func(t *testing.T) {
		affected, err := repos.Article.SetRead(ctx, nil, true)
		require.NoError(t, err)
		assert.Zero(t, affected)
	})
}

func TestArticleRepository_MarkReadUpTo(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	now := time.Now().Unix()
	feed := makeTestFeed(t, repos, "https://a.example.com/feed")

	a1 := makeTestArticle(t, repos, feed.ID, "one", now)
	a2 := makeTestArticle(t, repos, feed.ID, "two", now)
	a3 := makeTestArticle(t, repos, feed.ID, "three", now)

	affected, err := repos.Article.MarkReadUpTo(ctx, a2.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	for _, tc := range []struct {
		id     int64
		unread bool
	}{{a1.ID, false}, {a2.ID, false}, {a3.ID, true}} {
		stored, err := repos.Article.GetArticle(ctx, tc.id)
		require.NoError(t, err)
		assert.Equal(t, tc.unread, stored.Unread)
	}

	t.Run("already read articles are not touched again", func(t *testing.T) {
		affected, err := repos.Article.MarkReadUpTo(ctx, a2.ID)
		require.NoError(t, err)
		assert.Zero(t, affected)
	})
}

func TestArticleRepository_CountPublishedSince(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	now := time.Now().Unix()
	feed := makeTestFeed(t, repos, "https://a.example.com/feed")
	other := makeTestFeed(t, repos, "https://b.example.com/feed")

	makeTestArticle(t, repos, feed.ID, "old", now-10*86400)
	makeTestArticle(t, repos, feed.ID, "recent-1", now-86400)
	makeTestArticle(t, repos, feed.ID, "recent-2", now-3600)
	makeTestArticle(t, repos, other.ID, "other-feed", now-3600)

	count, err := repos.Article.CountPublishedSince(ctx, feed.ID, now-7*86400)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestArticleRepository_DeleteStale(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	now := time.Now().Unix()
	cutoff := now - 90*86400
	feed := makeTestFeed(t, repos, "https://a.example.com/feed")

	old := now - 100*86400

	stale := makeTestArticle(t, repos, feed.ID, "stale", old)
	staleButLive := makeTestArticle(t, repos, feed.ID, "still-upstream", old)
	staleButUnread := makeTestArticle(t, repos, feed.ID, "unread", old)
	staleButStarred := makeTestArticle(t, repos, feed.ID, "starred", old)
	fresh := makeTestArticle(t, repos, feed.ID, "fresh", now-3600)

	// candidates must be read; pin last_modified to the old publish date
	repos.Article.nowFunc = func() int64 { return old }
	_, err := repos.Article.SetRead(ctx, []int64{stale.ID, staleButLive.ID, staleButStarred.ID}, true)
	require.NoError(t, err)
	_, err = repos.Article.SetStarred(ctx, []int64{staleButStarred.ID}, true)
	require.NoError(t, err)

	deleted, err := repos.Article.DeleteStale(ctx, feed.ID, cutoff, []string{domain.HashGUID("still-upstream")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repos.Article.GetArticle(ctx, stale.ID)
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
	for _, id := range []int64{staleButLive.ID, staleButUnread.ID, staleButStarred.ID, fresh.ID} {
		_, err = repos.Article.GetArticle(ctx, id)
		assert.NoError(t, err)
	}

	t.Run("empty live set deletes all candidates", func(t *testing.T) {
		deleted, err := repos.Article.DeleteStale(ctx, feed.ID, cutoff, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted, "the previously live article goes once upstream drops it")
	})
}

func TestArticleRepository_UpdateArticleBody(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()
	feed := makeTestFeed(t, repos, "https://a.example.com/feed")
	article := makeTestArticle(t, repos, feed.ID, "body-update", time.Now().Unix())

	require.NoError(t, repos.Article.UpdateArticleBody(ctx, article.ID, "<p>replaced</p>"))

	stored, err := repos.Article.GetArticle(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, "<p>replaced</p>", stored.Body)

	assert.ErrorIs(t, repos.Article.UpdateArticleBody(ctx, 999, "x"), domain.ErrArticleNotFound)
}
