package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/feedhaven/feedhaven/pkg/domain"
)

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db *sqlx.DB

	// nowFunc overrides the clock in tests
	nowFunc func() int64
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID            int64  `db:"id"`
	FeedID        int64  `db:"feed_id"`
	Title         string `db:"title"`
	Body          string `db:"body"`
	Author        string `db:"author"`
	URL           string `db:"url"`
	GUID          string `db:"guid"`
	GUIDHash      string `db:"guid_hash"`
	Fingerprint   string `db:"fingerprint"`
	EnclosureLink string `db:"enclosure_link"`
	EnclosureMime string `db:"enclosure_mime"`
	PubDate       int64  `db:"pub_date"`
	UpdatedDate   int64  `db:"updated_date"`
	LastModified  int64  `db:"last_modified"`
	Unread        bool   `db:"unread"`
	Starred       bool   `db:"starred"`
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database, nowFunc: func() int64 { return time.Now().Unix() }}
}

// CreateArticle inserts a new article. A guid_hash collision surfaces as the
// underlying unique violation; callers check ExistsByGUIDHash first and treat
// duplicates as a silent skip.
func (r *ArticleRepository) CreateArticle(ctx context.Context, article *domain.Article) error {
	sqlArticle := &articleSQL{
		FeedID:        article.FeedID,
		Title:         article.Title,
		Body:          article.Body,
		Author:        article.Author,
		URL:           article.URL,
		GUID:          article.GUID,
		GUIDHash:      article.GUIDHash,
		Fingerprint:   article.Fingerprint,
		EnclosureLink: article.EnclosureLink,
		EnclosureMime: article.EnclosureMime,
		PubDate:       article.PubDate,
		UpdatedDate:   article.UpdatedDate,
		LastModified:  article.LastModified,
		Unread:        article.Unread,
		Starred:       article.Starred,
	}

	return withLockRetry(ctx, func() error {
		query := `
			INSERT INTO articles (feed_id, title, body, author, url, guid, guid_hash, fingerprint,
			                      enclosure_link, enclosure_mime, pub_date, updated_date, last_modified, unread, starred)
			VALUES (:feed_id, :title, :body, :author, :url, :guid, :guid_hash, :fingerprint,
			        :enclosure_link, :enclosure_mime, :pub_date, :updated_date, :last_modified, :unread, :starred)
		`
		result, err := r.db.NamedExecContext(ctx, query, sqlArticle)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("create article: %w", err)}
		}

		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		article.ID = id
		return nil
	})
}

// ExistsByGUIDHash reports whether any article carries the given dedup key.
// The check is store-wide: feed and newsletter ingestion share one key space.
func (r *ArticleRepository) ExistsByGUIDHash(ctx context.Context, guidHash string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles WHERE guid_hash = ?", guidHash)
	if err != nil {
		return false, fmt.Errorf("check article existence: %w", err)
	}
	return count > 0, nil
}

// GetArticle retrieves an article by ID
func (r *ArticleRepository) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	var sqlArticle articleSQL
	err := r.db.GetContext(ctx, &sqlArticle, "SELECT * FROM articles WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return toDomainArticle(&sqlArticle), nil
}

// GetArticleByGUIDHash retrieves a feed's article by its dedup key
func (r *ArticleRepository) GetArticleByGUIDHash(ctx context.Context, feedID int64, guidHash string) (*domain.Article, error) {
	var sqlArticle articleSQL
	err := r.db.GetContext(ctx, &sqlArticle,
		"SELECT * FROM articles WHERE feed_id = ? AND guid_hash = ?", feedID, guidHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article by guid hash: %w", err)
	}
	return toDomainArticle(&sqlArticle), nil
}

// ListArticles retrieves articles matching the filter
func (r *ArticleRepository) ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	builder := sq.Select("articles.*").From("articles")

	if filter.FolderID != 0 {
		builder = builder.Join("feeds ON feeds.id = articles.feed_id").
			Where(sq.Eq{"feeds.folder_id": filter.FolderID})
	}
	if filter.FeedID != 0 {
		builder = builder.Where(sq.Eq{"articles.feed_id": filter.FeedID})
	}
	if filter.StarredOnly {
		builder = builder.Where(sq.Eq{"articles.starred": true})
	}
	if filter.UnreadOnly {
		builder = builder.Where(sq.Eq{"articles.unread": true})
	}
	if filter.NewestItemID > 0 {
		builder = builder.Where(sq.LtOrEq{"articles.id": filter.NewestItemID})
	}
	if filter.LastModifiedSince > 0 {
		builder = builder.Where(sq.GtOrEq{"articles.last_modified": filter.LastModifiedSince})
	}

	if filter.OldestFirst {
		builder = builder.OrderBy("articles.id ASC")
	} else {
		builder = builder.OrderBy("articles.id DESC")
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build article query: %w", err)
	}

	var sqlArticles []articleSQL
	if err := r.db.SelectContext(ctx, &sqlArticles, query, args...); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	articles := make([]domain.Article, len(sqlArticles))
	for i, a := range sqlArticles {
		articles[i] = *toDomainArticle(&a)
	}
	return articles, nil
}

// CountPublishedSince counts a feed's articles published after the given time,
// the input of the adaptive scheduling formula
func (r *ArticleRepository) CountPublishedSince(ctx context.Context, feedID, since int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM articles WHERE feed_id = ? AND pub_date > ?", feedID, since)
	if err != nil {
		return 0, fmt.Errorf("count published since: %w", err)
	}
	return count, nil
}

// SetRead marks the given articles read or unread and bumps last_modified
func (r *ArticleRepository) SetRead(ctx context.Context, ids []int64, read bool) (int64, error) {
	return r.setFlag(ctx, ids, "unread", !read)
}

// SetStarred stars or unstars the given articles and bumps last_modified
func (r *ArticleRepository) SetStarred(ctx context.Context, ids []int64, starred bool) (int64, error) {
	return r.setFlag(ctx, ids, "starred", starred)
}

func (r *ArticleRepository) setFlag(ctx context.Context, ids []int64, column string, value bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := sq.Update("articles").
		Set(column, value).
		Set("last_modified", r.nowFunc()).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build update: %w", err)
	}

	var affected int64
	err = withLockRetry(ctx, func() error {
		result, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			if isLockError(execErr) {
				return execErr // retry
			}
			return &criticalError{err: fmt.Errorf("set %s: %w", column, execErr)}
		}
		affected, execErr = result.RowsAffected()
		if execErr != nil {
			return &criticalError{err: fmt.Errorf("rows affected: %w", execErr)}
		}
		return nil
	})
	return affected, err
}

// MarkReadUpTo marks all articles with id <= newestItemID as read
func (r *ArticleRepository) MarkReadUpTo(ctx context.Context, newestItemID int64) (int64, error) {
	var affected int64
	err := withLockRetry(ctx, func() error {
		result, execErr := r.db.ExecContext(ctx,
			"UPDATE articles SET unread = 0, last_modified = ? WHERE id <= ? AND unread = 1",
			r.nowFunc(), newestItemID)
		if execErr != nil {
			if isLockError(execErr) {
				return execErr // retry
			}
			return &criticalError{err: fmt.Errorf("mark read up to: %w", execErr)}
		}
		affected, execErr = result.RowsAffected()
		if execErr != nil {
			return &criticalError{err: fmt.Errorf("rows affected: %w", execErr)}
		}
		return nil
	})
	return affected, err
}

// DeleteStale removes a feed's articles that are read, unstarred, last
// modified before the cutoff, and no longer present upstream. Runs as a
// single statement outside any ingest transaction.
func (r *ArticleRepository) DeleteStale(ctx context.Context, feedID, cutoff int64, liveGUIDHashes []string) (int64, error) {
	builder := sq.Delete("articles").Where(sq.Eq{
		"feed_id": feedID,
		"unread":  false,
		"starred": false,
	}).Where(sq.Lt{"last_modified": cutoff})

	if len(liveGUIDHashes) > 0 {
		builder = builder.Where(sq.NotEq{"guid_hash": liveGUIDHashes})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build prune query: %w", err)
	}

	var deleted int64
	err = withLockRetry(ctx, func() error {
		result, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			if isLockError(execErr) {
				return execErr // retry
			}
			return &criticalError{err: fmt.Errorf("prune articles: %w", execErr)}
		}
		deleted, execErr = result.RowsAffected()
		if execErr != nil {
			return &criticalError{err: fmt.Errorf("rows affected: %w", execErr)}
		}
		return nil
	})
	return deleted, err
}

// UpdateArticleBody replaces an article's body, used by content backfill
func (r *ArticleRepository) UpdateArticleBody(ctx context.Context, id int64, body string) error {
	return withLockRetry(ctx, func() error {
		result, err := r.db.ExecContext(ctx,
			"UPDATE articles SET body = ?, last_modified = ? WHERE id = ?", body, r.nowFunc(), id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update article body: %w", err)}
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("rows affected: %w", err)}
		}
		if affected == 0 {
			return &criticalError{err: domain.ErrArticleNotFound}
		}
		return nil
	})
}

// toDomainArticle converts articleSQL to domain.Article
func toDomainArticle(a *articleSQL) *domain.Article {
	return &domain.Article{
		ID:            a.ID,
		FeedID:        a.FeedID,
		Title:         a.Title,
		Body:          a.Body,
		Author:        a.Author,
		URL:           a.URL,
		GUID:          a.GUID,
		GUIDHash:      a.GUIDHash,
		Fingerprint:   a.Fingerprint,
		EnclosureLink: a.EnclosureLink,
		EnclosureMime: a.EnclosureMime,
		PubDate:       a.PubDate,
		UpdatedDate:   a.UpdatedDate,
		LastModified:  a.LastModified,
		Unread:        a.Unread,
		Starred:       a.Starred,
	}
}
