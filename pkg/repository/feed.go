package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/feedhaven/feedhaven/pkg/domain"
)

// FeedRepository handles feed-related database operations
type FeedRepository struct {
	db *sqlx.DB
}

// feedSQL represents a feed for SQL operations
type feedSQL struct {
	ID               int64  `db:"id"`
	URL              string `db:"url"`
	Title            string `db:"title"`
	FaviconLink      string `db:"favicon_link"`
	Link             string `db:"link"`
	FolderID         int64  `db:"folder_id"`
	Added            int64  `db:"added"`
	NextUpdateTime   int64  `db:"next_update_time"`
	Ordering         int    `db:"ordering"`
	Pinned           bool   `db:"pinned"`
	UpdateErrorCount int    `db:"update_error_count"`
	LastUpdateError  string `db:"last_update_error"`
	IsMailingList    bool   `db:"is_mailing_list"`
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(database *sqlx.DB) *FeedRepository {
	return &FeedRepository{db: database}
}

// CreateFeed inserts a new feed. A zero folder ID resolves to the root folder.
// Returns domain.ErrFeedExists when the URL is already subscribed and
// domain.ErrFolderNotFound when the target folder does not exist.
func (r *FeedRepository) CreateFeed(ctx context.Context, feed *domain.Feed) error {
	if feed.FolderID == 0 {
		feed.FolderID = domain.RootFolderID
	}

	var folderCount int
	if err := r.db.GetContext(ctx, &folderCount,
		"SELECT COUNT(*) FROM folders WHERE id = ?", feed.FolderID); err != nil {
		return fmt.Errorf("check folder: %w", err)
	}
	if folderCount == 0 {
		return domain.ErrFolderNotFound
	}

	sqlFeed := &feedSQL{
		URL:            feed.URL,
		Title:          feed.Title,
		FaviconLink:    feed.FaviconLink,
		Link:           feed.Link,
		FolderID:       feed.FolderID,
		Added:          feed.Added,
		NextUpdateTime: feed.NextUpdateTime,
		Ordering:       feed.Ordering,
		IsMailingList:  feed.IsMailingList,
	}

	query := `
		INSERT INTO feeds (url, title, favicon_link, link, folder_id, added, next_update_time, ordering, is_mailing_list)
		VALUES (:url, :title, :favicon_link, :link, :folder_id, :added, :next_update_time, :ordering, :is_mailing_list)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlFeed)
	if err != nil {
		if isUniqueError(err) {
			return domain.ErrFeedExists
		}
		return fmt.Errorf("create feed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	feed.ID = id
	return nil
}

// GetFeed retrieves a feed by ID
func (r *FeedRepository) GetFeed(ctx context.Context, id int64) (*domain.Feed, error) {
	var sqlFeed feedSQL
	err := r.db.GetContext(ctx, &sqlFeed, "SELECT * FROM feeds WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFeedNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get feed: %w", err)
	}
	return toDomainFeed(&sqlFeed), nil
}

// GetFeedByURL retrieves a feed by its unique URL
func (r *FeedRepository) GetFeedByURL(ctx context.Context, url string) (*domain.Feed, error) {
	var sqlFeed feedSQL
	err := r.db.GetContext(ctx, &sqlFeed, "SELECT * FROM feeds WHERE url = ?", url)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFeedNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get feed by url: %w", err)
	}
	return toDomainFeed(&sqlFeed), nil
}

// GetFeeds retrieves all feeds ordered by pinned status and title
func (r *FeedRepository) GetFeeds(ctx context.Context) ([]domain.Feed, error) {
	var sqlFeeds []feedSQL
	err := r.db.SelectContext(ctx, &sqlFeeds,
		"SELECT * FROM feeds ORDER BY pinned DESC, ordering, title")
	if err != nil {
		return nil, fmt.Errorf("get feeds: %w", err)
	}

	feeds := make([]domain.Feed, len(sqlFeeds))
	for i, f := range sqlFeeds {
		feeds[i] = *toDomainFeed(&f)
	}
	return feeds, nil
}

// GetDueFeeds retrieves HTTP feeds whose next update time has passed or was
// never set. Mailing-list feeds are excluded from URL-based polling.
func (r *FeedRepository) GetDueFeeds(ctx context.Context, now int64) ([]domain.Feed, error) {
	query := `
		SELECT * FROM feeds
		WHERE (next_update_time = 0 OR next_update_time <= ?)
		AND is_mailing_list = 0
		ORDER BY next_update_time
	`
	var sqlFeeds []feedSQL
	if err := r.db.SelectContext(ctx, &sqlFeeds, query, now); err != nil {
		return nil, fmt.Errorf("get due feeds: %w", err)
	}

	feeds := make([]domain.Feed, len(sqlFeeds))
	for i, f := range sqlFeeds {
		feeds[i] = *toDomainFeed(&f)
	}
	return feeds, nil
}

// UpdateFeedFetched records a successful poll: the error state is cleared and
// the next update time is set
func (r *FeedRepository) UpdateFeedFetched(ctx context.Context, feedID, nextUpdateTime int64) error {
	return withLockRetry(ctx, func() error {
		query := `
			UPDATE feeds
			SET next_update_time = ?,
			    update_error_count = 0,
			    last_update_error = ''
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, nextUpdateTime, feedID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update feed fetched: %w", err)}
		}
		return nil
	})
}

// UpdateFeedError records a failed poll: the error counter is incremented, the
// message stored, and the next update time still moved forward so the feed
// backs off instead of being hammered
func (r *FeedRepository) UpdateFeedError(ctx context.Context, feedID int64, errMsg string, nextUpdateTime int64) error {
	return withLockRetry(ctx, func() error {
		query := `
			UPDATE feeds
			SET update_error_count = update_error_count + 1,
			    last_update_error = ?,
			    next_update_time = ?
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, errMsg, nextUpdateTime, feedID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update feed error: %w", err)}
		}
		return nil
	})
}

// RenameFeed sets a new title
func (r *FeedRepository) RenameFeed(ctx context.Context, feedID int64, title string) error {
	result, err := r.db.ExecContext(ctx, "UPDATE feeds SET title = ? WHERE id = ?", title, feedID)
	if err != nil {
		return fmt.Errorf("rename feed: %w", err)
	}
	return requireAffected(result, domain.ErrFeedNotFound)
}

// MoveFeed moves a feed to a different folder
func (r *FeedRepository) MoveFeed(ctx context.Context, feedID, folderID int64) error {
	if folderID == 0 {
		folderID = domain.RootFolderID
	}

	var folderCount int
	if err := r.db.GetContext(ctx, &folderCount,
		"SELECT COUNT(*) FROM folders WHERE id = ?", folderID); err != nil {
		return fmt.Errorf("check folder: %w", err)
	}
	if folderCount == 0 {
		return domain.ErrFolderNotFound
	}

	result, err := r.db.ExecContext(ctx, "UPDATE feeds SET folder_id = ? WHERE id = ?", folderID, feedID)
	if err != nil {
		return fmt.Errorf("move feed: %w", err)
	}
	return requireAffected(result, domain.ErrFeedNotFound)
}

// DeleteFeed removes a feed; its articles go with it via the FK cascade
func (r *FeedRepository) DeleteFeed(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM feeds WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}
	return requireAffected(result, domain.ErrFeedNotFound)
}

// requireAffected maps a zero-row update/delete to a not-found error
func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

// toDomainFeed converts feedSQL to domain.Feed
func toDomainFeed(sqlFeed *feedSQL) *domain.Feed {
	return &domain.Feed{
		ID:               sqlFeed.ID,
		URL:              sqlFeed.URL,
		Title:            sqlFeed.Title,
		FaviconLink:      sqlFeed.FaviconLink,
		Link:             sqlFeed.Link,
		FolderID:         sqlFeed.FolderID,
		Added:            sqlFeed.Added,
		NextUpdateTime:   sqlFeed.NextUpdateTime,
		Ordering:         sqlFeed.Ordering,
		Pinned:           sqlFeed.Pinned,
		UpdateErrorCount: sqlFeed.UpdateErrorCount,
		LastUpdateError:  sqlFeed.LastUpdateError,
		IsMailingList:    sqlFeed.IsMailingList,
	}
}
