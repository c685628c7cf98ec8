package scheduler

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/feedhaven/feedhaven/pkg/domain"
)

const (
	maxArticlesPerUpdate = 50
	seedArticleCount     = 10

	// activity rate is averaged over a trailing week
	activityWindow = 7 * 24 * time.Hour

	// feeds at or below this many articles per day are polled daily
	quietRateThreshold  = 0.1
	quietUpdateInterval = 24 * time.Hour
	quietJitter         = 30 * time.Minute

	minUpdateInterval = 12 * time.Hour
)

//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . Parser
//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore

// Parser fetches and normalizes a feed document
type Parser interface {
	Parse(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

// FeedStore is the feed persistence surface used by the processor
type FeedStore interface {
	CreateFeed(ctx context.Context, feed *domain.Feed) error
	GetFeed(ctx context.Context, id int64) (*domain.Feed, error)
	GetFeedByURL(ctx context.Context, url string) (*domain.Feed, error)
	GetDueFeeds(ctx context.Context, now int64) ([]domain.Feed, error)
	UpdateFeedFetched(ctx context.Context, feedID, nextUpdateTime int64) error
	UpdateFeedError(ctx context.Context, feedID int64, errMsg string, nextUpdateTime int64) error
}

// ArticleStore is the article persistence surface used by the processor
type ArticleStore interface {
	CreateArticle(ctx context.Context, article *domain.Article) error
	ExistsByGUIDHash(ctx context.Context, guidHash string) (bool, error)
	CountPublishedSince(ctx context.Context, feedID, since int64) (int, error)
	DeleteStale(ctx context.Context, feedID, cutoff int64, liveGUIDHashes []string) (int64, error)
}

// FeedProcessor fetches a feed, stores its new entries, reschedules the feed
// by its observed publish rate, and prunes articles that aged out of retention.
type FeedProcessor struct {
	feeds     FeedStore
	articles  ArticleStore
	parser    Parser
	retention time.Duration

	nowFunc    func() time.Time
	jitterFunc func(max time.Duration) time.Duration
}

// NewFeedProcessor creates a feed processor; retention bounds how long
// read, unstarred articles survive after upstream drops them
func NewFeedProcessor(feeds FeedStore, articles ArticleStore, parser Parser, retention time.Duration) *FeedProcessor {
	if retention == 0 {
		retention = 90 * 24 * time.Hour
	}
	return &FeedProcessor{
		feeds:     feeds,
		articles:  articles,
		parser:    parser,
		retention: retention,
		nowFunc:   time.Now,
		jitterFunc: func(max time.Duration) time.Duration {
			return time.Duration(rand.Int63n(int64(2*max))) - max //nolint:gosec // jitter, not crypto
		},
	}
}

// AddFeed subscribes to a feed URL: the document is fetched once to validate
// the source and take its title, then the newest entries seed the store.
func (p *FeedProcessor) AddFeed(ctx context.Context, url string, folderID int64) (*domain.Feed, error) {
	if _, err := p.feeds.GetFeedByURL(ctx, url); err == nil {
		return nil, domain.ErrFeedExists
	}

	parsed, err := p.parser.Parse(ctx, url)
	if err != nil {
		return nil, err
	}

	title := parsed.Title
	if title == "" {
		title = url
	}

	feed := &domain.Feed{
		URL:         url,
		Title:       title,
		Link:        parsed.Link,
		FaviconLink: parsed.FaviconLink,
		FolderID:    folderID,
		Added:       p.nowFunc().Unix(),
	}
	if err := p.feeds.CreateFeed(ctx, feed); err != nil {
		return nil, err
	}

	added := p.ingestEntries(ctx, feed, parsed.Entries, seedArticleCount)
	lgr.Printf("[INFO] subscribed to %s with %d seed articles", url, added)

	if err := p.reschedule(ctx, feed.ID); err != nil {
		lgr.Printf("[WARN] failed to schedule new feed %s: %v", url, err)
	}
	return feed, nil
}

// UpdateFeed runs one full update cycle for a feed. Fetch failures are
// recorded on the feed and the feed is still rescheduled, so one broken
// source never stalls the rotation.
func (p *FeedProcessor) UpdateFeed(ctx context.Context, feed domain.Feed) error {
	lgr.Printf("[DEBUG] updating feed %s", feed.URL)

	parsed, err := p.parser.Parse(ctx, feed.URL)
	if err != nil {
		lgr.Printf("[WARN] failed to fetch feed %s: %v", feed.URL, err)
		next, nerr := p.nextUpdateTime(ctx, feed.ID)
		if nerr != nil {
			next = p.nowFunc().Add(quietUpdateInterval).Unix()
		}
		if uerr := p.feeds.UpdateFeedError(ctx, feed.ID, err.Error(), next); uerr != nil {
			lgr.Printf("[ERROR] failed to record feed error for %s: %v", feed.URL, uerr)
		}
		return err
	}

	added := p.ingestEntries(ctx, &feed, parsed.Entries, maxArticlesPerUpdate)
	if added > 0 {
		lgr.Printf("[INFO] added %d new articles from %s", added, feed.Title)
	}

	next, err := p.nextUpdateTime(ctx, feed.ID)
	if err != nil {
		return fmt.Errorf("compute next update for %s: %w", feed.URL, err)
	}
	if err := p.feeds.UpdateFeedFetched(ctx, feed.ID, next); err != nil {
		return fmt.Errorf("reschedule feed %s: %w", feed.URL, err)
	}

	p.pruneFeed(ctx, feed, parsed.Entries)
	return nil
}

// ingestEntries stores the newest entries up to limit, skipping anything
// already present. Returns the number of articles actually inserted.
func (p *FeedProcessor) ingestEntries(ctx context.Context, feed *domain.Feed, entries []domain.Entry, limit int) int {
	// oldest first, so inserted ids follow publication order
	sorted := make([]domain.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Published < sorted[j].Published })
	if len(sorted) > limit {
		sorted = sorted[len(sorted)-limit:]
	}

	now := p.nowFunc().Unix()
	added := 0
	for _, entry := range sorted {
		guid := entry.ResolveGUID()
		if guid == "" {
			lgr.Printf("[WARN] skipping unidentifiable entry in %s (no guid, link or title)", feed.URL)
			continue
		}

		guidHash := domain.HashGUID(guid)
		exists, err := p.articles.ExistsByGUIDHash(ctx, guidHash)
		if err != nil {
			lgr.Printf("[ERROR] failed to check article %s: %v", guid, err)
			continue
		}
		if exists {
			continue
		}

		body := entry.Content
		if body == "" {
			body = entry.Summary
		}
		pubDate := entry.Published
		if pubDate == 0 {
			pubDate = now
		}
		updatedDate := entry.Updated
		if updatedDate == 0 {
			updatedDate = now
		}

		article := &domain.Article{
			FeedID:       feed.ID,
			Title:        entry.Title,
			Body:         body,
			Author:       entry.Author,
			URL:          entry.Link,
			GUID:         guid,
			GUIDHash:     guidHash,
			Fingerprint:  domain.Fingerprint(entry.Title, entry.Link, body),
			PubDate:      pubDate,
			UpdatedDate:  updatedDate,
			LastModified: now,
			Unread:       true,
		}
		if len(entry.Enclosures) > 0 {
			article.EnclosureLink = entry.Enclosures[0].URL
			article.EnclosureMime = entry.Enclosures[0].Type
		}

		if err := p.articles.CreateArticle(ctx, article); err != nil {
			lgr.Printf("[ERROR] failed to store article %s: %v", guid, err)
			continue
		}
		added++
	}
	return added
}

// pruneFeed deletes articles outside the retention window that upstream no
// longer carries. Runs after ingestion so a slow delete never holds up inserts.
func (p *FeedProcessor) pruneFeed(ctx context.Context, feed domain.Feed, entries []domain.Entry) {
	cutoff := p.nowFunc().Add(-p.retention).Unix()

	liveHashes := make([]string, 0, len(entries))
	for _, entry := range entries {
		if guid := entry.ResolveGUID(); guid != "" {
			liveHashes = append(liveHashes, domain.HashGUID(guid))
		}
	}

	deleted, err := p.articles.DeleteStale(ctx, feed.ID, cutoff, liveHashes)
	if err != nil {
		lgr.Printf("[WARN] failed to prune feed %s: %v", feed.URL, err)
		return
	}
	if deleted > 0 {
		lgr.Printf("[INFO] pruned %d stale articles from %s", deleted, feed.Title)
	}
}

// reschedule computes and persists the next update time for a feed
func (p *FeedProcessor) reschedule(ctx context.Context, feedID int64) error {
	next, err := p.nextUpdateTime(ctx, feedID)
	if err != nil {
		return err
	}
	return p.feeds.UpdateFeedFetched(ctx, feedID, next)
}

// nextUpdateTime derives the next poll moment from the feed's trailing
// publish rate
func (p *FeedProcessor) nextUpdateTime(ctx context.Context, feedID int64) (int64, error) {
	now := p.nowFunc()
	count, err := p.articles.CountPublishedSince(ctx, feedID, now.Add(-activityWindow).Unix())
	if err != nil {
		return 0, fmt.Errorf("count recent articles: %w", err)
	}
	avgPerDay := float64(count) / (activityWindow.Hours() / 24)
	return now.Add(p.nextUpdateInterval(avgPerDay)).Unix(), nil
}

// nextUpdateInterval maps an average daily publish rate to a poll interval.
// Quiet feeds get a daily check with jitter so they don't all fire together;
// active feeds are polled at a quarter of their mean inter-article gap,
// floored so even firehose feeds are not hammered.
func (p *FeedProcessor) nextUpdateInterval(avgPerDay float64) time.Duration {
	if avgPerDay <= quietRateThreshold {
		return quietUpdateInterval + p.jitterFunc(quietJitter)
	}
	interval := time.Duration(float64(24*time.Hour) / avgPerDay / 4)
	if interval < minUpdateInterval {
		interval = minUpdateInterval
	}
	return interval
}
