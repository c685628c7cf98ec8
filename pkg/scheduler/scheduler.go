package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/feedhaven/feedhaven/pkg/domain"
)

//go:generate moq -out mocks/mailbox_poller.go -pkg mocks -skip-ensure -fmt goimports . MailboxPoller

// MailboxPoller drains newsletter mailboxes into the article store
type MailboxPoller interface {
	PollAll(ctx context.Context) error
}

// Scheduler drives periodic update passes. A pass walks the due feeds one by
// one and then the registered mailboxes; sources are never fetched
// concurrently, so a pass touches the store from a single goroutine.
type Scheduler struct {
	processor *FeedProcessor
	feeds     FeedStore
	mail      MailboxPoller // optional, nil when no mailboxes are configured
	interval  time.Duration

	trigger chan struct{}
	wg      sync.WaitGroup
	cancel  context.CancelFunc

	nowFunc func() time.Time
}

// NewScheduler creates a scheduler; a zero interval defaults to 15 minutes
func NewScheduler(processor *FeedProcessor, feeds FeedStore, mail MailboxPoller, interval time.Duration) *Scheduler {
	if interval == 0 {
		interval = 15 * time.Minute
	}
	return &Scheduler{
		processor: processor,
		feeds:     feeds,
		mail:      mail,
		interval:  interval,
		trigger:   make(chan struct{}, 1),
		nowFunc:   time.Now,
	}
}

// Start begins the periodic update loop; the first pass runs immediately
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.run(ctx)

	lgr.Printf("[INFO] scheduler started with %v check interval", s.interval)
}

// Stop cancels the loop and waits for an in-flight pass to reach its next
// checkpoint
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// TriggerUpdate requests an immediate pass. Non-blocking; a request made
// while one is already pending is folded into it.
func (s *Scheduler) TriggerUpdate() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// AddFeed registers a new feed and seeds its initial articles
func (s *Scheduler) AddFeed(ctx context.Context, url string, folderID int64) (*domain.Feed, error) {
	return s.processor.AddFeed(ctx, url, folderID)
}

// UpdateFeedNow runs a full update cycle for one feed, bypassing its schedule
func (s *Scheduler) UpdateFeedNow(ctx context.Context, feedID int64) error {
	feed, err := s.feeds.GetFeed(ctx, feedID)
	if err != nil {
		return fmt.Errorf("get feed: %w", err)
	}
	return s.processor.UpdateFeed(ctx, *feed)
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runPass(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runPass(ctx)
		case <-s.trigger:
			lgr.Printf("[INFO] manual update triggered")
			s.runPass(ctx)
		}
	}
}

// runPass updates every due feed and then polls the mailboxes. Cancellation
// is honored between sources; the source being fetched finishes or fails on
// its own timeout.
func (s *Scheduler) runPass(ctx context.Context) {
	due, err := s.feeds.GetDueFeeds(ctx, s.nowFunc().Unix())
	if err != nil {
		lgr.Printf("[ERROR] failed to get due feeds: %v", err)
		return
	}
	if len(due) > 0 {
		lgr.Printf("[INFO] updating %d due feeds", len(due))
	}

	for _, feed := range due {
		if ctx.Err() != nil {
			return
		}
		if err := s.processor.UpdateFeed(ctx, feed); err != nil {
			// already recorded on the feed, keep going with the rest
			continue
		}
	}

	if s.mail == nil || ctx.Err() != nil {
		return
	}
	if err := s.mail.PollAll(ctx); err != nil {
		lgr.Printf("[WARN] mailbox poll failed: %v", err)
	}
}
