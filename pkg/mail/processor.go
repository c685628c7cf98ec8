package mail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-message"
	_ "github.com/emersion/go-message/charset" // register charset decoders
	gomail "github.com/emersion/go-message/mail"
	"github.com/go-pkgz/lgr"

	"github.com/feedhaven/feedhaven/pkg/domain"
)

//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore

// FeedStore is the feed persistence surface used for mailing-list feeds
type FeedStore interface {
	CreateFeed(ctx context.Context, feed *domain.Feed) error
	GetFeedByURL(ctx context.Context, url string) (*domain.Feed, error)
}

// ArticleStore is the article persistence surface used for newsletter articles
type ArticleStore interface {
	CreateArticle(ctx context.Context, article *domain.Article) error
	ExistsByGUIDHash(ctx context.Context, guidHash string) (bool, error)
}

// Processor turns raw mailbox messages into stored articles. Only messages
// carrying a List-Unsubscribe header count as newsletters; everything else is
// logged and dropped without touching the store.
type Processor struct {
	feeds     FeedStore
	articles  ArticleStore
	sanitizer *Sanitizer

	nowFunc func() time.Time
}

// NewProcessor creates a newsletter processor
func NewProcessor(feeds FeedStore, articles ArticleStore, sanitizer *Sanitizer) *Processor {
	return &Processor{feeds: feeds, articles: articles, sanitizer: sanitizer, nowFunc: time.Now}
}

// Process classifies and stores one raw RFC822 message. A non-newsletter
// message is a successful no-op.
func (p *Processor) Process(ctx context.Context, raw []byte) error {
	entity, err := message.Read(bytes.NewReader(raw))
	if err != nil && !message.IsUnknownCharset(err) {
		return fmt.Errorf("parse message: %w", err)
	}

	header := gomail.Header{Header: entity.Header}
	subject, err := header.Subject()
	if err != nil {
		subject = entity.Header.Get("Subject")
	}
	sender, displayName := senderIdentity(header)
	if sender == "" {
		return fmt.Errorf("message has no sender address")
	}

	if entity.Header.Get("List-Unsubscribe") == "" {
		lgr.Printf("[INFO] ignoring non-newsletter message from %q, subject %q", sender, subject)
		return nil
	}

	title := displayName
	if title == "" {
		title = domainLabel(sender)
	}

	feed, err := p.findOrCreateFeed(ctx, sender, title)
	if err != nil {
		return fmt.Errorf("resolve mailing-list feed for %s: %w", sender, err)
	}

	guid := sender + ":" + subject
	guidHash := domain.HashGUID(guid)
	exists, err := p.articles.ExistsByGUIDHash(ctx, guidHash)
	if err != nil {
		return fmt.Errorf("check newsletter article: %w", err)
	}
	if exists {
		return nil
	}

	body := p.sanitizer.Clean(messageBody(entity))

	now := p.nowFunc().Unix()
	pubDate := now
	if date, derr := header.Date(); derr == nil && !date.IsZero() {
		pubDate = date.Unix()
	}

	article := &domain.Article{
		FeedID:       feed.ID,
		Title:        subject,
		Body:         body,
		Author:       sender,
		GUID:         guid,
		GUIDHash:     guidHash,
		Fingerprint:  domain.Fingerprint(subject, "", body),
		PubDate:      pubDate,
		LastModified: now,
		Unread:       true,
	}
	if err := p.articles.CreateArticle(ctx, article); err != nil {
		return fmt.Errorf("store newsletter article: %w", err)
	}

	lgr.Printf("[INFO] added newsletter %q to feed %q", subject, feed.Title)
	return nil
}

// findOrCreateFeed resolves the mailing-list feed keyed by sender address,
// creating it in the root folder on first contact
func (p *Processor) findOrCreateFeed(ctx context.Context, sender, title string) (*domain.Feed, error) {
	feed, err := p.feeds.GetFeedByURL(ctx, sender)
	if err == nil {
		return feed, nil
	}
	if !errors.Is(err, domain.ErrFeedNotFound) {
		return nil, err
	}

	feed = &domain.Feed{
		URL:           sender,
		Title:         title,
		FolderID:      domain.RootFolderID,
		Added:         p.nowFunc().Unix(),
		IsMailingList: true,
	}
	if err := p.feeds.CreateFeed(ctx, feed); err != nil {
		return nil, err
	}
	lgr.Printf("[INFO] created mailing-list feed %q for %s", title, sender)
	return feed, nil
}

// senderIdentity extracts the sender address and display name from the From
// header, tolerating malformed values by falling back to the raw header
func senderIdentity(header gomail.Header) (address, displayName string) {
	addrs, err := header.AddressList("From")
	if err == nil && len(addrs) > 0 {
		return addrs[0].Address, strings.TrimSpace(addrs[0].Name)
	}

	raw := header.Get("From")
	if open := strings.LastIndex(raw, "<"); open >= 0 {
		addr := strings.TrimSpace(strings.TrimSuffix(raw[open+1:], ">"))
		return addr, strings.TrimSpace(raw[:open])
	}
	return strings.TrimSpace(raw), ""
}

// domainLabel derives a feed title from the sender's domain when the From
// header carries no display name: "news@weekly.example.com" becomes "weekly"
func domainLabel(address string) string {
	at := strings.LastIndex(address, "@")
	if at < 0 || at == len(address)-1 {
		return address
	}
	domainPart := address[at+1:]
	if dot := strings.Index(domainPart, "."); dot > 0 {
		return domainPart[:dot]
	}
	return domainPart
}

// messageBody returns the message content, preferring an inline HTML part
// over plain text. Undecodable bytes are replaced rather than dropped.
func messageBody(entity *message.Entity) string {
	var html, plain string
	collectBodies(entity, &html, &plain)
	if html != "" {
		return html
	}
	return plain
}

// collectBodies walks the MIME tree depth-first and stops at the first
// inline HTML part
func collectBodies(entity *message.Entity, html, plain *string) {
	if mr := entity.MultipartReader(); mr != nil {
		for {
			part, err := mr.NextPart()
			if err == io.EOF {
				break
			}
			if err != nil && !message.IsUnknownCharset(err) {
				lgr.Printf("[WARN] skipping unreadable message part: %v", err)
				break
			}

			disposition, _, _ := part.Header.ContentDisposition()
			if disposition == "attachment" {
				continue
			}

			collectBodies(part, html, plain)
			if *html != "" {
				return
			}
		}
		return
	}

	mediaType, _, err := entity.Header.ContentType()
	if err != nil || mediaType == "" {
		mediaType = "text/plain"
	}
	switch mediaType {
	case "text/html":
		if *html == "" {
			*html = decodePart(entity)
		}
	case "text/plain":
		if *plain == "" {
			*plain = decodePart(entity)
		}
	}
}

// decodePart reads a part's body; the charset decoding is handled by the
// message reader, anything still invalid is substituted
func decodePart(entity *message.Entity) string {
	data, err := io.ReadAll(entity.Body)
	if err != nil {
		lgr.Printf("[WARN] failed to read message part: %v", err)
	}
	return strings.ToValidUTF8(string(data), "�")
}
