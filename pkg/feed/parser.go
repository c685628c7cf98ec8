package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/feedhaven/feedhaven/pkg/domain"
)

// maxBodySize caps feed documents; anything larger is treated as a fetch failure
const maxBodySize = 10 * 1024 * 1024

// URLGuard rejects URLs that are unsafe to fetch
type URLGuard interface {
	Validate(rawURL string) error
}

// Parser fetches and parses RSS/Atom/JSON feeds into canonical entries
type Parser struct {
	client    *http.Client
	guard     URLGuard
	userAgent string
}

// NewParser creates a new feed parser. Every fetch is bounded by the given
// timeout and checked against the guard before any network call.
func NewParser(guard URLGuard, timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		guard:     guard,
		userAgent: userAgent,
	}
}

// Parse fetches and parses a feed from the given URL. An SSRF rejection is
// returned as *domain.UnsafeURLError with no network call made; any transport
// or parse failure is returned as *domain.FetchError.
func (p *Parser) Parse(ctx context.Context, url string) (*domain.ParsedFeed, error) {
	if err := p.guard.Validate(url); err != nil {
		return nil, err
	}

	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Err: err}
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Err: fmt.Errorf("parse feed: %w", err)}
	}

	result := &domain.ParsedFeed{
		Title:   parsed.Title,
		Link:    parsed.Link,
		Entries: make([]domain.Entry, 0, len(parsed.Items)),
	}
	if parsed.Image != nil {
		result.FaviconLink = parsed.Image.URL
	}

	for _, item := range parsed.Items {
		result.Entries = append(result.Entries, convertItem(item))
	}
	return result, nil
}

// convertItem maps a gofeed item onto the canonical entry shape
func convertItem(item *gofeed.Item) domain.Entry {
	entry := domain.Entry{
		GUID:    item.GUID,
		Link:    item.Link,
		Title:   item.Title,
		Content: item.Content,
		Summary: item.Description,
	}

	if item.Author != nil {
		entry.Author = item.Author.Name
	}
	if item.PublishedParsed != nil {
		entry.Published = item.PublishedParsed.Unix()
	}
	if item.UpdatedParsed != nil {
		entry.Updated = item.UpdatedParsed.Unix()
	}

	for _, enc := range item.Enclosures {
		if enc == nil || enc.URL == "" {
			continue
		}
		entry.Enclosures = append(entry.Enclosures, domain.Enclosure{URL: enc.URL, Type: enc.Type})
	}
	return entry
}

// fetch retrieves the feed document, enforcing the response size ceiling
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	addBrowserHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return &limitedBody{inner: resp.Body, remaining: maxBodySize}, nil
}

// limitedBody fails the read instead of silently truncating oversized documents
type limitedBody struct {
	inner     io.ReadCloser
	remaining int64
}

func (b *limitedBody) Read(p []byte) (int, error) {
	if b.remaining < 0 {
		return 0, fmt.Errorf("response exceeds %d bytes", int64(maxBodySize))
	}
	if int64(len(p)) > b.remaining+1 {
		p = p[:b.remaining+1]
	}
	n, err := b.inner.Read(p)
	b.remaining -= int64(n)
	if b.remaining < 0 {
		return n, fmt.Errorf("response exceeds %d bytes", int64(maxBodySize))
	}
	return n, err
}

func (b *limitedBody) Close() error { return b.inner.Close() }
