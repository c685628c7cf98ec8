package content

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/feedhaven/feedhaven/pkg/domain"
)

//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/article_summarizer.go -pkg mocks -skip-ensure -fmt goimports . ArticleSummarizer

// ArticleStore is the article persistence surface used for body backfill
type ArticleStore interface {
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)
	UpdateArticleBody(ctx context.Context, id int64, body string) error
}

// Extractor retrieves full article text from a URL
type Extractor interface {
	Extract(ctx context.Context, urlStr string) (string, error)
}

// ArticleSummarizer produces a short summary of article text
type ArticleSummarizer interface {
	Enabled() bool
	Summarize(ctx context.Context, articleText string) (string, error)
}

// Enricher backfills thin article bodies with extracted full text and,
// when summarization is configured, prepends a short summary.
type Enricher struct {
	articles   ArticleStore
	extractor  Extractor
	summarizer ArticleSummarizer
}

// NewEnricher creates an article enricher
func NewEnricher(articles ArticleStore, extractor Extractor, summarizer ArticleSummarizer) *Enricher {
	return &Enricher{articles: articles, extractor: extractor, summarizer: summarizer}
}

// EnrichArticle replaces the article's body with the full text extracted from
// its URL and returns the updated article. The stored body is kept when
// extraction fails or the article has no URL.
func (e *Enricher) EnrichArticle(ctx context.Context, id int64) (*domain.Article, error) {
	article, err := e.articles.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	if article.URL == "" {
		return nil, fmt.Errorf("article %d has no source URL", id)
	}

	text, err := e.extractor.Extract(ctx, article.URL)
	if err != nil {
		return nil, fmt.Errorf("extract article %d: %w", id, err)
	}

	body := text
	if e.summarizer != nil && e.summarizer.Enabled() {
		summary, serr := e.summarizer.Summarize(ctx, text)
		if serr != nil {
			lgr.Printf("[WARN] failed to summarize article %d: %v", id, serr)
		}
		if summary != "" {
			body = summary + "\n\n" + text
		}
	}

	if err := e.articles.UpdateArticleBody(ctx, id, body); err != nil {
		return nil, fmt.Errorf("store extracted body for article %d: %w", id, err)
	}

	article.Body = body
	return article, nil
}
