package content

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedhaven/feedhaven/pkg/content/mocks"
	"github.com/feedhaven/feedhaven/pkg/domain"
)

func TestEnricher_EnrichArticle(t *testing.T) {
	ctx := context.Background()

	stored := &domain.Article{ID: 7, FeedID: 2, Title: "Thin", URL: "https://example.com/post", Body: "teaser"}

	t.Run("extracted text replaces the body", func(t *testing.T) {
		articles := &mocks.ArticleStoreMock{
			GetArticleFunc: func(ctx context.Context, id int64) (*domain.Article, error) {
				a := *stored
				return &a, nil
			},
			UpdateArticleBodyFunc: func(ctx context.Context, id int64, body string) error { return nil },
		}
		extractor := &mocks.ExtractorMock{
			ExtractFunc: func(ctx context.Context, urlStr string) (string, error) {
				return "full article text", nil
			},
		}
		summarizer := &mocks.ArticleSummarizerMock{
			EnabledFunc: func() bool { return false },
		}

		e := NewEnricher(articles, extractor, summarizer)
		article, err := e.EnrichArticle(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "full article text", article.Body)

		require.Len(t, extractor.ExtractCalls(), 1)
		assert.Equal(t, "https://example.com/post", extractor.ExtractCalls()[0].URLStr)
		require.Len(t, articles.UpdateArticleBodyCalls(), 1)
		assert.Equal(t, int64(7), articles.UpdateArticleBodyCalls()[0].ID)
	})

	t.Run("summary is prepended when configured", func(t *testing.T) {
		articles := &mocks.ArticleStoreMock{
			GetArticleFunc: func(ctx context.Context, id int64) (*domain.Article, error) {
				a := *stored
				return &a, nil
			},
			UpdateArticleBodyFunc: func(ctx context.Context, id int64, body string) error { return nil },
		}
		extractor := &mocks.ExtractorMock{
			ExtractFunc: func(ctx context.Context, urlStr string) (string, error) {
				return "full article text", nil
			},
		}
		summarizer := &mocks.ArticleSummarizerMock{
			EnabledFunc: func() bool { return true },
			SummarizeFunc: func(ctx context.Context, articleText string) (string, error) {
				assert.Equal(t, "full article text", articleText)
				return "Recap. (AI generated)", nil
			},
		}

		e := NewEnricher(articles, extractor, summarizer)
		article, err := e.EnrichArticle(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "Recap. (AI generated)\n\nfull article text", article.Body)
	})

	t.Run("summarizer failure keeps the extracted text", func(t *testing.T) {
		articles := &mocks.ArticleStoreMock{
			GetArticleFunc: func(ctx context.Context, id int64) (*domain.Article, error) {
				a := *stored
				return &a, nil
			},
			UpdateArticleBodyFunc: func(ctx context.Context, id int64, body string) error { return nil },
		}
		extractor := &mocks.ExtractorMock{
			ExtractFunc: func(ctx context.Context, urlStr string) (string, error) {
				return "full article text", nil
			},
		}
		summarizer := &mocks.ArticleSummarizerMock{
			EnabledFunc: func() bool { return true },
			SummarizeFunc: func(ctx context.Context, articleText string) (string, error) {
				return "", fmt.Errorf("model unavailable")
			},
		}

		e := NewEnricher(articles, extractor, summarizer)
		article, err := e.EnrichArticle(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "full article text", article.Body)
	})

	t.Run("extraction failure leaves the article untouched", func(t *testing.T) {
		articles := &mocks.ArticleStoreMock{
			GetArticleFunc: func(ctx context.Context, id int64) (*domain.Article, error) {
				a := *stored
				return &a, nil
			},
		}
		extractor := &mocks.ExtractorMock{
			ExtractFunc: func(ctx context.Context, urlStr string) (string, error) {
				return "", fmt.Errorf("fetch failed")
			},
		}

		e := NewEnricher(articles, extractor, nil)
		_, err := e.EnrichArticle(ctx, 7)
		require.Error(t, err)
		assert.Empty(t, articles.UpdateArticleBodyCalls())
	})

	t.Run("article without URL", func(t *testing.T) {
		articles := &mocks.ArticleStoreMock{
			GetArticleFunc: func(ctx context.Context, id int64) (*domain.Article, error) {
				return &domain.Article{ID: 9, GUID: "sender@example.com:subject"}, nil
			},
		}

		e := NewEnricher(articles, &mocks.ExtractorMock{}, nil)
		_, err := e.EnrichArticle(ctx, 9)
		require.Error(t, err)
	})

	t.Run("missing article", func(t *testing.T) {
		articles := &mocks.ArticleStoreMock{
			GetArticleFunc: func(ctx context.Context, id int64) (*domain.Article, error) {
				return nil, domain.ErrArticleNotFound
			},
		}

		e := NewEnricher(articles, &mocks.ExtractorMock{}, nil)
		_, err := e.EnrichArticle(ctx, 99)
		require.ErrorIs(t, err, domain.ErrArticleNotFound)
	})
}
