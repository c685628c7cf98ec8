package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedhaven/feedhaven/pkg/domain"
	"github.com/feedhaven/feedhaven/server/mocks"
)

type testServerDeps struct {
	config    *mocks.ConfigProviderMock
	scheduler *mocks.SchedulerMock
	folders   *mocks.FolderStoreMock
	feeds     *mocks.FeedStoreMock
	articles  *mocks.ArticleStoreMock
	mail      *mocks.MailServiceMock
	enricher  *mocks.EnricherMock
}

func newTestDeps() *testServerDeps {
	return &testServerDeps{
		config: &mocks.ConfigProviderMock{
			GetServerConfigFunc: func() (string, time.Duration) { return ":0", 30 * time.Second },
			GetAuthConfigFunc:   func() (string, string) { return "", "" },
		},
		scheduler: &mocks.SchedulerMock{},
		folders:   &mocks.FolderStoreMock{},
		feeds:     &mocks.FeedStoreMock{},
		articles:  &mocks.ArticleStoreMock{},
		mail:      &mocks.MailServiceMock{},
		enricher:  &mocks.EnricherMock{},
	}
}

func newTestServer(t *testing.T, deps *testServerDeps) *httptest.Server {
	t.Helper()
	srv := New(deps.config, deps.scheduler, deps.folders, deps.feeds, deps.articles, deps.mail, deps.enricher, "test", false)
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, data
}

func TestServer_Status(t *testing.T) {
	ts := newTestServer(t, newTestDeps())

	resp, data := doJSON(t, http.MethodGet, ts.URL+"/api/v1/status", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "test", status["version"])
}

func TestServer_Folders(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		deps := newTestDeps()
		deps.folders.GetFoldersFunc = func(ctx context.Context) ([]domain.Folder, error) {
			return []domain.Folder{
				{ID: 1, Name: "Uncategorized", IsRoot: true},
				{ID: 2, Name: "Tech"},
			}, nil
		}
		ts := newTestServer(t, deps)

		resp, data := doJSON(t, http.MethodGet, ts.URL+"/api/v1/folders", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var folders []folderResponse
		require.NoError(t, json.Unmarshal(data, &folders))
		require.Len(t, folders, 2)
		assert.True(t, folders[0].IsRoot)
		assert.Equal(t, "Tech", folders[1].Name)
	})

	t.Run("create", func(t *testing.T) {
		deps := newTestDeps()
		deps.folders.CreateFolderFunc = func(ctx context.Context, name string) (*domain.Folder, error) {
			return &domain.Folder{ID: 3, Name: name}, nil
		}
		ts := newTestServer(t, deps)

		resp, data := doJSON(t, http.MethodPost, ts.URL+"/api/v1/folders", `{"name":"News"}`)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var folder folderResponse
		require.NoError(t, json.Unmarshal(data, &folder))
		assert.Equal(t, int64(3), folder.ID)
		assert.Equal(t, "News", folder.Name)
	})

	t.Run("create duplicate", func(t *testing.T) {
		deps := newTestDeps()
		deps.folders.CreateFolderFunc = func(ctx context.Context, name string) (*domain.Folder, error) {
			return nil, domain.ErrFolderExists
		}
		ts := newTestServer(t, deps)

		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/folders", `{"name":"News"}`)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("create with empty name", func(t *testing.T) {
		deps := newTestDeps()
		deps.folders.CreateFolderFunc = func(ctx context.Context, name string) (*domain.Folder, error) {
			return nil, domain.ErrInvalidFolderName
		}
		ts := newTestServer(t, deps)

		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/folders", `{"name":""}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rename root", func(t *testing.T) {
		deps := newTestDeps()
		deps.folders.RenameFolderFunc = func(ctx context.Context, id int64, name string) error {
			return domain.ErrRootFolderImmutable
		}
		ts := newTestServer(t, deps)

		resp, _ := doJSON(t, http.MethodPut, ts.URL+"/api/v1/folders/1", `{"name":"Other"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("delete missing", func(t *testing.T) {
		deps := newTestDeps()
		deps.folders.DeleteFolderFunc = func(ctx context.Context, id int64) error {
			return domain.ErrFolderNotFound
		}
		ts := newTestServer(t, deps)

		resp, _ := doJSON(t, http.MethodDelete, ts.URL+"/api/v1/folders/99", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("delete", func(t *testing.T) {
		deps := newTestDeps()
		deps.folders.DeleteFolderFunc = func(ctx context.Context, id int64) error { return nil }
		ts := newTestServer(t, deps)

		resp, _ := doJSON(t, http.MethodDelete, ts.URL+"/api/v1/folders/2", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, deps.folders.DeleteFolderCalls(), 1)
		assert.Equal(t, int64(2), deps.folders.DeleteFolderCalls()[0].ID)
	})

	t.Run("bad id", func(t *testing.T) {
		ts := newTestServer(t, newTestDeps())
		resp, _ := doJSON(t, http.MethodDelete, ts.URL+"/api/v1/folders/abc", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_Feeds(t *testing.T) {
	t.Run("create defaults to root folder", func(t *testing.T) {
		deps := newTestDeps()
		deps.scheduler.AddFeedFunc = func(ctx context.Context, url string, folderID int64) (*domain.Feed, error) {
			return &domain.Feed{ID: 5, URL: url, Title: "Example", FolderID: folderID}, nil
		}
		ts := newTestServer(t, deps)

		resp, data := doJSON(t, http.MethodPost, ts.URL+"/api/v1/feeds", `{"url":"https://example.com/feed.xml"}`)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var feed feedResponse
		require.NoError(t, json.Unmarshal(data, &feed))
		assert.Equal(t, int64(5), feed.ID)
		assert.Equal(t, int64(domain.RootFolderID), feed.FolderID)

		require.Len(t, deps.scheduler.AddFeedCalls(), 1)
		assert.Equal(t, int64(domain.RootFolderID), deps.scheduler.AddFeedCalls()[0].FolderID)
	})

	t.Run("create without url", func(t *testing.T) {
		ts := newTestServer(t, newTestDeps())
		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/feeds", `{}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("create duplicate", func(t *testing.T) {
		deps := newTestDeps()
		deps.scheduler.AddFeedFunc = func(ctx context.Context, url string, folderID int64) (*domain.Feed, error) {
			return nil, domain.ErrFeedExists
		}
		ts := newTestServer(t, deps)

		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/feeds", `{"url":"https://example.com/feed.xml"}`)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("create with unsafe url", func(t *testing.T) {
		deps := newTestDeps()
		deps.scheduler.AddFeedFunc = func(ctx context.Context, url string, folderID int64) (*domain.Feed, error) {
			return nil, &domain.UnsafeURLError{URL: url, Reason: "loopback address"}
		}
		ts := newTestServer(t, deps)

		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/feeds", `{"url":"http://127.0.0.1/feed.xml"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("create with unreachable url", func(t *testing.T) {
		deps := newTestDeps()
		deps.scheduler.AddFeedFunc = func(ctx context.Context, url string, folderID int64) (*domain.Feed, error) {
			return nil, &domain.FetchError{URL: url, Err: fmt.Errorf("connection refused")}
		}
		ts := newTestServer(t, deps)

		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/feeds", `{"url":"https://down.example.com/feed.xml"}`)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})

	t.Run("rename and move", func(t *testing.T) {
		deps := newTestDeps()
		deps.feeds.RenameFeedFunc = func(ctx context.Context, feedID int64, title string) error { return nil }
		deps.feeds.MoveFeedFunc = func(ctx context.Context, feedID, folderID int64) error { return nil }
		ts := newTestServer(t, deps)

		resp, _ := doJSON(t, http.MethodPut, ts.URL+"/api/v1/feeds/5", `{"title":"Renamed","folder_id":2}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		require.Len(t, deps.feeds.RenameFeedCalls(), 1)
		assert.Equal(t, "Renamed", deps.feeds.RenameFeedCalls()[0].Title)
		require.Len(t, deps.feeds.MoveFeedCalls(), 1)
		assert.Equal(t, int64(2), deps.feeds.MoveFeedCalls()[0].FolderID)
	})

	t.Run("update without fields", func(t *testing.T) {
		ts := newTestServer(t, newTestDeps())
		resp, _ := doJSON(t, http.MethodPut, ts.URL+"/api/v1/feeds/5", `{}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("refresh missing feed", func(t *testing.T) {
		deps := newTestDeps()
		deps.scheduler.UpdateFeedNowFunc = func(ctx context.Context, feedID int64) error {
			return fmt.Errorf("get feed: %w", domain.ErrFeedNotFound)
		}
		ts := newTestServer(t, deps)

		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/feeds/99/refresh", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("refresh", func(t *testing.T) {
		deps := newTestDeps()
		deps.scheduler.UpdateFeedNowFunc = func(ctx context.Context, feedID int64) error { return nil }
		ts := newTestServer(t, deps)

		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/feeds/5/refresh", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, deps.scheduler.UpdateFeedNowCalls(), 1)
		assert.Equal(t, int64(5), deps.scheduler.UpdateFeedNowCalls()[0].FeedID)
	})
}

func TestServer_Articles(t *testing.T) {
	t.Run("list parses filters", func(t *testing.T) {
		deps := newTestDeps()
		deps.articles.ListArticlesFunc = func(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
			return []domain.Article{{ID: 1, Title: "A", Unread: true}}, nil
		}
		ts := newTestServer(t, deps)

		resp, data := doJSON(t, http.MethodGet,
			ts.URL+"/api/v1/articles?feed_id=3&unread=true&oldest_first=true&limit=20&offset=40&newest_id=100", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var articles []articleResponse
		require.NoError(t, json.Unmarshal(data, &articles))
		require.Len(t, articles, 1)

		require.Len(t, deps.articles.ListArticlesCalls(), 1)
		filter := deps.articles.ListArticlesCalls()[0].Filter
		assert.Equal(t, int64(3), filter.FeedID)
		assert.True(t, filter.UnreadOnly)
		assert.True(t, filter.OldestFirst)
		assert.Equal(t, 20, filter.Limit)
		assert.Equal(t, 40, filter.Offset)
		assert.Equal(t, int64(100), filter.NewestItemID)
	})

	t.Run("list with bad filter", func(t *testing.T) {
		ts := newTestServer(t, newTestDeps())
		resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/v1/articles?feed_id=abc", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("get missing", func(t *testing.T) {
		deps := newTestDeps()
		deps.articles.GetArticleFunc = func(ctx context.Context, id int64) (*domain.Article, error) {
			return nil, domain.ErrArticleNotFound
		}
		ts := newTestServer(t, deps)

		resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/v1/articles/99", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("mark read", func(t *testing.T) {
		deps := newTestDeps()
		deps.articles.SetReadFunc = func(ctx context.Context, ids []int64, read bool) (int64, error) {
			return int64(len(ids)), nil
		}
		ts := newTestServer(t, deps)

		resp, data := doJSON(t, http.MethodPost, ts.URL+"/api/v1/articles/read", `{"ids":[1,2,3],"read":true}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result map[string]int64
		require.NoError(t, json.Unmarshal(data, &result))
		assert.Equal(t, int64(3), result["affected"])

		require.Len(t, deps.articles.SetReadCalls(), 1)
		assert.Equal(t, []int64{1, 2, 3}, deps.articles.SetReadCalls()[0].IDs)
		assert.True(t, deps.articles.SetReadCalls()[0].Read)
	})

	t.Run("star", func(t *testing.T) {
		deps := newTestDeps()
		deps.articles.SetStarredFunc = func(ctx context.Context, ids []int64, starred bool) (int64, error) {
			return 1, nil
		}
		ts := newTestServer(t, deps)

		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/articles/star", `{"ids":[7],"starred":true}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, deps.articles.SetStarredCalls(), 1)
		assert.True(t, deps.articles.SetStarredCalls()[0].Starred)
	})

	t.Run("read up to", func(t *testing.T) {
		deps := newTestDeps()
		deps.articles.MarkReadUpToFunc = func(ctx context.Context, newestItemID int64) (int64, error) {
			return 42, nil
		}
		ts := newTestServer(t, deps)

		resp, data := doJSON(t, http.MethodPost, ts.URL+"/api/v1/articles/read-up-to", `{"newest_id":100}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result map[string]int64
		require.NoError(t, json.Unmarshal(data, &result))
		assert.Equal(t, int64(42), result["affected"])
	})

	t.Run("read up to requires id", func(t *testing.T) {
		ts := newTestServer(t, newTestDeps())
		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/articles/read-up-to", `{}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("extract", func(t *testing.T) {
		deps := newTestDeps()
		deps.enricher.EnrichArticleFunc = func(ctx context.Context, id int64) (*domain.Article, error) {
			return &domain.Article{ID: id, Body: "full text"}, nil
		}
		ts := newTestServer(t, deps)

		resp, data := doJSON(t, http.MethodPost, ts.URL+"/api/v1/articles/7/extract", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var article articleResponse
		require.NoError(t, json.Unmarshal(data, &article))
		assert.Equal(t, "full text", article.Body)
	})

	t.Run("extract disabled", func(t *testing.T) {
		deps := newTestDeps()
		srv := New(deps.config, deps.scheduler, deps.folders, deps.feeds, deps.articles, deps.mail, nil, "test", false)
		ts := httptest.NewServer(srv.router)
		defer ts.Close()

		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/articles/7/extract", "")
		assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
	})
}

func TestServer_MailCredentials(t *testing.T) {
	t.Run("list omits passwords", func(t *testing.T) {
		deps := newTestDeps()
		deps.mail.GetCredentialsFunc = func(ctx context.Context) ([]domain.EmailCredential, error) {
			return []domain.EmailCredential{
				{ID: 1, Protocol: "imap", Server: "imap.example.com", Port: 993, Username: "u@example.com", Password: "secret"},
			}, nil
		}
		ts := newTestServer(t, deps)

		resp, data := doJSON(t, http.MethodGet, ts.URL+"/api/v1/mail/credentials", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotContains(t, string(data), "secret")

		var creds []credentialResponse
		require.NoError(t, json.Unmarshal(data, &creds))
		require.Len(t, creds, 1)
		assert.Equal(t, "imap.example.com", creds[0].Server)
	})

	t.Run("add", func(t *testing.T) {
		deps := newTestDeps()
		deps.mail.AddCredentialFunc = func(ctx context.Context, protocol, server string, port int, username, password string) (*domain.EmailCredential, error) {
			return &domain.EmailCredential{ID: 2, Protocol: protocol, Server: server, Port: port, Username: username}, nil
		}
		ts := newTestServer(t, deps)

		body := `{"protocol":"imap","server":"imap.example.com","port":993,"username":"u@example.com","password":"secret"}`
		resp, data := doJSON(t, http.MethodPost, ts.URL+"/api/v1/mail/credentials", body)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.NotContains(t, string(data), "secret")

		require.Len(t, deps.mail.AddCredentialCalls(), 1)
		assert.Equal(t, "secret", deps.mail.AddCredentialCalls()[0].Password)
	})

	t.Run("add with unsupported protocol", func(t *testing.T) {
		deps := newTestDeps()
		deps.mail.AddCredentialFunc = func(ctx context.Context, protocol, server string, port int, username, password string) (*domain.EmailCredential, error) {
			return nil, domain.ErrProtocolNotSupported
		}
		ts := newTestServer(t, deps)

		body := `{"protocol":"pop3","server":"mail.example.com","port":995,"username":"u","password":"p"}`
		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/mail/credentials", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("add with failing probe", func(t *testing.T) {
		deps := newTestDeps()
		deps.mail.AddCredentialFunc = func(ctx context.Context, protocol, server string, port int, username, password string) (*domain.EmailCredential, error) {
			return nil, &domain.ConnectionError{Addr: "imap.example.com:993", User: username, Err: fmt.Errorf("auth failed")}
		}
		ts := newTestServer(t, deps)

		body := `{"protocol":"imap","server":"imap.example.com","port":993,"username":"u","password":"bad"}`
		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/mail/credentials", body)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})

	t.Run("delete", func(t *testing.T) {
		deps := newTestDeps()
		deps.mail.DeleteCredentialFunc = func(ctx context.Context, id int64) error { return nil }
		ts := newTestServer(t, deps)

		resp, _ := doJSON(t, http.MethodDelete, ts.URL+"/api/v1/mail/credentials/2", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, deps.mail.DeleteCredentialCalls(), 1)
	})
}

func TestServer_TriggerUpdate(t *testing.T) {
	deps := newTestDeps()
	deps.scheduler.TriggerUpdateFunc = func() {}
	ts := newTestServer(t, deps)

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/update", "")
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Len(t, deps.scheduler.TriggerUpdateCalls(), 1)
}

func TestServer_BasicAuth(t *testing.T) {
	deps := newTestDeps()
	deps.config.GetAuthConfigFunc = func() (string, string) { return "admin", "secret" }
	ts := newTestServer(t, deps)

	t.Run("unauthenticated request rejected", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/v1/status", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("authenticated request allowed", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/status", nil)
		require.NoError(t, err)
		req.SetBasicAuth("admin", "secret")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/status", nil)
		require.NoError(t, err)
		req.SetBasicAuth("admin", "wrong")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestErrToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"feed not found", domain.ErrFeedNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get feed: %w", domain.ErrFeedNotFound), http.StatusNotFound},
		{"feed exists", domain.ErrFeedExists, http.StatusConflict},
		{"folder exists", domain.ErrFolderExists, http.StatusConflict},
		{"root immutable", domain.ErrRootFolderImmutable, http.StatusBadRequest},
		{"bad protocol", domain.ErrProtocolNotSupported, http.StatusBadRequest},
		{"unsafe url", &domain.UnsafeURLError{URL: "http://10.0.0.1/", Reason: "private address"}, http.StatusBadRequest},
		{"fetch error", &domain.FetchError{URL: "https://example.com", Err: fmt.Errorf("timeout")}, http.StatusBadGateway},
		{"connection error", &domain.ConnectionError{Addr: "imap:993", Err: fmt.Errorf("refused")}, http.StatusBadGateway},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errToStatus(tt.err))
		})
	}
}
