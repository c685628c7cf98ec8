package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/feedhaven/feedhaven/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/folder_store.go -pkg mocks -skip-ensure -fmt goimports . FolderStore
//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/mail_service.go -pkg mocks -skip-ensure -fmt goimports . MailService
//go:generate moq -out mocks/enricher.go -pkg mocks -skip-ensure -fmt goimports . Enricher

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	scheduler Scheduler
	folders   FolderStore
	feeds     FeedStore
	articles  ArticleStore
	mail      MailService
	enricher  Enricher // optional, nil when extraction is disabled
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetAuthConfig() (user, passwd string)
}

// Scheduler exposes on-demand update operations
type Scheduler interface {
	AddFeed(ctx context.Context, url string, folderID int64) (*domain.Feed, error)
	UpdateFeedNow(ctx context.Context, feedID int64) error
	TriggerUpdate()
}

// FolderStore is the folder surface exposed over the API
type FolderStore interface {
	CreateFolder(ctx context.Context, name string) (*domain.Folder, error)
	GetFolders(ctx context.Context) ([]domain.Folder, error)
	RenameFolder(ctx context.Context, id int64, name string) error
	DeleteFolder(ctx context.Context, id int64) error
}

// FeedStore is the feed surface exposed over the API
type FeedStore interface {
	GetFeeds(ctx context.Context) ([]domain.Feed, error)
	RenameFeed(ctx context.Context, feedID int64, title string) error
	MoveFeed(ctx context.Context, feedID, folderID int64) error
	DeleteFeed(ctx context.Context, id int64) error
}

// ArticleStore is the article surface exposed over the API
type ArticleStore interface {
	ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)
	SetRead(ctx context.Context, ids []int64, read bool) (int64, error)
	SetStarred(ctx context.Context, ids []int64, starred bool) (int64, error)
	MarkReadUpTo(ctx context.Context, newestItemID int64) (int64, error)
}

// MailService manages newsletter mailboxes
type MailService interface {
	AddCredential(ctx context.Context, protocol, server string, port int, username, password string) (*domain.EmailCredential, error)
	GetCredentials(ctx context.Context) ([]domain.EmailCredential, error)
	DeleteCredential(ctx context.Context, id int64) error
}

// Enricher backfills article bodies with extracted full text
type Enricher interface {
	EnrichArticle(ctx context.Context, id int64) (*domain.Article, error)
}

// New initializes a new server instance
func New(cfg ConfigProvider, scheduler Scheduler, folders FolderStore, feeds FeedStore,
	articles ArticleStore, mail MailService, enricher Enricher, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		scheduler: scheduler,
		folders:   folders,
		feeds:     feeds,
		articles:  articles,
		mail:      mail,
		enricher:  enricher,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feedhaven", "feedhaven", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB

	if user, passwd := s.config.GetAuthConfig(); user != "" {
		s.router.Use(rest.BasicAuthWithPrompt(user, passwd))
	}
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /folders", s.listFoldersHandler)
		r.HandleFunc("POST /folders", s.createFolderHandler)
		r.HandleFunc("PUT /folders/{id}", s.renameFolderHandler)
		r.HandleFunc("DELETE /folders/{id}", s.deleteFolderHandler)

		r.HandleFunc("GET /feeds", s.listFeedsHandler)
		r.HandleFunc("POST /feeds", s.createFeedHandler)
		r.HandleFunc("PUT /feeds/{id}", s.updateFeedHandler)
		r.HandleFunc("DELETE /feeds/{id}", s.deleteFeedHandler)
		r.HandleFunc("POST /feeds/{id}/refresh", s.refreshFeedHandler)

		r.HandleFunc("GET /articles", s.listArticlesHandler)
		r.HandleFunc("GET /articles/{id}", s.getArticleHandler)
		r.HandleFunc("POST /articles/read", s.setReadHandler)
		r.HandleFunc("POST /articles/star", s.setStarredHandler)
		r.HandleFunc("POST /articles/read-up-to", s.markReadUpToHandler)
		r.HandleFunc("POST /articles/{id}/extract", s.extractArticleHandler)

		r.HandleFunc("GET /mail/credentials", s.listCredentialsHandler)
		r.HandleFunc("POST /mail/credentials", s.addCredentialHandler)
		r.HandleFunc("DELETE /mail/credentials/{id}", s.deleteCredentialHandler)

		r.HandleFunc("POST /update", s.triggerUpdateHandler)
	})
}
