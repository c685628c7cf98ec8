package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/feedhaven/feedhaven/pkg/domain"
)

// folderResponse is the API shape of a folder
type folderResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	IsRoot bool   `json:"is_root"`
}

// feedResponse is the API shape of a feed
type feedResponse struct {
	ID             int64  `json:"id"`
	URL            string `json:"url"`
	Title          string `json:"title"`
	Link           string `json:"link,omitempty"`
	FaviconLink    string `json:"favicon_link,omitempty"`
	FolderID       int64  `json:"folder_id"`
	IsMailingList  bool   `json:"is_mailing_list"`
	NextUpdateTime int64  `json:"next_update_time"`
	ErrorCount     int    `json:"error_count,omitempty"`
	LastError      string `json:"last_error,omitempty"`
}

// articleResponse is the API shape of an article
type articleResponse struct {
	ID            int64  `json:"id"`
	FeedID        int64  `json:"feed_id"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	Author        string `json:"author,omitempty"`
	URL           string `json:"url,omitempty"`
	GUIDHash      string `json:"guid_hash"`
	EnclosureLink string `json:"enclosure_link,omitempty"`
	EnclosureMime string `json:"enclosure_mime,omitempty"`
	PubDate       int64  `json:"pub_date"`
	LastModified  int64  `json:"last_modified"`
	Unread        bool   `json:"unread"`
	Starred       bool   `json:"starred"`
}

// credentialResponse is the API shape of a mailbox credential, password omitted
type credentialResponse struct {
	ID       int64  `json:"id"`
	Protocol string `json:"protocol"`
	Server   string `json:"server"`
	Port     int    `json:"port"`
	Username string `json:"username"`
}

func toFolderResponse(f domain.Folder) folderResponse {
	return folderResponse{ID: f.ID, Name: f.Name, IsRoot: f.IsRoot}
}

func toFeedResponse(f domain.Feed) feedResponse {
	return feedResponse{
		ID:             f.ID,
		URL:            f.URL,
		Title:          f.Title,
		Link:           f.Link,
		FaviconLink:    f.FaviconLink,
		FolderID:       f.FolderID,
		IsMailingList:  f.IsMailingList,
		NextUpdateTime: f.NextUpdateTime,
		ErrorCount:     f.UpdateErrorCount,
		LastError:      f.LastUpdateError,
	}
}

func toArticleResponse(a domain.Article) articleResponse {
	return articleResponse{
		ID:            a.ID,
		FeedID:        a.FeedID,
		Title:         a.Title,
		Body:          a.Body,
		Author:        a.Author,
		URL:           a.URL,
		GUIDHash:      a.GUIDHash,
		EnclosureLink: a.EnclosureLink,
		EnclosureMime: a.EnclosureMime,
		PubDate:       a.PubDate,
		LastModified:  a.LastModified,
		Unread:        a.Unread,
		Starred:       a.Starred,
	}
}

func toCredentialResponse(c domain.EmailCredential) credentialResponse {
	return credentialResponse{ID: c.ID, Protocol: c.Protocol, Server: c.Server, Port: c.Port, Username: c.Username}
}

// renderJSON writes a JSON response with the given status code
func renderJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		lgr.Printf("[WARN] failed to encode response: %v", err)
	}
}

// renderError maps a failure onto its API status code
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	rest.SendErrorJSON(w, r, lgr.Default(), errToStatus(err), err, "request failed")
}

// errToStatus maps domain failure kinds onto HTTP status codes. The mapping
// lives here so the core packages stay transport-free.
func errToStatus(err error) int {
	var unsafeErr *domain.UnsafeURLError
	var fetchErr *domain.FetchError
	var connErr *domain.ConnectionError

	switch {
	case errors.Is(err, domain.ErrFeedNotFound),
		errors.Is(err, domain.ErrFolderNotFound),
		errors.Is(err, domain.ErrArticleNotFound),
		errors.Is(err, domain.ErrCredentialNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrFeedExists), errors.Is(err, domain.ErrFolderExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidFolderName),
		errors.Is(err, domain.ErrRootFolderImmutable),
		errors.Is(err, domain.ErrProtocolNotSupported):
		return http.StatusBadRequest
	case errors.As(err, &unsafeErr):
		return http.StatusBadRequest
	case errors.As(err, &fetchErr), errors.As(err, &connErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// pathID parses the {id} path segment
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", r.PathValue("id"))
	}
	return id, nil
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, http.StatusOK, status)
}

// listFoldersHandler returns all folders, root first
func (s *Server) listFoldersHandler(w http.ResponseWriter, r *http.Request) {
	folders, err := s.folders.GetFolders(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}
	resp := make([]folderResponse, 0, len(folders))
	for _, f := range folders {
		resp = append(resp, toFolderResponse(f))
	}
	renderJSON(w, http.StatusOK, resp)
}

// createFolderHandler creates a folder
func (s *Server) createFolderHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, err, "invalid request body")
		return
	}

	folder, err := s.folders.CreateFolder(r.Context(), req.Name)
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusCreated, toFolderResponse(*folder))
}

// renameFolderHandler renames a folder
func (s *Server) renameFolderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, err, "invalid folder id")
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, err, "invalid request body")
		return
	}

	if err := s.folders.RenameFolder(r.Context(), id, req.Name); err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, rest.JSON{"renamed": id})
}

// deleteFolderHandler deletes a folder with its feeds and articles
func (s *Server) deleteFolderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, err, "invalid folder id")
		return
	}

	if err := s.folders.DeleteFolder(r.Context(), id); err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, rest.JSON{"deleted": id})
}

// listFeedsHandler returns all subscribed feeds
func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := s.feeds.GetFeeds(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}
	resp := make([]feedResponse, 0, len(feeds))
	for _, f := range feeds {
		resp = append(resp, toFeedResponse(f))
	}
	renderJSON(w, http.StatusOK, resp)
}

// createFeedHandler subscribes to a feed URL and seeds its initial articles
func (s *Server) createFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL      string `json:"url"`
		FolderID int64  `json:"folder_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, err, "invalid request body")
		return
	}
	if req.URL == "" {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, fmt.Errorf("url is required"), "invalid request body")
		return
	}
	if req.FolderID == 0 {
		req.FolderID = domain.RootFolderID
	}

	feed, err := s.scheduler.AddFeed(r.Context(), req.URL, req.FolderID)
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusCreated, toFeedResponse(*feed))
}

// updateFeedHandler renames a feed or moves it to another folder
func (s *Server) updateFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, err, "invalid feed id")
		return
	}

	var req struct {
		Title    *string `json:"title"`
		FolderID *int64  `json:"folder_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, err, "invalid request body")
		return
	}
	if req.Title == nil && req.FolderID == nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, fmt.Errorf("title or folder_id is required"), "invalid request body")
		return
	}

	if req.Title != nil {
		if err := s.feeds.RenameFeed(r.Context(), id, *req.Title); err != nil {
			renderError(w, r, err)
			return
		}
	}
	if req.FolderID != nil {
		if err := s.feeds.MoveFeed(r.Context(), id, *req.FolderID); err != nil {
			renderError(w, r, err)
			return
		}
	}
	renderJSON(w, http.StatusOK, rest.JSON{"updated": id})
}

// deleteFeedHandler removes a feed and its articles
func (s *Server) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, err, "invalid feed id")
		return
	}

	if err := s.feeds.DeleteFeed(r.Context(), id); err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, rest.JSON{"deleted": id})
}

// refreshFeedHandler runs an immediate update cycle for one feed
func (s *Server) refreshFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, err, "invalid feed id")
		return
	}

	if err := s.scheduler.UpdateFeedNow(r.Context(), id); err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, rest.JSON{"refreshed": id})
}

// listArticlesHandler returns articles matching the query filters
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := articleFilterFromQuery(r)
	if err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, err, "invalid query")
		return
	}

	articles, err := s.articles.ListArticles(r.Context(), filter)
	if err != nil {
		renderError(w, r, err)
		return
	}
	resp := make([]articleResponse, 0, len(articles))
	for _, a := range articles {
		resp = append(resp, toArticleResponse(a))
	}
	renderJSON(w, http.StatusOK, resp)
}

// articleFilterFromQuery builds an article filter from URL query parameters
func articleFilterFromQuery(r *http.Request) (domain.ArticleFilter, error) {
	var filter domain.ArticleFilter
	q := r.URL.Query()

	intParam := func(name string, dst *int64) error {
		if v := q.Get(name); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid %s %q", name, v)
			}
			*dst = n
		}
		return nil
	}

	for name, dst := range map[string]*int64{
		"feed_id":   &filter.FeedID,
		"folder_id": &filter.FolderID,
		"newest_id": &filter.NewestItemID,
		"since":     &filter.LastModifiedSince,
	} {
		if err := intParam(name, dst); err != nil {
			return filter, err
		}
	}

	var limit, offset int64
	if err := intParam("limit", &limit); err != nil {
		return filter, err
	}
	if err := intParam("offset", &offset); err != nil {
		return filter, err
	}
	filter.Limit = int(limit)
	filter.Offset = int(offset)

	filter.StarredOnly = q.Get("starred") == "true"
	filter.UnreadOnly = q.Get("unread") == "true"
	filter.OldestFirst = q.Get("oldest_first") == "true"
	return filter, nil
}

// getArticleHandler returns a single article
func (s *Server) getArticleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, err, "invalid article id")
		return
	}

	article, err := s.articles.GetArticle(r.Context(), id)
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, toArticleResponse(*article))
}

// setReadHandler marks a set of articles read or unread
func (s *Server) setReadHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs  []int64 `json:"ids"`
		Read bool    `json:"read"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, err, "invalid request body")
		return
	}

	affected, err := s.articles.SetRead(r.Context(), req.IDs, req.Read)
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, rest.JSON{"affected": affected})
}

// setStarredHandler stars or unstars a set of articles
func (s *Server) setStarredHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs     []int64 `json:"ids"`
		Starred bool    `json:"starred"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, err, "invalid request body")
		return
	}

	affected, err := s.articles.SetStarred(r.Context(), req.IDs, req.Starred)
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, rest.JSON{"affected": affected})
}

// markReadUpToHandler marks everything up to the given article id as read
func (s *Server) markReadUpToHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NewestID int64 `json:"newest_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, err, "invalid request body")
		return
	}
	if req.NewestID <= 0 {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, fmt.Errorf("newest_id is required"), "invalid request body")
		return
	}

	affected, err := s.articles.MarkReadUpTo(r.Context(), req.NewestID)
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, rest.JSON{"affected": affected})
}

// extractArticleHandler backfills one article body with extracted full text
func (s *Server) extractArticleHandler(w http.ResponseWriter, r *http.Request) {
	if s.enricher == nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusNotImplemented,
			fmt.Errorf("extraction disabled"), "content extraction is not enabled")
		return
	}

	id, err := pathID(r)
	if err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, err, "invalid article id")
		return
	}

	article, err := s.enricher.EnrichArticle(r.Context(), id)
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, toArticleResponse(*article))
}

// listCredentialsHandler returns the registered mailboxes without passwords
func (s *Server) listCredentialsHandler(w http.ResponseWriter, r *http.Request) {
	creds, err := s.mail.GetCredentials(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}
	resp := make([]credentialResponse, 0, len(creds))
	for _, c := range creds {
		resp = append(resp, toCredentialResponse(c))
	}
	renderJSON(w, http.StatusOK, resp)
}

// addCredentialHandler registers a mailbox after probing it
func (s *Server) addCredentialHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Protocol string `json:"protocol"`
		Server   string `json:"server"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, err, "invalid request body")
		return
	}
	if req.Server == "" || req.Username == "" {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest,
			fmt.Errorf("server and username are required"), "invalid request body")
		return
	}

	cred, err := s.mail.AddCredential(r.Context(), req.Protocol, req.Server, req.Port, req.Username, req.Password)
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusCreated, toCredentialResponse(*cred))
}

// deleteCredentialHandler removes a registered mailbox
func (s *Server) deleteCredentialHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		rest.SendErrorJSON(w, r, lgr.Default(), http.StatusBadRequest, err, "invalid credential id")
		return
	}

	if err := s.mail.DeleteCredential(r.Context(), id); err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, http.StatusOK, rest.JSON{"deleted": id})
}

// triggerUpdateHandler requests an immediate update pass
func (s *Server) triggerUpdateHandler(w http.ResponseWriter, r *http.Request) {
	s.scheduler.TriggerUpdate()
	renderJSON(w, http.StatusAccepted, rest.JSON{"triggered": true})
}
