package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// Article represents a single stored entry, originating from a feed or a newsletter
type Article struct {
	ID            int64
	FeedID        int64
	Title         string
	Body          string
	Author        string
	URL           string
	GUID          string
	GUIDHash      string
	Fingerprint   string
	EnclosureLink string
	EnclosureMime string
	PubDate       int64 // unix seconds
	UpdatedDate   int64 // unix seconds
	LastModified  int64 // unix seconds
	Unread        bool
	Starred       bool
}

// ArticleFilter narrows article listings; zero values mean "no constraint"
type ArticleFilter struct {
	FeedID            int64
	FolderID          int64
	StarredOnly       bool
	UnreadOnly        bool
	NewestItemID      int64 // only articles with id <= this
	LastModifiedSince int64 // only articles modified at or after this
	OldestFirst       bool
	Limit             int
	Offset            int
}

// HashGUID digests a GUID into the store-wide dedup key
func HashGUID(guid string) string {
	sum := sha256.Sum256([]byte(guid))
	return hex.EncodeToString(sum[:])
}

// Fingerprint computes a secondary stability key over the article content
func Fingerprint(title, url, body string) string {
	h := sha256.New()
	h.Write([]byte(title))
	h.Write([]byte{0})
	h.Write([]byte(url))
	h.Write([]byte{0})
	h.Write([]byte(body))
	return hex.EncodeToString(h.Sum(nil))
}
