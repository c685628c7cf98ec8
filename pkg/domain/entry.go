package domain

// ParsedFeed is the dialect-agnostic result of fetching and parsing a feed document
type ParsedFeed struct {
	Title       string
	Link        string
	FaviconLink string
	Entries     []Entry
}

// Entry is a canonical feed entry; optional fields are zero when the source omits them
type Entry struct {
	GUID       string
	Link       string
	Title      string
	Content    string
	Summary    string
	Author     string
	Published  int64 // unix seconds, 0 when the source has no usable date
	Updated    int64 // unix seconds, 0 when the source has no usable date
	Enclosures []Enclosure
}

// Enclosure is an attached media resource of an entry
type Enclosure struct {
	URL  string
	Type string
}

// ResolveGUID returns the entry identity used for deduplication: the source GUID,
// falling back to the link and then the title. Empty result means the entry
// cannot be identified and must be skipped.
func (e Entry) ResolveGUID() string {
	if e.GUID != "" {
		return e.GUID
	}
	if e.Link != "" {
		return e.Link
	}
	return e.Title
}
