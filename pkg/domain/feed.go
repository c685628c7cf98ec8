package domain

// Feed represents a subscribed source, either an HTTP feed or a mailing list
type Feed struct {
	ID               int64
	URL              string
	Title            string
	FaviconLink      string
	Link             string
	FolderID         int64
	Added            int64 // unix seconds
	NextUpdateTime   int64 // unix seconds, 0 means due immediately
	Ordering         int
	Pinned           bool
	UpdateErrorCount int
	LastUpdateError  string
	IsMailingList    bool
}
