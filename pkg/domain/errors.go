package domain

import (
	"errors"
	"fmt"
)

// sentinel errors crossing the core boundary; the outer layer maps them to status codes
var (
	ErrFeedExists           = errors.New("feed already exists")
	ErrFeedNotFound         = errors.New("feed not found")
	ErrFolderNotFound       = errors.New("folder not found")
	ErrFolderExists         = errors.New("folder already exists")
	ErrInvalidFolderName    = errors.New("folder name is invalid")
	ErrRootFolderImmutable  = errors.New("root folder cannot be modified")
	ErrArticleNotFound      = errors.New("article not found")
	ErrProtocolNotSupported = errors.New("protocol not supported, only imap is implemented")
	ErrCredentialNotFound   = errors.New("credential not found")
)

// UnsafeURLError indicates a URL rejected by SSRF protection; no fetch was attempted
type UnsafeURLError struct {
	URL    string
	Reason string
}

func (e *UnsafeURLError) Error() string {
	return fmt.Sprintf("unsafe url %s: %s", e.URL, e.Reason)
}

// FetchError is a recoverable transport or parse failure of a feed fetch.
// It is recorded on the feed and retried on the next cycle.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ConnectionError indicates a mailbox connection failure at credential registration
type ConnectionError struct {
	Addr string
	User string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect to mailbox %s for user %s: %v", e.Addr, e.User, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }
