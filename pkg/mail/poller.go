package mail

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/go-pkgz/lgr"

	"github.com/feedhaven/feedhaven/pkg/domain"
)

//go:generate moq -out mocks/credential_store.go -pkg mocks -skip-ensure -fmt goimports . CredentialStore
//go:generate moq -out mocks/message_processor.go -pkg mocks -skip-ensure -fmt goimports . MessageProcessor

// CredentialStore is the mailbox credential persistence surface
type CredentialStore interface {
	CreateCredential(ctx context.Context, cred *domain.EmailCredential) error
	GetCredentials(ctx context.Context) ([]domain.EmailCredential, error)
	DeleteCredential(ctx context.Context, id int64) error
}

// MessageProcessor consumes one raw RFC822 message
type MessageProcessor interface {
	Process(ctx context.Context, raw []byte) error
}

// imapConn is the slice of the imap client the poller uses
type imapConn interface {
	Login(username, password string) error
	Select(name string, readOnly bool) (*imap.MailboxStatus, error)
	Search(criteria *imap.SearchCriteria) ([]uint32, error)
	Fetch(seqset *imap.SeqSet, items []imap.FetchItem, ch chan *imap.Message) error
	Store(seqset *imap.SeqSet, item imap.StoreItem, value interface{}, ch chan *imap.Message) error
	Logout() error
}

// Service polls registered mailboxes over IMAP and hands unseen messages to
// the processor. Messages are flagged seen only after processing succeeds, so
// a crash re-delivers instead of losing mail; the guid dedup absorbs the
// replay.
type Service struct {
	creds     CredentialStore
	processor MessageProcessor
	timeout   time.Duration

	dial func(addr string) (imapConn, error)
}

// NewService creates a mail service; the timeout bounds every IMAP command
func NewService(creds CredentialStore, processor MessageProcessor, timeout time.Duration) *Service {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	s := &Service{creds: creds, processor: processor, timeout: timeout}
	s.dial = s.dialTLS
	return s
}

func (s *Service) dialTLS(addr string) (imapConn, error) {
	c, err := client.DialTLS(addr, nil)
	if err != nil {
		return nil, err
	}
	c.Timeout = s.timeout
	return c, nil
}

// AddCredential validates and stores a mailbox credential. Only IMAP over
// SSL is supported; the mailbox is probed with a full connect-login-select
// before anything is persisted, so a bad credential fails here and not on
// some later poll.
func (s *Service) AddCredential(ctx context.Context, protocol, server string, port int, username, password string) (*domain.EmailCredential, error) {
	if protocol != "imap" {
		return nil, domain.ErrProtocolNotSupported
	}

	cred := &domain.EmailCredential{
		Protocol: protocol,
		Server:   server,
		Port:     port,
		Username: username,
		Password: password,
	}

	conn, err := s.connect(cred)
	if err != nil {
		return nil, err
	}
	if err := conn.Logout(); err != nil {
		lgr.Printf("[WARN] failed to close probe connection to %s: %v", cred.Addr(), err)
	}

	if err := s.creds.CreateCredential(ctx, cred); err != nil {
		return nil, fmt.Errorf("store credential: %w", err)
	}
	lgr.Printf("[INFO] registered mailbox %s for %s", cred.Addr(), username)
	return cred, nil
}

// GetCredentials returns the registered mailboxes
func (s *Service) GetCredentials(ctx context.Context) ([]domain.EmailCredential, error) {
	return s.creds.GetCredentials(ctx)
}

// DeleteCredential unregisters a mailbox; its already-stored articles remain
func (s *Service) DeleteCredential(ctx context.Context, id int64) error {
	return s.creds.DeleteCredential(ctx, id)
}

// PollAll drains every registered mailbox sequentially. A failing mailbox is
// logged and skipped; only a store failure aborts the run.
func (s *Service) PollAll(ctx context.Context) error {
	creds, err := s.creds.GetCredentials(ctx)
	if err != nil {
		return fmt.Errorf("get credentials: %w", err)
	}
	if len(creds) == 0 {
		lgr.Printf("[DEBUG] no mailboxes registered, skipping mail poll")
		return nil
	}

	for _, cred := range creds {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.pollMailbox(ctx, cred); err != nil {
			lgr.Printf("[WARN] failed to poll mailbox %s: %v", cred.Addr(), err)
		}
	}
	return nil
}

// pollMailbox fetches and processes the unseen messages of one mailbox
func (s *Service) pollMailbox(ctx context.Context, cred domain.EmailCredential) error {
	if cred.Protocol != "imap" {
		return domain.ErrProtocolNotSupported
	}

	lgr.Printf("[INFO] polling mailbox %s for %s", cred.Addr(), cred.Username)

	conn, err := s.connect(&cred)
	if err != nil {
		return err
	}
	defer func() {
		if err := conn.Logout(); err != nil {
			lgr.Printf("[WARN] failed to log out of %s: %v", cred.Addr(), err)
		}
	}()

	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag}
	ids, err := conn.Search(criteria)
	if err != nil {
		return fmt.Errorf("search unseen: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}
	lgr.Printf("[INFO] found %d unseen messages for %s", len(ids), cred.Username)

	for _, id := range ids {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		raw, err := s.fetchMessage(conn, id)
		if err != nil {
			lgr.Printf("[WARN] failed to fetch message %d for %s: %v", id, cred.Username, err)
			continue
		}
		if err := s.processor.Process(ctx, raw); err != nil {
			lgr.Printf("[WARN] failed to process message %d for %s: %v", id, cred.Username, err)
			continue // left unseen, retried on the next poll
		}
		if err := s.markSeen(conn, id); err != nil {
			lgr.Printf("[WARN] failed to mark message %d seen for %s: %v", id, cred.Username, err)
		}
	}
	return nil
}

// connect dials, authenticates and selects the inbox. Any failure comes back
// as a ConnectionError carrying the mailbox identity.
func (s *Service) connect(cred *domain.EmailCredential) (imapConn, error) {
	conn, err := s.dial(cred.Addr())
	if err != nil {
		return nil, &domain.ConnectionError{Addr: cred.Addr(), User: cred.Username, Err: err}
	}
	if err := conn.Login(cred.Username, cred.Password); err != nil {
		_ = conn.Logout()
		return nil, &domain.ConnectionError{Addr: cred.Addr(), User: cred.Username, Err: err}
	}
	if _, err := conn.Select("INBOX", false); err != nil {
		_ = conn.Logout()
		return nil, &domain.ConnectionError{Addr: cred.Addr(), User: cred.Username, Err: err}
	}
	return conn, nil
}

func (s *Service) fetchMessage(conn imapConn, id uint32) ([]byte, error) {
	seqset := new(imap.SeqSet)
	seqset.AddNum(id)
	section := &imap.BodySectionName{}

	messages := make(chan *imap.Message, 1)
	if err := conn.Fetch(seqset, []imap.FetchItem{section.FetchItem()}, messages); err != nil {
		return nil, err
	}

	msg := <-messages
	if msg == nil {
		return nil, fmt.Errorf("no message returned")
	}
	body := msg.GetBody(section)
	if body == nil {
		return nil, fmt.Errorf("message has no body section")
	}
	return io.ReadAll(body)
}

func (s *Service) markSeen(conn imapConn, id uint32) error {
	seqset := new(imap.SeqSet)
	seqset.AddNum(id)
	item := imap.FormatFlagsOp(imap.AddFlags, true)
	return conn.Store(seqset, item, []interface{}{imap.SeenFlag}, nil)
}
