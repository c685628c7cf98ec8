package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/feedhaven/feedhaven/pkg/domain"
)

// CredentialRepository handles mailbox credential storage
type CredentialRepository struct {
	db *sqlx.DB
}

// credentialSQL represents an email credential for SQL operations
type credentialSQL struct {
	ID       int64  `db:"id"`
	Protocol string `db:"protocol"`
	Server   string `db:"server"`
	Port     int    `db:"port"`
	Username string `db:"username"`
	Password string `db:"password"`
}

// NewCredentialRepository creates a new credential repository
func NewCredentialRepository(database *sqlx.DB) *CredentialRepository {
	return &CredentialRepository{db: database}
}

// CreateCredential stores a validated mailbox credential
func (r *CredentialRepository) CreateCredential(ctx context.Context, cred *domain.EmailCredential) error {
	sqlCred := &credentialSQL{
		Protocol: cred.Protocol,
		Server:   cred.Server,
		Port:     cred.Port,
		Username: cred.Username,
		Password: cred.Password,
	}

	return withLockRetry(ctx, func() error {
		query := `
			INSERT INTO email_credentials (protocol, server, port, username, password)
			VALUES (:protocol, :server, :port, :username, :password)
		`
		result, err := r.db.NamedExecContext(ctx, query, sqlCred)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("create credential: %w", err)}
		}

		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		cred.ID = id
		return nil
	})
}

// GetCredentials retrieves all stored mailbox credentials
func (r *CredentialRepository) GetCredentials(ctx context.Context) ([]domain.EmailCredential, error) {
	var sqlCreds []credentialSQL
	if err := r.db.SelectContext(ctx, &sqlCreds, "SELECT * FROM email_credentials ORDER BY id"); err != nil {
		return nil, fmt.Errorf("get credentials: %w", err)
	}

	creds := make([]domain.EmailCredential, len(sqlCreds))
	for i, c := range sqlCreds {
		creds[i] = domain.EmailCredential{
			ID:       c.ID,
			Protocol: c.Protocol,
			Server:   c.Server,
			Port:     c.Port,
			Username: c.Username,
			Password: c.Password,
		}
	}
	return creds, nil
}

// DeleteCredential removes a stored mailbox credential
func (r *CredentialRepository) DeleteCredential(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM email_credentials WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return requireAffected(result, domain.ErrCredentialNotFound)
}
