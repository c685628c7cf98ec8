package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/feedhaven/feedhaven/pkg/domain"
)

// FolderRepository handles folder-related database operations
type FolderRepository struct {
	db *sqlx.DB
}

type folderSQL struct {
	ID     int64  `db:"id"`
	Name   string `db:"name"`
	IsRoot bool   `db:"is_root"`
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(database *sqlx.DB) *FolderRepository {
	return &FolderRepository{db: database}
}

// CreateFolder inserts a new folder with a unique, non-empty name
func (r *FolderRepository) CreateFolder(ctx context.Context, name string) (*domain.Folder, error) {
	if name == "" {
		return nil, domain.ErrInvalidFolderName
	}

	result, err := r.db.ExecContext(ctx, "INSERT INTO folders (name) VALUES (?)", name)
	if err != nil {
		if isUniqueError(err) {
			return nil, domain.ErrFolderExists
		}
		return nil, fmt.Errorf("create folder: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get insert id: %w", err)
	}
	return &domain.Folder{ID: id, Name: name}, nil
}

// GetFolder retrieves a folder by ID; a zero ID resolves to the root folder
func (r *FolderRepository) GetFolder(ctx context.Context, id int64) (*domain.Folder, error) {
	if id == 0 {
		id = domain.RootFolderID
	}

	var sqlFolder folderSQL
	err := r.db.GetContext(ctx, &sqlFolder, "SELECT * FROM folders WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFolderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get folder: %w", err)
	}
	return &domain.Folder{ID: sqlFolder.ID, Name: sqlFolder.Name, IsRoot: sqlFolder.IsRoot}, nil
}

// GetFolders retrieves all folders, root first
func (r *FolderRepository) GetFolders(ctx context.Context) ([]domain.Folder, error) {
	var sqlFolders []folderSQL
	err := r.db.SelectContext(ctx, &sqlFolders, "SELECT * FROM folders ORDER BY is_root DESC, name")
	if err != nil {
		return nil, fmt.Errorf("get folders: %w", err)
	}

	folders := make([]domain.Folder, len(sqlFolders))
	for i, f := range sqlFolders {
		folders[i] = domain.Folder{ID: f.ID, Name: f.Name, IsRoot: f.IsRoot}
	}
	return folders, nil
}

// RenameFolder sets a new unique name; the root folder is immutable
func (r *FolderRepository) RenameFolder(ctx context.Context, id int64, name string) error {
	if name == "" {
		return domain.ErrInvalidFolderName
	}

	folder, err := r.GetFolder(ctx, id)
	if err != nil {
		return err
	}
	if folder.IsRoot {
		return domain.ErrRootFolderImmutable
	}

	if _, err := r.db.ExecContext(ctx, "UPDATE folders SET name = ? WHERE id = ?", name, id); err != nil {
		if isUniqueError(err) {
			return domain.ErrFolderExists
		}
		return fmt.Errorf("rename folder: %w", err)
	}
	return nil
}

// DeleteFolder removes a folder and all feeds it owns; articles of those
// feeds cascade away with them. The root folder cannot be deleted.
func (r *FolderRepository) DeleteFolder(ctx context.Context, id int64) error {
	folder, err := r.GetFolder(ctx, id)
	if err != nil {
		return err
	}
	if folder.IsRoot {
		return domain.ErrRootFolderImmutable
	}

	return withLockRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("begin delete folder: %w", err)}
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		if _, err := tx.ExecContext(ctx, "DELETE FROM feeds WHERE folder_id = ?", id); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("delete folder feeds: %w", err)}
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM folders WHERE id = ?", id); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("delete folder: %w", err)}
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("commit delete folder: %w", err)}
		}
		return nil
	})
}
