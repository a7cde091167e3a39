package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"snipvault/internal/domain"
	"snipvault/internal/domain/models"
	"snipvault/internal/domain/repositories"
)

// PostgresFolderRepository implements the FolderRepository interface
type PostgresFolderRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) repositories.FolderRepository {
	return &PostgresFolderRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new folder
func (r *PostgresFolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, name, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, r.tables.Folders)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		folder.ID,
		folder.UserID,
		folder.Name,
		folder.Color,
		folder.CreatedAt,
		folder.UpdatedAt,
	).Scan(&folder.CreatedAt, &folder.UpdatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("folder '%s': %w", folder.Name, domain.ErrConflict)
		}
		return classifyStoreErr("create folder", err)
	}

	return nil
}

// GetByID retrieves an active folder by ID
func (r *PostgresFolderRepository) GetByID(ctx context.Context, id, userID string) (*models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, color, created_at, updated_at, deleted_at
		FROM %s
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
	`, r.tables.Folders)

	var folder models.Folder
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, userID).Scan(
		&folder.ID,
		&folder.UserID,
		&folder.Name,
		&folder.Color,
		&folder.CreatedAt,
		&folder.UpdatedAt,
		&folder.DeletedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
		}
		return nil, classifyStoreErr("get folder", err)
	}

	return &folder, nil
}

// List retrieves all active folders for a user
func (r *PostgresFolderRepository) List(ctx context.Context, userID string) ([]models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, color, created_at, updated_at, deleted_at
		FROM %s
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY name ASC
	`, r.tables.Folders)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, classifyStoreErr("list folders", err)
	}
	defer rows.Close()

	folders := []models.Folder{}
	for rows.Next() {
		var folder models.Folder
		err := rows.Scan(
			&folder.ID,
			&folder.UserID,
			&folder.Name,
			&folder.Color,
			&folder.CreatedAt,
			&folder.UpdatedAt,
			&folder.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}

	return folders, nil
}

// ListDeletedWithCounts retrieves soft-deleted folders, newest deletion
// first, each with a count of the active snippets still filed under it.
// The joined snippets are active rows: soft-deleting a folder does not
// cascade, so they stay visible in the bin as the folder's live content.
func (r *PostgresFolderRepository) ListDeletedWithCounts(ctx context.Context, userID string) ([]models.FolderWithCount, error) {
	query := fmt.Sprintf(`
		SELECT f.id, f.user_id, f.name, f.color, f.created_at, f.updated_at, f.deleted_at,
		       COUNT(s.id) AS snippet_count
		FROM %s f
		LEFT JOIN %s s ON s.folder_id = f.id AND s.user_id = f.user_id AND s.deleted_at IS NULL
		WHERE f.user_id = $1 AND f.deleted_at IS NOT NULL
		GROUP BY f.id, f.user_id, f.name, f.color, f.created_at, f.updated_at, f.deleted_at
		ORDER BY f.deleted_at DESC
	`, r.tables.Folders, r.tables.Snippets)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, classifyStoreErr("list deleted folders", err)
	}
	defer rows.Close()

	folders := []models.FolderWithCount{}
	for rows.Next() {
		var folder models.FolderWithCount
		err := rows.Scan(
			&folder.ID,
			&folder.UserID,
			&folder.Name,
			&folder.Color,
			&folder.CreatedAt,
			&folder.UpdatedAt,
			&folder.DeletedAt,
			&folder.SnippetCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan deleted folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deleted folders: %w", err)
	}

	return folders, nil
}
