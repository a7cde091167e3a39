package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"snipvault/internal/domain"
	"snipvault/internal/domain/models"
	"snipvault/internal/domain/repositories"
)

// PostgresSnippetRepository implements the SnippetRepository interface
type PostgresSnippetRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSnippetRepository creates a new snippet repository
func NewSnippetRepository(config *RepositoryConfig) repositories.SnippetRepository {
	return &PostgresSnippetRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const snippetColumns = "id, user_id, folder_id, category_id, title, language, code, created_at, updated_at, deleted_at"

// Create creates a new snippet
func (r *PostgresSnippetRepository) Create(ctx context.Context, snippet *models.Snippet) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, folder_id, category_id, title, language, code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`, r.tables.Snippets)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		snippet.ID,
		snippet.UserID,
		snippet.FolderID,
		snippet.CategoryID,
		snippet.Title,
		snippet.Language,
		snippet.Code,
		snippet.CreatedAt,
		snippet.UpdatedAt,
	).Scan(&snippet.CreatedAt, &snippet.UpdatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("snippet '%s': folder or category does not exist: %w", snippet.Title, domain.ErrValidation)
		}
		return classifyStoreErr("create snippet", err)
	}

	return nil
}

// GetByID retrieves an active snippet by ID
func (r *PostgresSnippetRepository) GetByID(ctx context.Context, id, userID string) (*models.Snippet, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
	`, snippetColumns, r.tables.Snippets)

	var snippet models.Snippet
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, userID).Scan(
		&snippet.ID,
		&snippet.UserID,
		&snippet.FolderID,
		&snippet.CategoryID,
		&snippet.Title,
		&snippet.Language,
		&snippet.Code,
		&snippet.CreatedAt,
		&snippet.UpdatedAt,
		&snippet.DeletedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("snippet %s: %w", id, domain.ErrNotFound)
		}
		return nil, classifyStoreErr("get snippet", err)
	}

	return &snippet, nil
}

// List retrieves all active snippets for a user, most recently updated first
func (r *PostgresSnippetRepository) List(ctx context.Context, userID string) ([]models.Snippet, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY updated_at DESC
	`, snippetColumns, r.tables.Snippets)

	return r.querySnippets(ctx, query, "list snippets", userID)
}

// ListDeleted retrieves soft-deleted snippets, newest deletion first
func (r *PostgresSnippetRepository) ListDeleted(ctx context.Context, userID string) ([]models.Snippet, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE user_id = $1 AND deleted_at IS NOT NULL
		ORDER BY deleted_at DESC
	`, snippetColumns, r.tables.Snippets)

	return r.querySnippets(ctx, query, "list deleted snippets", userID)
}

// Update updates a snippet's payload fields
func (r *PostgresSnippetRepository) Update(ctx context.Context, snippet *models.Snippet) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET folder_id = $1, category_id = $2, title = $3, language = $4, code = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8 AND deleted_at IS NULL
	`, r.tables.Snippets)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		snippet.FolderID,
		snippet.CategoryID,
		snippet.Title,
		snippet.Language,
		snippet.Code,
		snippet.UpdatedAt,
		snippet.ID,
		snippet.UserID,
	)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("snippet %s: folder or category does not exist: %w", snippet.ID, domain.ErrValidation)
		}
		return classifyStoreErr("update snippet", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("snippet %s: %w", snippet.ID, domain.ErrNotFound)
	}

	return nil
}

func (r *PostgresSnippetRepository) querySnippets(ctx context.Context, query, op, userID string) ([]models.Snippet, error) {
	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, classifyStoreErr(op, err)
	}
	defer rows.Close()

	snippets := []models.Snippet{}
	for rows.Next() {
		var snippet models.Snippet
		err := rows.Scan(
			&snippet.ID,
			&snippet.UserID,
			&snippet.FolderID,
			&snippet.CategoryID,
			&snippet.Title,
			&snippet.Language,
			&snippet.Code,
			&snippet.CreatedAt,
			&snippet.UpdatedAt,
			&snippet.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan snippet: %w", err)
		}
		snippets = append(snippets, snippet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snippets: %w", err)
	}

	return snippets, nil
}
