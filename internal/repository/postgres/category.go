package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"snipvault/internal/domain"
	"snipvault/internal/domain/models"
	"snipvault/internal/domain/repositories"
)

// PostgresCategoryRepository implements the CategoryRepository interface
type PostgresCategoryRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(config *RepositoryConfig) repositories.CategoryRepository {
	return &PostgresCategoryRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new category
func (r *PostgresCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, name, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, r.tables.Categories)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		category.ID,
		category.UserID,
		category.Name,
		category.Color,
		category.CreatedAt,
		category.UpdatedAt,
	).Scan(&category.CreatedAt, &category.UpdatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("category '%s': %w", category.Name, domain.ErrConflict)
		}
		return classifyStoreErr("create category", err)
	}

	return nil
}

// GetByID retrieves an active category by ID
func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id, userID string) (*models.Category, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, color, created_at, updated_at, deleted_at
		FROM %s
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
	`, r.tables.Categories)

	var category models.Category
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, userID).Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&category.Color,
		&category.CreatedAt,
		&category.UpdatedAt,
		&category.DeletedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
		}
		return nil, classifyStoreErr("get category", err)
	}

	return &category, nil
}

// List retrieves all active categories for a user
func (r *PostgresCategoryRepository) List(ctx context.Context, userID string) ([]models.Category, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, color, created_at, updated_at, deleted_at
		FROM %s
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY name ASC
	`, r.tables.Categories)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, classifyStoreErr("list categories", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var category models.Category
		err := rows.Scan(
			&category.ID,
			&category.UserID,
			&category.Name,
			&category.Color,
			&category.CreatedAt,
			&category.UpdatedAt,
			&category.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}

// ListDeletedWithCounts retrieves soft-deleted categories, newest deletion
// first, each with a count of active snippets still tagged with it.
func (r *PostgresCategoryRepository) ListDeletedWithCounts(ctx context.Context, userID string) ([]models.CategoryWithCount, error) {
	query := fmt.Sprintf(`
		SELECT c.id, c.user_id, c.name, c.color, c.created_at, c.updated_at, c.deleted_at,
		       COUNT(s.id) AS snippet_count
		FROM %s c
		LEFT JOIN %s s ON s.category_id = c.id AND s.user_id = c.user_id AND s.deleted_at IS NULL
		WHERE c.user_id = $1 AND c.deleted_at IS NOT NULL
		GROUP BY c.id, c.user_id, c.name, c.color, c.created_at, c.updated_at, c.deleted_at
		ORDER BY c.deleted_at DESC
	`, r.tables.Categories, r.tables.Snippets)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, classifyStoreErr("list deleted categories", err)
	}
	defer rows.Close()

	categories := []models.CategoryWithCount{}
	for rows.Next() {
		var category models.CategoryWithCount
		err := rows.Scan(
			&category.ID,
			&category.UserID,
			&category.Name,
			&category.Color,
			&category.CreatedAt,
			&category.UpdatedAt,
			&category.DeletedAt,
			&category.SnippetCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan deleted category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deleted categories: %w", err)
	}

	return categories, nil
}
