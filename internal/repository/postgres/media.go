package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"snipvault/internal/domain"
	"snipvault/internal/domain/models"
	"snipvault/internal/domain/repositories"
)

// Media repositories mirror the snippet-side ones over the media_* tables.

type PostgresMediaFileRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

func NewMediaFileRepository(config *RepositoryConfig) repositories.MediaFileRepository {
	return &PostgresMediaFileRepository{pool: config.Pool, tables: config.Tables}
}

const mediaFileColumns = "id, user_id, media_folder_id, media_category_id, name, mime_type, size_bytes, storage_key, created_at, updated_at, deleted_at"

func (r *PostgresMediaFileRepository) Create(ctx context.Context, file *models.MediaFile) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, media_folder_id, media_category_id, name, mime_type, size_bytes, storage_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`, r.tables.MediaFiles)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		file.ID,
		file.UserID,
		file.MediaFolderID,
		file.CategoryID,
		file.Name,
		file.MimeType,
		file.SizeBytes,
		file.StorageKey,
		file.CreatedAt,
		file.UpdatedAt,
	).Scan(&file.CreatedAt, &file.UpdatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("media file '%s': folder or category does not exist: %w", file.Name, domain.ErrValidation)
		}
		return classifyStoreErr("create media file", err)
	}

	return nil
}

func (r *PostgresMediaFileRepository) GetByID(ctx context.Context, id, userID string) (*models.MediaFile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
	`, mediaFileColumns, r.tables.MediaFiles)

	var file models.MediaFile
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, userID).Scan(
		&file.ID,
		&file.UserID,
		&file.MediaFolderID,
		&file.CategoryID,
		&file.Name,
		&file.MimeType,
		&file.SizeBytes,
		&file.StorageKey,
		&file.CreatedAt,
		&file.UpdatedAt,
		&file.DeletedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("media file %s: %w", id, domain.ErrNotFound)
		}
		return nil, classifyStoreErr("get media file", err)
	}

	return &file, nil
}

func (r *PostgresMediaFileRepository) List(ctx context.Context, userID string) ([]models.MediaFile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY updated_at DESC
	`, mediaFileColumns, r.tables.MediaFiles)

	return r.queryFiles(ctx, query, "list media files", userID)
}

func (r *PostgresMediaFileRepository) ListDeleted(ctx context.Context, userID string) ([]models.MediaFile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE user_id = $1 AND deleted_at IS NOT NULL
		ORDER BY deleted_at DESC
	`, mediaFileColumns, r.tables.MediaFiles)

	return r.queryFiles(ctx, query, "list deleted media files", userID)
}

func (r *PostgresMediaFileRepository) queryFiles(ctx context.Context, query, op, userID string) ([]models.MediaFile, error) {
	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, classifyStoreErr(op, err)
	}
	defer rows.Close()

	files := []models.MediaFile{}
	for rows.Next() {
		var file models.MediaFile
		err := rows.Scan(
			&file.ID,
			&file.UserID,
			&file.MediaFolderID,
			&file.CategoryID,
			&file.Name,
			&file.MimeType,
			&file.SizeBytes,
			&file.StorageKey,
			&file.CreatedAt,
			&file.UpdatedAt,
			&file.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan media file: %w", err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate media files: %w", err)
	}

	return files, nil
}

type PostgresMediaFolderRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

func NewMediaFolderRepository(config *RepositoryConfig) repositories.MediaFolderRepository {
	return &PostgresMediaFolderRepository{pool: config.Pool, tables: config.Tables}
}

func (r *PostgresMediaFolderRepository) Create(ctx context.Context, folder *models.MediaFolder) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, name, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, r.tables.MediaFolders)

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
			return fmt.Errorf("media folder '%s': %w", folder.Name, domain.ErrConflict)
		}
		return classifyStoreErr("create media folder", err)
	}

	return nil
}

func (r *PostgresMediaFolderRepository) GetByID(ctx context.Context, id, userID string) (*models.MediaFolder, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, color, created_at, updated_at, deleted_at
		FROM %s
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
	`, r.tables.MediaFolders)

	var folder models.MediaFolder
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
			return nil, fmt.Errorf("media folder %s: %w", id, domain.ErrNotFound)
		}
		return nil, classifyStoreErr("get media folder", err)
	}

	return &folder, nil
}

func (r *PostgresMediaFolderRepository) List(ctx context.Context, userID string) ([]models.MediaFolder, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, color, created_at, updated_at, deleted_at
		FROM %s
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY name ASC
	`, r.tables.MediaFolders)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, classifyStoreErr("list media folders", err)
	}
	defer rows.Close()

	folders := []models.MediaFolder{}
	for rows.Next() {
		var folder models.MediaFolder
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
			return nil, fmt.Errorf("scan media folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate media folders: %w", err)
	}

	return folders, nil
}

func (r *PostgresMediaFolderRepository) ListDeletedWithCounts(ctx context.Context, userID string) ([]models.MediaFolderWithCount, error) {
	query := fmt.Sprintf(`
		SELECT f.id, f.user_id, f.name, f.color, f.created_at, f.updated_at, f.deleted_at,
		       COUNT(m.id) AS file_count
		FROM %s f
		LEFT JOIN %s m ON m.media_folder_id = f.id AND m.user_id = f.user_id AND m.deleted_at IS NULL
		WHERE f.user_id = $1 AND f.deleted_at IS NOT NULL
		GROUP BY f.id, f.user_id, f.name, f.color, f.created_at, f.updated_at, f.deleted_at
		ORDER BY f.deleted_at DESC
	`, r.tables.MediaFolders, r.tables.MediaFiles)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, classifyStoreErr("list deleted media folders", err)
	}
	defer rows.Close()

	folders := []models.MediaFolderWithCount{}
	for rows.Next() {
		var folder models.MediaFolderWithCount
		err := rows.Scan(
			&folder.ID,
			&folder.UserID,
			&folder.Name,
			&folder.Color,
			&folder.CreatedAt,
			&folder.UpdatedAt,
			&folder.DeletedAt,
			&folder.FileCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan deleted media folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deleted media folders: %w", err)
	}

	return folders, nil
}

type PostgresMediaCategoryRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

func NewMediaCategoryRepository(config *RepositoryConfig) repositories.MediaCategoryRepository {
	return &PostgresMediaCategoryRepository{pool: config.Pool, tables: config.Tables}
}

func (r *PostgresMediaCategoryRepository) Create(ctx context.Context, category *models.MediaCategory) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, name, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, r.tables.MediaCategories)

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
			return fmt.Errorf("media category '%s': %w", category.Name, domain.ErrConflict)
		}
		return classifyStoreErr("create media category", err)
	}

	return nil
}

func (r *PostgresMediaCategoryRepository) GetByID(ctx context.Context, id, userID string) (*models.MediaCategory, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, color, created_at, updated_at, deleted_at
		FROM %s
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
	`, r.tables.MediaCategories)

	var category models.MediaCategory
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
			return nil, fmt.Errorf("media category %s: %w", id, domain.ErrNotFound)
		}
		return nil, classifyStoreErr("get media category", err)
	}

	return &category, nil
}

func (r *PostgresMediaCategoryRepository) List(ctx context.Context, userID string) ([]models.MediaCategory, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, color, created_at, updated_at, deleted_at
		FROM %s
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY name ASC
	`, r.tables.MediaCategories)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, classifyStoreErr("list media categories", err)
	}
	defer rows.Close()

	categories := []models.MediaCategory{}
	for rows.Next() {
		var category models.MediaCategory
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
			return nil, fmt.Errorf("scan media category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate media categories: %w", err)
	}

	return categories, nil
}

func (r *PostgresMediaCategoryRepository) ListDeletedWithCounts(ctx context.Context, userID string) ([]models.MediaCategoryWithCount, error) {
	query := fmt.Sprintf(`
		SELECT c.id, c.user_id, c.name, c.color, c.created_at, c.updated_at, c.deleted_at,
		       COUNT(m.id) AS file_count
		FROM %s c
		LEFT JOIN %s m ON m.media_category_id = c.id AND m.user_id = c.user_id AND m.deleted_at IS NULL
		WHERE c.user_id = $1 AND c.deleted_at IS NOT NULL
		GROUP BY c.id, c.user_id, c.name, c.color, c.created_at, c.updated_at, c.deleted_at
		ORDER BY c.deleted_at DESC
	`, r.tables.MediaCategories, r.tables.MediaFiles)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, classifyStoreErr("list deleted media categories", err)
	}
	defer rows.Close()

	categories := []models.MediaCategoryWithCount{}
	for rows.Next() {
		var category models.MediaCategoryWithCount
		err := rows.Scan(
			&category.ID,
			&category.UserID,
			&category.Name,
			&category.Color,
			&category.CreatedAt,
			&category.UpdatedAt,
			&category.DeletedAt,
			&category.FileCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan deleted media category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deleted media categories: %w", err)
	}

	return categories, nil
}
