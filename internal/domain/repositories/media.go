package repositories

import (
	"context"

	"snipvault/internal/domain/models"
)

// Media repositories mirror the snippet-side interfaces for the media
// library tables.

type MediaFileRepository interface {
	Create(ctx context.Context, file *models.MediaFile) error
	GetByID(ctx context.Context, id, userID string) (*models.MediaFile, error)
	List(ctx context.Context, userID string) ([]models.MediaFile, error)

	ListDeleted(ctx context.Context, userID string) ([]models.MediaFile, error)
}

type MediaFolderRepository interface {
	Create(ctx context.Context, folder *models.MediaFolder) error
	GetByID(ctx context.Context, id, userID string) (*models.MediaFolder, error)
	List(ctx context.Context, userID string) ([]models.MediaFolder, error)

	ListDeletedWithCounts(ctx context.Context, userID string) ([]models.MediaFolderWithCount, error)
}

type MediaCategoryRepository interface {
	Create(ctx context.Context, category *models.MediaCategory) error
	GetByID(ctx context.Context, id, userID string) (*models.MediaCategory, error)
	List(ctx context.Context, userID string) ([]models.MediaCategory, error)

	ListDeletedWithCounts(ctx context.Context, userID string) ([]models.MediaCategoryWithCount, error)
}
