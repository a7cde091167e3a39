package repositories

import (
	"context"

	"snipvault/internal/domain/models"
)

type FolderRepository interface {
	Create(ctx context.Context, folder *models.Folder) error
	GetByID(ctx context.Context, id, userID string) (*models.Folder, error)
	List(ctx context.Context, userID string) ([]models.Folder, error)

	// ListDeletedWithCounts returns soft-deleted folders, newest deletion
	// first, each with a live count of active snippets still filed under it.
	ListDeletedWithCounts(ctx context.Context, userID string) ([]models.FolderWithCount, error)
}
