package repositories

import (
	"context"

	"snipvault/internal/domain/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id, userID string) (*models.Category, error)
	List(ctx context.Context, userID string) ([]models.Category, error)

	ListDeletedWithCounts(ctx context.Context, userID string) ([]models.CategoryWithCount, error)
}
