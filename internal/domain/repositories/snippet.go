package repositories

import (
	"context"

	"snipvault/internal/domain/models"
)

// SnippetRepository provides snippet row access. Active reads exclude
// soft-deleted rows; ListDeleted is the recycle-bin view.
type SnippetRepository interface {
	Create(ctx context.Context, snippet *models.Snippet) error
	GetByID(ctx context.Context, id, userID string) (*models.Snippet, error)
	List(ctx context.Context, userID string) ([]models.Snippet, error)
	Update(ctx context.Context, snippet *models.Snippet) error

	// ListDeleted returns soft-deleted snippets, newest deletion first.
	ListDeleted(ctx context.Context, userID string) ([]models.Snippet, error)
}
