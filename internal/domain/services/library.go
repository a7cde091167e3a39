package services

import (
	"context"

	"snipvault/internal/domain/models"
)

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	UserID string  `json:"-"`
	Name   string  `json:"name"`
	Color  *string `json:"color,omitempty"`
}

// CreateCategoryRequest represents a category creation request
type CreateCategoryRequest struct {
	UserID string  `json:"-"`
	Name   string  `json:"name"`
	Color  *string `json:"color,omitempty"`
}

// FolderService handles folder business logic
type FolderService interface {
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.Folder, error)
	GetFolder(ctx context.Context, id, userID string) (*models.Folder, error)
	ListFolders(ctx context.Context, userID string) ([]models.Folder, error)
}

// CategoryService handles category business logic
type CategoryService interface {
	CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*models.Category, error)
	GetCategory(ctx context.Context, id, userID string) (*models.Category, error)
	ListCategories(ctx context.Context, userID string) ([]models.Category, error)
}
