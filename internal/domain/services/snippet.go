package services

import (
	"context"

	"snipvault/internal/domain/models"
)

// CreateSnippetRequest represents a snippet creation request
type CreateSnippetRequest struct {
	UserID     string  `json:"-"`
	Title      string  `json:"title"`
	Language   string  `json:"language"`
	Code       string  `json:"code"`
	FolderID   *string `json:"folder_id,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
}

// UpdateSnippetRequest represents a snippet update request
type UpdateSnippetRequest struct {
	Title      *string `json:"title,omitempty"`
	Language   *string `json:"language,omitempty"`
	Code       *string `json:"code,omitempty"`
	FolderID   *string `json:"folder_id,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
}

// SnippetService defines business logic operations for snippets
type SnippetService interface {
	CreateSnippet(ctx context.Context, req *CreateSnippetRequest) (*models.Snippet, error)
	GetSnippet(ctx context.Context, id, userID string) (*models.Snippet, error)

	// ListSnippets retrieves the user's active snippets
	ListSnippets(ctx context.Context, userID string) ([]models.Snippet, error)
	UpdateSnippet(ctx context.Context, id, userID string, req *UpdateSnippetRequest) (*models.Snippet, error)
}
