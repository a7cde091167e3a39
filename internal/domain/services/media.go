package services

import (
	"context"

	"snipvault/internal/domain/models"
)

// CreateMediaFileRequest registers an already-uploaded asset's metadata.
// The upload itself happens out of band; only the row is managed here.
type CreateMediaFileRequest struct {
	UserID        string  `json:"-"`
	Name          string  `json:"name"`
	MimeType      string  `json:"mime_type"`
	SizeBytes     int64   `json:"size_bytes"`
	StorageKey    string  `json:"storage_key"`
	MediaFolderID *string `json:"media_folder_id,omitempty"`
	CategoryID    *string `json:"media_category_id,omitempty"`
}

type CreateMediaFolderRequest struct {
	UserID string  `json:"-"`
	Name   string  `json:"name"`
	Color  *string `json:"color,omitempty"`
}

type CreateMediaCategoryRequest struct {
	UserID string  `json:"-"`
	Name   string  `json:"name"`
	Color  *string `json:"color,omitempty"`
}

// MediaService handles the media library's supporting CRUD
type MediaService interface {
	CreateFile(ctx context.Context, req *CreateMediaFileRequest) (*models.MediaFile, error)
	GetFile(ctx context.Context, id, userID string) (*models.MediaFile, error)
	ListFiles(ctx context.Context, userID string) ([]models.MediaFile, error)

	CreateFolder(ctx context.Context, req *CreateMediaFolderRequest) (*models.MediaFolder, error)
	ListFolders(ctx context.Context, userID string) ([]models.MediaFolder, error)

	CreateCategory(ctx context.Context, req *CreateMediaCategoryRequest) (*models.MediaCategory, error)
	ListCategories(ctx context.Context, userID string) ([]models.MediaCategory, error)
}
