package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"snipvault/internal/config"
	"snipvault/internal/domain"
	"snipvault/internal/domain/models"
	"snipvault/internal/domain/repositories"
	"snipvault/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// mediaService implements the MediaService interface
type mediaService struct {
	fileRepo     repositories.MediaFileRepository
	folderRepo   repositories.MediaFolderRepository
	categoryRepo repositories.MediaCategoryRepository
	limits       *config.Limits
	logger       *slog.Logger
}

// NewMediaService creates a new media library service
func NewMediaService(
	fileRepo repositories.MediaFileRepository,
	folderRepo repositories.MediaFolderRepository,
	categoryRepo repositories.MediaCategoryRepository,
	limits *config.Limits,
	logger *slog.Logger,
) services.MediaService {
	return &mediaService{
		fileRepo:     fileRepo,
		folderRepo:   folderRepo,
		categoryRepo: categoryRepo,
		limits:       limits,
		logger:       logger,
	}
}

// CreateFile registers metadata for an already-uploaded asset
func (s *mediaService) CreateFile(ctx context.Context, req *services.CreateMediaFileRequest) (*models.MediaFile, error) {
	if err := s.validateCreateFile(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	file := &models.MediaFile{
		ID:            uuid.NewString(),
		UserID:        req.UserID,
		MediaFolderID: normalizeRef(req.MediaFolderID),
		CategoryID:    normalizeRef(req.CategoryID),
		Name:          strings.TrimSpace(req.Name),
		MimeType:      req.MimeType,
		SizeBytes:     req.SizeBytes,
		StorageKey:    req.StorageKey,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.fileRepo.Create(ctx, file); err != nil {
		return nil, err
	}

	s.logger.Info("media file registered",
		"id", file.ID,
		"name", file.Name,
		"user_id", req.UserID,
	)

	return file, nil
}

// GetFile retrieves an active media file by ID
func (s *mediaService) GetFile(ctx context.Context, id, userID string) (*models.MediaFile, error) {
	return s.fileRepo.GetByID(ctx, id, userID)
}

// ListFiles retrieves the user's active media files
func (s *mediaService) ListFiles(ctx context.Context, userID string) ([]models.MediaFile, error) {
	return s.fileRepo.List(ctx, userID)
}

// CreateFolder creates a new media folder
func (s *mediaService) CreateFolder(ctx context.Context, req *services.CreateMediaFolderRequest) (*models.MediaFolder, error) {
	if err := validateNamedCreate(req.UserID, req.Name, s.limits); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	folder := &models.MediaFolder{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Name:      strings.TrimSpace(req.Name),
		Color:     req.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("media folder created", "id", folder.ID, "user_id", req.UserID)

	return folder, nil
}

// ListFolders retrieves the user's active media folders
func (s *mediaService) ListFolders(ctx context.Context, userID string) ([]models.MediaFolder, error) {
	return s.folderRepo.List(ctx, userID)
}

// CreateCategory creates a new media category
func (s *mediaService) CreateCategory(ctx context.Context, req *services.CreateMediaCategoryRequest) (*models.MediaCategory, error) {
	if err := validateNamedCreate(req.UserID, req.Name, s.limits); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	category := &models.MediaCategory{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Name:      strings.TrimSpace(req.Name),
		Color:     req.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("media category created", "id", category.ID, "user_id", req.UserID)

	return category, nil
}

// ListCategories retrieves the user's active media categories
func (s *mediaService) ListCategories(ctx context.Context, userID string) ([]models.MediaCategory, error) {
	return s.categoryRepo.List(ctx, userID)
}

// validateCreateFile validates a media file registration request
func (s *mediaService) validateCreateFile(req *services.CreateMediaFileRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, s.limits.MaxNameLength),
		),
		validation.Field(&req.StorageKey, validation.Required),
		validation.Field(&req.SizeBytes, validation.Min(int64(0))),
	)
}
