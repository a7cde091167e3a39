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

// folderService implements the FolderService interface
type folderService struct {
	folderRepo repositories.FolderRepository
	limits     *config.Limits
	logger     *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(
	folderRepo repositories.FolderRepository,
	limits *config.Limits,
	logger *slog.Logger,
) services.FolderService {
	return &folderService{
		folderRepo: folderRepo,
		limits:     limits,
		logger:     logger,
	}
}

// CreateFolder creates a new folder
func (s *folderService) CreateFolder(ctx context.Context, req *services.CreateFolderRequest) (*models.Folder, error) {
	if err := validateNamedCreate(req.UserID, req.Name, s.limits); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	folder := &models.Folder{
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

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"user_id", req.UserID,
	)

	return folder, nil
}

// GetFolder retrieves an active folder by ID
func (s *folderService) GetFolder(ctx context.Context, id, userID string) (*models.Folder, error) {
	return s.folderRepo.GetByID(ctx, id, userID)
}

// ListFolders retrieves the user's active folders
func (s *folderService) ListFolders(ctx context.Context, userID string) ([]models.Folder, error) {
	return s.folderRepo.List(ctx, userID)
}

// categoryService implements the CategoryService interface
type categoryService struct {
	categoryRepo repositories.CategoryRepository
	limits       *config.Limits
	logger       *slog.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(
	categoryRepo repositories.CategoryRepository,
	limits *config.Limits,
	logger *slog.Logger,
) services.CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		limits:       limits,
		logger:       logger,
	}
}

// CreateCategory creates a new category
func (s *categoryService) CreateCategory(ctx context.Context, req *services.CreateCategoryRequest) (*models.Category, error) {
	if err := validateNamedCreate(req.UserID, req.Name, s.limits); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	category := &models.Category{
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

	s.logger.Info("category created",
		"id", category.ID,
		"name", category.Name,
		"user_id", req.UserID,
	)

	return category, nil
}

// GetCategory retrieves an active category by ID
func (s *categoryService) GetCategory(ctx context.Context, id, userID string) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id, userID)
}

// ListCategories retrieves the user's active categories
func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]models.Category, error) {
	return s.categoryRepo.List(ctx, userID)
}

// validateNamedCreate covers the shared shape of folder and category
// creation requests.
func validateNamedCreate(userID, name string, limits *config.Limits) error {
	if err := validation.Validate(userID, validation.Required); err != nil {
		return fmt.Errorf("user_id: %v", err)
	}
	if err := validation.Validate(name,
		validation.Required,
		validation.Length(1, limits.MaxNameLength),
	); err != nil {
		return fmt.Errorf("name: %v", err)
	}
	return nil
}
