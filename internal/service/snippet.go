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

// snippetService implements the SnippetService interface
type snippetService struct {
	snippetRepo repositories.SnippetRepository
	limits      *config.Limits
	logger      *slog.Logger
}

// NewSnippetService creates a new snippet service
func NewSnippetService(
	snippetRepo repositories.SnippetRepository,
	limits *config.Limits,
	logger *slog.Logger,
) services.SnippetService {
	return &snippetService{
		snippetRepo: snippetRepo,
		limits:      limits,
		logger:      logger,
	}
}

// CreateSnippet creates a new snippet
func (s *snippetService) CreateSnippet(ctx context.Context, req *services.CreateSnippetRequest) (*models.Snippet, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	snippet := &models.Snippet{
		ID:         uuid.NewString(),
		UserID:     req.UserID,
		FolderID:   normalizeRef(req.FolderID),
		CategoryID: normalizeRef(req.CategoryID),
		Title:      strings.TrimSpace(req.Title),
		Language:   strings.TrimSpace(req.Language),
		Code:       req.Code,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.snippetRepo.Create(ctx, snippet); err != nil {
		return nil, err
	}

	s.logger.Info("snippet created",
		"id", snippet.ID,
		"title", snippet.Title,
		"user_id", req.UserID,
	)

	return snippet, nil
}

// GetSnippet retrieves an active snippet by ID
func (s *snippetService) GetSnippet(ctx context.Context, id, userID string) (*models.Snippet, error) {
	return s.snippetRepo.GetByID(ctx, id, userID)
}

// ListSnippets retrieves the user's active snippets
func (s *snippetService) ListSnippets(ctx context.Context, userID string) ([]models.Snippet, error) {
	return s.snippetRepo.List(ctx, userID)
}

// UpdateSnippet updates a snippet's payload fields
func (s *snippetService) UpdateSnippet(ctx context.Context, id, userID string, req *services.UpdateSnippetRequest) (*models.Snippet, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	snippet, err := s.snippetRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		snippet.Title = strings.TrimSpace(*req.Title)
	}
	if req.Language != nil {
		snippet.Language = strings.TrimSpace(*req.Language)
	}
	if req.Code != nil {
		snippet.Code = *req.Code
	}
	if req.FolderID != nil {
		snippet.FolderID = normalizeRef(req.FolderID)
	}
	if req.CategoryID != nil {
		snippet.CategoryID = normalizeRef(req.CategoryID)
	}
	snippet.UpdatedAt = time.Now()

	if err := s.snippetRepo.Update(ctx, snippet); err != nil {
		return nil, err
	}

	s.logger.Info("snippet updated",
		"id", snippet.ID,
		"user_id", userID,
	)

	return snippet, nil
}

// validateCreateRequest validates a create snippet request
func (s *snippetService) validateCreateRequest(req *services.CreateSnippetRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, s.limits.MaxTitleLength),
		),
		validation.Field(&req.Language, validation.Length(0, s.limits.MaxNameLength)),
		validation.Field(&req.Code, validation.Length(0, s.limits.MaxCodeBytes)),
	)
}

// validateUpdateRequest validates an update snippet request
func (s *snippetService) validateUpdateRequest(req *services.UpdateSnippetRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.NilOrNotEmpty, validation.Length(1, s.limits.MaxTitleLength)),
		validation.Field(&req.Code, validation.Length(0, s.limits.MaxCodeBytes)),
	)
}

// normalizeRef maps an empty-string reference to nil so "unfiled" has a
// single representation in the store.
func normalizeRef(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}
