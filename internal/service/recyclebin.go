package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"snipvault/internal/domain"
	"snipvault/internal/domain/models"
	"snipvault/internal/domain/repositories"
	"snipvault/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LifecycleStores binds each entity kind to its own lifecycle store.
// The struct is the closed dispatch table: a new kind means a new field,
// a new case in storeFor, and a compile error anywhere one is missed.
type LifecycleStores struct {
	Snippets        repositories.LifecycleStore
	Folders         repositories.LifecycleStore
	Categories      repositories.LifecycleStore
	MediaFiles      repositories.LifecycleStore
	MediaFolders    repositories.LifecycleStore
	MediaCategories repositories.LifecycleStore
}

// recycleBinService implements the RecycleBinService interface
type recycleBinService struct {
	stores        LifecycleStores
	snippetRepo   repositories.SnippetRepository
	folderRepo    repositories.FolderRepository
	categoryRepo  repositories.CategoryRepository
	mediaFileRepo repositories.MediaFileRepository
	mediaDirRepo  repositories.MediaFolderRepository
	mediaCatRepo  repositories.MediaCategoryRepository
	logger        *slog.Logger
}

// NewRecycleBinService creates a new recycle-bin lifecycle service
func NewRecycleBinService(
	stores LifecycleStores,
	snippetRepo repositories.SnippetRepository,
	folderRepo repositories.FolderRepository,
	categoryRepo repositories.CategoryRepository,
	mediaFileRepo repositories.MediaFileRepository,
	mediaDirRepo repositories.MediaFolderRepository,
	mediaCatRepo repositories.MediaCategoryRepository,
	logger *slog.Logger,
) services.RecycleBinService {
	return &recycleBinService{
		stores:        stores,
		snippetRepo:   snippetRepo,
		folderRepo:    folderRepo,
		categoryRepo:  categoryRepo,
		mediaFileRepo: mediaFileRepo,
		mediaDirRepo:  mediaDirRepo,
		mediaCatRepo:  mediaCatRepo,
		logger:        logger,
	}
}

// storeFor maps a kind to its lifecycle store. Closed set: no default
// table lookup, no string fallthrough.
func (s *recycleBinService) storeFor(kind models.Kind) (repositories.LifecycleStore, error) {
	switch kind {
	case models.KindSnippet:
		return s.stores.Snippets, nil
	case models.KindFolder:
		return s.stores.Folders, nil
	case models.KindCategory:
		return s.stores.Categories, nil
	case models.KindMediaFile:
		return s.stores.MediaFiles, nil
	case models.KindMediaFolder:
		return s.stores.MediaFolders, nil
	case models.KindMediaCategory:
		return s.stores.MediaCategories, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", domain.ErrValidation, kind)
	}
}

// checkTarget validates identity and target before any store access.
func (s *recycleBinService) checkTarget(userID, id string) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}
	if err := validation.Validate(id, validation.Required); err != nil {
		return fmt.Errorf("%w: id is required", domain.ErrValidation)
	}
	return nil
}

// SoftDelete marks one active entity deleted. A no-op (already deleted,
// absent, or foreign row) surfaces as domain.ErrPrecondition rather than
// success, so calling-code bugs don't hide behind silent no-ops. Children
// of a deleted container are not cascaded; they stay active.
func (s *recycleBinService) SoftDelete(ctx context.Context, userID string, kind models.Kind, id string) error {
	if err := s.checkTarget(userID, id); err != nil {
		return err
	}
	store, err := s.storeFor(kind)
	if err != nil {
		return err
	}

	if err := store.SoftDelete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("entity soft-deleted",
		"kind", kind,
		"id", id,
		"user_id", userID,
	)

	return nil
}

// Restore moves an entity out of the bin. Restoring an already-active
// entity succeeds, so the undo path is always safe to retry.
func (s *recycleBinService) Restore(ctx context.Context, userID string, kind models.Kind, id string) error {
	if err := s.checkTarget(userID, id); err != nil {
		return err
	}
	store, err := s.storeFor(kind)
	if err != nil {
		return err
	}

	if err := store.Restore(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("entity restored",
		"kind", kind,
		"id", id,
		"user_id", userID,
	)

	return nil
}

// Purge permanently removes a soft-deleted entity. The store-level
// deleted_at guard rejects active rows, so nothing reachable from the
// active tree can be lost through this path.
func (s *recycleBinService) Purge(ctx context.Context, userID string, kind models.Kind, id string) error {
	if err := s.checkTarget(userID, id); err != nil {
		return err
	}
	store, err := s.storeFor(kind)
	if err != nil {
		return err
	}

	if err := store.Purge(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("entity purged",
		"kind", kind,
		"id", id,
		"user_id", userID,
	)

	return nil
}

// ListRecycleBin aggregates the snippet-side bin. The three fetches hit
// disjoint data, so they run concurrently; each error is tagged with the
// kind that failed so a retry can be scoped to just that fetch.
func (s *recycleBinService) ListRecycleBin(ctx context.Context, userID string) (*models.RecycleBin, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	var bin models.RecycleBin
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		snippets, err := s.snippetRepo.ListDeleted(gctx, userID)
		if err != nil {
			return fmt.Errorf("snippets: %w", err)
		}
		bin.Snippets = snippets
		return nil
	})
	g.Go(func() error {
		folders, err := s.folderRepo.ListDeletedWithCounts(gctx, userID)
		if err != nil {
			return fmt.Errorf("folders: %w", err)
		}
		bin.Folders = folders
		return nil
	})
	g.Go(func() error {
		categories, err := s.categoryRepo.ListDeletedWithCounts(gctx, userID)
		if err != nil {
			return fmt.Errorf("categories: %w", err)
		}
		bin.Categories = categories
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list recycle bin: %w", err)
	}

	return &bin, nil
}

// ListMediaRecycleBin is the media-side aggregate.
func (s *recycleBinService) ListMediaRecycleBin(ctx context.Context, userID string) (*models.MediaRecycleBin, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	var bin models.MediaRecycleBin
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		files, err := s.mediaFileRepo.ListDeleted(gctx, userID)
		if err != nil {
			return fmt.Errorf("media files: %w", err)
		}
		bin.Files = files
		return nil
	})
	g.Go(func() error {
		folders, err := s.mediaDirRepo.ListDeletedWithCounts(gctx, userID)
		if err != nil {
			return fmt.Errorf("media folders: %w", err)
		}
		bin.Folders = folders
		return nil
	})
	g.Go(func() error {
		categories, err := s.mediaCatRepo.ListDeletedWithCounts(gctx, userID)
		if err != nil {
			return fmt.Errorf("media categories: %w", err)
		}
		bin.Categories = categories
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list media recycle bin: %w", err)
	}

	return &bin, nil
}

// Batch applies one action to each item in turn. There is no atomicity
// across the batch: each row transition is an independent statement, so
// per-item errors are downgraded to failure entries and the loop keeps
// going. The result carries enough detail to retry only the failed subset.
func (s *recycleBinService) Batch(ctx context.Context, userID string, req *services.BatchRequest) (*services.BatchResult, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := s.validateBatchRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	result := &services.BatchResult{Failed: []services.BatchFailure{}}
	for _, item := range req.Items {
		var err error
		switch req.Action {
		case services.BatchActionRestore:
			err = s.Restore(ctx, userID, item.Kind, item.ID)
		case services.BatchActionPurge:
			err = s.Purge(ctx, userID, item.Kind, item.ID)
		}

		if err != nil {
			result.Failed = append(result.Failed, services.BatchFailure{
				Kind:   item.Kind,
				ID:     item.ID,
				Reason: err.Error(),
			})
			continue
		}
		result.Succeeded++
	}

	s.logger.Info("batch applied",
		"action", req.Action,
		"user_id", userID,
		"succeeded", result.Succeeded,
		"failed", len(result.Failed),
	)

	return result, nil
}

// EmptyBin purges everything in the snippet-side bin. The set is
// re-fetched here rather than taken from the caller, and every purge is
// still individually guarded by the store's deleted_at check, so an item
// restored by another session mid-loop fails its purge instead of being
// lost.
func (s *recycleBinService) EmptyBin(ctx context.Context, userID string) (*services.BatchResult, error) {
	bin, err := s.ListRecycleBin(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]services.BatchItem, 0, bin.TotalItems())
	for _, snippet := range bin.Snippets {
		items = append(items, services.BatchItem{Kind: models.KindSnippet, ID: snippet.ID})
	}
	for _, folder := range bin.Folders {
		items = append(items, services.BatchItem{Kind: models.KindFolder, ID: folder.ID})
	}
	for _, category := range bin.Categories {
		items = append(items, services.BatchItem{Kind: models.KindCategory, ID: category.ID})
	}

	return s.purgeAll(ctx, userID, items)
}

// EmptyMediaBin purges everything in the media bin.
func (s *recycleBinService) EmptyMediaBin(ctx context.Context, userID string) (*services.BatchResult, error) {
	bin, err := s.ListMediaRecycleBin(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]services.BatchItem, 0, bin.TotalItems())
	for _, file := range bin.Files {
		items = append(items, services.BatchItem{Kind: models.KindMediaFile, ID: file.ID})
	}
	for _, folder := range bin.Folders {
		items = append(items, services.BatchItem{Kind: models.KindMediaFolder, ID: folder.ID})
	}
	for _, category := range bin.Categories {
		items = append(items, services.BatchItem{Kind: models.KindMediaCategory, ID: category.ID})
	}

	return s.purgeAll(ctx, userID, items)
}

func (s *recycleBinService) purgeAll(ctx context.Context, userID string, items []services.BatchItem) (*services.BatchResult, error) {
	if len(items) == 0 {
		return &services.BatchResult{Failed: []services.BatchFailure{}}, nil
	}
	return s.Batch(ctx, userID, &services.BatchRequest{
		Action: services.BatchActionPurge,
		Items:  items,
	})
}

// validateBatchRequest validates a batch request's shape; per-item
// failures are reported in the result, not here.
func (s *recycleBinService) validateBatchRequest(req *services.BatchRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Action,
			validation.Required,
			validation.In(services.BatchActionRestore, services.BatchActionPurge),
		),
		validation.Field(&req.Items, validation.Required),
	)
}
