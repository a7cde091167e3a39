package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"snipvault/internal/domain"
	"snipvault/internal/domain/models"
	"snipvault/internal/domain/services"
)

// fakeRow mirrors one row's lifecycle-relevant columns.
type fakeRow struct {
	userID    string
	deletedAt *time.Time
}

// fakeLifecycleStore is an in-memory stand-in with the same conditional
// semantics as the SQL store: soft delete requires an active owned row,
// restore requires an owned row, purge requires a deleted owned row.
type fakeLifecycleStore struct {
	mu   sync.Mutex
	rows map[string]*fakeRow
}

func newFakeStore() *fakeLifecycleStore {
	return &fakeLifecycleStore{rows: make(map[string]*fakeRow)}
}

func (s *fakeLifecycleStore) add(id, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[id] = &fakeRow{userID: userID}
}

func (s *fakeLifecycleStore) addDeleted(id, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.rows[id] = &fakeRow{userID: userID, deletedAt: &now}
}

func (s *fakeLifecycleStore) SoftDelete(_ context.Context, id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok || row.userID != userID || row.deletedAt != nil {
		return fmt.Errorf("%s: not found or already deleted: %w", id, domain.ErrPrecondition)
	}
	now := time.Now()
	row.deletedAt = &now
	return nil
}

func (s *fakeLifecycleStore) Restore(_ context.Context, id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok || row.userID != userID {
		return fmt.Errorf("%s: %w", id, domain.ErrNotFound)
	}
	row.deletedAt = nil
	return nil
}

func (s *fakeLifecycleStore) Purge(_ context.Context, id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok || row.userID != userID || row.deletedAt == nil {
		return fmt.Errorf("%s: not found or still active: %w", id, domain.ErrPrecondition)
	}
	delete(s.rows, id)
	return nil
}

func (s *fakeLifecycleStore) isDeleted(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	return ok && row.deletedAt != nil
}

func (s *fakeLifecycleStore) exists(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.rows[id]
	return ok
}

// Repository fakes return canned bin contents. Only the deleted-listing
// methods matter to the bin service; the rest exist to satisfy the
// interfaces.

type fakeSnippetRepo struct {
	deleted    []models.Snippet
	deletedErr error
}

func (r *fakeSnippetRepo) Create(context.Context, *models.Snippet) error { return nil }
func (r *fakeSnippetRepo) GetByID(context.Context, string, string) (*models.Snippet, error) {
	return nil, domain.ErrNotFound
}
func (r *fakeSnippetRepo) List(context.Context, string) ([]models.Snippet, error) {
	return nil, nil
}
func (r *fakeSnippetRepo) Update(context.Context, *models.Snippet) error { return nil }
func (r *fakeSnippetRepo) ListDeleted(context.Context, string) ([]models.Snippet, error) {
	return r.deleted, r.deletedErr
}

type fakeFolderRepo struct {
	deleted    []models.FolderWithCount
	deletedErr error
}

func (r *fakeFolderRepo) Create(context.Context, *models.Folder) error { return nil }
func (r *fakeFolderRepo) GetByID(context.Context, string, string) (*models.Folder, error) {
	return nil, domain.ErrNotFound
}
func (r *fakeFolderRepo) List(context.Context, string) ([]models.Folder, error) { return nil, nil }
func (r *fakeFolderRepo) ListDeletedWithCounts(context.Context, string) ([]models.FolderWithCount, error) {
	return r.deleted, r.deletedErr
}

type fakeCategoryRepo struct {
	deleted    []models.CategoryWithCount
	deletedErr error
}

func (r *fakeCategoryRepo) Create(context.Context, *models.Category) error { return nil }
func (r *fakeCategoryRepo) GetByID(context.Context, string, string) (*models.Category, error) {
	return nil, domain.ErrNotFound
}
func (r *fakeCategoryRepo) List(context.Context, string) ([]models.Category, error) {
	return nil, nil
}
func (r *fakeCategoryRepo) ListDeletedWithCounts(context.Context, string) ([]models.CategoryWithCount, error) {
	return r.deleted, r.deletedErr
}

type fakeMediaFileRepo struct {
	deleted    []models.MediaFile
	deletedErr error
}

func (r *fakeMediaFileRepo) Create(context.Context, *models.MediaFile) error { return nil }
func (r *fakeMediaFileRepo) GetByID(context.Context, string, string) (*models.MediaFile, error) {
	return nil, domain.ErrNotFound
}
func (r *fakeMediaFileRepo) List(context.Context, string) ([]models.MediaFile, error) {
	return nil, nil
}
func (r *fakeMediaFileRepo) ListDeleted(context.Context, string) ([]models.MediaFile, error) {
	return r.deleted, r.deletedErr
}

type fakeMediaFolderRepo struct {
	deleted []models.MediaFolderWithCount
}

func (r *fakeMediaFolderRepo) Create(context.Context, *models.MediaFolder) error { return nil }
func (r *fakeMediaFolderRepo) GetByID(context.Context, string, string) (*models.MediaFolder, error) {
	return nil, domain.ErrNotFound
}
func (r *fakeMediaFolderRepo) List(context.Context, string) ([]models.MediaFolder, error) {
	return nil, nil
}
func (r *fakeMediaFolderRepo) ListDeletedWithCounts(context.Context, string) ([]models.MediaFolderWithCount, error) {
	return r.deleted, nil
}

type fakeMediaCategoryRepo struct {
	deleted []models.MediaCategoryWithCount
}

func (r *fakeMediaCategoryRepo) Create(context.Context, *models.MediaCategory) error { return nil }
func (r *fakeMediaCategoryRepo) GetByID(context.Context, string, string) (*models.MediaCategory, error) {
	return nil, domain.ErrNotFound
}
func (r *fakeMediaCategoryRepo) List(context.Context, string) ([]models.MediaCategory, error) {
	return nil, nil
}
func (r *fakeMediaCategoryRepo) ListDeletedWithCounts(context.Context, string) ([]models.MediaCategoryWithCount, error) {
	return r.deleted, nil
}

// binFixture bundles the service under test with its fakes.
type binFixture struct {
	svc      services.RecycleBinService
	stores   map[models.Kind]*fakeLifecycleStore
	snippets *fakeSnippetRepo
	folders  *fakeFolderRepo
	cats     *fakeCategoryRepo
	files    *fakeMediaFileRepo
}

func newBinFixture() *binFixture {
	stores := map[models.Kind]*fakeLifecycleStore{
		models.KindSnippet:       newFakeStore(),
		models.KindFolder:        newFakeStore(),
		models.KindCategory:      newFakeStore(),
		models.KindMediaFile:     newFakeStore(),
		models.KindMediaFolder:   newFakeStore(),
		models.KindMediaCategory: newFakeStore(),
	}

	snippets := &fakeSnippetRepo{}
	folders := &fakeFolderRepo{}
	cats := &fakeCategoryRepo{}
	files := &fakeMediaFileRepo{}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewRecycleBinService(
		LifecycleStores{
			Snippets:        stores[models.KindSnippet],
			Folders:         stores[models.KindFolder],
			Categories:      stores[models.KindCategory],
			MediaFiles:      stores[models.KindMediaFile],
			MediaFolders:    stores[models.KindMediaFolder],
			MediaCategories: stores[models.KindMediaCategory],
		},
		snippets,
		folders,
		cats,
		files,
		&fakeMediaFolderRepo{},
		&fakeMediaCategoryRepo{},
		logger,
	)

	return &binFixture{svc: svc, stores: stores, snippets: snippets, folders: folders, cats: cats, files: files}
}

const testUser = "user-1"

func TestRecycleBinService_SoftDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("marks active entity deleted", func(t *testing.T) {
		f := newBinFixture()
		f.stores[models.KindSnippet].add("s1", testUser)

		if err := f.svc.SoftDelete(ctx, testUser, models.KindSnippet, "s1"); err != nil {
			t.Fatalf("SoftDelete failed: %v", err)
		}
		if !f.stores[models.KindSnippet].isDeleted("s1") {
			t.Error("entity not marked deleted")
		}
	})

	t.Run("second soft delete fails with precondition", func(t *testing.T) {
		f := newBinFixture()
		f.stores[models.KindSnippet].add("s1", testUser)

		if err := f.svc.SoftDelete(ctx, testUser, models.KindSnippet, "s1"); err != nil {
			t.Fatalf("first SoftDelete failed: %v", err)
		}
		err := f.svc.SoftDelete(ctx, testUser, models.KindSnippet, "s1")
		if !errors.Is(err, domain.ErrPrecondition) {
			t.Errorf("expected ErrPrecondition, got %v", err)
		}
	})

	t.Run("missing entity fails with precondition", func(t *testing.T) {
		f := newBinFixture()

		err := f.svc.SoftDelete(ctx, testUser, models.KindFolder, "nope")
		if !errors.Is(err, domain.ErrPrecondition) {
			t.Errorf("expected ErrPrecondition, got %v", err)
		}
	})

	t.Run("another user's entity is untouchable", func(t *testing.T) {
		f := newBinFixture()
		f.stores[models.KindSnippet].add("s1", "someone-else")

		err := f.svc.SoftDelete(ctx, testUser, models.KindSnippet, "s1")
		if !errors.Is(err, domain.ErrPrecondition) {
			t.Errorf("expected ErrPrecondition, got %v", err)
		}
		if f.stores[models.KindSnippet].isDeleted("s1") {
			t.Error("foreign entity was modified")
		}
	})

	t.Run("unknown kind fails with validation", func(t *testing.T) {
		f := newBinFixture()

		err := f.svc.SoftDelete(ctx, testUser, models.Kind("widget"), "s1")
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("empty user fails with unauthorized", func(t *testing.T) {
		f := newBinFixture()

		err := f.svc.SoftDelete(ctx, "", models.KindSnippet, "s1")
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("empty id fails with validation", func(t *testing.T) {
		f := newBinFixture()

		err := f.svc.SoftDelete(ctx, testUser, models.KindSnippet, "")
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})
}

func TestRecycleBinService_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("clears deleted flag", func(t *testing.T) {
		f := newBinFixture()
		f.stores[models.KindCategory].addDeleted("c1", testUser)

		if err := f.svc.Restore(ctx, testUser, models.KindCategory, "c1"); err != nil {
			t.Fatalf("Restore failed: %v", err)
		}
		if f.stores[models.KindCategory].isDeleted("c1") {
			t.Error("entity still marked deleted")
		}
	})

	t.Run("restoring an active entity succeeds", func(t *testing.T) {
		f := newBinFixture()
		f.stores[models.KindCategory].add("c1", testUser)

		if err := f.svc.Restore(ctx, testUser, models.KindCategory, "c1"); err != nil {
			t.Errorf("restore of active entity should be a no-op success, got %v", err)
		}
	})

	t.Run("missing entity fails with not found", func(t *testing.T) {
		f := newBinFixture()

		err := f.svc.Restore(ctx, testUser, models.KindCategory, "nope")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRecycleBinService_Purge(t *testing.T) {
	ctx := context.Background()

	t.Run("removes deleted entity for good", func(t *testing.T) {
		f := newBinFixture()
		f.stores[models.KindMediaFile].addDeleted("m1", testUser)

		if err := f.svc.Purge(ctx, testUser, models.KindMediaFile, "m1"); err != nil {
			t.Fatalf("Purge failed: %v", err)
		}
		if f.stores[models.KindMediaFile].exists("m1") {
			t.Error("entity still exists after purge")
		}
	})

	t.Run("active entity cannot be purged", func(t *testing.T) {
		f := newBinFixture()
		f.stores[models.KindSnippet].add("s1", testUser)

		err := f.svc.Purge(ctx, testUser, models.KindSnippet, "s1")
		if !errors.Is(err, domain.ErrPrecondition) {
			t.Errorf("expected ErrPrecondition, got %v", err)
		}
		if !f.stores[models.KindSnippet].exists("s1") {
			t.Error("active entity was removed")
		}
	})

	t.Run("restore after purge fails with not found", func(t *testing.T) {
		f := newBinFixture()
		f.stores[models.KindSnippet].addDeleted("s1", testUser)

		if err := f.svc.Purge(ctx, testUser, models.KindSnippet, "s1"); err != nil {
			t.Fatalf("Purge failed: %v", err)
		}
		err := f.svc.Restore(ctx, testUser, models.KindSnippet, "s1")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRecycleBinService_ListRecycleBin(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates all three collections in repo order", func(t *testing.T) {
		f := newBinFixture()
		t1 := time.Now().Add(-3 * time.Hour)
		t2 := time.Now().Add(-2 * time.Hour)
		t3 := time.Now().Add(-1 * time.Hour)

		f.snippets.deleted = []models.Snippet{
			{ID: "s3", DeletedAt: &t3},
			{ID: "s2", DeletedAt: &t2},
			{ID: "s1", DeletedAt: &t1},
		}
		f.folders.deleted = []models.FolderWithCount{
			{Folder: models.Folder{ID: "f1", DeletedAt: &t2}, SnippetCount: 4},
		}
		f.cats.deleted = []models.CategoryWithCount{
			{Category: models.Category{ID: "c1", DeletedAt: &t1}, SnippetCount: 0},
		}

		bin, err := f.svc.ListRecycleBin(ctx, testUser)
		if err != nil {
			t.Fatalf("ListRecycleBin failed: %v", err)
		}

		if bin.TotalItems() != 5 {
			t.Errorf("expected 5 items, got %d", bin.TotalItems())
		}
		wantOrder := []string{"s3", "s2", "s1"}
		for i, want := range wantOrder {
			if bin.Snippets[i].ID != want {
				t.Errorf("snippet[%d]: expected %s, got %s", i, want, bin.Snippets[i].ID)
			}
		}
		if bin.Folders[0].SnippetCount != 4 {
			t.Errorf("expected snippet count 4, got %d", bin.Folders[0].SnippetCount)
		}
	})

	t.Run("empty bin has empty collections, not nil error", func(t *testing.T) {
		f := newBinFixture()
		f.snippets.deleted = []models.Snippet{}
		f.folders.deleted = []models.FolderWithCount{}
		f.cats.deleted = []models.CategoryWithCount{}

		bin, err := f.svc.ListRecycleBin(ctx, testUser)
		if err != nil {
			t.Fatalf("ListRecycleBin failed: %v", err)
		}
		if bin.TotalItems() != 0 {
			t.Errorf("expected empty bin, got %d items", bin.TotalItems())
		}
	})

	t.Run("fetch error is tagged with its kind", func(t *testing.T) {
		f := newBinFixture()
		f.folders.deletedErr = errors.New("connection reset")

		_, err := f.svc.ListRecycleBin(ctx, testUser)
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "folders") {
			t.Errorf("error should name the failed kind, got %q", err.Error())
		}
	})

	t.Run("empty user fails with unauthorized", func(t *testing.T) {
		f := newBinFixture()

		_, err := f.svc.ListRecycleBin(ctx, "")
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestRecycleBinService_ListMediaRecycleBin(t *testing.T) {
	ctx := context.Background()
	f := newBinFixture()
	now := time.Now()
	f.files.deleted = []models.MediaFile{
		{ID: "m1", Name: "editor.png", DeletedAt: &now},
	}

	bin, err := f.svc.ListMediaRecycleBin(ctx, testUser)
	if err != nil {
		t.Fatalf("ListMediaRecycleBin failed: %v", err)
	}
	if bin.TotalItems() != 1 {
		t.Errorf("expected 1 item, got %d", bin.TotalItems())
	}
	if bin.Files[0].ID != "m1" {
		t.Errorf("expected file m1, got %s", bin.Files[0].ID)
	}
}

func TestRecycleBinService_Batch(t *testing.T) {
	ctx := context.Background()

	t.Run("partial failure keeps going", func(t *testing.T) {
		f := newBinFixture()
		f.stores[models.KindSnippet].addDeleted("s1", testUser)
		f.stores[models.KindFolder].addDeleted("f1", testUser)

		result, err := f.svc.Batch(ctx, testUser, &services.BatchRequest{
			Action: services.BatchActionRestore,
			Items: []services.BatchItem{
				{Kind: models.KindSnippet, ID: "s1"},
				{Kind: models.KindCategory, ID: "missing"},
				{Kind: models.KindFolder, ID: "f1"},
			},
		})
		if err != nil {
			t.Fatalf("Batch failed: %v", err)
		}

		if result.Succeeded != 2 {
			t.Errorf("expected 2 succeeded, got %d", result.Succeeded)
		}
		if len(result.Failed) != 1 {
			t.Fatalf("expected 1 failure, got %d", len(result.Failed))
		}
		if result.Failed[0].ID != "missing" || result.Failed[0].Kind != models.KindCategory {
			t.Errorf("unexpected failure entry: %+v", result.Failed[0])
		}
		if result.Failed[0].Reason == "" {
			t.Error("failure should carry a reason")
		}
		if f.stores[models.KindSnippet].isDeleted("s1") {
			t.Error("s1 was not restored")
		}
	})

	t.Run("permanent-delete action purges", func(t *testing.T) {
		f := newBinFixture()
		f.stores[models.KindMediaFile].addDeleted("m1", testUser)

		result, err := f.svc.Batch(ctx, testUser, &services.BatchRequest{
			Action: services.BatchActionPurge,
			Items:  []services.BatchItem{{Kind: models.KindMediaFile, ID: "m1"}},
		})
		if err != nil {
			t.Fatalf("Batch failed: %v", err)
		}
		if result.Succeeded != 1 || len(result.Failed) != 0 {
			t.Errorf("expected clean purge, got %+v", result)
		}
		if f.stores[models.KindMediaFile].exists("m1") {
			t.Error("m1 still exists after purge")
		}
	})

	t.Run("unknown action fails with validation", func(t *testing.T) {
		f := newBinFixture()

		_, err := f.svc.Batch(ctx, testUser, &services.BatchRequest{
			Action: "shred",
			Items:  []services.BatchItem{{Kind: models.KindSnippet, ID: "s1"}},
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("empty items fails with validation", func(t *testing.T) {
		f := newBinFixture()

		_, err := f.svc.Batch(ctx, testUser, &services.BatchRequest{
			Action: services.BatchActionRestore,
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("empty user fails with unauthorized", func(t *testing.T) {
		f := newBinFixture()

		_, err := f.svc.Batch(ctx, "", &services.BatchRequest{
			Action: services.BatchActionRestore,
			Items:  []services.BatchItem{{Kind: models.KindSnippet, ID: "s1"}},
		})
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestRecycleBinService_EmptyBin(t *testing.T) {
	ctx := context.Background()

	t.Run("purges everything currently in the bin", func(t *testing.T) {
		f := newBinFixture()
		now := time.Now()
		f.stores[models.KindSnippet].addDeleted("s1", testUser)
		f.stores[models.KindFolder].addDeleted("f1", testUser)
		f.snippets.deleted = []models.Snippet{{ID: "s1", DeletedAt: &now}}
		f.folders.deleted = []models.FolderWithCount{
			{Folder: models.Folder{ID: "f1", DeletedAt: &now}},
		}
		f.cats.deleted = []models.CategoryWithCount{}

		result, err := f.svc.EmptyBin(ctx, testUser)
		if err != nil {
			t.Fatalf("EmptyBin failed: %v", err)
		}
		if result.Succeeded != 2 || len(result.Failed) != 0 {
			t.Errorf("expected 2 purged with no failures, got %+v", result)
		}
		if f.stores[models.KindSnippet].exists("s1") || f.stores[models.KindFolder].exists("f1") {
			t.Error("bin contents survived EmptyBin")
		}
	})

	t.Run("item restored between list and purge is not lost", func(t *testing.T) {
		f := newBinFixture()
		now := time.Now()
		// The listing says s1 is in the bin, but the row is active again.
		f.stores[models.KindSnippet].add("s1", testUser)
		f.snippets.deleted = []models.Snippet{{ID: "s1", DeletedAt: &now}}
		f.folders.deleted = []models.FolderWithCount{}
		f.cats.deleted = []models.CategoryWithCount{}

		result, err := f.svc.EmptyBin(ctx, testUser)
		if err != nil {
			t.Fatalf("EmptyBin failed: %v", err)
		}
		if result.Succeeded != 0 || len(result.Failed) != 1 {
			t.Errorf("expected the stale purge to fail, got %+v", result)
		}
		if !f.stores[models.KindSnippet].exists("s1") {
			t.Error("restored entity was purged")
		}
	})

	t.Run("empty bin is a clean no-op", func(t *testing.T) {
		f := newBinFixture()
		f.snippets.deleted = []models.Snippet{}
		f.folders.deleted = []models.FolderWithCount{}
		f.cats.deleted = []models.CategoryWithCount{}

		result, err := f.svc.EmptyBin(ctx, testUser)
		if err != nil {
			t.Fatalf("EmptyBin failed: %v", err)
		}
		if result.Succeeded != 0 || len(result.Failed) != 0 {
			t.Errorf("expected empty result, got %+v", result)
		}
	})
}

func TestRecycleBinService_EmptyMediaBin(t *testing.T) {
	ctx := context.Background()
	f := newBinFixture()
	now := time.Now()
	f.stores[models.KindMediaFile].addDeleted("m1", testUser)
	f.files.deleted = []models.MediaFile{{ID: "m1", DeletedAt: &now}}

	result, err := f.svc.EmptyMediaBin(ctx, testUser)
	if err != nil {
		t.Fatalf("EmptyMediaBin failed: %v", err)
	}
	if result.Succeeded != 1 || len(result.Failed) != 0 {
		t.Errorf("expected 1 purged, got %+v", result)
	}
	if f.stores[models.KindMediaFile].exists("m1") {
		t.Error("media file survived EmptyMediaBin")
	}
}
