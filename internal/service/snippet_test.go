package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"snipvault/internal/config"
	"snipvault/internal/domain"
	"snipvault/internal/domain/models"
	"snipvault/internal/domain/services"
)

// capturingSnippetRepo records created and updated snippets and serves a
// single canned row for reads.
type capturingSnippetRepo struct {
	created *models.Snippet
	updated *models.Snippet
	stored  *models.Snippet
}

func (r *capturingSnippetRepo) Create(_ context.Context, snippet *models.Snippet) error {
	r.created = snippet
	return nil
}

func (r *capturingSnippetRepo) GetByID(_ context.Context, id, userID string) (*models.Snippet, error) {
	if r.stored == nil || r.stored.ID != id || r.stored.UserID != userID {
		return nil, domain.ErrNotFound
	}
	copied := *r.stored
	return &copied, nil
}

func (r *capturingSnippetRepo) List(context.Context, string) ([]models.Snippet, error) {
	if r.stored == nil {
		return []models.Snippet{}, nil
	}
	return []models.Snippet{*r.stored}, nil
}

func (r *capturingSnippetRepo) Update(_ context.Context, snippet *models.Snippet) error {
	r.updated = snippet
	return nil
}

func (r *capturingSnippetRepo) ListDeleted(context.Context, string) ([]models.Snippet, error) {
	return []models.Snippet{}, nil
}

func testLimits() *config.Limits {
	return &config.Limits{
		MaxTitleLength: 255,
		MaxNameLength:  255,
		MaxCodeBytes:   1048576,
		RetentionDays:  30,
	}
}

func newSnippetFixture() (services.SnippetService, *capturingSnippetRepo) {
	repo := &capturingSnippetRepo{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSnippetService(repo, testLimits(), logger), repo
}

func TestSnippetService_CreateSnippet(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with generated id and trimmed fields", func(t *testing.T) {
		svc, repo := newSnippetFixture()

		snippet, err := svc.CreateSnippet(ctx, &services.CreateSnippetRequest{
			UserID:   testUser,
			Title:    "  Retry with backoff  ",
			Language: "go",
			Code:     "for {}",
		})
		if err != nil {
			t.Fatalf("CreateSnippet failed: %v", err)
		}

		if snippet.ID == "" {
			t.Error("expected generated ID")
		}
		if snippet.Title != "Retry with backoff" {
			t.Errorf("title not trimmed: %q", snippet.Title)
		}
		if snippet.DeletedAt != nil {
			t.Error("new snippet must be active")
		}
		if repo.created == nil {
			t.Fatal("repo.Create not called")
		}
	})

	t.Run("empty folder reference becomes unfiled", func(t *testing.T) {
		svc, _ := newSnippetFixture()
		empty := ""

		snippet, err := svc.CreateSnippet(ctx, &services.CreateSnippetRequest{
			UserID:   testUser,
			Title:    "test",
			FolderID: &empty,
		})
		if err != nil {
			t.Fatalf("CreateSnippet failed: %v", err)
		}
		if snippet.FolderID != nil {
			t.Errorf("expected nil folder reference, got %q", *snippet.FolderID)
		}
	})

	t.Run("missing title fails with validation", func(t *testing.T) {
		svc, _ := newSnippetFixture()

		_, err := svc.CreateSnippet(ctx, &services.CreateSnippetRequest{
			UserID: testUser,
			Code:   "x",
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("oversized title fails with validation", func(t *testing.T) {
		svc, _ := newSnippetFixture()

		_, err := svc.CreateSnippet(ctx, &services.CreateSnippetRequest{
			UserID: testUser,
			Title:  strings.Repeat("x", 256),
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})
}

func TestSnippetService_UpdateSnippet(t *testing.T) {
	ctx := context.Background()

	t.Run("applies only provided fields", func(t *testing.T) {
		svc, repo := newSnippetFixture()
		repo.stored = &models.Snippet{
			ID:       "s1",
			UserID:   testUser,
			Title:    "original",
			Language: "go",
			Code:     "old",
		}

		newTitle := "renamed"
		snippet, err := svc.UpdateSnippet(ctx, "s1", testUser, &services.UpdateSnippetRequest{
			Title: &newTitle,
		})
		if err != nil {
			t.Fatalf("UpdateSnippet failed: %v", err)
		}

		if snippet.Title != "renamed" {
			t.Errorf("title not updated: %q", snippet.Title)
		}
		if snippet.Language != "go" || snippet.Code != "old" {
			t.Error("untouched fields were modified")
		}
		if repo.updated == nil {
			t.Fatal("repo.Update not called")
		}
	})

	t.Run("missing snippet fails with not found", func(t *testing.T) {
		svc, _ := newSnippetFixture()

		newTitle := "renamed"
		_, err := svc.UpdateSnippet(ctx, "nope", testUser, &services.UpdateSnippetRequest{
			Title: &newTitle,
		})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("another user's snippet is invisible", func(t *testing.T) {
		svc, repo := newSnippetFixture()
		repo.stored = &models.Snippet{ID: "s1", UserID: "someone-else", Title: "theirs"}

		newTitle := "mine now"
		_, err := svc.UpdateSnippet(ctx, "s1", testUser, &services.UpdateSnippetRequest{
			Title: &newTitle,
		})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("empty title fails with validation", func(t *testing.T) {
		svc, repo := newSnippetFixture()
		repo.stored = &models.Snippet{ID: "s1", UserID: testUser, Title: "original"}

		empty := ""
		_, err := svc.UpdateSnippet(ctx, "s1", testUser, &services.UpdateSnippetRequest{
			Title: &empty,
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})
}
