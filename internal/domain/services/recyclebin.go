package services

import (
	"context"

	"snipvault/internal/domain/models"
)

// BatchAction selects which transition a batch applies.
type BatchAction string

const (
	BatchActionRestore BatchAction = "restore"
	BatchActionPurge   BatchAction = "permanent-delete"
)

// BatchItem is one (kind, id) target in a batch request.
type BatchItem struct {
	Kind models.Kind `json:"kind"`
	ID   string      `json:"id"`
}

// BatchRequest applies one action to a user-selected set of entities.
type BatchRequest struct {
	Action BatchAction `json:"action"`
	Items  []BatchItem `json:"items"`
}

// BatchFailure records one item that did not transition, with enough
// detail to retry just the failed subset.
type BatchFailure struct {
	Kind   models.Kind `json:"kind"`
	ID     string      `json:"id"`
	Reason string      `json:"reason"`
}

// BatchResult reports the per-item outcome of a batch. There is no
// atomicity across the batch: partial application is expected.
type BatchResult struct {
	Succeeded int            `json:"succeeded"`
	Failed    []BatchFailure `json:"failed"`
}

// RecycleBinService is the soft-delete / recycle-bin lifecycle manager.
// Every operation is scoped to the authenticated user's rows; the userID
// always comes from the verified session, never from a request body.
type RecycleBinService interface {
	// SoftDelete moves an active entity to the bin. A second soft delete
	// of the same entity fails with domain.ErrPrecondition.
	SoftDelete(ctx context.Context, userID string, kind models.Kind, id string) error

	// Restore moves an entity out of the bin. Idempotent: restoring an
	// already-active entity succeeds.
	Restore(ctx context.Context, userID string, kind models.Kind, id string) error

	// Purge permanently removes a soft-deleted entity. Purging an active
	// entity fails with domain.ErrPrecondition and leaves it untouched.
	Purge(ctx context.Context, userID string, kind models.Kind, id string) error

	// ListRecycleBin aggregates the snippet-side bin: deleted snippets,
	// deleted folders with active-snippet counts, deleted categories with
	// counts, each ordered by deleted_at descending.
	ListRecycleBin(ctx context.Context, userID string) (*models.RecycleBin, error)

	// ListMediaRecycleBin is the parallel aggregate for the media library.
	ListMediaRecycleBin(ctx context.Context, userID string) (*models.MediaRecycleBin, error)

	// Batch applies restore or permanent-delete to each item in turn,
	// reporting per-item failures instead of aborting.
	Batch(ctx context.Context, userID string, req *BatchRequest) (*BatchResult, error)

	// EmptyBin purges everything currently in the snippet-side bin. The
	// set is re-fetched at invocation time.
	EmptyBin(ctx context.Context, userID string) (*BatchResult, error)

	// EmptyMediaBin purges everything currently in the media bin.
	EmptyMediaBin(ctx context.Context, userID string) (*BatchResult, error)
}
