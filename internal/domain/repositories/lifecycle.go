package repositories

import "context"

// LifecycleStore executes the three state transitions for one entity
// table. It carries no policy beyond the conditional statements themselves:
// every call is scoped to the owning user, and the deleted_at guard is
// evaluated by the database in the same statement, so the store provides
// the per-row atomicity. One instance exists per entity kind.
type LifecycleStore interface {
	// SoftDelete marks an active row deleted. Returns domain.ErrPrecondition
	// (wrapped) when the row is absent, foreign, or already deleted.
	SoftDelete(ctx context.Context, id, userID string) error

	// Restore clears deleted_at. Restoring an already-active row succeeds
	// (it is the undo path and must be safely retryable). Returns
	// domain.ErrNotFound when the row is absent or foreign.
	Restore(ctx context.Context, id, userID string) error

	// Purge removes a soft-deleted row for good. Returns
	// domain.ErrPrecondition when the row is still active, absent, or
	// foreign, so an active row can never be lost through this path.
	Purge(ctx context.Context, id, userID string) error
}
