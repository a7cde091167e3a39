package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"snipvault/internal/domain"
	"snipvault/internal/domain/repositories"
)

// PostgresLifecycleStore implements the LifecycleStore interface for one
// table. Each transition is a single conditional statement, so the
// database evaluates the deleted_at guard and applies the change in one
// round trip: of two concurrent soft deletes on the same row, exactly one
// sees a row affected and the other gets the precondition error.
type PostgresLifecycleStore struct {
	pool  *pgxpool.Pool
	table string
}

// NewLifecycleStore creates a lifecycle store bound to a table
func NewLifecycleStore(config *RepositoryConfig, table string) repositories.LifecycleStore {
	return &PostgresLifecycleStore{
		pool:  config.Pool,
		table: table,
	}
}

// SoftDelete marks an active row deleted. The deleted_at IS NULL guard
// means a row that is absent, foreign, or already deleted affects zero
// rows, which is surfaced as a precondition failure rather than swallowed
// as success; an existing deleted_at is never overwritten.
func (s *PostgresLifecycleStore) SoftDelete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
	`, s.table)

	result, err := GetExecutor(ctx, s.pool).Exec(ctx, query, id, userID)
	if err != nil {
		return classifyStoreErr("soft delete "+s.table, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: not found or already deleted: %w", s.table, id, domain.ErrPrecondition)
	}

	return nil
}

// Restore clears deleted_at, conditioned only on ownership. Restoring an
// already-active row is a no-op success so the undo path can be retried
// freely.
func (s *PostgresLifecycleStore) Restore(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET deleted_at = NULL, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`, s.table)

	result, err := GetExecutor(ctx, s.pool).Exec(ctx, query, id, userID)
	if err != nil {
		return classifyStoreErr("restore "+s.table, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", s.table, id, domain.ErrNotFound)
	}

	return nil
}

// Purge removes a row for good. The deleted_at IS NOT NULL guard is the
// safety rail: an active row can never be permanently deleted through the
// recycle-bin path, and a row restored by another session between listing
// and purging fails here instead of being lost.
func (s *PostgresLifecycleStore) Purge(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NOT NULL
	`, s.table)

	result, err := GetExecutor(ctx, s.pool).Exec(ctx, query, id, userID)
	if err != nil {
		return classifyStoreErr("purge "+s.table, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: not found or still active: %w", s.table, id, domain.ErrPrecondition)
	}

	return nil
}
