package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgx that both *pgxpool.Pool and pgx.Tx implement,
// so repositories work unchanged inside and outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, arguments ...interface{}) pgx.Row
}

type txContextKey string

const txKey txContextKey = "pgx_tx"

// SetTx stores a transaction in the context.
func SetTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTx retrieves the transaction from the context, or nil.
func GetTx(ctx context.Context) pgx.Tx {
	tx, ok := ctx.Value(txKey).(pgx.Tx)
	if !ok {
		return nil
	}
	return tx
}

// TxFn runs within a transaction started by a TransactionManager.
type TxFn func(ctx context.Context) error

// TransactionManager handles database transactions. The lifecycle core
// itself never spans a transaction across rows; this exists for the
// supporting CRUD paths that create linked rows together.
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}
