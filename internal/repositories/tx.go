package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Executor is the subset of sqlx methods the repositories use. Both
// *sqlx.DB and *sqlx.Tx satisfy it, so a repository runs inside a
// request transaction whenever one is present in the context.
type Executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// WithTx stores a transaction in the context.
func WithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// TxFromContext retrieves the transaction from the context. Returns nil if not present.
func TxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// executor returns the context transaction when one is present and the
// pool otherwise.
func executor(ctx context.Context, db *sqlx.DB) Executor {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
