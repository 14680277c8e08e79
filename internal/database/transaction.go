package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// TransactionFunc represents a function that operates within a database transaction
type TransactionFunc func(*sqlx.Tx) error

// WithTransaction executes a function within a database transaction
// It automatically handles commit/rollback based on whether the function returns an error
func WithTransaction(ctx context.Context, db *sqlx.DB, fn TransactionFunc) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return StorageError("failed to begin transaction", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return StorageError("failed to rollback transaction", fmt.Errorf("%v (original error: %w)", rollbackErr, err))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return StorageError("failed to commit transaction", err)
	}

	return nil
}
