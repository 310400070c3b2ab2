package services

import (
	"context"
	"database/sql"
	"fmt"
)

// LiveNotifier is implemented by the websocket layer. Services call it after
// a successful commit; a nil notifier disables broadcasting.
type LiveNotifier interface {
	NotifyRoundUpdated(roundID int)
	NotifyTipsSaved(roundID int)
}

// withTx runs fn inside one database transaction. Any error from fn rolls
// the transaction back, so no partial state is ever observable; a panic rolls
// back and re-panics.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
