package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// RunInTx executes fn against a transaction-bound store under serializable
// isolation. The transaction commits only when fn returns nil; any error
// rolls back every statement fn issued.
func RunInTx(ctx context.Context, db TxStarter, store StoreIface, fn func(StoreIface) error) error {
	tx, err := db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", translate(err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err = fn(store.WithTx(tx)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", translate(err))
	}

	return nil
}
