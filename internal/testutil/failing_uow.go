package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/gantry/internal/db"
)

// FailOnNthExecUoW is a test UnitOfWork that injects Err on the Nth
// ExecContext call inside a transaction. Schedule persistence and import
// write one row per entity, so failing partway through exercises the
// all-or-nothing rollback guarantee.
//
// Calls are counted from 1; reads pass through untouched.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error

	execs atomic.Int32
}

var _ db.UnitOfWork = (*FailOnNthExecUoW)(nil)

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if fnErr := fn(ctx, &trippingTx{DBTX: tx, uow: u}); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

// trippingTx wraps the real transaction and trips on the configured write.
type trippingTx struct {
	db.DBTX
	uow *FailOnNthExecUoW
}

func (t *trippingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if t.uow.execs.Add(1) == t.uow.FailOn {
		return nil, t.uow.Err
	}
	return t.DBTX.ExecContext(ctx, query, args...)
}
