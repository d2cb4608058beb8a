package testutil

import (
	"context"
	"database/sql"
	"errors"
	"sync/atomic"

	"github.com/alexanderramin/bossboard/internal/db"
)

// ErrInjected is returned by FailOnNthExecUoW when no Err is set.
var ErrInjected = errors.New("injected exec failure")

// FailOnNthExecUoW runs a real transaction but fails its Nth ExecContext
// call (counting from 1), simulating a worksheet write that dies part way
// through. Reads are not counted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error

	// Execs is the number of ExecContext calls seen in the last
	// transaction, including the failed one.
	Execs int32
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn db.TxFunc) error {
	injected := u.Err
	if injected == nil {
		injected = ErrInjected
	}
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		wrapped := &failOnNthExec{DBTX: tx, failOn: u.FailOn, err: injected}
		err := fn(ctx, wrapped)
		u.Execs = wrapped.count.Load()
		return err
	})
}

type failOnNthExec struct {
	db.DBTX
	count  atomic.Int32
	failOn int32
	err    error
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.count.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
