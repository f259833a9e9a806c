package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Transactor hands out pgx transactions from the shared pool. Services hold
// the ports.DBTransactor interface, so ledger operations can be driven
// against an in-memory transactor in tests.
type Transactor struct {
	pool Pool
}

// NewTransactor wraps the connection pool.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin opens a transaction with the pool defaults (read committed). Row
// locks via SELECT FOR UPDATE provide the ordering the ledger needs.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.pool.Begin(ctx)
}
