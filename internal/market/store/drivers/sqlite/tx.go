package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/harvest/internal/market/store"
	"github.com/aussiebroadwan/harvest/internal/market/store/drivers/sqlite/gen"
)

type txStore struct {
	tx  *sql.Tx
	q   *gen.Queries
	now func() time.Time
}

func newTx(tx *sql.Tx, now func() time.Time) *txStore {
	return &txStore{
		tx:  tx,
		q:   gen.New(tx),
		now: now,
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // the outer DB stays open

func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users               { return &usersRepo{q: t.q, now: t.now} }
func (t *txStore) Farmers() store.Farmers           { return &farmersRepo{q: t.q, now: t.now} }
func (t *txStore) Experts() store.Experts           { return &expertsRepo{q: t.q, now: t.now} }
func (t *txStore) Dealers() store.Dealers           { return &dealersRepo{q: t.q, now: t.now} }
func (t *txStore) Products() store.Products         { return &productsRepo{q: t.q, now: t.now} }
func (t *txStore) Orders() store.Orders             { return &ordersRepo{q: t.q, now: t.now} }
func (t *txStore) Appointments() store.Appointments { return &appointmentsRepo{q: t.q, now: t.now} }
func (t *txStore) Prebookings() store.Prebookings   { return &prebookingsRepo{q: t.q, now: t.now} }
func (t *txStore) Ratings() store.Ratings           { return &ratingsRepo{q: t.q} }

func (t *txStore) ApplyMigrations() error { return nil } // applied before any tx
