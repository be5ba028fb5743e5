// Package postgres implements the store interfaces on PostgreSQL via pgx.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Ycine_Go/internal/repository"
)

// Store implements the ledger, catalog, payment-link and withdrawal stores
type Store struct {
	db *pgxpool.Pool
}

var (
	_ repository.Ledger       = (*Store)(nil)
	_ repository.Catalog      = (*Store)(nil)
	_ repository.PaymentLinks = (*Store)(nil)
	_ repository.Withdrawals  = (*Store)(nil)
)

// NewStore creates a new Postgres-backed store
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Ping checks database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
