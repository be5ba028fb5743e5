package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// execer is satisfied by both *pgxpool.Pool and pgx.Tx
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// isUUID reports whether id can be bound to a UUID column.
// Non-UUID ids cannot exist in the store, so callers treat them as not found.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// isUniqueViolation reports whether err is a unique violation, optionally on a specific constraint
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != PgErrorCodeUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// parseAmount converts a numeric::text column into a decimal
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s %q: %w", ErrMsgFailedToParseAmount, s, err)
	}
	return d, nil
}
