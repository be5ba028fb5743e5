package repository

import (
	"context"

	"github.com/osse101/Ycine_Go/internal/domain"
)

// AccountMutator mutates an account inside a per-account atomic update.
// Returning an error aborts the update and nothing is persisted.
type AccountMutator func(acc *domain.Account) error

// Ledger defines the interface for account persistence
type Ledger interface {
	// CreateAccountIfAbsent inserts acc unless an account with the same name exists.
	// It returns the stored account and whether it was created by this call.
	CreateAccountIfAbsent(ctx context.Context, acc *domain.Account) (*domain.Account, bool, error)

	GetAccountByID(ctx context.Context, id string) (*domain.Account, error)
	GetAccountByName(ctx context.Context, name string) (*domain.Account, error)
	GetAccountByInviteCode(ctx context.Context, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// UpdateAccount runs fn against the current account state while holding the
	// account exclusively, then persists the result. Concurrent updates to the
	// same account are serialized. Returns domain.ErrUserNotFound for unknown ids.
	UpdateAccount(ctx context.Context, id string, fn AccountMutator) (*domain.Account, error)

	Ping(ctx context.Context) error
}
