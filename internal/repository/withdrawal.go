package repository

import (
	"context"

	"github.com/osse101/Ycine_Go/internal/domain"
)

// WithdrawalFunc validates and mutates the locked account, returning the record to append.
// Returning an error aborts the withdrawal and nothing is persisted.
type WithdrawalFunc func(acc *domain.Account) (*domain.Withdrawal, error)

// Withdrawals defines the interface for the withdrawal log
type Withdrawals interface {
	// ProcessWithdrawal locks the account, runs fn, then persists the account
	// and appends the returned record in one atomic step.
	ProcessWithdrawal(ctx context.Context, accountID string, fn WithdrawalFunc) (*domain.Withdrawal, error)

	ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error)
}
