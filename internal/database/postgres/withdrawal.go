package postgres

import (
	"context"
	"fmt"

	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/repository"
)

// ProcessWithdrawal locks the account, runs fn, then saves the account and appends the record in one transaction
func (s *Store) ProcessWithdrawal(ctx context.Context, accountID string, fn repository.WithdrawalFunc) (*domain.Withdrawal, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer repository.SafeRollback(ctx, tx)

	acc, err := lockAccount(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}

	w, err := fn(acc)
	if err != nil {
		return nil, err
	}

	if _, err := saveAccount(ctx, tx, acc); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO withdrawals (withdrawal_id, account_id, amount, fee, net, payment_id, status, created_at)
		VALUES ($1, $2, $3::numeric, $4::numeric, $5::numeric, NULLIF($6, '')::uuid, $7, $8)
	`
	_, err = tx.Exec(ctx, query,
		w.ID,
		w.UserID,
		w.Amount.String(),
		w.Fee.String(),
		w.Net.String(),
		w.PaymentID,
		w.Status,
		w.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertWithdrawal, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return w, nil
}

// ListWithdrawals returns the withdrawal log oldest first
func (s *Store) ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	query := `
		SELECT withdrawal_id::text, account_id::text, amount::text, fee::text, net::text,
		       COALESCE(payment_id::text, ''), status, created_at
		FROM withdrawals
		ORDER BY created_at
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListWithdrawals, err)
	}
	defer rows.Close()

	var out []domain.Withdrawal
	for rows.Next() {
		var (
			w                domain.Withdrawal
			amount, fee, net string
		)
		if err := rows.Scan(&w.ID, &w.UserID, &amount, &fee, &net, &w.PaymentID, &w.Status, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListWithdrawals, err)
		}
		if w.Amount, err = parseAmount(amount); err != nil {
			return nil, err
		}
		if w.Fee, err = parseAmount(fee); err != nil {
			return nil, err
		}
		if w.Net, err = parseAmount(net); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListWithdrawals, err)
	}
	return out, nil
}
