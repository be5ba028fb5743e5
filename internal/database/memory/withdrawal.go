package memory

import (
	"context"

	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/repository"
)

// ProcessWithdrawal runs fn under the account lock, then persists the account and the record together
func (s *Store) ProcessWithdrawal(ctx context.Context, accountID string, fn repository.WithdrawalFunc) (*domain.Withdrawal, error) {
	var record *domain.Withdrawal
	err := s.accountLocks.WithLock(accountID, func() error {
		acc, err := s.lockedCopy(ctx, accountID)
		if err != nil {
			return err
		}
		w, err := fn(acc)
		if err != nil {
			return err
		}

		acc.UpdatedAt = s.now()
		s.mu.Lock()
		s.accounts[acc.ID] = acc
		s.withdrawals = append(s.withdrawals, *w)
		s.mu.Unlock()

		record = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// ListWithdrawals returns the withdrawal log in append order
func (s *Store) ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Withdrawal, len(s.withdrawals))
	copy(out, s.withdrawals)
	return out, nil
}
