// Package withdrawal is the gate between an account balance and a payout.
package withdrawal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/event"
	"github.com/osse101/Ycine_Go/internal/logger"
	"github.com/osse101/Ycine_Go/internal/repository"
)

// Service defines the withdrawal operations
type Service interface {
	Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Withdrawal, error)
	ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error)
}

type service struct {
	repo      repository.Withdrawals
	policy    domain.WithdrawalPolicy
	publisher event.Publisher
	newID     func() string
	now       func() time.Time
}

// NewService creates a new withdrawal service
func NewService(repo repository.Withdrawals, policy domain.WithdrawalPolicy, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		policy:    policy,
		publisher: publisher,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Withdraw debits the gross amount and appends a processed withdrawal record.
//
// Rules, first failure wins: unknown account, amount not in (0, balance] or
// finer than cents, no linked payment, cooldown not elapsed.
func (s *service) Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Withdrawal, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: userId required", domain.ErrInvalidInput)
	}

	w, err := s.repo.ProcessWithdrawal(ctx, userID, func(acc *domain.Account) (*domain.Withdrawal, error) {
		if !amount.IsPositive() || amount.GreaterThan(acc.Balance) || !amount.Equal(domain.Round2(amount)) {
			return nil, domain.ErrInvalidAmount
		}
		if !acc.HasLinkedPayment() {
			return nil, domain.ErrNoLinkedPayment
		}
		now := s.now().UTC()
		if days := s.policy.DaysRemaining(acc.LastWithdraw, now); days > 0 {
			return nil, &domain.WithdrawCooldownError{DaysRemaining: days}
		}

		fee, net := s.policy.Split(amount)
		acc.Debit(amount)
		acc.LastWithdraw = &now

		return &domain.Withdrawal{
			ID:        s.newID(),
			UserID:    acc.ID,
			Amount:    domain.Round2(amount),
			Fee:       fee,
			Net:       net,
			PaymentID: acc.LinkedPaymentID,
			Status:    domain.WithdrawalStatusProcessed,
			CreatedAt: now,
		}, nil
	})
	if err != nil {
		var cooldown *domain.WithdrawCooldownError
		switch {
		case errors.As(err, &cooldown):
			log.Warn("Withdrawal on cooldown", "user_id", userID, "days_remaining", cooldown.DaysRemaining)
		case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrNoLinkedPayment), errors.Is(err, domain.ErrUserNotFound):
			log.Warn("Withdrawal rejected", "user_id", userID, "reason", err)
		default:
			log.Error("Withdrawal failed", "user_id", userID, "error", err)
		}
		return nil, fmt.Errorf("failed to withdraw: %w", err)
	}

	log.Info("Withdrawal processed",
		"user_id", userID,
		"withdrawal_id", w.ID,
		"amount", w.Amount.StringFixed(domain.MoneyPlaces),
		"fee", w.Fee.StringFixed(domain.MoneyPlaces),
		"net", w.Net.StringFixed(domain.MoneyPlaces))

	if s.publisher != nil {
		evt := event.NewWithdrawalProcessedEvent(domain.WithdrawalProcessedPayload{
			WithdrawalID: w.ID,
			UserID:       w.UserID,
			Amount:       w.Amount.InexactFloat64(),
			Fee:          w.Fee.InexactFloat64(),
			Net:          w.Net.InexactFloat64(),
		})
		if err := s.publisher.Publish(ctx, evt); err != nil {
			log.Warn("Failed to publish event", "event_type", evt.Type, "error", err)
		}
	}

	return w, nil
}

// ListWithdrawals returns the full withdrawal log
func (s *service) ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	return s.repo.ListWithdrawals(ctx)
}
