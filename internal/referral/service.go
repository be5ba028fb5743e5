// Package referral owns account signup and the inviter/invitee edge, and pays
// the one-level commission when an invitee earns a reward.
package referral

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/event"
	"github.com/osse101/Ycine_Go/internal/logger"
	"github.com/osse101/Ycine_Go/internal/repository"
)

// maxInviteCodeAttempts bounds regeneration after invite code collisions
const maxInviteCodeAttempts = 5

// Service defines the account and referral operations
type Service interface {
	// Signup creates the account for name, or returns the existing one unchanged.
	// The bool reports whether this call created it.
	Signup(ctx context.Context, name, inviteCode string) (*domain.Account, bool, error)
	Login(ctx context.Context, name string) (*domain.Account, error)
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	InviteInfo(ctx context.Context, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	PayCommission(ctx context.Context, inviterID, inviteeID string, viewerReward decimal.Decimal) (decimal.Decimal, error)
}

type service struct {
	ledger    repository.Ledger
	split     domain.RevenueSplit
	publisher event.Publisher
	newID     func() string
	newCode   func(name string) (string, error)
	now       func() time.Time
}

// NewService creates a new referral service
func NewService(ledger repository.Ledger, split domain.RevenueSplit, publisher event.Publisher) Service {
	return &service{
		ledger:    ledger,
		split:     split,
		publisher: publisher,
		newID:     uuid.NewString,
		newCode:   generateInviteCode,
		now:       time.Now,
	}
}

func (s *service) Signup(ctx context.Context, name, inviteCode string) (*domain.Account, bool, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}

	if existing, err := s.ledger.GetAccountByName(ctx, name); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, false, fmt.Errorf("failed to look up account: %w", err)
	}

	inviterID := s.resolveInviter(ctx, strings.TrimSpace(inviteCode))

	var (
		acc     *domain.Account
		created bool
	)
	for attempt := 1; ; attempt++ {
		code, err := s.newCode(name)
		if err != nil {
			return nil, false, fmt.Errorf("failed to generate invite code: %w", err)
		}

		candidate := domain.NewAccount(s.newID(), name, code, s.now())
		candidate.InviterID = inviterID

		acc, created, err = s.ledger.CreateAccountIfAbsent(ctx, candidate)
		if err == nil {
			break
		}
		if errors.Is(err, repository.ErrDuplicateInviteCode) && attempt < maxInviteCodeAttempts {
			log.Debug("Invite code collision, regenerating", "attempt", attempt)
			continue
		}
		return nil, false, fmt.Errorf("failed to create account: %w", err)
	}

	if !created {
		// Lost a race with a concurrent signup for the same name.
		return acc, false, nil
	}

	if acc.InviterID != "" {
		if _, err := s.ledger.UpdateAccount(ctx, acc.InviterID, func(inviter *domain.Account) error {
			inviter.Invites++
			return nil
		}); err != nil {
			log.Error("Failed to increment inviter invites", "inviter_id", acc.InviterID, "error", err)
		}
	}

	log.Info("Account created", "user_id", acc.ID, "inviter_id", acc.InviterID)
	s.publish(ctx, event.NewAccountCreatedEvent(domain.AccountCreatedPayload{
		UserID:    acc.ID,
		InviterID: acc.InviterID,
	}))

	return acc, true, nil
}

// resolveInviter returns the inviter's id, or "" when the code is empty or unknown
func (s *service) resolveInviter(ctx context.Context, code string) string {
	if code == "" {
		return ""
	}
	inviter, err := s.ledger.GetAccountByInviteCode(ctx, code)
	if err != nil {
		logger.FromContext(ctx).Warn("Ignoring unresolved invite code", "invite_code", code, "error", err)
		return ""
	}
	return inviter.ID
}

func (s *service) Login(ctx context.Context, name string) (*domain.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	return s.ledger.GetAccountByName(ctx, name)
}

func (s *service) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id required", domain.ErrInvalidInput)
	}
	return s.ledger.GetAccountByID(ctx, id)
}

func (s *service) InviteInfo(ctx context.Context, code string) (*domain.Account, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrInviteNotFound
	}
	return s.ledger.GetAccountByInviteCode(ctx, code)
}

func (s *service) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.ledger.ListAccounts(ctx)
}

// PayCommission credits the inviter with the referral share of viewerReward.
// Only direct inviters are paid; the inviter's own inviter gets nothing.
func (s *service) PayCommission(ctx context.Context, inviterID, inviteeID string, viewerReward decimal.Decimal) (decimal.Decimal, error) {
	amount := s.split.Commission(viewerReward)
	if !amount.IsPositive() {
		return decimal.Zero, nil
	}

	if _, err := s.ledger.UpdateAccount(ctx, inviterID, func(inviter *domain.Account) error {
		inviter.Credit(amount)
		return nil
	}); err != nil {
		return decimal.Zero, fmt.Errorf("failed to credit inviter %s: %w", inviterID, err)
	}

	logger.FromContext(ctx).Info("Referral commission paid",
		"inviter_id", inviterID,
		"invitee_id", inviteeID,
		"amount", amount.StringFixed(domain.MoneyPlaces))

	s.publish(ctx, event.NewReferralCommissionEvent(domain.ReferralCommissionPayload{
		InviterID: inviterID,
		InviteeID: inviteeID,
		Amount:    amount.InexactFloat64(),
	}))

	return amount, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish event", "event_type", evt.Type, "error", err)
	}
}
