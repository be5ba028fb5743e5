// Package cardlink binds a tokenised card to exactly one account. A card
// already verified for another account is recorded for audit and refused.
package cardlink

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Ycine_Go/internal/concurrency"
	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/event"
	"github.com/osse101/Ycine_Go/internal/logger"
	"github.com/osse101/Ycine_Go/internal/psp"
	"github.com/osse101/Ycine_Go/internal/repository"
)

// LinkResult describes the outcome of a provider callback
type LinkResult struct {
	Link *domain.PaymentLink
	// Ignored is set for verified provider events that carry no card
	Ignored bool
}

// Service defines the card-link operations
type Service interface {
	Initiate(ctx context.Context, userID string) (*psp.SetupSession, error)
	Complete(ctx context.Context, payload psp.Payload) (*LinkResult, error)
	ListPaymentLinks(ctx context.Context, userID string) ([]domain.PaymentLink, error)
	DemoMode() bool
}

type service struct {
	ledger    repository.Ledger
	links     repository.PaymentLinks
	client    psp.Client
	cardLocks *concurrency.LockManager
	publisher event.Publisher
	newID     func() string
	now       func() time.Time
}

// NewService creates a new card-link service
func NewService(ledger repository.Ledger, links repository.PaymentLinks, client psp.Client, publisher event.Publisher) Service {
	return &service{
		ledger:    ledger,
		links:     links,
		client:    client,
		cardLocks: concurrency.NewLockManager(),
		publisher: publisher,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

func (s *service) DemoMode() bool {
	return s.client.DemoMode()
}

// Initiate starts out-of-band tokenisation for an existing account
func (s *service) Initiate(ctx context.Context, userID string) (*psp.SetupSession, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId required", domain.ErrInvalidInput)
	}
	if _, err := s.ledger.GetAccountByID(ctx, userID); err != nil {
		return nil, err
	}

	sess, err := s.client.CreateSetupSession(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to create card setup session", "user_id", userID, "error", err)
		return nil, err
	}
	return sess, nil
}

// Complete normalises a provider callback and binds the card.
//
// Cards are identified by (last4, brand). The check and the bind run under a
// per-card lock so two accounts racing on one card cannot both be verified.
func (s *service) Complete(ctx context.Context, payload psp.Payload) (*LinkResult, error) {
	log := logger.FromContext(ctx)

	tok, err := s.client.Normalize(ctx, payload)
	if err != nil {
		if errors.Is(err, psp.ErrUnhandledEvent) {
			return &LinkResult{Ignored: true}, nil
		}
		log.Warn("Rejected card-link callback", "error", err)
		return nil, err
	}

	if _, err := s.ledger.GetAccountByID(ctx, tok.UserID); err != nil {
		return nil, err
	}

	card := domain.NewCardFingerprint(tok.Last4, tok.Brand)
	now := s.now().UTC()
	link := &domain.PaymentLink{
		ID:        s.newID(),
		UserID:    tok.UserID,
		Token:     tok.Token,
		Last4:     card.Last4,
		Brand:     card.Brand,
		Source:    tok.Source,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.cardLocks.WithLock(card.Key(), func() error {
		existing, err := s.links.FindVerifiedByCard(ctx, card)
		if err != nil {
			return fmt.Errorf("failed to look up card: %w", err)
		}
		for _, l := range existing {
			if l.UserID != tok.UserID {
				link.Status = domain.PaymentLinkDuplicate
				if err := s.links.RecordAttempt(ctx, link); err != nil {
					return fmt.Errorf("failed to record duplicate attempt: %w", err)
				}
				return domain.ErrCardAlreadyUsed
			}
		}

		link.Status = domain.PaymentLinkActive
		link.Verified = true
		if err := s.links.BindToAccount(ctx, link); err != nil {
			return fmt.Errorf("failed to bind card: %w", err)
		}
		return nil
	})

	evtPayload := domain.CardLinkPayload{
		UserID:    tok.UserID,
		PaymentID: link.ID,
		Brand:     card.Brand,
		Source:    tok.Source,
	}

	if errors.Is(err, domain.ErrCardAlreadyUsed) {
		log.Warn("Card already linked to another account",
			"user_id", tok.UserID,
			"brand", card.Brand,
			"last4", card.Last4)
		s.publish(ctx, event.NewCardRejectedEvent(evtPayload))
		return nil, err
	}
	if err != nil {
		log.Error("Card link failed", "user_id", tok.UserID, "error", err)
		return nil, err
	}

	log.Info("Card linked", "user_id", tok.UserID, "payment_id", link.ID, "source", tok.Source)
	s.publish(ctx, event.NewCardLinkedEvent(evtPayload))

	return &LinkResult{Link: link}, nil
}

func (s *service) ListPaymentLinks(ctx context.Context, userID string) ([]domain.PaymentLink, error) {
	return s.links.ListPaymentLinks(ctx, userID)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish event", "event_type", evt.Type, "error", err)
	}
}
