package memory

import (
	"context"

	"github.com/osse101/Ycine_Go/internal/domain"
)

// FindVerifiedByCard returns verified links for the card fingerprint
func (s *Store) FindVerifiedByCard(ctx context.Context, card domain.CardFingerprint) ([]domain.PaymentLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.PaymentLink
	for _, l := range s.paymentLinks {
		if l.Verified && domain.NewCardFingerprint(l.Last4, l.Brand) == card {
			out = append(out, l)
		}
	}
	return out, nil
}

// RecordAttempt appends an unverified audit entry
func (s *Store) RecordAttempt(ctx context.Context, link *domain.PaymentLink) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entry := *link
	entry.Verified = false

	s.mu.Lock()
	s.paymentLinks = append(s.paymentLinks, entry)
	s.mu.Unlock()
	return nil
}

// BindToAccount appends a verified link and makes it the account's active payment
func (s *Store) BindToAccount(ctx context.Context, link *domain.PaymentLink) error {
	return s.accountLocks.WithLock(link.UserID, func() error {
		acc, err := s.lockedCopy(ctx, link.UserID)
		if err != nil {
			return err
		}

		entry := *link
		entry.Verified = true
		entry.Status = domain.PaymentLinkActive

		s.mu.Lock()
		s.paymentLinks = append(s.paymentLinks, entry)
		s.mu.Unlock()

		acc.LinkedPaymentID = entry.ID
		acc.IsVerified = true
		s.commit(acc)
		return nil
	})
}

// ListPaymentLinks returns all link attempts, optionally for one user
func (s *Store) ListPaymentLinks(ctx context.Context, userID string) ([]domain.PaymentLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PaymentLink, 0, len(s.paymentLinks))
	for _, l := range s.paymentLinks {
		if userID == "" || l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}
