package repository

import (
	"context"

	"github.com/osse101/Ycine_Go/internal/domain"
)

// PaymentLinks defines the interface for the payment-link log
type PaymentLinks interface {
	// FindVerifiedByCard returns the verified links matching the card fingerprint
	FindVerifiedByCard(ctx context.Context, card domain.CardFingerprint) ([]domain.PaymentLink, error)

	// RecordAttempt appends a non-verified link (duplicate audit entry)
	RecordAttempt(ctx context.Context, link *domain.PaymentLink) error

	// BindToAccount appends a verified link and atomically sets it as the
	// account's linked payment. Returns domain.ErrUserNotFound for unknown owners.
	BindToAccount(ctx context.Context, link *domain.PaymentLink) error

	ListPaymentLinks(ctx context.Context, userID string) ([]domain.PaymentLink, error)
}
