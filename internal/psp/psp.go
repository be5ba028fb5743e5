// Package psp is the boundary to the card tokenisation provider. Provider
// callbacks arrive as one of two payload variants and are normalised here
// into a single CardToken before any ledger rule runs.
package psp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/Ycine_Go/internal/domain"
)

// Token sources
const (
	SourceStripe = "stripe"
	SourceDemo   = "demo"
)

var (
	// ErrUnhandledEvent marks a verified provider event that carries no card
	ErrUnhandledEvent = errors.New("event does not carry a card")
	// ErrVariantNotAccepted is returned when a payload variant is not enabled
	ErrVariantNotAccepted = fmt.Errorf("%w: payload variant not accepted in this mode", domain.ErrInvalidInput)
	// ErrInvalidSignature is returned when a webhook signature does not verify
	ErrInvalidSignature = fmt.Errorf("%w: webhook signature verification failed", domain.ErrInvalidInput)
)

// CardToken is the canonical result of a completed tokenisation
type CardToken struct {
	UserID string
	Token  string
	Last4  string
	Brand  string
	Source string
}

// SetupSession is where the user is sent to enter card details
type SetupSession struct {
	ID   string `json:"id,omitempty"`
	URL  string `json:"url"`
	Demo bool   `json:"demo,omitempty"`
}

// Payload is a provider callback variant
type Payload interface {
	variant() string
}

// StripePayload is a signed Stripe webhook body
type StripePayload struct {
	Body      []byte
	Signature string
}

func (StripePayload) variant() string { return SourceStripe }

// DemoPayload carries query or form parameters from the demo flow
type DemoPayload struct {
	Token  string
	UserID string
	Last4  string
	Brand  string
}

func (DemoPayload) variant() string { return SourceDemo }

// Client is implemented by the Stripe and demo providers
type Client interface {
	CreateSetupSession(ctx context.Context, userID string) (*SetupSession, error)
	Normalize(ctx context.Context, p Payload) (*CardToken, error)
	DemoMode() bool
}

func normalizeCard(userID, token, last4, brand, source string) *CardToken {
	return &CardToken{
		UserID: strings.TrimSpace(userID),
		Token:  strings.TrimSpace(token),
		Last4:  strings.TrimSpace(last4),
		Brand:  strings.ToUpper(strings.TrimSpace(brand)),
		Source: source,
	}
}
