package domain

import (
	"strings"
	"time"
)

// PaymentLinkStatus describes how a link attempt was recorded
type PaymentLinkStatus string

const (
	// PaymentLinkActive is a verified link usable for withdrawals
	PaymentLinkActive PaymentLinkStatus = "active"
	// PaymentLinkDuplicate is an audit record for a card already bound elsewhere
	PaymentLinkDuplicate PaymentLinkStatus = "duplicate"
)

// PaymentLink is one card-link attempt. Records are never deleted.
type PaymentLink struct {
	ID        string
	UserID    string
	Token     string
	Last4     string
	Brand     string
	Source    string
	Verified  bool
	Status    PaymentLinkStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CardFingerprint identifies a physical card for the duplicate check
type CardFingerprint struct {
	Last4 string
	Brand string
}

// NewCardFingerprint normalises brand casing and surrounding whitespace
func NewCardFingerprint(last4, brand string) CardFingerprint {
	return CardFingerprint{
		Last4: strings.TrimSpace(last4),
		Brand: strings.ToUpper(strings.TrimSpace(brand)),
	}
}

// Key is used for per-card locking
func (f CardFingerprint) Key() string {
	return "card:" + f.Brand + ":" + f.Last4
}
