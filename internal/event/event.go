package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/Ycine_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Ledger event types
const (
	RewardClaimed       = Type(domain.EventTypeRewardClaimed)
	ReferralCommission  = Type(domain.EventTypeReferralCommission)
	WithdrawalProcessed = Type(domain.EventTypeWithdrawalProcessed)
	CardLinked          = Type(domain.EventTypeCardLinked)
	CardRejected        = Type(domain.EventTypeCardRejected)
	AccountCreated      = Type(domain.EventTypeAccountCreated)
)

func newEvent(t Type, payload interface{}) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     t,
		Payload:  payload,
		Metadata: Metadata{"timestamp": time.Now().Unix()},
	}
}

// NewRewardClaimedEvent creates an event for a committed reward claim
func NewRewardClaimedEvent(p domain.RewardClaimedPayload) Event {
	return newEvent(RewardClaimed, p)
}

// NewReferralCommissionEvent creates an event for a credited inviter commission
func NewReferralCommissionEvent(p domain.ReferralCommissionPayload) Event {
	return newEvent(ReferralCommission, p)
}

// NewWithdrawalProcessedEvent creates an event for a recorded withdrawal
func NewWithdrawalProcessedEvent(p domain.WithdrawalProcessedPayload) Event {
	return newEvent(WithdrawalProcessed, p)
}

// NewCardLinkedEvent creates an event for a card bound to an account
func NewCardLinkedEvent(p domain.CardLinkPayload) Event {
	return newEvent(CardLinked, p)
}

// NewCardRejectedEvent creates an event for a card refused as a duplicate
func NewCardRejectedEvent(p domain.CardLinkPayload) Event {
	return newEvent(CardRejected, p)
}

// NewAccountCreatedEvent creates an event for a new signup
func NewAccountCreatedEvent(p domain.AccountCreatedPayload) Event {
	return newEvent(AccountCreated, p)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// Publisher is the narrow side of a bus that services emit into
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish delivers an event to all subscribers synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
