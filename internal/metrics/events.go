package metrics

import (
	"context"

	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/event"
	"github.com/osse101/Ycine_Go/internal/logger"
)

// EventMetricsCollector subscribes to ledger events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all ledger event types
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.RewardClaimed,
		event.ReferralCommission,
		event.WithdrawalProcessed,
		event.CardLinked,
		event.CardRejected,
		event.AccountCreated,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.RewardClaimed:
		var p domain.RewardClaimedPayload
		if p, err = event.DecodePayload[domain.RewardClaimedPayload](evt.Payload); err == nil {
			RewardsClaimed.WithLabelValues(p.VideoID).Inc()
			RewardPaid.Add(p.Reward)
			PlatformNet.Add(p.PlatformNet)
			if p.LevelChanged {
				LevelUps.WithLabelValues(string(p.Level)).Inc()
			}
		}

	case event.ReferralCommission:
		var p domain.ReferralCommissionPayload
		if p, err = event.DecodePayload[domain.ReferralCommissionPayload](evt.Payload); err == nil {
			ReferralCommissionPaid.Add(p.Amount)
		}

	case event.WithdrawalProcessed:
		var p domain.WithdrawalProcessedPayload
		if p, err = event.DecodePayload[domain.WithdrawalProcessedPayload](evt.Payload); err == nil {
			Withdrawals.Inc()
			WithdrawalFees.Add(p.Fee)
			WithdrawalNet.Add(p.Net)
		}

	case event.CardLinked:
		var p domain.CardLinkPayload
		if p, err = event.DecodePayload[domain.CardLinkPayload](evt.Payload); err == nil {
			CardsLinked.WithLabelValues(p.Source).Inc()
		}

	case event.CardRejected:
		var p domain.CardLinkPayload
		if p, err = event.DecodePayload[domain.CardLinkPayload](evt.Payload); err == nil {
			CardsRejected.WithLabelValues(p.Brand).Inc()
		}

	case event.AccountCreated:
		var p domain.AccountCreatedPayload
		if p, err = event.DecodePayload[domain.AccountCreatedPayload](evt.Payload); err == nil {
			AccountsCreated.Inc()
			if p.InviterID != "" {
				ReferredSignups.Inc()
			}
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
