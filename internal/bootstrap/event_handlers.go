package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/Ycine_Go/internal/event"
	"github.com/osse101/Ycine_Go/internal/logger"
	"github.com/osse101/Ycine_Go/internal/metrics"
)

// ledgerEventTypes are the events an audit subscriber sees
var ledgerEventTypes = []event.Type{
	event.AccountCreated,
	event.RewardClaimed,
	event.ReferralCommission,
	event.WithdrawalProcessed,
	event.CardLinked,
	event.CardRejected,
}

// RegisterEventHandlers subscribes the metrics collector and the debug
// event logger to the bus.
func RegisterEventHandlers(bus event.Bus) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	for _, t := range ledgerEventTypes {
		bus.Subscribe(t, logEvent)
	}
	return nil
}

func logEvent(ctx context.Context, evt event.Event) error {
	logger.FromContext(ctx).Debug(LogMsgLedgerEvent,
		"event_type", evt.Type,
		"version", evt.Version,
		"payload", evt.Payload)
	return nil
}
