package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/event"
)

func TestEventMetricsCollector_RewardClaimed(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	claims := testutil.ToFloat64(RewardsClaimed.WithLabelValues("VIDX"))
	paid := testutil.ToFloat64(RewardPaid)
	gold := testutil.ToFloat64(LevelUps.WithLabelValues(string(domain.LevelGold)))

	err := bus.Publish(context.Background(), event.NewRewardClaimedEvent(domain.RewardClaimedPayload{
		UserID:       "u1",
		VideoID:      "VIDX",
		Reward:       90,
		PlatformNet:  810,
		Level:        domain.LevelGold,
		LevelChanged: true,
	}))
	require.NoError(t, err)

	assert.Equal(t, claims+1, testutil.ToFloat64(RewardsClaimed.WithLabelValues("VIDX")))
	assert.InDelta(t, paid+90, testutil.ToFloat64(RewardPaid), 0.001)
	assert.Equal(t, gold+1, testutil.ToFloat64(LevelUps.WithLabelValues(string(domain.LevelGold))))
}

func TestEventMetricsCollector_Withdrawal(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	count := testutil.ToFloat64(Withdrawals)
	fees := testutil.ToFloat64(WithdrawalFees)

	err := bus.Publish(context.Background(), event.NewWithdrawalProcessedEvent(domain.WithdrawalProcessedPayload{
		UserID: "u1",
		Amount: 100,
		Fee:    5,
		Net:    95,
	}))
	require.NoError(t, err)

	assert.Equal(t, count+1, testutil.ToFloat64(Withdrawals))
	assert.InDelta(t, fees+5, testutil.ToFloat64(WithdrawalFees), 0.001)
}

func TestEventMetricsCollector_CardAndSignup(t *testing.T) {
	c := NewEventMetricsCollector()
	ctx := context.Background()

	linked := testutil.ToFloat64(CardsLinked.WithLabelValues("demo"))
	rejected := testutil.ToFloat64(CardsRejected.WithLabelValues("VISA"))
	referred := testutil.ToFloat64(ReferredSignups)
	created := testutil.ToFloat64(AccountsCreated)

	require.NoError(t, c.HandleEvent(ctx, event.NewCardLinkedEvent(domain.CardLinkPayload{UserID: "u1", Source: "demo"})))
	require.NoError(t, c.HandleEvent(ctx, event.NewCardRejectedEvent(domain.CardLinkPayload{UserID: "u2", Brand: "VISA"})))
	require.NoError(t, c.HandleEvent(ctx, event.NewAccountCreatedEvent(domain.AccountCreatedPayload{UserID: "u3", InviterID: "u1"})))
	require.NoError(t, c.HandleEvent(ctx, event.NewAccountCreatedEvent(domain.AccountCreatedPayload{UserID: "u4"})))

	assert.Equal(t, linked+1, testutil.ToFloat64(CardsLinked.WithLabelValues("demo")))
	assert.Equal(t, rejected+1, testutil.ToFloat64(CardsRejected.WithLabelValues("VISA")))
	assert.Equal(t, referred+1, testutil.ToFloat64(ReferredSignups))
	assert.Equal(t, created+2, testutil.ToFloat64(AccountsCreated))
}

func TestEventMetricsCollector_BadPayloadCountsError(t *testing.T) {
	before := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.ReferralCommission)))

	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{
		Type:    event.ReferralCommission,
		Payload: "not a payload",
	})

	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.ReferralCommission))))
}
