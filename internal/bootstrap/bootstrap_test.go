package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Ycine_Go/internal/config"
	"github.com/osse101/Ycine_Go/internal/domain"
	"github.com/osse101/Ycine_Go/internal/event"
	"github.com/osse101/Ycine_Go/internal/psp"
)

func memoryConfig() *config.Config {
	split := domain.DefaultRevenueSplit()
	policy := domain.DefaultWithdrawalPolicy()
	return &config.Config{
		StoreBackend:         config.BackendMemory,
		PublicURL:            "http://localhost:3000",
		CatalogCacheSize:     8,
		CatalogCacheTTL:      time.Minute,
		PlatformShare:        split.PlatformShare,
		ViewerShare:          split.ViewerShare,
		ReferralShare:        split.ReferralShare,
		WithdrawFeeRate:      policy.FeeRate,
		WithdrawCooldownDays: policy.CooldownDays,
	}
}

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2025-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "event_deadletter.jsonl"), nil, 0o600))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, LogFileRetentionCount+1)

	_, err = os.Stat(filepath.Join(dir, fmt.Sprintf(LogFileNamePattern, "2025-01-01_00-00-00")))
	assert.True(t, os.IsNotExist(err), "oldest log should be removed")
	_, err = os.Stat(filepath.Join(dir, fmt.Sprintf(LogFileNamePattern, "2025-01-12_00-00-00")))
	assert.NoError(t, err, "newest log should be kept")
}

func TestInitializeStore_Memory(t *testing.T) {
	store, pool, err := InitializeStore(context.Background(), memoryConfig())
	require.NoError(t, err)
	assert.Nil(t, pool)
	require.NoError(t, store.Ping(context.Background()))

	videos, err := store.ListVideos(context.Background())
	require.NoError(t, err)
	assert.Len(t, videos, 3)
}

func TestNewPaymentClient(t *testing.T) {
	cfg := memoryConfig()
	assert.True(t, NewPaymentClient(cfg).DemoMode())

	cfg.StripeSecretKey = "sk_test_123"
	cfg.StripeWebhookSecret = "whsec_123"
	assert.False(t, NewPaymentClient(cfg).DemoMode())
}

func TestInitializeServices_ClaimPublishesThroughBus(t *testing.T) {
	cfg := memoryConfig()
	ctx := context.Background()

	store, _, err := InitializeStore(ctx, cfg)
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	var claimed []event.Event
	bus.Subscribe(event.RewardClaimed, func(_ context.Context, evt event.Event) error {
		claimed = append(claimed, evt)
		return nil
	})
	require.NoError(t, RegisterEventHandlers(bus))

	svc := InitializeServices(cfg, store, bus, psp.NewDemoClient(cfg.PublicURL))

	acc, created, err := svc.Referrals.Signup(ctx, "dana", "")
	require.NoError(t, err)
	require.True(t, created)

	_, err = svc.Progress.RecordProgress(ctx, acc.ID, "VID2", 15, true)
	require.NoError(t, err)

	res, err := svc.Rewards.Claim(ctx, acc.ID, "VID2")
	require.NoError(t, err)
	assert.Equal(t, "72.00", res.Reward.StringFixed(2))
	assert.Len(t, claimed, 1)
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
