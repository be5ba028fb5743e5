package bootstrap

import (
	"log/slog"

	"github.com/osse101/Ycine_Go/internal/cardlink"
	"github.com/osse101/Ycine_Go/internal/catalog"
	"github.com/osse101/Ycine_Go/internal/config"
	"github.com/osse101/Ycine_Go/internal/event"
	"github.com/osse101/Ycine_Go/internal/progress"
	"github.com/osse101/Ycine_Go/internal/psp"
	"github.com/osse101/Ycine_Go/internal/referral"
	"github.com/osse101/Ycine_Go/internal/reward"
	"github.com/osse101/Ycine_Go/internal/server"
	"github.com/osse101/Ycine_Go/internal/withdrawal"
)

// NewPaymentClient returns the Stripe client when a secret key is configured
// and the demo client otherwise.
func NewPaymentClient(cfg *config.Config) psp.Client {
	if cfg.DemoMode() {
		slog.Warn(LogMsgPaymentProvider, "provider", psp.SourceDemo)
		return psp.NewDemoClient(cfg.PublicURL)
	}

	slog.Info(LogMsgPaymentProvider, "provider", psp.SourceStripe)
	return psp.NewStripeClient(psp.StripeConfig{
		SecretKey:      cfg.StripeSecretKey,
		WebhookSecret:  cfg.StripeWebhookSecret,
		PublicURL:      cfg.PublicURL,
		MaxRetries:     cfg.PSPMaxRetries,
		RetryBaseDelay: cfg.PSPRetryBaseDelay,
		RetryMaxDelay:  cfg.PSPRetryMaxDelay,
	})
}

// InitializeServices builds the ledger services over store. Events go through publisher.
func InitializeServices(cfg *config.Config, store Store, publisher event.Publisher, client psp.Client) server.Services {
	split := cfg.RevenueSplit()

	videos := catalog.NewService(store, catalog.CacheConfig{
		Size: cfg.CatalogCacheSize,
		TTL:  cfg.CatalogCacheTTL,
	})
	referrals := referral.NewService(store, split, publisher)

	return server.Services{
		Store:      store,
		Catalog:    videos,
		Progress:   progress.NewService(store),
		Rewards:    reward.NewService(store, videos, split, referrals, publisher),
		Referrals:  referrals,
		Withdrawal: withdrawal.NewService(store, cfg.WithdrawalPolicy(), publisher),
		CardLinks:  cardlink.NewService(store, store, client, publisher),
	}
}
