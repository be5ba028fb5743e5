package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Ycine_Go/internal/catalog"
	"github.com/osse101/Ycine_Go/internal/config"
	"github.com/osse101/Ycine_Go/internal/database"
	"github.com/osse101/Ycine_Go/internal/database/memory"
	"github.com/osse101/Ycine_Go/internal/database/postgres"
	"github.com/osse101/Ycine_Go/internal/repository"
)

// Store is everything the ledger services persist through.
// Both the postgres and memory backends satisfy it.
type Store interface {
	repository.Ledger
	repository.Catalog
	repository.Withdrawals
	repository.PaymentLinks
	Ping(ctx context.Context) error
}

// InitializeStore opens the configured backend. For postgres the returned
// pool must be closed by the caller; it is nil for the memory backend.
func InitializeStore(ctx context.Context, cfg *config.Config) (Store, *pgxpool.Pool, error) {
	if cfg.StoreBackend == config.BackendMemory {
		slog.Warn(LogMsgUsingMemoryStore)
		return memory.NewStore(catalog.DefaultVideos()), nil, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
	}

	slog.Info(LogMsgUsingPostgresStore, "host", cfg.DBHost, "database", cfg.DBName)
	return postgres.NewStore(pool), pool, nil
}
