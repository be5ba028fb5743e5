// Command app runs the Ycine reward ledger HTTP service.
//
// @title Ycine Reward Ledger API
// @version 1.0
// @description Watch-to-earn reward ledger with referral commissions, card linking and gated withdrawals.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/Ycine_Go/docs"
	"github.com/osse101/Ycine_Go/internal/bootstrap"
	"github.com/osse101/Ycine_Go/internal/config"
	"github.com/osse101/Ycine_Go/internal/handler"
	"github.com/osse101/Ycine_Go/internal/logger"
	"github.com/osse101/Ycine_Go/internal/server"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Structured stdout logging until the configured logger is installed
	logger.InitLogger(logger.DefaultConfig())

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	handler.InitValidator()

	ctx := context.Background()

	store, pool, err := bootstrap.InitializeStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}
	if err := bootstrap.RegisterEventHandlers(bus); err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	services := bootstrap.InitializeServices(cfg, store, publisher, bootstrap.NewPaymentClient(cfg))

	srv := server.NewServer(server.Config{
		Port:              cfg.Port,
		APIKey:            cfg.APIKey,
		TrustedProxies:    cfg.TrustedProxies,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   cfg.RateLimitWindow,
		StaticDir:         cfg.StaticDir,
	}, services)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: publisher,
		DBPool:             pool,
	})
}
