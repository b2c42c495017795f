package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Lideeyah/Haid/internal/adapter"
	"github.com/Lideeyah/Haid/internal/anchor"
	"github.com/Lideeyah/Haid/internal/config"
	"github.com/Lideeyah/Haid/internal/logger"
	"github.com/Lideeyah/Haid/internal/messaging"
	"github.com/Lideeyah/Haid/internal/providers/jetstream"
	"github.com/Lideeyah/Haid/internal/store"
	"github.com/Lideeyah/Haid/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sweeper")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	canonical := adapter.NewJCS()
	mirrorClient := adapter.NewHTTPClient(cfg.Anchor.SubmitTimeout)

	// Initialize anchor client against the consensus gateway
	transport := anchor.NewRESTTransport(anchor.RESTConfig{
		GatewayURL:    cfg.Anchor.GatewayURL,
		MirrorURL:     cfg.Anchor.MirrorURL,
		TopicID:       cfg.Anchor.TopicID,
		SubmitTimeout: cfg.Anchor.SubmitTimeout,
	}, mirrorClient, jsonAdapter)
	anchorClient := anchor.NewClient(transport, jsonAdapter, canonical, cfg.Anchor.RetryPolicy())

	// Connect to NATS JetStream when configured, otherwise publish nowhere
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	} else {
		publisher = messaging.NewNoopPublisher()
		logger.WarnCtx(ctx, "NATS URL not configured, recovered claims will not be published")
	}
	defer publisher.Close()

	// Initialize stale claim sweeper
	sweeperConfig := &sweeper.StaleClaimSweeperConfig{
		BatchSize:      cfg.StaleClaimSweeper.BatchSize,
		WorkerPoolSize: cfg.StaleClaimSweeper.Worker.WorkerPoolSize,
		PendingTimeout: cfg.StaleClaimSweeper.PendingTimeout,
	}
	claimSweeper := sweeper.NewStaleClaimSweeper(sweeperConfig, dataStore, anchorClient, publisher, jsonAdapter, clock)

	logger.InfoCtx(ctx, "Initialized stale claim sweeper (continuous mode)",
		zap.Int("batch_size", cfg.StaleClaimSweeper.BatchSize),
		zap.Int("worker_pool_size", cfg.StaleClaimSweeper.Worker.WorkerPoolSize),
		zap.Duration("pending_timeout", cfg.StaleClaimSweeper.PendingTimeout),
	)

	// Start the sweeper in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := claimSweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweeper
	cancel()

	// Give the sweeper time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	if err := claimSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
