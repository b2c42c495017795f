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
	"github.com/Lideeyah/Haid/internal/api/middleware"
	"github.com/Lideeyah/Haid/internal/api/server"
	"github.com/Lideeyah/Haid/internal/audit"
	"github.com/Lideeyah/Haid/internal/claim"
	"github.com/Lideeyah/Haid/internal/config"
	"github.com/Lideeyah/Haid/internal/identity"
	"github.com/Lideeyah/Haid/internal/logger"
	"github.com/Lideeyah/Haid/internal/messaging"
	"github.com/Lideeyah/Haid/internal/providers/jetstream"
	"github.com/Lideeyah/Haid/internal/registry"
	"github.com/Lideeyah/Haid/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Haid API")

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

	// Run schema migrations
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database schema", zap.Error(err))
	}

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
	logger.InfoCtx(ctx, "Initialized anchor client",
		zap.String("gateway_url", cfg.Anchor.GatewayURL),
		zap.String("topic_id", cfg.Anchor.TopicID),
	)

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
		logger.WarnCtx(ctx, "NATS URL not configured, ledger events will not be published")
	}
	defer publisher.Close()

	// Initialize core services
	issuer := identity.NewIssuer(dataStore, anchorClient, publisher, clock)
	eventRegistry := registry.NewRegistry(dataStore, clock)
	processor := claim.NewProcessor(dataStore, anchorClient, publisher, clock, jsonAdapter, canonical, cfg.Claim.WindowDuration)
	verifier := audit.NewVerifier(dataStore, anchorClient, jsonAdapter, clock)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, issuer, eventRegistry, processor, verifier)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
