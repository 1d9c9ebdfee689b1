package main

import (
	"context"
	"flag"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/artblock/gallery-reconciler/internal/adapter"
	"github.com/artblock/gallery-reconciler/internal/config"
	"github.com/artblock/gallery-reconciler/internal/ledger"
	"github.com/artblock/gallery-reconciler/internal/logger"
	"github.com/artblock/gallery-reconciler/internal/providers/jetstream"
	"github.com/artblock/gallery-reconciler/internal/store"
	"github.com/artblock/gallery-reconciler/internal/synchronizer"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSynchronizerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "synchronizer",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting event synchronizer")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize stores. The revenue writer only ever lives here; the API
	// process reads the same tables but never mutates financial fields.
	dataStore := store.NewPGStore(db)
	revenueWriter := store.NewRevenueWriter(db)

	// Connect to the ledger
	dialer := adapter.NewLedgerClientDialer()
	ledgerClient, err := dialer.Dial(ctx, cfg.Ledger.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to ledger", zap.Error(err), zap.String("rpc_url", cfg.Ledger.RPCURL))
	}
	defer ledgerClient.Close()
	logger.InfoCtx(ctx, "Connected to ledger", zap.String("rpc_url", cfg.Ledger.RPCURL))

	// Build the transaction signer. The synchronizer never sends
	// transactions itself, but the gateway requires one to construct.
	privateKey, err := crypto.HexToECDSA(cfg.Ledger.PrivateKey)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to parse signing key", zap.Error(err))
	}
	signer, err := bind.NewKeyedTransactorWithChainID(privateKey, big.NewInt(cfg.Ledger.ChainID))
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create transactor", zap.Error(err), zap.Int64("chain_id", cfg.Ledger.ChainID))
	}

	// Initialize clock adapter
	clock := adapter.NewClock()

	gateway, err := ledger.NewGateway(ledgerClient, signer, cfg.Ledger.FactoryAddress, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ledger gateway", zap.Error(err))
	}

	// Connect to NATS JetStream
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream(), adapter.NewJSON())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))

	// Initialize the synchronizer
	syncConfig := &synchronizer.Config{
		PollInterval:   cfg.Sync.PollInterval,
		BlockWindow:    cfg.Sync.BlockWindow,
		GalleryTimeout: cfg.Sync.GalleryTimeout,
		WorkerPoolSize: cfg.Sync.WorkerPoolSize,
	}
	eventSync := synchronizer.NewEventSynchronizer(syncConfig, dataStore, revenueWriter, gateway, publisher, clock)

	logger.InfoCtx(ctx, "Initialized event synchronizer",
		zap.Duration("poll_interval", syncConfig.PollInterval),
		zap.Uint64("block_window", syncConfig.BlockWindow),
		zap.Int("worker_pool_size", syncConfig.WorkerPoolSize),
	)

	// Start the synchronizer in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := eventSync.Start(ctx); err != nil {
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

	// Cancel context to stop the synchronizer
	cancel()

	// Give the synchronizer time to finish the in-progress cycle
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := eventSync.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Event synchronizer stopped")
}
