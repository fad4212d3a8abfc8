package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/threadchain/threadchain/internal/api"
	"github.com/threadchain/threadchain/internal/cache"
	"github.com/threadchain/threadchain/internal/feed"
	"github.com/threadchain/threadchain/internal/repository"
	"github.com/threadchain/threadchain/pkg/config"
	"github.com/threadchain/threadchain/pkg/logging"
	"github.com/threadchain/threadchain/pkg/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logging.InitLogger(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.GetLogger().Sync()

	logger := logging.GetLogger()
	logger.Info("Starting ThreadChain API Server")

	// Initialize telemetry
	telemetryShutdown, err := telemetry.Init(&cfg.Telemetry)
	if err != nil {
		logger.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer telemetryShutdown()

	// Initialize Redis cache (optional)
	redisCache, err := cache.New(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to initialize Redis cache", zap.Error(err))
	}
	if redisCache != nil {
		defer redisCache.Close()
	}

	// Build the remote post store
	remote, err := buildRemoteStore(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize remote store", zap.Error(err))
	}
	remote = repository.NewCachedStore(remote, redisCache)

	// Build the feed engine. The initial fetch falls back to seed data
	// if the remote store is unreachable or empty.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Remote.Timeout)
	engine := feed.NewEngine(ctx, feed.Options{
		Remote:         remote,
		Wallet:         staticWallet(cfg.Wallet.Address),
		SearchDebounce: cfg.Feed.SearchDebounce,
		TrendingLimit:  cfg.Feed.TrendingTagLimit,
	})
	cancel()

	logger.Info("Feed engine initialized",
		zap.String("data_source", string(engine.Store().DataSource())),
		zap.Int("posts", engine.Store().Len()))

	// Create Gin router
	if cfg.Logging.Level == "DEBUG" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	apiRouter := api.NewRouter(engine)
	apiRouter.SetupRoutes(router)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Server starting", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func buildRemoteStore(cfg *config.Config) (repository.RemoteStore, error) {
	switch cfg.Remote.Backend {
	case "postgres":
		db, err := repository.OpenDB(&cfg.Database, cfg.Logging.Level)
		if err != nil {
			return nil, err
		}
		return repository.NewPostgresStore(db, cfg.Remote.SearchLimit), nil
	default:
		client, err := repository.NewClient(&cfg.Remote)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

// staticWallet adapts a configured address to the engine's wallet
// interface. An empty address reads as disconnected.
type staticWallet string

func (w staticWallet) Connected() bool { return w != "" }
func (w staticWallet) Address() string { return string(w) }
