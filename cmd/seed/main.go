package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/threadchain/threadchain/internal/feed"
	"github.com/threadchain/threadchain/internal/repository"
	"github.com/threadchain/threadchain/pkg/config"
	"github.com/threadchain/threadchain/pkg/logging"
)

// Seeds the postgres backend with the built-in demo dataset so a fresh
// deployment serves the same posts the engine falls back to locally.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logging.InitLogger(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.GetLogger().Sync()

	logger := logging.GetLogger()
	logger.Info("Seeding ThreadChain database")

	db, err := repository.OpenDB(&cfg.Database, cfg.Logging.Level)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := repository.Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := feed.SeedUsers()
	posts := feed.SeedPosts()
	if err := repository.Provision(ctx, db, users, posts); err != nil {
		logger.Fatal("Failed to provision seed data", zap.Error(err))
	}

	logger.Info("Seed data provisioned",
		zap.Int("users", len(users)),
		zap.Int("posts", len(posts)))
}
