package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashdeck/internal/config"
	"github.com/phrazzld/flashdeck/internal/platform/memory"
	"github.com/phrazzld/flashdeck/internal/platform/postgres"
	"github.com/phrazzld/flashdeck/internal/platform/redisstore"
	"github.com/phrazzld/flashdeck/internal/redact"
	"github.com/phrazzld/flashdeck/internal/store"
)

// storeBackend is the pair of stores for one configured backend. close is
// nil for the in-memory backend.
type storeBackend struct {
	decks  store.DeckStore
	scores store.ScoreStore
	close  func() error
}

// setupStores connects to the configured backend and returns its stores.
func setupStores(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (*storeBackend, error) {
	switch cfg.Backend {
	case config.BackendMemory, "":
		logger.Info("using in-memory store")
		return &storeBackend{
			decks:  memory.NewDeckStore(logger),
			scores: memory.NewScoreStore(logger),
		}, nil

	case config.BackendRedis:
		client, err := redisstore.NewClient(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		rcfg := &redisstore.Config{RedisClient: client}
		decks, err := redisstore.NewDeckStore(rcfg, logger)
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to create redis deck store: %w", err)
		}
		scores, err := redisstore.NewScoreStore(rcfg, logger)
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to create redis score store: %w", err)
		}
		logger.Info("using redis store", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
		return &storeBackend{decks: decks, scores: scores, close: client.Close}, nil

	case config.BackendPostgres:
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to %s: %w", redact.URL(cfg.DatabaseURL), err)
		}
		if err := postgres.Migrate(ctx, db, logger); err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Info("using postgres store", "database_url", redact.URL(cfg.DatabaseURL))
		return &storeBackend{
			decks:  postgres.NewPostgresDeckStore(db, logger),
			scores: postgres.NewPostgresScoreStore(db, logger),
			close:  db.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
