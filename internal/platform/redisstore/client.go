package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "flashdeck:"
	deckKeyPrefix = keyPrefix + "deck:"
	deckNamesKey  = keyPrefix + "decks"
	scoresKey     = keyPrefix + "scores"
)

// Config holds configuration for the Redis stores.
type Config struct {
	// RedisClient is the shared client; its lifecycle belongs to the caller.
	RedisClient *redis.Client
}

// NewClient creates a client for addr and checks that the server answers.
func NewClient(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("config cannot be nil")
	}
	if cfg.RedisClient == nil {
		return errors.New("redis client cannot be nil")
	}
	return nil
}

func deckKey(name string) string {
	return deckKeyPrefix + name
}
