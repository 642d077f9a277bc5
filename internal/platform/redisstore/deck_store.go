package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/store"
	"github.com/redis/go-redis/v9"
)

// createDeckScript claims the deck key and records the name in one step,
// so concurrent creators cannot both append the same name.
var createDeckScript = redis.NewScript(`
if redis.call("SETNX", KEYS[1], ARGV[1]) == 1 then
	redis.call("RPUSH", KEYS[2], ARGV[2])
	return 1
end
return 0
`)

// DeckStore implements store.DeckStore on Redis.
type DeckStore struct {
	client *redis.Client
	logger *slog.Logger
}

var _ store.DeckStore = (*DeckStore)(nil)

// NewDeckStore creates a Redis-backed deck store.
func NewDeckStore(cfg *Config, logger *slog.Logger) (*DeckStore, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DeckStore{
		client: cfg.RedisClient,
		logger: logger.With(slog.String("component", "redis_deck_store")),
	}, nil
}

// Create implements store.DeckStore.Create.
func (s *DeckStore) Create(ctx context.Context, deck *domain.Deck) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := deck.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	data, err := json.Marshal(deck)
	if err != nil {
		return fmt.Errorf("failed to marshal deck: %w", err)
	}

	created, err := createDeckScript.Run(ctx, s.client,
		[]string{deckKey(deck.Name), deckNamesKey},
		data, deck.Name,
	).Int()
	if err != nil {
		log.Error("failed to create deck",
			slog.String("error", err.Error()),
			slog.String("deck_name", deck.Name))
		return store.NewStoreError("deck", "create", "redis script failed", err)
	}
	if created == 0 {
		return store.ErrDeckNameInUse
	}

	log.Debug("deck stored",
		slog.String("deck_id", deck.ID.String()),
		slog.String("deck_name", deck.Name))
	return nil
}

// GetByName implements store.DeckStore.GetByName.
func (s *DeckStore) GetByName(ctx context.Context, name string) (*domain.Deck, error) {
	data, err := s.client.Get(ctx, deckKey(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, store.ErrDeckNotFound
	}
	if err != nil {
		return nil, store.NewStoreError("deck", "get", "redis get failed", err)
	}

	var deck domain.Deck
	if err := json.Unmarshal(data, &deck); err != nil {
		return nil, store.NewStoreError("deck", "get", "stored deck is corrupt", err)
	}
	return &deck, nil
}

// ListNames implements store.DeckStore.ListNames.
func (s *DeckStore) ListNames(ctx context.Context) ([]string, error) {
	names, err := s.client.LRange(ctx, deckNamesKey, 0, -1).Result()
	if err != nil {
		return nil, store.NewStoreError("deck", "list", "redis lrange failed", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
