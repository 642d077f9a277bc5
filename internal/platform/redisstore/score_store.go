package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/store"
	"github.com/redis/go-redis/v9"
)

// scoreRecord is the stored form of a score. The API tuple form drops the
// ID and timestamp, so it is not used here.
type scoreRecord struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	DeckName   string    `json:"deck_name"`
	Percentage int       `json:"percentage"`
	CreatedAt  time.Time `json:"created_at"`
}

// ScoreStore implements store.ScoreStore on Redis.
type ScoreStore struct {
	client *redis.Client
	logger *slog.Logger
}

var _ store.ScoreStore = (*ScoreStore)(nil)

// NewScoreStore creates a Redis-backed score store.
func NewScoreStore(cfg *Config, logger *slog.Logger) (*ScoreStore, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ScoreStore{
		client: cfg.RedisClient,
		logger: logger.With(slog.String("component", "redis_score_store")),
	}, nil
}

// Create implements store.ScoreStore.Create.
func (s *ScoreStore) Create(ctx context.Context, score *domain.Score) error {
	if err := score.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	data, err := json.Marshal(scoreRecord{
		ID:         score.ID,
		Username:   score.Username,
		DeckName:   score.DeckName,
		Percentage: score.Percentage,
		CreatedAt:  score.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal score: %w", err)
	}

	if err := s.client.RPush(ctx, scoresKey, data).Err(); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to store score",
			slog.String("error", err.Error()),
			slog.String("score_id", score.ID.String()))
		return store.NewStoreError("score", "create", "redis rpush failed", err)
	}
	return nil
}

// List implements store.ScoreStore.List.
func (s *ScoreStore) List(ctx context.Context) ([]*domain.Score, error) {
	items, err := s.client.LRange(ctx, scoresKey, 0, -1).Result()
	if err != nil {
		return nil, store.NewStoreError("score", "list", "redis lrange failed", err)
	}

	scores := make([]*domain.Score, 0, len(items))
	for _, item := range items {
		var rec scoreRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, store.NewStoreError("score", "list", "stored score is corrupt", err)
		}
		scores = append(scores, &domain.Score{
			ID:         rec.ID,
			Username:   rec.Username,
			DeckName:   rec.DeckName,
			Percentage: rec.Percentage,
			CreatedAt:  rec.CreatedAt,
		})
	}
	return scores, nil
}
