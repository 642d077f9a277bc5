package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/store"
)

// ScoreStore keeps scores in an append-only slice.
type ScoreStore struct {
	mu     sync.RWMutex
	scores []domain.Score
	logger *slog.Logger
}

var _ store.ScoreStore = (*ScoreStore)(nil)

// NewScoreStore creates an empty in-memory score store.
func NewScoreStore(logger *slog.Logger) *ScoreStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScoreStore{
		logger: logger.With(slog.String("component", "memory_score_store")),
	}
}

// Create implements store.ScoreStore.Create.
func (s *ScoreStore) Create(ctx context.Context, score *domain.Score) error {
	if err := score.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	s.scores = append(s.scores, *score)
	count := len(s.scores)
	s.mu.Unlock()

	logger.FromContextOrDefault(ctx, s.logger).Debug("score stored",
		slog.String("score_id", score.ID.String()),
		slog.String("deck_name", score.DeckName),
		slog.Int("score_count", count))
	return nil
}

// List implements store.ScoreStore.List.
func (s *ScoreStore) List(ctx context.Context) ([]*domain.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scores := make([]*domain.Score, len(s.scores))
	for i := range s.scores {
		score := s.scores[i]
		scores[i] = &score
	}
	return scores, nil
}

// Reset removes every score.
func (s *ScoreStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores = nil
}
