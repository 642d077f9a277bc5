package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/store"
)

const (
	insertScoreQuery = `INSERT INTO scores (id, username, deck_name, percentage, created_at) VALUES ($1, $2, $3, $4, $5)`
	listScoresQuery  = `SELECT id, username, deck_name, percentage, created_at FROM scores ORDER BY seq`
)

// PostgresScoreStore implements store.ScoreStore using PostgreSQL.
type PostgresScoreStore struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ store.ScoreStore = (*PostgresScoreStore)(nil)

// NewPostgresScoreStore creates a score store on db.
func NewPostgresScoreStore(db *sql.DB, logger *slog.Logger) *PostgresScoreStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresScoreStore{
		db:     db,
		logger: logger.With(slog.String("component", "score_store")),
	}
}

// Create implements store.ScoreStore.Create.
func (s *PostgresScoreStore) Create(ctx context.Context, score *domain.Score) error {
	if err := score.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx, insertScoreQuery,
		score.ID, score.Username, score.DeckName, score.Percentage, score.CreatedAt)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to create score",
			slog.String("error", err.Error()),
			slog.String("score_id", score.ID.String()))
		return MapError(err)
	}
	return nil
}

// List implements store.ScoreStore.List.
func (s *PostgresScoreStore) List(ctx context.Context) ([]*domain.Score, error) {
	rows, err := s.db.QueryContext(ctx, listScoresQuery)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	scores := []*domain.Score{}
	for rows.Next() {
		var score domain.Score
		if err := rows.Scan(&score.ID, &score.Username, &score.DeckName, &score.Percentage, &score.CreatedAt); err != nil {
			return nil, MapError(err)
		}
		scores = append(scores, &score)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return scores, nil
}
