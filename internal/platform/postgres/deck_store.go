package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/store"
)

const (
	insertDeckQuery = `INSERT INTO decks (id, name, created_at) VALUES ($1, $2, $3)`
	insertCardQuery = `INSERT INTO deck_cards (deck_id, position, front, back) VALUES ($1, $2, $3, $4)`
	selectDeckQuery = `SELECT id, name, created_at FROM decks WHERE name = $1`
	selectCardQuery = `SELECT front, back FROM deck_cards WHERE deck_id = $1 ORDER BY position`
	listNamesQuery  = `SELECT name FROM decks ORDER BY seq`
)

// PostgresDeckStore implements store.DeckStore using PostgreSQL.
type PostgresDeckStore struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ store.DeckStore = (*PostgresDeckStore)(nil)

// NewPostgresDeckStore creates a deck store on db. The caller owns db.
// If logger is nil, the default logger is used.
func NewPostgresDeckStore(db *sql.DB, logger *slog.Logger) *PostgresDeckStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresDeckStore{
		db:     db,
		logger: logger.With(slog.String("component", "deck_store")),
	}
}

// Create implements store.DeckStore.Create. The deck row and its cards are
// written in one transaction.
func (s *PostgresDeckStore) Create(ctx context.Context, deck *domain.Deck) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := deck.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, insertDeckQuery, deck.ID, deck.Name, deck.CreatedAt); err != nil {
			return MapError(err)
		}
		return insertCards(ctx, tx, deck)
	})
	if err != nil {
		if !errors.Is(err, store.ErrDeckNameInUse) {
			log.Error("failed to create deck",
				slog.String("error", err.Error()),
				slog.String("deck_name", deck.Name))
		}
		return err
	}

	log.Debug("deck created",
		slog.String("deck_id", deck.ID.String()),
		slog.Int("card_count", len(deck.Cards)))
	return nil
}

// GetByName implements store.DeckStore.GetByName.
func (s *PostgresDeckStore) GetByName(ctx context.Context, name string) (*domain.Deck, error) {
	var deck domain.Deck
	err := s.db.QueryRowContext(ctx, selectDeckQuery, name).Scan(&deck.ID, &deck.Name, &deck.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrDeckNotFound
	}
	if err != nil {
		return nil, MapError(err)
	}

	deck.Cards, err = s.loadCards(ctx, s.db, deck.ID)
	if err != nil {
		return nil, err
	}
	return &deck, nil
}

// insertCards writes deck's cards in order.
func insertCards(ctx context.Context, q store.DBTX, deck *domain.Deck) error {
	for i, card := range deck.Cards {
		if _, err := q.ExecContext(ctx, insertCardQuery, deck.ID, i, card.Front, card.Back); err != nil {
			return MapError(err)
		}
	}
	return nil
}

func (s *PostgresDeckStore) loadCards(ctx context.Context, q store.DBTX, deckID uuid.UUID) ([]domain.Card, error) {
	rows, err := q.QueryContext(ctx, selectCardQuery, deckID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var cards []domain.Card
	for rows.Next() {
		var card domain.Card
		if err := rows.Scan(&card.Front, &card.Back); err != nil {
			return nil, MapError(err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return cards, nil
}

// ListNames implements store.DeckStore.ListNames.
func (s *PostgresDeckStore) ListNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, listNamesQuery)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, MapError(err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return names, nil
}
