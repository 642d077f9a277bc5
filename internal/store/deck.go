package store

import (
	"context"

	"github.com/phrazzld/flashdeck/internal/domain"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/phrazzld/flashdeck/internal/store DeckStore,ScoreStore

// DeckStore defines the interface for deck persistence.
type DeckStore interface {
	// Create saves a new deck.
	// Returns ErrDeckNameInUse if a deck with the same name already exists,
	// or an error wrapping ErrInvalidEntity if the deck fails validation.
	Create(ctx context.Context, deck *domain.Deck) error

	// GetByName retrieves a deck by its name.
	// Returns ErrDeckNotFound if the deck does not exist.
	GetByName(ctx context.Context, name string) (*domain.Deck, error)

	// ListNames returns the names of all decks in the order they were created.
	ListNames(ctx context.Context) ([]string, error)
}

// ScoreStore defines the interface for score persistence.
type ScoreStore interface {
	// Create appends a score.
	// Returns an error wrapping ErrInvalidEntity if the score fails validation.
	Create(ctx context.Context, score *domain.Score) error

	// List returns all scores in the order they were recorded.
	List(ctx context.Context) ([]*domain.Score, error)
}
