package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Deck-specific validation errors
var (
	// ErrDeckNameEmpty is returned when a deck has no name.
	ErrDeckNameEmpty = fmt.Errorf("%w: deck name cannot be empty", ErrValidation)

	// ErrDeckNoCards is returned when a deck has no cards.
	ErrDeckNoCards = fmt.Errorf("%w: deck must contain at least one card", ErrValidation)
)

// Deck is a named, ordered collection of flashcards.
type Deck struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Cards     []Card    `json:"cards"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDeck creates a new Deck with a fresh ID and creation timestamp.
// Returns an error if validation fails.
func NewDeck(name string, cards []Card) (*Deck, error) {
	deck := &Deck{
		ID:        uuid.New(),
		Name:      name,
		Cards:     cards,
		CreatedAt: time.Now().UTC(),
	}

	if err := deck.Validate(); err != nil {
		return nil, err
	}

	return deck, nil
}

// Validate checks if the Deck has valid data.
func (d *Deck) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrDeckNameEmpty
	}

	if len(d.Cards) == 0 {
		return ErrDeckNoCards
	}

	return nil
}
