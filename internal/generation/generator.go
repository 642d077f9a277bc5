package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/phrazzld/flashdeck/internal/domain"
)

// Generator creates flashcards from text.
type Generator interface {
	// GenerateCards returns the cards generated from text, in the order the
	// model produced them. Errors wrap the sentinels in errors.go.
	GenerateCards(ctx context.Context, text string) ([]domain.Card, error)
}

// ValidateCards checks generated cards before they are handed back to
// callers: there must be at least one, and neither side may be blank.
// Surrounding whitespace is trimmed in place.
func ValidateCards(cards []domain.Card) error {
	if len(cards) == 0 {
		return fmt.Errorf("%w: no cards generated", ErrInvalidResponse)
	}
	for i := range cards {
		cards[i].Front = strings.TrimSpace(cards[i].Front)
		cards[i].Back = strings.TrimSpace(cards[i].Back)
		if cards[i].Front == "" || cards[i].Back == "" {
			return fmt.Errorf("%w: card %d has an empty side", ErrInvalidResponse, i+1)
		}
	}
	return nil
}
