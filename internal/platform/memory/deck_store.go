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

// DeckStore keeps decks in a map keyed by name, plus the names in creation order.
type DeckStore struct {
	mu     sync.RWMutex
	decks  map[string]*domain.Deck
	order  []string
	logger *slog.Logger
}

var _ store.DeckStore = (*DeckStore)(nil)

// NewDeckStore creates an empty in-memory deck store.
// If logger is nil, a default logger will be used.
func NewDeckStore(logger *slog.Logger) *DeckStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeckStore{
		decks:  make(map[string]*domain.Deck),
		logger: logger.With(slog.String("component", "memory_deck_store")),
	}
}

// Create implements store.DeckStore.Create.
func (s *DeckStore) Create(ctx context.Context, deck *domain.Deck) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := deck.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.decks[deck.Name]; exists {
		log.Debug("deck name already in use", slog.String("deck_name", deck.Name))
		return store.ErrDeckNameInUse
	}

	s.decks[deck.Name] = cloneDeck(deck)
	s.order = append(s.order, deck.Name)

	log.Debug("deck stored",
		slog.String("deck_id", deck.ID.String()),
		slog.String("deck_name", deck.Name),
		slog.Int("card_count", len(deck.Cards)))
	return nil
}

// GetByName implements store.DeckStore.GetByName.
func (s *DeckStore) GetByName(ctx context.Context, name string) (*domain.Deck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deck, ok := s.decks[name]
	if !ok {
		return nil, store.ErrDeckNotFound
	}
	return cloneDeck(deck), nil
}

// ListNames implements store.DeckStore.ListNames.
func (s *DeckStore) ListNames(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.order))
	copy(names, s.order)
	return names, nil
}

// Reset removes every deck.
func (s *DeckStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decks = make(map[string]*domain.Deck)
	s.order = nil
}

// cloneDeck copies the card slice so callers cannot mutate stored state.
func cloneDeck(deck *domain.Deck) *domain.Deck {
	clone := *deck
	clone.Cards = make([]domain.Card, len(deck.Cards))
	copy(clone.Cards, deck.Cards)
	return &clone
}
