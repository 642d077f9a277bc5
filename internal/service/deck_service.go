package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/generation"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/store"
)

// DeckService provides deck and score operations.
type DeckService interface {
	// SaveDeck creates a deck. Returns ErrDeckNameInUse if the name is taken.
	SaveDeck(ctx context.Context, name string, cards []domain.Card) (*domain.Deck, error)

	// LoadDeck returns the deck with the given name, or ErrDeckNotFound.
	LoadDeck(ctx context.Context, name string) (*domain.Deck, error)

	// ListDeckNames returns deck names in creation order.
	ListDeckNames(ctx context.Context) ([]string, error)

	// SaveScore records a score. The deck does not have to exist.
	SaveScore(ctx context.Context, username, deckName string, percentage int) (*domain.Score, error)

	// ListScores returns scores in recording order.
	ListScores(ctx context.Context) ([]*domain.Score, error)

	// GenerateCards asks the configured generator for cards built from text.
	// Returns ErrGenerationUnavailable when there is no generator.
	GenerateCards(ctx context.Context, text string) ([]domain.Card, error)
}

type deckServiceImpl struct {
	decks     store.DeckStore
	scores    store.ScoreStore
	generator generation.Generator
	logger    *slog.Logger
}

// NewDeckService creates a DeckService. generator may be nil, which
// disables GenerateCards.
func NewDeckService(
	decks store.DeckStore,
	scores store.ScoreStore,
	generator generation.Generator,
	logger *slog.Logger,
) (DeckService, error) {
	if decks == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "deck store cannot be nil"}
	}
	if scores == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "score store cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &deckServiceImpl{
		decks:     decks,
		scores:    scores,
		generator: generator,
		logger:    logger.With(slog.String("component", "deck_service")),
	}, nil
}

func (s *deckServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

// SaveDeck implements DeckService.
func (s *deckServiceImpl) SaveDeck(ctx context.Context, name string, cards []domain.Card) (*domain.Deck, error) {
	deck, err := domain.NewDeck(name, cards)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.decks.Create(ctx, deck); err != nil {
		if !errors.Is(err, store.ErrDeckNameInUse) {
			s.log(ctx).Error("failed to save deck",
				slog.String("error", err.Error()),
				slog.String("deck_name", name))
		}
		return nil, NewServiceError("save_deck", "failed to save deck", err)
	}

	s.log(ctx).Info("deck saved",
		slog.String("deck_id", deck.ID.String()),
		slog.String("deck_name", deck.Name),
		slog.Int("card_count", len(deck.Cards)))
	return deck, nil
}

// LoadDeck implements DeckService.
func (s *deckServiceImpl) LoadDeck(ctx context.Context, name string) (*domain.Deck, error) {
	deck, err := s.decks.GetByName(ctx, name)
	if err != nil {
		if !errors.Is(err, store.ErrDeckNotFound) {
			s.log(ctx).Error("failed to load deck",
				slog.String("error", err.Error()),
				slog.String("deck_name", name))
		}
		return nil, NewServiceError("load_deck", "failed to load deck", err)
	}
	return deck, nil
}

// ListDeckNames implements DeckService.
func (s *deckServiceImpl) ListDeckNames(ctx context.Context) ([]string, error) {
	names, err := s.decks.ListNames(ctx)
	if err != nil {
		s.log(ctx).Error("failed to list decks", slog.String("error", err.Error()))
		return nil, NewServiceError("list_decks", "failed to list decks", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// SaveScore implements DeckService.
func (s *deckServiceImpl) SaveScore(
	ctx context.Context,
	username, deckName string,
	percentage int,
) (*domain.Score, error) {
	score, err := domain.NewScore(username, deckName, percentage)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.scores.Create(ctx, score); err != nil {
		s.log(ctx).Error("failed to save score",
			slog.String("error", err.Error()),
			slog.String("deck_name", deckName))
		return nil, NewServiceError("save_score", "failed to save score", err)
	}

	s.log(ctx).Info("score saved",
		slog.String("score_id", score.ID.String()),
		slog.String("deck_name", score.DeckName),
		slog.Int("percentage", score.Percentage))
	return score, nil
}

// ListScores implements DeckService.
func (s *deckServiceImpl) ListScores(ctx context.Context) ([]*domain.Score, error) {
	scores, err := s.scores.List(ctx)
	if err != nil {
		s.log(ctx).Error("failed to list scores", slog.String("error", err.Error()))
		return nil, NewServiceError("list_scores", "failed to list scores", err)
	}
	if scores == nil {
		scores = []*domain.Score{}
	}
	return scores, nil
}

// GenerateCards implements DeckService.
func (s *deckServiceImpl) GenerateCards(ctx context.Context, text string) ([]domain.Card, error) {
	if s.generator == nil {
		return nil, ErrGenerationUnavailable
	}

	cards, err := s.generator.GenerateCards(ctx, text)
	if err != nil {
		s.log(ctx).Warn("card generation failed", slog.String("error", err.Error()))
		return nil, NewServiceError("generate_cards", "failed to generate cards", err)
	}
	return cards, nil
}
