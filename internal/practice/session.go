// Package practice runs a practice pass over a deck: one card at a time,
// front first, with the user marking each card correct or incorrect.
package practice

import (
	"errors"
	"strings"

	"github.com/phrazzld/flashdeck/internal/domain"
)

var (
	// ErrEmptyDeck is returned when practicing a deck without cards.
	ErrEmptyDeck = errors.New("deck has no cards to practice")

	// ErrFinished is returned when a card action is taken after the last card.
	ErrFinished = errors.New("practice session is finished")

	// ErrNotFinished is returned when finishing before every card is answered.
	ErrNotFinished = errors.New("practice session is not finished")

	// ErrUsernameRequired is returned when finishing without a username.
	ErrUsernameRequired = errors.New("No username provided! Please try again.")
)

// Session tracks progress through a deck. It is not safe for concurrent use.
type Session struct {
	deckName  string
	cards     []domain.Card
	correct   int
	incorrect int
	front     bool
}

// NewSession starts a session over deck.
func NewSession(deck *domain.Deck) (*Session, error) {
	if deck == nil || len(deck.Cards) == 0 {
		return nil, ErrEmptyDeck
	}
	cards := make([]domain.Card, len(deck.Cards))
	copy(cards, deck.Cards)
	return &Session{deckName: deck.Name, cards: cards, front: true}, nil
}

// DeckName returns the name of the deck being practiced.
func (s *Session) DeckName() string { return s.deckName }

// CorrectCount returns the number of cards marked correct.
func (s *Session) CorrectCount() int { return s.correct }

// IncorrectCount returns the number of cards marked incorrect.
func (s *Session) IncorrectCount() int { return s.incorrect }

// Total returns the number of cards in the deck.
func (s *Session) Total() int { return len(s.cards) }

// Position returns the zero-based index of the current card.
func (s *Session) Position() int { return s.correct + s.incorrect }

// Practicing reports whether cards remain to be answered.
func (s *Session) Practicing() bool { return s.Position() < len(s.cards) }

// ShowingFront reports whether the current card shows its front.
func (s *Session) ShowingFront() bool { return s.front }

// Current returns the visible side of the current card.
func (s *Session) Current() (string, error) {
	if !s.Practicing() {
		return "", ErrFinished
	}
	card := s.cards[s.Position()]
	if s.front {
		return card.Front, nil
	}
	return card.Back, nil
}

// Flip turns the current card over.
func (s *Session) Flip() error {
	if !s.Practicing() {
		return ErrFinished
	}
	s.front = !s.front
	return nil
}

// Correct marks the current card correct and moves to the next one.
func (s *Session) Correct() error {
	if !s.Practicing() {
		return ErrFinished
	}
	s.correct++
	s.front = true
	return nil
}

// Incorrect marks the current card incorrect and moves to the next one.
func (s *Session) Incorrect() error {
	if !s.Practicing() {
		return ErrFinished
	}
	s.incorrect++
	s.front = true
	return nil
}

// Reset clears progress and starts again from the first card.
func (s *Session) Reset() {
	s.correct = 0
	s.incorrect = 0
	s.front = true
}

// Percentage returns the rounded share of cards marked correct so far.
func (s *Session) Percentage() int {
	return domain.CalculatePercentage(s.correct, s.incorrect)
}

// Finish builds the score for username once every card is answered.
func (s *Session) Finish(username string) (*domain.Score, error) {
	if s.Practicing() {
		return nil, ErrNotFinished
	}
	if strings.TrimSpace(username) == "" {
		return nil, ErrUsernameRequired
	}
	return domain.NewScore(username, s.deckName, s.Percentage())
}
