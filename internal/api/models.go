package api

import "github.com/phrazzld/flashdeck/internal/domain"

// SaveDeckRequest is the body of POST /api/saveDeck.
type SaveDeckRequest struct {
	Name  string        `json:"name"  validate:"notblank"`
	Value []domain.Card `json:"value" validate:"min=1"`
}

// SaveDeckResponse echoes the saved deck.
type SaveDeckResponse struct {
	Name  string        `json:"name"`
	Value []domain.Card `json:"value"`
}

// SaveScoreRequest is the body of POST /api/saveScore.
type SaveScoreRequest struct {
	Name       string `json:"name"       validate:"notblank"`
	DeckName   string `json:"deckName"   validate:"notblank"`
	Percentage int    `json:"percentage"`
}

// SaveScoreResponse echoes the saved score.
type SaveScoreResponse struct {
	Name       string `json:"name"`
	DeckName   string `json:"deckName"`
	Percentage int    `json:"percentage"`
}

// LoadDeckResponse is the body returned by GET /api/loadDeck.
type LoadDeckResponse struct {
	DeckName string        `json:"deckName"`
	Value    []domain.Card `json:"value"`
}

// ListDecksResponse is the body returned by GET /api/listDecks.
type ListDecksResponse struct {
	FlashcardDeckNames []string `json:"flashcardDeckNames"`
}

// ListScoresResponse is the body returned by GET /api/listScores.
// Each score encodes as [name, deckName, percentage].
type ListScoresResponse struct {
	Scores []*domain.Score `json:"scores"`
}

// GenerateDeckRequest is the body of POST /api/generateDeck.
type GenerateDeckRequest struct {
	Text string `json:"text" validate:"notblank"`
}

// GenerateDeckResponse carries generated cards, ready to be saved.
type GenerateDeckResponse struct {
	Value []domain.Card `json:"value"`
}
