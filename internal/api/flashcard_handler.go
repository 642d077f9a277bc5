package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/flashdeck/internal/api/shared"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/service"
)

// FlashcardHandler serves the deck and score endpoints.
type FlashcardHandler struct {
	decks service.DeckService
}

// NewFlashcardHandler creates a FlashcardHandler.
func NewFlashcardHandler(decks service.DeckService) *FlashcardHandler {
	return &FlashcardHandler{decks: decks}
}

// SaveDeck handles POST /api/saveDeck.
func (h *FlashcardHandler) SaveDeck(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodeObject(w, r)
	if !ok {
		return
	}

	var req SaveDeckRequest
	var err error
	if req.Name, err = fields.String("name"); err != nil {
		respondWithArgumentError(w, r, err)
		return
	}
	if err = fields.Decode("value", &req.Value, shared.ProblemNotCardList); err != nil {
		respondWithArgumentError(w, r, err)
		return
	}
	if err = shared.ValidateRequest(req); err != nil {
		respondWithArgumentError(w, r, err)
		return
	}

	deck, err := h.decks.SaveDeck(r.Context(), req.Name, req.Value)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SaveDeckResponse{
		Name:  deck.Name,
		Value: cardsOrEmpty(deck.Cards),
	})
}

// SaveScore handles POST /api/saveScore.
func (h *FlashcardHandler) SaveScore(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodeObject(w, r)
	if !ok {
		return
	}

	var req SaveScoreRequest
	var err error
	if req.Name, err = fields.String("name"); err != nil {
		respondWithArgumentError(w, r, err)
		return
	}
	if req.DeckName, err = fields.String("deckName"); err != nil {
		respondWithArgumentError(w, r, err)
		return
	}
	if req.Percentage, err = fields.IntInRange("percentage",
		domain.MinPercentage, domain.MaxPercentage, shared.ProblemNotPercentage); err != nil {
		respondWithArgumentError(w, r, err)
		return
	}
	if err = shared.ValidateRequest(req); err != nil {
		respondWithArgumentError(w, r, err)
		return
	}

	score, err := h.decks.SaveScore(r.Context(), req.Name, req.DeckName, req.Percentage)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SaveScoreResponse{
		Name:       score.Username,
		DeckName:   score.DeckName,
		Percentage: score.Percentage,
	})
}

// LoadDeck handles GET /api/loadDeck?deckName=NAME. Only the first
// deckName value is used.
func (h *FlashcardHandler) LoadDeck(w http.ResponseWriter, r *http.Request) {
	values, ok := r.URL.Query()["deckName"]
	if !ok || len(values) == 0 {
		// The message names "name" rather than "deckName"; clients match on it.
		respondWithArgumentError(w, r, shared.NewArgumentError("name", shared.ProblemMissing))
		return
	}
	name := values[0]

	deck, err := h.decks.LoadDeck(r.Context(), name)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoadDeckResponse{
		DeckName: name,
		Value:    cardsOrEmpty(deck.Cards),
	})
}

// ListDecks handles GET /api/listDecks.
func (h *FlashcardHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	names, err := h.decks.ListDeckNames(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ListDecksResponse{FlashcardDeckNames: names})
}

// ListScores handles GET /api/listScores.
func (h *FlashcardHandler) ListScores(w http.ResponseWriter, r *http.Request) {
	scores, err := h.decks.ListScores(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ListScoresResponse{Scores: scores})
}

// GenerateDeck handles POST /api/generateDeck. The generated cards are
// returned, not saved; clients save them with saveDeck.
func (h *FlashcardHandler) GenerateDeck(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodeObject(w, r)
	if !ok {
		return
	}

	var req GenerateDeckRequest
	var err error
	if req.Text, err = fields.String("text"); err != nil {
		respondWithArgumentError(w, r, err)
		return
	}
	if err = shared.ValidateRequest(req); err != nil {
		respondWithArgumentError(w, r, err)
		return
	}

	cards, err := h.decks.GenerateCards(r.Context(), req.Text)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondWithArgumentError(w, r, shared.NewArgumentError("text", shared.ProblemEmpty))
			return
		}
		respondWithServiceError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("deck generated", slog.Int("card_count", len(cards)))
	shared.RespondWithJSON(w, r, http.StatusOK, GenerateDeckResponse{Value: cards})
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func decodeObject(w http.ResponseWriter, r *http.Request) (shared.Fields, bool) {
	fields, err := shared.DecodeObject(w, r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, shared.ErrNotObject.Error(), err)
		return nil, false
	}
	return fields, true
}

func respondWithArgumentError(w http.ResponseWriter, r *http.Request, err error) {
	var argErr *shared.ArgumentError
	if errors.As(err, &argErr) {
		shared.RespondWithError(w, r, http.StatusBadRequest, argErr.Error())
		return
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidInput, err)
}

func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// cardsOrEmpty keeps JSON output an array when a deck has no cards.
func cardsOrEmpty(cards []domain.Card) []domain.Card {
	if cards == nil {
		return []domain.Card{}
	}
	return cards
}
