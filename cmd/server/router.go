package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/flashdeck/internal/api"
	apiMiddleware "github.com/phrazzld/flashdeck/internal/api/middleware"
	"github.com/phrazzld/flashdeck/internal/web"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	flashcards := api.NewFlashcardHandler(app.deckService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/saveDeck", flashcards.SaveDeck)
		r.Post("/saveScore", flashcards.SaveScore)
		r.Get("/loadDeck", flashcards.LoadDeck)
		r.Get("/listDecks", flashcards.ListDecks)
		r.Get("/listScores", flashcards.ListScores)
		r.Post("/generateDeck", flashcards.GenerateDeck)
	})

	r.Get("/health", api.Health)
	r.Handle("/*", web.Handler())

	return r
}
