package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashdeck/internal/config"
	"github.com/phrazzld/flashdeck/internal/generation"
	"github.com/phrazzld/flashdeck/internal/platform/gemini"
	"github.com/phrazzld/flashdeck/internal/service"
	"github.com/phrazzld/flashdeck/internal/store"
)

// application holds the shared dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	deckStore  store.DeckStore
	scoreStore store.ScoreStore
	generator  generation.Generator

	deckService service.DeckService

	// closers release backend connections, in order, on shutdown.
	closers []func() error
}

// newApplication builds the stores, the optional generator and the services
// described by cfg.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	backend, err := setupStores(ctx, cfg.Store, logger)
	if err != nil {
		return nil, err
	}
	app.deckStore = backend.decks
	app.scoreStore = backend.scores
	if backend.close != nil {
		app.closers = append(app.closers, backend.close)
	}

	if cfg.LLM.GenerationEnabled() {
		gen, err := gemini.NewGenerator(ctx, logger.With("component", "llm_generator"), cfg.LLM)
		if err != nil {
			app.cleanup()
			return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
		}
		app.generator = gen
		logger.Info("LLM generator initialized", "model", cfg.LLM.ModelName)
	} else {
		logger.Info("no Gemini API key configured, deck generation disabled")
	}

	app.deckService, err = service.NewDeckService(app.deckStore, app.scoreStore, app.generator, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create deck service: %w", err)
	}

	logger.Info("application initialized", "store_backend", cfg.Store.Backend)
	return app, nil
}

// Run serves HTTP until ctx is cancelled.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases backend resources. It is safe to call more than once.
func (app *application) cleanup() {
	for _, closeFn := range app.closers {
		if err := closeFn(); err != nil {
			app.logger.Error("error closing store backend", "error", err)
		}
	}
	app.closers = nil
}
