package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/flashdeck/internal/api"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/mocks"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/platform/memory"
	"github.com/phrazzld/flashdeck/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	url    string
	svc    service.DeckService
	scores *memory.ScoreStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log, _ := logger.NewTestLogger()
	scores := memory.NewScoreStore(log)
	gen := &mocks.MockGenerator{Cards: []domain.Card{{Front: "Q1", Back: "A1"}, {Front: "Q2", Back: "A2"}}}
	svc, err := service.NewDeckService(memory.NewDeckStore(log), scores, gen, log)
	require.NoError(t, err)

	h := api.NewFlashcardHandler(svc)
	r := chi.NewRouter()
	r.Post("/api/saveDeck", h.SaveDeck)
	r.Post("/api/saveScore", h.SaveScore)
	r.Get("/api/loadDeck", h.LoadDeck)
	r.Get("/api/listDecks", h.ListDecks)
	r.Get("/api/listScores", h.ListScores)
	r.Post("/api/generateDeck", h.GenerateDeck)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return &testEnv{url: server.URL, svc: svc, scores: scores}
}

func (e *testEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--server", e.url}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func (e *testEnv) seedDeck(t *testing.T, name string, cards ...domain.Card) {
	t.Helper()
	_, err := e.svc.SaveDeck(context.Background(), name, cards)
	require.NoError(t, err)
}

func TestDecksAndScores(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "", "decks")
	require.NoError(t, err)
	assert.Empty(t, out)

	env.seedDeck(t, "Zach", domain.Card{Front: "hi", Back: "bye"})
	env.seedDeck(t, "Bob", domain.Card{Front: "a", Back: "b"})
	_, err = env.svc.SaveScore(context.Background(), "h", "g", 5)
	require.NoError(t, err)
	_, err = env.svc.SaveScore(context.Background(), "a", "b", 2)
	require.NoError(t, err)

	out, err = env.run(t, "", "decks")
	require.NoError(t, err)
	assert.Equal(t, "Zach\nBob\n", out)

	out, err = env.run(t, "", "scores")
	require.NoError(t, err)
	assert.Equal(t, "h,g: 5%\na,b: 2%\n", out)
}

func TestServerFromEnvironment(t *testing.T) {
	env := newTestEnv(t)
	env.seedDeck(t, "Zach", domain.Card{Front: "hi", Back: "bye"})
	t.Setenv("FLASHDECK_SERVER", env.url)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"decks"})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Zach\n", out.String())
}

func TestShow(t *testing.T) {
	env := newTestEnv(t)
	env.seedDeck(t, "Zach", domain.Card{Front: "hi", Back: "bye"}, domain.Card{Front: "h", Back: "b"})

	out, err := env.run(t, "", "show", "Zach")
	require.NoError(t, err)
	assert.Equal(t, "hi|bye\nh|b\n", out)

	_, err = env.run(t, "", "show", "kid")
	assert.EqualError(t, err, "/api/loadDeck returned 404: no file by that name was found")
}

func TestCreate(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "hi | bye\n\nh|b\n", "create", "Zach")
	require.NoError(t, err)
	assert.Equal(t, "Saved deck Zach (2 cards)\n", out)

	cards, err := env.svc.LoadDeck(context.Background(), "Zach")
	require.NoError(t, err)
	assert.Equal(t, []domain.Card{{Front: "hi", Back: "bye"}, {Front: "h", Back: "b"}}, cards.Cards)

	path := filepath.Join(t.TempDir(), "bob.txt")
	require.NoError(t, os.WriteFile(path, []byte("a|b\nc|d"), 0o600))
	out, err = env.run(t, "", "create", "Bob", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "Saved deck Bob (2 cards)\n", out)

	tests := []struct {
		name    string
		deck    string
		stdin   string
		message string
	}{
		{"blank name", " ", "a|b", "No flashdeck name! Please try again."},
		{"existing name", "Zach", "a|b", "Flashdeck name already exists! Please try again."},
		{"empty data", "Kelsey", " \n ", "Flashcard data is empty! Please try again."},
		{"missing separator", "Kelsey", "1|a\n2 b", "Line 2 does not contain |. Please try again."},
		{"extra separator", "Kelsey", "1|a|x", "Line 1 contains more than one |. Please try again."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.run(t, tc.stdin, "create", tc.deck)
			assert.EqualError(t, err, tc.message)
		})
	}
}

func TestPractice(t *testing.T) {
	t.Run("records the score", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedDeck(t, "Zach", domain.Card{Front: "hi", Back: "bye"}, domain.Card{Front: "h", Back: "b"})

		out, err := env.run(t, "f\nc\ni\n", "practice", "Zach", "--user", "kid")
		require.NoError(t, err)
		assert.Contains(t, out, "[front] hi")
		assert.Contains(t, out, "[back] bye")
		assert.Contains(t, out, "[front] h\n")
		assert.Contains(t, out, "End of Quiz")
		assert.True(t, strings.HasSuffix(out, "kid,Zach: 50%\n"), out)

		scores, err := env.scores.List(context.Background())
		require.NoError(t, err)
		require.Len(t, scores, 1)
		assert.Equal(t, 50, scores[0].Percentage)
	})

	t.Run("asks for a name", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedDeck(t, "Zach", domain.Card{Front: "hi", Back: "bye"})

		out, err := env.run(t, "x\nr\nc\n\nkid\n", "practice", "Zach")
		require.NoError(t, err)
		assert.Contains(t, out, practiceHelp)
		assert.Contains(t, out, "No username provided! Please try again.")
		assert.True(t, strings.HasSuffix(out, "kid,Zach: 100%\n"), out)
	})

	t.Run("quit saves nothing", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedDeck(t, "Zach", domain.Card{Front: "hi", Back: "bye"})

		out, err := env.run(t, "q\n", "practice", "Zach", "--user", "kid")
		require.NoError(t, err)
		assert.Contains(t, out, "no score saved")

		scores, err := env.scores.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, scores)
	})

	t.Run("input closed", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedDeck(t, "Zach", domain.Card{Front: "hi", Back: "bye"})

		_, err := env.run(t, "", "practice", "Zach", "--user", "kid")
		assert.ErrorContains(t, err, "input closed")
	})
}

func TestGenerate(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "some notes", "generate", "Gen")
	require.NoError(t, err)
	assert.Equal(t, "Q1|A1\nQ2|A2\n", out)

	_, err = env.svc.LoadDeck(context.Background(), "Gen")
	assert.Error(t, err)

	out, err = env.run(t, "some notes", "generate", "Gen", "--save")
	require.NoError(t, err)
	assert.Equal(t, "Q1|A1\nQ2|A2\nSaved deck Gen (2 cards)\n", out)

	deck, err := env.svc.LoadDeck(context.Background(), "Gen")
	require.NoError(t, err)
	assert.Len(t, deck.Cards, 2)
}
