//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/platform/postgres"
	"github.com/phrazzld/flashdeck/internal/store"
	"github.com/phrazzld/flashdeck/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = 10 * time.Second

func TestPostgresStores_Integration(t *testing.T) {
	db := testdb.Open(t)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	decks := postgres.NewPostgresDeckStore(db, nil)
	scores := postgres.NewPostgresScoreStore(db, nil)

	deck, err := domain.NewDeck("Zach", []domain.Card{{Front: "hi", Back: "bye"}, {Front: "h", Back: "b"}})
	require.NoError(t, err)
	require.NoError(t, decks.Create(ctx, deck))

	dup, err := domain.NewDeck("Zach", []domain.Card{{Front: "x", Back: "y"}})
	require.NoError(t, err)
	assert.ErrorIs(t, decks.Create(ctx, dup), store.ErrDeckNameInUse)

	got, err := decks.GetByName(ctx, "Zach")
	require.NoError(t, err)
	assert.Equal(t, deck.Cards, got.Cards)

	_, err = decks.GetByName(ctx, "kid")
	assert.ErrorIs(t, err, store.ErrDeckNotFound)

	second, err := domain.NewDeck("Bob", []domain.Card{{Front: "a", Back: "b"}})
	require.NoError(t, err)
	require.NoError(t, decks.Create(ctx, second))

	names, err := decks.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Zach", "Bob"}, names)

	score, err := domain.NewScore("h", "g", 5)
	require.NoError(t, err)
	require.NoError(t, scores.Create(ctx, score))

	list, err := scores.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "h", list[0].Username)
}

func TestPercentageCheckConstraint_Integration(t *testing.T) {
	db := testdb.Open(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()

		_, err := tx.ExecContext(ctx,
			`INSERT INTO scores (id, username, deck_name, percentage, created_at) VALUES ($1, $2, $3, $4, $5)`,
			uuid.New(), "h", "g", 101, time.Now().UTC())
		require.Error(t, err)
		assert.ErrorIs(t, postgres.MapError(err), store.ErrInvalidEntity)
	})
}
