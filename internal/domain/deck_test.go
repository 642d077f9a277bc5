package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	t.Parallel()

	cards := []Card{{Front: "hi", Back: "bye"}}
	deck, err := NewDeck("Zach", cards)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, deck.ID)
	assert.Equal(t, "Zach", deck.Name)
	assert.Equal(t, cards, deck.Cards)
	assert.False(t, deck.CreatedAt.IsZero())

	_, err = NewDeck("  ", cards)
	assert.ErrorIs(t, err, ErrDeckNameEmpty)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewDeck("Zach", nil)
	assert.ErrorIs(t, err, ErrDeckNoCards)
}
