package generation_test

import (
	"testing"

	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCards(t *testing.T) {
	t.Parallel()

	t.Run("trims sides", func(t *testing.T) {
		cards := []domain.Card{{Front: " q ", Back: "a\n"}}
		require.NoError(t, generation.ValidateCards(cards))
		assert.Equal(t, domain.Card{Front: "q", Back: "a"}, cards[0])
	})

	t.Run("no cards", func(t *testing.T) {
		err := generation.ValidateCards(nil)
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("blank side", func(t *testing.T) {
		err := generation.ValidateCards([]domain.Card{{Front: "q", Back: "a"}, {Front: "  ", Back: "b"}})
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
		assert.Contains(t, err.Error(), "card 2")
	})
}
