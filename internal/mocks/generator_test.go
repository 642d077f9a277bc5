package mocks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/mocks"
	"github.com/stretchr/testify/assert"
)

func TestMockGenerator(t *testing.T) {
	t.Parallel()

	m := &mocks.MockGenerator{Cards: []domain.Card{{Front: "q", Back: "a"}}}
	cards, err := m.GenerateCards(context.Background(), "first")
	assert.NoError(t, err)
	assert.Len(t, cards, 1)

	want := errors.New("boom")
	m.GenerateCardsFn = func(ctx context.Context, text string) ([]domain.Card, error) {
		return nil, want
	}
	_, err = m.GenerateCards(context.Background(), "second")
	assert.ErrorIs(t, err, want)

	assert.Equal(t, []string{"first", "second"}, m.Calls())
}
