package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/generation"
)

// MockGenerator implements generation.Generator for testing.
type MockGenerator struct {
	// GenerateCardsFn overrides the canned Cards/Err result when set.
	GenerateCardsFn func(ctx context.Context, text string) ([]domain.Card, error)

	Cards []domain.Card
	Err   error

	mu    sync.Mutex
	texts []string
}

var _ generation.Generator = (*MockGenerator)(nil)

// GenerateCards implements generation.Generator.
func (m *MockGenerator) GenerateCards(ctx context.Context, text string) ([]domain.Card, error) {
	m.mu.Lock()
	m.texts = append(m.texts, text)
	m.mu.Unlock()

	if m.GenerateCardsFn != nil {
		return m.GenerateCardsFn(ctx, text)
	}
	return m.Cards, m.Err
}

// Calls returns the texts passed to GenerateCards, in call order.
func (m *MockGenerator) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.texts...)
}
