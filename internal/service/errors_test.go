package service

import (
	"errors"
	"testing"

	"github.com/phrazzld/flashdeck/internal/generation"
	"github.com/phrazzld/flashdeck/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestNewServiceError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NewServiceError("op", "msg", nil))
	assert.Equal(t, ErrDeckNotFound, NewServiceError("op", "msg", store.ErrDeckNotFound))
	assert.Equal(t, ErrDeckNameInUse, NewServiceError("op", "msg", store.ErrDeckNameInUse))
	assert.ErrorIs(t, NewServiceError("op", "msg", store.ErrInvalidEntity), ErrInvalidInput)
	assert.ErrorIs(t, NewServiceError("op", "msg", generation.ErrTransientFailure), ErrGenerationFailed)

	cause := errors.New("disk full")
	err := NewServiceError("save_score", "failed to save score", cause)
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "deck service save_score failed: failed to save score: disk full")
}
