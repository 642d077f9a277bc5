package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScore(t *testing.T) {
	t.Parallel()

	score, err := NewScore("h", "g", 5)
	require.NoError(t, err)
	assert.Equal(t, "h", score.Username)
	assert.Equal(t, "g", score.DeckName)
	assert.Equal(t, 5, score.Percentage)

	tests := []struct {
		name       string
		username   string
		deckName   string
		percentage int
		wantErr    error
	}{
		{"empty username", "", "g", 5, ErrScoreUsernameEmpty},
		{"empty deck name", "h", " ", 5, ErrScoreDeckNameEmpty},
		{"negative", "h", "g", -1, ErrScorePercentageRange},
		{"over 100", "h", "g", 101, ErrScorePercentageRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewScore(tc.username, tc.deckName, tc.percentage)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestScoreJSONTuple(t *testing.T) {
	t.Parallel()

	score, err := NewScore("h", "g", 33)
	require.NoError(t, err)

	data, err := json.Marshal([]*Score{score})
	require.NoError(t, err)
	assert.JSONEq(t, `[["h","g",33]]`, string(data))

	var decoded Score
	require.NoError(t, json.Unmarshal([]byte(`["a","b",2]`), &decoded))
	assert.Equal(t, "a", decoded.Username)
	assert.Equal(t, "b", decoded.DeckName)
	assert.Equal(t, 2, decoded.Percentage)

	assert.Error(t, json.Unmarshal([]byte(`["a","b"]`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`["a",2,"b"]`), &decoded))
}

func TestCalculatePercentage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, CalculatePercentage(0, 0))
	assert.Equal(t, 100, CalculatePercentage(3, 0))
	assert.Equal(t, 0, CalculatePercentage(0, 4))
	assert.Equal(t, 67, CalculatePercentage(2, 1))
	assert.Equal(t, 33, CalculatePercentage(1, 2))
	assert.Equal(t, 50, CalculatePercentage(1, 1))
}
