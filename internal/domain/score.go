package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Score bounds, in percent.
const (
	MinPercentage = 0
	MaxPercentage = 100
)

// Score validation errors
var (
	ErrScoreUsernameEmpty   = fmt.Errorf("%w: score username cannot be empty", ErrValidation)
	ErrScoreDeckNameEmpty   = fmt.Errorf("%w: score deck name cannot be empty", ErrValidation)
	ErrScorePercentageRange = fmt.Errorf("%w: score percentage must be between 0 and 100", ErrValidation)
)

// Score records how well a user did practicing a deck.
// On the wire a score is the tuple [username, deckName, percentage].
type Score struct {
	ID         uuid.UUID
	Username   string
	DeckName   string
	Percentage int
	CreatedAt  time.Time
}

// NewScore creates a new Score with a fresh ID and creation timestamp.
// Returns an error if validation fails.
func NewScore(username, deckName string, percentage int) (*Score, error) {
	score := &Score{
		ID:         uuid.New(),
		Username:   username,
		DeckName:   deckName,
		Percentage: percentage,
		CreatedAt:  time.Now().UTC(),
	}

	if err := score.Validate(); err != nil {
		return nil, err
	}

	return score, nil
}

// Validate checks if the Score has valid data.
func (s *Score) Validate() error {
	if strings.TrimSpace(s.Username) == "" {
		return ErrScoreUsernameEmpty
	}
	if strings.TrimSpace(s.DeckName) == "" {
		return ErrScoreDeckNameEmpty
	}
	if s.Percentage < MinPercentage || s.Percentage > MaxPercentage {
		return ErrScorePercentageRange
	}
	return nil
}

// MarshalJSON encodes the score as [username, deckName, percentage].
func (s Score) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{s.Username, s.DeckName, s.Percentage})
}

// UnmarshalJSON decodes a score from its tuple form.
func (s *Score) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 3 {
		return ErrInvalidFormat
	}

	if err := json.Unmarshal(parts[0], &s.Username); err != nil {
		return ErrInvalidFormat
	}
	if err := json.Unmarshal(parts[1], &s.DeckName); err != nil {
		return ErrInvalidFormat
	}
	if err := json.Unmarshal(parts[2], &s.Percentage); err != nil {
		return ErrInvalidFormat
	}
	return nil
}

// CalculatePercentage returns the share of correct answers rounded to the
// nearest whole percent. Nothing answered counts as 0.
func CalculatePercentage(correct, incorrect int) int {
	total := correct + incorrect
	if total <= 0 || correct <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
