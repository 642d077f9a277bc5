package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// CardSeparator splits the front of a card from its back in the text format
// used when creating decks.
const CardSeparator = "|"

// Card parsing errors.
var (
	// ErrEmptyDeckText is returned when the deck text contains no cards at all.
	ErrEmptyDeckText = fmt.Errorf("%w: flashcard data is empty", ErrEmptyContent)

	// ErrMissingSeparator is returned for a line that has no separator.
	ErrMissingSeparator = fmt.Errorf("%w: line does not contain %s", ErrInvalidFormat, CardSeparator)

	// ErrExtraSeparator is returned for a line that has more than one separator.
	ErrExtraSeparator = fmt.Errorf("%w: line contains more than one %s", ErrInvalidFormat, CardSeparator)

	// ErrInvalidCard is returned when a card is not a pair of strings.
	ErrInvalidCard = fmt.Errorf("%w: card must be a [front, back] pair of strings", ErrInvalidFormat)
)

// Card is a single flashcard: a front (prompt) and a back (answer).
// On the wire a card is the two-element array [front, back].
type Card struct {
	Front string
	Back  string
}

// MarshalJSON encodes the card as [front, back].
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{c.Front, c.Back})
}

// UnmarshalJSON decodes a card from a [front, back] array. Anything else,
// including arrays of the wrong length or non-string elements, is rejected.
// Sides containing NUL are rejected too, since PostgreSQL text cannot hold it.
func (c *Card) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil || len(parts) != 2 {
		return ErrInvalidCard
	}

	var front, back string
	if err := json.Unmarshal(parts[0], &front); err != nil || isJSONNull(parts[0]) {
		return ErrInvalidCard
	}
	if err := json.Unmarshal(parts[1], &back); err != nil || isJSONNull(parts[1]) {
		return ErrInvalidCard
	}

	if strings.ContainsRune(front, 0) || strings.ContainsRune(back, 0) {
		return ErrInvalidCard
	}

	c.Front = front
	c.Back = back
	return nil
}

func isJSONNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

// LineError reports a problem with one line of deck text. Line is 1-based.
type LineError struct {
	Line int
	Err  error
}

// Error returns the message shown to people editing the deck text.
func (e *LineError) Error() string {
	switch {
	case errors.Is(e.Err, ErrMissingSeparator):
		return fmt.Sprintf("Line %d does not contain %s", e.Line, CardSeparator)
	case errors.Is(e.Err, ErrExtraSeparator):
		return fmt.Sprintf("Line %d contains more than one %s", e.Line, CardSeparator)
	default:
		return fmt.Sprintf("Line %d: %v", e.Line, e.Err)
	}
}

// Unwrap returns the underlying parse error.
func (e *LineError) Unwrap() error {
	return e.Err
}

// ParseCards parses deck text with one "front|back" card per line. Both
// sides are trimmed and blank lines are skipped. The first malformed line
// is reported as a *LineError.
func ParseCards(text string) ([]Card, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDeckText
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	cards := make([]Card, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Split(line, CardSeparator)
		switch {
		case len(parts) < 2:
			return nil, &LineError{Line: i + 1, Err: ErrMissingSeparator}
		case len(parts) > 2:
			return nil, &LineError{Line: i + 1, Err: ErrExtraSeparator}
		}

		cards = append(cards, Card{
			Front: strings.TrimSpace(parts[0]),
			Back:  strings.TrimSpace(parts[1]),
		})
	}

	return cards, nil
}

// FormatCards renders cards back into the "front|back" text format.
func FormatCards(cards []Card) string {
	var b strings.Builder
	for _, card := range cards {
		b.WriteString(card.Front)
		b.WriteString(CardSeparator)
		b.WriteString(card.Back)
		b.WriteString("\n")
	}
	return b.String()
}
