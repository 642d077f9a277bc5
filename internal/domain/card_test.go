package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Card{Front: "hi", Back: "bye"})
	require.NoError(t, err)
	assert.JSONEq(t, `["hi","bye"]`, string(data))

	var card Card
	require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &card))
	assert.Equal(t, Card{Front: "a", Back: "b"}, card)
}

func TestCardUnmarshalRejectsMalformed(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`"front"`,
		`["only one"]`,
		`["a","b","c"]`,
		`[1,"b"]`,
		`["a",null]`,
		`{"front":"a","back":"b"}`,
		`["a\u0000","b"]`,
		`["a","\u0000"]`,
	}
	for _, input := range inputs {
		var card Card
		err := json.Unmarshal([]byte(input), &card)
		assert.ErrorIs(t, err, ErrInvalidCard, "input %s", input)
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		want      []Card
		wantErr   error
		wantLine  int
		wantError string
	}{
		{
			name: "two cards trimmed",
			text: "hi | bye\n h|b ",
			want: []Card{{Front: "hi", Back: "bye"}, {Front: "h", Back: "b"}},
		},
		{
			name: "blank lines skipped",
			text: "a|b\n\n  \nc|d\n",
			want: []Card{{Front: "a", Back: "b"}, {Front: "c", Back: "d"}},
		},
		{
			name: "windows line endings",
			text: "a|b\r\nc|d",
			want: []Card{{Front: "a", Back: "b"}, {Front: "c", Back: "d"}},
		},
		{
			name:    "empty text",
			text:    "  \n ",
			wantErr: ErrEmptyDeckText,
		},
		{
			name:      "missing separator",
			text:      "a|b\nno separator",
			wantErr:   ErrMissingSeparator,
			wantLine:  2,
			wantError: "Line 2 does not contain |",
		},
		{
			name:      "extra separator",
			text:      "a|b|c",
			wantErr:   ErrExtraSeparator,
			wantLine:  1,
			wantError: "Line 1 contains more than one |",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cards, err := ParseCards(tc.text)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				if tc.wantLine > 0 {
					var lineErr *LineError
					require.True(t, errors.As(err, &lineErr))
					assert.Equal(t, tc.wantLine, lineErr.Line)
					assert.Equal(t, tc.wantError, lineErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, cards)
		})
	}
}

func TestFormatCardsRoundTrip(t *testing.T) {
	t.Parallel()

	cards := []Card{{Front: "1", Back: "a"}, {Front: "2", Back: "b"}}
	text := FormatCards(cards)
	assert.Equal(t, "1|a\n2|b\n", text)

	parsed, err := ParseCards(text)
	require.NoError(t, err)
	assert.Equal(t, cards, parsed)
}
