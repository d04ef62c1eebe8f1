package ingest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eys-55/infoman-quizzer/internal/ingest"
)

func TestParseDeck_Valid(t *testing.T) {
	body := `{
		"deck_name": "  Go Basics  ",
		"cards": [
			{"front_content": "What is a goroutine?", "back_content": "A lightweight thread", "tags": ["concurrency"]},
			{"front_content": "Zero value of a slice?", "back_content": ""}
		]
	}`

	deck, err := ingest.ParseDeck(strings.NewReader(body))

	require.NoError(t, err)
	assert.Equal(t, "Go Basics", deck.Name, "deck name is trimmed")
	require.Len(t, *deck.Cards, 2)

	cards := deck.CardModels()
	assert.Equal(t, "What is a goroutine?", cards[0].FrontContent)
	assert.Equal(t, []string{"concurrency"}, cards[0].Tags)
	assert.Equal(t, "", cards[1].BackContent, "empty back content is allowed")
	assert.Equal(t, []string{}, cards[1].Tags, "missing tags default to empty list")
}

func TestParseDeck_EmptyCardList(t *testing.T) {
	deck, err := ingest.ParseDeck(strings.NewReader(`{"deck_name": "Empty", "cards": []}`))

	require.NoError(t, err)
	assert.Empty(t, *deck.Cards)
	assert.Empty(t, deck.CardModels())
}

func TestParseDeck_StructureErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "not json",
			body:    `not json at all`,
			wantMsg: "valid JSON object",
		},
		{
			name:    "missing deck name",
			body:    `{"cards": []}`,
			wantMsg: "deck_name",
		},
		{
			name:    "blank deck name",
			body:    `{"deck_name": "   ", "cards": []}`,
			wantMsg: "deck_name",
		},
		{
			name:    "missing cards key",
			body:    `{"deck_name": "X"}`,
			wantMsg: "'cards' key containing a list",
		},
		{
			name:    "card missing front content",
			body:    `{"deck_name": "X", "cards": [{"back_content": "b"}]}`,
			wantMsg: "card at index 0 is missing 'front_content'",
		},
		{
			name:    "second card missing back content",
			body:    `{"deck_name": "X", "cards": [{"front_content": "f", "back_content": "b"}, {"front_content": "f"}]}`,
			wantMsg: "card at index 1 is missing 'back_content'",
		},
		{
			name:    "tags not strings",
			body:    `{"deck_name": "X", "cards": [{"front_content": "f", "back_content": "b", "tags": [1, 2]}]}`,
			wantMsg: "valid JSON object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck, err := ingest.ParseDeck(strings.NewReader(tt.body))

			require.Error(t, err)
			assert.Nil(t, deck)

			var parseErr *ingest.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Contains(t, parseErr.Error(), tt.wantMsg)
		})
	}
}
