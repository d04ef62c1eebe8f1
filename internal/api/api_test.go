package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eys-55/infoman-quizzer/internal/api"
	"github.com/Eys-55/infoman-quizzer/internal/models"
	"github.com/Eys-55/infoman-quizzer/internal/repository/sqlite"
	"github.com/Eys-55/infoman-quizzer/internal/services"
	"github.com/Eys-55/infoman-quizzer/internal/srs"
	"github.com/Eys-55/infoman-quizzer/internal/testutil"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	database := testutil.NewTestDB(t)
	deckRepo := sqlite.NewDeckRepository(database)
	cardRepo := sqlite.NewCardRepository(database)

	srv := &api.Server{
		DeckService:   services.NewDeckService(deckRepo, cardRepo),
		ReviewService: services.NewReviewService(cardRepo, srs.DefaultTuning(), nil),
	}
	return srv.Routes()
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

const sampleDeck = `{
	"deck_name": "Go Basics",
	"cards": [
		{"front_content": "What prints?\n[CODE=go]\nfmt.Println(1)\n[/CODE]", "back_content": "1", "tags": ["io"]},
		{"front_content": "Zero value of int?", "back_content": "0"}
	]
}`

func importSample(t *testing.T, h http.Handler) int64 {
	rec := doJSON(t, h, http.MethodPost, "/api/import", sampleDeck)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	resp := decode[map[string]any](t, rec)
	assert.Equal(t, "Import Successful", resp["message"])
	assert.Equal(t, "Go Basics", resp["deck_name"])
	assert.Equal(t, float64(2), resp["card_count"])
	return int64(resp["deck_id"].(float64))
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestImportAndListDecks(t *testing.T) {
	h := newTestServer(t)
	deckID := importSample(t, h)

	rec := doJSON(t, h, http.MethodGet, "/api/decks", "")
	require.Equal(t, http.StatusOK, rec.Code)

	decks := decode[[]models.Deck](t, rec)
	require.Len(t, decks, 1)
	assert.Equal(t, deckID, decks[0].ID)
	assert.Equal(t, "Go Basics", decks[0].Name)
	assert.Equal(t, 2, decks[0].DueCardCount)
}

func TestImportDuplicateDeck(t *testing.T) {
	h := newTestServer(t)
	importSample(t, h)

	rec := doJSON(t, h, http.MethodPost, "/api/import", sampleDeck)

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decode[map[string]map[string]any](t, rec)
	assert.Equal(t, "CONFLICT", resp["error"]["code"])
	assert.Contains(t, resp["error"]["message"], "Go Basics")
}

func TestImportInvalidStructure(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/import", `{"cards": []}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[map[string]map[string]any](t, rec)
	assert.Equal(t, "VALIDATION_ERROR", resp["error"]["code"])
	assert.Contains(t, resp["error"]["message"], "deck_name")
}

func TestDueCards(t *testing.T) {
	h := newTestServer(t)
	deckID := importSample(t, h)

	rec := doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/decks/%d/cards", deckID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	cards := decode[[]models.Card](t, rec)
	require.Len(t, cards, 2)
	assert.Equal(t, srs.StatusNew, cards[0].Status)
	assert.Equal(t, []string{"io"}, cards[0].Tags)
}

func TestDueCardsRendered(t *testing.T) {
	h := newTestServer(t)
	deckID := importSample(t, h)

	rec := doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/decks/%d/cards?render=1", deckID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cards []struct {
		models.Card
		FrontSegments []struct {
			Kind     string `json:"kind"`
			Text     string `json:"text"`
			Language string `json:"language"`
			Code     string `json:"code"`
		} `json:"front_segments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
	require.Len(t, cards, 2)

	segments := cards[0].FrontSegments
	require.Len(t, segments, 2)
	assert.Equal(t, "text", segments[0].Kind)
	assert.Equal(t, "What prints?", segments[0].Text)
	assert.Equal(t, "code", segments[1].Kind)
	assert.Equal(t, "go", segments[1].Language)
	assert.Equal(t, "fmt.Println(1)", segments[1].Code)
}

func TestDueCardsUnknownDeck(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodGet, "/api/decks/999/cards", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteDeck(t *testing.T) {
	h := newTestServer(t)
	deckID := importSample(t, h)

	rec := doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/decks/%d", deckID), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/decks", "")
	assert.Empty(t, decode[[]models.Deck](t, rec))

	rec = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/decks/%d", deckID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteDeckInvalidID(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodDelete, "/api/decks/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewCard(t *testing.T) {
	h := newTestServer(t)
	deckID := importSample(t, h)

	rec := doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/decks/%d/cards", deckID), "")
	cards := decode[[]models.Card](t, rec)
	require.NotEmpty(t, cards)
	cardID := cards[0].ID

	rec = doJSON(t, h, http.MethodPost, "/api/cards/review",
		fmt.Sprintf(`{"card_id": %d, "rating": "good"}`, cardID))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Message  string     `json:"message"`
		CardID   int64      `json:"card_id"`
		NewState srs.Result `json:"new_state"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, cardID, resp.CardID)
	assert.Equal(t, 1, resp.NewState.Interval)
	assert.Equal(t, srs.StatusReview, resp.NewState.Status)
	assert.Equal(t, time.Now().AddDate(0, 0, 1).Format(time.DateOnly), resp.NewState.ReviewDate)

	// The new state is persisted.
	rec = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/decks/%d/cards", deckID), "")
	for _, c := range decode[[]models.Card](t, rec) {
		if c.ID == cardID {
			t.Fatalf("card %d should no longer be due", cardID)
		}
	}
}

func TestReviewCardInvalidRating(t *testing.T) {
	h := newTestServer(t)
	deckID := importSample(t, h)

	rec := doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/decks/%d/cards", deckID), "")
	cards := decode[[]models.Card](t, rec)
	require.NotEmpty(t, cards)

	rec = doJSON(t, h, http.MethodPost, "/api/cards/review",
		fmt.Sprintf(`{"card_id": %d, "rating": "hard"}`, cards[0].ID))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[map[string]map[string]any](t, rec)
	assert.Equal(t, "VALIDATION_ERROR", resp["error"]["code"])
	assert.Contains(t, resp["error"]["message"], "hard")

	// The card's state is untouched.
	rec = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/decks/%d/cards", deckID), "")
	assert.Len(t, decode[[]models.Card](t, rec), 2)
}

func TestReviewCardNotFound(t *testing.T) {
	rec := doJSON(t, newTestServer(t), http.MethodPost, "/api/cards/review", `{"card_id": 999, "rating": "good"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReviewCardMalformedBody(t *testing.T) {
	h := newTestServer(t)

	for _, body := range []string{"", "{}", "not json"} {
		rec := doJSON(t, h, http.MethodPost, "/api/cards/review", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
}

func TestPreviewReview(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/reviews",
		`{"current_state": {"interval": 10, "ease_factor": 2.5, "status": "review"}, "rating": "good"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	result := decode[srs.Result](t, rec)
	assert.Equal(t, 25, result.Interval)
	assert.Equal(t, 2.5, result.EaseFactor)
	assert.Equal(t, srs.StatusReview, result.Status)

	rec = doJSON(t, h, http.MethodPost, "/api/reviews", `{"current_state": {}, "rating": "maybe"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "maybe"))
}
