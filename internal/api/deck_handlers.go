package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Eys-55/infoman-quizzer/internal/content"
	"github.com/Eys-55/infoman-quizzer/internal/errors"
	"github.com/Eys-55/infoman-quizzer/internal/ingest"
	"github.com/Eys-55/infoman-quizzer/internal/logger"
	"github.com/Eys-55/infoman-quizzer/internal/models"
)

func (s *Server) handleListDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := s.DeckService.ListDecks(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, decks)
}

// renderedCard is a due card with its content parsed into segments.
type renderedCard struct {
	models.Card
	FrontSegments []content.Segment `json:"front_segments"`
	BackSegments  []content.Segment `json:"back_segments"`
}

func (s *Server) handleDueCards(w http.ResponseWriter, r *http.Request) {
	deckID, err := parseID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	cards, err := s.DeckService.DueCards(r.Context(), deckID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if r.URL.Query().Get("render") == "" {
		respondJSON(w, r, http.StatusOK, cards)
		return
	}

	rendered := make([]renderedCard, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, renderedCard{
			Card:          c,
			FrontSegments: content.Render(c.FrontContent),
			BackSegments:  content.Render(c.BackContent),
		})
	}
	respondJSON(w, r, http.StatusOK, rendered)
}

func (s *Server) handleImportDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	deck, err := ingest.ParseDeck(r.Body)
	if err != nil {
		log.Warn("deck rejected: %v", err)
		handleError(w, r, errors.NewValidationError(fmt.Sprintf("JSON structure error: %v", err), err))
		return
	}

	deckID, cardCount, err := s.DeckService.ImportDeck(r.Context(), deck)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, map[string]any{
		"message":    "Import Successful",
		"deck_id":    deckID,
		"deck_name":  deck.Name,
		"card_count": cardCount,
	})
}

func (s *Server) handleDeleteDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := parseID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.DeckService.DeleteDeck(r.Context(), deckID); err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("deck %d deleted successfully", deckID),
	})
}

func parseID(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, errors.NewBadRequestError(fmt.Sprintf("invalid deck ID: %q", idStr))
	}
	return id, nil
}
