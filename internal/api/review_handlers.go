package api

import (
	"encoding/json"
	"net/http"

	"github.com/Eys-55/infoman-quizzer/internal/errors"
	"github.com/Eys-55/infoman-quizzer/internal/logger"
	"github.com/Eys-55/infoman-quizzer/internal/srs"
)

type reviewRequest struct {
	CardID int64  `json:"card_id"`
	Rating string `json:"rating"`
}

func (s *Server) handleReviewCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("request must be JSON with 'card_id' and 'rating' fields"))
		return
	}
	if req.CardID == 0 {
		handleError(w, r, errors.NewBadRequestError("request must be JSON with 'card_id' and 'rating' fields"))
		return
	}

	log.Debug("review request: card_id=%d, rating=%s", req.CardID, req.Rating)

	result, err := s.ReviewService.ReviewCard(r.Context(), req.CardID, req.Rating)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"message":   "card review updated successfully",
		"card_id":   req.CardID,
		"new_state": result,
	})
}

type previewRequest struct {
	CurrentState srs.State `json:"current_state"`
	Rating       string    `json:"rating"`
}

// handlePreviewReview exposes the scheduler as a pure mapping: the caller
// supplies the current memory state and gets the next one back. Nothing
// is persisted.
func (s *Server) handlePreviewReview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("request must be JSON with 'current_state' and 'rating' fields"))
		return
	}

	result, err := s.ReviewService.Preview(r.Context(), req.CurrentState, req.Rating)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}
