package services

import (
	"context"
	"time"

	"github.com/Eys-55/infoman-quizzer/internal/errors"
	"github.com/Eys-55/infoman-quizzer/internal/logger"
	"github.com/Eys-55/infoman-quizzer/internal/repository"
	"github.com/Eys-55/infoman-quizzer/internal/srs"
	"github.com/Eys-55/infoman-quizzer/internal/worker"
)

// ReviewService handles review-related business logic
type ReviewService interface {
	// ReviewCard applies a rating to a stored card and persists the new
	// memory state.
	ReviewCard(ctx context.Context, cardID int64, rating string) (*srs.Result, error)
	// Preview computes the next state for a caller-supplied memory state
	// without touching storage.
	Preview(ctx context.Context, state srs.State, rating string) (*srs.Result, error)
}

type reviewService struct {
	cards   repository.CardRepository
	tuning  srs.Tuning
	history worker.Queue
}

// NewReviewService creates a new ReviewService. history may be nil, in
// which case no review history is recorded.
func NewReviewService(cards repository.CardRepository, tuning srs.Tuning, history worker.Queue) ReviewService {
	return &reviewService{cards: cards, tuning: tuning, history: history}
}

func (s *reviewService) ReviewCard(ctx context.Context, cardID int64, rating string) (*srs.Result, error) {
	log := logger.FromContext(ctx)
	log.Debug("reviewing card: card_id=%d, rating=%s", cardID, rating)

	parsed, err := srs.ParseRating(rating)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), err)
	}

	card, err := s.cards.Get(ctx, cardID)
	if err != nil {
		log.Error("failed to get card: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("card", cardID)
	}

	result, err := s.tuning.Schedule(card.State(), parsed, time.Now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), err)
	}

	if err := s.cards.UpdateSRS(ctx, cardID, result); err != nil {
		log.Error("failed to persist card state: %v", err)
		return nil, errors.NewInternalError(err)
	}

	if s.history != nil {
		s.history.Submit(&worker.RecordReviewJob{Cards: s.cards, CardID: cardID, Rating: string(parsed)})
	}

	log.Info("card reviewed: card_id=%d, interval=%d, ease=%.2f, status=%s",
		cardID, result.Interval, result.EaseFactor, result.Status)
	return &result, nil
}

func (s *reviewService) Preview(ctx context.Context, state srs.State, rating string) (*srs.Result, error) {
	parsed, err := srs.ParseRating(rating)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), err)
	}

	result, err := s.tuning.Schedule(state, parsed, time.Now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), err)
	}
	return &result, nil
}
