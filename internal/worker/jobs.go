package worker

import (
	"context"

	"github.com/Eys-55/infoman-quizzer/internal/repository"
)

// RecordReviewJob appends one row of review history for a card. Failures
// are logged by the pool and never affect the review that produced them.
type RecordReviewJob struct {
	Cards  repository.CardRepository
	CardID int64
	Rating string
}

func (j *RecordReviewJob) Name() string { return "record_review" }

func (j *RecordReviewJob) Run(ctx context.Context) error {
	return j.Cards.InsertReviewHistory(ctx, j.CardID, j.Rating)
}
