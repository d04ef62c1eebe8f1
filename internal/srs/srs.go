// Package srs implements the spaced-repetition review scheduler, a
// simplified SM-2 variant. Scheduling is a pure function over the card's
// memory state and the reviewer's rating; persistence and transport live
// elsewhere.
package srs

import (
	"fmt"
	"math"
	"time"
)

// Status is a card's coarse learning stage.
type Status string

const (
	StatusNew      Status = "new"
	StatusLearning Status = "learning"
	StatusReview   Status = "review"
)

// Rating is the reviewer's recall quality signal.
type Rating string

const (
	RatingAgain Rating = "again"
	RatingGood  Rating = "good"
	RatingEasy  Rating = "easy"
)

// InvalidRatingError reports a rating outside the recognized set. The
// offending value is kept so callers can surface it verbatim.
type InvalidRatingError struct {
	Value string
}

func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("invalid rating: %q (must be 'again', 'good', or 'easy')", e.Value)
}

// ParseRating validates a raw rating string.
func ParseRating(s string) (Rating, error) {
	switch Rating(s) {
	case RatingAgain, RatingGood, RatingEasy:
		return Rating(s), nil
	default:
		return "", &InvalidRatingError{Value: s}
	}
}

// State is a card's memory state going into a review.
type State struct {
	Interval   int     `json:"interval"`
	EaseFactor float64 `json:"ease_factor"`
	Status     Status  `json:"status"`
}

// Result is the full replacement memory state produced by a review.
type Result struct {
	State
	ReviewDate string `json:"review_date"`
}

// Tuning holds the scheduler's named constants. Tests probe boundary
// values through it and alternate profiles need no code change.
type Tuning struct {
	DefaultEaseFactor  float64
	MinEaseFactor      float64
	AgainPenalty       float64
	EasyReward         float64
	EasyBonus          float64
	GraduationDays     int
	EasyGraduationDays int
	MaxIntervalDays    int
}

// DefaultTuning matches the tuning the scheduler has always shipped with.
func DefaultTuning() Tuning {
	return Tuning{
		DefaultEaseFactor:  2.5,
		MinEaseFactor:      1.3,
		AgainPenalty:       0.2,
		EasyReward:         0.15,
		EasyBonus:          1.3,
		GraduationDays:     1,
		EasyGraduationDays: 4,
		MaxIntervalDays:    36500,
	}
}

// Normalize fills a partial state with defaults: interval 0, the default
// ease factor, and status "new". This keeps default handling at the
// boundary so Schedule always sees a complete record.
func (t Tuning) Normalize(s State) State {
	if s.EaseFactor == 0 {
		s.EaseFactor = t.DefaultEaseFactor
	}
	if s.Interval < 0 {
		s.Interval = 0
	}
	if s.Status == "" {
		s.Status = StatusNew
	}
	return s
}

// learning reports whether the card has not yet graduated to review.
// Unrecognized stored statuses take the review path, as the original
// behavior did.
func learning(s Status) bool {
	return s == StatusNew || s == StatusLearning
}

// Schedule computes the next memory state for a card. today is the review
// date; the returned ReviewDate is today plus the new interval in ISO
// YYYY-MM-DD form. Interval multiplication rounds half to even before
// clamping into [1, MaxIntervalDays].
func (t Tuning) Schedule(state State, rating Rating, today time.Time) (Result, error) {
	state = t.Normalize(state)

	var (
		interval int
		ease     = state.EaseFactor
		status   Status
	)

	switch rating {
	case RatingAgain:
		// Forgotten: back to a 1-day interval and a reduced ease factor.
		interval = 1
		status = StatusLearning
		ease = math.Max(t.MinEaseFactor, ease-t.AgainPenalty)
	case RatingGood:
		if learning(state.Status) {
			interval = t.GraduationDays
		} else {
			interval = int(math.RoundToEven(float64(state.Interval) * ease))
		}
		status = StatusReview
	case RatingEasy:
		if learning(state.Status) {
			interval = t.EasyGraduationDays
		} else {
			interval = int(math.RoundToEven(float64(state.Interval) * ease * t.EasyBonus))
		}
		ease += t.EasyReward
		status = StatusReview
	default:
		return Result{}, &InvalidRatingError{Value: string(rating)}
	}

	// Universal floor: the good/easy branches may start from an
	// already-low ease factor.
	if ease < t.MinEaseFactor {
		ease = t.MinEaseFactor
	}
	if interval > t.MaxIntervalDays {
		interval = t.MaxIntervalDays
	}
	if interval < 1 {
		interval = 1
	}

	return Result{
		State: State{
			Interval:   interval,
			EaseFactor: math.Round(ease*100) / 100,
			Status:     status,
		},
		ReviewDate: today.AddDate(0, 0, interval).Format(time.DateOnly),
	}, nil
}

// Schedule applies the default tuning.
func Schedule(state State, rating Rating, today time.Time) (Result, error) {
	return DefaultTuning().Schedule(state, rating, today)
}
