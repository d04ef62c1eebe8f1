package models

import (
	"time"

	"github.com/Eys-55/infoman-quizzer/internal/srs"
)

type Deck struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	DueCardCount int       `json:"due_card_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type Card struct {
	ID           int64      `json:"id"`
	DeckID       int64      `json:"deck_id"`
	FrontContent string     `json:"front_content"`
	BackContent  string     `json:"back_content"`
	Tags         []string   `json:"tags"`
	Status       srs.Status `json:"status"`
	Interval     int        `json:"interval"`
	EaseFactor   float64    `json:"ease_factor"`
	ReviewDate   string     `json:"review_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// State extracts the card's memory state for the scheduler.
func (c Card) State() srs.State {
	return srs.State{
		Interval:   c.Interval,
		EaseFactor: c.EaseFactor,
		Status:     c.Status,
	}
}

type ReviewHistory struct {
	ID         int64     `json:"id"`
	CardID     int64     `json:"card_id"`
	Rating     string    `json:"rating"`
	ReviewedAt time.Time `json:"reviewed_at"`
}
