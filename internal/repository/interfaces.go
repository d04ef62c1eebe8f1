package repository

import (
	"context"

	"github.com/Eys-55/infoman-quizzer/internal/models"
	"github.com/Eys-55/infoman-quizzer/internal/srs"
)

// DeckRepository handles deck data access
type DeckRepository interface {
	// List returns all decks ordered by name, each carrying the number of
	// cards due on the given ISO date.
	List(ctx context.Context, today string) ([]models.Deck, error)
	Get(ctx context.Context, id int64) (*models.Deck, error)
	CountByName(ctx context.Context, name string) (int, error)
	// Import inserts a deck and its cards atomically.
	Import(ctx context.Context, name string, cards []models.Card) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// CardRepository handles card data access
type CardRepository interface {
	Get(ctx context.Context, id int64) (*models.Card, error)
	// DueForDeck returns the deck's cards that are new or whose review
	// date is on or before the given ISO date.
	DueForDeck(ctx context.Context, deckID int64, today string) ([]models.Card, error)
	UpdateSRS(ctx context.Context, id int64, state srs.Result) error
	InsertReviewHistory(ctx context.Context, cardID int64, rating string) error
}
