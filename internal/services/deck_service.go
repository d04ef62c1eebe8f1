package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Eys-55/infoman-quizzer/internal/errors"
	"github.com/Eys-55/infoman-quizzer/internal/ingest"
	"github.com/Eys-55/infoman-quizzer/internal/logger"
	"github.com/Eys-55/infoman-quizzer/internal/models"
	"github.com/Eys-55/infoman-quizzer/internal/repository"
)

// DeckService handles deck-related business logic
type DeckService interface {
	ListDecks(ctx context.Context) ([]models.Deck, error)
	DueCards(ctx context.Context, deckID int64) ([]models.Card, error)
	ImportDeck(ctx context.Context, deck *ingest.Deck) (int64, int, error)
	DeleteDeck(ctx context.Context, deckID int64) error
}

type deckService struct {
	decks repository.DeckRepository
	cards repository.CardRepository
}

// NewDeckService creates a new DeckService
func NewDeckService(decks repository.DeckRepository, cards repository.CardRepository) DeckService {
	return &deckService{decks: decks, cards: cards}
}

func (s *deckService) ListDecks(ctx context.Context) ([]models.Deck, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing decks")

	decks, err := s.decks.List(ctx, time.Now().Format(time.DateOnly))
	if err != nil {
		log.Error("failed to list decks: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if decks == nil {
		decks = []models.Deck{}
	}
	return decks, nil
}

func (s *deckService) DueCards(ctx context.Context, deckID int64) ([]models.Card, error) {
	log := logger.FromContext(ctx)
	log.Debug("fetching due cards: deck_id=%d", deckID)

	deck, err := s.decks.Get(ctx, deckID)
	if err != nil {
		log.Error("failed to get deck: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if deck == nil {
		return nil, errors.NewNotFoundError("deck", deckID)
	}

	cards, err := s.cards.DueForDeck(ctx, deckID, time.Now().Format(time.DateOnly))
	if err != nil {
		log.Error("failed to fetch due cards: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if cards == nil {
		cards = []models.Card{}
	}
	return cards, nil
}

func (s *deckService) ImportDeck(ctx context.Context, deck *ingest.Deck) (int64, int, error) {
	log := logger.FromContext(ctx)
	log.Debug("importing deck: name=%s", deck.Name)

	count, err := s.decks.CountByName(ctx, deck.Name)
	if err != nil {
		log.Error("failed to check for existing deck: %v", err)
		return 0, 0, errors.NewInternalError(err)
	}
	if count > 0 {
		return 0, 0, errors.NewConflictError(fmt.Sprintf("deck %q already exists", deck.Name))
	}

	cards := deck.CardModels()
	deckID, err := s.decks.Import(ctx, deck.Name, cards)
	if err != nil {
		log.Error("failed to import deck: %v", err)
		return 0, 0, errors.NewInternalError(err)
	}

	log.Info("deck imported: id=%d, name=%s, cards=%d", deckID, deck.Name, len(cards))
	return deckID, len(cards), nil
}

func (s *deckService) DeleteDeck(ctx context.Context, deckID int64) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting deck: deck_id=%d", deckID)

	deck, err := s.decks.Get(ctx, deckID)
	if err != nil {
		log.Error("failed to get deck: %v", err)
		return errors.NewInternalError(err)
	}
	if deck == nil {
		return errors.NewNotFoundError("deck", deckID)
	}

	if err := s.decks.Delete(ctx, deckID); err != nil {
		log.Error("failed to delete deck: %v", err)
		return errors.NewInternalError(err)
	}

	log.Info("deck deleted: id=%d, name=%s", deck.ID, deck.Name)
	return nil
}
