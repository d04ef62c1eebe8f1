package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Eys-55/infoman-quizzer/internal/models"
	"github.com/Eys-55/infoman-quizzer/internal/srs"
)

// MockCardRepository is a mock implementation of repository.CardRepository
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Get(ctx context.Context, id int64) (*models.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardRepository) DueForDeck(ctx context.Context, deckID int64, today string) ([]models.Card, error) {
	args := m.Called(ctx, deckID, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Card), args.Error(1)
}

func (m *MockCardRepository) UpdateSRS(ctx context.Context, id int64, state srs.Result) error {
	args := m.Called(ctx, id, state)
	return args.Error(0)
}

func (m *MockCardRepository) InsertReviewHistory(ctx context.Context, cardID int64, rating string) error {
	args := m.Called(ctx, cardID, rating)
	return args.Error(0)
}
