package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/flashcards/internal/deck"
	"github.com/vytor/flashcards/internal/models"
)

// MockDeckService is a mock implementation of services.DeckService
type MockDeckService struct {
	mock.Mock
}

func (m *MockDeckService) Add(ctx context.Context, term, definition string) error {
	args := m.Called(ctx, term, definition)
	return args.Error(0)
}

func (m *MockDeckService) Remove(ctx context.Context, term string) error {
	args := m.Called(ctx, term)
	return args.Error(0)
}

func (m *MockDeckService) ContainsTerm(term string) bool {
	args := m.Called(term)
	return args.Bool(0)
}

func (m *MockDeckService) ContainsDefinition(definition string) bool {
	args := m.Called(definition)
	return args.Bool(0)
}

func (m *MockDeckService) Import(ctx context.Context, path string) (int, error) {
	args := m.Called(ctx, path)
	return args.Int(0), args.Error(1)
}

func (m *MockDeckService) Export(ctx context.Context, path string) (int, error) {
	args := m.Called(ctx, path)
	return args.Int(0), args.Error(1)
}

func (m *MockDeckService) Ask(ctx context.Context, askCount int, ex deck.Examiner) error {
	args := m.Called(ctx, askCount, ex)
	return args.Error(0)
}

func (m *MockDeckService) HardestCards(ctx context.Context) []models.Card {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Card)
}

func (m *MockDeckService) ResetStats(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockDeckService) Cards() []models.Card {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Card)
}
