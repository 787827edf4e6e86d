package mocks

import (
	"github.com/stretchr/testify/mock"
	"github.com/vytor/flashcards/internal/deck"
)

// MockExaminer is a mock implementation of deck.Examiner
type MockExaminer struct {
	mock.Mock
}

func (m *MockExaminer) Ask(term string) (string, error) {
	args := m.Called(term)
	return args.String(0), args.Error(1)
}

func (m *MockExaminer) Tell(v deck.Verdict) error {
	args := m.Called(v)
	return args.Error(0)
}
