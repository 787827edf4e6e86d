package services_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vytor/flashcards/internal/deck"
	"github.com/vytor/flashcards/internal/errors"
	"github.com/vytor/flashcards/internal/logger"
	"github.com/vytor/flashcards/internal/models"
	"github.com/vytor/flashcards/internal/services"
	"github.com/vytor/flashcards/internal/testutil"
	"github.com/vytor/flashcards/internal/testutil/mocks"
)

type DeckServiceSuite struct {
	suite.Suite
	ctx context.Context
	svc services.DeckService
}

func (s *DeckServiceSuite) SetupTest() {
	s.ctx = logger.NewContext(context.Background(), logger.Discard())
	s.svc = services.NewDeckService(nil)
}

func (s *DeckServiceSuite) TestAddAndRemove() {
	s.Require().NoError(s.svc.Add(s.ctx, "Paris", "Capital of France"))
	s.Assert().True(s.svc.ContainsTerm("Paris"))
	s.Assert().True(s.svc.ContainsDefinition("Capital of France"))

	err := s.svc.Add(s.ctx, "Lutece", "Capital of France")
	s.Assert().True(errors.HasCode(err, errors.ErrCodeDuplicate))

	s.Require().NoError(s.svc.Remove(s.ctx, "Paris"))
	s.Assert().False(s.svc.ContainsTerm("Paris"))

	err = s.svc.Remove(s.ctx, "Paris")
	s.Assert().True(errors.HasCode(err, errors.ErrCodeNotFound))
}

func (s *DeckServiceSuite) TestImport() {
	s.Require().NoError(s.svc.Add(s.ctx, "Paris", "City of light"))
	path := testutil.WriteDeckFile(s.T(),
		"Paris;Capital of France;2",
		"Berlin;Capital of Germany;1",
	)

	n, err := s.svc.Import(s.ctx, path)

	s.Require().NoError(err)
	s.Assert().Equal(2, n)
	s.Assert().Equal([]models.Card{
		{Term: "Paris", Definition: "Capital of France", Mistakes: 2},
		{Term: "Berlin", Definition: "Capital of Germany", Mistakes: 1},
	}, s.svc.Cards())
}

func (s *DeckServiceSuite) TestImport_FileNotFound() {
	s.Require().NoError(s.svc.Add(s.ctx, "A", "a"))

	n, err := s.svc.Import(s.ctx, filepath.Join(s.T().TempDir(), "nope.txt"))

	s.Assert().Zero(n)
	s.Assert().True(errors.HasCode(err, errors.ErrCodeFileNotFound))
	s.Assert().Equal([]models.Card{{Term: "A", Definition: "a"}}, s.svc.Cards())
}

func (s *DeckServiceSuite) TestImport_MalformedLineAbortsWithoutSideEffects() {
	path := testutil.WriteDeckFile(s.T(),
		"A;a;0",
		"B;b;lots",
	)

	_, err := s.svc.Import(s.ctx, path)

	s.Assert().True(errors.HasCode(err, errors.ErrCodeParse))
	s.Assert().Empty(s.svc.Cards())
}

func (s *DeckServiceSuite) TestImport_DefinitionCollisionAborts() {
	s.Require().NoError(s.svc.Add(s.ctx, "A", "a"))
	path := testutil.WriteDeckFile(s.T(), "B;b;0", "C;a;0")

	_, err := s.svc.Import(s.ctx, path)

	s.Assert().True(errors.HasCode(err, errors.ErrCodeDuplicate))
	s.Assert().Equal([]models.Card{{Term: "A", Definition: "a"}}, s.svc.Cards())
}

func (s *DeckServiceSuite) TestExportImportRoundTrip() {
	s.Require().NoError(s.svc.Add(s.ctx, "Paris", "Capital of France"))
	s.Require().NoError(s.svc.Add(s.ctx, "Berlin", "Capital of Germany"))
	s.Require().NoError(s.svc.Add(s.ctx, "Rome", "Capital of Italy"))
	ex := new(mocks.MockExaminer)
	ex.On("Ask", "Paris").Return("wrong", nil)
	ex.On("Ask", "Berlin").Return("Capital of Germany", nil)
	ex.On("Tell", mock.Anything).Return(nil)
	s.Require().NoError(s.svc.Ask(s.ctx, 2, ex))

	path := filepath.Join(s.T().TempDir(), "deck.txt")
	n, err := s.svc.Export(s.ctx, path)
	s.Require().NoError(err)
	s.Assert().Equal(3, n)
	s.Assert().Equal([]string{
		"Paris;Capital of France;1",
		"Berlin;Capital of Germany;0",
		"Rome;Capital of Italy;0",
	}, testutil.ReadLines(s.T(), path))

	fresh := services.NewDeckService(deck.New())
	n, err = fresh.Import(s.ctx, path)
	s.Require().NoError(err)
	s.Assert().Equal(3, n)
	s.Assert().Equal(s.svc.Cards(), fresh.Cards())
}

func (s *DeckServiceSuite) TestExport_UnwritablePath() {
	_, err := s.svc.Export(s.ctx, filepath.Join(s.T().TempDir(), "missing", "deck.txt"))
	s.Assert().True(errors.HasCode(err, errors.ErrCodeInternal))
}

func (s *DeckServiceSuite) TestAsk_NegativeCount() {
	err := s.svc.Ask(s.ctx, -1, new(mocks.MockExaminer))
	s.Assert().True(errors.HasCode(err, errors.ErrCodeValidation))
}

func (s *DeckServiceSuite) TestAsk_EmptyDeck() {
	ex := new(mocks.MockExaminer)

	s.Require().NoError(s.svc.Ask(s.ctx, 4, ex))
	ex.AssertNotCalled(s.T(), "Ask", mock.Anything)
	ex.AssertNotCalled(s.T(), "Tell", mock.Anything)
}

func (s *DeckServiceSuite) TestHardestCardsAndReset() {
	path := testutil.WriteDeckFile(s.T(), "A;a;3", "B;b;1", "C;c;3", "D;d;0")
	_, err := s.svc.Import(s.ctx, path)
	s.Require().NoError(err)

	hardest := s.svc.HardestCards(s.ctx)
	s.Require().Len(hardest, 2)
	s.Assert().Equal("A", hardest[0].Term)
	s.Assert().Equal("C", hardest[1].Term)

	s.svc.ResetStats(s.ctx)
	s.Assert().Empty(s.svc.HardestCards(s.ctx))
}

func TestDeckServiceSuite(t *testing.T) {
	suite.Run(t, new(DeckServiceSuite))
}
