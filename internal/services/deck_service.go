package services

import (
	"context"

	"github.com/vytor/flashcards/internal/cardfile"
	"github.com/vytor/flashcards/internal/deck"
	"github.com/vytor/flashcards/internal/errors"
	"github.com/vytor/flashcards/internal/logger"
	"github.com/vytor/flashcards/internal/models"
)

// DeckService handles deck-related business logic for one study session
type DeckService interface {
	Add(ctx context.Context, term, definition string) error
	Remove(ctx context.Context, term string) error
	ContainsTerm(term string) bool
	ContainsDefinition(definition string) bool
	Import(ctx context.Context, path string) (int, error)
	Export(ctx context.Context, path string) (int, error)
	Ask(ctx context.Context, askCount int, ex deck.Examiner) error
	HardestCards(ctx context.Context) []models.Card
	ResetStats(ctx context.Context)
	Cards() []models.Card
}

type deckService struct {
	deck *deck.Deck
}

// NewDeckService creates a new DeckService over d. A nil deck starts empty.
func NewDeckService(d *deck.Deck) DeckService {
	if d == nil {
		d = deck.New()
	}
	return &deckService{deck: d}
}

func (s *deckService) Add(ctx context.Context, term, definition string) error {
	log := logger.FromContext(ctx)
	log.Debug("adding card: term=%q", term)

	if err := s.deck.Add(term, definition); err != nil {
		log.Debug("card rejected: %v", err)
		return err
	}
	log.Debug("deck size now %d", s.deck.Len())
	return nil
}

func (s *deckService) Remove(ctx context.Context, term string) error {
	log := logger.FromContext(ctx)
	log.Debug("removing card: term=%q", term)

	if err := s.deck.Remove(term); err != nil {
		log.Debug("remove failed: %v", err)
		return err
	}
	return nil
}

func (s *deckService) ContainsTerm(term string) bool {
	return s.deck.ContainsTerm(term)
}

func (s *deckService) ContainsDefinition(definition string) bool {
	return s.deck.ContainsDefinition(definition)
}

// Import reads the whole file before touching the deck, so a missing file,
// a malformed line, or a colliding definition leaves the deck unchanged.
func (s *deckService) Import(ctx context.Context, path string) (int, error) {
	log := logger.FromContext(ctx)
	log.Debug("importing cards: path=%s", path)

	cards, err := cardfile.Load(ctx, path)
	if err != nil {
		return 0, wrapUnknown(err)
	}

	if err := s.deck.Load(cards); err != nil {
		log.Warn("import of %s rejected: %v", path, err)
		return 0, err
	}

	log.Info("imported %d cards from %s", len(cards), path)
	return len(cards), nil
}

func (s *deckService) Export(ctx context.Context, path string) (int, error) {
	log := logger.FromContext(ctx)
	log.Debug("exporting cards: path=%s", path)

	n, err := cardfile.Save(ctx, path, s.deck.Export())
	if err != nil {
		return 0, wrapUnknown(err)
	}

	log.Info("exported %d cards to %s", n, path)
	return n, nil
}

func (s *deckService) Ask(ctx context.Context, askCount int, ex deck.Examiner) error {
	log := logger.FromContext(ctx)
	log.Debug("starting quiz: ask_count=%d, deck_size=%d", askCount, s.deck.Len())

	if askCount < 0 {
		return errors.NewValidationError("ask count", "must not be negative")
	}
	if err := s.deck.Quiz(askCount, ex); err != nil {
		log.Warn("quiz interrupted: %v", err)
		return err
	}
	return nil
}

func (s *deckService) HardestCards(ctx context.Context) []models.Card {
	hardest := s.deck.HardestCards()
	logger.FromContext(ctx).Debug("hardest cards: %d", len(hardest))
	return hardest
}

func (s *deckService) ResetStats(ctx context.Context) {
	logger.FromContext(ctx).Debug("resetting mistake counts for %d cards", s.deck.Len())
	s.deck.ResetStats()
}

func (s *deckService) Cards() []models.Card {
	return s.deck.Export()
}

// wrapUnknown leaves AppErrors as they are and wraps anything else as internal.
func wrapUnknown(err error) error {
	if _, ok := err.(*errors.AppError); ok {
		return err
	}
	return errors.NewInternalError(err)
}
