// Package deck holds the ordered, uniqueness-constrained collection of
// flashcards a study session works on.
package deck

import (
	"github.com/vytor/flashcards/internal/errors"
	"github.com/vytor/flashcards/internal/models"
)

// Deck is an ordered list of cards. Terms are unique and so are
// definitions, across the whole deck. Insertion order drives quiz order.
// A Deck is not safe for concurrent use.
type Deck struct {
	cards []models.Card
}

// New returns an empty deck.
func New() *Deck {
	return &Deck{}
}

// Len returns the number of cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Card returns a copy of the card at index.
func (d *Deck) Card(index int) (models.Card, error) {
	if index < 0 || index >= len(d.cards) {
		return models.Card{}, errors.NewNotFoundError("card index", index)
	}
	return d.cards[index], nil
}

func (d *Deck) indexOfTerm(term string) int {
	for i := range d.cards {
		if d.cards[i].Term == term {
			return i
		}
	}
	return -1
}

func (d *Deck) indexOfDefinition(definition string) int {
	for i := range d.cards {
		if d.cards[i].Definition == definition {
			return i
		}
	}
	return -1
}

// ContainsTerm reports whether a card with exactly this term exists.
func (d *Deck) ContainsTerm(term string) bool {
	return d.indexOfTerm(term) >= 0
}

// ContainsDefinition reports whether any card has exactly this definition.
func (d *Deck) ContainsDefinition(definition string) bool {
	return d.indexOfDefinition(definition) >= 0
}

// Lookup returns the card with the given term.
func (d *Deck) Lookup(term string) (models.Card, bool) {
	i := d.indexOfTerm(term)
	if i < 0 {
		return models.Card{}, false
	}
	return d.cards[i], true
}

// Add appends a new card with zero mistakes. It fails with a DUPLICATE
// error if either the term or the definition is already in the deck.
func (d *Deck) Add(term, definition string) error {
	return d.add(term, definition, 0)
}

func (d *Deck) add(term, definition string, mistakes int) error {
	if d.ContainsTerm(term) {
		return errors.NewDuplicateError("term", term)
	}
	if d.ContainsDefinition(definition) {
		return errors.NewDuplicateError("definition", definition)
	}
	if mistakes < 0 {
		return errors.NewValidationError("mistakes", "must not be negative")
	}
	d.cards = append(d.cards, models.Card{Term: term, Definition: definition, Mistakes: mistakes})
	return nil
}

// Remove deletes the card with the given term, keeping the order of the rest.
func (d *Deck) Remove(term string) error {
	i := d.indexOfTerm(term)
	if i < 0 {
		return errors.NewNotFoundError("card", term)
	}
	d.cards = append(d.cards[:i], d.cards[i+1:]...)
	return nil
}

type updateOptions struct {
	mistakes    int
	setMistakes bool
}

// UpdateOption tunes Update.
type UpdateOption func(*updateOptions)

// WithMistakes makes Update set the card's mistake count to n, whether the
// card already exists or is created by the call.
func WithMistakes(n int) UpdateOption {
	return func(o *updateOptions) {
		o.mistakes = n
		o.setMistakes = true
	}
}

// Update replaces the definition of an existing card, keeping its mistake
// count unless WithMistakes is given. An unknown term is added as a new
// card, seeded with the WithMistakes count (zero by default).
func (d *Deck) Update(term, definition string, opts ...UpdateOption) error {
	var o updateOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.mistakes < 0 {
		return errors.NewValidationError("mistakes", "must not be negative")
	}

	i := d.indexOfTerm(term)
	if i < 0 {
		return d.add(term, definition, o.mistakes)
	}

	if j := d.indexOfDefinition(definition); j >= 0 && j != i {
		return errors.NewDuplicateError("definition", definition)
	}
	d.cards[i].Definition = definition
	if o.setMistakes {
		d.cards[i].Mistakes = o.mistakes
	}
	return nil
}

// Load upserts every card in order, as Update with WithMistakes would.
// It is all or nothing: if any card is rejected the deck is left untouched.
func (d *Deck) Load(cards []models.Card) error {
	staged := &Deck{cards: d.Export()}
	for _, c := range cards {
		if err := staged.Update(c.Term, c.Definition, WithMistakes(c.Mistakes)); err != nil {
			return err
		}
	}
	d.cards = staged.cards
	return nil
}

// IncrementMistake records one wrong answer against the card at index.
func (d *Deck) IncrementMistake(index int) error {
	if index < 0 || index >= len(d.cards) {
		return errors.NewNotFoundError("card index", index)
	}
	d.cards[index].Mistakes++
	return nil
}

// HardestCards returns every card sharing the highest mistake count, in
// deck order. It is empty when nobody has made a mistake yet.
func (d *Deck) HardestCards() []models.Card {
	maxMistakes := 0
	for _, c := range d.cards {
		if c.Mistakes > maxMistakes {
			maxMistakes = c.Mistakes
		}
	}
	if maxMistakes == 0 {
		return nil
	}

	var hardest []models.Card
	for _, c := range d.cards {
		if c.Mistakes == maxMistakes {
			hardest = append(hardest, c)
		}
	}
	return hardest
}

// ResetStats zeroes every mistake count.
func (d *Deck) ResetStats() {
	for i := range d.cards {
		d.cards[i].Mistakes = 0
	}
}

// Export returns a snapshot of every card in deck order.
func (d *Deck) Export() []models.Card {
	out := make([]models.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Entry is the value side of ExportMap.
type Entry struct {
	Definition string
	Mistakes   int
}

// ExportMap returns the deck keyed by term. Map iteration order is random;
// use Export when order matters.
func (d *Deck) ExportMap() map[string]Entry {
	out := make(map[string]Entry, len(d.cards))
	for _, c := range d.cards {
		out[c.Term] = Entry{Definition: c.Definition, Mistakes: c.Mistakes}
	}
	return out
}
