package deck

import "fmt"

// Verdict is the outcome of one quiz question.
type Verdict struct {
	Index    int    // position of the asked card
	Term     string // asked term
	Expected string // the card's definition
	Answer   string
	Correct  bool
	// MatchedTerm is set when a wrong answer is the definition of another card.
	MatchedTerm string
}

func (v Verdict) String() string {
	switch {
	case v.Correct:
		return "Correct!"
	case v.MatchedTerm != "":
		return fmt.Sprintf(`Wrong. The right answer is "%s", but your definition is correct for "%s".`, v.Expected, v.MatchedTerm)
	default:
		return fmt.Sprintf(`Wrong. The right answer is "%s".`, v.Expected)
	}
}

// Examiner poses questions and receives verdicts during a quiz.
type Examiner interface {
	// Ask presents term and returns the answer given for it.
	Ask(term string) (string, error)
	// Tell reports the verdict on the last answer.
	Tell(v Verdict) error
}

// Check grades answer against the card at index and records a mistake when
// it is wrong.
func (d *Deck) Check(index int, answer string) (Verdict, error) {
	c, err := d.Card(index)
	if err != nil {
		return Verdict{}, err
	}

	v := Verdict{Index: index, Term: c.Term, Expected: c.Definition, Answer: answer}
	if answer == c.Definition {
		v.Correct = true
		return v, nil
	}
	if j := d.indexOfDefinition(answer); j >= 0 {
		v.MatchedTerm = d.cards[j].Term
	}
	return v, d.IncrementMistake(index)
}

// QuizOrder returns the card indexes a quiz of askCount questions visits:
// the first min(askCount, Len()) cards, cycled until askCount questions are
// reached. It is empty for an empty deck.
func (d *Deck) QuizOrder(askCount int) []int {
	limit := askCount
	if limit > len(d.cards) {
		limit = len(d.cards)
	}
	if limit <= 0 {
		return nil
	}

	order := make([]int, askCount)
	for i := range order {
		order[i] = i % limit
	}
	return order
}

// Quiz asks askCount questions, cycling over the first min(askCount, Len())
// cards in deck order. Wrong answers are recorded as mistakes against the
// asked card. An error from ex stops the quiz; mistakes already recorded
// are kept.
func (d *Deck) Quiz(askCount int, ex Examiner) error {
	for _, i := range d.QuizOrder(askCount) {
		answer, err := ex.Ask(d.cards[i].Term)
		if err != nil {
			return err
		}
		v, err := d.Check(i, answer)
		if err != nil {
			return err
		}
		if err := ex.Tell(v); err != nil {
			return err
		}
	}
	return nil
}
