// Package cardfile reads and writes decks in the flat text format
//
//	term;definition;mistakes
//
// one card per line. Fields are not escaped, so a semicolon inside a term or
// definition does not survive a round trip.
package cardfile

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/vytor/flashcards/internal/errors"
	"github.com/vytor/flashcards/internal/logger"
	"github.com/vytor/flashcards/internal/models"
)

const (
	separator   = ";"
	maxLineSize = 1 << 20
)

// Decode parses every non-blank line of r. Fields are trimmed. Lines with
// only term and definition, as written by older versions, get zero mistakes.
func Decode(r io.Reader) ([]models.Card, error) {
	var cards []models.Card
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := decodeLine(lineNo, line)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	return cards, nil
}

func decodeLine(lineNo int, line string) (models.Card, error) {
	fields := strings.Split(line, separator)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	switch len(fields) {
	case 2:
		return models.Card{Term: fields[0], Definition: fields[1]}, nil
	case 3:
		mistakes, err := strconv.Atoi(fields[2])
		if err != nil || mistakes < 0 {
			return models.Card{}, errors.NewParseError(lineNo, fmt.Sprintf("mistakes must be a non-negative integer, got %q", fields[2]))
		}
		return models.Card{Term: fields[0], Definition: fields[1], Mistakes: mistakes}, nil
	default:
		return models.Card{}, errors.NewParseError(lineNo, fmt.Sprintf("expected 3 fields separated by %q, got %d", separator, len(fields)))
	}
}

// Encode writes cards in order and returns the number of lines written.
func Encode(w io.Writer, cards []models.Card) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for _, c := range cards {
		if _, err := fmt.Fprintf(bw, "%s%s%s%s%d\n", c.Term, separator, c.Definition, separator, c.Mistakes); err != nil {
			return n, err
		}
		n++
	}
	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return n, nil
}

// Load reads the deck file at path.
func Load(ctx context.Context, path string) ([]models.Card, error) {
	log := logger.FromContext(ctx).WithPrefix("cardfile")
	log.Debug("loading cards: path=%s", path)

	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewFileNotFoundError(path, err)
		}
		log.Error("failed to open deck file: %v", err)
		return nil, err
	}
	defer f.Close()

	cards, err := Decode(f)
	if err != nil {
		log.Warn("failed to decode %s: %v", path, err)
		return nil, err
	}
	log.Debug("decoded %d cards", len(cards))
	return cards, nil
}

// Save writes cards to path, replacing any previous content.
func Save(ctx context.Context, path string, cards []models.Card) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("cardfile")
	log.Debug("saving cards: path=%s, count=%d", path, len(cards))

	f, err := os.Create(path)
	if err != nil {
		log.Error("failed to create deck file: %v", err)
		return 0, err
	}

	n, err := Encode(f, cards)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Error("failed to write deck file: %v", err)
		return 0, err
	}
	return n, nil
}
