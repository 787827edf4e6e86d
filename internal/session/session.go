// Package session runs the interactive flashcards command loop.
package session

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vytor/flashcards/internal/deck"
	"github.com/vytor/flashcards/internal/errors"
	"github.com/vytor/flashcards/internal/logger"
	"github.com/vytor/flashcards/internal/models"
	"github.com/vytor/flashcards/internal/services"
	"github.com/vytor/flashcards/internal/transcript"
)

const actionPrompt = "Input the action (add, remove, import, export, ask, exit, log, hardest card, reset stats):"

// Session reads commands from a line source and answers on a line sink.
// Everything passing through is kept in a transcript for the log command.
type Session struct {
	svc        services.DeckService
	rec        *transcript.Recorder
	importFrom string
	exportTo   string
	handlers   map[string]func(context.Context) error
}

// Option configures a Session.
type Option func(*Session)

// WithImportFrom imports the deck file at path before the first prompt.
func WithImportFrom(path string) Option {
	return func(s *Session) {
		s.importFrom = path
	}
}

// WithExportTo exports the deck to path when the session ends.
func WithExportTo(path string) Option {
	return func(s *Session) {
		s.exportTo = path
	}
}

// New creates a Session over svc talking through in and out.
func New(svc services.DeckService, in transcript.LineSource, out transcript.LineSink, opts ...Option) *Session {
	s := &Session{
		svc: svc,
		rec: transcript.NewRecorder(in, out),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.handlers = map[string]func(context.Context) error{
		"add":          s.add,
		"remove":       s.remove,
		"import":       s.importCards,
		"export":       s.exportCards,
		"ask":          s.ask,
		"log":          s.saveLog,
		"hardest card": s.hardestCard,
		"reset stats":  s.resetStats,
	}
	return s
}

// errExit ends the command loop normally.
var errExit = stderrors.New("exit")

// Run processes commands until exit or end of input. It returns an error
// only when the session streams themselves fail.
func (s *Session) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("session")
	ctx = logger.NewContext(ctx, log)
	log.Debug("session started")

	if s.importFrom != "" {
		if err := s.importFile(ctx, s.importFrom); err != nil {
			return s.finish(ctx, err)
		}
	}

	for {
		if err := s.say(actionPrompt); err != nil {
			return err
		}
		action, err := s.read()
		if err != nil {
			return s.finish(ctx, err)
		}
		action = strings.TrimSpace(action)
		log.Debug("action: %q", action)

		if action == "exit" {
			return s.finish(ctx, errExit)
		}
		handler, ok := s.handlers[action]
		if !ok {
			if err := s.say(fmt.Sprintf("Unknown action %q.", action)); err != nil {
				return err
			}
			continue
		}
		if err := handler(ctx); err != nil {
			return s.finish(ctx, err)
		}
	}
}

// finish turns exit and end of input into a clean shutdown. Any other
// stream failure still gets the exit export before it is returned.
func (s *Session) finish(ctx context.Context, err error) error {
	log := logger.FromContext(ctx)
	if !stderrors.Is(err, errExit) && !stderrors.Is(err, io.EOF) {
		log.Error("session stream failed: %v", err)
		if s.exportTo != "" {
			if n, exportErr := s.svc.Export(ctx, s.exportTo); exportErr != nil {
				log.Error("exit export failed: %v", exportErr)
			} else {
				log.Warn("saved %d cards to %s before stopping", n, s.exportTo)
			}
		}
		return err
	}
	log.Debug("session ending")
	if err := s.say("Bye bye!"); err != nil {
		return err
	}
	if s.exportTo == "" {
		return nil
	}
	return s.exportFile(ctx, s.exportTo)
}

func (s *Session) say(line string) error {
	return s.rec.WriteLine(line)
}

func (s *Session) read() (string, error) {
	return s.rec.ReadLine()
}

func (s *Session) prompt(line string) (string, error) {
	if err := s.say(line); err != nil {
		return "", err
	}
	return s.read()
}

func (s *Session) add(ctx context.Context) error {
	term, err := s.prompt("The card:")
	if err != nil {
		return err
	}
	for s.svc.ContainsTerm(term) {
		if term, err = s.prompt(fmt.Sprintf(`The card "%s" already exists. Try again:`, term)); err != nil {
			return err
		}
	}

	definition, err := s.prompt("The definition of the card:")
	if err != nil {
		return err
	}
	for s.svc.ContainsDefinition(definition) {
		if definition, err = s.prompt(fmt.Sprintf(`The definition "%s" already exists. Try again:`, definition)); err != nil {
			return err
		}
	}

	if err := s.svc.Add(ctx, term, definition); err != nil {
		return s.say(describe(err))
	}
	return s.say(fmt.Sprintf(`The pair ("%s":"%s") has been added.`, term, definition))
}

func (s *Session) remove(ctx context.Context) error {
	term, err := s.prompt("Which card?")
	if err != nil {
		return err
	}
	if err := s.svc.Remove(ctx, term); err != nil {
		if errors.HasCode(err, errors.ErrCodeNotFound) {
			return s.say(fmt.Sprintf(`Can't remove "%s": there is no such card.`, term))
		}
		return s.say(describe(err))
	}
	return s.say("The card has been removed.")
}

func (s *Session) importCards(ctx context.Context) error {
	path, err := s.prompt("File name:")
	if err != nil {
		return err
	}
	return s.importFile(ctx, path)
}

func (s *Session) importFile(ctx context.Context, path string) error {
	n, err := s.svc.Import(ctx, path)
	switch {
	case errors.HasCode(err, errors.ErrCodeFileNotFound):
		return s.say("File not found.")
	case err != nil:
		return s.say("Import failed: " + describe(err))
	}
	return s.say(fmt.Sprintf("%d cards have been loaded.", n))
}

func (s *Session) exportCards(ctx context.Context) error {
	path, err := s.prompt("File name:")
	if err != nil {
		return err
	}
	return s.exportFile(ctx, path)
}

func (s *Session) exportFile(ctx context.Context, path string) error {
	n, err := s.svc.Export(ctx, path)
	if err != nil {
		return s.say("Export failed: " + describe(err))
	}
	return s.say(fmt.Sprintf("%d cards have been saved.", n))
}

func (s *Session) ask(ctx context.Context) error {
	raw, err := s.prompt("How many times to ask?")
	if err != nil {
		return err
	}
	count, convErr := strconv.Atoi(strings.TrimSpace(raw))
	if convErr != nil || count < 0 {
		return s.say("Please enter a whole number.")
	}

	switch err := s.svc.Ask(ctx, count, examiner{s}); {
	case err == nil:
		return nil
	case isStreamError(err):
		return err
	default:
		return s.say(describe(err))
	}
}

func (s *Session) hardestCard(ctx context.Context) error {
	hardest := s.svc.HardestCards(ctx)
	return s.say(hardestMessage(hardest))
}

func hardestMessage(hardest []models.Card) string {
	switch len(hardest) {
	case 0:
		return "There are no cards with errors."
	case 1:
		return fmt.Sprintf(`The hardest card is "%s". You have %d errors answering it.`, hardest[0].Term, hardest[0].Mistakes)
	}
	terms := make([]string, len(hardest))
	for i, c := range hardest {
		terms[i] = `"` + c.Term + `"`
	}
	return fmt.Sprintf("The hardest cards are %s. You have %d errors answering them.", strings.Join(terms, ", "), hardest[0].Mistakes)
}

func (s *Session) resetStats(ctx context.Context) error {
	s.svc.ResetStats(ctx)
	return s.say("Card statistics have been reset.")
}

func (s *Session) saveLog(ctx context.Context) error {
	path, err := s.prompt("File name:")
	if err != nil {
		return err
	}
	if _, err := s.rec.Save(ctx, path); err != nil {
		logger.FromContext(ctx).Warn("failed to save log: %v", err)
		return s.say("Could not save the log: " + err.Error())
	}
	return s.say("The log has been saved.")
}

// examiner adapts the session streams to deck.Examiner.
type examiner struct {
	s *Session
}

func (e examiner) Ask(term string) (string, error) {
	answer, err := e.s.prompt(fmt.Sprintf(`Print the definition of "%s":`, term))
	if err != nil {
		return "", streamError{err}
	}
	return answer, nil
}

func (e examiner) Tell(v deck.Verdict) error {
	if err := e.s.say(v.String()); err != nil {
		return streamError{err}
	}
	return nil
}

// streamError marks failures of the session streams seen inside a quiz.
type streamError struct {
	err error
}

func (e streamError) Error() string { return e.err.Error() }
func (e streamError) Unwrap() error { return e.err }

func isStreamError(err error) bool {
	var se streamError
	return stderrors.As(err, &se)
}

// describe renders err for the person at the terminal.
func describe(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
