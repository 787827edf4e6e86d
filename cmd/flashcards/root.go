package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/vytor/flashcards/internal/config"
	"github.com/vytor/flashcards/internal/logger"
	"github.com/vytor/flashcards/internal/services"
	"github.com/vytor/flashcards/internal/session"
	"github.com/vytor/flashcards/internal/transcript"
)

// newRootCmd builds the flashcards command. Flags override the environment.
func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "flashcards",
		Short: "Study term/definition flashcards in the terminal",
		Long: `flashcards keeps a deck of term/definition cards, quizzes you on them and
counts your mistakes. Decks are imported from and exported to plain text
files with one "term;definition;mistakes" line per card.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, in, out)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.ImportFrom, "import_from", cfg.ImportFrom, "deck file to import at startup")
	flags.StringVar(&cfg.ExportTo, "export_to", cfg.ExportTo, "deck file to export to on exit")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostic log level (DEBUG, INFO, WARN, ERROR)")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write diagnostics to this file instead of stderr")

	return cmd
}

func run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := []logger.Option{logger.WithLevel(logger.ParseLevel(cfg.LogLevel))}
	var log *logger.Logger
	if cfg.LogFile != "" {
		fileLog, closer, err := logger.OpenFile(cfg.LogFile, opts...)
		if err != nil {
			return err
		}
		defer closer.Close()
		log = fileLog
	} else {
		log = logger.New(opts...)
	}
	logger.SetDefault(log)

	log.Debug("import_from=%s", cfg.ImportFrom)
	log.Debug("export_to=%s", cfg.ExportTo)
	log.Debug("log_level=%s", cfg.LogLevel)

	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.NewContext(ctx, log)

	var sessOpts []session.Option
	if cfg.ImportFrom != "" {
		sessOpts = append(sessOpts, session.WithImportFrom(cfg.ImportFrom))
	}
	if cfg.ExportTo != "" {
		sessOpts = append(sessOpts, session.WithExportTo(cfg.ExportTo))
	}

	s := session.New(
		services.NewDeckService(nil),
		transcript.NewSource(in),
		transcript.NewSink(out),
		sessOpts...,
	)
	return s.Run(ctx)
}
