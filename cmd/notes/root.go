package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aretw0/notes"
	"github.com/aretw0/notes/pkg/core"
	"github.com/aretw0/notes/pkg/repl"
)

var (
	verbose bool
)

// rootCmd starts the interactive notes session.
var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "An interactive command-line notebook",
	Long: `Notes keeps short titled notes as one file per note in a single directory.
The directory is $NOTES_DIR, or ~/.notes when it is not set.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		}))
		slog.SetDefault(logger.With("session", uuid.NewString()))
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := run(cmd.Context(), os.Stdin, os.Stdout); err != nil {
			fatal(err.Error())
		}
	},
}

// startupError carries the message shown when the notes directory cannot be
// opened. The session never starts after one.
type startupError struct {
	msg string
	err error
}

func (e *startupError) Error() string { return e.msg }
func (e *startupError) Unwrap() error { return e.err }

// openService resolves the configuration and prepares the notes directory.
func openService(ctx context.Context) (*core.Service, error) {
	cfg, err := notes.LoadConfig()
	if err != nil {
		return nil, err
	}
	slog.Debug("configuration loaded", "dir", cfg.Dir, "format", cfg.Format)

	svc, err := notes.New(ctx, cfg.Dir, notes.WithFormat(cfg.Format), notes.WithLogger(slog.Default()))
	switch {
	case errors.Is(err, core.ErrNotDirectory):
		return nil, &startupError{msg: "The dir path is not valid.", err: err}
	case err != nil:
		return nil, &startupError{msg: fmt.Sprintf("Error creating directory: %v", err), err: err}
	}
	return svc, nil
}

// run opens the notes directory and drives the REPL on in and out.
func run(ctx context.Context, in *os.File, out io.Writer) error {
	svc, err := openService(ctx)
	if err != nil {
		return err
	}

	sess := repl.NewSession(svc, repl.NewLineReader(in, out), out,
		repl.WithLogger(slog.Default().With("component", "repl")))
	return sess.Run(ctx)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
