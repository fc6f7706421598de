// Package repl implements the interactive read-eval loop of the notes CLI:
// it reads a line, dispatches it to a command and prints the result.
package repl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/notes/pkg/core"
)

// Prompt is shown before every command line.
const Prompt = "> "

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

// command runs one REPL command. args holds the tokens after the command
// name. exit ends the session; err is only returned when input is gone.
type command func(ctx context.Context, args []string) (exit bool, err error)

// Session is one run of the REPL. All state lives here and is threaded
// through the commands; there are no package-level globals.
type Session struct {
	svc      *core.Service
	in       LineReader
	out      io.Writer
	logger   *slog.Logger
	commands map[string]command
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger for the session.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates a session reading from in and writing to out.
func NewSession(svc *core.Service, in LineReader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		svc:    svc,
		in:     in,
		out:    out,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.commands = map[string]command{
		"help":   s.help,
		"create": s.create,
		"read":   s.read,
		"edit":   s.edit,
		"delete": s.remove,
		"remove": s.remove,
		"rm":     s.remove,
		"list":   s.list,
		"ls":     s.list,
		"clear":  s.clear,
		"cls":    s.clear,
		"exit":   s.exit,
		"quit":   s.exit,
	}
	return s
}

// Run prints the welcome banner and loops until exit/quit, end of input, or
// ctx is cancelled. Only a cancelled ctx yields an error.
func (s *Session) Run(ctx context.Context) error {
	s.banner()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.in.ReadLine(Prompt)
		if err != nil {
			s.logger.Debug("input closed", "error", err)
			_, _ = s.exit(ctx, nil)
			return nil
		}

		exit, err := s.Execute(ctx, line)
		if err != nil {
			s.logger.Debug("input closed during command", "error", err)
			_, _ = s.exit(ctx, nil)
			return nil
		}
		if exit {
			return nil
		}
	}
}

// Execute tokenizes one line and runs the matching command. Empty lines and
// unknown commands are silently ignored. Matching is case-sensitive.
func (s *Session) Execute(ctx context.Context, line string) (exit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	cmd, ok := s.commands[fields[0]]
	if !ok {
		s.logger.Debug("ignoring unknown command", "command", fields[0])
		return false, nil
	}

	return cmd(ctx, fields[1:])
}

func (s *Session) banner() {
	fmt.Fprintln(s.out, titleStyle.Render("Welcome to Notes CLI"))
	fmt.Fprintln(s.out, tipsStyle.Render("If you do not know how to use this, type 'help'."))
	fmt.Fprintln(s.out)
}

func (s *Session) clear(ctx context.Context, args []string) (bool, error) {
	fmt.Fprint(s.out, clearScreen)
	s.banner()
	return false, nil
}

func (s *Session) exit(ctx context.Context, args []string) (bool, error) {
	fmt.Fprintln(s.out, "Bye!")
	return true, nil
}
