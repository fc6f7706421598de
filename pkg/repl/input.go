package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// LineReader supplies one line of user input for a given prompt.
// Any error (EOF, interrupt) ends the session.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// NewLineReader returns a TerminalReader when in is an interactive terminal,
// and a ScanReader otherwise (pipes, files).
func NewLineReader(in *os.File, out io.Writer) LineReader {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return NewTerminalReader(in, out)
	}
	return NewScanReader(in, out)
}

// --- Terminal Reader ---

// TerminalReader reads lines through golang.org/x/term, which provides line
// editing and an in-memory history (up/down arrows) for the whole session.
// The terminal is in raw mode only while a line is being read.
type TerminalReader struct {
	fd   int
	term *term.Terminal
}

// NewTerminalReader wraps the terminal behind in; prompts and echo go to out.
func NewTerminalReader(in *os.File, out io.Writer) *TerminalReader {
	rw := struct {
		io.Reader
		io.Writer
	}{in, out}

	return &TerminalReader{
		fd:   int(in.Fd()),
		term: term.NewTerminal(rw, ""),
	}
}

// ReadLine implements LineReader. Ctrl-C and Ctrl-D on an empty line yield io.EOF.
func (r *TerminalReader) ReadLine(prompt string) (string, error) {
	state, err := term.MakeRaw(r.fd)
	if err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(r.fd, state)

	if w, h, err := term.GetSize(r.fd); err == nil {
		_ = r.term.SetSize(w, h)
	}
	r.term.SetPrompt(prompt)

	return r.term.ReadLine()
}

// --- Scan Reader ---

// ScanReader reads newline-terminated lines from any io.Reader, writing the
// prompt to out first. It keeps the lines it has read as history.
type ScanReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	history []string
}

// NewScanReader creates a ScanReader.
func NewScanReader(in io.Reader, out io.Writer) *ScanReader {
	return &ScanReader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadLine implements LineReader. End of input yields io.EOF.
func (r *ScanReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	line := strings.TrimSuffix(r.scanner.Text(), "\r")
	r.history = append(r.history, line)
	return line, nil
}

// History returns the lines read so far, oldest first.
func (r *ScanReader) History() []string {
	return append([]string(nil), r.history...)
}
