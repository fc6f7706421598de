package repl

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/notes/pkg/core"
)

var helpRows = [][2]string{
	{"create", "Create a new note."},
	{"read (note_name)", "Read a note if it exists."},
	{"edit (note_name)", "Edit an existing note."},
	{"delete | remove | rm (note_name)", "Remove a note if it exists."},
	{"list | ls", "View all existing notes."},
	{"clear | cls", "Clear the console."},
	{"quit | exit", "Stop the notes app."},
}

const helpColumn = 43

func (s *Session) help(ctx context.Context, args []string) (bool, error) {
	fmt.Fprintln(s.out, headerStyle.Render(fmt.Sprintf("%-*s%s", helpColumn, "Command", "Description")))
	fmt.Fprintln(s.out)
	for _, row := range helpRows {
		fmt.Fprintf(s.out, "%-*s%s\n", helpColumn, row[0], row[1])
	}
	return false, nil
}

// create always asks for name, title and content, even when the outcome
// will be a rejection.
func (s *Session) create(ctx context.Context, args []string) (bool, error) {
	name, err := s.in.ReadLine("Enter the note name: ")
	if err != nil {
		return false, err
	}
	title, err := s.in.ReadLine("Enter the note title: ")
	if err != nil {
		return false, err
	}
	content, err := s.in.ReadLine("Enter the note content: ")
	if err != nil {
		return false, err
	}

	if err := s.svc.CreateNote(ctx, name, title, content); err != nil {
		s.report(name, err)
		return false, nil
	}

	fmt.Fprintf(s.out, "The note '%s' was created.\n", name)
	return false, nil
}

func (s *Session) read(ctx context.Context, args []string) (bool, error) {
	name, err := s.resolveName(args)
	if err != nil {
		return false, err
	}

	n, err := s.svc.GetNote(ctx, name)
	if err != nil {
		s.report(name, err)
		return false, nil
	}

	s.show(n)
	return false, nil
}

// edit shows the current note, then asks for the new title and content.
// The note is only replaced once both are valid.
func (s *Session) edit(ctx context.Context, args []string) (bool, error) {
	name, err := s.resolveName(args)
	if err != nil {
		return false, err
	}

	n, err := s.svc.GetNote(ctx, name)
	if err != nil {
		s.report(name, err)
		return false, nil
	}
	s.show(n)

	title, err := s.in.ReadLine("Enter the new note title: ")
	if err != nil {
		return false, err
	}
	content, err := s.in.ReadLine("Enter the new note content: ")
	if err != nil {
		return false, err
	}

	if err := s.svc.EditNote(ctx, name, title, content); err != nil {
		s.report(name, err)
		return false, nil
	}

	fmt.Fprintf(s.out, "The note '%s' was edited.\n", name)
	return false, nil
}

func (s *Session) remove(ctx context.Context, args []string) (bool, error) {
	name, err := s.resolveName(args)
	if err != nil {
		return false, err
	}

	if err := s.svc.DeleteNote(ctx, name); err != nil {
		s.report(name, err)
		return false, nil
	}

	fmt.Fprintf(s.out, "The note '%s' was deleted.\n", name)
	return false, nil
}

func (s *Session) list(ctx context.Context, args []string) (bool, error) {
	names, err := s.svc.ListNotes(ctx)
	if err != nil {
		s.report("", err)
		return false, nil
	}

	for i, name := range names {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, name)
	}
	return false, nil
}

// resolveName takes the name from the first argument, or prompts for it.
func (s *Session) resolveName(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return s.in.ReadLine("Enter the note name: ")
}

func (s *Session) show(n core.Note) {
	fmt.Fprintf(s.out, "\n%s\n%s\n\n", n.Title, n.Content)
}

// report turns a service error into the message shown to the user.
// Rejections are expected; anything else is also logged.
func (s *Session) report(name string, err error) {
	if core.IsRejection(err) {
		s.logger.Debug("rejected", "name", name, "reason", err)
	}

	switch {
	case errors.Is(err, core.ErrAlreadyExists):
		fmt.Fprintf(s.out, "The note name '%s' already exists.\n", name)
	case errors.Is(err, core.ErrNotFound):
		fmt.Fprintf(s.out, "The note name '%s' does not exist.\n", name)
	case errors.Is(err, core.ErrEmptyTitle):
		fmt.Fprintln(s.out, "The note title is empty.")
	case errors.Is(err, core.ErrEmptyContent):
		fmt.Fprintln(s.out, "The note content is empty.")
	case errors.Is(err, core.ErrInvalidName):
		fmt.Fprintf(s.out, "The note name '%s' is not valid.\n", name)
	case errors.Is(err, core.ErrMalformed):
		s.logger.Error("malformed note", "name", name, "error", err)
		fmt.Fprintf(s.out, "The note '%s' could not be read: %v\n", name, err)
	default:
		s.logger.Error("note operation failed", "name", name, "error", err)
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}
