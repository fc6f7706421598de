package core

import (
	"context"
	"log/slog"
)

// Service handles the business logic for notes.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new Service.
// A nil logger falls back to slog.Default().
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// CreateNote stores a new note after validating its name.
func (s *Service) CreateNote(ctx context.Context, name, title, content string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	err := s.repo.Create(ctx, Note{Name: name, Title: title, Content: content})
	s.logger.Debug("create note", "name", name, "error", err)
	return err
}

// GetNote retrieves a note.
func (s *Service) GetNote(ctx context.Context, name string) (Note, error) {
	if err := ValidateName(name); err != nil {
		return Note{}, err
	}

	n, err := s.repo.Get(ctx, name)
	s.logger.Debug("get note", "name", name, "error", err)
	return n, err
}

// EditNote replaces the title and content of an existing note.
// Fields are validated before storage is touched, so a rejected edit keeps the original.
func (s *Service) EditNote(ctx context.Context, name, title, content string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	n := Note{Name: name, Title: title, Content: content}
	if err := n.Validate(); err != nil {
		return err
	}

	err := s.repo.Replace(ctx, n)
	s.logger.Debug("edit note", "name", name, "error", err)
	return err
}

// DeleteNote removes a note.
func (s *Service) DeleteNote(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	err := s.repo.Delete(ctx, name)
	s.logger.Debug("delete note", "name", name, "error", err)
	return err
}

// ListNotes returns the names of all notes in storage order.
func (s *Service) ListNotes(ctx context.Context) ([]string, error) {
	names, err := s.repo.List(ctx)
	s.logger.Debug("list notes", "count", len(names), "error", err)
	return names, err
}
