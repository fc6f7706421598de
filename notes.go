package notes

import (
	"context"
	"log/slog"

	"github.com/aretw0/notes/internal/platform"
	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/core"
)

// --- Types ---

// Note is a public alias for the core note.
type Note = core.Note

// Config is a public alias for the resolved environment configuration.
type Config = platform.Config

// --- Configuration ---

// Option defines a functional option for configuring the notes service.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithFormat selects the record encoding ("json" or "yaml").
func WithFormat(format string) Option {
	return platform.WithFormat(format)
}

// WithSerializer registers a custom serializer for an extension.
func WithSerializer(ext string, s fs.Serializer) Option {
	return platform.WithSerializer(ext, s)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// --- Factory ---

// New creates a notes Service rooted at dir, creating the directory if needed.
func New(ctx context.Context, dir string, opts ...Option) (*core.Service, error) {
	return platform.New(ctx, dir, opts...)
}

// LoadConfig resolves the notes directory and format from the environment
// (and an optional .env file in the working directory).
func LoadConfig() (Config, error) {
	return platform.LoadConfig()
}
