package platform

import (
	"log/slog"

	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/core"
)

// options holds the internal configuration for the notes service.
type options struct {
	repository  core.Repository
	logger      *slog.Logger
	format      string
	serializers map[string]fs.Serializer
}

// Option defines a functional option for configuring the service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		repository:  nil,
		logger:      nil,
		format:      "json",
		serializers: make(map[string]fs.Serializer),
	}
}

// WithLogger sets the logger for the service and the repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFormat selects the record encoding ("json" or "yaml").
// The format name doubles as the file extension.
func WithFormat(format string) Option {
	return func(o *options) {
		if format != "" {
			o.format = format
		}
	}
}

// WithSerializer registers a custom serializer for a specific extension
// (".toml" or "toml"). Pair it with WithFormat to make it the active one.
func WithSerializer(ext string, s fs.Serializer) Option {
	return func(o *options) {
		o.serializers[ext] = s
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. a mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}
