package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/notes/pkg/core"
)

// DefaultExtension is the record file extension used when none is configured.
const DefaultExtension = ".json"

// Repository implements core.Repository over a single flat directory,
// one file per note.
type Repository struct {
	// Dir is used verbatim as the prefix of every note path. It is expected
	// to end with a path separator.
	Dir        string
	ext        string
	serializer Serializer
	logger     *slog.Logger
	config     Config
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Dir         string
	Extension   string                // e.g. ".json" (default) or ".yaml"
	Serializers map[string]Serializer // Overrides/extends DefaultSerializers, keyed by extension.
	Logger      *slog.Logger
}

// NewRepository creates a new filesystem-backed repository.
// It fails if no serializer is registered for the configured extension.
func NewRepository(config Config) (*Repository, error) {
	if config.Extension == "" {
		config.Extension = DefaultExtension
	}
	config.Extension = normalizeExtension(config.Extension)
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Dir != "" && !os.IsPathSeparator(config.Dir[len(config.Dir)-1]) {
		config.Dir += string(os.PathSeparator)
	}

	serializers := DefaultSerializers()
	for ext, s := range config.Serializers {
		serializers[normalizeExtension(ext)] = s
	}
	config.Serializers = serializers

	s, ok := serializers[config.Extension]
	if !ok {
		return nil, fmt.Errorf("no serializer registered for %q", config.Extension)
	}

	return &Repository{
		Dir:        config.Dir,
		ext:        config.Extension,
		serializer: s,
		logger:     config.Logger,
		config:     config,
	}, nil
}

// normalizeExtension adds the leading dot when it is missing.
func normalizeExtension(ext string) string {
	if strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// PathFor composes the file path of a note: dir + name + ext, without any
// normalization.
func PathFor(dir, name, ext string) string {
	return dir + name + ext
}

// Exists reports whether path denotes an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Path returns the file path of the named note.
func (r *Repository) Path(name string) string {
	return PathFor(r.Dir, name, r.ext)
}

// Extension returns the record file extension (e.g. ".json").
func (r *Repository) Extension() string {
	return r.ext
}

// Initialize makes sure the notes directory exists.
// An existing path that is not a directory yields core.ErrNotDirectory;
// a missing directory is created recursively.
func (r *Repository) Initialize(ctx context.Context) error {
	// Clean drops the trailing separator, which would turn a file into ENOTDIR.
	info, err := os.Stat(filepath.Clean(r.Dir))
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("%w: %s", core.ErrNotDirectory, r.Dir)
	case err == nil:
		return nil
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("failed to stat notes directory: %w", err)
	}

	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create notes directory: %w", err)
	}
	r.logger.Debug("created notes directory", "dir", r.Dir)
	return nil
}

// Create persists a new note.
//
// Checks run in order: existing name, empty title, empty content. Nothing is
// written unless all pass. The file is created exclusively, so a note that
// appears between the check and the write is never overwritten.
func (r *Repository) Create(ctx context.Context, n core.Note) error {
	path := r.Path(n.Name)
	if Exists(path) {
		return fmt.Errorf("%w: %s", core.ErrAlreadyExists, n.Name)
	}

	if err := n.Validate(); err != nil {
		return err
	}

	data, err := r.serializer.Serialize(n)
	if err != nil {
		return fmt.Errorf("failed to serialize note: %w", err)
	}

	if err := writeFileExclusive(path, data, 0644); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", core.ErrAlreadyExists, n.Name)
		}
		return fmt.Errorf("failed to write note: %w", err)
	}

	if !Exists(path) {
		return fmt.Errorf("note %s was written but is not a regular file", path)
	}

	r.logger.Debug("note created", "path", path)
	return nil
}

// Get reads a note from disk.
func (r *Repository) Get(ctx context.Context, name string) (core.Note, error) {
	path := r.Path(name)
	if !Exists(path) {
		return core.Note{}, fmt.Errorf("%w: %s", core.ErrNotFound, name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return core.Note{}, fmt.Errorf("%w: %s", core.ErrNotFound, name)
		}
		return core.Note{}, fmt.Errorf("failed to read note %s: %w", name, err)
	}

	n, err := r.serializer.Parse(bytes.NewReader(data))
	if err != nil {
		return core.Note{}, fmt.Errorf("%w: %s: %w", core.ErrMalformed, name, err)
	}
	n.Name = name

	return n, nil
}

// Replace swaps the stored record of an existing note.
// The new record is validated and fully written to a temp file before it is
// renamed over the old one.
func (r *Repository) Replace(ctx context.Context, n core.Note) error {
	if err := n.Validate(); err != nil {
		return err
	}

	path := r.Path(n.Name)
	if !Exists(path) {
		return fmt.Errorf("%w: %s", core.ErrNotFound, n.Name)
	}

	data, err := r.serializer.Serialize(n)
	if err != nil {
		return fmt.Errorf("failed to serialize note: %w", err)
	}

	if err := writeFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write note: %w", err)
	}

	r.logger.Debug("note replaced", "path", path)
	return nil
}

// Delete removes a note file. It succeeds only if the file is confirmed gone.
func (r *Repository) Delete(ctx context.Context, name string) error {
	path := r.Path(name)
	if !Exists(path) {
		return fmt.Errorf("%w: %s", core.ErrNotFound, name)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}

	if Exists(path) {
		return fmt.Errorf("note %s still exists after removal", path)
	}

	r.logger.Debug("note deleted", "path", path)
	return nil
}

// List returns the names of the notes directly inside the directory, in
// directory-enumeration order. Only regular files matching *<ext> count.
func (r *Repository) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read notes directory: %w", err)
	}

	pattern := "*" + r.ext
	var names []string
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		match, err := doublestar.Match(pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("invalid list pattern %q: %w", pattern, err)
		}
		if !match {
			continue
		}

		// Stat the joined path so symlinks to regular files count, like Exists.
		if !Exists(r.Dir + entry.Name()) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), r.ext)
		if name == "" {
			continue
		}
		names = append(names, name)
	}

	return names, nil
}
