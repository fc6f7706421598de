package platform

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfig.
const (
	EnvNotesDir    = "NOTES_DIR"
	EnvNotesFormat = "NOTES_FORMAT"
)

// DefaultDirName is the folder created under the home directory when
// NOTES_DIR is not set.
const DefaultDirName = ".notes"

// Config is the process-wide configuration, resolved once at startup.
type Config struct {
	// Dir is the notes directory, always ending with a path separator.
	Dir string
	// Format selects the record encoding: "json" or "yaml".
	Format string
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// HomeFunc matches os.UserHomeDir.
type HomeFunc func() (string, error)

// LoadConfig loads an optional .env file from the working directory and
// resolves the configuration from the environment. Variables already set in
// the process environment take precedence over the .env file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	format, err := ResolveFormat(os.LookupEnv)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Dir:    ResolveNotesDir(os.LookupEnv, os.UserHomeDir),
		Format: format,
	}, nil
}

// ResolveNotesDir returns NOTES_DIR if set, otherwise <home>/.notes/.
// An unknown home directory degrades to an empty home segment ("/.notes/").
// It never fails; the caller validates the path before use.
func ResolveNotesDir(lookup LookupFunc, home HomeFunc) string {
	if dir, ok := lookup(EnvNotesDir); ok && dir != "" {
		return withTrailingSeparator(dir)
	}

	h, err := home()
	if err != nil {
		h = ""
	}
	return strings.TrimRight(h, string(os.PathSeparator)) + string(os.PathSeparator) + DefaultDirName + string(os.PathSeparator)
}

// ResolveFormat reads NOTES_FORMAT. Empty means "json".
func ResolveFormat(lookup LookupFunc) (string, error) {
	format, _ := lookup(EnvNotesFormat)
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return "json", nil
	case "yaml", "yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("unsupported %s %q (want json or yaml)", EnvNotesFormat, format)
	}
}

func withTrailingSeparator(dir string) string {
	if os.IsPathSeparator(dir[len(dir)-1]) {
		return dir
	}
	return dir + string(os.PathSeparator)
}
