package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// TempFilePrefix is the prefix used for temporary atomic write files.
	TempFilePrefix = "notes-tmp-"
)

// writeFileAtomic replaces filename with data. The data is fully written
// and synced to a sibling temp file first, so readers see either the old
// record or the new one. The temp file never survives a failure.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", filename, err)
	}
	tmp := f.Name()

	_, werr := f.Write(data)
	if werr == nil {
		werr = f.Sync()
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr == nil {
		werr = os.Chmod(tmp, perm)
	}
	if werr == nil {
		werr = os.Rename(tmp, filename)
	}
	if werr != nil {
		if rerr := os.Remove(tmp); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
			return fmt.Errorf("failed to replace %s: %w (cleanup: %v)", filename, werr, rerr)
		}
		return fmt.Errorf("failed to replace %s: %w", filename, werr)
	}

	return nil
}

// writeFileExclusive creates filename and writes data to it, failing with
// os.ErrExist if the file is already there. A failed write removes the
// partially written file.
func writeFileExclusive(filename string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}

	_, werr := f.Write(data)
	if werr == nil {
		werr = f.Sync()
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		if rerr := os.Remove(filename); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
			return fmt.Errorf("failed to write %s: %w (cleanup: %v)", filename, werr, rerr)
		}
		return fmt.Errorf("failed to write %s: %w", filename, werr)
	}

	return nil
}
