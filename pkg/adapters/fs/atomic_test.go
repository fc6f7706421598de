package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "test.json")
		content := []byte("hello atomic")

		if err := writeFileAtomic(filename, content, 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("Expected content 'hello atomic', got '%s'", string(got))
		}
	})

	t.Run("Overwrites Existing File", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "test.json")

		if err := os.WriteFile(filename, []byte("initial"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		newContent := []byte("overwritten")
		if err := writeFileAtomic(filename, newContent, 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != string(newContent) {
			t.Errorf("Expected content 'overwritten', got '%s'", string(got))
		}
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "test.json")

		if err := writeFileAtomic(filename, []byte("data"), 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		entries, err := os.ReadDir(tmpDir)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), TempFilePrefix) {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
		if len(entries) != 1 {
			t.Errorf("expected exactly 1 entry, got %d", len(entries))
		}
	})

	t.Run("Fails if Directory Missing", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "missing_folder", "test.json")

		err := writeFileAtomic(filename, []byte("fail"), 0644)
		if err == nil {
			t.Error("Expected error when directory is missing, got nil")
		}
	})

	t.Run("Cleans Up When Rename Fails", func(t *testing.T) {
		tmpDir := t.TempDir()
		target := filepath.Join(tmpDir, "busy.json")
		if err := os.MkdirAll(filepath.Join(target, "child"), 0755); err != nil {
			t.Fatal(err)
		}

		if err := writeFileAtomic(target, []byte("data"), 0644); err == nil {
			t.Fatal("Expected error when target is a non-empty directory, got nil")
		}

		entries, err := os.ReadDir(tmpDir)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), TempFilePrefix) {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
	})
}

func TestWriteFileExclusive(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "new.json")

		if err := writeFileExclusive(filename, []byte("fresh"), 0644); err != nil {
			t.Fatalf("writeFileExclusive failed: %v", err)
		}

		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "fresh" {
			t.Errorf("Expected 'fresh', got '%s'", string(got))
		}
	})

	t.Run("Refuses to Overwrite", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "taken.json")
		if err := os.WriteFile(filename, []byte("original"), 0644); err != nil {
			t.Fatal(err)
		}

		err := writeFileExclusive(filename, []byte("intruder"), 0644)
		if !errors.Is(err, os.ErrExist) {
			t.Fatalf("Expected os.ErrExist, got %v", err)
		}

		got, _ := os.ReadFile(filename)
		if string(got) != "original" {
			t.Errorf("existing file was modified: %q", string(got))
		}
	})
}
