package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// LocalStorage keeps archived report files in a flat directory on disk.
// Filenames are generated (uuid-based), so no nesting is needed.
type LocalStorage struct {
	dir string
}

// NewLocalStorage creates the directory if needed and returns a handle.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if dir == "" {
		dir = "./exports"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Save writes the file into the storage directory and returns its name.
func (s *LocalStorage) Save(filename string, data []byte) (string, error) {
	if err := os.WriteFile(s.Path(filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write export %s: %w", filename, err)
	}
	return filename, nil
}

// Delete removes a stored file. A missing file is not an error.
func (s *LocalStorage) Delete(filename string) error {
	if err := os.Remove(s.Path(filename)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete export %s: %w", filename, err)
	}
	return nil
}

// CleanupOlderThan removes files last modified before now-maxAge and
// returns the removed names.
func (s *LocalStorage) CleanupOlderThan(maxAge time.Duration) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("scan export directory: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat export %s: %w", entry.Name(), err)
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(s.Path(entry.Name())); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("delete export %s: %w", entry.Name(), err)
		}
		removed = append(removed, entry.Name())
	}
	return removed, nil
}

// Path returns the on-disk location of a stored file. The base name is
// used so callers cannot escape the storage directory.
func (s *LocalStorage) Path(filename string) string {
	return filepath.Join(s.dir, filepath.Base(filename))
}
