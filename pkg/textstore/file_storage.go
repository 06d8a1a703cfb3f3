package textstore

import (
	"os"
	"path/filepath"
)

// FileStorage implements Storage using a single file.
type FileStorage struct {
	path string
}

// NewFileStorage creates a FileStorage for the given file path.
// Nothing is touched on disk until the first write.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Exists reports whether the path is an existing regular file.
func (s *FileStorage) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// ReadText returns the file contents.
func (s *FileStorage) ReadText() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", newFault("read", err)
	}
	return string(data), nil
}

// WriteText replaces the file contents atomically.
// Uses atomic write (write to temp file, then rename) to prevent corruption.
func (s *FileStorage) WriteText(text string) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return newFault("write", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(text), 0o600); err != nil {
		_ = os.Remove(tmp)
		return newFault("write", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return newFault("write", err)
	}
	return nil
}

// Path returns the file path.
func (s *FileStorage) Path() string {
	return s.path
}
