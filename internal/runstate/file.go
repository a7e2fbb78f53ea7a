package runstate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists the record as the sole content of RecordFile inside a
// directory. Concurrent invocations are not guarded against; two processes
// recording at once race with last-writer-wins.
type FileStore struct {
	dir string
}

// NewFileStore returns a store keeping its record under dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the location of the record file.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, RecordFile)
}

// Record writes the command as the file's entire content, truncating any
// prior record.
func (s *FileStore) Record(command string) error {
	if err := os.WriteFile(s.Path(), []byte(withResume(command)), 0o644); err != nil {
		return fmt.Errorf("write resume record: %w", err)
	}
	return nil
}

// Load returns the first line of the record, whitespace-trimmed.
func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNoPriorRun
	}
	if err != nil {
		return "", fmt.Errorf("read resume record: %w", err)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(line), nil
}
