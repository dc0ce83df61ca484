package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileStore keeps a collection in a single file. Files ending in .yaml or
// .yml are YAML; anything else is JSON.
type FileStore[T any] struct {
	path string
}

// NewFileStore returns a store writing to path.
func NewFileStore[T any](path string) *FileStore[T] {
	return &FileStore[T]{path: path}
}

// Path returns the backing file.
func (s *FileStore[T]) Path() string {
	return s.path
}

func (s *FileStore[T]) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(s.path))
	return ext == ".yaml" || ext == ".yml"
}

// Load reads the collection. A missing or empty file yields no items.
func (s *FileStore[T]) Load() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return []T{}, nil
	}

	var items []T
	if s.isYAML() {
		err = yaml.Unmarshal(data, &items)
	} else {
		err = json.Unmarshal(data, &items)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save replaces the file contents. It writes to a temporary file first and
// renames it into place.
func (s *FileStore[T]) Save(items []T) error {
	if items == nil {
		items = []T{}
	}
	var (
		data []byte
		err  error
	)
	if s.isYAML() {
		data, err = yaml.Marshal(items)
	} else {
		data, err = json.MarshalIndent(items, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
