// Package file keeps reminder marks in a YAML file.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

type Storage struct {
	path string

	mu     sync.Mutex
	marks  map[string]int64
	loaded bool
}

func New(path string) *Storage {
	return &Storage{path: path, marks: make(map[string]int64)}
}

type document struct {
	Marks map[string]int64 `yaml:"marks"`
}

// LoadMarks reads the file. A missing file means no marks.
func (s *Storage) LoadMarks(_ context.Context) (map[string]int64, error) {
	const op = "storage.file.LoadMarks"

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make(map[string]int64, len(s.marks))
	for k, v := range s.marks {
		out[k] = v
	}

	return out, nil
}

func (s *Storage) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.loaded = true
		return nil
	}
	if err != nil {
		return err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode %s: %w", s.path, err)
	}

	for k, v := range doc.Marks {
		s.marks[k] = v
	}
	s.loaded = true

	return nil
}

func (s *Storage) SaveMark(ctx context.Context, key string, firedAtMs int64) error {
	const op = "storage.file.SaveMark"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		if err := s.load(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	s.marks[key] = firedAtMs

	if err := s.write(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// write replaces the file through a temp file in the same directory.
func (s *Storage) write() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(document{Marks: s.marks})
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".notifications-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, s.path)
}
