package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Backend persists reminder marks: "<eventId>_<leadHours>" -> unix millis.
type Backend interface {
	LoadMarks(ctx context.Context) (map[string]int64, error)
	SaveMark(ctx context.Context, key string, firedAtMs int64) error
}

func MarkKey(eventID string, leadHours int) string {
	return fmt.Sprintf("%s_%d", eventID, leadHours)
}

// State remembers when each reminder last fired. A nil backend keeps the
// marks in memory only.
type State struct {
	backend Backend

	mu    sync.RWMutex
	marks map[string]int64
}

func NewState(backend Backend) *State {
	return &State{
		backend: backend,
		marks:   make(map[string]int64),
	}
}

func (s *State) Load(ctx context.Context) error {
	if s.backend == nil {
		return nil
	}

	marks, err := s.backend.LoadMarks(ctx)
	if err != nil {
		return fmt.Errorf("notifier.State.Load: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range marks {
		s.marks[k] = v
	}

	return nil
}

func (s *State) Get(key string) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ms, ok := s.marks[key]
	if !ok {
		return time.Time{}, false
	}

	return time.UnixMilli(ms), true
}

func (s *State) Set(key string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.marks[key] = at.UnixMilli()
}

// Persist writes the in-memory mark for key to the backend.
func (s *State) Persist(ctx context.Context, key string) error {
	if s.backend == nil {
		return nil
	}

	s.mu.RLock()
	ms, ok := s.marks[key]
	s.mu.RUnlock()

	if !ok {
		return nil
	}

	if err := s.backend.SaveMark(ctx, key, ms); err != nil {
		return fmt.Errorf("notifier.State.Persist: %w", err)
	}

	return nil
}

// Mark sets and persists key in one step.
func (s *State) Mark(ctx context.Context, key string, at time.Time) error {
	s.Set(key, at)
	return s.Persist(ctx, key)
}

func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.marks)
}
