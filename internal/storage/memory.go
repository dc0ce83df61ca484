package storage

import (
	"slices"
	"sync"
)

// MemoryStore keeps the collection in process memory.
type MemoryStore[T any] struct {
	mu    sync.Mutex
	items []T
}

func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{}
}

func (s *MemoryStore[T]) Load() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.items == nil {
		return []T{}, nil
	}
	return slices.Clone(s.items), nil
}

func (s *MemoryStore[T]) Save(items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = slices.Clone(items)
	return nil
}
