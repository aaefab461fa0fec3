package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps messages in process memory. Nothing survives a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	byID  map[string]SavedMessage
	order []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]SavedMessage)}
}

func (s *MemoryStore) Save(_ context.Context, m *SavedMessage) error {
	prepare(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[m.ID]; !ok {
		s.order = append(s.order, m.ID)
	}
	s.byID[m.ID] = *m
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (SavedMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.byID[id]
	if !ok {
		return SavedMessage{}, ErrNotFound
	}
	return m, nil
}

func (s *MemoryStore) List(_ context.Context, f Filter) ([]SavedMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []SavedMessage{}
	for i := len(s.order) - 1; i >= 0; i-- {
		if m := s.byID[s.order[i]]; f.Match(m) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) Close() error { return nil }
