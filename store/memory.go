package store

import (
	"context"
	"sort"
	"sync"

	"github.com/automata-xyz/go-automata/automaton"
)

type storedModel struct {
	kind automaton.Kind
	def  *automaton.Definition
}

// MemoryStore keeps models and runs in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	models map[string]storedModel
	runs   []*Run
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		models: make(map[string]storedModel),
	}
}

// SaveModel stores a definition under a name.
func (s *MemoryStore) SaveModel(ctx context.Context, name string, kind automaton.Kind, def *automaton.Definition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.models[name] = storedModel{kind: kind, def: def}
	return nil
}

// LoadModel retrieves a stored definition by name.
func (s *MemoryStore) LoadModel(ctx context.Context, name string) (automaton.Kind, *automaton.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.models[name]
	if !ok {
		return "", nil, ErrModelNotFound
	}
	return m.kind, m.def, nil
}

// ListModels returns the stored model names in sorted order.
func (s *MemoryStore) ListModels(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.models))
	for name := range s.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// RecordRun appends a run record.
func (s *MemoryStore) RecordRun(ctx context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, run)
	return nil
}

// ListRuns returns runs for a model in recording order.
func (s *MemoryStore) ListRuns(ctx context.Context, model string) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	runs := make([]*Run, 0, len(s.runs))
	for _, run := range s.runs {
		if model == "" || run.Model == model {
			runs = append(runs, run)
		}
	}
	return runs, nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}
