package persistence

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/petrijr/regular/pkg/definition"
)

// InMemoryStore is a simple, goroutine-safe Store backed by a map.
// Definitions are copied on the way in and out.
type InMemoryStore struct {
	mu   sync.RWMutex
	defs map[string]definition.Definition
}

// NewInMemoryStore creates a new InMemoryStore.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		defs: make(map[string]definition.Definition),
	}
}

// Ensure InMemoryStore implements Store.
var _ Store = (*InMemoryStore)(nil)

func (s *InMemoryStore) Save(_ context.Context, def definition.Definition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.defs[def.Name] = cloneDefinition(def)
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, name string) (definition.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	def, ok := s.defs[name]
	if !ok {
		return definition.Definition{}, ErrAutomatonNotFound
	}
	return cloneDefinition(def), nil
}

func (s *InMemoryStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Sorted(maps.Keys(s.defs)), nil
}

func (s *InMemoryStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.defs[name]; !ok {
		return ErrAutomatonNotFound
	}
	delete(s.defs, name)
	return nil
}

func cloneDefinition(def definition.Definition) definition.Definition {
	def.Alphabet.Ranges = slices.Clone(def.Alphabet.Ranges)
	def.States = slices.Clone(def.States)
	def.Accept = slices.Clone(def.Accept)
	def.Transitions = slices.Clone(def.Transitions)
	return def
}
