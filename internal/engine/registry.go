package engine

import (
	"sync"

	"github.com/petrijr/regular/pkg/api"
)

// automatonRegistry caches compiled automata by name.
//
// Every invalidation bumps gen. A compilation that started before an
// invalidation must not be stored, since it may reflect the replaced
// definition, so writers pass the generation they observed before reading
// the store.
type automatonRegistry struct {
	mu     sync.RWMutex
	byName map[string]*api.Automaton
	gen    uint64
}

func newAutomatonRegistry() *automatonRegistry {
	return &automatonRegistry{
		byName: make(map[string]*api.Automaton),
	}
}

func (r *automatonRegistry) Get(name string) (*api.Automaton, uint64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byName[name]
	return a, r.gen, ok
}

// Put stores a under name unless the registry was invalidated after gen.
func (r *automatonRegistry) Put(name string, a *api.Automaton, gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen {
		return false
	}
	r.byName[name] = a
	return true
}

func (r *automatonRegistry) Invalidate(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byName, name)
	r.gen++
}

func (r *automatonRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}
