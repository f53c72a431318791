// Package engine implements api.Catalog on top of a persistence.Store.
package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/petrijr/regular/internal/persistence"
	"github.com/petrijr/regular/pkg/api"
	"github.com/petrijr/regular/pkg/definition"
	"github.com/petrijr/regular/pkg/dfa"
)

// ErrNameRequired is returned when an operation is asked to store its
// result under an empty name.
var ErrNameRequired = errors.New("result name is required")

// engineImpl keeps definitions in a Store and compiled automata in an
// in-process registry.
//
// The registry is only invalidated by this engine. Catalogs sharing a
// Redis or SQLite store across processes see each other's new names, but a
// replaced definition is picked up only after a local Register or Remove.
type engineImpl struct {
	store    persistence.Store
	compiled *automatonRegistry
	observer api.Observer
}

var _ api.Catalog = (*engineImpl)(nil)

// Config describes how to construct a catalog.
// Only used inside this module; external callers use the helper functions.
type Config struct {
	Store    persistence.Store
	Observer api.Observer
}

// NewEngineWithConfig creates a catalog using the given configuration. A
// nil Store defaults to an in-memory one.
func NewEngineWithConfig(cfg Config) api.Catalog {
	store := cfg.Store
	if store == nil {
		store = persistence.NewInMemoryStore()
	}
	obs := cfg.Observer
	if obs == nil {
		obs = api.NoopObserver{}
	}
	return &engineImpl{
		store:    store,
		compiled: newAutomatonRegistry(),
		observer: obs,
	}
}

// NewEngine returns a catalog backed by store.
func NewEngine(store persistence.Store) api.Catalog {
	return NewEngineWithConfig(Config{Store: store})
}

func NewInMemoryEngine() api.Catalog {
	return NewEngine(persistence.NewInMemoryStore())
}

func NewSQLiteEngine(db *sql.DB) (api.Catalog, error) {
	store, err := persistence.NewSQLiteStore(db)
	if err != nil {
		return nil, err
	}
	return NewEngine(store), nil
}

// NewRedisEngine creates a catalog that keeps definitions in Redis under
// prefix.
func NewRedisEngine(client redis.UniversalClient, prefix string) api.Catalog {
	return NewEngine(persistence.NewRedisStore(client, prefix))
}

func (e *engineImpl) Register(ctx context.Context, def definition.Definition) error {
	if err := definition.Validate(def); err != nil {
		return err
	}
	if err := e.store.Save(ctx, def); err != nil {
		return err
	}
	e.compiled.Invalidate(def.Name)
	return nil
}

func (e *engineImpl) Definition(ctx context.Context, name string) (definition.Definition, error) {
	return e.store.Get(ctx, name)
}

func (e *engineImpl) Automaton(ctx context.Context, name string) (*api.Automaton, error) {
	a, gen, ok := e.compiled.Get(name)
	if ok {
		return a, nil
	}

	def, err := e.store.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	a, err = definition.Compile(def)
	states := 0
	if err == nil {
		states = len(a.States())
	}
	e.observer.OnCompile(ctx, name, states, err, time.Since(start))
	if err != nil {
		return nil, err
	}

	e.compiled.Put(name, a, gen)
	return a, nil
}

func (e *engineImpl) Accept(ctx context.Context, name string, input string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	a, err := e.Automaton(ctx, name)
	if err != nil {
		return false, err
	}
	accepted := a.Accept(dfa.Runes(input))
	e.observer.OnAccept(ctx, name, input, accepted)
	return accepted, nil
}

func (e *engineImpl) Combine(ctx context.Context, op api.Op, left, right, out string) (definition.Definition, error) {
	var combine func(l, r *api.Automaton, factory dfa.Factory[rune, int]) (*api.Automaton, error)
	switch op {
	case api.OpUnion:
		combine = dfa.Union[rune, int, int, int]
	case api.OpIntersection:
		combine = dfa.Intersection[rune, int, int, int]
	case api.OpDifference:
		combine = dfa.Difference[rune, int, int, int]
	default:
		return definition.Definition{}, fmt.Errorf("%w: %q is not a binary operation", api.ErrUnknownOperation, op)
	}

	desc := fmt.Sprintf("%s of %s and %s", op, left, right)
	return e.derive(ctx, op, out, desc, func() (*api.Automaton, error) {
		l, err := e.Automaton(ctx, left)
		if err != nil {
			return nil, err
		}
		r, err := e.Automaton(ctx, right)
		if err != nil {
			return nil, err
		}
		return combine(l, r, dfa.DefaultFactory[rune]())
	})
}

func (e *engineImpl) Complement(ctx context.Context, name, out string) (definition.Definition, error) {
	desc := fmt.Sprintf("complement of %s", name)
	return e.derive(ctx, api.OpComplement, out, desc, func() (*api.Automaton, error) {
		a, err := e.Automaton(ctx, name)
		if err != nil {
			return nil, err
		}
		return a.Complement(), nil
	})
}

// derive runs an operation, exports its result as out and registers it.
func (e *engineImpl) derive(ctx context.Context, op api.Op, out, desc string, run func() (*api.Automaton, error)) (definition.Definition, error) {
	start := time.Now()
	def, states, err := e.runDerive(ctx, out, desc, run)
	e.observer.OnOperation(ctx, op, out, states, err, time.Since(start))
	if err != nil {
		return definition.Definition{}, fmt.Errorf("%s %s: %w", op, out, err)
	}
	return def, nil
}

func (e *engineImpl) runDerive(ctx context.Context, out, desc string, run func() (*api.Automaton, error)) (definition.Definition, int, error) {
	if out == "" {
		return definition.Definition{}, 0, ErrNameRequired
	}
	if err := ctx.Err(); err != nil {
		return definition.Definition{}, 0, err
	}

	a, err := run()
	if err != nil {
		return definition.Definition{}, 0, err
	}
	def, err := definition.Export(out, a)
	if err != nil {
		return definition.Definition{}, 0, err
	}
	def.Description = desc
	if err := e.Register(ctx, def); err != nil {
		return definition.Definition{}, 0, err
	}
	return def, len(def.States), nil
}

func (e *engineImpl) List(ctx context.Context) ([]string, error) {
	return e.store.List(ctx)
}

func (e *engineImpl) Remove(ctx context.Context, name string) error {
	if err := e.store.Delete(ctx, name); err != nil {
		return err
	}
	e.compiled.Invalidate(name)
	return nil
}
