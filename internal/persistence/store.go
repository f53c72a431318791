// Package persistence stores automaton definitions by name.
package persistence

import (
	"context"
	"errors"

	"github.com/petrijr/regular/pkg/definition"
)

// ErrAutomatonNotFound is returned when no definition is stored under a
// name.
var ErrAutomatonNotFound = errors.New("automaton not found")

// Store handles storage of automaton definitions. Definitions are keyed by
// their Name; saving a name again replaces the previous definition.
type Store interface {
	Save(ctx context.Context, def definition.Definition) error
	Get(ctx context.Context, name string) (definition.Definition, error)
	// List returns the stored names in ascending order.
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
}
