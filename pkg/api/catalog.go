package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/petrijr/regular/pkg/definition"
	"github.com/petrijr/regular/pkg/dfa"
)

// ErrUnknownOperation is returned for an Op the catalog does not support.
var ErrUnknownOperation = errors.New("unknown operation")

// Automaton is the compiled form of a definition.
type Automaton = dfa.DFA[rune, int]

// Op names a combining operation.
type Op string

const (
	OpUnion        Op = "union"
	OpIntersection Op = "intersection"
	OpDifference   Op = "difference"
	OpComplement   Op = "complement"
)

// ParseOp converts a user supplied name into an Op.
func ParseOp(s string) (Op, error) {
	switch op := Op(s); op {
	case OpUnion, OpIntersection, OpDifference, OpComplement:
		return op, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// Catalog manages named automata.
type Catalog interface {
	// Register validates and stores def, replacing any definition with the
	// same name.
	Register(ctx context.Context, def definition.Definition) error

	// Definition returns the stored definition for name.
	Definition(ctx context.Context, name string) (definition.Definition, error)

	// Automaton returns the compiled automaton for name.
	Automaton(ctx context.Context, name string) (*Automaton, error)

	// Accept reports whether the automaton stored under name accepts input.
	Accept(ctx context.Context, name string, input string) (bool, error)

	// Combine applies a binary operation to the automata stored under left
	// and right, and registers the result as out.
	Combine(ctx context.Context, op Op, left, right, out string) (definition.Definition, error)

	// Complement registers the complement of name as out.
	Complement(ctx context.Context, name, out string) (definition.Definition, error)

	// List returns the registered names in ascending order.
	List(ctx context.Context) ([]string, error)

	// Remove deletes the definition stored under name.
	Remove(ctx context.Context, name string) error
}
