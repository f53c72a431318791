package dfa

import "errors"

var (
	// ErrMissingStartState is returned by Build when no start state was set.
	ErrMissingStartState = errors.New("missing start state")

	// ErrInvalidState is returned when a state handle does not belong to the
	// storage it is used with.
	ErrInvalidState = errors.New("invalid state")

	// ErrSymbolNotInAlphabet is returned when a transition uses a symbol
	// outside the automaton's alphabet.
	ErrSymbolNotInAlphabet = errors.New("symbol not in alphabet")

	// ErrStateNotFound signals a broken invariant in the product
	// construction: a stepped pair of states had no allocated handle.
	ErrStateNotFound = errors.New("state not found")

	// ErrOperationWithNonEqualAlphabets is returned when combining automata
	// whose alphabets differ.
	ErrOperationWithNonEqualAlphabets = errors.New("operation with non-equal alphabets")
)
