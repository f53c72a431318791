package dfa

import (
	"cmp"
	"maps"
	"slices"

	"github.com/petrijr/regular/pkg/alphabet"
)

// Transition is a single edge of the transition function.
type Transition[S comparable, St cmp.Ordered] struct {
	From   St
	Symbol S
	To     St
}

// Storage holds the states and the (possibly partial) transition function
// of an automaton. States are handles issued by AddState; a handle is only
// meaningful to the storage that issued it.
type Storage[S comparable, St cmp.Ordered] interface {
	// Alphabet returns the alphabet transitions are defined over.
	Alphabet() alphabet.Alphabet[S]

	// AllStates returns every state issued so far.
	AllStates() []St

	// AllTransitions returns every recorded transition, ordered by source
	// and then target.
	AllTransitions() []Transition[S, St]

	// ContainsState reports whether st was issued by this storage.
	ContainsState(st St) bool

	// Transition returns the target of the edge leaving from on sym. It
	// reports false when from is not a state of this storage, when sym is
	// not in the alphabet, or when no such edge was recorded.
	Transition(from St, sym S) (St, bool)

	// TransitionUnchecked is Transition without the state and alphabet
	// checks. The caller must guarantee that from was issued by this
	// storage and that sym is a member of its alphabet; the result is
	// unspecified otherwise. It still reports false for a missing edge.
	TransitionUnchecked(from St, sym S) (St, bool)

	// AddState issues a new state handle, distinct from every handle issued
	// before.
	AddState() St

	// AddTransition records the edge from --sym--> to, replacing any edge
	// previously recorded for (from, sym).
	AddTransition(from St, sym S, to St)

	// Clone returns a deep copy.
	Clone() Storage[S, St]
}

// Factory creates an empty storage over an alphabet.
type Factory[S comparable, St cmp.Ordered] func(alpha alphabet.Alphabet[S]) Storage[S, St]

type edgeKey[S comparable] struct {
	state int
	sym   S
}

// DefaultStorage issues states 0, 1, 2, ... and keeps transitions in a map
// keyed by (state, symbol).
type DefaultStorage[S comparable] struct {
	alpha       alphabet.Alphabet[S]
	next        int
	transitions map[edgeKey[S]]int
}

// NewDefaultStorage returns an empty DefaultStorage over alpha.
func NewDefaultStorage[S comparable](alpha alphabet.Alphabet[S]) *DefaultStorage[S] {
	return &DefaultStorage[S]{
		alpha:       alpha,
		transitions: make(map[edgeKey[S]]int),
	}
}

// DefaultFactory returns a Factory producing DefaultStorage values.
func DefaultFactory[S comparable]() Factory[S, int] {
	return func(alpha alphabet.Alphabet[S]) Storage[S, int] {
		return NewDefaultStorage(alpha)
	}
}

func (s *DefaultStorage[S]) Alphabet() alphabet.Alphabet[S] {
	return s.alpha
}

func (s *DefaultStorage[S]) AllStates() []int {
	states := make([]int, s.next)
	for i := range states {
		states[i] = i
	}
	return states
}

func (s *DefaultStorage[S]) AllTransitions() []Transition[S, int] {
	out := make([]Transition[S, int], 0, len(s.transitions))
	for k, to := range s.transitions {
		out = append(out, Transition[S, int]{From: k.state, Symbol: k.sym, To: to})
	}
	slices.SortFunc(out, func(a, b Transition[S, int]) int {
		return cmp.Or(cmp.Compare(a.From, b.From), cmp.Compare(a.To, b.To), compareSymbols(a.Symbol, b.Symbol))
	})
	return out
}

// compareSymbols orders symbols of the predeclared ordered types and bool
// (false first). Other symbol types compare equal, so edges sharing both
// endpoints keep no particular order among themselves.
func compareSymbols[S comparable](a, b S) int {
	switch x := any(a).(type) {
	case int:
		return cmp.Compare(x, any(b).(int))
	case int8:
		return cmp.Compare(x, any(b).(int8))
	case int16:
		return cmp.Compare(x, any(b).(int16))
	case int32:
		return cmp.Compare(x, any(b).(int32))
	case int64:
		return cmp.Compare(x, any(b).(int64))
	case uint:
		return cmp.Compare(x, any(b).(uint))
	case uint8:
		return cmp.Compare(x, any(b).(uint8))
	case uint16:
		return cmp.Compare(x, any(b).(uint16))
	case uint32:
		return cmp.Compare(x, any(b).(uint32))
	case uint64:
		return cmp.Compare(x, any(b).(uint64))
	case uintptr:
		return cmp.Compare(x, any(b).(uintptr))
	case float32:
		return cmp.Compare(x, any(b).(float32))
	case float64:
		return cmp.Compare(x, any(b).(float64))
	case string:
		return cmp.Compare(x, any(b).(string))
	case bool:
		y := any(b).(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	}
	return 0
}

func (s *DefaultStorage[S]) ContainsState(st int) bool {
	return st >= 0 && st < s.next
}

func (s *DefaultStorage[S]) Transition(from int, sym S) (int, bool) {
	if !s.ContainsState(from) || !s.alpha.Contains(sym) {
		return 0, false
	}
	return s.TransitionUnchecked(from, sym)
}

func (s *DefaultStorage[S]) TransitionUnchecked(from int, sym S) (int, bool) {
	to, ok := s.transitions[edgeKey[S]{state: from, sym: sym}]
	return to, ok
}

func (s *DefaultStorage[S]) AddState() int {
	st := s.next
	s.next++
	return st
}

func (s *DefaultStorage[S]) AddTransition(from int, sym S, to int) {
	s.transitions[edgeKey[S]{state: from, sym: sym}] = to
}

func (s *DefaultStorage[S]) Clone() Storage[S, int] {
	return &DefaultStorage[S]{
		alpha:       s.alpha,
		next:        s.next,
		transitions: maps.Clone(s.transitions),
	}
}
