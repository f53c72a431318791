package dfa

import (
	"cmp"
	"fmt"

	"github.com/petrijr/regular/internal/vecset"
	"github.com/petrijr/regular/pkg/alphabet"
)

// Builder assembles a DFA. It is not safe for concurrent use, and it can be
// built only once: Build hands the storage over to the automaton, and any
// later call on the builder panics.
type Builder[S comparable, St cmp.Ordered] struct {
	storage Storage[S, St]

	start    St
	hasStart bool
	dead     St
	hasDead  bool
	accept   *vecset.VecSet[St]
}

// NewBuilder returns a builder over alpha backed by DefaultStorage.
func NewBuilder[S comparable](alpha alphabet.Alphabet[S]) *Builder[S, int] {
	return NewBuilderWithStorage[S, int](NewDefaultStorage(alpha))
}

// NewBuilderWithStorage returns a builder that records into storage. The
// builder takes ownership of storage.
func NewBuilderWithStorage[S comparable, St cmp.Ordered](storage Storage[S, St]) *Builder[S, St] {
	if storage == nil {
		panic("dfa: nil storage")
	}
	return &Builder[S, St]{
		storage: storage,
		accept:  vecset.New[St](),
	}
}

func (b *Builder[S, St]) backend() Storage[S, St] {
	if b.storage == nil {
		panic("dfa: builder used after Build")
	}
	return b.storage
}

func (b *Builder[S, St]) Alphabet() alphabet.Alphabet[S] {
	return b.backend().Alphabet()
}

// NewState allocates a state.
func (b *Builder[S, St]) NewState() St {
	return b.backend().AddState()
}

// Transition records the edge from --sym--> to, replacing any earlier edge
// for (from, sym).
func (b *Builder[S, St]) Transition(from St, sym S, to St) error {
	s := b.backend()
	if !s.ContainsState(from) {
		return fmt.Errorf("%w: transition source %v", ErrInvalidState, from)
	}
	if !s.ContainsState(to) {
		return fmt.Errorf("%w: transition target %v", ErrInvalidState, to)
	}
	if !s.Alphabet().Contains(sym) {
		return fmt.Errorf("%w: %v", ErrSymbolNotInAlphabet, sym)
	}
	s.AddTransition(from, sym, to)
	return nil
}

// Transitions records each edge in order and stops at the first invalid
// one. Edges before it stay recorded.
func (b *Builder[S, St]) Transitions(ts ...Transition[S, St]) error {
	for _, t := range ts {
		if err := b.Transition(t.From, t.Symbol, t.To); err != nil {
			return err
		}
	}
	return nil
}

// AcceptStates adds states to the accepting set. Validity is checked by
// Build.
func (b *Builder[S, St]) AcceptStates(states ...St) *Builder[S, St] {
	b.backend()
	b.accept.Extend(states...)
	return b
}

func (b *Builder[S, St]) StartState(st St) *Builder[S, St] {
	b.backend()
	b.start, b.hasStart = st, true
	return b
}

// DeadState marks st as absorbing: acceptance stops walking once it is
// reached.
func (b *Builder[S, St]) DeadState(st St) *Builder[S, St] {
	b.backend()
	b.dead, b.hasDead = st, true
	return b
}

func (b *Builder[S, St]) ClearDeadState() *Builder[S, St] {
	b.backend()
	var zero St
	b.dead, b.hasDead = zero, false
	return b
}

// Build validates the configuration and returns the automaton. The builder
// is consumed whether or not Build succeeds.
func (b *Builder[S, St]) Build() (*DFA[S, St], error) {
	s := b.backend()
	b.storage = nil

	if !b.hasStart {
		return nil, ErrMissingStartState
	}
	if !s.ContainsState(b.start) {
		return nil, fmt.Errorf("%w: start state %v", ErrInvalidState, b.start)
	}
	if b.hasDead && !s.ContainsState(b.dead) {
		return nil, fmt.Errorf("%w: dead state %v", ErrInvalidState, b.dead)
	}
	for st := range b.accept.All() {
		if !s.ContainsState(st) {
			return nil, fmt.Errorf("%w: accept state %v", ErrInvalidState, st)
		}
	}

	return &DFA[S, St]{
		start:   b.start,
		accept:  b.accept,
		dead:    b.dead,
		hasDead: b.hasDead,
		storage: s,
	}, nil
}
