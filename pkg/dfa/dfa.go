// Package dfa implements deterministic finite automata over arbitrary
// alphabets and their boolean combination by the product construction.
//
// Automata are assembled with a Builder, which validates every state and
// symbol it is given, and are immutable once built:
//
//	b := dfa.NewBuilder(alphabet.Runes('a', 'b'))
//	q0, q1 := b.NewState(), b.NewState()
//	if err := b.Transitions(
//	    dfa.Transition[rune, int]{From: q0, Symbol: 'a', To: q1},
//	    dfa.Transition[rune, int]{From: q1, Symbol: 'b', To: q0},
//	); err != nil {
//	    return err
//	}
//	d, err := b.StartState(q0).AcceptStates(q0).Build()
//
// The transition function lives behind the Storage interface. The default
// backend is map based; TableStorage is a dense alternative, and the
// product operations accept a Factory so their result can use either.
package dfa

import (
	"cmp"
	"iter"
	"slices"

	"github.com/petrijr/regular/internal/vecset"
	"github.com/petrijr/regular/pkg/alphabet"
)

// DFA is an immutable deterministic finite automaton. It is safe for
// concurrent use.
type DFA[S comparable, St cmp.Ordered] struct {
	start   St
	accept  *vecset.VecSet[St]
	dead    St
	hasDead bool
	storage Storage[S, St]
}

// Accept reports whether the automaton accepts input.
//
// Walking stops early once the dead state is reached. A symbol with no
// transition from the current state rejects the input, which covers
// symbols outside the alphabet.
func (d *DFA[S, St]) Accept(input iter.Seq[S]) bool {
	cur := d.start
	for sym := range input {
		if d.hasDead && cur == d.dead {
			break
		}
		next, ok := d.storage.Transition(cur, sym)
		if !ok {
			return false
		}
		cur = next
	}
	return d.accept.Contains(cur)
}

// AcceptUnchecked is Accept without alphabet checks. Every symbol of input
// must be a member of the automaton's alphabet; the result is unspecified
// otherwise.
func (d *DFA[S, St]) AcceptUnchecked(input iter.Seq[S]) bool {
	cur := d.start
	for sym := range input {
		if d.hasDead && cur == d.dead {
			break
		}
		// cur is always a state of d.storage: it starts at the validated
		// start state and only moves along recorded edges.
		next, ok := d.storage.TransitionUnchecked(cur, sym)
		if !ok {
			return false
		}
		cur = next
	}
	return d.accept.Contains(cur)
}

func (d *DFA[S, St]) StartState() St {
	return d.start
}

// DeadState returns the dead state, if one is configured.
func (d *DFA[S, St]) DeadState() (St, bool) {
	return d.dead, d.hasDead
}

// AcceptStates returns the accepting states in ascending order.
func (d *DFA[S, St]) AcceptStates() []St {
	return slices.Clone(d.accept.Slice())
}

func (d *DFA[S, St]) IsAccepting(st St) bool {
	return d.accept.Contains(st)
}

func (d *DFA[S, St]) Alphabet() alphabet.Alphabet[S] {
	return d.storage.Alphabet()
}

func (d *DFA[S, St]) States() []St {
	return d.storage.AllStates()
}

func (d *DFA[S, St]) Transitions() []Transition[S, St] {
	return d.storage.AllTransitions()
}

// Transition looks up a single edge.
func (d *DFA[S, St]) Transition(from St, sym S) (St, bool) {
	return d.storage.Transition(from, sym)
}

// ToBuilder returns a builder preloaded with a copy of the automaton.
func (d *DFA[S, St]) ToBuilder() *Builder[S, St] {
	b := NewBuilderWithStorage(d.storage.Clone())
	b.StartState(d.start)
	b.AcceptStates(d.accept.Slice()...)
	if d.hasDead {
		b.DeadState(d.dead)
	}
	return b
}

// Complement returns a copy of the automaton whose accepting states are
// exactly the states d does not accept. Transitions and the dead state are
// kept.
//
// The result recognizes the complement language only when d is total over
// its alphabet. Input that runs into a missing transition is rejected by
// both d and its complement.
func (d *DFA[S, St]) Complement() *DFA[S, St] {
	all := vecset.FromSlice(d.storage.AllStates())
	return &DFA[S, St]{
		start:   d.start,
		accept:  vecset.Collect(all.Difference(d.accept)),
		dead:    d.dead,
		hasDead: d.hasDead,
		storage: d.storage.Clone(),
	}
}

// Union is the package-level Union over the default storage.
func (d *DFA[S, St]) Union(other *DFA[S, St]) (*DFA[S, int], error) {
	return Union(d, other, DefaultFactory[S]())
}

// Intersection is the package-level Intersection over the default storage.
func (d *DFA[S, St]) Intersection(other *DFA[S, St]) (*DFA[S, int], error) {
	return Intersection(d, other, DefaultFactory[S]())
}

// Difference is the package-level Difference over the default storage.
func (d *DFA[S, St]) Difference(other *DFA[S, St]) (*DFA[S, int], error) {
	return Difference(d, other, DefaultFactory[S]())
}
