package dfa

import (
	"cmp"
	"fmt"
	"slices"
)

// Union returns an automaton accepting what l or r accepts. The result is
// stored in a backend produced by factory.
func Union[S comparable, L, R, Out cmp.Ordered](l *DFA[S, L], r *DFA[S, R], factory Factory[S, Out]) (*DFA[S, Out], error) {
	return product(l, r, factory, func(inL, inR bool) bool { return inL || inR })
}

// Intersection returns an automaton accepting what both l and r accept.
func Intersection[S comparable, L, R, Out cmp.Ordered](l *DFA[S, L], r *DFA[S, R], factory Factory[S, Out]) (*DFA[S, Out], error) {
	return product(l, r, factory, func(inL, inR bool) bool { return inL && inR })
}

// Difference returns an automaton accepting what l accepts and r does not.
func Difference[S comparable, L, R, Out cmp.Ordered](l *DFA[S, L], r *DFA[S, R], factory Factory[S, Out]) (*DFA[S, Out], error) {
	return product(l, r, factory, func(inL, inR bool) bool { return inL && !inR })
}

type statePair[L, R cmp.Ordered] struct {
	l L
	r R
}

// product runs the cross-product construction. Every pair of operand
// states gets one state in the result; the pair's edge on a symbol leads to
// the pair of independently stepped states. accepting decides from the
// operands' acceptance whether a pair accepts.
//
// The result's dead state is the pair of dead states, and only exists when
// both operands have one. A pair whose operands do not both have an edge on
// a symbol gets no edge on it, so partial operands give a partial result.
func product[S comparable, L, R, Out cmp.Ordered](
	l *DFA[S, L],
	r *DFA[S, R],
	factory Factory[S, Out],
	accepting func(inL, inR bool) bool,
) (*DFA[S, Out], error) {
	alpha := l.storage.Alphabet()
	if !alpha.Equal(r.storage.Alphabet()) {
		return nil, ErrOperationWithNonEqualAlphabets
	}

	lStates := l.storage.AllStates()
	rStates := r.storage.AllStates()
	symbols := slices.Collect(alpha.Values())

	b := NewBuilderWithStorage(factory(alpha))
	ids := make(map[statePair[L, R]]Out, len(lStates)*len(rStates))
	for _, a := range lStates {
		for _, c := range rStates {
			ids[statePair[L, R]{a, c}] = b.NewState()
		}
	}
	lookup := func(a L, c R) (Out, error) {
		id, ok := ids[statePair[L, R]{a, c}]
		if !ok {
			return id, fmt.Errorf("%w: (%v, %v)", ErrStateNotFound, a, c)
		}
		return id, nil
	}

	out := b.backend()
	var acc []Out
	for _, a := range lStates {
		for _, c := range rStates {
			from, err := lookup(a, c)
			if err != nil {
				return nil, err
			}
			if accepting(l.accept.Contains(a), r.accept.Contains(c)) {
				acc = append(acc, from)
			}
			for _, sym := range symbols {
				// a and c were issued by their operands' storages and sym
				// ranges over the alphabet both operands share.
				na, okL := l.storage.TransitionUnchecked(a, sym)
				nc, okR := r.storage.TransitionUnchecked(c, sym)
				if !okL || !okR {
					continue
				}
				to, err := lookup(na, nc)
				if err != nil {
					return nil, err
				}
				out.AddTransition(from, sym, to)
			}
		}
	}

	b.AcceptStates(acc...)

	start, err := lookup(l.start, r.start)
	if err != nil {
		return nil, err
	}
	b.StartState(start)
	if l.hasDead && r.hasDead {
		dead, err := lookup(l.dead, r.dead)
		if err != nil {
			return nil, err
		}
		b.DeadState(dead)
	}
	return b.Build()
}
