package dfa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petrijr/regular/pkg/alphabet"
)

// abcStar accepts a*b*c* over {a, b, c}. State 3 is the dead state.
func abcStar(t *testing.T) *DFA[rune, int] {
	t.Helper()
	return buildABC(t, NewBuilder[rune](alphabet.Runes('a', 'c')))
}

func buildABC(t *testing.T, b *Builder[rune, int]) *DFA[rune, int] {
	t.Helper()

	q0, q1, q2, dead := b.NewState(), b.NewState(), b.NewState(), b.NewState()
	require.NoError(t, b.Transitions(
		Transition[rune, int]{From: q0, Symbol: 'a', To: q0},
		Transition[rune, int]{From: q0, Symbol: 'b', To: q1},
		Transition[rune, int]{From: q0, Symbol: 'c', To: q2},
		Transition[rune, int]{From: q1, Symbol: 'a', To: dead},
		Transition[rune, int]{From: q1, Symbol: 'b', To: q1},
		Transition[rune, int]{From: q1, Symbol: 'c', To: q2},
		Transition[rune, int]{From: q2, Symbol: 'a', To: dead},
		Transition[rune, int]{From: q2, Symbol: 'b', To: dead},
		Transition[rune, int]{From: q2, Symbol: 'c', To: q2},
		Transition[rune, int]{From: dead, Symbol: 'a', To: dead},
		Transition[rune, int]{From: dead, Symbol: 'b', To: dead},
		Transition[rune, int]{From: dead, Symbol: 'c', To: dead},
	))

	d, err := b.StartState(q0).AcceptStates(q0, q1, q2).DeadState(dead).Build()
	require.NoError(t, err)
	return d
}

// containsTwoFalse accepts boolean strings holding two consecutive false
// values. Its accepting state is also its dead state.
func containsTwoFalse(t *testing.T) *DFA[bool, int] {
	t.Helper()

	b := NewBuilder[bool](alphabet.Boolean{})
	q0, q1, q2 := b.NewState(), b.NewState(), b.NewState()
	require.NoError(t, b.Transitions(
		Transition[bool, int]{From: q0, Symbol: false, To: q1},
		Transition[bool, int]{From: q0, Symbol: true, To: q0},
		Transition[bool, int]{From: q1, Symbol: false, To: q2},
		Transition[bool, int]{From: q1, Symbol: true, To: q0},
		Transition[bool, int]{From: q2, Symbol: false, To: q2},
		Transition[bool, int]{From: q2, Symbol: true, To: q2},
	))

	d, err := b.StartState(q0).AcceptStates(q2).DeadState(q2).Build()
	require.NoError(t, err)
	return d
}

// containsEvenTrues accepts boolean strings with an even number of true
// values.
func containsEvenTrues(t *testing.T) *DFA[bool, int] {
	t.Helper()

	b := NewBuilder[bool](alphabet.Boolean{})
	q0, q1 := b.NewState(), b.NewState()
	require.NoError(t, b.Transitions(
		Transition[bool, int]{From: q0, Symbol: false, To: q0},
		Transition[bool, int]{From: q0, Symbol: true, To: q1},
		Transition[bool, int]{From: q1, Symbol: false, To: q1},
		Transition[bool, int]{From: q1, Symbol: true, To: q0},
	))

	d, err := b.StartState(q0).AcceptStates(q0).Build()
	require.NoError(t, err)
	return d
}

// boolStrings returns every boolean string of length 0 through maxLen.
func boolStrings(maxLen int) [][]bool {
	out := [][]bool{{}}
	frontier := [][]bool{{}}
	for range maxLen {
		var next [][]bool
		for _, s := range frontier {
			for _, v := range []bool{false, true} {
				ext := append(append([]bool(nil), s...), v)
				next = append(next, ext)
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

// binary turns a string of '0' and '1' into booleans.
func binary(s string) []bool {
	out := make([]bool, 0, len(s))
	for _, c := range s {
		out = append(out, c == '1')
	}
	return out
}
