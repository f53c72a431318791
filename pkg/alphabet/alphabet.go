// Package alphabet defines the symbol sets automata are built over.
//
// An Alphabet is any set of comparable symbols that can test membership
// and enumerate its members. Range is the contiguous interval alphabet,
// driven by a Step that knows how to move between neighbouring values;
// Set, Sorted and Boolean cover finite symbol sets.
package alphabet

import (
	"cmp"
	"iter"
	"maps"

	"github.com/petrijr/regular/internal/vecset"
)

// Alphabet is a set of symbols.
type Alphabet[S comparable] interface {
	// Contains reports whether sym is a member.
	Contains(sym S) bool
	// Values yields every member exactly once, in no particular order.
	Values() iter.Seq[S]
	// NumValues returns the number of members. ok is false when the set is
	// unbounded or its size does not fit in an int.
	NumValues() (n int, ok bool)
	// Equal reports whether other is structurally the same alphabet.
	Equal(other Alphabet[S]) bool
}

// Set is a finite alphabet backed by a map.
type Set[S comparable] struct {
	members map[S]struct{}
}

// NewSet returns a set alphabet holding syms.
func NewSet[S comparable](syms ...S) *Set[S] {
	members := make(map[S]struct{}, len(syms))
	for _, s := range syms {
		members[s] = struct{}{}
	}
	return &Set[S]{members: members}
}

func (s *Set[S]) Contains(sym S) bool {
	_, ok := s.members[sym]
	return ok
}

func (s *Set[S]) Values() iter.Seq[S] {
	return maps.Keys(s.members)
}

func (s *Set[S]) NumValues() (int, bool) {
	return len(s.members), true
}

func (s *Set[S]) Equal(other Alphabet[S]) bool {
	o, ok := other.(*Set[S])
	if !ok || len(o.members) != len(s.members) {
		return false
	}
	for sym := range s.members {
		if _, ok := o.members[sym]; !ok {
			return false
		}
	}
	return true
}

// Sorted is a finite alphabet over an ordered symbol type. Values are
// enumerated in ascending order.
type Sorted[S cmp.Ordered] struct {
	members *vecset.VecSet[S]
}

// NewSorted returns an ordered alphabet holding syms.
func NewSorted[S cmp.Ordered](syms ...S) *Sorted[S] {
	return &Sorted[S]{members: vecset.FromSlice(syms)}
}

func (s *Sorted[S]) Contains(sym S) bool {
	return s.members.Contains(sym)
}

func (s *Sorted[S]) Values() iter.Seq[S] {
	return s.members.All()
}

func (s *Sorted[S]) NumValues() (int, bool) {
	return s.members.Len(), true
}

func (s *Sorted[S]) Equal(other Alphabet[S]) bool {
	o, ok := other.(*Sorted[S])
	return ok && s.members.Equal(o.members)
}

// Boolean is the two-symbol alphabet {false, true}.
type Boolean struct{}

func (Boolean) Contains(bool) bool {
	return true
}

func (Boolean) Values() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		_ = yield(false) && yield(true)
	}
}

func (Boolean) NumValues() (int, bool) {
	return 2, true
}

func (Boolean) Equal(other Alphabet[bool]) bool {
	_, ok := other.(Boolean)
	return ok
}
