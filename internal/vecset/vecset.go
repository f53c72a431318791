// Package vecset implements a set backed by a sorted, duplicate-free slice.
//
// Set algebra is done by merge-joining two sorted slices, so every binary
// operation runs in O(|a|+|b|) and yields its result in ascending order.
package vecset

import (
	"cmp"
	"iter"
	"slices"
)

// VecSet is an ordered set. The zero value is an empty set ready to use.
type VecSet[T cmp.Ordered] struct {
	items []T
}

// New returns an empty set.
func New[T cmp.Ordered]() *VecSet[T] {
	return &VecSet[T]{}
}

// FromSlice builds a set from arbitrary values. src is not retained.
func FromSlice[T cmp.Ordered](src []T) *VecSet[T] {
	items := slices.Clone(src)
	slices.Sort(items)
	return &VecSet[T]{items: slices.Compact(items)}
}

// Collect builds a set from a sequence.
func Collect[T cmp.Ordered](seq iter.Seq[T]) *VecSet[T] {
	items := slices.Collect(seq)
	slices.Sort(items)
	return &VecSet[T]{items: slices.Compact(items)}
}

// Len returns the number of elements.
func (s *VecSet[T]) Len() int {
	return len(s.items)
}

// Contains reports whether item is a member.
func (s *VecSet[T]) Contains(item T) bool {
	_, found := slices.BinarySearch(s.items, item)
	return found
}

// Insert adds item and reports whether it was not already present.
func (s *VecSet[T]) Insert(item T) bool {
	idx, found := slices.BinarySearch(s.items, item)
	if found {
		return false
	}
	s.items = slices.Insert(s.items, idx, item)
	return true
}

// Remove deletes item and reports whether it was present.
func (s *VecSet[T]) Remove(item T) bool {
	idx, found := slices.BinarySearch(s.items, item)
	if !found {
		return false
	}
	s.items = slices.Delete(s.items, idx, idx+1)
	return true
}

// Extend adds many items at once, sorting and deduplicating in bulk.
func (s *VecSet[T]) Extend(items ...T) {
	if len(items) == 0 {
		return
	}
	s.items = append(s.items, items...)
	slices.Sort(s.items)
	s.items = slices.Compact(s.items)
}

// Retain keeps only the elements for which keep returns true.
func (s *VecSet[T]) Retain(keep func(T) bool) {
	s.items = slices.DeleteFunc(s.items, func(v T) bool { return !keep(v) })
}

// Clear removes every element.
func (s *VecSet[T]) Clear() {
	s.items = s.items[:0]
}

// Slice returns the backing slice in ascending order. Callers must not
// modify it.
func (s *VecSet[T]) Slice() []T {
	return s.items
}

// All yields the elements in ascending order.
func (s *VecSet[T]) All() iter.Seq[T] {
	return slices.Values(s.items)
}

// Clone returns an independent copy.
func (s *VecSet[T]) Clone() *VecSet[T] {
	return &VecSet[T]{items: slices.Clone(s.items)}
}

// Equal reports whether both sets hold the same elements.
func (s *VecSet[T]) Equal(other *VecSet[T]) bool {
	return slices.Equal(s.items, other.items)
}

// Intersection yields the elements present in both s and other.
func (s *VecSet[T]) Intersection(other *VecSet[T]) iter.Seq[T] {
	return Join(s.items, other.items, intersectionStep[T])
}

// Union yields the elements present in either s or other.
func (s *VecSet[T]) Union(other *VecSet[T]) iter.Seq[T] {
	return Join(s.items, other.items, unionStep[T])
}

// Difference yields the elements of s that are not in other.
func (s *VecSet[T]) Difference(other *VecSet[T]) iter.Seq[T] {
	return Join(s.items, other.items, differenceStep[T])
}

// SymmetricDifference yields the elements in exactly one of s and other.
func (s *VecSet[T]) SymmetricDifference(other *VecSet[T]) iter.Seq[T] {
	return Join(s.items, other.items, symmetricDifferenceStep[T])
}

// compareHeads orders the next elements of two cursors. An exhausted left
// side compares as short, an exhausted right side as long.
func compareHeads[T cmp.Ordered](left, right *Cursor[T], short, long int) int {
	l, lok := left.Peek()
	if !lok {
		return short
	}
	r, rok := right.Peek()
	if !rok {
		return long
	}
	return cmp.Compare(l, r)
}

func intersectionStep[T cmp.Ordered](left, right *Cursor[T]) (T, bool) {
	for {
		l, lok := left.Peek()
		r, rok := right.Peek()
		if !lok || !rok {
			var zero T
			return zero, false
		}
		switch cmp.Compare(l, r) {
		case 0:
			left.Next()
			return right.Next()
		case -1:
			left.Next()
		default:
			right.Next()
		}
	}
}

func unionStep[T cmp.Ordered](left, right *Cursor[T]) (T, bool) {
	switch compareHeads(left, right, 1, -1) {
	case -1:
		return left.Next()
	case 0:
		right.Next()
		return left.Next()
	default:
		return right.Next()
	}
}

func differenceStep[T cmp.Ordered](left, right *Cursor[T]) (T, bool) {
	for {
		switch compareHeads(left, right, -1, -1) {
		case -1:
			return left.Next()
		case 0:
			left.Next()
			right.Next()
		default:
			right.Next()
		}
	}
}

func symmetricDifferenceStep[T cmp.Ordered](left, right *Cursor[T]) (T, bool) {
	for {
		switch compareHeads(left, right, 1, -1) {
		case -1:
			return left.Next()
		case 0:
			left.Next()
			right.Next()
		default:
			return right.Next()
		}
	}
}
