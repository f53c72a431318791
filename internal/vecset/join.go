package vecset

import (
	"cmp"
	"iter"
)

// Cursor walks a slice with one element of lookahead.
type Cursor[T any] struct {
	items []T
	pos   int
}

// Peek returns the next element without consuming it.
func (c *Cursor[T]) Peek() (T, bool) {
	if c.pos >= len(c.items) {
		var zero T
		return zero, false
	}
	return c.items[c.pos], true
}

// Next consumes and returns the next element.
func (c *Cursor[T]) Next() (T, bool) {
	v, ok := c.Peek()
	if ok {
		c.pos++
	}
	return v, ok
}

// JoinFunc advances the two cursors and returns the next element to emit.
// Returning false ends the join.
type JoinFunc[T any] func(left, right *Cursor[T]) (T, bool)

// Join merges two slices by repeatedly calling f with a cursor over each.
func Join[T any](left, right []T, f JoinFunc[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		l := &Cursor[T]{items: left}
		r := &Cursor[T]{items: right}
		for {
			v, ok := f(l, r)
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Merge yields the union of two ascending slices in ascending order.
// Elements present in both are yielded once.
func Merge[T cmp.Ordered](left, right []T) iter.Seq[T] {
	return Join(left, right, unionStep[T])
}
