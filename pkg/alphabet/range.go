package alphabet

import (
	"cmp"
	"fmt"
	"iter"
	"math"
)

// validator is implemented by steps whose domain has holes, such as the
// surrogate range of RuneStep.
type validator[T any] interface {
	Valid(v T) bool
}

// Range is a closed interval of values, enumerated by successive steps from
// start to end. The zero Range is empty.
type Range[T cmp.Ordered] struct {
	step       Step[T]
	start, end T
	nonEmpty   bool
}

// NewRange returns the closed interval [start, end]. The range is empty when
// start > end.
func NewRange[T cmp.Ordered](step Step[T], start, end T) Range[T] {
	if start > end {
		return Range[T]{step: step}
	}
	return Range[T]{step: step, start: start, end: end, nonEmpty: true}
}

// EmptyRange returns a range with no values.
func EmptyRange[T cmp.Ordered](step Step[T]) Range[T] {
	return Range[T]{step: step}
}

// IsEmpty reports whether r has no values.
func (r Range[T]) IsEmpty() bool {
	return !r.nonEmpty
}

// Bounds returns the first and last value of r. ok is false for an empty
// range.
func (r Range[T]) Bounds() (start, end T, ok bool) {
	return r.start, r.end, r.nonEmpty
}

// Step returns the arithmetic used to enumerate r.
func (r Range[T]) Step() Step[T] {
	return r.step
}

func (r Range[T]) Contains(sym T) bool {
	if !r.nonEmpty || sym < r.start || sym > r.end {
		return false
	}
	if v, ok := r.step.(validator[T]); ok {
		return v.Valid(sym)
	}
	return true
}

func (r Range[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !r.nonEmpty {
			return
		}
		cur := r.start
		for {
			if !yield(cur) || cur == r.end {
				return
			}
			next, ok := r.step.Forward(cur, 1)
			if !ok {
				return
			}
			cur = next
		}
	}
}

func (r Range[T]) NumValues() (int, bool) {
	if !r.nonEmpty {
		return 0, true
	}
	steps, ok := r.step.StepsBetween(r.start, r.end)
	if !ok || steps >= math.MaxInt {
		return 0, false
	}
	return int(steps) + 1, true
}

// Equal reports whether other is a Range over the same interval. All empty
// ranges are equal.
func (r Range[T]) Equal(other Alphabet[T]) bool {
	o, ok := other.(Range[T])
	if !ok {
		return false
	}
	if !r.nonEmpty || !o.nonEmpty {
		return r.nonEmpty == o.nonEmpty
	}
	return r.start == o.start && r.end == o.end && r.step == o.step
}

func (r Range[T]) String() string {
	if !r.nonEmpty {
		return "[]"
	}
	return fmt.Sprintf("[%v..=%v]", r.start, r.end)
}
