package alphabet

import "cmp"

// Inclusive returns the alphabet [start, end].
func Inclusive[T cmp.Ordered](step Step[T], start, end T) Range[T] {
	return NewRange(step, start, end)
}

// Exclusive returns the alphabet [start, end). It is empty when
// start >= end.
func Exclusive[T cmp.Ordered](step Step[T], start, end T) Range[T] {
	if start >= end {
		return EmptyRange(step)
	}
	last, ok := step.Backward(end, 1)
	if !ok {
		return EmptyRange(step)
	}
	return NewRange(step, start, last)
}

// From returns every value from start up to the largest value.
func From[T cmp.Ordered](step Step[T], start T) Range[T] {
	_, hi := step.Bounds()
	return NewRange(step, start, hi)
}

// To returns every value below end.
func To[T cmp.Ordered](step Step[T], end T) Range[T] {
	lo, _ := step.Bounds()
	return Exclusive(step, lo, end)
}

// ToInclusive returns every value up to and including end.
func ToInclusive[T cmp.Ordered](step Step[T], end T) Range[T] {
	lo, _ := step.Bounds()
	return NewRange(step, lo, end)
}

// Full returns every valid value of the step's type.
func Full[T cmp.Ordered](step Step[T]) Range[T] {
	lo, hi := step.Bounds()
	return NewRange(step, lo, hi)
}

// Runes returns the Unicode scalar values in [lo, hi].
func Runes(lo, hi rune) Range[rune] {
	return NewRange[rune](RuneStep{}, lo, hi)
}

// Bytes returns the byte values in [lo, hi].
func Bytes(lo, hi byte) Range[byte] {
	return NewRange[byte](UnsignedStep[byte]{}, lo, hi)
}
