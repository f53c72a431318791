package alphabet

import (
	"cmp"
	"math"
	"unicode/utf8"
)

// Step describes successor and predecessor arithmetic over an ordered
// scalar type.
//
// For any a, b and n:
//
//   - StepsBetween(a, b) == (n, true) iff Forward(a, n) == (b, true)
//   - StepsBetween(a, b) == (n, true) iff Backward(b, n) == (a, true)
//   - StepsBetween(a, b) reports false when a > b, and when the distance
//     does not fit in a uint.
type Step[T cmp.Ordered] interface {
	// StepsBetween returns the number of successor steps from start to end.
	StepsBetween(start, end T) (uint, bool)
	// Forward applies the successor n times. It reports false on overflow.
	Forward(v T, n uint) (T, bool)
	// Backward applies the predecessor n times. It reports false on
	// underflow.
	Backward(v T, n uint) (T, bool)
	// Bounds returns the smallest and largest valid values.
	Bounds() (T, T)
}

// Successor returns the value after v. It panics on overflow.
func Successor[T cmp.Ordered](s Step[T], v T) T {
	out, ok := s.Forward(v, 1)
	if !ok {
		panic("alphabet: overflow in successor")
	}
	return out
}

// SuccessorSaturating returns the value after v, or v itself when v is the
// largest value.
func SuccessorSaturating[T cmp.Ordered](s Step[T], v T) T {
	if out, ok := s.Forward(v, 1); ok {
		return out
	}
	return v
}

// Predecessor returns the value before v. It panics on underflow.
func Predecessor[T cmp.Ordered](s Step[T], v T) T {
	out, ok := s.Backward(v, 1)
	if !ok {
		panic("alphabet: underflow in predecessor")
	}
	return out
}

// PredecessorSaturating returns the value before v, or v itself when v is
// the smallest value.
func PredecessorSaturating[T cmp.Ordered](s Step[T], v T) T {
	if out, ok := s.Backward(v, 1); ok {
		return out
	}
	return v
}

// Unsigned is the set of unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// fitsUint reports whether a 64-bit distance can be held by the host's uint.
func fitsUint(d uint64) bool {
	return d <= math.MaxUint
}

// UnsignedStep steps over an unsigned integer type.
type UnsignedStep[T Unsigned] struct{}

func (UnsignedStep[T]) Bounds() (T, T) {
	return 0, ^T(0)
}

func (UnsignedStep[T]) StepsBetween(start, end T) (uint, bool) {
	if start > end {
		return 0, false
	}
	d := uint64(end) - uint64(start)
	if !fitsUint(d) {
		return 0, false
	}
	return uint(d), true
}

func (UnsignedStep[T]) Forward(v T, n uint) (T, bool) {
	room := uint64(^T(0)) - uint64(v)
	if uint64(n) > room {
		return v, false
	}
	return v + T(n), true
}

func (UnsignedStep[T]) Backward(v T, n uint) (T, bool) {
	if uint64(n) > uint64(v) {
		return v, false
	}
	return v - T(n), true
}

// SignedStep steps over a signed integer type. Distances are computed in
// 64-bit two's complement, which is exact for every pair with start <= end.
type SignedStep[T Signed] struct{}

func signedMax[T Signed]() T {
	var m T = 1
	for m<<1 > m {
		m <<= 1
	}
	return m | (m - 1)
}

func (SignedStep[T]) Bounds() (T, T) {
	hi := signedMax[T]()
	return -hi - 1, hi
}

// distance returns hi - lo for lo <= hi without overflowing.
func distance[T Signed](lo, hi T) uint64 {
	return uint64(int64(hi)) - uint64(int64(lo))
}

func (SignedStep[T]) StepsBetween(start, end T) (uint, bool) {
	if start > end {
		return 0, false
	}
	d := distance(start, end)
	if !fitsUint(d) {
		return 0, false
	}
	return uint(d), true
}

func (s SignedStep[T]) Forward(v T, n uint) (T, bool) {
	_, hi := s.Bounds()
	if uint64(n) > distance(v, hi) {
		return v, false
	}
	return T(int64(uint64(int64(v)) + uint64(n))), true
}

func (s SignedStep[T]) Backward(v T, n uint) (T, bool) {
	lo, _ := s.Bounds()
	if uint64(n) > distance(lo, v) {
		return v, false
	}
	return T(int64(uint64(int64(v)) - uint64(n))), true
}

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	surrogateGap = surrogateMax - surrogateMin + 1
)

// RuneStep steps over Unicode scalar values. The surrogate range
// U+D800..U+DFFF is skipped in both directions.
type RuneStep struct{}

func (RuneStep) Bounds() (rune, rune) {
	return 0, utf8.MaxRune
}

// Valid reports whether r is a Unicode scalar value.
func (RuneStep) Valid(r rune) bool {
	return utf8.ValidRune(r)
}

func (RuneStep) StepsBetween(start, end rune) (uint, bool) {
	if start > end {
		return 0, false
	}
	d := int64(end) - int64(start)
	if start < surrogateMin && end > surrogateMax {
		d -= surrogateGap
	}
	return uint(d), true
}

func (RuneStep) Forward(v rune, n uint) (rune, bool) {
	if uint64(n) > utf8.MaxRune {
		return v, false
	}
	out := int64(v) + int64(n)
	if v < surrogateMin && out >= surrogateMin {
		out += surrogateGap
	}
	if out > utf8.MaxRune {
		return v, false
	}
	return rune(out), true
}

func (RuneStep) Backward(v rune, n uint) (rune, bool) {
	if v < 0 || uint64(n) > uint64(v) {
		return v, false
	}
	out := int64(v) - int64(n)
	if v > surrogateMax && out <= surrogateMax {
		out -= surrogateGap
		if out < 0 {
			return v, false
		}
	}
	return rune(out), true
}
