// Package bitset provides a fixed-capacity bit vector stored in blocks of an
// unsigned integer type.
package bitset

import (
	"iter"
	"math/bits"
	"strconv"
	"strings"
)

// Block is the set of unsigned integer types usable as bit storage.
type Block interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// FixedBitSet is a bit vector of a fixed size. Bit i lives in block
// i/width at offset i%width, where width is the bit width of B.
type FixedBitSet[B Block] struct {
	size   int
	blocks []B
}

// Set32 is the default layout used by the rest of the module.
type Set32 = FixedBitSet[uint32]

// Width returns the number of bits in one block of type B.
func Width[B Block]() int {
	return bits.Len64(uint64(^B(0)))
}

func blocksFor[B Block](size int) int {
	w := Width[B]()
	return (size + w - 1) / w
}

// New returns a bit set able to hold indices 0..size-1, all clear.
func New[B Block](size int) *FixedBitSet[B] {
	if size < 0 {
		panic("bitset: negative size")
	}
	return &FixedBitSet[B]{
		size:   size,
		blocks: make([]B, blocksFor[B](size)),
	}
}

// Len returns the number of addressable bits.
func (s *FixedBitSet[B]) Len() int {
	return s.size
}

// BlockLen returns the number of storage blocks.
func (s *FixedBitSet[B]) BlockLen() int {
	return len(s.blocks)
}

// IsEmpty reports whether the set has no addressable bits.
func (s *FixedBitSet[B]) IsEmpty() bool {
	return s.size == 0
}

func (s *FixedBitSet[B]) locate(i int) (block int, mask B, ok bool) {
	if i < 0 || i >= s.size {
		return 0, 0, false
	}
	w := Width[B]()
	return i / w, B(1) << (i % w), true
}

// Get returns the value of bit i. The second result is false when i is out
// of range.
func (s *FixedBitSet[B]) Get(i int) (bool, bool) {
	block, mask, ok := s.locate(i)
	if !ok {
		return false, false
	}
	return s.blocks[block]&mask != 0, true
}

// Contains reports whether bit i is set. Out-of-range indices are never set.
func (s *FixedBitSet[B]) Contains(i int) bool {
	v, _ := s.Get(i)
	return v
}

// Set sets bit i and reports whether i was in range.
func (s *FixedBitSet[B]) Set(i int) bool {
	block, mask, ok := s.locate(i)
	if !ok {
		return false
	}
	s.blocks[block] |= mask
	return true
}

// Clear clears bit i and reports whether i was in range.
func (s *FixedBitSet[B]) Clear(i int) bool {
	block, mask, ok := s.locate(i)
	if !ok {
		return false
	}
	s.blocks[block] &^= mask
	return true
}

// Reset clears every bit.
func (s *FixedBitSet[B]) Reset() {
	clear(s.blocks)
}

// IsSubset reports whether every bit set in s is also set in other. The
// comparison is block by block, so both sets should share a layout; blocks
// missing from other are treated as empty.
func (s *FixedBitSet[B]) IsSubset(other *FixedBitSet[B]) bool {
	for i, b := range s.blocks {
		var o B
		if i < len(other.blocks) {
			o = other.blocks[i]
		}
		if b&^o != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of set bits.
func (s *FixedBitSet[B]) Count() int {
	n := 0
	for _, b := range s.blocks {
		n += bits.OnesCount64(uint64(b))
	}
	return n
}

// All yields the indices of set bits in ascending order.
func (s *FixedBitSet[B]) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		w := Width[B]()
		for idx, b := range s.blocks {
			word := uint64(b)
			for word != 0 {
				bit := bits.TrailingZeros64(word)
				if !yield(idx*w + bit) {
					return
				}
				word &= word - 1
			}
		}
	}
}

// Clone returns an independent copy of s.
func (s *FixedBitSet[B]) Clone() *FixedBitSet[B] {
	c := &FixedBitSet[B]{size: s.size, blocks: make([]B, len(s.blocks))}
	copy(c.blocks, s.blocks)
	return c
}

// Equal reports whether both sets have the same size and bits.
func (s *FixedBitSet[B]) Equal(other *FixedBitSet[B]) bool {
	if s.size != other.size || len(s.blocks) != len(other.blocks) {
		return false
	}
	for i := range s.blocks {
		if s.blocks[i] != other.blocks[i] {
			return false
		}
	}
	return true
}

// String renders the blocks in binary, lowest block first.
func (s *FixedBitSet[B]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, b := range s.blocks {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatUint(uint64(b), 2))
	}
	sb.WriteByte(']')
	return sb.String()
}
