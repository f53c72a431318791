// Package partition implements the partition-refinement structure used by
// Hopcroft-style algorithms.
//
// The domain 0..n-1 is split into disjoint blocks. All elements live in a
// single array; each block owns the index range [first, last) of that
// array and is further divided at mid: the marked elements occupy
// [first, mid) and the unmarked ones [mid, last), both in ascending order.
// Callers mark the elements that should be distinguished and then split
// the block to materialize the distinction.
package partition

import (
	"fmt"
	"iter"
	"slices"

	"github.com/petrijr/regular/internal/bitset"
	"github.com/petrijr/regular/internal/vecset"
)

// SetPartitions is a partition of 0..n-1 into splittable blocks.
type SetPartitions struct {
	elements []int
	marked   *bitset.Set32
	blockOf  []int

	first []int
	mid   []int
	last  []int
}

// New returns a partition of 0..n-1 holding a single block, along with
// that block's id.
func New(n int) (*SetPartitions, int) {
	if n < 0 {
		panic("partition: negative size")
	}
	elements := make([]int, n)
	for i := range elements {
		elements[i] = i
	}
	p := &SetPartitions{
		elements: elements,
		marked:   bitset.New[uint32](n),
		blockOf:  make([]int, n),
		first:    []int{0},
		mid:      []int{0},
		last:     []int{n},
	}
	return p, 0
}

// NumBlocks returns the number of blocks.
func (p *SetPartitions) NumBlocks() int {
	return len(p.first)
}

// Len returns the size of the domain.
func (p *SetPartitions) Len() int {
	return len(p.elements)
}

// Block returns the block that currently owns element e.
func (p *SetPartitions) Block(e int) int {
	return p.blockOf[e]
}

// Size returns the number of elements in block.
func (p *SetPartitions) Size(block int) int {
	return p.last[block] - p.first[block]
}

// IsMarked reports whether e is marked.
func (p *SetPartitions) IsMarked(e int) bool {
	return p.marked.Contains(e)
}

// NoMarks reports whether block has no marked elements.
func (p *SetPartitions) NoMarks(block int) bool {
	return p.mid[block] == p.first[block]
}

// Marked returns the marked elements of block in ascending order. The
// slice aliases internal storage and is only valid until the next Mark or
// Split.
func (p *SetPartitions) Marked(block int) []int {
	return p.elements[p.first[block]:p.mid[block]]
}

// Unmarked returns the unmarked elements of block in ascending order, with
// the same aliasing rules as Marked.
func (p *SetPartitions) Unmarked(block int) []int {
	return p.elements[p.mid[block]:p.last[block]]
}

// Elements yields every element of block in ascending order.
func (p *SetPartitions) Elements(block int) iter.Seq[int] {
	return vecset.Merge(p.Marked(block), p.Unmarked(block))
}

// Mark moves e into the marked prefix of its block. Marking an element
// twice has no effect.
func (p *SetPartitions) Mark(e int) {
	if p.marked.Contains(e) {
		return
	}

	block := p.blockOf[e]
	first, mid, last := p.first[block], p.mid[block], p.last[block]

	loc, found := slices.BinarySearch(p.elements[mid:last], e)
	if !found {
		panic(fmt.Sprintf("partition: element %d missing from block %d", e, block))
	}
	loc += mid

	// Insertion point inside the marked prefix keeps it sorted. Shifting
	// [pos, loc) right by one moves the tail of the marked prefix and the
	// unmarked elements preceding e; the unmarked range stays sorted.
	pos, _ := slices.BinarySearch(p.elements[first:mid], e)
	pos += first
	copy(p.elements[pos+1:loc+1], p.elements[pos:loc])
	p.elements[pos] = e

	p.mid[block] = mid + 1
	p.marked.Set(e)
}

// Split detaches the marked elements of block into a new block and returns
// its id. When nothing is marked, or when every element is marked, the
// block is left whole, its marks are cleared and false is returned.
func (p *SetPartitions) Split(block int) (int, bool) {
	first, mid, last := p.first[block], p.mid[block], p.last[block]

	if mid == first {
		return 0, false
	}
	if mid == last {
		p.mid[block] = first
		for _, e := range p.elements[first:last] {
			p.marked.Clear(e)
		}
		return 0, false
	}

	created := len(p.first)
	p.first = append(p.first, first)
	p.mid = append(p.mid, first)
	p.last = append(p.last, mid)
	p.first[block] = mid

	detached := p.elements[first:mid]
	slices.Sort(detached)
	for _, e := range detached {
		p.marked.Clear(e)
		p.blockOf[e] = created
	}

	return created, true
}
