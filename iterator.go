package bitfield

import (
	"iter"
	"math/bits"
)

// Bits returns an iterator over the indices of all set bits in
// ascending order. The sequence is lazy and finite; ranging again after
// no mutation yields the same indices. All-zero limbs cost a single
// comparison, and within a limb each set bit is found by a bit scan
// rather than per-bit testing, so sparse limbs are cheap and dense
// limbs are linear in their set bits.
func (bf *Heap) Bits() iter.Seq[uint64] { return allBits(bf.p) }

// Bits returns an iterator over the indices of all set bits in
// ascending order. See Heap.Bits.
func (bf *Hybrid) Bits() iter.Seq[uint64] { return allBits(bf.limbs()) }

// ForEach calls fn for each set bit in ascending order until fn returns
// false.
func (bf *Heap) ForEach(fn func(i uint64) bool) { forEachBit(bf.p, fn) }

// ForEach calls fn for each set bit in ascending order until fn returns
// false.
func (bf *Hybrid) ForEach(fn func(i uint64) bool) { forEachBit(bf.limbs(), fn) }

func allBits(limbs []uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i, limb := range limbs {
			for limb != 0 {
				if !yield(uint64(i)*limbBits + uint64(bits.TrailingZeros64(limb))) {
					return
				}
				// clear the lowest set bit
				limb &= limb - 1
			}
		}
	}
}

func forEachBit(limbs []uint64, fn func(i uint64) bool) {
	for i := range allBits(limbs) {
		if !fn(i) {
			return
		}
	}
}
