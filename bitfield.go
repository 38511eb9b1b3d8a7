package bitfield

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// Heap is a bit field backed exclusively by heap-allocated limbs. The
// zero value is an empty field and ready to use.
//
// A bit field maps non-negative integer indices to booleans, backed by
// a sequence of 64-bit limbs. Setting a bit beyond the allocated range
// grows the limb storage on demand; the allocation never shrinks. It is
// not safe for concurrent use; callers needing that must synchronize
// externally.
type Heap struct {
	p []uint64
}

// Hybrid is a bit field that keeps up to InlineLimbs*64 bits inside the
// value itself, allocation-free, and transparently spills to the heap
// past that. Its semantics are identical to Heap; only allocation
// behavior differs. The zero value is an empty field and ready to use.
//
// The backend stays a compile-time choice: all hot-path operations are
// methods on the concrete Heap and Hybrid types with no dispatch
// between them.
type Hybrid struct {
	n      int // allocated limb count while inline
	inline [InlineLimbs]uint64
	spill  []uint64
}

// NewHeap creates a heap-backed bit field with at least bits zeroed
// bits already addressable: Bit(bits-1) will not trigger growth. A
// count of 0 yields an empty field, equivalent to the zero value.
func NewHeap(bits int) Heap {
	var bf Heap
	if bits > 0 {
		bf.grow((bits + limbBits - 1) / limbBits)
	}
	return bf
}

// NewHybrid creates a hybrid bit field with at least bits zeroed bits
// already addressable. Up to InlineLimbs*64 bits this allocates
// nothing; beyond that the field starts out spilled. A count of 0
// yields an empty field, equivalent to the zero value.
func NewHybrid(bits int) Hybrid {
	var bf Hybrid
	if bits > 0 {
		bf.grow((bits + limbBits - 1) / limbBits)
	}
	return bf
}

// Field is the contract shared by the two backends. Hot paths should
// use the concrete Heap and Hybrid types directly; Field exists for
// code that must accept either backend, such as Equal and shared
// tests. Only types in this package satisfy it.
type Field interface {
	Bit(i uint64) bool
	SetBit(i uint64, v bool)
	IsEmpty() bool
	Count() int
	Capacity() int
	Reserve(additionalBits int)
	Clear()
	Bits() iter.Seq[uint64]
	ForEach(fn func(i uint64) bool)
	String() string

	limbs() []uint64
}

var (
	_ Field = (*Heap)(nil)
	_ Field = (*Hybrid)(nil)
)

// Bit reports whether bit i is set. Reads beyond the allocated range
// return false and never grow the field.
func (bf *Heap) Bit(i uint64) bool { return bitAt(bf.p, i) }

// Bit reports whether bit i is set. Reads beyond the allocated range
// return false and never grow the field.
func (bf *Hybrid) Bit(i uint64) bool { return bitAt(bf.limbs(), i) }

// SetBit sets or clears bit i. When i is at or beyond the allocated
// range the limb storage grows first, appending zeroed limbs, so a
// clear beyond the range still extends capacity. Growth completes
// before the write; no partially initialized limb is ever observable.
func (bf *Heap) SetBit(i uint64, v bool) {
	if limb := int(i / limbBits); limb >= len(bf.p) {
		bf.grow(limb + 1)
	}
	storeBit(bf.p, i, v)
}

// SetBit sets or clears bit i, growing the limb storage first when i is
// beyond the allocated range. Crossing the inline threshold migrates
// the inline limbs to the heap before the write.
func (bf *Hybrid) SetBit(i uint64, v bool) {
	limbs := bf.limbs()
	if limb := int(i / limbBits); limb >= len(limbs) {
		limbs = bf.grow(limb + 1)
	}
	storeBit(limbs, i, v)
}

// IsEmpty reports whether every bit is false.
func (bf *Heap) IsEmpty() bool { return noneSet(bf.p) }

// IsEmpty reports whether every bit is false.
func (bf *Hybrid) IsEmpty() bool { return noneSet(bf.limbs()) }

// Count returns the number of set bits.
func (bf *Heap) Count() int { return countBits(bf.p) }

// Count returns the number of set bits.
func (bf *Hybrid) Count() int { return countBits(bf.limbs()) }

// Capacity returns the number of bits the field can hold without
// reallocating.
func (bf *Heap) Capacity() int { return cap(bf.p) * limbBits }

// Capacity returns the number of bits the field can hold without
// reallocating. Before the spill this is the inline capacity.
func (bf *Hybrid) Capacity() int { return bf.limbCap() * limbBits }

// Reserve ensures backing capacity for at least additionalBits more
// bits beyond the allocated range, reallocating at most once. It does
// not make new bits addressable; SetBit still grows as needed.
func (bf *Heap) Reserve(additionalBits int) {
	if additionalBits > 0 {
		bf.reserve(len(bf.p) + (additionalBits+limbBits-1)/limbBits)
	}
}

// Reserve ensures backing capacity for at least additionalBits more
// bits beyond the allocated range. Reserving past the inline threshold
// spills immediately.
func (bf *Hybrid) Reserve(additionalBits int) {
	if additionalBits > 0 {
		bf.reserve(len(bf.limbs()) + (additionalBits+limbBits-1)/limbBits)
	}
}

// Clear resets every bit to false. The allocated limbs are kept, so
// capacity does not shrink.
func (bf *Heap) Clear() { clear(bf.p) }

// Clear resets every bit to false. The allocated limbs are kept, so
// capacity does not shrink.
func (bf *Hybrid) Clear() { clear(bf.limbs()) }

// Clone returns a deep copy that shares no limb storage with bf.
func (bf *Heap) Clone() Heap {
	var out Heap
	if len(bf.p) > 0 {
		copy(out.grow(len(bf.p)), bf.p)
	}
	return out
}

// Clone returns a deep copy that shares no limb storage with bf. A
// still-inline field clones without allocating.
func (bf *Hybrid) Clone() Hybrid {
	var out Hybrid
	src := bf.limbs()
	if len(src) > 0 {
		copy(out.grow(len(src)), src)
	}
	return out
}

// String renders the limbs as hex, most significant limb first. The
// format is for debugging only and carries no compatibility promise.
func (bf *Heap) String() string { return formatLimbs(bf.p) }

// String renders the limbs as hex, most significant limb first. The
// format is for debugging only and carries no compatibility promise.
func (bf *Hybrid) String() string { return formatLimbs(bf.limbs()) }

// Equal reports whether a and b hold the same set of bits. Trailing
// zero limbs are ignored, so two fields that reached the same logical
// state through different growth histories compare equal. The backends
// may differ.
func Equal(a, b Field) bool {
	la, lb := a.limbs(), b.limbs()
	if len(la) > len(lb) {
		la, lb = lb, la
	}
	for i, limb := range la {
		if limb != lb[i] {
			return false
		}
	}
	for _, limb := range lb[len(la):] {
		if limb != 0 {
			return false
		}
	}
	return true
}

// bitAt reports bit i of limbs; bits beyond the slice read false.
func bitAt(limbs []uint64, i uint64) bool {
	limb := i / limbBits
	return limb < uint64(len(limbs)) && limbs[limb]&(1<<(i%limbBits)) != 0
}

// storeBit sets or clears bit i. The target limb must be allocated.
func storeBit(limbs []uint64, i uint64, v bool) {
	mask := uint64(1) << (i % limbBits)
	if v {
		limbs[i/limbBits] |= mask
	} else {
		limbs[i/limbBits] &^= mask
	}
}

func noneSet(limbs []uint64) bool {
	for _, limb := range limbs {
		if limb != 0 {
			return false
		}
	}
	return true
}

func countBits(limbs []uint64) int {
	n := 0
	for _, limb := range limbs {
		n += bits.OnesCount64(limb)
	}
	return n
}

func formatLimbs(limbs []uint64) string {
	if len(limbs) == 0 {
		return "BitField:0x0"
	}
	var sb strings.Builder
	sb.WriteString("BitField:0x")
	for i := len(limbs) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%016X", limbs[i])
		if i > 0 {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
