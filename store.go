package bitfield

// limbBits is the width of one limb in bits.
const limbBits = 64

// InlineLimbs is the number of limbs a Hybrid field holds inside the
// value itself before spilling to the heap. 4 limbs cover 256 bits,
// enough for the typical visited-set of a few hundred elements with no
// allocation.
const InlineLimbs = 4

// growCap doubles the current allocation, or jumps straight to need when
// doubling is not enough.
func growCap(cur, need int) int {
	next := cur * 2
	if next < need {
		next = need
	}
	return next
}

func (bf *Heap) limbs() []uint64 { return bf.p }

// grow extends the allocation to at least limbCount zeroed limbs and
// returns the extended slice. It never shrinks.
func (bf *Heap) grow(limbCount int) []uint64 {
	if limbCount <= len(bf.p) {
		return bf.p
	}
	// Limbs between len and cap were zeroed by make and are never written,
	// so reslicing exposes only zeroed limbs.
	if limbCount <= cap(bf.p) {
		bf.p = bf.p[:limbCount]
		return bf.p
	}
	next := make([]uint64, limbCount, growCap(len(bf.p), limbCount))
	copy(next, bf.p)
	bf.p = next
	return bf.p
}

// reserve ensures backing capacity for limbCount limbs in total without
// changing the allocated limb count.
func (bf *Heap) reserve(limbCount int) {
	if limbCount <= cap(bf.p) {
		return
	}
	next := make([]uint64, len(bf.p), limbCount)
	copy(next, bf.p)
	bf.p = next
}

func (bf *Hybrid) limbs() []uint64 {
	if bf.spill != nil {
		return bf.spill
	}
	return bf.inline[:bf.n]
}

// limbCap returns the number of limbs the field can hold without
// reallocating.
func (bf *Hybrid) limbCap() int {
	if bf.spill == nil {
		return InlineLimbs
	}
	return cap(bf.spill)
}

// grow extends the allocation to at least limbCount zeroed limbs and
// returns the extended slice. Crossing the inline threshold migrates
// the inline limbs to the heap; the spill is one-way. It never shrinks.
func (bf *Hybrid) grow(limbCount int) []uint64 {
	if bf.spill == nil {
		if limbCount <= bf.n {
			return bf.inline[:bf.n]
		}
		if limbCount <= InlineLimbs {
			bf.n = limbCount
			return bf.inline[:bf.n]
		}
		next := make([]uint64, limbCount, growCap(InlineLimbs, limbCount))
		copy(next, bf.inline[:bf.n])
		bf.spill = next
		return bf.spill
	}
	if limbCount <= len(bf.spill) {
		return bf.spill
	}
	if limbCount <= cap(bf.spill) {
		bf.spill = bf.spill[:limbCount]
		return bf.spill
	}
	next := make([]uint64, limbCount, growCap(len(bf.spill), limbCount))
	copy(next, bf.spill)
	bf.spill = next
	return bf.spill
}

// reserve ensures backing capacity for limbCount limbs in total without
// changing the allocated limb count. Reserving past the inline
// threshold spills immediately.
func (bf *Hybrid) reserve(limbCount int) {
	if limbCount <= bf.limbCap() {
		return
	}
	cur := bf.limbs()
	next := make([]uint64, len(cur), limbCount)
	copy(next, cur)
	bf.spill = next
}
