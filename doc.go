// Package bitfield provides a growable, auto-extending bit field for Go.
//
// A bit field maps non-negative integer indices to booleans. Setting a
// bit beyond the current capacity grows the backing limb storage on
// demand; reads beyond it simply return false. The allocation never
// shrinks. It is intended for hot-path bookkeeping such as visited-set
// tracking in graph and geometry algorithms.
//
// # Quick Start
//
//	var bf bitfield.Hybrid // zero value is ready to use
//	bf.SetBit(42, true)
//
//	if bf.Bit(42) {
//	    // ...
//	}
//
//	for i := range bf.Bits() {
//	    fmt.Println(i) // indices of set bits, ascending
//	}
//
// # Storage Backends
//
// Two backends share identical semantics and differ only in allocation
// behavior. The choice is made at compile time by picking the concrete
// type; the hot path has no dispatch between them:
//
//	// 1. HEAP — limbs always live on the heap.
//	var bf bitfield.Heap
//
//	// 2. HYBRID — up to 256 bits inline with zero allocations,
//	//    transparently spilling to the heap past that.
//	var bf bitfield.Hybrid
//
// Pre-size with the constructors when the index range is known, since
// growth is the only operation that allocates:
//
//	bf := bitfield.NewHeap(100_000)
//
// Bit fields are single-threaded value types with no internal
// synchronization. Wrap one in a mutex for concurrent use.
package bitfield
