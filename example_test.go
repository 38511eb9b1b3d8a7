package bitfield_test

import (
	"fmt"

	"github.com/hupe1980/bitfield"
)

// Example demonstrates basic set/get with the zero value.
func Example() {
	var bf bitfield.Hybrid

	bf.SetBit(3, true)
	bf.SetBit(64, true)

	fmt.Println(bf.Bit(3), bf.Bit(4), bf.Bit(64))
	// Output: true false true
}

// ExampleHeap_Bits demonstrates iterating over the set bits in
// ascending order.
func ExampleHeap_Bits() {
	var bf bitfield.Heap
	bf.SetBit(129, true)
	bf.SetBit(29, true)
	bf.SetBit(167, true)

	for i := range bf.Bits() {
		fmt.Println(i)
	}
	// Output:
	// 29
	// 129
	// 167
}

// ExampleNewHeap demonstrates pre-sizing to avoid growth on the hot
// path.
func ExampleNewHeap() {
	bf := bitfield.NewHeap(12_346)

	bf.SetBit(12_345, true)
	fmt.Println(bf.Bit(12_345), bf.Bit(0))
	// Output: true false
}

// ExampleEqual demonstrates that equality ignores growth history and
// backend choice.
func ExampleEqual() {
	a := bitfield.NewHeap(1000)
	a.SetBit(5, true)

	var b bitfield.Hybrid
	b.SetBit(5, true)

	fmt.Println(bitfield.Equal(&a, &b))
	// Output: true
}
