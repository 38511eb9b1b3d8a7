package bitfield

import (
	"math/rand"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/require"
)

// The stress tests drive a bit field with random set/clear batches and
// cross-check every round against a roaring bitmap oracle.

func TestStress_Heap(t *testing.T) {
	bf := NewHeap(1024)
	runStressTest(t, &bf)
}

func TestStress_Hybrid(t *testing.T) {
	bf := NewHybrid(1024)
	runStressTest(t, &bf)
}

func runStressTest(t *testing.T, bf Field) {
	const (
		rounds    = 500
		universe  = 4096
		batchSize = 5
	)

	rng := rand.New(rand.NewSource(38))
	oracle := roaring.New()

	for round := 0; round < rounds; round++ {
		for n := 0; n < batchSize; n++ {
			key := uint32(rng.Intn(universe))
			bf.SetBit(uint64(key), true)
			oracle.Add(key)
		}
		for n := 0; n < batchSize && !oracle.IsEmpty(); n++ {
			key, err := oracle.Select(uint32(rng.Intn(int(oracle.GetCardinality()))))
			require.NoError(t, err)
			bf.SetBit(uint64(key), false)
			oracle.Remove(key)
		}

		require.Equal(t, int(oracle.GetCardinality()), bf.Count(), "round %d", round)

		got := make([]uint32, 0, bf.Count())
		for i := range bf.Bits() {
			got = append(got, uint32(i))
		}
		require.Equal(t, oracle.ToArray(), got, "round %d", round)
	}
}
