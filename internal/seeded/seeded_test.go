package seeded_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-lowdash/arr"
	"github.com/hasbyte1/go-lowdash/internal/seeded"
)

func TestSameSeedSameStream(t *testing.T) {
	a := seeded.NewString("lowdash")
	b := seeded.NewString("lowdash")
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := seeded.NewString("one")
	b := seeded.NewString("two")
	same := 0
	for i := 0; i < 16; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	require.Less(t, same, 16)
}

func TestInt63IsNonNegative(t *testing.T) {
	r := seeded.New(nil)
	for i := 0; i < 1000; i++ {
		require.GreaterOrEqual(t, r.Int63(), int64(0))
	}
}

func TestSeedRekeys(t *testing.T) {
	a := seeded.NewString("x")
	b := seeded.NewString("y")
	a.Seed(99)
	b.Seed(99)
	require.Equal(t, a.Int63(), b.Int63())
}

func TestShuffleWithSeedIsReproducibleAndAPermutation(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	first := arr.ShuffleWith(in, seeded.NewString("deck"))
	second := arr.ShuffleWith(in, seeded.NewString("deck"))
	require.Equal(t, first, second)

	sorted := append([]int(nil), first...)
	sort.Ints(sorted)
	require.Equal(t, in, sorted)
}
