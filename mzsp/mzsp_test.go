package mzsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/debtor/bitset64"
	"github.com/katalvlaran/debtor/mzsp"
	"github.com/stretchr/testify/require"
)

func TestGroups_Partitionable(t *testing.T) {
	groups, err := mzsp.Groups([]int64{10, -10, 15, -15})
	require.NoError(t, err)
	require.Equal(t, [][]int64{{15, -15}, {10, -10}}, groups)
}

func TestGroups_Unpartitionable(t *testing.T) {
	groups, err := mzsp.Groups([]int64{10, 20, -15, -15})
	require.NoError(t, err)
	require.Equal(t, [][]int64{{10, 20, -15, -15}}, groups)
}

func TestCompute_EmptyInput(t *testing.T) {
	part, err := mzsp.Compute(nil)
	require.NoError(t, err)
	require.Equal(t, 0, part.Len())
	_, ok := part.Next()
	require.False(t, ok)
}

func TestCompute_NonEmptyZeroSumYieldsBlocks(t *testing.T) {
	part, err := mzsp.Compute([]int64{7, -7})
	require.NoError(t, err)
	require.Equal(t, 1, part.Len())

	block, ok := part.Next()
	require.True(t, ok)
	require.Equal(t, 2, block.Size())
	_, ok = part.Next()
	require.False(t, ok)
}

func TestCompute_TooManyValues(t *testing.T) {
	_, err := mzsp.Compute(make([]int64, 64))
	require.ErrorIs(t, err, mzsp.ErrTooManyValues)
}

func TestCompute_ZeroValuesFormSingletonBlocks(t *testing.T) {
	// A lone zero is its own zero-sum block, so [0, 5, -5, 0] splits
	// into three parts.
	part, err := mzsp.Compute([]int64{0, 5, -5, 0})
	require.NoError(t, err)
	require.Equal(t, 3, part.Len())
}

// randomZeroSum builds a zero-sum multiset of n values: n−1 random draws
// plus one balancing value.
func randomZeroSum(rng *rand.Rand, n int) []int64 {
	values := make([]int64, n)
	var sum int64
	for i := 0; i < n-1; i++ {
		values[i] = rng.Int63n(41) - 20
		sum += values[i]
	}
	values[n-1] = -sum

	return values
}

func TestCompute_BlocksDisjointCoveringZeroSum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(11) // 2..12 values
		values := randomZeroSum(rng, n)

		part, err := mzsp.Compute(values)
		require.NoError(t, err)

		full, err := bitset64.Full(n)
		require.NoError(t, err)

		var (
			union  = bitset64.Empty()
			blocks int
		)
		for {
			block, ok := part.Next()
			if !ok {
				break
			}
			blocks++
			require.False(t, block.IsEmpty(), "values=%v: empty block", values)
			require.True(t, union.Minus(block) == union,
				"values=%v: block %s overlaps earlier blocks", values, block)
			union = union.Union(block)

			var blockSum int64
			it := block.Elements()
			for {
				idx, ok := it.Next()
				if !ok {
					break
				}
				blockSum += values[idx]
			}
			require.Zero(t, blockSum, "values=%v: block %s sums to %d", values, block, blockSum)
		}

		require.GreaterOrEqual(t, blocks, 1, "zero-sum input must yield at least one block")
		require.Equal(t, full, union, "values=%v: blocks must cover all indices", values)
	}
}

func TestTables_SumMatchesDirectSummation(t *testing.T) {
	values := []int64{3, -1, 4, -1, -5}
	tables, err := mzsp.NewTables(values)
	require.NoError(t, err)

	it, err := bitset64.EnumerateAll(len(values))
	require.NoError(t, err)
	for {
		set, ok := it.Next()
		if !ok {
			break
		}
		var want int64
		elems := set.Elements()
		for {
			idx, ok := elems.Next()
			if !ok {
				break
			}
			want += values[idx]
		}
		require.Equal(t, want, tables.Sum(set), "sum mismatch for %s", set)
	}
}

func TestTables_BestWitnessContainsTopElement(t *testing.T) {
	values := []int64{10, -10, 15, -15}
	tables, err := mzsp.NewTables(values)
	require.NoError(t, err)

	full, err := bitset64.Full(len(values))
	require.NoError(t, err)

	count, block := tables.Best(full)
	require.Equal(t, 2, count)
	max, ok := full.Max()
	require.True(t, ok)
	in, err := block.Contains(max)
	require.NoError(t, err)
	require.True(t, in, "witness block must contain the subset's maximum element")
}
