package bitset64_test

import (
	"testing"

	"github.com/katalvlaran/debtor/bitset64"
	"github.com/stretchr/testify/require"
)

func mustInsert(t *testing.T, s bitset64.Set, idx int) bitset64.Set {
	t.Helper()
	out, err := s.Insert(idx)
	require.NoError(t, err)
	return out
}

func TestSet_InsertContainsRemove_RoundTrip(t *testing.T) {
	for x := 0; x < 64; x++ {
		s := mustInsert(t, bitset64.Empty(), x)

		in, err := s.Contains(x)
		require.NoError(t, err)
		require.True(t, in, "inserted element %d must be a member", x)

		back, err := s.Remove(x)
		require.NoError(t, err)
		require.Equal(t, bitset64.Empty(), back, "insert(%d).remove(%d) must be empty", x, x)
	}
}

func TestSet_OutOfRange(t *testing.T) {
	s := bitset64.Empty()

	_, err := s.Insert(64)
	require.ErrorIs(t, err, bitset64.ErrOutOfRange)
	_, err = s.Remove(-1)
	require.ErrorIs(t, err, bitset64.ErrOutOfRange)
	_, err = s.Toggle(64)
	require.ErrorIs(t, err, bitset64.ErrOutOfRange)
	_, err = s.Contains(99)
	require.ErrorIs(t, err, bitset64.ErrOutOfRange)
	_, err = bitset64.Singleton(64)
	require.ErrorIs(t, err, bitset64.ErrOutOfRange)
	_, err = bitset64.Full(65)
	require.ErrorIs(t, err, bitset64.ErrOutOfRange)
	_, err = bitset64.Full(-1)
	require.ErrorIs(t, err, bitset64.ErrOutOfRange)
}

func TestFull_SizesAndBounds(t *testing.T) {
	empty, err := bitset64.Full(0)
	require.NoError(t, err)
	require.Equal(t, bitset64.Empty(), empty)

	five, err := bitset64.Full(5)
	require.NoError(t, err)
	require.Equal(t, 5, five.Size())
	max, ok := five.Max()
	require.True(t, ok)
	require.Equal(t, 4, max)

	all, err := bitset64.Full(64)
	require.NoError(t, err)
	require.Equal(t, 64, all.Size())
	max, ok = all.Max()
	require.True(t, ok)
	require.Equal(t, 63, max)
}

func TestSet_MinMaxTakeMax(t *testing.T) {
	s := bitset64.Empty()
	for _, x := range []int{2, 5, 6, 8} {
		s = mustInsert(t, s, x)
	}

	min, ok := s.Min()
	require.True(t, ok)
	require.Equal(t, 2, min)

	max, ok := s.Max()
	require.True(t, ok)
	require.Equal(t, 8, max)

	rest, taken, ok := s.TakeMax()
	require.True(t, ok)
	require.Equal(t, 8, taken)
	require.Equal(t, 3, rest.Size())
	in, err := rest.Contains(8)
	require.NoError(t, err)
	require.False(t, in)

	// TakeMax is pure: the original set still holds its maximum.
	in, err = s.Contains(8)
	require.NoError(t, err)
	require.True(t, in)
}

func TestSet_EmptyHasNoExtremes(t *testing.T) {
	_, ok := bitset64.Empty().Min()
	require.False(t, ok)
	_, ok = bitset64.Empty().Max()
	require.False(t, ok)
	_, _, ok = bitset64.Empty().TakeMax()
	require.False(t, ok)
	require.True(t, bitset64.Empty().IsEmpty())
}

func TestSet_UnionMinusToggle(t *testing.T) {
	a := mustInsert(t, mustInsert(t, bitset64.Empty(), 1), 3)
	b := mustInsert(t, mustInsert(t, bitset64.Empty(), 3), 5)

	u := a.Union(b)
	require.Equal(t, 3, u.Size())

	d := a.Minus(b)
	require.Equal(t, 1, d.Size())
	in, err := d.Contains(1)
	require.NoError(t, err)
	require.True(t, in)

	tg, err := a.Toggle(3)
	require.NoError(t, err)
	in, err = tg.Contains(3)
	require.NoError(t, err)
	require.False(t, in)
	tg, err = tg.Toggle(3)
	require.NoError(t, err)
	require.Equal(t, a, tg)
}

func TestSet_MaskIsDenseIndex(t *testing.T) {
	s := mustInsert(t, mustInsert(t, bitset64.Empty(), 0), 2)
	require.Equal(t, uint64(5), s.Mask())
	require.Equal(t, "101", s.String())
}
