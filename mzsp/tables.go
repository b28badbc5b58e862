package mzsp

import (
	"errors"

	"github.com/katalvlaran/debtor/bitset64"
)

// maxValues bounds the input length so that the 2^n dense tables remain
// addressable. The time ceiling (O(3^n)) bites long before this does.
const maxValues = 63

// ErrTooManyValues is returned when the input does not fit the 64-bit
// subset encoding.
var ErrTooManyValues = errors.New("mzsp: input exceeds 63 values")

// partEntry is one PartTable cell: the maximum zero-sum part count for a
// subset, and one witness block achieving it. For count == 0 the block is
// the empty set.
type partEntry struct {
	count int
	block bitset64.Set
}

// Tables holds the two dense memo tables of the dynamic program, indexed by
// subset mask. Built once, read-only thereafter.
type Tables struct {
	n     int
	sums  []int64     // sums[v]  = Σ values[i], i ∈ Set(v)
	parts []partEntry // parts[v] = (max part count, witness block)
}

// NewTables fills both tables bottom-up for the given values.
//
// Contract:
//   - len(values) ≤ 63, else ErrTooManyValues.
//   - Fill order is ascending mask order, so every referenced sub-entry is
//     already present when read (a proper subset is numerically smaller).
//
// Complexity: O(3^n) time, O(2^n) space.
func NewTables(values []int64) (*Tables, error) {
	n := len(values)
	if n > maxValues {
		return nil, ErrTooManyValues
	}

	// Capacity hint capped at 2^20 entries: beyond that, append growth is
	// noise next to the O(3^n) fill itself.
	hint := 1 << 20
	if n < 20 {
		hint = 1 << uint(n)
	}
	t := &Tables{
		n:     n,
		sums:  make([]int64, 0, hint),
		parts: make([]partEntry, 0, hint),
	}

	it, err := bitset64.EnumerateAll(n)
	if err != nil {
		return nil, err
	}
	for {
		set, ok := it.Next()
		if !ok {
			break
		}
		// subsetSum reads only sums of proper subsets.
		t.sums = append(t.sums, t.subsetSum(values, set))
		// maxZeroSumParts reads sums and parts of proper subsets.
		t.parts = append(t.parts, t.maxZeroSumParts(values, set))
	}

	return t, nil
}

// Sum returns the precomputed balance sum of the given subset.
// Panics if set contains an element ≥ n.
func (t *Tables) Sum(set bitset64.Set) int64 { return t.sums[set.Mask()] }

// Best returns the maximum zero-sum part count of the given subset and one
// witness block. count > 0 guarantees the block is non-empty, contains the
// subset's maximum element, and count(set) == 1 + count(set ∖ block).
// Panics if set contains an element ≥ n.
func (t *Tables) Best(set bitset64.Set) (count int, block bitset64.Set) {
	e := t.parts[set.Mask()]

	return e.count, e.block
}

// subsetSum computes sum(v) = values[max(v)] + sum(v ∖ max(v)); the removed
// subset's entry is always already filled because it is numerically smaller.
func (t *Tables) subsetSum(values []int64, set bitset64.Set) int64 {
	rest, max, ok := set.TakeMax()
	if !ok {
		return 0
	}

	return values[max] + t.sums[rest.Mask()]
}

// maxZeroSumParts computes one PartTable cell.
//
// Let x = max(set). Every zero-sum block containing x has the shape I ∪ {x}
// with I ⊆ set ∖ {x} and sum(I) == −values[x]. For each such I the candidate
// total is 1 + count(set ∖ (I ∪ {x})). Ties between equal candidates resolve
// to the later one in sub-mask enumeration order (the ≥ below); only the
// count is contractual.
func (t *Tables) maxZeroSumParts(values []int64, set bitset64.Set) partEntry {
	rest, x, ok := set.TakeMax()
	if !ok {
		// Empty subset: zero parts, no witness.
		return partEntry{}
	}

	var best partEntry
	it := rest.Subsets()
	for {
		sub, ok := it.Next()
		if !ok {
			break
		}
		if t.sums[sub.Mask()] != -values[x] {
			continue
		}
		// sub ∪ {x} is a valid zero-sum block containing x.
		c := t.parts[rest.Minus(sub).Mask()].count
		if c >= best.count {
			best = partEntry{count: c + 1, block: sub}
		}
	}

	if best.count == 0 {
		return partEntry{}
	}
	block, err := best.block.Insert(x)
	if err != nil {
		// Unreachable: x came out of TakeMax on a valid set.
		return partEntry{}
	}

	return partEntry{count: best.count, block: block}
}
