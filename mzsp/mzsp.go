package mzsp

import "github.com/katalvlaran/debtor/bitset64"

// Partition is a single-pass walk over the blocks of one maximal zero-sum
// partitioning. Each Next consumes one block; the walk is exhausted when the
// remainder admits no further zero-sum part. It cannot be restarted — call
// Compute again with the original values to walk anew.
type Partition struct {
	tables    *Tables
	remainder bitset64.Set
}

// Compute builds the memo tables for values and returns the block walk over
// a maximal zero-sum partitioning of the full index set.
//
// Contract:
//   - The emitted blocks are pairwise disjoint, non-empty, and each block's
//     values sum to zero. If ∑(values) == 0, their union is the full index
//     set.
//   - The number of blocks is provably maximal; which optimal partitioning
//     is recovered is enumeration-order dependent.
//
// Complexity: O(3^n) time and O(2^n) space for the table build; each Next
// afterwards is O(1).
func Compute(values []int64) (*Partition, error) {
	tables, err := NewTables(values)
	if err != nil {
		return nil, err
	}
	full, err := bitset64.Full(len(values))
	if err != nil {
		return nil, err
	}

	return &Partition{tables: tables, remainder: full}, nil
}

// Next yields the next block, or ok=false when the walk is exhausted.
func (p *Partition) Next() (bitset64.Set, bool) {
	count, block := p.tables.Best(p.remainder)
	if count == 0 {
		return 0, false
	}
	p.remainder = p.remainder.Minus(block)

	return block, true
}

// Len reports how many blocks remain to be emitted.
func (p *Partition) Len() int {
	count, _ := p.tables.Best(p.remainder)

	return count
}

// Groups runs Compute and materializes every block as the literal values at
// its member indices, in block emission order.
//
//	mzsp.Groups([]int64{10, -10, 15, -15}) // [[15 -15] [10 -10]]
//	mzsp.Groups([]int64{10, 20, -15, -15}) // [[10 20 -15 -15]]
func Groups(values []int64) ([][]int64, error) {
	part, err := Compute(values)
	if err != nil {
		return nil, err
	}

	var groups [][]int64
	for {
		block, ok := part.Next()
		if !ok {
			break
		}
		group := make([]int64, 0, block.Size())
		it := block.Elements()
		for {
			idx, ok := it.Next()
			if !ok {
				break
			}
			group = append(group, values[idx])
		}
		groups = append(groups, group)
	}

	return groups, nil
}
