// Package mzsp solves the maximal zero-sum partitioning problem:
//
//	Given a multiset of integers X with ∑(X) = 0, partition X into the
//	maximum number of subsets so that each subset sums to zero.
//
// The solver is a bottom-up dynamic program over the 2^n subsets of the
// input, keyed by bitset64.Set masks:
//
//   - SumTable  — for every subset v, the sum of the values at v's indices.
//   - PartTable — for every subset v, the maximum achievable zero-sum part
//     count together with one witness block containing v's top element.
//
// Decomposing every subset through its own maximum element means each block
// is counted via exactly one decomposition path, and bounds the candidate
// search to sub-masks of S ∖ {max(S)}.
//
// Complexity:
//
//	– Time:  O(3^n)  (the classic sum over subsets of subsets)
//	– Space: O(2^n)  for the two tables combined
//
// Both tables are built once per Compute call, are read-only afterwards, and
// are owned by the returned Partition; nothing outlives the computation.
//
// Partition is a single-pass walk over the witness blocks of one optimal
// partitioning. When several optimal partitionings exist, which one is
// recovered depends on sub-mask enumeration order; only the block count is a
// contract. Use it like this:
//
//	part, err := mzsp.Compute(values)
//	if err != nil { … }
//	for {
//	    block, ok := part.Next()
//	    if !ok {
//	        break
//	    }
//	    it := block.Elements()
//	    for {
//	        idx, ok := it.Next()
//	        if !ok {
//	            break
//	        }
//	        _ = values[idx] // every block's values sum to zero
//	    }
//	}
//
// Groups is a convenience wrapper that materializes the value groups
// directly.
//
// Errors (sentinel):
//
//	– ErrTooManyValues if the input has more than 63 values (the 2^n table
//	  must stay addressable; the practical ceiling is far lower — the O(3^n)
//	  time factor caps useful inputs around n ≤ 20–25).
package mzsp
