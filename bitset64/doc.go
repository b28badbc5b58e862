// Package bitset64 provides an immutable subset-of-{0..63} value type backed
// by a single uint64 word.
//
// The restriction to 64 elements is deliberate: a Set is a plain machine word,
// so it is copied by value, compared with ==, and — crucially — its numeric
// value is a dense array index. Dynamic-programming tables over "every subset
// of n elements" are therefore flat slices of length 2^n addressed by
// Set.Mask(), with no hashing and no boxing. The encoding is load-bearing:
// every proper subset of a set has a strictly smaller numeric value (a
// subset's bit pattern is the bitwise AND with its superset), so filling a
// table in ascending mask order guarantees all sub-entries already exist.
//
// All operations are pure: they return a new Set and never mutate the
// receiver. Index arguments must lie in [0, 64); out-of-range indices yield
// ErrOutOfRange.
//
// Three canonical traversals are provided, each as an explicit single-pass
// cursor with a Next() (value, ok) method:
//
//   - EnumerateAll(n) — every mask 0..2^n−1 in increasing numeric order,
//     the canonical bottom-up fill order for memo tables.
//   - Set.Subsets()   — every subset of a set via the classic sub-mask
//     recurrence next = s & (cur − s), starting at the empty set and ending
//     at the set itself. Length = 2^popcount(s).
//   - Set.Elements()  — the set bit positions in ascending order.
//
// Complexity: every operation is O(1) (a handful of machine instructions via
// math/bits); traversal steps are O(1) each.
package bitset64
