package bitset64

// Elements walks the members of a set in ascending order.
// Single-pass: obtain a fresh cursor from Set.Elements to walk again.
type Elements struct {
	rest Set
}

// Elements returns a cursor over the members of s, smallest first.
func (s Set) Elements() *Elements { return &Elements{rest: s} }

// Next yields the next member, or ok=false when the walk is exhausted.
func (e *Elements) Next() (int, bool) {
	min, ok := e.rest.Min()
	if !ok {
		return 0, false
	}
	// Clearing the lowest set bit advances the cursor.
	e.rest &= e.rest - 1

	return min, true
}

// Subsets walks every subset of a set, the empty set first and the set itself
// last, via the sub-mask recurrence next = set & (cur − set). The unsigned
// wraparound subtraction is intended: it is what steps cur through exactly
// the 2^popcount(set) sub-masks in increasing numeric order.
type Subsets struct {
	set  Set
	cur  Set
	done bool
}

// Subsets returns a cursor over all subsets of s, itself included.
func (s Set) Subsets() *Subsets { return &Subsets{set: s} }

// Next yields the next subset, or ok=false when the walk is exhausted.
func (it *Subsets) Next() (Set, bool) {
	if it.done {
		return 0, false
	}
	if it.cur == it.set {
		it.done = true
	}
	ret := it.cur
	it.cur = it.set & (it.cur - it.set)

	return ret, true
}

// AllSets walks every mask 0..2^n−1 in increasing numeric order — the
// canonical bottom-up fill order for subset-indexed memo tables, since every
// proper subset of a mask is numerically smaller than the mask itself.
type AllSets struct {
	last Set
	cur  Set
	done bool
}

// EnumerateAll returns a cursor over all 2^n subsets of {0..n−1}, ascending.
// Equivalent to Full(n) followed by Subsets, but counts straight through the
// integers instead of chasing sub-masks.
func EnumerateAll(n int) (*AllSets, error) {
	full, err := Full(n)
	if err != nil {
		return nil, err
	}

	return &AllSets{last: full}, nil
}

// Next yields the next mask, or ok=false when the walk is exhausted.
func (it *AllSets) Next() (Set, bool) {
	if it.done {
		return 0, false
	}
	if it.cur == it.last {
		it.done = true
	}
	ret := it.cur
	it.cur++

	return ret, true
}
