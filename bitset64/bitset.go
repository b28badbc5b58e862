package bitset64

import (
	"errors"
	"math/bits"
	"strconv"
)

// ErrOutOfRange is returned when an element index or universe size does not
// fit the 64-bit encoding.
var ErrOutOfRange = errors.New("bitset64: index out of range [0, 64)")

// width is the number of representable elements.
const width = 64

// Set is an immutable subset of {0..63} stored in one uint64 word.
// Bit i set means "element i is a member". The zero value is the empty set.
type Set uint64

// Empty returns the set with no members.
func Empty() Set { return 0 }

// Full returns the set {0, 1, …, n−1}. n may be 0 (empty set) up to 64
// (every representable element); anything else yields ErrOutOfRange.
func Full(n int) (Set, error) {
	if n < 0 || n > width {
		return 0, ErrOutOfRange
	}
	if n == width {
		// 1<<64 does not fit; the all-ones word is spelled directly.
		return Set(^uint64(0)), nil
	}

	return Set(uint64(1)<<uint(n) - 1), nil
}

// Singleton returns the set {x}.
func Singleton(x int) (Set, error) {
	if x < 0 || x >= width {
		return 0, ErrOutOfRange
	}

	return Set(uint64(1) << uint(x)), nil
}

// Insert returns s ∪ {idx}.
func (s Set) Insert(idx int) (Set, error) {
	if idx < 0 || idx >= width {
		return 0, ErrOutOfRange
	}

	return s | Set(uint64(1)<<uint(idx)), nil
}

// Remove returns s ∖ {idx}.
func (s Set) Remove(idx int) (Set, error) {
	if idx < 0 || idx >= width {
		return 0, ErrOutOfRange
	}

	return s &^ Set(uint64(1)<<uint(idx)), nil
}

// Toggle returns s with membership of idx flipped.
func (s Set) Toggle(idx int) (Set, error) {
	if idx < 0 || idx >= width {
		return 0, ErrOutOfRange
	}

	return s ^ Set(uint64(1)<<uint(idx)), nil
}

// Union returns s ∪ other.
func (s Set) Union(other Set) Set { return s | other }

// Minus returns s ∖ other (members of s that are not members of other).
func (s Set) Minus(other Set) Set { return s &^ other }

// Contains reports whether idx is a member of s.
func (s Set) Contains(idx int) (bool, error) {
	if idx < 0 || idx >= width {
		return false, ErrOutOfRange
	}

	return s&Set(uint64(1)<<uint(idx)) != 0, nil
}

// Size returns the number of members (population count).
func (s Set) Size() int { return bits.OnesCount64(uint64(s)) }

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool { return s == 0 }

// Min returns the smallest member, or ok=false on the empty set.
func (s Set) Min() (int, bool) {
	if s == 0 {
		return 0, false
	}

	return bits.TrailingZeros64(uint64(s)), true
}

// Max returns the largest member, or ok=false on the empty set.
func (s Set) Max() (int, bool) {
	if s == 0 {
		return 0, false
	}

	return width - 1 - bits.LeadingZeros64(uint64(s)), true
}

// TakeMax returns the largest member together with the set with that member
// removed, or ok=false on the empty set. The receiver is not mutated.
func (s Set) TakeMax() (rest Set, max int, ok bool) {
	max, ok = s.Max()
	if !ok {
		return s, 0, false
	}

	return s &^ Set(uint64(1)<<uint(max)), max, true
}

// Mask exposes the raw word. table[s.Mask()] is the canonical dense-table
// addressing mode for subset-indexed memo tables.
func (s Set) Mask() uint64 { return uint64(s) }

// String renders the set as its binary bit pattern (element 0 rightmost).
func (s Set) String() string { return strconv.FormatUint(uint64(s), 2) }
