package mzsp_test

import (
	"fmt"

	"github.com/katalvlaran/debtor/mzsp"
)

// ExampleGroups splits a zero-sum multiset into the maximum number of
// zero-sum groups.
func ExampleGroups() {
	groups, err := mzsp.Groups([]int64{10, -10, 15, -15})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, g := range groups {
		fmt.Println(g)
	}
	// Output:
	// [15 -15]
	// [10 -10]
}

// ExampleCompute walks the witness blocks one at a time.
func ExampleCompute() {
	values := []int64{4, 6, -10, 1, -1}
	part, err := mzsp.Compute(values)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("blocks:", part.Len())
	for {
		block, ok := part.Next()
		if !ok {
			break
		}
		fmt.Println("block size:", block.Size())
	}
	// Output:
	// blocks: 2
	// block size: 2
	// block size: 3
}
