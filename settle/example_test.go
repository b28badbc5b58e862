package settle_test

import (
	"fmt"

	"github.com/katalvlaran/debtor/settle"
)

// ExamplePlanExact settles four balances with the minimum transfer count:
// the two independent pairs each need exactly one transfer.
func ExamplePlanExact() {
	balances := []settle.Balance{
		{ID: "alice", Amount: 10},
		{ID: "bob", Amount: -10},
		{ID: "carol", Amount: 15},
		{ID: "dave", Amount: -15},
	}

	transfers, err := settle.PlanExact(balances, settle.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, tr := range transfers {
		fmt.Printf("%s pays %s %d\n", tr.From, tr.To, tr.Amount)
	}
	// Output:
	// carol pays dave 15
	// alice pays bob 10
}

// ExampleSolve lets automatic routing pick the planner by input size.
func ExampleSolve() {
	balances := []settle.Balance{
		{ID: "alice", Amount: 10},
		{ID: "bob", Amount: 20},
		{ID: "carol", Amount: -15},
		{ID: "dave", Amount: -15},
	}

	transfers, err := settle.Solve(balances, settle.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("transfers:", len(transfers))
	// Output:
	// transfers: 3
}
