package settle_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/debtor/settle"
)

// BenchmarkPlanExact measures partition + branch-and-bound on zero-sum
// inputs of growing size.
func BenchmarkPlanExact(b *testing.B) {
	for _, n := range []int{6, 10, 14} {
		balances := randomBalances(rand.New(rand.NewSource(19)), n)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := settle.PlanExact(balances, settle.DefaultOptions()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkPlanApprox measures network build + min-cost flow + decoding at
// sizes the exact planner would refuse to touch.
func BenchmarkPlanApprox(b *testing.B) {
	for _, n := range []int{20, 50, 100} {
		balances := randomBalances(rand.New(rand.NewSource(29)), n)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := settle.PlanApprox(balances, settle.DefaultOptions()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
