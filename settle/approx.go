package settle

import (
	"github.com/katalvlaran/debtor/flow"
	"go.uber.org/zap"
)

// PlanApprox computes a settlement by minimum-cost flow. It handles inputs
// far beyond the exact planner's reach, but does not guarantee the minimum
// transfer count — the unit edge cost only biases the solver toward fewer
// hops.
//
// Construction:
//   - One network node per unsettled balance, plus a virtual source and
//     sink.
//   - A directed edge between every ordered pair of distinct participants
//     with capacity ApproxEdgeCap and cost 1 (a potential transfer).
//   - source→participant with capacity = amount, cost 0, for every positive
//     balance; participant→sink with capacity = |amount|, cost 0, for every
//     negative balance.
//
// Decoding: each flow path source→A→B→sink becomes one Transfer(A→B). A
// longer path means a settlement exceeded ApproxEdgeCap and had to route
// through intermediaries; this is logged as a quality warning and the
// transfer is emitted split across the path's interior hops.
//
// Guarantee: flow conservation — the total value moved equals the total
// positive balance. Emitted transfers never name the virtual endpoints and
// always carry a strictly positive amount.
//
// Complexity: O(n²) network construction plus the solver's cost.
func PlanApprox(balances []Balance, opts Options) ([]Transfer, error) {
	opts.normalize()

	live := unsettled(balances)
	if len(live) == 0 {
		return nil, nil
	}

	// 1) Complete unit-cost graph over the participants.
	net := flow.NewNetwork(len(live))
	for i := range live {
		for j := range live {
			if i == j {
				continue
			}
			if err := net.AddEdge(i, j, ApproxEdgeCap, 1); err != nil {
				return nil, err
			}
		}
	}

	// 2) Virtual endpoints: creditors fed by the source, debtors drained
	//    by the sink.
	source, sink := net.AddNode(), net.AddNode()
	for i, b := range live {
		var err error
		if b.Amount > 0 {
			err = net.AddEdge(source, i, b.Amount, 0)
		} else {
			err = net.AddEdge(i, sink, -b.Amount, 0)
		}
		if err != nil {
			return nil, err
		}
	}

	// 3) Delegate to the solver.
	res, err := flow.MinCostMaxFlow(net, source, sink, flow.DefaultOptions())
	if err != nil {
		return nil, err
	}
	opts.Logger.Info("flow solved",
		zap.Int64("total_flow", res.Flow),
		zap.Int64("total_cost", res.Cost))

	// 4) Decode flow paths back into transfers. Interior nodes are exactly
	//    the indices below len(live); source and sink sit above them.
	var transfers []Transfer
	for _, p := range res.Paths(source, sink) {
		if len(p.Nodes) != 4 {
			opts.Logger.Warn("maximum transfer amount exceeded, repaying via a longer route",
				zap.Int("interior_hops", len(p.Nodes)-3),
				zap.Int64("amount", p.Amount))
		}
		for k := 0; k+1 < len(p.Nodes); k++ {
			u, v := p.Nodes[k], p.Nodes[k+1]
			if u >= len(live) || v >= len(live) {
				continue
			}
			t := Transfer{From: live[u].ID, To: live[v].ID, Amount: p.Amount}
			t.normalize()
			transfers = append(transfers, t)
		}
	}

	return transfers, nil
}
