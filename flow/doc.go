// Package flow implements minimum-cost maximum flow on directed networks
// with integer capacities and per-unit edge costs, plus a decomposition of
// the resulting flow into source→sink paths.
//
// Networks are addressed by dense integer node indices (AddNode hands them
// out sequentially), which keeps the hot loops free of hashing and makes
// results deterministic: equal-cost ties follow arc insertion order.
//
// The algorithm is successive shortest augmenting paths:
//
//  1. Find a minimum-cost path from source to sink in the residual network
//     (SPFA, a queue-based Bellman–Ford — residual reverse arcs carry
//     negative costs, so Dijkstra does not apply directly).
//  2. Augment by the path's bottleneck residual capacity.
//  3. Repeat until the sink is unreachable.
//
// With non-negative original edge costs every augmentation is along a
// cheapest path, so the final flow is a maximum flow of minimum total cost.
//
// Complexity:
//
//	– Time:  O(F · V · E) worst case, where F is the number of augmenting
//	  iterations (≤ total flow with integer capacities); SPFA is O(V · E)
//	  per iteration but typically far faster.
//	– Memory: O(V + E) for the arc store, queue and parent maps.
//
// # API
//
//	net := flow.NewNetwork(0)
//	a, b := net.AddNode(), net.AddNode()
//	src, sink := net.AddNode(), net.AddNode()
//	_ = net.AddEdge(src, a, 10, 0)
//	_ = net.AddEdge(a, b, 100, 1)
//	_ = net.AddEdge(b, sink, 10, 0)
//
//	res, err := flow.MinCostMaxFlow(net, src, sink, flow.DefaultOptions())
//	// res.Flow == 10, res.Cost == 10
//
//	for _, p := range res.Paths(src, sink) {
//	    // p.Nodes is a src→…→sink node sequence, p.Amount its flow
//	}
//
// The solver consumes the network: residual capacities are updated in place
// and the network must not be reused for a second solve. Build a fresh
// Network per computation.
//
// # Errors
//
//	ErrNodeNotFound      – an edge endpoint or the source/sink index is out of range.
//	ErrNegativeCapacity  – an edge was added with capacity < 0.
//	ErrNegativeCost      – an edge was added with cost < 0.
//	ErrSameEndpoints     – source == sink in MinCostMaxFlow.
//	ErrIterationLimit    – Options.MaxIterations was exceeded.
package flow
