package flow

import "math"

// Result is the outcome of MinCostMaxFlow. It retains the solved network so
// the pushed flow can be decomposed into paths afterwards.
type Result struct {
	// Flow is the total flow value moved from source to sink.
	Flow int64

	// Cost is the total cost: Σ (flow on edge × edge cost).
	Cost int64

	net *Network
}

// MinCostMaxFlow computes a maximum flow of minimum total cost from source
// to sink using successive shortest augmenting paths.
//
// Steps:
//  1. Validate node indices and options (O(1)).
//  2. Repeat until the sink is unreachable in the residual network:
//     a. SPFA from source over residual arcs with positive capacity,
//     relaxing by arc cost (O(V·E) worst case per round).
//     b. Walk the parent arcs sink→source to find the bottleneck (O(V)).
//     c. Push the bottleneck along the path: forward arcs lose residual
//     capacity and gain flow, twins gain residual capacity (O(V)).
//  3. Accumulate total flow and cost; stop on ErrIterationLimit if the
//     optional guard trips.
//
// The network is consumed: its residual state after return describes the
// final flow, which Result.Paths decomposes.
func MinCostMaxFlow(net *Network, source, sink int, opts Options) (Result, error) {
	// 1) Validation.
	if source < 0 || source >= len(net.adj) || sink < 0 || sink >= len(net.adj) {
		return Result{}, ErrNodeNotFound
	}
	if source == sink {
		return Result{}, ErrSameEndpoints
	}

	res := Result{net: net}

	// 2) Successive shortest augmenting paths.
	iterations := 0
	for {
		parentArc, reachable := net.cheapestPath(source, sink)
		if !reachable {
			break
		}
		if opts.MaxIterations > 0 && iterations >= opts.MaxIterations {
			return res, ErrIterationLimit
		}
		iterations++

		// 2b) Bottleneck along the parent chain.
		bottleneck := int64(math.MaxInt64)
		for v := sink; v != source; {
			a := &net.arcs[parentArc[v]]
			if a.cap < bottleneck {
				bottleneck = a.cap
			}
			v = a.from
		}

		// 2c) Push the bottleneck; twins regain what forwards lose.
		for v := sink; v != source; {
			ai := parentArc[v]
			a := &net.arcs[ai]
			twin := &net.arcs[ai^1]
			a.cap -= bottleneck
			twin.cap += bottleneck
			if a.forward {
				a.flow += bottleneck
				res.Cost += bottleneck * a.cost
			} else {
				// Cancelling previously pushed flow refunds its cost.
				twin.flow -= bottleneck
				res.Cost -= bottleneck * twin.cost
			}
			v = a.from
		}

		res.Flow += bottleneck
	}

	return res, nil
}

// cheapestPath runs SPFA (queue-based Bellman–Ford) from source over
// residual arcs with positive capacity. It returns parentArc[v] = index of
// the arc that reaches v on a cheapest source→v path, and whether the sink
// is reachable. Neighbor arcs are scanned in insertion order, so equal-cost
// ties resolve deterministically.
func (n *Network) cheapestPath(source, sink int) ([]int32, bool) {
	const unset = int32(-1)

	dist := make([]int64, len(n.adj))
	parentArc := make([]int32, len(n.adj))
	inQueue := make([]bool, len(n.adj))
	for v := range dist {
		dist[v] = math.MaxInt64
		parentArc[v] = unset
	}
	dist[source] = 0

	queue := make([]int32, 0, len(n.adj))
	queue = append(queue, int32(source))
	inQueue[source] = true

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		inQueue[u] = false

		for _, ai := range n.adj[u] {
			a := &n.arcs[ai]
			if a.cap <= 0 {
				continue
			}
			cand := dist[u] + a.cost
			if cand >= dist[a.to] {
				continue
			}
			dist[a.to] = cand
			parentArc[a.to] = ai
			if !inQueue[a.to] {
				queue = append(queue, int32(a.to))
				inQueue[a.to] = true
			}
		}
	}

	return parentArc, parentArc[sink] != unset
}
