package flow

import "math"

// Path is one source→sink flow path with the amount routed along it.
type Path struct {
	// Nodes is the node index sequence, Nodes[0] == source and
	// Nodes[len-1] == sink.
	Nodes []int

	// Amount is the flow carried by this path (strictly positive).
	Amount int64
}

// Paths decomposes the pushed flow into source→sink paths.
//
// Greedy peeling: walk from source along the first arc (in insertion order)
// that still carries positive flow until the sink, subtract the path's
// bottleneck from every arc on it, repeat until no flow leaves the source.
// Arc insertion order makes the decomposition deterministic.
//
// Contract: the solved flow must be acyclic, which MinCostMaxFlow guarantees
// whenever every cycle in the network has positive total cost (true for any
// network whose free edges touch only the source or the sink). Each call
// re-decomposes from the same solved state, so call it once and keep the
// result.
//
// Complexity: O(P · V + E) where P is the number of peeled paths.
func (r Result) Paths(source, sink int) []Path {
	net := r.net
	if net == nil || r.Flow == 0 {
		return nil
	}

	// Work on a copy of the per-arc flow so Result stays reusable.
	remaining := make([]int64, len(net.arcs))
	for i := range net.arcs {
		remaining[i] = net.arcs[i].flow
	}

	var paths []Path
	maxLen := len(net.adj) + 1
	for {
		nodes := []int{source}
		var arcsOnPath []int32

		// Walk greedily toward the sink.
		u := source
		for u != sink && len(nodes) <= maxLen {
			advanced := false
			for _, ai := range net.adj[u] {
				a := &net.arcs[ai]
				if !a.forward || remaining[ai] <= 0 {
					continue
				}
				arcsOnPath = append(arcsOnPath, ai)
				u = a.to
				nodes = append(nodes, u)
				advanced = true
				break
			}
			if !advanced {
				break
			}
		}
		if u != sink {
			// No more flow leaves the source.
			return paths
		}

		// Peel the bottleneck off every arc on the path.
		bottleneck := int64(math.MaxInt64)
		for _, ai := range arcsOnPath {
			if remaining[ai] < bottleneck {
				bottleneck = remaining[ai]
			}
		}
		for _, ai := range arcsOnPath {
			remaining[ai] -= bottleneck
		}

		paths = append(paths, Path{Nodes: nodes, Amount: bottleneck})
	}
}
