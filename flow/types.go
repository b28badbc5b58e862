package flow

import "errors"

// Sentinel errors for network construction and solving.
var (
	// ErrNodeNotFound is returned when a node index is out of range.
	ErrNodeNotFound = errors.New("flow: node index out of range")

	// ErrNegativeCapacity is returned when an edge has negative capacity.
	ErrNegativeCapacity = errors.New("flow: negative edge capacity")

	// ErrNegativeCost is returned when an edge has a negative per-unit cost.
	ErrNegativeCost = errors.New("flow: negative edge cost")

	// ErrSameEndpoints is returned when source and sink coincide.
	ErrSameEndpoints = errors.New("flow: source and sink must differ")

	// ErrIterationLimit is returned when the augmentation loop exceeds
	// Options.MaxIterations.
	ErrIterationLimit = errors.New("flow: augmentation iteration limit exceeded")
)

// Options configures MinCostMaxFlow.
//
//   - MaxIterations: abort after this many augmenting iterations; 0 means
//     unbounded. With integer capacities the loop always terminates, so the
//     limit is a guard against pathological inputs, not a correctness knob.
type Options struct {
	MaxIterations int
}

// DefaultOptions returns production-safe defaults: unbounded iterations.
func DefaultOptions() Options {
	return Options{MaxIterations: 0}
}

// arc is one directed residual arc. Arcs are stored in twin pairs: the arc
// at index i and its reverse at index i^1. A forward arc starts with the
// requested capacity and zero-capacity twin; augmenting moves capacity
// between the two.
type arc struct {
	from, to int
	cap      int64 // remaining residual capacity
	cost     int64 // per-unit cost (negated on the twin)
	flow     int64 // net flow pushed through the forward direction
	forward  bool
}

// Network is a directed flow network under construction. The zero value is
// unusable; obtain one from NewNetwork.
type Network struct {
	arcs []arc
	adj  [][]int32 // adj[u] = indices into arcs, in insertion order
}

// NewNetwork returns a network with the given number of pre-allocated nodes
// (may be 0; AddNode adds more).
func NewNetwork(nodes int) *Network {
	if nodes < 0 {
		nodes = 0
	}

	return &Network{adj: make([][]int32, nodes)}
}

// NumNodes reports the current node count.
func (n *Network) NumNodes() int { return len(n.adj) }

// AddNode appends a fresh node and returns its index.
func (n *Network) AddNode() int {
	n.adj = append(n.adj, nil)

	return len(n.adj) - 1
}

// AddEdge adds a directed edge from→to with the given capacity and per-unit
// cost, together with its zero-capacity residual twin.
func (n *Network) AddEdge(from, to int, capacity, cost int64) error {
	if from < 0 || from >= len(n.adj) || to < 0 || to >= len(n.adj) {
		return ErrNodeNotFound
	}
	if capacity < 0 {
		return ErrNegativeCapacity
	}
	if cost < 0 {
		return ErrNegativeCost
	}

	n.arcs = append(n.arcs,
		arc{from: from, to: to, cap: capacity, cost: cost, forward: true},
		arc{from: to, to: from, cap: 0, cost: -cost},
	)
	n.adj[from] = append(n.adj[from], int32(len(n.arcs)-2))
	n.adj[to] = append(n.adj[to], int32(len(n.arcs)-1))

	return nil
}
