// Package core defines the result Graph produced by visibility-graph
// construction, and provides thread-safe primitives for building, querying,
// and cloning it.
//
// Nodes are keyed by their non-negative series index and carry a single
// float64 value attribute — the sample the node represents. Edges are
// unweighted and unique per ordered (directed) or unordered (undirected)
// endpoint pair; re-adding an existing edge is a no-op by design, because
// visibility builders revisit consecutive pairs after seeding the path.
//
// All core APIs share one sync.RWMutex internally, so a graph can be
// queried and mutated across goroutines. Enumeration surfaces are
// deterministic: Nodes() reports insertion order (series order when built
// by the visibility package) and Edges() reports ascending (From, To)
// order, so both are safe anchors for golden tests.
//
// This file tree declares:
//
//	types.go         — Node, Edge, Graph, GraphOption, sentinel errors, NewGraph
//	api.go           — read-only policy getters and Stats()
//	methods_nodes.go — node lifecycle & queries
//	methods_edges.go — edge lifecycle & queries
//	methods_clone.go — Clone, CloneEmpty, Clear
//
// Errors:
//
//	ErrBadNodeID     - node index is negative.
//	ErrNodeNotFound  - requested node does not exist.
//	ErrLoopNotAllowed - self-loop attempted (never legal in a result graph).
package core
