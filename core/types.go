// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Core type declarations, sentinel errors, construction options and
//       the NewGraph constructor. No algorithms live here.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadNodeID indicates a negative node index was supplied.
	ErrBadNodeID = errors.New("core: node index is negative")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; result graphs
	// never contain loops (a sample is trivially visible from itself).
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Node represents one sample of the source series.
//
// ID is the sample's index in the series and uniquely identifies the node
// within its Graph. Value is the series value at that index.
type Node struct {
	// ID is the series index this node represents (≥ 0).
	ID int

	// Value is the series sample at ID.
	Value float64
}

// Edge is a connection between two node indices.
//
// For a directed graph, From→To is the stored orientation. For an
// undirected graph, edges are reported canonically with From < To.
type Edge struct {
	// From is the source node index.
	From int

	// To is the destination node index.
	To int
}

// GraphOption configures behavior of a Graph at construction time.
// Flags are immutable once NewGraph returns.
type GraphOption func(g *Graph)

// WithDirected sets the orientation mode for all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the in-memory result graph.
//
// It stores nodes keyed by series index, their value attributes, and a
// nested adjacency set. A single mu guards all state; the container has
// one immutable mode flag (directed) and no per-edge policies.
type Graph struct {
	mu sync.RWMutex // guards nodes, order, adjacency and edgeCount

	// Configuration (immutable after NewGraph).
	directed bool // orientation mode for all edges

	// Storage.
	nodes     map[int]*Node            // node index → node record
	order     []int                    // node indices in insertion order
	adjacency map[int]map[int]struct{} // from → set of to
	edgeCount int                      // unique edges (mirror entries not counted)
}

// NewGraph creates an empty Graph. By default the graph is undirected;
// pass WithDirected(true) for chronologically oriented edges.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[int]*Node),
		adjacency: make(map[int]map[int]struct{}),
	}
	// Apply options in order; flags are frozen afterwards.
	for _, opt := range opts {
		opt(g)
	}

	return g
}
