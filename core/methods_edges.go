// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount/Neighbors.
//
// Determinism:
//   - Edges() returns edges sorted ascending by (From, To); undirected
//     edges are reported canonically with From < To.
//   - Neighbors() returns ascending node indices.
//
// Concurrency:
//   - Mutations under g.mu write lock, queries under read lock.
package core

import "sort"

// AddEdge connects two existing nodes.
//
// Rules:
//   - Both endpoints must already exist (ErrNodeNotFound) — the graph
//     never auto-creates nodes, since a node without a value attribute
//     would violate the result-graph contract.
//   - Self-loops are rejected with ErrLoopNotAllowed.
//   - Adding an edge that already exists is a no-op (idempotent).
//   - On an undirected graph the adjacency entry is mirrored; the edge is
//     still counted once.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[u]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.nodes[v]; !ok {
		return ErrNodeNotFound
	}

	if _, ok := g.adjacency[u][v]; ok {
		return nil // idempotent: edge already present
	}

	g.adjacency[u][v] = struct{}{}
	if !g.directed {
		g.adjacency[v][u] = struct{}{}
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether an edge u→v exists. Undirected edges are
// mirrored, so HasEdge answers true in both directions for them.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Edges returns all edges sorted ascending by (From, To).
// Undirected edges appear once, canonically with From < To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, bucket := range g.adjacency {
		for v := range bucket {
			if !g.directed && u > v {
				continue // mirror entry; the canonical (v,u) is emitted elsewhere
			}
			out = append(out, Edge{From: u, To: v})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of unique edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Neighbors returns the ascending indices adjacent to id: all neighbors on
// an undirected graph, out-neighbors on a directed one.
// Complexity: O(d log d) where d is the bucket size.
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	out := make([]int, 0, len(g.adjacency[id]))
	for v := range g.adjacency[id] {
		out = append(out, v)
	}
	sort.Ints(out)

	return out, nil
}
