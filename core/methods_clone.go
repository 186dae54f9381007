// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Clone, CloneEmpty and Clear.
//
// Concurrency:
//   - Clone/CloneEmpty take the read lock on the source; the clone is a
//     fresh instance with its own lock.
//   - Clear takes the write lock and resets storage in place.
package core

// CloneEmpty returns a new graph with the same mode flag and node catalog
// but no edges. Node records are copied by value.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:  g.directed,
		nodes:     make(map[int]*Node, len(g.nodes)),
		order:     make([]int, len(g.order)),
		adjacency: make(map[int]map[int]struct{}, len(g.adjacency)),
	}
	copy(c.order, g.order)
	for id, n := range g.nodes {
		node := *n // copy the record; clones never alias node storage
		c.nodes[id] = &node
		c.adjacency[id] = make(map[int]struct{})
	}

	return c
}

// Clone returns a deep copy: mode flag, node catalog (records copied by
// value), adjacency and edge count.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	c := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	for u, bucket := range g.adjacency {
		for v := range bucket {
			c.adjacency[u][v] = struct{}{}
		}
	}
	c.edgeCount = g.edgeCount

	return c
}

// Clear removes all nodes and edges, keeping the mode flag.
// Complexity: O(1) (old maps are released to the GC).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[int]*Node)
	g.order = nil
	g.adjacency = make(map[int]map[int]struct{})
	g.edgeCount = 0
}
