// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns indices in insertion order (series order when the
//     graph was produced by the visibility package).
//
// Concurrency:
//   - All methods take g.mu; mutations under the write lock, queries under
//     the read lock.
package core

// AddNode registers the node with the given series index and value.
//
// Idempotency: re-adding an existing index is legal and updates the value
// in place without disturbing insertion order. Negative indices are
// rejected with ErrBadNodeID.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id int, value float64) error {
	if id < 0 {
		return ErrBadNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if n, exists := g.nodes[id]; exists {
		// Keep insertion order stable; only the attribute changes.
		n.Value = value
		return nil
	}

	g.nodes[id] = &Node{ID: id, Value: value}
	g.order = append(g.order, id)
	// Bootstrap the adjacency bucket so edge methods can rely on it.
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int]struct{})
	}

	return nil
}

// HasNode reports whether the node index exists (negative index ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	if id < 0 {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// NodeValue returns the value attribute of the node, or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) NodeValue(id int) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return n.Value, nil
}

// Nodes returns all node indices in insertion order.
// The slice is a copy; callers may mutate it freely.
// Complexity: O(V).
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, len(g.order))
	copy(out, g.order)

	return out
}

// Values returns a fresh index→value map over all nodes.
// Complexity: O(V).
func (g *Graph) Values() map[int]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[int]float64, len(g.nodes))
	for id, n := range g.nodes {
		out[id] = n.Value
	}

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Degree returns (in, out, undirected) degree counters for the node.
//
// Policy: undirected edges contribute to the undirected counter only;
// directed edges contribute to in/out. In-degree on a directed graph
// requires a scan of all adjacency buckets, so Degree is O(V) there.
func (g *Graph) Degree(id int) (in, out, undirected int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return 0, 0, 0, ErrNodeNotFound
	}

	if !g.directed {
		// Mirrored adjacency means the bucket size is the full degree.
		return 0, 0, len(g.adjacency[id]), nil
	}

	out = len(g.adjacency[id])
	for _, bucket := range g.adjacency {
		if _, ok := bucket[id]; ok {
			in++
		}
	}

	return in, out, 0, nil
}
