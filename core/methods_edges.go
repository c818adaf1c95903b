// File: methods_edges.go
// Role: Edge lifecycle on the authoring Graph: Connect (coalescing insert),
//       SetWeight, RemoveEdge.
// Determinism:
//   - Edges keep insertion order; coalescing updates an edge in place.
// Concurrency:
//   - Mutations under the write lock.

package core

import "fmt"

// Connect joins from and to with an undirected edge of the given weight.
//
// Steps:
//  1. Reject self-loops (ErrLoopNotAllowed) and unknown endpoints (ErrNodeNotFound).
//  2. If an edge already joins the unordered pair, update its weight and return its ID.
//  3. Otherwise append a new edge with a generated ID.
//
// The graph therefore never holds two edges on the same pair.
// Complexity: O(E) for the pair lookup.
func (g *Graph) Connect(from, to string, weight float64) (string, error) {
	if from == to {
		return "", fmt.Errorf("Connect(%q,%q): %w", from, to, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodeIdx[from]; !ok {
		return "", fmt.Errorf("Connect: from %q: %w", from, ErrNodeNotFound)
	}
	if _, ok := g.nodeIdx[to]; !ok {
		return "", fmt.Errorf("Connect: to %q: %w", to, ErrNodeNotFound)
	}

	for i, e := range g.edges {
		if e.Connects(from, to) {
			g.pushHistoryLocked()
			g.edges[i].Weight = weight
			g.version++

			return e.ID, nil
		}
	}

	id := g.newID()
	if _, dup := g.edgeIdx[id]; dup {
		return "", fmt.Errorf("Connect: generated %q: %w", id, ErrDuplicateEdge)
	}
	g.pushHistoryLocked()
	g.edgeIdx[id] = len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, From: from, To: to, Weight: weight})
	g.version++

	return id, nil
}

// SetWeight changes the weight of an existing edge.
func (g *Graph) SetWeight(edgeID string, weight float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, ok := g.edgeIdx[edgeID]
	if !ok {
		return fmt.Errorf("SetWeight(%q): %w", edgeID, ErrEdgeNotFound)
	}
	g.pushHistoryLocked()
	g.edges[i].Weight = weight
	g.version++

	return nil
}

// RemoveEdge deletes one edge.
// Complexity: O(E) to keep the remaining order intact.
func (g *Graph) RemoveEdge(edgeID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.edgeIdx[edgeID]; !ok {
		return fmt.Errorf("RemoveEdge(%q): %w", edgeID, ErrEdgeNotFound)
	}
	g.pushHistoryLocked()

	edges := make([]Edge, 0, len(g.edges)-1)
	for _, e := range g.edges {
		if e.ID != edgeID {
			edges = append(edges, e)
		}
	}
	g.replaceLocked(g.nodes, edges)

	return nil
}

// EdgeBetween returns the edge joining a and b, if any.
func (g *Graph) EdgeBetween(a, b string) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges {
		if e.Connects(a, b) {
			return e, true
		}
	}

	return Edge{}, false
}
