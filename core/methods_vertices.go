// File: methods_vertices.go
// Role: Node lifecycle on the authoring Graph.
// Determinism:
//   - Nodes keep insertion order; RemoveNode preserves the relative order of
//     the remaining nodes and edges.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"

	"github.com/google/uuid"
)

// newUUID is the default ID generator (the editor used random short IDs too).
func newUUID() string { return uuid.NewString() }

// AddNode appends a node with a generated ID and returns that ID.
// An empty label defaults to the 1-based position of the node, matching how
// the editor numbered freshly placed nodes.
// Complexity: O(1) amortized plus the O(V+E) history snapshot.
func (g *Graph) AddNode(label string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.newID()
	if _, dup := g.nodeIdx[id]; dup {
		return "", fmt.Errorf("AddNode: generated %q: %w", id, ErrDuplicateNode)
	}
	if label == "" {
		label = fmt.Sprintf("%d", len(g.nodes)+1)
	}
	g.pushHistoryLocked()
	g.appendNodeLocked(Node{ID: id, Label: label})

	return id, nil
}

// AddNodeWithID appends a node with a caller-chosen ID.
//
// Errors:
//   - ErrEmptyNodeID if id == "".
//   - ErrDuplicateNode if id already exists.
func (g *Graph) AddNodeWithID(id, label string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, dup := g.nodeIdx[id]; dup {
		return fmt.Errorf("AddNodeWithID(%q): %w", id, ErrDuplicateNode)
	}
	g.pushHistoryLocked()
	g.appendNodeLocked(Node{ID: id, Label: label})

	return nil
}

// RemoveNode deletes the node and every edge incident to it.
// Complexity: O(V + E).
func (g *Graph) RemoveNode(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodeIdx[id]; !ok {
		return fmt.Errorf("RemoveNode(%q): %w", id, ErrNodeNotFound)
	}
	g.pushHistoryLocked()

	nodes := make([]Node, 0, len(g.nodes)-1)
	for _, n := range g.nodes {
		if n.ID != id {
			nodes = append(nodes, n)
		}
	}
	edges := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if e.From != id && e.To != id {
			edges = append(edges, e)
		}
	}
	g.replaceLocked(nodes, edges)

	return nil
}

// SetLabel changes the label of an existing node.
func (g *Graph) SetLabel(id, label string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, ok := g.nodeIdx[id]
	if !ok {
		return fmt.Errorf("SetLabel(%q): %w", id, ErrNodeNotFound)
	}
	g.pushHistoryLocked()
	g.nodes[i].Label = label
	g.version++

	return nil
}

// HasNode reports whether id exists.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodeIdx[id]

	return ok
}

// appendNodeLocked adds n at the end; caller holds the write lock and has
// already validated n.
func (g *Graph) appendNodeLocked(n Node) {
	g.nodeIdx[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.version++
}
