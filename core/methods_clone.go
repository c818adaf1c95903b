// File: methods_clone.go
// Role: Snapshotting, bounded undo history, Restore, Clone and Clear.
// Determinism:
//   - Snapshot() preserves insertion order, so equal edit sequences yield
//     equal fingerprints.
// Concurrency:
//   - Snapshot/Clone take the read lock; Undo/Restore/Clear take the write lock.

package core

// Snapshot returns an immutable view of the current graph.
// Complexity: O(V + E).
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.snapshotLocked()
}

// CanUndo reports whether Undo has a state to return to.
func (g *Graph) CanUndo() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.history) > 0
}

// HistoryLen returns the number of stored undo states.
func (g *Graph) HistoryLen() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.history)
}

// Undo restores the state saved before the most recent mutation.
// It returns false when the history is empty.
func (g *Graph) Undo() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.history)
	if n == 0 {
		return false
	}
	last := g.history[n-1]
	g.history[n-1] = nil
	g.history = g.history[:n-1]
	g.replaceLocked(last.nodes, last.edges)

	return true
}

// Restore replaces the whole graph with the content of s, recording the
// previous state in the history. Used when a persisted graph is loaded.
func (g *Graph) Restore(s *Snapshot) error {
	if s == nil {
		return ErrNilSnapshot
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.pushHistoryLocked()
	g.replaceLocked(s.nodes, s.edges)

	return nil
}

// Clone returns an independent copy with the same nodes, edges and history
// limit. The history itself is not copied.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		nodeIdx:      make(map[string]int, len(g.nodes)),
		edgeIdx:      make(map[string]int, len(g.edges)),
		historyLimit: g.historyLimit,
		newID:        g.newID,
	}
	c.replaceLocked(g.nodes, g.edges)
	c.version = 0

	return c
}

// Clear removes all nodes and edges. The previous state is kept in history.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.pushHistoryLocked()
	g.replaceLocked(nil, nil)
}

// snapshotLocked builds a Snapshot from the current catalogs. The catalogs
// already satisfy the Snapshot invariants, so no validation is repeated.
func (g *Graph) snapshotLocked() *Snapshot {
	s := &Snapshot{
		nodes:   make([]Node, len(g.nodes)),
		edges:   make([]Edge, len(g.edges)),
		nodeIdx: make(map[string]int, len(g.nodes)),
		edgeIdx: make(map[string]int, len(g.edges)),
	}
	copy(s.nodes, g.nodes)
	copy(s.edges, g.edges)
	for k, v := range g.nodeIdx {
		s.nodeIdx[k] = v
	}
	for k, v := range g.edgeIdx {
		s.edgeIdx[k] = v
	}
	s.fingerprint = fingerprint(s.nodes, s.edges)

	return s
}

// pushHistoryLocked records the current state, dropping the oldest entry
// once the limit is reached.
func (g *Graph) pushHistoryLocked() {
	if len(g.history) >= g.historyLimit {
		drop := len(g.history) - g.historyLimit + 1
		for i := 0; i < drop; i++ {
			g.history[i] = nil
		}
		g.history = append(g.history[:0], g.history[drop:]...)
	}
	g.history = append(g.history, g.snapshotLocked())
}

// replaceLocked swaps in copies of nodes and edges and rebuilds the indexes.
func (g *Graph) replaceLocked(nodes []Node, edges []Edge) {
	g.nodes = append(make([]Node, 0, len(nodes)), nodes...)
	g.edges = append(make([]Edge, 0, len(edges)), edges...)
	g.nodeIdx = make(map[string]int, len(nodes))
	for i, n := range g.nodes {
		g.nodeIdx[n.ID] = i
	}
	g.edgeIdx = make(map[string]int, len(edges))
	for i, e := range g.edges {
		g.edgeIdx[e.ID] = i
	}
	g.version++
}
