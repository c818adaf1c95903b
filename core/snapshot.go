// File: snapshot.go
// Role: Immutable graph view handed to the trace engine.
// Determinism:
//   - Nodes() and Edges() return declared order; nothing here iterates a map
//     to produce output.
//   - Fingerprint() hashes a canonical, order-preserving encoding.
// Concurrency:
//   - A Snapshot is never mutated after NewSnapshot returns; safe to share.

package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
)

// Snapshot is an immutable view of nodes and edges at one instant.
type Snapshot struct {
	nodes   []Node
	edges   []Edge
	nodeIdx map[string]int
	edgeIdx map[string]int

	fingerprint string
}

// NewSnapshot validates and copies nodes and edges into a new Snapshot.
//
// Steps:
//  1. Every node ID must be non-empty and unique (ErrEmptyNodeID, ErrDuplicateNode).
//  2. Every edge ID must be non-empty and unique (ErrEmptyEdgeID, ErrDuplicateEdge).
//  3. At most one edge joins an unordered {from,to} pair (ErrDuplicatePair).
//  4. Edges whose endpoints are missing are kept as-is; consumers decide how to treat them.
//  5. The fingerprint is computed once.
//
// Complexity: O(V + E).
func NewSnapshot(nodes []Node, edges []Edge) (*Snapshot, error) {
	s := &Snapshot{
		nodes:   make([]Node, len(nodes)),
		edges:   make([]Edge, len(edges)),
		nodeIdx: make(map[string]int, len(nodes)),
		edgeIdx: make(map[string]int, len(edges)),
	}
	pairs := make(map[[2]string]string, len(edges))
	copy(s.nodes, nodes)
	copy(s.edges, edges)

	for i, n := range s.nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("node #%d: %w", i, ErrEmptyNodeID)
		}
		if _, dup := s.nodeIdx[n.ID]; dup {
			return nil, fmt.Errorf("node %q: %w", n.ID, ErrDuplicateNode)
		}
		s.nodeIdx[n.ID] = i
	}
	for i, e := range s.edges {
		if e.ID == "" {
			return nil, fmt.Errorf("edge #%d: %w", i, ErrEmptyEdgeID)
		}
		if _, dup := s.edgeIdx[e.ID]; dup {
			return nil, fmt.Errorf("edge %q: %w", e.ID, ErrDuplicateEdge)
		}
		key := pairKey(e.From, e.To)
		if prev, dup := pairs[key]; dup {
			return nil, fmt.Errorf("edge %q joins %s and %s like edge %q: %w", e.ID, e.From, e.To, prev, ErrDuplicatePair)
		}
		pairs[key] = e.ID
		s.edgeIdx[e.ID] = i
	}
	s.fingerprint = fingerprint(s.nodes, s.edges)

	return s, nil
}

// pairKey orders the endpoints so {a,b} and {b,a} collide.
func pairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}

	return [2]string{a, b}
}

// MustSnapshot is like NewSnapshot but panics on error. Intended for
// fixtures and examples.
func MustSnapshot(nodes []Node, edges []Edge) *Snapshot {
	s, err := NewSnapshot(nodes, edges)
	if err != nil {
		panic(err)
	}

	return s
}

// Len returns the number of nodes.
func (s *Snapshot) Len() int { return len(s.nodes) }

// Nodes returns a copy of the nodes in declared order.
func (s *Snapshot) Nodes() []Node {
	out := make([]Node, len(s.nodes))
	copy(out, s.nodes)

	return out
}

// NodeIDs returns node IDs in declared order.
func (s *Snapshot) NodeIDs() []string {
	out := make([]string, len(s.nodes))
	for i, n := range s.nodes {
		out[i] = n.ID
	}

	return out
}

// Edges returns a copy of the edges in declared order.
func (s *Snapshot) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)

	return out
}

// HasNode reports whether id names a node of s.
func (s *Snapshot) HasNode(id string) bool {
	_, ok := s.nodeIdx[id]

	return ok
}

// Node returns the node with the given ID.
func (s *Snapshot) Node(id string) (Node, bool) {
	i, ok := s.nodeIdx[id]
	if !ok {
		return Node{}, false
	}

	return s.nodes[i], true
}

// Label returns the label of id, or id itself when the node is unknown or
// its label is empty.
func (s *Snapshot) Label(id string) string {
	if n, ok := s.Node(id); ok && n.Label != "" {
		return n.Label
	}

	return id
}

// Edge returns the edge with the given ID.
func (s *Snapshot) Edge(id string) (Edge, bool) {
	i, ok := s.edgeIdx[id]
	if !ok {
		return Edge{}, false
	}

	return s.edges[i], true
}

// EdgeBetween returns the first declared edge joining a and b in either
// direction.
// Complexity: O(E).
func (s *Snapshot) EdgeBetween(a, b string) (Edge, bool) {
	for _, e := range s.edges {
		if e.Connects(a, b) {
			return e, true
		}
	}

	return Edge{}, false
}

// Fingerprint identifies the exact content and order of s.
func (s *Snapshot) Fingerprint() string { return s.fingerprint }

// fingerprint hashes nodes then edges, each field length-prefixed so that
// no two distinct graphs share an encoding.
func fingerprint(nodes []Node, edges []Edge) string {
	h := sha256.New()
	var buf [8]byte
	writeStr := func(v string) {
		binary.BigEndian.PutUint64(buf[:], uint64(len(v)))
		h.Write(buf[:])
		h.Write([]byte(v))
	}

	binary.BigEndian.PutUint64(buf[:], uint64(len(nodes)))
	h.Write(buf[:])
	for _, n := range nodes {
		writeStr(n.ID)
		writeStr(n.Label)
	}
	binary.BigEndian.PutUint64(buf[:], uint64(len(edges)))
	h.Write(buf[:])
	for _, e := range edges {
		writeStr(e.ID)
		writeStr(e.From)
		writeStr(e.To)
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(e.Weight))
		h.Write(buf[:])
	}

	return hex.EncodeToString(h.Sum(nil))
}
