// File: types.go
// Role: Node, Edge, sentinel errors, GraphOption, Graph and NewGraph.
// Concurrency:
//   - Graph guards its catalogs with a single sync.RWMutex.
//   - Node and Edge are plain values; Snapshot is immutable.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node was declared with an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates that the same node ID was declared twice.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrEmptyEdgeID indicates that an edge was declared with an empty ID.
	ErrEmptyEdgeID = errors.New("core: edge ID is empty")

	// ErrDuplicateEdge indicates that the same edge ID was declared twice.
	ErrDuplicateEdge = errors.New("core: duplicate edge ID")

	// ErrDuplicatePair indicates two edges joining the same unordered pair
	// of endpoints.
	ErrDuplicatePair = errors.New("core: duplicate edge between the same nodes")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates Connect was asked to join a node to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNilSnapshot indicates a nil *Snapshot was passed to Restore.
	ErrNilSnapshot = errors.New("core: snapshot is nil")
)

// DefaultHistoryLimit is the number of undo snapshots a Graph keeps by default.
const DefaultHistoryLimit = 50

// Node is a graph vertex as seen by the trace engine.
type Node struct {
	// ID uniquely identifies the node within a snapshot.
	ID string `json:"id" yaml:"id"`

	// Label is the human-readable name shown in descriptions.
	Label string `json:"label" yaml:"label"`
}

// Edge is an undirected weighted connection between two nodes.
type Edge struct {
	ID     string  `json:"id" yaml:"id"`
	From   string  `json:"from" yaml:"from"`
	To     string  `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Connects reports whether e joins a and b in either direction.
func (e Edge) Connects(a, b string) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// Other returns the endpoint of e opposite to id.
// For a self-loop it returns id itself.
func (e Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithHistoryLimit sets how many undo snapshots the Graph retains.
// Panics if n < 1.
func WithHistoryLimit(n int) GraphOption {
	if n < 1 {
		panic(fmt.Sprintf("core: WithHistoryLimit(%d): limit must be >= 1", n))
	}

	return func(g *Graph) { g.historyLimit = n }
}

// WithIDGenerator replaces the uuid-based generator used by AddNode and
// Connect. Useful for reproducible fixtures. Panics on nil.
func WithIDGenerator(fn func() string) GraphOption {
	if fn == nil {
		panic("core: WithIDGenerator(nil)")
	}

	return func(g *Graph) { g.newID = fn }
}

// Graph is the mutable authoring model. It keeps nodes and edges in
// insertion order so snapshots taken from it have a stable declared order.
//
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	nodes []Node
	edges []Edge

	// nodeIdx and edgeIdx map IDs to positions in nodes/edges.
	nodeIdx map[string]int
	edgeIdx map[string]int

	history      []*Snapshot
	historyLimit int
	version      uint64

	// newID generates node and edge IDs; swapped in tests for determinism.
	newID func() string
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodeIdx:      make(map[string]int),
		edgeIdx:      make(map[string]int),
		historyLimit: DefaultHistoryLimit,
		newID:        newUUID,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Version returns a counter bumped by every successful mutation.
func (g *Graph) Version() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.version
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
