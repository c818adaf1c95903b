// Package core defines the graph data contract consumed by the trace engine:
// Node, Edge and the immutable Snapshot, plus the thread-safe authoring Graph
// that produces snapshots.
//
// The model is deliberately small:
//
//   - Nodes carry an opaque ID and a human label. Position and colour are
//     rendering concerns and live outside this package.
//   - Edges are undirected and weighted (float64). At most one edge exists per
//     unordered {from,to} pair; Graph.Connect coalesces on insert and
//     NewSnapshot rejects a second edge on a pair.
//   - A Snapshot is immutable once built. Its node order is the declared order
//     (insertion order for Graph), and that order is the documented tie-break
//     used by package dijkstra, so traces are reproducible.
//
// Snapshot:
//
//	NewSnapshot(nodes []Node, edges []Edge) (*Snapshot, error)
//	Nodes() []Node                    // declared order (copy)
//	Edges() []Edge                    // declared order (copy)
//	HasNode(id) bool / Node(id) (Node, bool) / Label(id) string
//	EdgeBetween(a, b) (Edge, bool)    // undirected lookup
//	Fingerprint() string              // sha256 over the canonical encoding
//
// Two snapshots with equal nodes and edges in the same order share a
// fingerprint; any authoring edit changes it. Step logs remember the
// fingerprint of the snapshot they were generated from, which is how a stale
// log is detected after the graph changes.
//
// Graph (authoring):
//
//	AddNode(label) (id, error)             // id from google/uuid
//	AddNodeWithID(id, label) error
//	RemoveNode(id) error                   // drops incident edges too
//	SetLabel(id, label) error
//	Connect(from, to, weight) (id, error)  // coalescing insert, no self-loops
//	SetWeight(edgeID, weight) error
//	RemoveEdge(edgeID) error
//	Undo() bool / CanUndo() bool           // bounded history (WithHistoryLimit)
//	Restore(*Snapshot) error               // replace everything, e.g. after load
//	Snapshot() *Snapshot
//
// Every successful mutation pushes the previous state onto the undo stack
// before applying the change. The history belongs to the authoring side only;
// it is unrelated to step logs and playback cursors.
//
// Errors:
//
//	ErrEmptyNodeID    – zero-length node ID
//	ErrDuplicateNode  – node ID declared twice
//	ErrEmptyEdgeID    – zero-length edge ID
//	ErrDuplicateEdge  – edge ID declared twice
//	ErrDuplicatePair  – two edges on one unordered pair
//	ErrNodeNotFound   – missing node
//	ErrEdgeNotFound   – missing edge
//	ErrLoopNotAllowed – Connect(from, from, ...)
//	ErrNilSnapshot    – Restore(nil)
package core
