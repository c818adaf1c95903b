// File: types.go
// Role: View and its parts: NodeStatus, EdgeRef, Result, Stage.

package status

import (
	"errors"

	"github.com/katalvlaran/pathtrace/dijkstra"
)

// ErrNilLog indicates Project or NewProjector was given a nil log.
var ErrNilLog = errors.New("status: step log is nil")

// NodeStatus is the display state of one node.
type NodeStatus int

const (
	None NodeStatus = iota
	Visiting
	Visited
	OnPath
)

// String implements fmt.Stringer.
func (s NodeStatus) String() string {
	switch s {
	case None:
		return "none"
	case Visiting:
		return "visiting"
	case Visited:
		return "visited"
	case OnPath:
		return "path"
	default:
		return "unknown"
	}
}

// EdgeRef identifies the edge a Consider or Update record travels along.
// EdgeID is empty when no edge of the snapshot joins From and To.
type EdgeRef struct {
	EdgeID string
	From   string
	To     string
}

// ResultKind discriminates Result.
type ResultKind int

const (
	// ResultNone – nothing applied yet.
	ResultNone ResultKind = iota
	// ResultInProgress – the last applied record is not terminal.
	ResultInProgress
	// ResultPath – the target was reached.
	ResultPath
	// ResultNoPath – the target is unreachable.
	ResultNoPath
	// ResultDistances – no target; every distance is final.
	ResultDistances
)

// String implements fmt.Stringer.
func (k ResultKind) String() string {
	switch k {
	case ResultNone:
		return "none"
	case ResultInProgress:
		return "in-progress"
	case ResultPath:
		return "path"
	case ResultNoPath:
		return "no-path"
	case ResultDistances:
		return "distances"
	default:
		return "unknown"
	}
}

// Result summarises the last applied record.
//
//	InProgress – Step
//	Path       – Path, Total
//	Distances  – Table
type Result struct {
	Kind  ResultKind
	Step  dijkstra.Step
	Path  []string
	Total float64
	Table dijkstra.DistanceTable
}

// Stage is the pseudocode line (1..6) matching the last applied record.
type Stage int

const (
	StageInit Stage = iota + 1
	StageUnvisitedSet
	StageSelectMin
	StageRelaxNeighbors
	StageMarkVisited
	StageReconstructPath
)

var pseudocode = [...]string{
	StageInit:            "Set dist[node] = ∞ for every node; dist[start] = 0.",
	StageUnvisitedSet:    "Keep a set of unvisited nodes.",
	StageSelectMin:       "Pick the unvisited node u with smallest dist[u].",
	StageRelaxNeighbors:  "For each neighbor v of u: if dist[u] + weight(u,v) < dist[v], update dist[v] and remember u as predecessor.",
	StageMarkVisited:     "Mark u visited and repeat until all nodes processed or target reached.",
	StageReconstructPath: "Reconstruct shortest path by following predecessors from target back to start.",
}

// Line returns the pseudocode line of s, or "" when s is out of range.
func (s Stage) Line() string {
	if s < StageInit || s > StageReconstructPath {
		return ""
	}

	return pseudocode[s]
}

// PseudocodeLines returns the six lines in stage order.
func PseudocodeLines() []string {
	out := make([]string, 0, len(pseudocode)-1)
	for s := StageInit; s <= StageReconstructPath; s++ {
		out = append(out, pseudocode[s])
	}

	return out
}

// View is everything a renderer needs for one cursor position.
type View struct {
	Index           int
	Nodes           map[string]NodeStatus // every snapshot node, None by default
	HighlightedEdge *EdgeRef
	Distances       *dijkstra.DistanceTable // nil when nothing is applied
	Result          Result
	Description     string
	Stage           Stage
}

// Status returns the status of id, None when unknown.
func (v View) Status(id string) NodeStatus { return v.Nodes[id] }
