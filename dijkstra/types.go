// File: types.go
// Role: Sentinel errors, StepKind, Step, DistanceTable and Trace options.

package dijkstra

import (
	"errors"
	"math"
	"strconv"
)

// Sentinel errors returned by Trace and StepLog.
var (
	// ErrNilSnapshot indicates that a nil *core.Snapshot was passed to Trace.
	ErrNilSnapshot = errors.New("dijkstra: snapshot is nil")

	// ErrInvalidStart indicates the source is empty or not a node of the snapshot.
	ErrInvalidStart = errors.New("dijkstra: start node not found")

	// ErrInvalidEnd indicates the target is set but not a node of the snapshot.
	ErrInvalidEnd = errors.New("dijkstra: end node not found")

	// ErrStaleLog indicates a log is being used with a snapshot other than the
	// one it was generated from.
	ErrStaleLog = errors.New("dijkstra: step log is stale for this snapshot")
)

// Infinity is the distance of a node that has not been reached.
var Infinity = math.Inf(1)

// StepKind discriminates the records of a StepLog. The string values are
// stable and appear in rendered output.
type StepKind string

const (
	// KindSelect – a node was chosen as the next one to finalize.
	KindSelect StepKind = "select"

	// KindConsider – an edge relaxation attempt.
	KindConsider StepKind = "consider"

	// KindUpdate – a relaxation succeeded.
	KindUpdate StepKind = "update"

	// KindVisited – a node was finalized.
	KindVisited StepKind = "visited"

	// KindPath – terminal: the target was reached.
	KindPath StepKind = "path"

	// KindNoPath – terminal: the target is unreachable.
	KindNoPath StepKind = "no-path"

	// KindDistances – terminal: no target was requested.
	KindDistances StepKind = "distances"
)

// IsTerminal reports whether k ends a log.
func (k StepKind) IsTerminal() bool {
	switch k {
	case KindPath, KindNoPath, KindDistances:
		return true
	default:
		return false
	}
}

// Step is one immutable record of the trace. Which fields are meaningful
// depends on Kind:
//
//	Select    – Node, Dist
//	Consider  – From, To, Alt, Old
//	Update    – Node, NewDist, Predecessor
//	Visited   – Node
//	Path      – Path, Total
//	NoPath    – (none)
//	Distances – Table
//
// Snapshot is always set.
type Step struct {
	Kind StepKind

	Node string
	Dist float64

	From string
	To   string
	Alt  float64
	Old  float64

	NewDist     float64
	Predecessor string

	Path  []string
	Total float64

	Table DistanceTable

	// Snapshot is every node's best-known distance when the record was produced.
	Snapshot DistanceTable
}

// DistanceTable maps node IDs to distances, in snapshot node order.
// It is immutable; the ID list and index are shared between tables of one log.
type DistanceTable struct {
	ids  []string
	idx  map[string]int
	vals []float64
}

// Len returns the number of entries.
func (t DistanceTable) Len() int { return len(t.vals) }

// IsZero reports whether t holds no table at all (as opposed to a table of
// an empty graph, which also has Len 0).
func (t DistanceTable) IsZero() bool { return t.ids == nil && t.vals == nil }

// At returns the i-th node ID and its distance.
func (t DistanceTable) At(i int) (string, float64) { return t.ids[i], t.vals[i] }

// Get returns the distance of id.
func (t DistanceTable) Get(id string) (float64, bool) {
	i, ok := t.idx[id]
	if !ok {
		return 0, false
	}

	return t.vals[i], true
}

// IDs returns the node IDs in snapshot order.
func (t DistanceTable) IDs() []string { return append([]string(nil), t.ids...) }

// Map returns the table as a fresh map.
func (t DistanceTable) Map() map[string]float64 {
	m := make(map[string]float64, len(t.vals))
	for i, id := range t.ids {
		m[id] = t.vals[i]
	}

	return m
}

// Equal reports whether t and o hold the same IDs and distances in the same order.
func (t DistanceTable) Equal(o DistanceTable) bool {
	if len(t.vals) != len(o.vals) || len(t.ids) != len(o.ids) {
		return false
	}
	for i := range t.vals {
		if t.ids[i] != o.ids[i] || t.vals[i] != o.vals[i] {
			return false
		}
	}

	return true
}

// FormatDistance renders d, using "∞" for unreached nodes.
func FormatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "∞"
	}
	if math.IsInf(d, -1) {
		return "-∞"
	}

	return strconv.FormatFloat(d, 'g', -1, 64)
}

// Options configures Trace.
//
// Source – starting node ID (required).
// Target – optional end node ID; "" means "compute all distances".
// OnStep – hook called synchronously for each emitted record.
type Options struct {
	Source string
	Target string
	OnStep func(Step)
}

// Option represents a functional option for configuring Trace.
type Option func(*Options)

// Source sets the starting node.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Target sets the end node. Passing "" keeps the default (no target).
func Target(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithOnStep registers a hook invoked for each record as it is emitted.
// A nil fn is ignored.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// DefaultOptions returns Options with no source, no target and a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnStep: func(Step) {},
	}
}
