// File: dijkstra.go
// Role: Trace and its runner (init, process, relax, finish).
// Determinism:
//   - Minimum selection is a linear scan in snapshot node order; ties keep
//     the earliest node.
//   - Node state lives in slices indexed by snapshot position; no map is
//     iterated while producing records.
// Concurrency:
//   - One runner per call; nothing is shared.

package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathtrace/core"
)

// noPred marks a node without predecessor.
const noPred = -1

// Trace runs Dijkstra over s and returns the complete step log.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrInvalidStart).
//  2. s must be non-nil (ErrNilSnapshot).
//  3. s must contain Source (ErrInvalidStart).
//  4. If Target is set, s must contain it (ErrInvalidEnd).
//
// Weights are assumed non-negative and are not checked.
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V·S), S = number of records
func Trace(s *core.Snapshot, opts ...Option) (*StepLog, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, fmt.Errorf("%w: source is empty", ErrInvalidStart)
	}
	if s == nil {
		return nil, ErrNilSnapshot
	}
	if !s.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStart, cfg.Source)
	}
	if cfg.Target != "" && !s.HasNode(cfg.Target) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEnd, cfg.Target)
	}

	// 3) Prepare the runner and execute
	r := newRunner(s, cfg)
	r.init()
	r.process()
	r.finish()

	return r.log, nil
}

// neighbor is one adjacency entry.
type neighbor struct {
	to     int
	weight float64
}

// runner holds the mutable state for a single Trace execution.
type runner struct {
	opts Options

	ids []string       // node IDs in snapshot order
	idx map[string]int // node ID → position in ids
	adj [][]neighbor   // adjacency by position, edge declaration order

	dist      []float64 // best-known distance by position
	prev      []int     // predecessor position or noPred
	unvisited []bool
	remaining int

	source int
	target int // noPred when no target

	log *StepLog
}

// newRunner indexes the snapshot and builds the adjacency lists.
func newRunner(s *core.Snapshot, cfg Options) *runner {
	ids := s.NodeIDs()
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}

	adj := make([][]neighbor, len(ids))
	var a, b int
	var okA, okB bool
	for _, e := range s.Edges() {
		a, okA = idx[e.From]
		b, okB = idx[e.To]
		// Edges pointing at unknown nodes are an authoring glitch; skip them.
		if !okA || !okB {
			continue
		}
		w := e.Weight
		if math.IsNaN(w) {
			w = 0
		}
		adj[a] = append(adj[a], neighbor{to: b, weight: w})
		if a != b {
			adj[b] = append(adj[b], neighbor{to: a, weight: w})
		}
	}

	target := noPred
	if cfg.Target != "" {
		target = idx[cfg.Target]
	}

	return &runner{
		opts:   cfg,
		ids:    ids,
		idx:    idx,
		adj:    adj,
		source: idx[cfg.Source],
		target: target,
		log: &StepLog{
			source:      cfg.Source,
			target:      cfg.Target,
			fingerprint: s.Fingerprint(),
		},
	}
}

// init sets every distance to +Inf except the source, clears predecessors
// and marks every node unvisited.
func (r *runner) init() {
	n := len(r.ids)
	r.dist = make([]float64, n)
	r.prev = make([]int, n)
	r.unvisited = make([]bool, n)
	for i := 0; i < n; i++ {
		r.dist[i] = Infinity
		r.prev[i] = noPred
		r.unvisited[i] = true
	}
	r.remaining = n
	r.dist[r.source] = 0
}

// process is the main loop. It stops when every node is visited, when the
// closest unvisited node is unreachable, or right after the target is
// finalized.
func (r *runner) process() {
	var u int
	for r.remaining > 0 {
		// a) pick the closest unvisited node
		u = r.selectMin()
		if u == noPred {
			break
		}

		// b) announce and remove from the unvisited set
		r.emit(Step{Kind: KindSelect, Node: r.ids[u], Dist: r.dist[u]})
		r.unvisited[u] = false
		r.remaining--

		// c) relax every incident edge
		r.relax(u)

		// d) finalize
		r.emit(Step{Kind: KindVisited, Node: r.ids[u]})

		// e) early exit once the target is settled
		if u == r.target {
			break
		}
	}
}

// selectMin returns the unvisited node with the smallest distance, the first
// in snapshot order on ties, or noPred when that distance is +Inf.
func (r *runner) selectMin() int {
	best := noPred
	bestDist := Infinity
	for i, open := range r.unvisited {
		// strict < keeps the earliest node on ties
		if open && r.dist[i] < bestDist {
			best = i
			bestDist = r.dist[i]
		}
	}

	return best
}

// relax records a Consider for each neighbour of u and an Update whenever
// the candidate distance is strictly better.
func (r *runner) relax(u int) {
	var alt float64
	for _, nb := range r.adj[u] {
		alt = r.dist[u] + nb.weight
		r.emit(Step{
			Kind: KindConsider,
			From: r.ids[u],
			To:   r.ids[nb.to],
			Alt:  alt,
			Old:  r.dist[nb.to],
		})
		if alt < r.dist[nb.to] {
			r.dist[nb.to] = alt
			r.prev[nb.to] = u
			r.emit(Step{
				Kind:        KindUpdate,
				Node:        r.ids[nb.to],
				NewDist:     alt,
				Predecessor: r.ids[u],
			})
		}
	}
}

// finish appends the terminal record.
func (r *runner) finish() {
	if r.target == noPred {
		table := r.table()
		r.emitWith(Step{Kind: KindDistances, Table: table}, table)

		return
	}

	if r.prev[r.target] == noPred && r.target != r.source {
		r.emit(Step{Kind: KindNoPath})

		return
	}

	r.emit(Step{Kind: KindPath, Path: r.reconstruct(), Total: r.dist[r.target]})
}

// reconstruct follows predecessors from the target back to the source.
// The walk is bounded by the node count so a corrupted chain (possible with
// negative weights) cannot loop forever.
func (r *runner) reconstruct() []string {
	path := make([]string, 0, len(r.ids))
	cur := r.target
	for steps := 0; cur != noPred && steps < len(r.ids); steps++ {
		path = append(path, r.ids[cur])
		if cur == r.source {
			break
		}
		cur = r.prev[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// table copies the current distances into an immutable DistanceTable.
func (r *runner) table() DistanceTable {
	vals := make([]float64, len(r.dist))
	copy(vals, r.dist)

	return DistanceTable{ids: r.ids, idx: r.idx, vals: vals}
}

// emit stamps st with a fresh distance snapshot and appends it.
func (r *runner) emit(st Step) { r.emitWith(st, r.table()) }

func (r *runner) emitWith(st Step, snap DistanceTable) {
	st.Snapshot = snap
	r.log.steps = append(r.log.steps, st)
	r.opts.OnStep(st)
}
