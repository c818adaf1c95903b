// File: projector.go
// Role: Projector, an incremental cache over Project.
// Determinism:
//   - At(i) equals Project(snapshot, log, i) for every i.
// Concurrency:
//   - Safe for concurrent use; the cache is guarded by a mutex.

package status

import (
	"maps"
	"sync"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
)

// Projector caches the cumulative node statuses of every index it has
// reached, so moving forward by one applies one record and moving backward
// applies none. A Projector is bound to one (snapshot, log) pair; build a new
// one when either changes.
type Projector struct {
	snap *core.Snapshot
	log  *dijkstra.StepLog

	mu    sync.Mutex
	cache []map[string]NodeStatus // cache[i] = statuses after i records
}

// NewProjector validates the pair once. It fails with the same errors as
// Project.
func NewProjector(s *core.Snapshot, l *dijkstra.StepLog) (*Projector, error) {
	if err := check(s, l); err != nil {
		return nil, err
	}

	cache := make([]map[string]NodeStatus, 1, l.Len()+1)
	cache[0] = initial(s)

	return &Projector{snap: s, log: l, cache: cache}, nil
}

// At returns the View at index, clamped into [0, Len].
func (p *Projector) At(index int) View {
	index = clamp(index, p.log.Len())

	p.mu.Lock()
	for len(p.cache) <= index {
		n := len(p.cache)
		next := maps.Clone(p.cache[n-1])
		apply(next, p.log.At(n-1))
		p.cache = append(p.cache, next)
	}
	st := maps.Clone(p.cache[index])
	p.mu.Unlock()

	return derive(p.snap, p.log, index, st)
}

// Snapshot returns the snapshot the projector is bound to.
func (p *Projector) Snapshot() *core.Snapshot { return p.snap }

// Log returns the log the projector is bound to.
func (p *Projector) Log() *dijkstra.StepLog { return p.log }
