// Package dijkstra runs Dijkstra's shortest-path algorithm over an immutable
// core.Snapshot and records every decision it makes as an ordered, replayable
// StepLog.
//
// Overview:
//
//   - Trace is a pure, synchronous function: the same snapshot, source and
//     target always yield an identical log, including every tie-break.
//   - Each record (Step) is one atomic event: Select, Consider, Update,
//     Visited, and exactly one terminal record (Path, NoPath or Distances).
//   - Every record carries a DistanceTable snapshot taken at the moment the
//     record was produced, so a consumer can show the state at any position
//     without re-running the algorithm.
//
// Algorithm (made explicit and deterministic):
//
//  1. dist[n] = +Inf for all nodes, dist[source] = 0, no predecessors, all unvisited.
//  2. While unvisited nodes remain:
//     a. Select u = argmin dist over unvisited. Ties go to the node that comes
//     first in Snapshot.Nodes() order. If the minimum is +Inf, stop.
//     b. Emit Select{u, dist[u]} and remove u from the unvisited set.
//     c. For each neighbour v of u, in edge declaration order, emit
//     Consider{u, v, alt, old}; if alt < dist[v], update dist/prev and emit
//     Update{v, alt, u}.
//     d. Emit Visited{u}. If u is the target, stop.
//  3. Terminal: Path (target reached), NoPath (target unreachable) or
//     Distances (no target).
//
// Neighbour order:
//
//   - Adjacency is built by walking Snapshot.Edges() in declared order; an
//     edge {a,b} adds b to a's list and a to b's list. A self-loop is listed
//     once and never improves anything for non-negative weights.
//   - Edges whose endpoints are missing from the node set are ignored.
//   - A NaN weight is read as 0.
//
// Preconditions:
//
//   - Weights must be non-negative. Trace does NOT validate this; with
//     negative weights the output is whatever the textbook algorithm does and
//     the "finalized distances never change" property may not hold.
//
// Error handling (sentinel errors):
//
//   - ErrNilSnapshot:  the snapshot pointer is nil.
//   - ErrInvalidStart: Source is empty or does not name a node.
//   - ErrInvalidEnd:   Target is set but does not name a node.
//   - ErrStaleLog:     StepLog.ValidFor was given a different snapshot.
//
// An unreachable target is not an error; it yields the NoPath record.
//
// API reference:
//
//	func Trace(s *core.Snapshot, opts ...Option) (*StepLog, error)
//
//	  - Source(id):       required start node.
//	  - Target(id):       optional end node; without it the log ends in Distances.
//	  - WithOnStep(fn):   called synchronously for every emitted record.
//
// Complexity:
//
//   - Time:  O(V² + E) – linear scan for the minimum, fine for hand-built graphs.
//   - Space: O(V·S) for the per-record distance snapshots, S = number of records.
//
// Thread safety:
//
//   - Trace shares nothing between calls. A StepLog is immutable and may be
//     read from any goroutine.
package dijkstra
