// Package status projects a position in a dijkstra.StepLog onto everything a
// renderer needs to draw it: per-node status, the highlighted edge, the
// active distance table, a result summary, a one-line description and the
// pseudocode stage.
//
// Project is a pure function of (snapshot, log, index). Full replay from zero
// and the incremental Projector cache return identical Views, which is what
// makes free scrubbing safe.
//
// Replay rules for records [0, index):
//
//	Select{n}   → n is Visiting
//	Visited{n}  → n is Visited, unless it is already OnPath
//	Update{n}   → n is Visited (the relaxed node is shown as touched)
//	Path{p}     → every node of p is OnPath, overriding earlier statuses
//
// Derived from the last applied record (index-1), if any:
//
//   - Distances:       that record's distance snapshot; nil at index 0.
//   - HighlightedEdge: set for Consider (From→To) and Update
//     (Predecessor→Node) only; the edge is looked up in either direction.
//   - Result:          Path, NoPath or Distances for terminal records,
//     InProgress otherwise, None at index 0.
//   - Description:     Describe(snapshot, record); "" at index 0.
//   - Stage:           Init at index 0, SelectMin for Select, RelaxNeighbors
//     for Consider/Update, MarkVisited for Visited, ReconstructPath for
//     terminal records. UnvisitedSet is listed for completeness and never
//     active on its own.
//
// Errors:
//
//   - ErrNilLog:           the log is nil.
//   - dijkstra.ErrStaleLog: the log was generated from another snapshot.
//   - dijkstra.ErrNilSnapshot: the snapshot is nil.
package status
