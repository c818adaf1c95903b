// File: project.go
// Role: Project (full replay) and the shared replay/derive helpers.
// Determinism:
//   - Output depends only on (snapshot, log, index).

package status

import (
	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
)

// Project replays records [0, index) of l and derives the View at that
// position. index is clamped into [0, l.Len()].
//
// Complexity: O(V + index).
func Project(s *core.Snapshot, l *dijkstra.StepLog, index int) (View, error) {
	if err := check(s, l); err != nil {
		return View{}, err
	}

	index = clamp(index, l.Len())
	st := initial(s)
	for i := 0; i < index; i++ {
		apply(st, l.At(i))
	}

	return derive(s, l, index, st), nil
}

// check validates the (snapshot, log) pair.
func check(s *core.Snapshot, l *dijkstra.StepLog) error {
	if l == nil {
		return ErrNilLog
	}

	return l.ValidFor(s)
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}

	return i
}

// initial returns every node of s at None.
func initial(s *core.Snapshot) map[string]NodeStatus {
	st := make(map[string]NodeStatus, s.Len())
	for _, id := range s.NodeIDs() {
		st[id] = None
	}

	return st
}

// apply folds one record into st.
func apply(st map[string]NodeStatus, rec dijkstra.Step) {
	switch rec.Kind {
	case dijkstra.KindSelect:
		st[rec.Node] = Visiting
	case dijkstra.KindVisited:
		if st[rec.Node] != OnPath {
			st[rec.Node] = Visited
		}
	case dijkstra.KindUpdate:
		st[rec.Node] = Visited
	case dijkstra.KindPath:
		for _, id := range rec.Path {
			st[id] = OnPath
		}
	}
}

// derive builds the View for index from the accumulated statuses and the
// last applied record. st is owned by the returned View.
func derive(s *core.Snapshot, l *dijkstra.StepLog, index int, st map[string]NodeStatus) View {
	v := View{Index: index, Nodes: st, Stage: StageInit}
	if index == 0 {
		return v
	}

	last := l.At(index - 1)
	dist := last.Snapshot
	v.Distances = &dist
	v.Description = Describe(s, last)

	switch last.Kind {
	case dijkstra.KindPath:
		v.Result = Result{Kind: ResultPath, Path: last.Path, Total: last.Total}
		v.Stage = StageReconstructPath
	case dijkstra.KindNoPath:
		v.Result = Result{Kind: ResultNoPath}
		v.Stage = StageReconstructPath
	case dijkstra.KindDistances:
		v.Result = Result{Kind: ResultDistances, Table: last.Table}
		v.Stage = StageReconstructPath
	case dijkstra.KindConsider:
		v.HighlightedEdge = edgeRef(s, last.From, last.To)
		v.Result = Result{Kind: ResultInProgress, Step: last}
		v.Stage = StageRelaxNeighbors
	case dijkstra.KindUpdate:
		v.HighlightedEdge = edgeRef(s, last.Predecessor, last.Node)
		v.Result = Result{Kind: ResultInProgress, Step: last}
		v.Stage = StageRelaxNeighbors
	case dijkstra.KindSelect:
		v.Result = Result{Kind: ResultInProgress, Step: last}
		v.Stage = StageSelectMin
	case dijkstra.KindVisited:
		v.Result = Result{Kind: ResultInProgress, Step: last}
		v.Stage = StageMarkVisited
	}

	return v
}

// edgeRef looks up the edge joining from and to in either direction.
func edgeRef(s *core.Snapshot, from, to string) *EdgeRef {
	ref := &EdgeRef{From: from, To: to}
	if e, ok := s.EdgeBetween(from, to); ok {
		ref.EdgeID = e.ID
	}

	return ref
}
