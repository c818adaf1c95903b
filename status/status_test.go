package status_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/builder"
	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/status"
)

// triangle is A–B(1), B–C(2), A–C(10), labelled with city names.
func triangle() *core.Snapshot {
	return core.MustSnapshot(
		[]core.Node{{ID: "A", Label: "Amsterdam"}, {ID: "B", Label: "Berlin"}, {ID: "C", Label: "Cologne"}},
		[]core.Edge{
			{ID: "ab", From: "A", To: "B", Weight: 1},
			{ID: "bc", From: "B", To: "C", Weight: 2},
			{ID: "ac", From: "A", To: "C", Weight: 10},
		},
	)
}

func trace(t *testing.T, s *core.Snapshot, from, to string) *dijkstra.StepLog {
	t.Helper()
	l, err := dijkstra.Trace(s, dijkstra.Source(from), dijkstra.Target(to))
	require.NoError(t, err)

	return l
}

func TestProject_Errors(t *testing.T) {
	s := triangle()
	l := trace(t, s, "A", "C")

	_, err := status.Project(s, nil, 0)
	require.ErrorIs(t, err, status.ErrNilLog)

	_, err = status.Project(nil, l, 0)
	require.ErrorIs(t, err, dijkstra.ErrNilSnapshot)

	other := core.MustSnapshot(s.Nodes(), s.Edges()[:2])
	_, err = status.Project(other, l, 0)
	require.ErrorIs(t, err, dijkstra.ErrStaleLog)

	_, err = status.NewProjector(other, l)
	require.ErrorIs(t, err, dijkstra.ErrStaleLog)
}

func TestProject_IndexZero(t *testing.T) {
	s := triangle()
	v, err := status.Project(s, trace(t, s, "A", "C"), 0)
	require.NoError(t, err)

	assert.Equal(t, map[string]status.NodeStatus{"A": status.None, "B": status.None, "C": status.None}, v.Nodes)
	assert.Nil(t, v.HighlightedEdge)
	assert.Nil(t, v.Distances)
	assert.Equal(t, status.ResultNone, v.Result.Kind)
	assert.Empty(t, v.Description)
	assert.Equal(t, status.StageInit, v.Stage)
}

func TestProject_Walkthrough(t *testing.T) {
	s := triangle()
	l := trace(t, s, "A", "C")

	type want struct {
		index int
		nodes map[string]status.NodeStatus
		edge  *status.EdgeRef
		stage status.Stage
		desc  string
	}
	N, V, D, P := status.None, status.Visiting, status.Visited, status.OnPath
	cases := []want{
		{1, map[string]status.NodeStatus{"A": V, "B": N, "C": N}, nil, status.StageSelectMin,
			"Selected node Amsterdam (dist=0)"},
		{2, map[string]status.NodeStatus{"A": V, "B": N, "C": N}, &status.EdgeRef{EdgeID: "ab", From: "A", To: "B"},
			status.StageRelaxNeighbors, "Considering edge Amsterdam → Berlin, alt=1 (old=∞)"},
		{3, map[string]status.NodeStatus{"A": V, "B": D, "C": N}, &status.EdgeRef{EdgeID: "ab", From: "A", To: "B"},
			status.StageRelaxNeighbors, "Updated Berlin: dist=1 via Amsterdam"},
		{6, map[string]status.NodeStatus{"A": D, "B": D, "C": D}, nil, status.StageMarkVisited,
			"Marked visited Amsterdam"},
		{7, map[string]status.NodeStatus{"A": D, "B": V, "C": D}, nil, status.StageSelectMin,
			"Selected node Berlin (dist=1)"},
		{8, map[string]status.NodeStatus{"A": D, "B": V, "C": D}, &status.EdgeRef{EdgeID: "ab", From: "B", To: "A"},
			status.StageRelaxNeighbors, "Considering edge Berlin → Amsterdam, alt=2 (old=0)"},
		{10, map[string]status.NodeStatus{"A": D, "B": V, "C": D}, &status.EdgeRef{EdgeID: "bc", From: "B", To: "C"},
			status.StageRelaxNeighbors, "Updated Cologne: dist=3 via Berlin"},
		{16, map[string]status.NodeStatus{"A": P, "B": P, "C": P}, nil, status.StageReconstructPath,
			"Found path: Amsterdam → Berlin → Cologne (total=3)"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("index=%d", c.index), func(t *testing.T) {
			v, err := status.Project(s, l, c.index)
			require.NoError(t, err)
			assert.Equal(t, c.index, v.Index)
			assert.Equal(t, c.nodes, v.Nodes)
			assert.Equal(t, c.edge, v.HighlightedEdge)
			assert.Equal(t, c.stage, v.Stage)
			assert.Equal(t, c.desc, v.Description)
			require.NotNil(t, v.Distances)
		})
	}

	final, err := status.Project(s, l, 16)
	require.NoError(t, err)
	assert.Equal(t, status.ResultPath, final.Result.Kind)
	assert.Equal(t, []string{"A", "B", "C"}, final.Result.Path)
	assert.Equal(t, 3.0, final.Result.Total)
	d, _ := final.Distances.Get("C")
	assert.Equal(t, 3.0, d)

	mid, err := status.Project(s, l, 4)
	require.NoError(t, err)
	assert.Equal(t, status.ResultInProgress, mid.Result.Kind)
	assert.Equal(t, dijkstra.KindConsider, mid.Result.Step.Kind)
}

func TestProject_ClampsIndex(t *testing.T) {
	s := triangle()
	l := trace(t, s, "A", "C")

	lo, err := status.Project(s, l, -3)
	require.NoError(t, err)
	assert.Equal(t, 0, lo.Index)

	hi, err := status.Project(s, l, 1000)
	require.NoError(t, err)
	assert.Equal(t, l.Len(), hi.Index)
}

func TestProject_TerminalKinds(t *testing.T) {
	pair := core.MustSnapshot([]core.Node{{ID: "A"}, {ID: "B"}}, nil)
	l := trace(t, pair, "A", "B")
	v, err := status.Project(pair, l, l.Len())
	require.NoError(t, err)
	assert.Equal(t, status.ResultNoPath, v.Result.Kind)
	assert.Equal(t, "No path to target could be found.", v.Description)
	assert.Equal(t, status.StageReconstructPath, v.Stage)
	assert.Equal(t, status.Visited, v.Status("A"))
	assert.Equal(t, status.None, v.Status("B"))

	all, err := dijkstra.Trace(pair, dijkstra.Source("A"))
	require.NoError(t, err)
	v, err = status.Project(pair, all, all.Len())
	require.NoError(t, err)
	assert.Equal(t, status.ResultDistances, v.Result.Kind)
	assert.Equal(t, "Final distances computed.", v.Description)
	assert.Equal(t, 2, v.Result.Table.Len())
}

func TestProject_HighlightIgnoresEdgeDirection(t *testing.T) {
	s := core.MustSnapshot(
		[]core.Node{{ID: "A"}, {ID: "B"}},
		[]core.Edge{{ID: "ba", From: "B", To: "A", Weight: 1}},
	)
	l := trace(t, s, "A", "B")
	v, err := status.Project(s, l, 3)
	require.NoError(t, err)
	require.Equal(t, dijkstra.KindUpdate, v.Result.Step.Kind)
	assert.Equal(t, &status.EdgeRef{EdgeID: "ba", From: "A", To: "B"}, v.HighlightedEdge)
}

func TestDescribe_NilSnapshotUsesIDs(t *testing.T) {
	got := status.Describe(nil, dijkstra.Step{Kind: dijkstra.KindVisited, Node: "X"})
	assert.Equal(t, "Marked visited X", got)
}

func TestStage_Lines(t *testing.T) {
	lines := status.PseudocodeLines()
	require.Len(t, lines, 6)
	assert.Equal(t, lines[0], status.StageInit.Line())
	assert.Equal(t, lines[5], status.StageReconstructPath.Line())
	assert.Equal(t, "Keep a set of unvisited nodes.", status.StageUnvisitedSet.Line())
	assert.Empty(t, status.Stage(0).Line())
	assert.Empty(t, status.Stage(7).Line())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "path", status.OnPath.String())
	assert.Equal(t, "visiting", status.Visiting.String())
	assert.Equal(t, "in-progress", status.ResultInProgress.String())
	assert.Equal(t, "no-path", status.ResultNoPath.String())
}

// Full replay, forward incremental and backward incremental projections agree
// at every index.
func TestProjector_ReplayConsistency(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		s, err := builder.BuildSnapshot(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntWeight(0, 9)},
			builder.RandomSparse(10, 0.3),
		)
		require.NoError(t, err)
		l := trace(t, s, "0", "9")

		p, err := status.NewProjector(s, l)
		require.NoError(t, err)
		assert.Same(t, s, p.Snapshot())
		assert.Same(t, l, p.Log())

		for k := 0; k <= l.Len(); k++ {
			want, err := status.Project(s, l, k)
			require.NoError(t, err)
			require.Equal(t, want, p.At(k), "seed %d forward k=%d", seed, k)
		}
		for k := l.Len(); k >= 0; k-- {
			want, err := status.Project(s, l, k)
			require.NoError(t, err)
			require.Equal(t, want, p.At(k), "seed %d backward k=%d", seed, k)
		}
	}
}

func TestProjector_ViewsAreIndependent(t *testing.T) {
	s := triangle()
	p, err := status.NewProjector(s, trace(t, s, "A", "C"))
	require.NoError(t, err)

	v := p.At(1)
	v.Nodes["A"] = status.OnPath
	assert.Equal(t, status.Visiting, p.At(1).Status("A"))
}
