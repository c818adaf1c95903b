package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/builder"
	"github.com/katalvlaran/pathtrace/core"
)

// pairs renders edges as "u-v" in declared order.
func pairs(s *core.Snapshot) []string {
	var out []string
	for _, e := range s.Edges() {
		out = append(out, e.From+"-"+e.To)
	}

	return out
}

func TestConstructors_Topology(t *testing.T) {
	tests := []struct {
		name   string
		ctor   builder.Constructor
		wantV  int
		wantE  int
		prefix []string // leading edges in emission order
	}{
		{"Path(3)", builder.Path(3), 3, 2, []string{"0-1", "1-2"}},
		{"Cycle(4)", builder.Cycle(4), 4, 4, []string{"0-1", "1-2", "2-3", "3-0"}},
		{"Star(4)", builder.Star(4), 4, 3, []string{"0-1", "0-2", "0-3"}},
		{"Wheel(5)", builder.Wheel(5), 5, 8, []string{"1-2", "2-3", "3-4", "4-1", "0-1"}},
		{"Complete(4)", builder.Complete(4), 4, 6, []string{"0-1", "0-2", "0-3", "1-2"}},
		{"Grid(2,3)", builder.Grid(2, 3), 6, 7, []string{"0,0-0,1", "0,0-1,0", "0,1-0,2"}},
		{"RandomSparse(5,0)", builder.RandomSparse(5, 0), 5, 0, nil},
		{"RandomSparse(5,1)", builder.RandomSparse(5, 1), 5, 10, []string{"0-1", "0-2"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := builder.BuildSnapshot(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, s.Len())
			got := pairs(s)
			require.Len(t, got, tc.wantE)
			assert.Equal(t, tc.prefix, got[:len(tc.prefix)])
			for _, e := range s.Edges() {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
			}
		})
	}
}

func TestConstructors_Validation(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,2)", builder.Grid(0, 2), builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(3,1.5)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(3,.5) no rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuildGraph_DuplicateIDsAcrossConstructors(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(3), builder.Cycle(3))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.ErrorIs(t, err, core.ErrDuplicateNode)
}

func TestBuildGraph_SequentialEdgeIDs(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)

	s := g.Snapshot()
	var ids []string
	for _, e := range s.Edges() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"e0", "e1", "e2"}, ids)

	// A caller-supplied generator wins over the default.
	g, err = builder.BuildGraph(
		[]core.GraphOption{core.WithIDGenerator(func() string { return "x" })},
		nil, builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, "x", g.Snapshot().Edges()[0].ID)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() *core.Snapshot {
		s, err := builder.BuildSnapshot(
			[]builder.BuilderOption{builder.WithSeed(7), builder.WithIntWeight(0, 9)},
			builder.RandomSparse(12, 0.3),
		)
		require.NoError(t, err)

		return s
	}

	a, b := build(), build()
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 0.0)
		assert.LessOrEqual(t, e.Weight, 9.0)
	}
}

func TestOptions_IDsLabelsWeights(t *testing.T) {
	s, err := builder.BuildSnapshot([]builder.BuilderOption{
		builder.WithSymbolIDs(),
		builder.WithLabels(builder.PrefixIDFn("city-")),
		builder.WithConstantWeight(2.5),
	}, builder.Path(3))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, s.NodeIDs())
	assert.Equal(t, "city-1", s.Label("B"))
	assert.Equal(t, 2.5, s.Edges()[0].Weight)

	grid, err := builder.BuildSnapshot([]builder.BuilderOption{builder.WithExcelColumnIDs()}, builder.Grid(1, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "0,1"}, grid.NodeIDs(), "grid IDs are coordinates")
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Equal(t, "v3", builder.PrefixIDFn("v")(3))
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
}

func TestWeightFns(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.Equal(t, 3.0, builder.ConstantWeightFn(3)(rng))
	assert.Equal(t, 2.0, builder.UniformWeightFn(2, 5)(nil))
	assert.Equal(t, 4.0, builder.UniformWeightFn(4, 4)(rng))
	for i := 0; i < 100; i++ {
		w := builder.UniformWeightFn(2, 5)(rng)
		require.GreaterOrEqual(t, w, 2.0)
		require.Less(t, w, 5.0)

		n := builder.IntWeightFn(1, 3)(rng)
		require.Contains(t, []float64{1, 2, 3}, n)
	}

	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(3, 1) })
	assert.Panics(t, func() { builder.IntWeightFn(-1, 1) })
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithLabels(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}
