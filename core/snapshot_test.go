package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/core"
)

func triangle() ([]core.Node, []core.Edge) {
	nodes := []core.Node{{ID: "A", Label: "a"}, {ID: "B", Label: "b"}, {ID: "C"}}
	edges := []core.Edge{
		{ID: "e1", From: "A", To: "B", Weight: 1},
		{ID: "e2", From: "B", To: "C", Weight: 2},
		{ID: "e3", From: "A", To: "C", Weight: 10},
	}

	return nodes, edges
}

func TestNewSnapshot_Validation(t *testing.T) {
	cases := []struct {
		name  string
		nodes []core.Node
		edges []core.Edge
		want  error
	}{
		{"empty node id", []core.Node{{ID: ""}}, nil, core.ErrEmptyNodeID},
		{"duplicate node", []core.Node{{ID: "A"}, {ID: "A"}}, nil, core.ErrDuplicateNode},
		{"empty edge id", []core.Node{{ID: "A"}}, []core.Edge{{From: "A", To: "A"}}, core.ErrEmptyEdgeID},
		{"duplicate edge", []core.Node{{ID: "A"}, {ID: "B"}},
			[]core.Edge{{ID: "e", From: "A", To: "B"}, {ID: "e", From: "B", To: "A"}}, core.ErrDuplicateEdge},
		{"duplicate pair", []core.Node{{ID: "A"}, {ID: "B"}},
			[]core.Edge{{ID: "ab", From: "A", To: "B", Weight: 1}, {ID: "ba", From: "B", To: "A", Weight: 2}}, core.ErrDuplicatePair},
		{"duplicate self-loop", []core.Node{{ID: "A"}},
			[]core.Edge{{ID: "l1", From: "A", To: "A"}, {ID: "l2", From: "A", To: "A"}}, core.ErrDuplicatePair},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewSnapshot(tc.nodes, tc.edges)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestNewSnapshot_KeepsDanglingEdges(t *testing.T) {
	s, err := core.NewSnapshot(
		[]core.Node{{ID: "A"}},
		[]core.Edge{{ID: "e1", From: "A", To: "ghost", Weight: 1}},
	)
	require.NoError(t, err)
	require.Len(t, s.Edges(), 1)
	assert.False(t, s.HasNode("ghost"))
}

func TestSnapshot_DeclaredOrderAndCopies(t *testing.T) {
	nodes, edges := triangle()
	s := core.MustSnapshot(nodes, edges)

	assert.Equal(t, []string{"A", "B", "C"}, s.NodeIDs())
	assert.Equal(t, 3, s.Len())

	// Mutating the input or the returned slices must not leak into s.
	nodes[0].Label = "changed"
	got := s.Nodes()
	got[1].Label = "changed"
	n, ok := s.Node("A")
	require.True(t, ok)
	assert.Equal(t, "a", n.Label)
	n, _ = s.Node("B")
	assert.Equal(t, "b", n.Label)
}

func TestSnapshot_LabelFallsBackToID(t *testing.T) {
	nodes, edges := triangle()
	s := core.MustSnapshot(nodes, edges)

	assert.Equal(t, "a", s.Label("A"))
	assert.Equal(t, "C", s.Label("C"))
	assert.Equal(t, "zz", s.Label("zz"))
}

func TestSnapshot_EdgeBetweenIsUndirected(t *testing.T) {
	nodes, edges := triangle()
	s := core.MustSnapshot(nodes, edges)

	e, ok := s.EdgeBetween("C", "B")
	require.True(t, ok)
	assert.Equal(t, "e2", e.ID)

	_, ok = s.EdgeBetween("A", "Z")
	assert.False(t, ok)
}

func TestSnapshot_Fingerprint(t *testing.T) {
	nodes, edges := triangle()
	a := core.MustSnapshot(nodes, edges)
	b := core.MustSnapshot(nodes, edges)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Len(t, a.Fingerprint(), 64)

	edges[2].Weight = 11
	c := core.MustSnapshot(nodes, edges)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())

	// Order is part of identity: it drives the tie-break.
	swapped := []core.Node{nodes[1], nodes[0], nodes[2]}
	d := core.MustSnapshot(swapped, edges)
	assert.NotEqual(t, c.Fingerprint(), d.Fingerprint())
}

func TestEdge_OtherAndConnects(t *testing.T) {
	e := core.Edge{ID: "e", From: "A", To: "B"}
	assert.Equal(t, "B", e.Other("A"))
	assert.Equal(t, "A", e.Other("B"))
	assert.True(t, e.Connects("B", "A"))
	assert.False(t, e.Connects("A", "A"))

	loop := core.Edge{ID: "l", From: "A", To: "A"}
	assert.Equal(t, "A", loop.Other("A"))
}
