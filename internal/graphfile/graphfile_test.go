package graphfile_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/internal/graphfile"
)

func sample() *core.Snapshot {
	return core.MustSnapshot(
		[]core.Node{{ID: "A", Label: "start"}, {ID: "B", Label: "mid"}, {ID: "C", Label: "end"}},
		[]core.Edge{
			{ID: "ab", From: "A", To: "B", Weight: 1.5},
			{ID: "bc", From: "B", To: "C", Weight: 2},
		},
	)
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]graphfile.Format{
		"g.json": graphfile.JSON,
		"g.YAML": graphfile.YAML,
		"g.yml":  graphfile.YAML,
	} {
		got, err := graphfile.FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := graphfile.FormatOf("g.toml")
	require.ErrorIs(t, err, graphfile.ErrUnknownFormat)
}

func TestSaveLoad_RoundTripKeepsFingerprint(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"g.json", "g.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			s := sample()
			require.NoError(t, graphfile.Save(path, s))

			got, err := graphfile.Load(path)
			require.NoError(t, err)
			assert.Equal(t, s.Fingerprint(), got.Fingerprint())
			assert.Equal(t, "mid", got.Label("B"))
		})
	}
}

func TestDecode_FillsMissingEdgeIDs(t *testing.T) {
	doc := `
nodes:
  - {id: A, label: A}
  - {id: B, label: B}
  - {id: C, label: C}
edges:
  - {id: keep, from: A, to: B, weight: 1}
  - {from: B, to: C, weight: 3}
`
	s, err := graphfile.Decode(strings.NewReader(doc), graphfile.YAML)
	require.NoError(t, err)

	edges := s.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "keep", edges[0].ID)
	assert.Equal(t, "e1", edges[1].ID)
	assert.Equal(t, 3.0, edges[1].Weight)
}

func TestDecode_GeneratedIDsAvoidExplicitOnes(t *testing.T) {
	doc := `
nodes: [{id: A}, {id: B}, {id: C}, {id: D}]
edges:
  - {id: e2, from: A, to: B, weight: 1}
  - {from: B, to: C, weight: 1}
  - {from: C, to: D, weight: 1}
  - {id: e1, from: A, to: D, weight: 1}
`
	s, err := graphfile.Decode(strings.NewReader(doc), graphfile.YAML)
	require.NoError(t, err)

	ids := make([]string, 0, 4)
	for _, e := range s.Edges() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"e2", "e1_2", "e2_2", "e1"}, ids)
}

func TestDecode_RejectsParallelEdges(t *testing.T) {
	doc := `{"nodes":[{"id":"A"},{"id":"B"}],"edges":[
		{"id":"ab","from":"A","to":"B","weight":1},
		{"id":"ba","from":"B","to":"A","weight":2}]}`
	_, err := graphfile.Decode(strings.NewReader(doc), graphfile.JSON)
	require.ErrorIs(t, err, core.ErrDuplicatePair)
}

func TestDecode_Errors(t *testing.T) {
	_, err := graphfile.Decode(strings.NewReader(`{"nodes": [`), graphfile.JSON)
	require.Error(t, err)

	_, err = graphfile.Decode(strings.NewReader(`{"nodes":[{"id":"A"},{"id":"A"}]}`), graphfile.JSON)
	require.ErrorIs(t, err, core.ErrDuplicateNode)

	_, err = graphfile.Decode(strings.NewReader(``), graphfile.Format("xml"))
	require.ErrorIs(t, err, graphfile.ErrUnknownFormat)

	empty, err := graphfile.Decode(strings.NewReader(``), graphfile.YAML)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())
}

func TestEncode_JSONShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphfile.Encode(&buf, graphfile.JSON, sample()))
	out := buf.String()
	assert.Contains(t, out, `"nodes"`)
	assert.Contains(t, out, `"from": "A"`)
	assert.Contains(t, out, `"weight": 1.5`)

	require.ErrorIs(t, graphfile.Encode(&buf, graphfile.JSON, nil), core.ErrNilSnapshot)
}

func TestWatch_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.json")
	require.NoError(t, graphfile.Save(path, sample()))

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan struct{}, 16)
	errc := make(chan error, 1)
	go func() {
		errc <- graphfile.Watch(ctx, path, 10*time.Millisecond, func() { changed <- struct{}{} })
	}()

	// Keep writing until the watcher is armed and reports one change.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte(`{"nodes":[],"edges":[]}`), 0o644)
		select {
		case <-changed:
			return true
		default:
			return false
		}
	}, 5*time.Second, 50*time.Millisecond)

	// Writes to sibling files are ignored.
	time.Sleep(100 * time.Millisecond)
	for len(changed) > 0 {
		<-changed
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, changed)

	cancel()
	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
