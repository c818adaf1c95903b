// Package graphfile reads and writes graph documents of the shape
//
//	{nodes: [{id, label}], edges: [{id, from, to, weight}]}
//
// as JSON or YAML, and watches such a file for edits.
//
// The document is the persistence contract of the authoring side: a step log
// stays valid across a save/load round trip only if node and edge order, IDs
// and weights survive it, so Encode writes exactly what the snapshot holds.
package graphfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathtrace/core"
)

// ErrUnknownFormat indicates a file extension or format name that is
// neither JSON nor YAML.
var ErrUnknownFormat = errors.New("graphfile: unknown format")

// Format names a document encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// document is the on-disk shape.
type document struct {
	Nodes []core.Node `json:"nodes" yaml:"nodes"`
	Edges []core.Edge `json:"edges" yaml:"edges"`
}

// FormatOf picks the format from the file extension (.json, .yaml, .yml).
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads the graph document at path.
func Load(path string) (*core.Snapshot, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	s, err := Decode(r, f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return s, nil
}

// Save writes s to path in the format implied by its extension.
func Save(path string, s *core.Snapshot) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Encode(w, f, s); err != nil {
		_ = w.Close()

		return fmt.Errorf("save %s: %w", path, err)
	}

	return w.Close()
}

// Decode parses a document. Edges without an ID get "e<index>", where index
// is the edge's position in the document, suffixed when an explicit ID
// already uses that name.
func Decode(r io.Reader, f Format) (*core.Snapshot, error) {
	var doc document
	switch f {
	case JSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	fillEdgeIDs(doc.Edges)

	return core.NewSnapshot(doc.Nodes, doc.Edges)
}

// fillEdgeIDs names every edge without an ID "e<index>". When that name is
// already taken, explicitly or by an earlier fill, "_2", "_3", ... is
// appended until it is free.
func fillEdgeIDs(edges []core.Edge) {
	taken := make(map[string]bool, len(edges))
	for _, e := range edges {
		if e.ID != "" {
			taken[e.ID] = true
		}
	}

	for i := range edges {
		if edges[i].ID != "" {
			continue
		}
		base := "e" + strconv.Itoa(i)
		id := base
		for n := 2; taken[id]; n++ {
			id = base + "_" + strconv.Itoa(n)
		}
		taken[id] = true
		edges[i].ID = id
	}
}

// Encode writes s as a document.
func Encode(w io.Writer, f Format, s *core.Snapshot) error {
	if s == nil {
		return core.ErrNilSnapshot
	}
	doc := document{Nodes: s.Nodes(), Edges: s.Edges()}

	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(doc)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
