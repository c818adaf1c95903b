// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Topology factories live in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/pathtrace/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Edge IDs default to "e0","e1",… so fixtures are reproducible; a
// core.WithIDGenerator in gopts overrides that.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	// Sequential edge IDs first so caller options win.
	opts := make([]core.GraphOption, 0, len(gopts)+1)
	opts = append(opts, core.WithIDGenerator(sequentialIDs(edgeIDPrefix)))
	opts = append(opts, gopts...)
	g := core.NewGraph(opts...)

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// BuildSnapshot is BuildGraph followed by Graph.Snapshot, for callers that
// only need the immutable view.
func BuildSnapshot(bopts []BuilderOption, cons ...Constructor) (*core.Snapshot, error) {
	g, err := BuildGraph(nil, bopts, cons...)
	if err != nil {
		return nil, err
	}

	return g.Snapshot(), nil
}

// sequentialIDs returns a generator yielding prefix0, prefix1, …
// The counter is owned by a single Graph, whose lock serialises calls.
func sequentialIDs(prefix string) func() string {
	next := 0

	return func() string {
		id := prefix + strconv.Itoa(next)
		next++

		return id
	}
}
