// Package builder helpers shared by the impl_*.go constructors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/core"
)

// addNodes inserts nodes idFn(0..n-1) in ascending index order and returns
// their IDs.
//
// Complexity: O(n) plus the Graph's per-mutation history cost.
func addNodes(method string, g *core.Graph, cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	var (
		i   int
		err error
	)
	for i = 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err = g.AddNodeWithID(ids[i], cfg.label(i, ids[i])); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w: %w", method, ids[i], ErrConstructFailed, err)
		}
	}

	return ids, nil
}

// connect adds the undirected edge u—v with the next configured weight.
func connect(method string, g *core.Graph, cfg builderConfig, u, v string) error {
	w := cfg.weight()
	if _, err := g.Connect(u, v, w); err != nil {
		return fmt.Errorf("%s: Connect(%s—%s, w=%g): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
