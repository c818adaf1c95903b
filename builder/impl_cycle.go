// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds nodes via cfg.idFn in ascending order, then edges i—(i+1)%n
//     for i=0..n-1, closing the ring last.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids, err := addNodes(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}

		return ring(methodCycle, g, cfg, ids)
	}
}

// ring connects ids[i]—ids[(i+1)%len] in order.
func ring(method string, g *core.Graph, cfg builderConfig, ids []string) error {
	n := len(ids)
	for i := 0; i < n; i++ {
		if err := connect(method, g, cfg, ids[i], ids[(i+1)%n]); err != nil {
			return err
		}
	}

	return nil
}
