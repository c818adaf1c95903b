// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices): the rim must be a cycle of at least 3.
//   - Node idFn(0) is the hub; idFn(1..n-1) form the rim.
//   - Emits the rim ring first, then hub—rim spokes in ascending order.
//
// Complexity: O(n) nodes + O(2n-2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		ids, err := addNodes(methodWheel, g, cfg, n)
		if err != nil {
			return err
		}
		if err = ring(methodWheel, g, cfg, ids[1:]); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(methodWheel, g, cfg, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
