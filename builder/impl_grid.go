// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Node IDs are "r,c" (row-major), independent of cfg.idFn; labels still
//     come from cfg.labelFn when set, indexed row-major.
//   - For each cell in row-major order: right neighbour first, then the one below.
//
// Complexity: O(R*C) nodes + O(2*R*C) edges.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/pathtrace/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a 4-neighbourhood rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		cell := func(i int) string { return gridNodeID(i/cols, i%cols) }
		grid := cfg
		grid.idFn = cell
		if _, err := addNodes(methodGrid, g, grid, rows*cols); err != nil {
			return err
		}

		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u := gridNodeID(r, c)
				if c+1 < cols {
					if err := connect(methodGrid, g, cfg, u, gridNodeID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(methodGrid, g, cfg, u, gridNodeID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// gridNodeID formats a coordinate as "r,c".
func gridNodeID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
