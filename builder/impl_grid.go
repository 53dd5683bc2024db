package builder

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/netcheck/network"
)

const minGridDim = 1

// Grid returns a Constructor for a rows×cols street grid.
//
// Nodes are emitted row-major. For each cell the link to the right
// neighbour comes before the link to the bottom neighbour.
//
// Complexity: O(rows·cols) nodes and links.
func Grid(rows, cols int) Constructor {
	return func(s *network.Supply, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return errors.Wrapf(ErrTooFewNodes, "Grid: rows=%d, cols=%d (each must be >= %d)", rows, cols, minGridDim)
		}
		e := newEmitter(s, cfg)
		ids := make([]int64, rows*cols)
		for i := range ids {
			ids[i] = e.node()
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					e.link(u, ids[r*cols+c+1])
				}
				if r+1 < rows {
					e.link(u, ids[(r+1)*cols+c])
				}
			}
		}

		return nil
	}
}
