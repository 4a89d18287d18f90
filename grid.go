package jigsaw

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidGrid reports grid dimensions that cannot produce a puzzle.
var ErrInvalidGrid = errors.New("jigsaw: grid dimensions must be at least 1x1")

// BuildSignatureGrid produces one EdgeSignature per cell of a rows x cols
// grid, in row-major order. The result satisfies the interlocking invariants:
//
//   - every boundary edge is EdgeFlat;
//   - horizontally adjacent cells carry complementary right/left types;
//   - vertically adjacent cells carry complementary bottom/top types.
//
// Each cell's top and left edges are mirrored from the already-generated
// neighbors above and to the left, so consistency holds by construction and
// no validation pass is needed. Free edges (interior right and bottom) are
// chosen by policy; a nil policy defaults to RandomEdges. A nil rng gets a
// fresh unseeded source, which makes the output non-deterministic.
func BuildSignatureGrid(rows, cols int, policy EdgePolicy, rng *rand.Rand) ([][]EdgeSignature, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, rows, cols)
	}
	if policy == nil {
		policy = RandomEdges
	}
	if rng == nil {
		rng = newRand()
	}

	grid := make([][]EdgeSignature, rows)
	for r := range grid {
		grid[r] = make([]EdgeSignature, cols)
		for c := range grid[r] {
			var sig EdgeSignature

			if r > 0 {
				sig.Top = grid[r-1][c].Bottom.Complement()
			}
			if c > 0 {
				sig.Left = grid[r][c-1].Right.Complement()
			}
			if c < cols-1 {
				sig.Right = policy(rng, r, c, SideRight)
			}
			if r < rows-1 {
				sig.Bottom = policy(rng, r, c, SideBottom)
			}

			grid[r][c] = sig
		}
	}

	Logger().Debug("signature grid built", "rows", rows, "cols", cols)
	return grid, nil
}
