package jigsaw

import "math/rand"

// EdgePolicy chooses the type of a cell's free edge during grid generation.
// It is called only for interior edges, so it must return EdgeIn or EdgeOut,
// never EdgeFlat. The rng argument is the generator's injected random source;
// deterministic policies may ignore it.
type EdgePolicy func(rng *rand.Rand, row, col int, side Side) EdgeType

// RandomEdges chooses every free edge uniformly at random.
// This is the default policy for Generate.
func RandomEdges(rng *rand.Rand, row, col int, side Side) EdgeType {
	if rng.Intn(2) == 0 {
		return EdgeIn
	}
	return EdgeOut
}

// CheckerEdges alternates tabs by cell parity, producing a checkerboard of
// protruding and recessed edges.
func CheckerEdges(rng *rand.Rand, row, col int, side Side) EdgeType {
	if (row+col)%2 == 0 {
		return EdgeOut
	}
	return EdgeIn
}

// StripeEdges alternates right edges by column and bottom edges by row,
// producing column and row stripes of identical tabs.
func StripeEdges(rng *rand.Rand, row, col int, side Side) EdgeType {
	switch side {
	case SideRight:
		if col%2 == 0 {
			return EdgeOut
		}
	default:
		if row%2 == 0 {
			return EdgeOut
		}
	}
	return EdgeIn
}

// PickPattern draws one of the named edge patterns with a single draw from
// rng. The offline baker uses this so that each baked puzzle commits to one
// interlocking style, while the interactive generator keeps per-edge
// randomness via RandomEdges.
func PickPattern(rng *rand.Rand) EdgePolicy {
	switch rng.Intn(3) {
	case 0:
		return RandomEdges
	case 1:
		return CheckerEdges
	default:
		return StripeEdges
	}
}
