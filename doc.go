// Package jigsaw computes interlocking jigsaw-puzzle shapes and assembles
// puzzle instances from a source image.
//
// # Overview
//
// The core is a deterministic shape generator: a grid of edge signatures in
// which adjacent pieces always carry complementary tab types, rendered into
// closed vector outlines of lines and cubic curves. The same core serves two
// consumers: the interactive generator (Generate, producing a PuzzleData for
// a layout/render layer) and the offline sprite baker (cmd/jigsaw-bake),
// which cuts a source image into per-piece transparent sprites.
//
// # Quick Start
//
//	cfg := jigsaw.Config{
//		Grid:         jigsaw.GridSize{Rows: 3, Cols: 4},
//		Image:        jigsaw.ImageRef{URI: "kitten.png", Width: 1024, Height: 768},
//		ScreenWidth:  400,
//		ScreenHeight: 800,
//		BoardMargin:  16,
//	}
//	data, err := jigsaw.Generate(cfg)
//
// Each Piece carries its outline path, source-image crop origin and initial
// scatter position; Slots carry the row-major board targets.
//
// # Determinism
//
// All randomness (interior edge choices, tab jitter, scatter, shuffle) flows
// through an injected *rand.Rand; seed it via WithRand for reproducible
// puzzles. The edge-choice policy is pluggable, see EdgePolicy.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Piece outlines are local to the piece (top-left corner at origin); board
// space and source-image space use independent piece sizes and are mapped
// with Matrix scale/translate transforms.
package jigsaw

// Version is the current version of the library.
const Version = "0.1.0"
