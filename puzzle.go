package jigsaw

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidImage reports a source image reference that cannot be cut into
// pieces: empty URI or non-positive pixel dimensions.
var ErrInvalidImage = errors.New("jigsaw: invalid source image reference")

// ErrViewportTooSmall reports a viewport that cannot hold the board at the
// requested grid size and margin.
var ErrViewportTooSmall = errors.New("jigsaw: viewport too small for board")

// ImageRef identifies the source image a puzzle is cut from.
type ImageRef struct {
	// URI is an opaque reference to the image, resolved by the consumer.
	URI string

	// Width and Height are the image's native pixel dimensions.
	Width  int
	Height int
}

// GridSize is the puzzle's piece grid dimensions.
type GridSize struct {
	Rows int
	Cols int
}

// Config is the input to Generate.
type Config struct {
	Grid  GridSize
	Image ImageRef

	// ScreenWidth and ScreenHeight are the viewport pixel dimensions the
	// puzzle is laid out in.
	ScreenWidth  float64
	ScreenHeight float64

	// BoardMargin is the margin around the board, in viewport pixels.
	BoardMargin float64
}

// Piece is one puzzle piece. Pieces are immutable once generated.
type Piece struct {
	// ID is derived from the piece's grid cell as "<row>-<col>".
	ID string

	Row, Col  int
	Signature EdgeSignature

	// Outline is the piece's closed contour at on-screen piece size, with
	// the piece's own top-left corner at (0,0).
	Outline *Path

	// SourceOrigin is the top-left corner of the piece's crop in the
	// source image's pixel space.
	SourceOrigin Point

	// Scatter is the piece's initial on-screen position in the spawn
	// region below the board.
	Scatter Point
}

// Slot is the board location a piece must reach, in board-local coordinates.
type Slot struct {
	ID     string
	Target Point
}

// PuzzleData is one generated puzzle instance. Pieces are shuffled; Slots
// stay in row-major grid order, which is what makes the tray presentation
// order differ from the solved-board order.
type PuzzleData struct {
	Pieces []Piece
	Slots  []Slot

	// BoardWidth and BoardHeight are the board pixel dimensions.
	BoardWidth  float64
	BoardHeight float64

	// PieceSize is the on-screen piece size; SourcePieceSize is the piece
	// size in the source image's own pixel space. The two scales are
	// independent and never mixed.
	PieceSize       float64
	SourcePieceSize float64

	// Image echoes the source image reference from the Config.
	Image ImageRef
}

// Generate assembles a complete puzzle from cfg: an interlocking signature
// grid, one outlined piece per cell, row-major slots and a shuffled piece
// list with random scatter positions.
//
// Generate is pure apart from its random draws and holds no state between
// calls; concurrent calls are safe as long as they do not share an injected
// random source.
//
// Invalid configuration is rejected: ErrInvalidGrid for non-positive grid
// dimensions, ErrInvalidImage for a missing or degenerate image reference,
// ErrViewportTooSmall when the viewport cannot hold the board at one piece
// per column. A viewport that holds the board but leaves no room for a
// spawn band below it is degenerate but valid: the scatter range clamps to
// zero and every piece starts at the spawn region origin.
func Generate(cfg Config, opts ...Option) (*PuzzleData, error) {
	o := defaultGenOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = newRand()
	}

	rows, cols := cfg.Grid.Rows, cfg.Grid.Cols
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, rows, cols)
	}
	if cfg.Image.URI == "" || cfg.Image.Width < 1 || cfg.Image.Height < 1 {
		return nil, fmt.Errorf("%w: uri=%q size=%dx%d",
			ErrInvalidImage, cfg.Image.URI, cfg.Image.Width, cfg.Image.Height)
	}
	if cfg.BoardMargin < 0 {
		return nil, fmt.Errorf("jigsaw: board margin must be non-negative, got %v", cfg.BoardMargin)
	}

	pieceSize := math.Floor((cfg.ScreenWidth - 2*cfg.BoardMargin) / float64(cols))
	if pieceSize < 1 {
		return nil, fmt.Errorf("%w: width %v, margin %v, %d columns",
			ErrViewportTooSmall, cfg.ScreenWidth, cfg.BoardMargin, cols)
	}

	srcPieceSize := math.Floor(float64(cfg.Image.Width) / float64(cols))
	if srcPieceSize < 1 {
		return nil, fmt.Errorf("%w: image width %d narrower than %d columns",
			ErrInvalidImage, cfg.Image.Width, cols)
	}

	boardW := pieceSize * float64(cols)
	boardH := pieceSize * float64(rows)
	if cfg.BoardMargin+boardH > cfg.ScreenHeight {
		return nil, fmt.Errorf("%w: board height %v exceeds viewport height %v",
			ErrViewportTooSmall, cfg.BoardMargin+boardH, cfg.ScreenHeight)
	}

	grid, err := BuildSignatureGrid(rows, cols, o.policy, o.rng)
	if err != nil {
		return nil, err
	}

	// Spawn band below the board. Degenerate ranges clamp to zero.
	spawnTop := cfg.BoardMargin + boardH
	scatterX := cfg.ScreenWidth - pieceSize
	scatterY := cfg.ScreenHeight - spawnTop - pieceSize
	if scatterX < 0 {
		scatterX = 0
	}
	if scatterY < 0 {
		scatterY = 0
		Logger().Warn("scatter range degenerate, pieces spawn at band origin",
			"spawnTop", spawnTop, "screenHeight", cfg.ScreenHeight)
	}

	pieces := make([]Piece, 0, rows*cols)
	slots := make([]Slot, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := pieceID(r, c)
			pieces = append(pieces, Piece{
				ID:           id,
				Row:          r,
				Col:          c,
				Signature:    grid[r][c],
				Outline:      BuildOutline(grid[r][c], pieceSize, o.notch, o.rng),
				SourceOrigin: Pt(float64(c)*srcPieceSize, float64(r)*srcPieceSize),
				Scatter: Pt(
					o.rng.Float64()*scatterX,
					spawnTop+o.rng.Float64()*scatterY,
				),
			})
			slots = append(slots, Slot{
				ID:     id,
				Target: Pt(float64(c)*pieceSize, float64(r)*pieceSize),
			})
		}
	}

	o.rng.Shuffle(len(pieces), func(i, j int) {
		pieces[i], pieces[j] = pieces[j], pieces[i]
	})

	Logger().Debug("puzzle generated",
		"rows", rows, "cols", cols,
		"pieceSize", pieceSize, "sourcePieceSize", srcPieceSize)

	return &PuzzleData{
		Pieces:          pieces,
		Slots:           slots,
		BoardWidth:      boardW,
		BoardHeight:     boardH,
		PieceSize:       pieceSize,
		SourcePieceSize: srcPieceSize,
		Image:           cfg.Image,
	}, nil
}

// pieceID derives the stable piece identity for a grid cell.
func pieceID(row, col int) string {
	return fmt.Sprintf("%d-%d", row, col)
}
