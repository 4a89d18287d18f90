// Package bake implements the offline asset baker: it cuts a source image
// into per-piece transparent sprites with drop shadows, using the same
// signature grid and outline core as the interactive generator. Factoring
// both call sites over one shape module is what keeps baked sprites and
// live-cut pieces interlocking identically.
package bake

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/draw"

	_ "image/jpeg" // source images may be JPEG

	"github.com/gogpu/jigsaw"
	"github.com/gogpu/jigsaw/internal/filter"
	"github.com/gogpu/jigsaw/internal/raster"
)

// Options configures one baking run.
type Options struct {
	// ImagePath is the source image file (PNG or JPEG).
	ImagePath string

	// OutputDir receives the baked assets. Created if missing.
	OutputDir string

	// Rows and Cols are the puzzle grid dimensions.
	Rows, Cols int

	// Seed seeds the random source; zero means time-based.
	Seed int64

	// Policy chooses interior edge types. Nil draws one of the named
	// patterns per puzzle via jigsaw.PickPattern.
	Policy jigsaw.EdgePolicy

	// Notch is the tab geometry, including the baker's height jitter.
	// Zero fields fall back to jigsaw.DefaultNotch.
	Notch jigsaw.NotchStyle

	// Shadow styles the sprite drop shadow. The zero value selects
	// filter.DefaultShadow.
	Shadow filter.ShadowStyle

	// Package names the generated asset module. Default "pieces".
	Package string
}

// PieceAsset maps one piece id to its sprite file.
type PieceAsset struct {
	ID   string `json:"id"`
	File string `json:"file"`
}

// Result describes a completed baking run.
type Result struct {
	Dir        string
	Background string
	Metadata   string
	Assets     string
	Pieces     []PieceAsset

	// PieceSize is the in-image piece size; Bleed is the sprite canvas
	// margin around it (tab protrusion plus shadow spread).
	PieceSize int
	Bleed     int

	Rows, Cols int
}

// Bake runs the full pipeline: stretch the source to the grid's aspect
// ratio, cut one masked and shadowed sprite per piece, and write the
// background image, metadata file and generated asset module.
func Bake(opts Options) (*Result, error) {
	if err := validate(&opts); err != nil {
		return nil, err
	}

	src, err := loadImage(opts.ImagePath)
	if err != nil {
		return nil, err
	}

	pieceSize := src.Bounds().Dx() / opts.Cols
	if pieceSize < 1 {
		return nil, fmt.Errorf("%w: image width %d narrower than %d columns",
			jigsaw.ErrInvalidImage, src.Bounds().Dx(), opts.Cols)
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("bake: creating output dir: %w", err)
	}

	// Pre-stretch the source so the grid tiles it exactly. The background
	// ships alongside the sprites as the board backdrop.
	width := pieceSize * opts.Cols
	height := pieceSize * opts.Rows
	stretched := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(stretched, stretched.Bounds(), src, src.Bounds(), draw.Src, nil)

	const backgroundFile = "background.png"
	if err := savePNG(filepath.Join(opts.OutputDir, backgroundFile), stretched); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	policy := opts.Policy
	if policy == nil {
		policy = jigsaw.PickPattern(rng)
	}

	grid, err := jigsaw.BuildSignatureGrid(opts.Rows, opts.Cols, policy, rng)
	if err != nil {
		return nil, err
	}

	shadow := opts.Shadow
	if shadow == (filter.ShadowStyle{}) {
		shadow = filter.DefaultShadow
	}

	bleed := spriteBleed(pieceSize, opts.Notch, shadow)
	canvas := pieceSize + 2*bleed

	log := jigsaw.Logger()
	log.Debug("baking puzzle",
		"image", opts.ImagePath, "rows", opts.Rows, "cols", opts.Cols,
		"pieceSize", pieceSize, "bleed", bleed, "seed", seed)

	pieces := make([]PieceAsset, 0, opts.Rows*opts.Cols)
	for r := 0; r < opts.Rows; r++ {
		for c := 0; c < opts.Cols; c++ {
			outline := jigsaw.BuildOutline(grid[r][c], float64(pieceSize), opts.Notch, rng).
				Transform(jigsaw.Translate(float64(bleed), float64(bleed)))
			mask := raster.Mask(outline, canvas, canvas)

			sprite := image.NewNRGBA(image.Rect(0, 0, canvas, canvas))
			draw.Draw(sprite, sprite.Bounds(), filter.Drop(mask, shadow), image.Point{}, draw.Over)
			draw.DrawMask(sprite, sprite.Bounds(),
				stretched, image.Pt(c*pieceSize-bleed, r*pieceSize-bleed),
				mask, image.Point{}, draw.Over)

			id := fmt.Sprintf("%d-%d", r, c)
			file := fmt.Sprintf("piece_%s.png", id)
			if err := savePNG(filepath.Join(opts.OutputDir, file), sprite); err != nil {
				return nil, err
			}
			pieces = append(pieces, PieceAsset{ID: id, File: file})
			log.Debug("sprite written", "id", id, "file", file)
		}
	}

	res := &Result{
		Dir:        opts.OutputDir,
		Background: backgroundFile,
		Pieces:     pieces,
		PieceSize:  pieceSize,
		Bleed:      bleed,
		Rows:       opts.Rows,
		Cols:       opts.Cols,
	}

	if res.Metadata, err = writeMetadata(opts.OutputDir, res); err != nil {
		return nil, err
	}
	if res.Assets, err = writeAssets(opts.OutputDir, opts.Package, res); err != nil {
		return nil, err
	}

	return res, nil
}

// validate rejects unusable options and fills defaults.
func validate(opts *Options) error {
	if opts.Rows < 1 || opts.Cols < 1 {
		return fmt.Errorf("%w: %dx%d", jigsaw.ErrInvalidGrid, opts.Rows, opts.Cols)
	}
	if opts.ImagePath == "" {
		return fmt.Errorf("%w: empty image path", jigsaw.ErrInvalidImage)
	}
	if opts.OutputDir == "" {
		return fmt.Errorf("bake: output directory must be set")
	}
	if opts.Package == "" {
		opts.Package = "pieces"
	}
	return nil
}

// spriteBleed computes the canvas margin around the nominal piece square:
// the largest possible tab protrusion (height including jitter headroom)
// plus the shadow's blur spread and offset.
func spriteBleed(pieceSize int, notch jigsaw.NotchStyle, shadow filter.ShadowStyle) int {
	h := notch.Height
	if h <= 0 {
		h = jigsaw.DefaultNotch.Height
	}
	tab := math.Ceil(float64(pieceSize) * h * (1 + notch.Jitter))

	off := shadow.OffsetX
	if shadow.OffsetY > off {
		off = shadow.OffsetY
	}
	if off < 0 {
		off = -off
	}
	spread := math.Ceil(shadow.Radius*3) + float64(off)

	return int(tab + spread)
}

// loadImage decodes a PNG or JPEG source image.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bake: opening source image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("bake: decoding %s: %w", path, err)
	}
	return img, nil
}

// savePNG writes an image to a PNG file.
func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bake: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("bake: encoding %s: %w", path, err)
	}
	return nil
}
