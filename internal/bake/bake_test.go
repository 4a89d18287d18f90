package bake

import (
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/jigsaw"
)

// writeTestImage writes a small gradient PNG and returns its path.
func writeTestImage(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{
				R: uint8(x * 255 / width),
				G: uint8(y * 255 / height),
				B: 128,
				A: 255,
			})
		}
	}

	path := filepath.Join(t.TempDir(), "source.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	return img
}

func TestBake(t *testing.T) {
	srcPath := writeTestImage(t, 120, 90)
	outDir := t.TempDir()

	res, err := Bake(Options{
		ImagePath: srcPath,
		OutputDir: outDir,
		Rows:      2,
		Cols:      3,
		Seed:      1,
	})
	if err != nil {
		t.Fatalf("Bake() error: %v", err)
	}

	if res.PieceSize != 40 { // 120 / 3 columns
		t.Errorf("PieceSize = %d, want 40", res.PieceSize)
	}
	if len(res.Pieces) != 6 {
		t.Fatalf("got %d pieces, want 6", len(res.Pieces))
	}

	// Background is pre-stretched to the grid's aspect ratio.
	bg := decodePNG(t, filepath.Join(outDir, res.Background))
	if bg.Bounds().Dx() != 120 || bg.Bounds().Dy() != 80 {
		t.Errorf("background = %v, want 120x80", bg.Bounds())
	}

	// Every sprite exists, is square, and includes the bleed margin.
	wantCanvas := res.PieceSize + 2*res.Bleed
	for _, pa := range res.Pieces {
		sprite := decodePNG(t, filepath.Join(outDir, pa.File))
		if sprite.Bounds().Dx() != wantCanvas || sprite.Bounds().Dy() != wantCanvas {
			t.Errorf("sprite %s = %v, want %dx%d", pa.File, sprite.Bounds(), wantCanvas, wantCanvas)
		}
		// The piece body carries image pixels.
		center := res.Bleed + res.PieceSize/2
		if _, _, _, a := sprite.At(center, center).RGBA(); a == 0 {
			t.Errorf("sprite %s is transparent at its center", pa.File)
		}
		// The canvas corner stays transparent (no tab or shadow reaches it).
		if _, _, _, a := sprite.At(0, 0).RGBA(); a != 0 {
			t.Errorf("sprite %s has coverage at the canvas corner", pa.File)
		}
	}
}

func TestBake_Metadata(t *testing.T) {
	srcPath := writeTestImage(t, 120, 90)
	outDir := t.TempDir()

	res, err := Bake(Options{
		ImagePath: srcPath,
		OutputDir: outDir,
		Rows:      2,
		Cols:      3,
		Seed:      5,
	})
	if err != nil {
		t.Fatalf("Bake() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, res.Metadata))
	if err != nil {
		t.Fatal(err)
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatalf("metadata does not parse: %v", err)
	}

	if meta.Rows != 2 || meta.Cols != 3 {
		t.Errorf("metadata grid = %dx%d, want 2x3", meta.Rows, meta.Cols)
	}
	if meta.PieceSize != res.PieceSize || meta.Bleed != res.Bleed {
		t.Errorf("metadata sizes = %d/%d, want %d/%d",
			meta.PieceSize, meta.Bleed, res.PieceSize, res.Bleed)
	}
	if meta.Aspect != 1.5 {
		t.Errorf("metadata aspect = %v, want 1.5", meta.Aspect)
	}
	if meta.Background != "background.png" {
		t.Errorf("metadata background = %q", meta.Background)
	}
	if len(meta.Pieces) != 6 {
		t.Fatalf("metadata lists %d pieces, want 6", len(meta.Pieces))
	}
	// Row-major ids.
	if meta.Pieces[0].ID != "0-0" || meta.Pieces[5].ID != "1-2" {
		t.Errorf("metadata piece order: first %q last %q", meta.Pieces[0].ID, meta.Pieces[5].ID)
	}
}

func TestBake_AssetModule(t *testing.T) {
	srcPath := writeTestImage(t, 60, 60)
	outDir := t.TempDir()

	res, err := Bake(Options{
		ImagePath: srcPath,
		OutputDir: outDir,
		Rows:      2,
		Cols:      2,
		Seed:      3,
		Package:   "kitten",
	})
	if err != nil {
		t.Fatalf("Bake() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, res.Assets))
	if err != nil {
		t.Fatal(err)
	}
	src := string(data)

	for _, want := range []string{
		"// Code generated by jigsaw-bake. DO NOT EDIT.",
		"package kitten",
		"//go:embed background.png puzzle.json piece_*.png",
		"var FS embed.FS",
		`"0-0": "piece_0-0.png",`,
		`"1-1": "piece_1-1.png",`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated asset module missing %q", want)
		}
	}
}

func TestBake_SharedCoreConsistency(t *testing.T) {
	// Baking twice with the same seed must produce byte-identical sprites,
	// so shipped assets can be reproduced from the seed alone.
	srcPath := writeTestImage(t, 90, 90)

	dirA, dirB := t.TempDir(), t.TempDir()
	opts := Options{ImagePath: srcPath, Rows: 3, Cols: 3, Seed: 77}

	opts.OutputDir = dirA
	if _, err := Bake(opts); err != nil {
		t.Fatal(err)
	}
	opts.OutputDir = dirB
	resB, err := Bake(opts)
	if err != nil {
		t.Fatal(err)
	}

	for _, pa := range resB.Pieces {
		a, err := os.ReadFile(filepath.Join(dirA, pa.File))
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(filepath.Join(dirB, pa.File))
		if err != nil {
			t.Fatal(err)
		}
		if string(a) != string(b) {
			t.Errorf("sprite %s differs across identically seeded bakes", pa.File)
		}
	}
}

func TestBake_InvalidOptions(t *testing.T) {
	srcPath := writeTestImage(t, 30, 30)

	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"zero grid", Options{ImagePath: srcPath, OutputDir: "out", Rows: 0, Cols: 3}, jigsaw.ErrInvalidGrid},
		{"no image", Options{OutputDir: "out", Rows: 2, Cols: 2}, jigsaw.ErrInvalidImage},
		{"too many columns", Options{ImagePath: srcPath, OutputDir: "out", Rows: 1, Cols: 64}, jigsaw.ErrInvalidImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.OutputDir = t.TempDir()
			_, err := Bake(tt.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("Bake() error = %v, want %v", err, tt.want)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Bake(Options{
			ImagePath: filepath.Join(t.TempDir(), "nope.png"),
			OutputDir: t.TempDir(),
			Rows:      2, Cols: 2,
		})
		if err == nil {
			t.Error("Bake() accepted a missing source image")
		}
	})
}
