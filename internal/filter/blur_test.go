package filter

import (
	"image"
	"testing"
)

// solidSquare returns a mask with an opaque w x h region at (x, y).
func solidSquare(size, x, y, w, h int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, size, size))
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			m.Pix[yy*m.Stride+xx] = 255
		}
	}
	return m
}

func TestBlur_ZeroRadiusCopies(t *testing.T) {
	src := solidSquare(16, 4, 4, 8, 8)
	dst := Blur(src, 0)

	if dst == src {
		t.Fatal("Blur(0) returned the source mask, want a copy")
	}
	for i := range src.Pix {
		if dst.Pix[i] != src.Pix[i] {
			t.Fatalf("Blur(0) changed pixel %d: %d -> %d", i, src.Pix[i], dst.Pix[i])
		}
	}
}

func TestBlur_SpreadsCoverage(t *testing.T) {
	src := solidSquare(32, 12, 12, 8, 8)
	dst := Blur(src, 2)

	// The square's center stays essentially opaque.
	if a := dst.Pix[16*dst.Stride+16]; a < 200 {
		t.Errorf("center alpha after blur = %d, want near-opaque", a)
	}
	// Just outside the square, coverage has bled outward.
	if a := dst.Pix[16*dst.Stride+21]; a == 0 {
		t.Error("no coverage just outside the square after blur")
	}
	// Far away stays empty.
	if a := dst.Pix[2*dst.Stride+2]; a != 0 {
		t.Errorf("far corner alpha = %d, want 0", a)
	}
}

func TestBlur_EdgeFalloffMonotonic(t *testing.T) {
	src := solidSquare(32, 12, 12, 8, 8)
	dst := Blur(src, 2)

	// Walking right from the square's center, alpha never increases.
	prev := int(dst.Pix[16*dst.Stride+16])
	for x := 17; x < 30; x++ {
		cur := int(dst.Pix[16*dst.Stride+x])
		if cur > prev {
			t.Fatalf("alpha increased from %d to %d at x=%d", prev, cur, x)
		}
		prev = cur
	}
}

func TestBlur_UniformMaskStaysUniform(t *testing.T) {
	// Edge clamping means a fully opaque mask blurs to itself.
	src := solidSquare(16, 0, 0, 16, 16)
	dst := Blur(src, 3)
	for i, a := range dst.Pix {
		if a != 255 {
			t.Fatalf("uniform mask lost opacity at %d: %d", i, a)
		}
	}
}
