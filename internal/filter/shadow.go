package filter

import (
	"image"
	"image/color"
)

// ShadowStyle describes a sprite drop shadow.
type ShadowStyle struct {
	// OffsetX and OffsetY shift the shadow relative to the piece, in pixels.
	OffsetX int
	OffsetY int

	// Radius is the Gaussian blur radius applied to the silhouette.
	Radius float64

	// Color is the shadow color; its alpha scales the blurred silhouette.
	Color color.NRGBA
}

// DefaultShadow is a soft black shadow nudged down-right, the look the
// shipped puzzle sprites use.
var DefaultShadow = ShadowStyle{
	OffsetX: 2,
	OffsetY: 3,
	Radius:  3,
	Color:   color.NRGBA{A: 128},
}

// Drop renders a drop shadow for a piece silhouette. The algorithm:
//
//  1. Blur the alpha mask.
//  2. Offset the blurred silhouette by (OffsetX, OffsetY).
//  3. Colorize it with the shadow color, scaling alpha.
//
// The result has the same dimensions as the mask and is meant to be drawn
// under the masked sprite. The mask canvas must already include enough bleed
// for the blur and offset to land inside it.
func Drop(mask *image.Alpha, style ShadowStyle) *image.NRGBA {
	b := mask.Bounds()
	out := image.NewNRGBA(b)

	blurred := Blur(mask, style.Radius)

	width := b.Dx()
	height := b.Dy()
	colorA := uint32(style.Color.A)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sx := x - style.OffsetX
			sy := y - style.OffsetY
			if sx < 0 || sx >= width || sy < 0 || sy >= height {
				continue
			}
			a := uint32(blurred.Pix[sy*blurred.Stride+sx])
			if a == 0 {
				continue
			}
			i := y*out.Stride + x*4
			out.Pix[i+0] = style.Color.R
			out.Pix[i+1] = style.Color.G
			out.Pix[i+2] = style.Color.B
			out.Pix[i+3] = uint8(a * colorA / 255)
		}
	}

	return out
}
