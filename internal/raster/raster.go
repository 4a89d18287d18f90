// Package raster converts piece outlines into alpha coverage masks.
//
// The baker needs pixel-exact masks to cut sprites out of the source image;
// rasterization is delegated to golang.org/x/image/vector, which flattens
// the outline's cubic segments and accumulates anti-aliased coverage.
package raster

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/gogpu/jigsaw"
)

// Mask rasterizes a closed outline into a width x height alpha mask.
// Full coverage is opaque; pixels outside the contour stay transparent.
func Mask(p *jigsaw.Path, width, height int) *image.Alpha {
	r := vector.NewRasterizer(width, height)

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case jigsaw.MoveTo:
			r.MoveTo(float32(e.Point.X), float32(e.Point.Y))
		case jigsaw.LineTo:
			r.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case jigsaw.CubicTo:
			r.CubeTo(
				float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y),
			)
		case jigsaw.Close:
			r.ClosePath()
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}
