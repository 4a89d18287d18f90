package filter

import "image"

// Blur applies a separable Gaussian blur to an alpha mask and returns the
// result as a new mask of the same dimensions. The separable algorithm runs
// a horizontal and a vertical pass independently, achieving O(w*h*r)
// complexity instead of O(w*h*r*r). Edges are clamped (edge extension).
//
// radius <= 0 returns an unmodified copy.
func Blur(src *image.Alpha, radius float64) *image.Alpha {
	b := src.Bounds()
	dst := image.NewAlpha(b)

	if radius <= 0 {
		copy(dst.Pix, src.Pix)
		return dst
	}

	width := b.Dx()
	height := b.Dy()
	kernel := cachedGaussianKernel(radius)
	halfKernel := len(kernel) / 2

	// Pass 1: horizontal (src -> temp).
	temp := make([]float32, width*height)
	for y := 0; y < height; y++ {
		row := y * src.Stride
		for x := 0; x < width; x++ {
			var a float32
			for k := range kernel {
				kx := x + k - halfKernel
				if kx < 0 {
					kx = 0
				} else if kx >= width {
					kx = width - 1
				}
				a += float32(src.Pix[row+kx]) * kernel[k]
			}
			temp[y*width+x] = a
		}
	}

	// Pass 2: vertical (temp -> dst).
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var a float32
			for k := range kernel {
				ky := y + k - halfKernel
				if ky < 0 {
					ky = 0
				} else if ky >= height {
					ky = height - 1
				}
				a += temp[ky*width+x] * kernel[k]
			}
			dst.Pix[y*dst.Stride+x] = clampUint8(a)
		}
	}

	return dst
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
