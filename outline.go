package jigsaw

import "math/rand"

// NotchStyle describes the geometry of a piece's tabs.
// All values are fractions of the piece size.
type NotchStyle struct {
	// Width is the tab footprint along the edge, centered on the edge
	// midpoint.
	Width float64

	// Height is the tab's lateral protrusion. Out edges protrude outward
	// by this much, In edges recess inward.
	Height float64

	// Jitter randomizes each tab's height by a uniform factor in
	// [1-Jitter, 1+Jitter]. Zero disables jitter; the offline baker uses a
	// small amount so baked pieces don't look stamped from one template.
	Jitter float64
}

// DefaultNotch is the notch geometry used when no style is supplied.
var DefaultNotch = NotchStyle{
	Width:  0.4,
	Height: 0.22,
}

// normalized returns the style with zero values replaced by defaults.
func (n NotchStyle) normalized() NotchStyle {
	if n.Width <= 0 {
		n.Width = DefaultNotch.Width
	}
	if n.Height <= 0 {
		n.Height = DefaultNotch.Height
	}
	return n
}

// BuildOutline renders an edge signature into a single closed contour.
// The path starts at the local origin (0,0), draws the top edge left to
// right, the right edge top to bottom, the bottom edge right to left and the
// left edge bottom to top, then closes. size is the piece's linear dimension;
// the piece is logically square.
//
// A flat edge is one straight line. An In or Out edge is a straight segment,
// a pair of cubic curves forming a rounded tab, and a second straight
// segment; the tab is centered on the edge midpoint and protrudes along the
// edge's outward normal for Out, inward for In. Because adjacent signatures
// carry complementary types on their shared edge, the neighboring outlines
// are geometric complements there: one piece's tab fills the other's notch.
//
// Every edge endpoint is computed in absolute coordinates from the piece
// corners, so the contour returns exactly to (0,0) with no accumulated
// floating-point drift.
//
// rng is consulted only when notch.Jitter > 0; passing nil is fine otherwise.
func BuildOutline(sig EdgeSignature, size float64, notch NotchStyle, rng *rand.Rand) *Path {
	notch = notch.normalized()
	p := NewPath()
	p.MoveTo(0, 0)

	o := outliner{path: p, size: size, notch: notch, rng: rng}
	o.edge(Pt(0, 0), Pt(1, 0), Pt(0, -1), sig.Top)
	o.edge(Pt(size, 0), Pt(0, 1), Pt(1, 0), sig.Right)
	o.edge(Pt(size, size), Pt(-1, 0), Pt(0, 1), sig.Bottom)
	o.edge(Pt(0, size), Pt(0, -1), Pt(-1, 0), sig.Left)

	p.Close()
	return p
}

// outliner appends one edge at a time to a piece contour.
type outliner struct {
	path  *Path
	size  float64
	notch NotchStyle
	rng   *rand.Rand
}

// edge draws one full edge of length o.size from start along the unit
// direction dir. out is the edge's outward unit normal; the tab's lateral
// offset is +out for EdgeOut and -out for EdgeIn, which is what makes the
// sign convention flip between the right/down edges and their mirrored
// left/up counterparts.
func (o *outliner) edge(start, dir, out Point, t EdgeType) {
	end := start.Add(dir.Mul(o.size))
	if t == EdgeFlat {
		o.path.LineTo(end.X, end.Y)
		return
	}

	w := o.notch.Width * o.size
	h := o.notch.Height * o.size * o.jitterFactor()
	if t == EdgeIn {
		h = -h
	}
	lat := out.Mul(h)

	// Straight run before the tab; the two runs plus the tab footprint sum
	// to exactly one piece size along the edge.
	run := (o.size - w) / 2

	base0 := start.Add(dir.Mul(run))
	base1 := start.Add(dir.Mul(o.size - run))
	apex := start.Add(dir.Mul(o.size / 2)).Add(lat)

	o.path.LineTo(base0.X, base0.Y)

	// Rising half of the tab: horizontal tangent at the base, horizontal
	// tangent again at the apex. Placing the second control point directly
	// above the base gives the tab a slight neck.
	c1 := start.Add(dir.Mul(run + w/4))
	c2 := base0.Add(lat)
	o.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, apex.X, apex.Y)

	// Falling half, mirrored.
	c3 := base1.Add(lat)
	c4 := start.Add(dir.Mul(o.size - run - w/4))
	o.path.CubicTo(c3.X, c3.Y, c4.X, c4.Y, base1.X, base1.Y)

	o.path.LineTo(end.X, end.Y)
}

// jitterFactor samples the per-tab height multiplier.
func (o *outliner) jitterFactor() float64 {
	j := o.notch.Jitter
	if j <= 0 || o.rng == nil {
		return 1
	}
	return 1 - j + 2*j*o.rng.Float64()
}
