package jigsaw

// EdgeType classifies one side of a puzzle piece.
type EdgeType uint8

const (
	// EdgeFlat is a straight border edge, used only at the grid boundary.
	EdgeFlat EdgeType = iota

	// EdgeIn is a concave notch: the tab recesses into the piece body.
	EdgeIn

	// EdgeOut is a convex notch: the tab protrudes from the piece body.
	EdgeOut
)

// Complement returns the edge type that mates with e.
// An In edge mates with an Out edge and vice versa; Flat mates with Flat
// (two flat edges only ever meet at the grid boundary).
func (e EdgeType) Complement() EdgeType {
	switch e {
	case EdgeIn:
		return EdgeOut
	case EdgeOut:
		return EdgeIn
	default:
		return EdgeFlat
	}
}

// String returns a human-readable name for the edge type.
func (e EdgeType) String() string {
	switch e {
	case EdgeFlat:
		return "flat"
	case EdgeIn:
		return "in"
	case EdgeOut:
		return "out"
	default:
		return "unknown"
	}
}

// EdgeSignature is the four-sided edge-type assignment for one grid cell.
// Two adjacent cells always carry complementary types on their shared edge.
type EdgeSignature struct {
	Top    EdgeType
	Right  EdgeType
	Bottom EdgeType
	Left   EdgeType
}

// Side identifies one of the two freely chosen edges of a cell.
// Top and left edges are never free: they mirror the neighbor that was
// generated before them in the row-major sweep.
type Side uint8

const (
	// SideRight is the cell's right edge.
	SideRight Side = iota

	// SideBottom is the cell's bottom edge.
	SideBottom
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "bottom"
}
