package tooltip

// regionKind classifies a pixel relative to the interior rectangle.
type regionKind uint8

const (
	regionNone     regionKind = iota // no arc origin; keeps the background
	regionInterior                   // inside the interior rectangle
	regionEdge                       // beside one side of the interior rectangle
	regionCorner                     // diagonal to one corner of the interior rectangle
)

// side identifies an edge or a corner. Corners combine two edges.
type side uint8

const (
	sideLeft side = 1 << iota
	sideRight
	sideTop
	sideBottom
)

// region is the classifier result: the kind, which side(s) the pixel falls
// on, and the point on the interior rectangle the distance test is measured
// from.
type region struct {
	kind   regionKind
	side   side
	origin Vec2
}

// classify sorts (x, y) into one of the nine cells formed by the interior
// rectangle's edges. Edge cells project straight onto the nearest interior
// edge; corner cells use the interior corner. A pixel whose column and row are
// both central but that is not inside the half-open interior (it sits exactly
// on the far boundary) has no origin.
func (r *rasterizer) classify(x, y int) region {
	if r.interior.containsHalfOpen(float64(x), float64(y)) {
		return region{kind: regionInterior}
	}

	lo := r.inset
	hiX := r.width - r.inset
	hiY := r.height - r.inset

	var s side
	ox, oy := float64(x), float64(y)
	switch {
	case x < lo:
		s |= sideLeft
		ox = float64(lo)
	case x > hiX:
		s |= sideRight
		ox = float64(hiX)
	}
	switch {
	case y < lo:
		s |= sideTop
		oy = float64(lo)
	case y > hiY:
		s |= sideBottom
		oy = float64(hiY)
	}

	switch s {
	case 0:
		return region{kind: regionNone}
	case sideLeft, sideRight, sideTop, sideBottom:
		return region{kind: regionEdge, side: s, origin: Vec2{ox, oy}}
	default:
		return region{kind: regionCorner, side: s, origin: Vec2{ox, oy}}
	}
}
