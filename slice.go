package tooltip

import (
	"slices"
	"strconv"
)

// SpriteSlice is a named sub-rectangle of a skin texture.
type SpriteSlice struct {
	Name string
	Rect Rect
}

// SortRects orders non-overlapping sprite bounds into reading order: the top
// row first, left to right within a row.
//
// Rects are in top-left image coordinates. Each pass takes the remaining rect
// nearest the top of the texture and sweeps a full-width band across its
// vertical span; every remaining rect overlapping the band (strictly, touching
// edges do not count) belongs to the row, which is emitted sorted by X with
// ties kept in input order. A band that collects nothing (a zero-height
// rect) ends the sweep and the leftovers are appended unsorted.
//
// The input slice is not modified.
func SortRects(rects []Rect, textureWidth float64) []Rect {
	remaining := slices.Clone(rects)
	out := make([]Rect, 0, len(rects))

	for len(remaining) > 0 {
		top := topmost(remaining)
		band := Rect{X: 0, Y: top.Y, Width: textureWidth, Height: top.Height}

		row, rest := sweep(remaining, band)
		if len(row) == 0 {
			out = append(out, remaining...)
			break
		}
		out = append(out, row...)
		remaining = rest
	}
	return out
}

// topmost returns the rect with the smallest Y; on ties the later one wins.
func topmost(rects []Rect) Rect {
	best := rects[0]
	for _, r := range rects[1:] {
		if r.Y <= best.Y {
			best = r
		}
	}
	return best
}

// sweep splits rects into those overlapping band (sorted by X) and the rest.
func sweep(rects []Rect, band Rect) (row, rest []Rect) {
	for _, r := range rects {
		if r.Overlaps(band) {
			row = append(row, r)
		} else {
			rest = append(rest, r)
		}
	}
	slices.SortStableFunc(row, func(a, b Rect) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		default:
			return 0
		}
	})
	return row, rest
}

// SliceSprites sorts rects with SortRects and names each one
// "<basename>_<index>" in that order.
func SliceSprites(rects []Rect, textureWidth float64, basename string) []SpriteSlice {
	sorted := SortRects(rects, textureWidth)
	out := make([]SpriteSlice, len(sorted))
	for i, r := range sorted {
		out[i] = SpriteSlice{
			Name: basename + "_" + strconv.Itoa(i),
			Rect: r,
		}
	}
	return out
}
