package tooltip

import (
	"image/color"
	"testing"
)

func TestLerp8(t *testing.T) {
	a := color.NRGBA{0, 100, 200, 255}
	b := color.NRGBA{255, 0, 100, 0}
	tests := []struct {
		t    float64
		want color.NRGBA
	}{
		{0, a},
		{1, b},
		{-1, a},
		{2, b},
		{0.5, color.NRGBA{127, 50, 150, 127}},
	}
	for _, tt := range tests {
		if got := lerp8(a, b, tt.t); got != tt.want {
			t.Errorf("lerp8(t=%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestDarken(t *testing.T) {
	c := color.NRGBA{200, 100, 40, 128}
	if got := darken(c, 0); got != c {
		t.Errorf("darken(0) = %v", got)
	}
	if got := darken(c, 1); got != opaqueBlack {
		t.Errorf("darken(1) = %v, want opaque black", got)
	}
	if got := darken(c, 0.5); got != (color.NRGBA{100, 50, 20, 191}) {
		t.Errorf("darken(0.5) = %v", got)
	}
}

func TestColorConversion(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 2}
	if got := c.NRGBA(); got != (color.NRGBA{255, 128, 0, 255}) {
		t.Errorf("NRGBA = %v", got)
	}
	back := ColorFromNRGBA(color.NRGBA{255, 0, 51, 255})
	if back != (Color{1, 0, 0.2, 1}) {
		t.Errorf("ColorFromNRGBA = %+v", back)
	}
	if got := ColorWhite.WithAlpha(0.25).A; got != 0.25 {
		t.Errorf("WithAlpha = %v", got)
	}
}

func TestRectOverlapsAndContains(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	if r.Overlaps(Rect{10, 0, 5, 5}) {
		t.Error("edge-touching rects overlap")
	}
	if !r.Overlaps(Rect{9, 9, 5, 5}) {
		t.Error("overlapping rects do not overlap")
	}
	if !r.Contains(10, 10) {
		t.Error("Contains excludes the far edge")
	}
	if r.containsHalfOpen(10, 5) {
		t.Error("containsHalfOpen includes the far edge")
	}
}
