package tooltip

import (
	"fmt"
	"testing"
)

func TestShapeKeyFor(t *testing.T) {
	tests := []struct {
		name    string
		cmd     DrawCmd
		outline bool
		want    shapeKey
		ok      bool
	}{
		{
			name: "panel",
			cmd:  DrawCmd{Rect: Rect{0, 0, 100, 60}, Radius: 10},
			want: shapeKey{w: 100, h: 60, thickness: 1, radius: 10},
			ok:   true,
		},
		{
			name:    "border",
			cmd:     DrawCmd{Rect: Rect{0, 0, 100, 60}, Radius: 10, Thickness: 3},
			outline: true,
			want:    shapeKey{w: 100, h: 60, thickness: 3, radius: 10, outline: true},
			ok:      true,
		},
		{
			name: "zero radius rounds up to one",
			cmd:  DrawCmd{Rect: Rect{0, 0, 100, 60}},
			want: shapeKey{w: 100, h: 60, thickness: 1, radius: 1},
			ok:   true,
		},
		{
			name:    "radius shrinks to fit",
			cmd:     DrawCmd{Rect: Rect{0, 0, 100, 20}, Radius: 30, Thickness: 4},
			outline: true,
			want:    shapeKey{w: 100, h: 20, thickness: 4, radius: 4, outline: true},
			ok:      true,
		},
		{
			name:    "zero width border",
			cmd:     DrawCmd{Rect: Rect{0, 0, 100, 60}, Radius: 10},
			outline: true,
		},
		{
			name: "too small",
			cmd:  DrawCmd{Rect: Rect{0, 0, 3, 60}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := shapeKeyFor(&tt.cmd, tt.outline)
			if ok != tt.ok || got != tt.want {
				t.Errorf("shapeKeyFor = %+v %v, want %+v %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestShapeKeyFor_GeneratesValidSkins(t *testing.T) {
	for w := 9; w <= 29; w += 5 {
		for _, th := range []float64{1, 3, 6} {
			for _, rad := range []float64{0, 5, 30} {
				cmd := DrawCmd{Rect: Rect{0, 0, float64(w), 9}, Thickness: th, Radius: rad}
				for _, outline := range []bool{false, true} {
					key, ok := shapeKeyFor(&cmd, outline)
					if !ok {
						t.Fatalf("w=%d outline=%v: no key", w, outline)
					}
					if _, err := shapeMask(key); err != nil {
						t.Errorf("key %+v: %v", key, err)
					}
				}
			}
		}
	}
}

func TestShapeKeyFor_OutlineTooSmall(t *testing.T) {
	cmd := DrawCmd{Rect: Rect{0, 0, 5, 40}, Thickness: 1}
	if key, ok := shapeKeyFor(&cmd, true); ok {
		t.Errorf("got key %+v for a 5px wide outline", key)
	}
}

func TestShapeMask_OutlineWidthEverySide(t *testing.T) {
	for _, width := range []int{1, 2, 3, 6} {
		t.Run(fmt.Sprintf("width %d", width), func(t *testing.T) {
			cmd := DrawCmd{Rect: Rect{0, 0, 200, 80}, Radius: 10, Thickness: float64(width)}
			key, ok := shapeKeyFor(&cmd, true)
			if !ok {
				t.Fatal("no key")
			}
			mask, err := shapeMask(key)
			if err != nil {
				t.Fatal(err)
			}
			b := mask.Bounds()
			if b.Dx() != 200 || b.Dy() != 80 {
				t.Fatalf("mask size = %dx%d", b.Dx(), b.Dy())
			}
			opaque := func(x, y int) bool { return mask.NRGBAAt(b.Min.X+x, b.Min.Y+y).A != 0 }

			var left, right, top, bottom int
			for x := range 200 {
				if opaque(x, 40) {
					if x < 100 {
						left++
					} else {
						right++
					}
				}
			}
			for y := range 80 {
				if opaque(100, y) {
					if y < 40 {
						top++
					} else {
						bottom++
					}
				}
			}
			for name, n := range map[string]int{"left": left, "right": right, "top": top, "bottom": bottom} {
				if n != width {
					t.Errorf("%s band = %d px, want %d", name, n, width)
				}
			}
			if !opaque(0, 40) || !opaque(199, 40) || !opaque(100, 0) || !opaque(100, 79) {
				t.Error("band does not touch the rectangle edge")
			}
		})
	}
}

func TestShapeMask_PanelFillsEdges(t *testing.T) {
	mask, err := shapeMask(shapeKey{w: 60, h: 30, thickness: 1, radius: 5})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]int{{0, 15}, {59, 15}, {30, 0}, {30, 29}, {30, 15}} {
		if mask.NRGBAAt(p[0], p[1]).A != 255 {
			t.Errorf("panel pixel %v not opaque", p)
		}
	}
	if mask.NRGBAAt(0, 0).A != 0 {
		t.Error("panel corner not rounded")
	}
}
