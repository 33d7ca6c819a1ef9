package tooltip

import (
	"slices"
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

var basic = FaceFont{Face: basicfont.Face7x13}

func TestFaceFont_Measure(t *testing.T) {
	w, h := basic.MeasureString("abc\nabcdef")
	if w != 42 || h != 26 {
		t.Errorf("MeasureString = %v x %v, want 42 x 26", w, h)
	}
	if basic.LineHeight() != 13 {
		t.Errorf("LineHeight = %v", basic.LineHeight())
	}
}

func TestWrapLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		wrap float64
		want []string
	}{
		{"empty", "", 100, nil},
		{"no wrap", "one two three", 0, []string{"one two three"}},
		{"fits", "one two", 49, []string{"one two"}},
		{"breaks at space", "one two three", 60, []string{"one two", "three"}},
		{"long word keeps its line", "abcdefghijkl x", 35, []string{"abcdefghijkl", "x"}},
		{"explicit newline", "a\nb", 0, []string{"a", "b"}},
		{"blank line kept", "a\n\nb", 100, []string{"a", "", "b"}},
		{"collapses spaces", "a   b", 0, []string{"a b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapLines(basic, tt.in, tt.wrap); !slices.Equal(got, tt.want) {
				t.Errorf("wrapLines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMeasureBlock(t *testing.T) {
	w, h := measureBlock(basic, "one two three", 60)
	if w != 49 || h != 26 {
		t.Errorf("measureBlock = %v x %v, want 49 x 26", w, h)
	}
	if w, h := measureBlock(basic, "", 60); w != 0 || h != 0 {
		t.Errorf("empty = %v x %v", w, h)
	}
}

func TestTTFFont(t *testing.T) {
	f, err := LoadTTFFont(goregular.TTF, 16)
	if err != nil {
		t.Fatal(err)
	}
	if f.LineHeight() <= 0 {
		t.Errorf("LineHeight = %v", f.LineHeight())
	}
	w16, _ := f.MeasureString("Tooltip")
	big := f.WithSize(32)
	w32, _ := big.MeasureString("Tooltip")
	if w32 <= w16 {
		t.Errorf("32px width %v not wider than 16px width %v", w32, w16)
	}
	if f.WithSize(16) != Font(f) {
		t.Error("same size produced a new font")
	}
}

func TestLoadTTFFont_Invalid(t *testing.T) {
	if _, err := LoadTTFFont([]byte("not a font"), 12); err == nil {
		t.Error("expected error")
	}
}

func TestFontRegistry(t *testing.T) {
	r := NewFontRegistry()
	if len(r.Names()) != len(DefaultFontNames) {
		t.Errorf("names = %v", r.Names())
	}
	if _, ok := r.Font(3).(FaceFont); !ok {
		t.Error("empty registry does not fall back to the basic face")
	}

	ttf, err := LoadTTFFont(goregular.TTF, 12)
	if err != nil {
		t.Fatal(err)
	}
	r.Register(0, ttf)
	if r.Font(5) != Font(ttf) {
		t.Error("missing index does not fall back to index 0")
	}
	sized := r.Sized(0, 24)
	if sized == Font(ttf) {
		t.Error("Sized did not resize")
	}
	if r.Sized(0, 24) != sized {
		t.Error("Sized not cached")
	}
	r.Register(0, basic)
	if r.Sized(0, 24) != Font(basic) {
		t.Error("Register did not invalidate sized fonts")
	}
}

func TestDrawList_Clone(t *testing.T) {
	var dl DrawList
	dl.AddPanel(Rect{0, 0, 10, 10}, ColorWhite, 4)
	dl.AddText(Rect{}, ColorBlack, []string{"a", "b"}, basic, 13, false)
	c := dl.Clone()
	dl.Cmds[1].Lines[0] = "changed"
	dl.Clear()
	if dl.Len() != 0 || c.Len() != 2 {
		t.Fatalf("len = %d, clone %d", dl.Len(), c.Len())
	}
	if c.Cmds[1].Lines[0] != "a" {
		t.Error("clone shares line storage")
	}
	if c.Cmds[0].Kind.String() != "panel" || c.Cmds[1].Kind.String() != "text" {
		t.Errorf("kinds = %v %v", c.Cmds[0].Kind, c.Cmds[1].Kind)
	}
}
