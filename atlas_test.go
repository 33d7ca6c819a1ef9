package tooltip

import (
	"slices"
	"strings"
	"testing"
)

const hashJSON = `{
  "frames": {
    "panel_0": {
      "frame": {"x": 0, "y": 0, "w": 16, "h": 16},
      "rotated": false,
      "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 16, "h": 16},
      "sourceSize": {"w": 16, "h": 16}
    },
    "panel_1": {
      "frame": {"x": 16, "y": 0, "w": 32, "h": 16},
      "rotated": false,
      "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 32, "h": 16},
      "sourceSize": {"w": 32, "h": 16}
    }
  },
  "meta": {
    "image": "panel.png",
    "size": {"w": 64, "h": 32}
  }
}`

const arrayJSON = `{
  "textures": [
    {
      "image": "page-0.png",
      "size": {"w": 128, "h": 128},
      "frames": {
        "a": {"frame": {"x": 4, "y": 8, "w": 12, "h": 10}}
      }
    },
    {
      "image": "page-1.png",
      "size": {"w": 128, "h": 128},
      "frames": {
        "b": {"frame": {"x": 0, "y": 0, "w": 1, "h": 1}}
      }
    }
  ]
}`

func TestLoadAtlas_Hash(t *testing.T) {
	a, err := LoadAtlas([]byte(hashJSON))
	if err != nil {
		t.Fatal(err)
	}
	if a.Image != "panel.png" || a.Width != 64 || a.Height != 32 {
		t.Errorf("meta = %q %dx%d", a.Image, a.Width, a.Height)
	}
	if got := a.Region("panel_1"); got != (TextureRegion{X: 16, Y: 0, Width: 32, Height: 16}) {
		t.Errorf("panel_1 = %+v", got)
	}
	if !slices.Equal(a.Names(), []string{"panel_0", "panel_1"}) {
		t.Errorf("names = %v", a.Names())
	}
}

func TestLoadAtlas_ArrayUsesFirstPage(t *testing.T) {
	a, err := LoadAtlas([]byte(arrayJSON))
	if err != nil {
		t.Fatal(err)
	}
	if a.Image != "page-0.png" {
		t.Errorf("image = %q", a.Image)
	}
	if !a.Has("a") || a.Has("b") {
		t.Errorf("names = %v", a.Names())
	}
	if got := a.Region("a").Rect(); got != (Rect{4, 8, 12, 10}) {
		t.Errorf("a = %v", got)
	}
}

func TestLoadAtlas_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		msg  string
	}{
		{"invalid json", `not json`, "parse"},
		{"no frames", `{"meta": {}}`, "neither"},
		{"empty pages", `{"textures": []}`, "empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadAtlas([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("err = %v, want mention of %q", err, tt.msg)
			}
		})
	}
}

func TestAtlas_MissingRegionPlaceholder(t *testing.T) {
	a := NewAtlas("x.png", 8, 8, nil)
	if got := a.Region("nope"); got != (TextureRegion{Width: 1, Height: 1}) {
		t.Errorf("placeholder = %+v", got)
	}
}

func TestAtlas_MarshalRoundTrip(t *testing.T) {
	sprites := SliceSprites([]Rect{{0, 0, 8, 8}, {8, 0, 8, 8}}, 16, "skin")
	a := NewAtlas("skin.png", 16, 8, sprites)
	data, err := a.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	b, err := LoadAtlas(data)
	if err != nil {
		t.Fatal(err)
	}
	if b.Image != "skin.png" || b.Width != 16 || b.Height != 8 {
		t.Errorf("meta = %q %dx%d", b.Image, b.Width, b.Height)
	}
	for _, s := range sprites {
		if got := b.Region(s.Name).Rect(); got != s.Rect {
			t.Errorf("%s = %v, want %v", s.Name, got, s.Rect)
		}
	}
}
