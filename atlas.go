package tooltip

import (
	"encoding/json"
	"fmt"
	"sort"
)

// TextureRegion describes a named sub-rectangle within a skin texture.
type TextureRegion struct {
	X, Y          int // top-left corner within the texture
	Width, Height int
}

// Rect returns the region as a Rect.
func (r TextureRegion) Rect() Rect {
	return Rect{X: float64(r.X), Y: float64(r.Y), Width: float64(r.Width), Height: float64(r.Height)}
}

// Atlas maps sprite slice names to regions of one skin texture.
type Atlas struct {
	// Image is the texture file name recorded in the JSON metadata.
	Image   string
	Width   int
	Height  int
	regions map[string]TextureRegion
}

// NewAtlas builds an atlas from named slices of a texture of the given size.
func NewAtlas(image string, width, height int, slices []SpriteSlice) *Atlas {
	a := &Atlas{
		Image:   image,
		Width:   width,
		Height:  height,
		regions: make(map[string]TextureRegion, len(slices)),
	}
	for _, s := range slices {
		a.regions[s.Name] = TextureRegion{
			X:      int(s.Rect.X),
			Y:      int(s.Rect.Y),
			Width:  int(s.Rect.Width),
			Height: int(s.Rect.Height),
		}
	}
	return a
}

// Region returns the region for the given name. A missing name is logged at
// debug level and yields a 1×1 placeholder at the origin.
func (a *Atlas) Region(name string) TextureRegion {
	if r, ok := a.regions[name]; ok {
		return r
	}
	Logger().Debug("atlas region not found, using placeholder", "name", name)
	return TextureRegion{Width: 1, Height: 1}
}

// Has reports whether the atlas contains a region with the given name.
func (a *Atlas) Has(name string) bool {
	_, ok := a.regions[name]
	return ok
}

// Names returns the region names in sorted order.
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.regions))
	for name := range a.regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
}

type jsonMeta struct {
	Image string   `json:"image"`
	Size  jsonSize `json:"size"`
}

type jsonHash struct {
	Frames map[string]jsonFrame `json:"frames"`
	Meta   jsonMeta             `json:"meta"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Size   jsonSize             `json:"size"`
	Frames map[string]jsonFrame `json:"frames"`
}

// MarshalJSON encodes the atlas in the TexturePacker hash format.
func (a *Atlas) MarshalJSON() ([]byte, error) {
	doc := jsonHash{
		Frames: make(map[string]jsonFrame, len(a.regions)),
		Meta:   jsonMeta{Image: a.Image, Size: jsonSize{W: a.Width, H: a.Height}},
	}
	for name, r := range a.regions {
		doc.Frames[name] = jsonFrame{
			Frame:            jsonRect{X: r.X, Y: r.Y, W: r.Width, H: r.Height},
			SpriteSourceSize: jsonRect{W: r.Width, H: r.Height},
			SourceSize:       jsonSize{W: r.Width, H: r.Height},
		}
	}
	return json.Marshal(doc)
}

// LoadAtlas parses TexturePacker JSON. Supports both the hash format (single
// "frames" object) and the array format ("textures" array); with the array
// format only the first page is used.
func LoadAtlas(jsonData []byte) (*Atlas, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
		Meta     jsonMeta        `json:"meta"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("tooltip: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{
		Image:   probe.Meta.Image,
		Width:   probe.Meta.Size.W,
		Height:  probe.Meta.Size.H,
		regions: make(map[string]TextureRegion),
	}

	switch {
	case probe.Textures != nil:
		var pages []jsonTexturePage
		if err := json.Unmarshal(probe.Textures, &pages); err != nil {
			return nil, fmt.Errorf("tooltip: failed to parse atlas textures array: %w", err)
		}
		if len(pages) == 0 {
			return nil, fmt.Errorf("tooltip: atlas textures array is empty")
		}
		atlas.Image = pages[0].Image
		atlas.Width, atlas.Height = pages[0].Size.W, pages[0].Size.H
		for name, f := range pages[0].Frames {
			atlas.regions[name] = frameToRegion(f)
		}
	case probe.Frames != nil:
		var frames map[string]jsonFrame
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, fmt.Errorf("tooltip: failed to parse atlas frames: %w", err)
		}
		for name, f := range frames {
			atlas.regions[name] = frameToRegion(f)
		}
	default:
		return nil, fmt.Errorf("tooltip: atlas JSON has neither \"frames\" nor \"textures\" key")
	}

	return atlas, nil
}

func frameToRegion(f jsonFrame) TextureRegion {
	return TextureRegion{
		X:      f.Frame.X,
		Y:      f.Frame.Y,
		Width:  f.Frame.W,
		Height: f.Frame.H,
	}
}
