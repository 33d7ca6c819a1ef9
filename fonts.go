package tooltip

import (
	"golang.org/x/image/font/basicfont"
)

// DefaultFontNames are the font choices offered to trigger authors. A
// trigger's HeaderFont and ContentFont fields index into this list.
var DefaultFontNames = []string{
	"Arial",
	"Berlin Sans FB",
	"Calibri",
	"Cambria",
	"Century Gothic",
	"Segoe UI",
	"Times New Roman",
	"Trebuchet MS",
	"Verdana",
}

type fontKey struct {
	index int
	size  float64
}

// FontRegistry resolves font indices to loaded fonts. It is an explicit object
// passed to the tooltip rather than a global lookup, so hosts decide where
// font data comes from.
type FontRegistry struct {
	names []string
	fonts map[int]Font
	sized map[fontKey]Font
}

// NewFontRegistry returns a registry with the given display names and no
// fonts loaded. Until a font is registered every lookup returns the 7×13
// basic face.
func NewFontRegistry(names ...string) *FontRegistry {
	if len(names) == 0 {
		names = DefaultFontNames
	}
	return &FontRegistry{
		names: names,
		fonts: make(map[int]Font),
		sized: make(map[fontKey]Font),
	}
}

// Names returns the display names in index order.
func (r *FontRegistry) Names() []string { return r.names }

// Register associates a loaded font with an index.
func (r *FontRegistry) Register(index int, f Font) {
	r.fonts[index] = f
	for k := range r.sized {
		if k.index == index {
			delete(r.sized, k)
		}
	}
}

// Font returns the font for index, falling back to index 0 and then to the
// basic face.
func (r *FontRegistry) Font(index int) Font {
	if f, ok := r.fonts[index]; ok {
		return f
	}
	if f, ok := r.fonts[0]; ok {
		return f
	}
	return FaceFont{Face: basicfont.Face7x13}
}

// Sized returns the font for index at the given pixel size when the font
// supports resizing. Results are cached.
func (r *FontRegistry) Sized(index int, size float64) Font {
	k := fontKey{index, size}
	if f, ok := r.sized[k]; ok {
		return f
	}
	f := r.Font(index)
	if s, ok := f.(Sizer); ok && size > 0 {
		f = s.WithSize(size)
	}
	r.sized[k] = f
	return f
}
