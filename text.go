package tooltip

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
)

// Font is the interface for text measurement and layout.
type Font interface {
	MeasureString(s string) (width, height float64)
	LineHeight() float64
}

// Sizer is implemented by fonts that can produce a face at another size.
// Fonts that do not implement it are used at their native size.
type Sizer interface {
	WithSize(size float64) Font
}

// --- FaceFont ---

// FaceFont adapts a golang.org/x/image font.Face, such as basicfont.Face7x13,
// to Font. It measures without a graphics context, which makes it the font of
// choice for headless layout.
type FaceFont struct {
	Face font.Face
}

// MeasureString returns the advance width of the widest line and the height
// of all lines.
func (f FaceFont) MeasureString(s string) (width, height float64) {
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		w := float64(font.MeasureString(f.Face, line)) / 64
		if w > width {
			width = w
		}
	}
	return width, float64(len(lines)) * f.LineHeight()
}

// LineHeight returns the face's recommended line spacing.
func (f FaceFont) LineHeight() float64 {
	return float64(f.Face.Metrics().Height) / 64
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("tooltip: failed to parse TTF data: %w", err)
	}
	return newTTFFont(source, size), nil
}

func newTTFFont(source *text.GoTextFaceSource, size float64) *TTFFont {
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     m.HAscent + m.HDescent + m.HLineGap,
	}
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// WithSize returns a face of the same source at another size.
func (f *TTFFont) WithSize(size float64) Font {
	if size <= 0 || size == f.size {
		return f
	}
	return newTTFFont(f.source, size)
}

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// --- layout ---

// wrapLines breaks s into lines no wider than wrapWidth, breaking at spaces.
// Explicit newlines always break. A single word wider than wrapWidth keeps its
// own line. wrapWidth <= 0 disables wrapping. Empty input yields no lines.
func wrapLines(f Font, s string, wrapWidth float64) []string {
	if s == "" || f == nil {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if wrapWidth > 0 {
				if w, _ := f.MeasureString(candidate); w > wrapWidth {
					lines = append(lines, line)
					line = word
					continue
				}
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// measureBlock returns the size of s laid out with wrapWidth.
func measureBlock(f Font, s string, wrapWidth float64) (width, height float64) {
	lines := wrapLines(f, s, wrapWidth)
	for _, line := range lines {
		if w, _ := f.MeasureString(line); w > width {
			width = w
		}
	}
	if f != nil {
		height = float64(len(lines)) * f.LineHeight()
	}
	return width, height
}
