package tooltip

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// SkinFiles lists the files written by ExportSkin.
type SkinFiles struct {
	PNG    string
	Atlas  string
	Slices []SpriteSlice
}

// ExportSkin writes canvas to <dir>/<basename>.png and, when rects is not
// empty, the sliced atlas to <dir>/<basename>.json. Rects are sorted and named
// with SliceSprites. dir is created if needed.
func ExportSkin(dir, basename string, canvas *Canvas, rects []Rect) (SkinFiles, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return SkinFiles{}, fmt.Errorf("tooltip: mkdir %s: %w", dir, err)
	}

	name := skinBasename(basename)
	files := SkinFiles{PNG: filepath.Join(dir, name+".png")}
	if err := WritePNG(files.PNG, canvas.Image()); err != nil {
		return SkinFiles{}, err
	}
	Logger().Info("wrote skin texture", "path", files.PNG,
		"width", canvas.Width(), "height", canvas.Height())

	if len(rects) == 0 {
		return files, nil
	}

	files.Slices = SliceSprites(rects, float64(canvas.Width()), name)
	atlas := NewAtlas(name+".png", canvas.Width(), canvas.Height(), files.Slices)
	data, err := atlas.MarshalJSON()
	if err != nil {
		return SkinFiles{}, fmt.Errorf("tooltip: encode atlas: %w", err)
	}
	files.Atlas = filepath.Join(dir, name+".json")
	if err := os.WriteFile(files.Atlas, data, 0o644); err != nil {
		return SkinFiles{}, fmt.Errorf("tooltip: write %s: %w", files.Atlas, err)
	}
	Logger().Info("wrote skin atlas", "path", files.Atlas, "slices", len(files.Slices))
	return files, nil
}

// WritePNG encodes an image to a PNG file at the given path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tooltip: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("tooltip: encode %s: %w", path, err)
	}
	return f.Close()
}

// skinBasename turns a skin name into a file and sprite basename. Letters,
// digits, '-', '_' and '.' are kept; any run of other characters becomes a
// single '_'. A trailing ".png" is dropped and leading or trailing dots and
// underscores are trimmed, so "../panel" cannot leave dir. Names with nothing
// left become "skin".
func skinBasename(name string) string {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".png")
	var b strings.Builder
	b.Grow(len(name))
	gap := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.':
			b.WriteRune(r)
			gap = false
		case !gap:
			b.WriteByte('_')
			gap = true
		}
	}
	if base := strings.Trim(b.String(), "._"); base != "" {
		return base
	}
	return "skin"
}
