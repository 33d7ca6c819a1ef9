package tooltip

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
)

// maxCachedShapes bounds the shape texture cache. When exceeded the whole
// cache is released; tooltips rarely cycle through more sizes than this.
const maxCachedShapes = 64

// shapeKey identifies a white rounded-rectangle mask texture.
type shapeKey struct {
	w, h      int
	thickness int
	radius    int
	outline   bool // border band only; the interior is transparent
}

// Renderer draws DrawLists to an Ebitengine image. Panels and borders are
// rasterized once per size with GenerateRoundedRect as white masks and tinted
// at draw time. A Renderer must be used from the game's Draw goroutine.
type Renderer struct {
	shapes map[shapeKey]*ebiten.Image
	xfaces map[font.Face]*text.GoXFace

	op     ebiten.DrawImageOptions
	textOp text.DrawOptions
}

// NewRenderer creates a renderer with an empty texture cache.
func NewRenderer() *Renderer {
	return &Renderer{
		shapes: make(map[shapeKey]*ebiten.Image),
		xfaces: make(map[font.Face]*text.GoXFace),
	}
}

// Draw renders every command in dl onto dst in order.
func (r *Renderer) Draw(dst *ebiten.Image, dl *DrawList) {
	for i := range dl.Cmds {
		cmd := &dl.Cmds[i]
		switch cmd.Kind {
		case CmdPanel:
			r.drawShape(dst, cmd, false)
		case CmdBorder:
			r.drawShape(dst, cmd, true)
		case CmdText:
			r.drawText(dst, cmd)
		}
	}
}

// Release frees every cached texture.
func (r *Renderer) Release() {
	for k, img := range r.shapes {
		img.Deallocate()
		delete(r.shapes, k)
	}
}

func (r *Renderer) drawShape(dst *ebiten.Image, cmd *DrawCmd, outline bool) {
	key, ok := shapeKeyFor(cmd, outline)
	if !ok {
		return
	}
	img := r.shapes[key]
	if img == nil {
		img = r.buildShape(key)
		if img == nil {
			return
		}
	}

	op := &r.op
	op.GeoM.Reset()
	op.GeoM.Translate(math.Round(cmd.Rect.X), math.Round(cmd.Rect.Y))
	op.ColorScale.Reset()
	a := float32(cmd.Color.A)
	op.ColorScale.Scale(float32(cmd.Color.R)*a, float32(cmd.Color.G)*a, float32(cmd.Color.B)*a, a)
	dst.DrawImage(img, op)
}

// shapeKeyFor fits a command's radius and thickness into the generator's
// constraints. Zero-size rectangles and zero-width borders draw nothing.
func shapeKeyFor(cmd *DrawCmd, outline bool) (shapeKey, bool) {
	w := int(math.Round(cmd.Rect.Width))
	h := int(math.Round(cmd.Rect.Height))
	if w < 4 || h < 4 {
		return shapeKey{}, false
	}
	if !outline {
		half := min(w, h) / 2
		radius := clampInt(int(math.Round(cmd.Radius)), 1, half-1)
		return shapeKey{w: w, h: h, thickness: 1, radius: radius}, true
	}

	thickness := int(math.Round(cmd.Thickness))
	if thickness < 1 {
		return shapeKey{}, false
	}
	// Outline masks are generated one pixel larger with two extra pixels of
	// border; see outlineConfig.
	half := (min(w, h) + 1) / 2
	thickness = min(thickness, half-outlinePad-1)
	if thickness < 1 {
		return shapeKey{}, false
	}
	radius := clampInt(int(math.Round(cmd.Radius)), 1, half-thickness-outlinePad)
	return shapeKey{w: w, h: h, thickness: thickness, radius: radius, outline: true}, true
}

// outlinePad is the extra generator thickness an outline mask needs. The
// generator paints a band of thickness-1 pixels on the left and top edges and
// thickness-2 on the right and bottom.
const outlinePad = 2

// outlineConfig returns the generator config for an outline mask and the
// sub-rectangle to keep. Cropping the first row and column of a canvas one
// pixel larger leaves exactly key.thickness opaque pixels on every side.
func outlineConfig(key shapeKey) (RoundedRectConfig, image.Rectangle) {
	white := color.NRGBA{255, 255, 255, 255}
	cfg := RoundedRectConfig{
		ResolutionMultiplier: 1,
		Width:                key.w + 1,
		Height:               key.h + 1,
		BorderThickness:      key.thickness + outlinePad,
		BorderRadius:         key.radius,
		Background:           []color.NRGBA{transparent},
		Border:               []color.NRGBA{white},
	}
	return cfg, image.Rect(1, 1, key.w+1, key.h+1)
}

// shapeMask generates the white mask for key.
func shapeMask(key shapeKey) (*image.NRGBA, error) {
	if key.outline {
		cfg, crop := outlineConfig(key)
		canvas, err := GenerateRoundedRect(cfg)
		if err != nil {
			return nil, err
		}
		return canvas.Image().SubImage(crop).(*image.NRGBA), nil
	}
	white := color.NRGBA{255, 255, 255, 255}
	canvas, err := GenerateRoundedRect(RoundedRectConfig{
		ResolutionMultiplier: 1,
		Width:                key.w,
		Height:               key.h,
		BorderThickness:      key.thickness,
		BorderRadius:         key.radius,
		Background:           []color.NRGBA{white},
		Border:               []color.NRGBA{white},
	})
	if err != nil {
		return nil, err
	}
	return canvas.Image(), nil
}

func (r *Renderer) buildShape(key shapeKey) *ebiten.Image {
	mask, err := shapeMask(key)
	if err != nil {
		Logger().Warn("tooltip shape not generated", "width", key.w, "height", key.h, "err", err)
		return nil
	}
	if len(r.shapes) >= maxCachedShapes {
		r.Release()
	}
	img := ebiten.NewImageFromImage(mask)
	r.shapes[key] = img
	return img
}

func (r *Renderer) drawText(dst *ebiten.Image, cmd *DrawCmd) {
	face, lh := r.textFace(cmd.Font)
	if face == nil {
		return
	}
	op := &r.textOp
	op.ColorScale.Reset()
	a := float32(cmd.Color.A)
	op.ColorScale.Scale(float32(cmd.Color.R)*a, float32(cmd.Color.G)*a, float32(cmd.Color.B)*a, a)
	op.LineSpacing = lh

	y := cmd.Rect.Y
	for _, line := range cmd.Lines {
		op.GeoM.Reset()
		op.GeoM.Translate(cmd.Rect.X, y)
		text.Draw(dst, line, face, op)
		if cmd.Bold {
			// Faux bold: a second pass one pixel right.
			op.GeoM.Translate(1, 0)
			text.Draw(dst, line, face, op)
		}
		y += lh
	}
}

// textFace returns the text/v2 face for f and its line height.
func (r *Renderer) textFace(f Font) (text.Face, float64) {
	switch f := f.(type) {
	case *TTFFont:
		return f.Face(), f.LineHeight()
	case FaceFont:
		xf := r.xfaces[f.Face]
		if xf == nil {
			xf = text.NewGoXFace(f.Face)
			r.xfaces[f.Face] = xf
		}
		return xf, f.LineHeight()
	default:
		return nil, 0
	}
}
