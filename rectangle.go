package tooltip

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"
)

// ErrInvalidParameters is matched (via errors.Is) by every error returned from
// GenerateRoundedRect when the configuration cannot produce a texture.
var ErrInvalidParameters = errors.New("tooltip: invalid rounded rectangle parameters")

// Constraint names the precondition a RoundedRectConfig violated.
type Constraint uint8

const (
	ConstraintBackgroundStops Constraint = iota + 1 // no background color stops
	ConstraintBorderStops                           // no border color stops
	ConstraintRadius                                // border radius < 1
	ConstraintThickness                             // border thickness < 1
	ConstraintFit                                   // thickness+radius exceeds half the width or height
	ConstraintShadow                                // shadow wider than the radius
)

func (c Constraint) String() string {
	switch c {
	case ConstraintBackgroundStops:
		return "must define at least one background color (up to four)"
	case ConstraintBorderStops:
		return "must define at least one border color (up to three)"
	case ConstraintRadius:
		return "border radius must be at least 1"
	case ConstraintThickness:
		return "border thickness must be at least 1"
	case ConstraintFit:
		return "border is too thick and/or rounded to fit on the texture"
	case ConstraintShadow:
		return "border shadow must not exceed the border radius"
	default:
		return "unknown constraint"
	}
}

// ParamError reports which constraint a RoundedRectConfig violated.
type ParamError struct {
	Constraint Constraint
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("tooltip: invalid parameters: %s", e.Constraint)
}

// Is makes errors.Is(err, ErrInvalidParameters) hold for every ParamError.
func (e *ParamError) Is(target error) bool {
	return target == ErrInvalidParameters
}

// RoundedRectConfig describes a rounded rectangle skin texture.
//
// Width, Height and the border measurements are in logical pixels. The canvas
// is allocated at Width*ResolutionMultiplier × Height*ResolutionMultiplier so
// the caller can downsample it; the border measurements are not scaled.
type RoundedRectConfig struct {
	ResolutionMultiplier int `yaml:"resolution_multiplier"`
	Width                int `yaml:"width"`
	Height               int `yaml:"height"`
	BorderThickness      int `yaml:"border_thickness"`
	BorderRadius         int `yaml:"border_radius"`
	ShadowWidth          int `yaml:"shadow_width"`

	// Background holds 1 to 4 stops. Extra stops are ignored.
	Background []color.NRGBA `yaml:"-"`
	// Border holds 1 to 3 stops ordered outer to inner: with three stops the
	// band blends Border[2] at its inner edge to Border[0] at its outer edge.
	Border []color.NRGBA `yaml:"-"`

	ShadowStart float64 `yaml:"shadow_start"`
	ShadowEnd   float64 `yaml:"shadow_end"`
}

// Validate checks the configuration preconditions in a fixed order and returns
// a *ParamError for the first violation.
func (c RoundedRectConfig) Validate() error {
	switch {
	case len(c.Background) == 0:
		return &ParamError{ConstraintBackgroundStops}
	case len(c.Border) == 0:
		return &ParamError{ConstraintBorderStops}
	case c.BorderRadius < 1:
		return &ParamError{ConstraintRadius}
	case c.BorderThickness < 1:
		return &ParamError{ConstraintThickness}
	case c.BorderThickness+c.BorderRadius > c.Height/2,
		c.BorderThickness+c.BorderRadius > c.Width/2:
		return &ParamError{ConstraintFit}
	case c.ShadowWidth > c.BorderRadius:
		return &ParamError{ConstraintShadow}
	}
	return nil
}

// Canvas is the generated pixel buffer: row-major, origin top-left, 4 bytes
// per pixel in straight-alpha RGBA order. It is not modified after
// GenerateRoundedRect returns.
type Canvas struct {
	img *image.NRGBA
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Pix returns the raw pixel bytes (Width*Height*4). Callers must not modify it.
func (c *Canvas) Pix() []byte { return c.img.Pix }

// At returns the color of the pixel at (x, y).
func (c *Canvas) At(x, y int) color.NRGBA { return c.img.NRGBAAt(x, y) }

// Image returns the canvas as an image.Image for encoding or uploading.
func (c *Canvas) Image() *image.NRGBA { return c.img }

// GenerateRoundedRect rasterizes a rounded rectangle with a gradient fill, an
// optional inner shadow band and a (possibly graded) border. Pixels outside
// the rounded outline are fully transparent.
//
// All preconditions are checked before any allocation; on failure the
// returned error wraps ErrInvalidParameters and no canvas is produced.
func GenerateRoundedRect(cfg RoundedRectConfig) (*Canvas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	mult := max(cfg.ResolutionMultiplier, 1)
	r := newRasterizer(cfg, cfg.Width*mult, cfg.Height*mult)

	img := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	for y := 0; y < r.height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+r.width*4]
		for x := 0; x < r.width; x++ {
			c := r.pixel(x, y)
			i := x * 4
			row[i], row[i+1], row[i+2], row[i+3] = c.R, c.G, c.B, c.A
		}
	}

	Logger().Debug("generated rounded rectangle",
		"width", r.width, "height", r.height,
		"thickness", cfg.BorderThickness, "radius", cfg.BorderRadius,
		"elapsed", time.Since(start))
	return &Canvas{img: img}, nil
}

// rasterizer holds the per-generation constants used by every pixel.
type rasterizer struct {
	width, height int
	thickness     float64
	radius        float64
	shadow        float64
	inset         int // thickness + radius
	interior      Rect
	background    []color.NRGBA
	border        []color.NRGBA
	shadowStart   float64
	shadowEnd     float64
}

func newRasterizer(cfg RoundedRectConfig, width, height int) *rasterizer {
	inset := cfg.BorderThickness + cfg.BorderRadius
	bg := cfg.Background
	if len(bg) > 4 {
		bg = bg[:4]
	}
	return &rasterizer{
		width:     width,
		height:    height,
		thickness: float64(cfg.BorderThickness),
		radius:    float64(cfg.BorderRadius),
		shadow:    float64(cfg.ShadowWidth),
		inset:     inset,
		interior: Rect{
			X:      float64(inset),
			Y:      float64(inset),
			Width:  float64(width - 2*inset),
			Height: float64(height - 2*inset),
		},
		background:  bg,
		border:      cfg.Border,
		shadowStart: cfg.ShadowStart,
		shadowEnd:   cfg.ShadowEnd,
	}
}

// pixel computes the final color of (x, y).
func (r *rasterizer) pixel(x, y int) color.NRGBA {
	bg := r.backgroundAt(x, y)
	if r.interior.containsHalfOpen(float64(x), float64(y)) {
		return bg
	}

	reg := r.classify(x, y)
	if reg.kind == regionNone {
		return bg
	}

	d := math.Hypot(float64(x)-reg.origin.X, float64(y)-reg.origin.Y)
	switch {
	case d > r.radius+r.thickness+1:
		return transparent
	case d > r.radius+1:
		return r.borderAt(d)
	case d > r.radius-r.shadow+1:
		mod := (d - (r.radius - r.shadow)) / r.shadow
		return darken(bg, r.shadowEnd+(r.shadowStart-r.shadowEnd)*mod)
	default:
		return bg
	}
}

// backgroundAt evaluates the background gradient.
func (r *rasterizer) backgroundAt(x, y int) color.NRGBA {
	s := r.background
	tx := float64(x) / float64(r.width-1)
	ty := float64(y) / float64(r.height-1)
	switch len(s) {
	case 4:
		left := lerp8(s[0], s[1], ty)
		right := lerp8(s[2], s[3], ty)
		return lerp8(left, right, tx)
	case 3:
		// Two full-height blends mixed along x; not a three-point gradient.
		left := lerp8(s[0], s[1], ty)
		right := lerp8(s[1], s[2], ty)
		return lerp8(left, right, tx)
	case 2:
		return lerp8(s[0], s[1], tx)
	default:
		return s[0]
	}
}

// borderAt returns the border color at distance d from the arc origin.
func (r *rasterizer) borderAt(d float64) color.NRGBA {
	if len(r.border) > 2 {
		half := r.thickness / 2
		m := d - r.radius
		if m < half {
			return lerp8(r.border[2], r.border[1], m/half)
		}
		return lerp8(r.border[1], r.border[0], (m-half)/half)
	}
	return r.border[0]
}
