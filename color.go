package tooltip

import "image/color"

var (
	transparent = color.NRGBA{}
	opaqueBlack = color.NRGBA{A: 255}
)

// lerp8 interpolates two 8-bit colors channel by channel. t is clamped to
// [0, 1] and each channel is truncated toward zero, so lerp8(a, b, 0) == a
// and lerp8(a, b, 1) == b exactly.
func lerp8(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	return color.NRGBA{
		R: lerpByte(a.R, b.R, t),
		G: lerpByte(a.G, b.G, t),
		B: lerpByte(a.B, b.B, t),
		A: lerpByte(a.A, b.A, t),
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// darken moves c toward opaque black by intensity.
func darken(c color.NRGBA, intensity float64) color.NRGBA {
	return lerp8(c, opaqueBlack, intensity)
}
