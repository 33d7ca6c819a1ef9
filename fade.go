package tooltip

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FadeDuration is the length of a full fade in seconds.
const FadeDuration = 1.0

// Curve is an easing function mapping t in [0, 1] to an alpha in [0, 1].
// Inputs outside [0, 1] are clamped before evaluation, so a curve behaves like
// a keyed animation curve with clamped ends.
type Curve func(t float64) float64

// EaseInOut is the default fade curve: a cubic ease with zero slope at both
// ends (3t² - 2t³).
func EaseInOut(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

// Linear returns t clamped to [0, 1].
func Linear(t float64) float64 {
	return clamp01(t)
}

// CurveFromEase adapts a gween easing function to a Curve.
func CurveFromEase(fn ease.TweenFunc) Curve {
	return func(t float64) float64 {
		return float64(fn(float32(clamp01(t)), 0, 1, 1))
	}
}

// Eval evaluates the curve with clamped input and output. A nil curve
// evaluates as EaseInOut.
func (c Curve) Eval(t float64) float64 {
	if c == nil {
		return EaseInOut(t)
	}
	return clamp01(c(clamp01(t)))
}

// forward adapts the curve to gween's (t, begin, change, duration) form.
func (c Curve) forward() ease.TweenFunc {
	return func(t, b, ch, d float32) float32 {
		if d <= 0 {
			return b + ch
		}
		return b + ch*float32(c.Eval(float64(t/d)))
	}
}

// reverse plays the curve backwards, so a fade out mirrors the fade in.
func (c Curve) reverse() ease.TweenFunc {
	return func(t, b, ch, d float32) float32 {
		if d <= 0 {
			return b + ch
		}
		return b + ch*float32(1-c.Eval(1-float64(t/d)))
	}
}

// Fade animates an alpha value between 0 and 1 with a gween tween. The caller
// drives it with Update each frame; there is no global animation manager.
type Fade struct {
	Curve Curve

	tween *gween.Tween
	alpha float64
	done  bool
}

// NewFade returns a fade resting at alpha 0.
func NewFade(curve Curve) *Fade {
	return &Fade{Curve: curve, done: true}
}

// FadeIn starts animating from the current alpha up to 1. The duration is
// shortened in proportion to how visible the value already is.
func (f *Fade) FadeIn() {
	f.start(1, f.Curve.forward())
}

// FadeOut starts animating from the current alpha down to 0, playing the curve
// in reverse.
func (f *Fade) FadeOut() {
	f.start(0, f.Curve.reverse())
}

// Set jumps to alpha a and stops any running animation.
func (f *Fade) Set(a float64) {
	f.alpha = clamp01(a)
	f.tween = nil
	f.done = true
}

func (f *Fade) start(to float64, fn ease.TweenFunc) {
	dist := to - f.alpha
	if dist < 0 {
		dist = -dist
	}
	if dist == 0 {
		f.Set(to)
		return
	}
	f.tween = gween.New(float32(f.alpha), float32(to), float32(FadeDuration*dist), fn)
	f.done = false
}

// Update advances the fade by dt seconds and returns the new alpha and
// whether the animation has finished.
func (f *Fade) Update(dt float64) (float64, bool) {
	if f.done || f.tween == nil {
		return f.alpha, true
	}
	val, finished := f.tween.Update(float32(dt))
	f.alpha = clamp01(float64(val))
	if finished {
		f.done = true
		f.tween = nil
	}
	return f.alpha, f.done
}

// Alpha returns the current alpha.
func (f *Fade) Alpha() float64 { return f.alpha }

// Done reports whether no animation is running.
func (f *Fade) Done() bool { return f.done }
