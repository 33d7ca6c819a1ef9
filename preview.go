package tooltip

// PreviewMode selects which half of a fade preview plays.
type PreviewMode uint8

const (
	PreviewNone PreviewMode = iota
	PreviewIn               // fade in only
	PreviewOut              // fade out only
	PreviewBoth             // fade in, then fade out
)

// previewLength is how long each half of a preview runs, in seconds. The
// first second of a fade in holds at alpha 0 and the first second of a fade
// out holds at full alpha, so each half shows a one-second lead-in.
const previewLength = 2.0

// FadePreview replays a trigger's fade settings for authoring tools, tinting
// colors with the curve so a preview swatch can show the animation.
type FadePreview struct {
	Curve Curve

	mode      PreviewMode
	fadingIn  bool
	fadingOut bool
	inTimer   float64
	outTimer  float64
}

// Start resets the timers and picks a mode from the trigger's fade flags.
// With neither flag set the fade in is previewed.
func (p *FadePreview) Start(fadeIn, fadeOut bool) {
	p.inTimer, p.outTimer = 0, 0
	switch {
	case fadeIn && fadeOut:
		p.mode, p.fadingIn, p.fadingOut = PreviewBoth, true, true
	case fadeOut:
		p.mode, p.fadingIn, p.fadingOut = PreviewOut, false, true
	default:
		p.mode, p.fadingIn, p.fadingOut = PreviewIn, true, false
	}
}

// Update advances the running preview by dt seconds.
func (p *FadePreview) Update(dt float64) {
	switch p.mode {
	case PreviewIn:
		if p.inTimer < previewLength {
			p.inTimer += dt
		} else {
			p.stop()
		}
	case PreviewOut:
		if p.outTimer < previewLength {
			p.outTimer += dt
		} else {
			p.stop()
		}
	case PreviewBoth:
		if p.inTimer < previewLength {
			p.inTimer += dt
			return
		}
		p.fadingIn = false
		if p.outTimer < previewLength {
			p.outTimer += dt
		} else {
			p.stop()
		}
	}
}

func (p *FadePreview) stop() {
	p.mode = PreviewNone
	p.fadingIn = false
	p.fadingOut = false
}

// Active reports whether a preview is running.
func (p *FadePreview) Active() bool { return p.mode != PreviewNone }

// Mode returns the running preview mode.
func (p *FadePreview) Mode() PreviewMode { return p.mode }

// Alpha returns the preview's alpha multiplier, 1 when idle.
func (p *FadePreview) Alpha() float64 {
	switch {
	case p.fadingIn:
		return p.Curve.Eval(p.inTimer - 1)
	case p.fadingOut:
		return p.Curve.Eval(previewLength - p.outTimer)
	default:
		return 1
	}
}

// Apply returns c with its alpha scaled by the preview alpha.
func (p *FadePreview) Apply(c Color) Color {
	return c.WithAlpha(p.Alpha())
}
