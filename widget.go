package tooltip

const (
	// textMargin is the padding between the panel edge and its text, and
	// between the header and the content.
	textMargin = 10

	// previewWidth and previewHeight are the panel size before it is fitted
	// to its text.
	previewWidth  = 400
	previewHeight = 100

	// moveThreshold is the per-frame pointer travel, in pixels, that counts
	// as movement and restarts the popup delay.
	moveThreshold = 0.1

	// DefaultPopupDelay is how long the pointer must rest, in seconds, before
	// a tooltip appears.
	DefaultPopupDelay = 1.0
)

// Style holds the visual settings of a tooltip panel.
type Style struct {
	PanelColor   Color
	BorderColor  Color
	HeaderColor  Color
	ContentColor Color

	BorderWidth  int
	BorderRadius int
	HeaderSize   int
	ContentSize  int

	// HeaderFont and ContentFont index into the tooltip's FontRegistry.
	HeaderFont  int
	ContentFont int
}

// DefaultStyle returns a light grey panel with a white border and black text.
func DefaultStyle() Style {
	return Style{
		PanelColor:   Color{0.8, 0.8, 0.8, 1},
		BorderColor:  ColorWhite,
		HeaderColor:  ColorBlack,
		ContentColor: ColorBlack,
		BorderWidth:  3,
		BorderRadius: 10,
		HeaderSize:   32,
		ContentSize:  30,
	}
}

// PointerState is one frame's pointer sample in screen coordinates.
type PointerState struct {
	X, Y    float64
	Buttons [3]bool // indexed by MouseButton
}

// Pressed reports whether any button is held.
func (p PointerState) Pressed() bool {
	return p.Buttons[MouseButtonLeft] || p.Buttons[MouseButtonRight] || p.Buttons[MouseButtonMiddle]
}

// Pos returns the pointer position.
func (p PointerState) Pos() Vec2 { return Vec2{p.X, p.Y} }

// Layout is the computed placement of a tooltip and its wrapped text.
type Layout struct {
	Panel        Rect
	Header       Rect
	Content      Rect
	HeaderLines  []string
	ContentLines []string
	HeaderFont   Font
	ContentFont  Font
}

// Tooltip is a popup panel that follows the pointer. It appears once the
// pointer has rested for the popup delay after Show, optionally fading in,
// and disappears on Hide, optionally fading out. Any pointer movement hides
// it again until the pointer rests.
//
// Tooltip is not safe for concurrent use.
type Tooltip struct {
	style      Style
	header     string
	content    string
	popupDelay float64
	fonts      *FontRegistry

	fadeIn  bool
	fadeOut bool
	fade    *Fade

	shown      bool // between Show and Hide
	appeared   bool // drawn (possibly fading)
	waiting    bool // counting the popup delay
	timer      float64
	suppressed bool // a button is held this frame

	pointer     Vec2
	havePointer bool
}

// NewTooltip creates a hidden tooltip with DefaultStyle. A nil registry uses
// a registry with the default font names and no fonts loaded.
func NewTooltip(fonts *FontRegistry) *Tooltip {
	if fonts == nil {
		fonts = NewFontRegistry()
	}
	return &Tooltip{
		style:      DefaultStyle(),
		popupDelay: DefaultPopupDelay,
		fonts:      fonts,
		fadeIn:     true,
		fade:       NewFade(EaseInOut),
	}
}

// SetColors sets the panel, border and text colors.
func (t *Tooltip) SetColors(panel, border, content, header Color) {
	t.style.PanelColor = panel
	t.style.BorderColor = border
	t.style.ContentColor = content
	t.style.HeaderColor = header
}

// SetStyle replaces the whole style.
func (t *Tooltip) SetStyle(s Style) { t.style = s }

// Style returns the current style.
func (t *Tooltip) Style() Style { return t.style }

// SetContent sets the header and body text. An empty header is not drawn.
func (t *Tooltip) SetContent(header, content string) {
	t.header = header
	t.content = content
}

// Content returns the header and body text.
func (t *Tooltip) Content() (header, content string) { return t.header, t.content }

// SetPopupDelay sets how long the pointer must rest before the popup appears.
func (t *Tooltip) SetPopupDelay(seconds float64) {
	t.popupDelay = max(seconds, 0)
}

// SetFade configures the fade curve and which transitions animate. A nil
// curve uses EaseInOut.
func (t *Tooltip) SetFade(curve Curve, fadeIn, fadeOut bool) {
	t.fade.Curve = curve
	t.fadeIn = fadeIn
	t.fadeOut = fadeOut
}

// Show activates the tooltip. It appears after the popup delay.
func (t *Tooltip) Show() {
	t.shown = true
	t.appeared = false
	t.waiting = true
	t.timer = 0
	t.fade.Set(0)
}

// Hide deactivates the tooltip, fading it out when fade out is enabled.
func (t *Tooltip) Hide() {
	t.shown = false
	t.waiting = false
	if t.appeared && t.fadeOut {
		t.fade.FadeOut()
		return
	}
	t.appeared = false
	t.fade.Set(0)
}

// Active reports whether the tooltip is between Show and Hide.
func (t *Tooltip) Active() bool { return t.shown }

// Visible reports whether the tooltip is drawn this frame.
func (t *Tooltip) Visible() bool {
	return t.appeared && !t.suppressed
}

// Alpha returns the current fade alpha.
func (t *Tooltip) Alpha() float64 { return t.fade.Alpha() }

// Update advances timers and the fade by dt seconds using this frame's
// pointer sample.
func (t *Tooltip) Update(dt float64, p PointerState) {
	pos := p.Pos()
	moved := t.havePointer && pos.Sub(t.pointer).Len() >= moveThreshold
	t.pointer = pos
	t.havePointer = true

	t.fade.Update(dt)
	t.suppressed = p.Pressed()

	if !t.shown {
		if t.appeared && t.fade.Done() {
			t.appeared = false
		}
		return
	}

	// A held button hides the popup and ignores movement; the delay keeps
	// counting.
	if moved && !t.suppressed {
		t.appeared = false
		t.waiting = true
		t.timer = 0
		t.fade.Set(0)
		return
	}

	if t.waiting {
		t.timer += dt
		if t.timer >= t.popupDelay {
			t.waiting = false
			t.appear()
		}
	}
}

func (t *Tooltip) appear() {
	t.appeared = true
	if t.fadeIn {
		t.fade.Set(0)
		t.fade.FadeIn()
		return
	}
	t.fade.Set(1)
}

// Layout computes where the panel and its text go for a screen of the given
// size. The panel starts 400×100 near the pointer, grows to fit the wrapped
// text, narrows when both lines fit in less, and is kept on screen.
func (t *Tooltip) Layout(screen Vec2) Layout {
	headerFont := t.fonts.Sized(t.style.HeaderFont, float64(t.style.HeaderSize))
	contentFont := t.fonts.Sized(t.style.ContentFont, float64(t.style.ContentSize))

	mx, my := t.pointer.X, t.pointer.Y
	if mx == 0 {
		mx = 1
	}
	panel := Rect{
		X:      mx + screen.X/mx - previewWidth*0.5,
		Y:      my - previewHeight*0.5,
		Width:  previewWidth,
		Height: previewHeight,
	}

	// Narrow the panel when both unwrapped blocks fit with margins.
	hw, _ := measureBlock(headerFont, t.header, 0)
	cw, _ := measureBlock(contentFont, t.content, 0)
	if hw+textMargin*2 < panel.Width && cw+textMargin*2 < panel.Width {
		panel.Width = max(hw, cw) + textMargin*2
	}

	wrap := panel.Width - textMargin*2
	headerLines := wrapLines(headerFont, t.header, wrap)
	contentLines := wrapLines(contentFont, t.content, wrap)
	_, hh := measureBlock(headerFont, t.header, wrap)
	_, ch := measureBlock(contentFont, t.content, wrap)
	panel.Height = textMargin*4 + hh + ch

	panel = clampToScreen(panel, screen)

	return Layout{
		Panel:        panel,
		Header:       Rect{X: panel.X + textMargin, Y: panel.Y + textMargin, Width: wrap, Height: hh},
		Content:      Rect{X: panel.X + textMargin, Y: panel.Y + hh + textMargin*2, Width: wrap, Height: ch},
		HeaderLines:  headerLines,
		ContentLines: contentLines,
		HeaderFont:   headerFont,
		ContentFont:  contentFont,
	}
}

// clampToScreen shifts r so it lies within [0, screen], preferring the
// top-left edge when r is larger than the screen.
func clampToScreen(r Rect, screen Vec2) Rect {
	if r.MaxX() > screen.X {
		r.X = screen.X - r.Width
	}
	if r.MaxY() > screen.Y {
		r.Y = screen.Y - r.Height
	}
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	return r
}

// Draw appends the tooltip's commands to dl when it is visible. Colors are
// multiplied by the fade alpha.
func (t *Tooltip) Draw(screen Vec2, dl *DrawList) {
	if !t.Visible() {
		return
	}
	a := t.fade.Alpha()
	l := t.Layout(screen)
	s := t.style

	dl.AddPanel(l.Panel, s.PanelColor.WithAlpha(a), float64(s.BorderRadius))
	if s.BorderWidth > 0 {
		dl.AddBorder(l.Panel, s.BorderColor.WithAlpha(a), float64(s.BorderWidth), float64(s.BorderRadius))
	}
	if len(l.HeaderLines) > 0 {
		dl.AddText(l.Header, s.HeaderColor.WithAlpha(a), l.HeaderLines, l.HeaderFont, float64(s.HeaderSize), true)
	}
	if len(l.ContentLines) > 0 {
		dl.AddText(l.Content, s.ContentColor.WithAlpha(a), l.ContentLines, l.ContentFont, float64(s.ContentSize), false)
	}
}
