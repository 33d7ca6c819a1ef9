package tooltip

// Authoring ranges for trigger settings.
const (
	MinTextSize     = 4
	MaxTextSize     = 48
	MaxBorderWidth  = 6
	MaxBorderRadius = 30
	MaxPopupDelay   = 4.0
)

// TriggerSettings is everything a hover trigger passes to the tooltip when
// the pointer enters it.
type TriggerSettings struct {
	Header  string `yaml:"header"`
	Content string `yaml:"content"`

	HeaderSize  int `yaml:"header_size"`
	ContentSize int `yaml:"content_size"`

	PanelColor   Color `yaml:"panel_color"`
	HeaderColor  Color `yaml:"header_color"`
	ContentColor Color `yaml:"content_color"`
	BorderColor  Color `yaml:"border_color"`

	BorderWidth  int `yaml:"border_width"`
	BorderRadius int `yaml:"border_radius"`

	HeaderFont  int `yaml:"header_font"`
	ContentFont int `yaml:"content_font"`

	FadeCurve  Curve   `yaml:"-"`
	FadeIn     bool    `yaml:"fade_in"`
	FadeOut    bool    `yaml:"fade_out"`
	PopupDelay float64 `yaml:"popup_delay"`
}

// DefaultTriggerSettings returns the settings a new trigger starts with.
func DefaultTriggerSettings() TriggerSettings {
	s := DefaultStyle()
	return TriggerSettings{
		Header:       "Header",
		Content:      "Content",
		HeaderSize:   s.HeaderSize,
		ContentSize:  s.ContentSize,
		PanelColor:   s.PanelColor,
		HeaderColor:  s.HeaderColor,
		ContentColor: s.ContentColor,
		BorderColor:  s.BorderColor,
		BorderWidth:  s.BorderWidth,
		BorderRadius: s.BorderRadius,
		FadeCurve:    EaseInOut,
		FadeIn:       true,
		PopupDelay:   DefaultPopupDelay,
	}
}

// Clamp limits every field to its authoring range. fontCount is the number
// of selectable fonts; font indices outside it reset to 0.
func (s *TriggerSettings) Clamp(fontCount int) {
	s.HeaderSize = clampInt(s.HeaderSize, MinTextSize, MaxTextSize)
	s.ContentSize = clampInt(s.ContentSize, MinTextSize, MaxTextSize)
	s.BorderWidth = clampInt(s.BorderWidth, 0, MaxBorderWidth)
	s.BorderRadius = clampInt(s.BorderRadius, 0, MaxBorderRadius)
	s.PopupDelay = min(max(s.PopupDelay, 0), MaxPopupDelay)
	if s.HeaderFont < 0 || s.HeaderFont >= fontCount {
		s.HeaderFont = 0
	}
	if s.ContentFont < 0 || s.ContentFont >= fontCount {
		s.ContentFont = 0
	}
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// Style returns the visual part of the settings.
func (s TriggerSettings) Style() Style {
	return Style{
		PanelColor:   s.PanelColor,
		BorderColor:  s.BorderColor,
		HeaderColor:  s.HeaderColor,
		ContentColor: s.ContentColor,
		BorderWidth:  s.BorderWidth,
		BorderRadius: s.BorderRadius,
		HeaderSize:   s.HeaderSize,
		ContentSize:  s.ContentSize,
		HeaderFont:   s.HeaderFont,
		ContentFont:  s.ContentFont,
	}
}

// Trigger is a hoverable screen region that shows the system's tooltip with
// its settings while the pointer is over it.
type Trigger struct {
	Name     string
	Bounds   Rect
	Settings TriggerSettings

	sys *System
}

// PointerEnter configures the shared tooltip with the trigger's settings and
// shows it.
func (tr *Trigger) PointerEnter() {
	t := tr.sys.tooltip
	s := tr.Settings
	t.SetStyle(s.Style())
	t.SetContent(s.Header, s.Content)
	t.SetPopupDelay(s.PopupDelay)
	t.SetFade(s.FadeCurve, s.FadeIn, s.FadeOut)
	t.Show()
	Logger().Debug("tooltip trigger entered", "trigger", tr.Name)
}

// PointerExit hides the shared tooltip.
func (tr *Trigger) PointerExit() {
	tr.sys.tooltip.Hide()
	Logger().Debug("tooltip trigger exited", "trigger", tr.Name)
}

// ApplyPreset copies a stored preset into the trigger's settings.
func (tr *Trigger) ApplyPreset(p Preset) {
	p.applyTo(&tr.Settings)
}
