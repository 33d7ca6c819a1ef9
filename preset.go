package tooltip

import (
	"fmt"
	"strconv"
	"sync"
)

// PresetKey prefixes every stored preset key. A preset at index i stores its
// fields under PresetKey + i + field name, e.g. "TOOLTIP_TRIGGER_SAVE0Header".
const PresetKey = "TOOLTIP_TRIGGER_SAVE"

// Preset is a saved set of trigger text and styling.
type Preset struct {
	Header  string
	Content string

	HeaderSize   int
	ContentSize  int
	BorderWidth  int
	BorderRadius int

	PanelColor   Color
	HeaderColor  Color
	ContentColor Color
	BorderColor  Color

	ContentFont int
	HeaderFont  int
}

// DefaultPreset returns the values a preset has before anything is saved.
func DefaultPreset() Preset {
	s := DefaultStyle()
	return Preset{
		Header:       "Header",
		Content:      "Content",
		HeaderSize:   s.HeaderSize,
		ContentSize:  s.ContentSize,
		BorderWidth:  s.BorderWidth,
		BorderRadius: s.BorderRadius,
		PanelColor:   s.PanelColor,
		HeaderColor:  s.HeaderColor,
		ContentColor: s.ContentColor,
		BorderColor:  s.BorderColor,
	}
}

// PresetFromSettings captures the savable part of a trigger's settings.
func PresetFromSettings(s TriggerSettings) Preset {
	return Preset{
		Header:       s.Header,
		Content:      s.Content,
		HeaderSize:   s.HeaderSize,
		ContentSize:  s.ContentSize,
		BorderWidth:  s.BorderWidth,
		BorderRadius: s.BorderRadius,
		PanelColor:   s.PanelColor,
		HeaderColor:  s.HeaderColor,
		ContentColor: s.ContentColor,
		BorderColor:  s.BorderColor,
		ContentFont:  s.ContentFont,
		HeaderFont:   s.HeaderFont,
	}
}

// applyTo overwrites the preset's fields in s. Timing and fade settings are
// not part of a preset and are left alone.
func (p Preset) applyTo(s *TriggerSettings) {
	s.Header = p.Header
	s.Content = p.Content
	s.HeaderSize = p.HeaderSize
	s.ContentSize = p.ContentSize
	s.BorderWidth = p.BorderWidth
	s.BorderRadius = p.BorderRadius
	s.PanelColor = p.PanelColor
	s.HeaderColor = p.HeaderColor
	s.ContentColor = p.ContentColor
	s.BorderColor = p.BorderColor
	s.ContentFont = p.ContentFont
	s.HeaderFont = p.HeaderFont
}

// persister is implemented by stores that can flush to disk, such as
// FilePrefs.
type persister interface {
	Save() error
}

// PresetManager loads and saves presets in a Prefs store, caching each loaded
// index. It is safe for concurrent use.
type PresetManager struct {
	prefs Prefs

	mu    sync.Mutex
	cache map[int]Preset
}

// NewPresetManager creates a manager over prefs.
func NewPresetManager(prefs Prefs) *PresetManager {
	return &PresetManager{prefs: prefs, cache: make(map[int]Preset)}
}

// Prefs returns the backing store.
func (m *PresetManager) Prefs() Prefs { return m.prefs }

// Load returns the preset at index, from the cache when present, otherwise
// read from the store with DefaultPreset values for missing keys.
func (m *PresetManager) Load(index int) Preset {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.cache[index]; ok {
		return p
	}
	p := m.read(presetKey(index))
	m.cache[index] = p
	return p
}

// Save writes p at index, replacing any earlier preset there, and updates the
// cache. Stores that persist to disk are flushed.
func (m *PresetManager) Save(index int, p Preset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.write(presetKey(index), p)
	m.cache[index] = p
	if ps, ok := m.prefs.(persister); ok {
		if err := ps.Save(); err != nil {
			return fmt.Errorf("tooltip: save preset %d: %w", index, err)
		}
	}
	return nil
}

// Invalidate drops every cached preset so the next Load reads the store.
func (m *PresetManager) Invalidate() {
	m.mu.Lock()
	clear(m.cache)
	m.mu.Unlock()
	Logger().Debug("preset cache invalidated")
}

func presetKey(index int) string {
	return PresetKey + strconv.Itoa(index)
}

func (m *PresetManager) read(key string) Preset {
	d := DefaultPreset()
	return Preset{
		Header:       m.prefs.GetString(key+"Header", d.Header),
		Content:      m.prefs.GetString(key+"Content", d.Content),
		HeaderSize:   m.prefs.GetInt(key+"HeaderSize", d.HeaderSize),
		ContentSize:  m.prefs.GetInt(key+"ContentSize", d.ContentSize),
		BorderWidth:  m.prefs.GetInt(key+"BorderWidth", d.BorderWidth),
		BorderRadius: m.prefs.GetInt(key+"BorderRadius", d.BorderRadius),
		ContentFont:  m.prefs.GetInt(key+"ContentFont", d.ContentFont),
		HeaderFont:   m.prefs.GetInt(key+"HeaderFont", d.HeaderFont),
		PanelColor:   m.readColor(key+"PanelColor", d.PanelColor),
		BorderColor:  m.readColor(key+"BorderColor", d.BorderColor),
		ContentColor: m.readColor(key+"ContentColor", d.ContentColor),
		HeaderColor:  m.readColor(key+"HeaderColor", d.HeaderColor),
	}
}

func (m *PresetManager) write(key string, p Preset) {
	m.prefs.SetString(key+"Header", p.Header)
	m.prefs.SetString(key+"Content", p.Content)
	m.prefs.SetInt(key+"HeaderSize", p.HeaderSize)
	m.prefs.SetInt(key+"ContentSize", p.ContentSize)
	m.prefs.SetInt(key+"BorderWidth", p.BorderWidth)
	m.prefs.SetInt(key+"BorderRadius", p.BorderRadius)
	m.prefs.SetInt(key+"ContentFont", p.ContentFont)
	m.prefs.SetInt(key+"HeaderFont", p.HeaderFont)
	m.writeColor(key+"PanelColor", p.PanelColor)
	m.writeColor(key+"BorderColor", p.BorderColor)
	m.writeColor(key+"ContentColor", p.ContentColor)
	m.writeColor(key+"HeaderColor", p.HeaderColor)
}

func (m *PresetManager) readColor(key string, def Color) Color {
	return Color{
		R: m.prefs.GetFloat(key+".r", def.R),
		G: m.prefs.GetFloat(key+".g", def.G),
		B: m.prefs.GetFloat(key+".b", def.B),
		A: m.prefs.GetFloat(key+".a", def.A),
	}
}

func (m *PresetManager) writeColor(key string, c Color) {
	m.prefs.SetFloat(key+".r", c.R)
	m.prefs.SetFloat(key+".g", c.G)
	m.prefs.SetFloat(key+".b", c.B)
	m.prefs.SetFloat(key+".a", c.A)
}
