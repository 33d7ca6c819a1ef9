package tooltip

import (
	"path/filepath"
	"testing"
)

func TestPresetManager_Defaults(t *testing.T) {
	m := NewPresetManager(NewMemoryPrefs())
	p := m.Load(0)
	want := Preset{
		Header:       "Header",
		Content:      "Content",
		HeaderSize:   32,
		ContentSize:  30,
		BorderWidth:  3,
		BorderRadius: 10,
		PanelColor:   Color{0.8, 0.8, 0.8, 1},
		HeaderColor:  Color{0, 0, 0, 1},
		ContentColor: Color{0, 0, 0, 1},
		BorderColor:  Color{1, 1, 1, 1},
	}
	if p != want {
		t.Errorf("defaults = %+v", p)
	}
}

func TestPresetManager_SaveLoad(t *testing.T) {
	prefs := NewMemoryPrefs()
	m := NewPresetManager(prefs)
	p := DefaultPreset()
	p.Header = "Saved"
	p.BorderRadius = 4
	p.PanelColor = Color{0.1, 0.2, 0.3, 0.4}
	p.HeaderFont = 2
	if err := m.Save(1, p); err != nil {
		t.Fatal(err)
	}
	if got := prefs.GetString("TOOLTIP_TRIGGER_SAVE1Header", ""); got != "Saved" {
		t.Errorf("stored header = %q", got)
	}
	if got := prefs.GetFloat("TOOLTIP_TRIGGER_SAVE1PanelColor.b", 0); got != 0.3 {
		t.Errorf("stored panel blue = %v", got)
	}

	fresh := NewPresetManager(prefs)
	if got := fresh.Load(1); got != p {
		t.Errorf("loaded = %+v, want %+v", got, p)
	}
	if got := fresh.Load(0); got != DefaultPreset() {
		t.Error("other index affected")
	}

	p.Header = "Overwritten"
	if err := m.Save(1, p); err != nil {
		t.Fatal(err)
	}
	if m.Load(1).Header != "Overwritten" {
		t.Error("save did not overwrite")
	}
}

func TestPresetManager_CacheAndInvalidate(t *testing.T) {
	prefs := NewMemoryPrefs()
	m := NewPresetManager(prefs)
	if m.Load(0).Header != "Header" {
		t.Fatal("unexpected default")
	}
	prefs.SetString("TOOLTIP_TRIGGER_SAVE0Header", "Changed")
	if m.Load(0).Header != "Header" {
		t.Error("cache bypassed")
	}
	m.Invalidate()
	if m.Load(0).Header != "Changed" {
		t.Error("invalidate did not reload")
	}
}

func TestPresetManager_FilePrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	prefs, err := OpenFilePrefs(path)
	if err != nil {
		t.Fatal(err)
	}
	p := DefaultPreset()
	p.Content = "On disk"
	p.BorderColor = Color{1, 0.5, 0.25, 1}
	if err := NewPresetManager(prefs).Save(3, p); err != nil {
		t.Fatal(err)
	}

	reopened, err := OpenFilePrefs(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := NewPresetManager(reopened).Load(3); got != p {
		t.Errorf("loaded = %+v, want %+v", got, p)
	}
}

func TestTrigger_ApplyPreset(t *testing.T) {
	s := newTestSystem()
	settings := DefaultTriggerSettings()
	settings.PopupDelay = 2
	tr := s.AddTrigger("a", Rect{}, settings)

	p := DefaultPreset()
	p.Header = "From preset"
	p.ContentSize = 12
	tr.ApplyPreset(p)
	if tr.Settings.Header != "From preset" || tr.Settings.ContentSize != 12 {
		t.Errorf("settings = %+v", tr.Settings)
	}
	if tr.Settings.PopupDelay != 2 {
		t.Error("preset changed the popup delay")
	}
	if got := PresetFromSettings(tr.Settings); got != p {
		t.Errorf("PresetFromSettings = %+v", got)
	}
}
