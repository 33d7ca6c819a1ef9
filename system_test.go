package tooltip

import "testing"

func newTestSystem() *System {
	return NewSystem(nil, Vec2{800, 600})
}

func quickSettings(header, content string) TriggerSettings {
	s := DefaultTriggerSettings()
	s.Header, s.Content = header, content
	s.FadeIn = false
	s.PopupDelay = 0.5
	return s
}

func TestSystem_EnterShowsTriggerContent(t *testing.T) {
	s := newTestSystem()
	s.AddTrigger("a", Rect{0, 0, 100, 100}, quickSettings("A", "first"))

	s.Update(0.25, at(50, 50))
	if s.Hovered() == nil || s.Hovered().Name != "a" {
		t.Fatalf("hovered = %v", s.Hovered())
	}
	if !s.Tooltip().Active() {
		t.Fatal("tooltip not shown on enter")
	}
	if h, c := s.Tooltip().Content(); h != "A" || c != "first" {
		t.Errorf("content = %q %q", h, c)
	}
	s.Update(0.25, at(50, 50))
	if s.Draw().Len() == 0 {
		t.Error("nothing drawn after the delay")
	}

	s.Update(0.25, at(500, 500))
	if s.Hovered() != nil || s.Tooltip().Active() {
		t.Error("tooltip still shown after leaving")
	}
	if s.Draw().Len() != 0 {
		t.Error("drew after leaving")
	}
}

func TestSystem_SwitchTriggers(t *testing.T) {
	s := newTestSystem()
	s.AddTrigger("a", Rect{0, 0, 100, 100}, quickSettings("A", "first"))
	s.AddTrigger("b", Rect{200, 0, 100, 100}, quickSettings("B", "second"))

	var entered, left []string
	s.OnPointerEnter(func(ctx HoverContext) { entered = append(entered, ctx.Trigger.Name) })
	s.OnPointerLeave(func(ctx HoverContext) { left = append(left, ctx.Trigger.Name) })

	s.Update(0.1, at(50, 50))
	s.Update(0.1, at(250, 50))
	if h, _ := s.Tooltip().Content(); h != "B" {
		t.Errorf("header = %q", h)
	}
	if len(entered) != 2 || entered[0] != "a" || entered[1] != "b" {
		t.Errorf("entered = %v", entered)
	}
	if len(left) != 1 || left[0] != "a" {
		t.Errorf("left = %v", left)
	}
}

func TestSystem_TopmostTriggerWins(t *testing.T) {
	s := newTestSystem()
	s.AddTrigger("under", Rect{0, 0, 100, 100}, quickSettings("under", ""))
	s.AddTrigger("over", Rect{50, 50, 100, 100}, quickSettings("over", ""))
	s.Update(0.1, at(75, 75))
	if s.Hovered().Name != "over" {
		t.Errorf("hovered = %s", s.Hovered().Name)
	}
}

func TestSystem_CallbackRemove(t *testing.T) {
	s := newTestSystem()
	s.AddTrigger("a", Rect{0, 0, 100, 100}, quickSettings("A", ""))
	calls := 0
	h := s.OnPointerEnter(func(HoverContext) { calls++ })
	h.Remove()
	s.Update(0.1, at(50, 50))
	if calls != 0 {
		t.Errorf("removed callback fired %d times", calls)
	}
}

func TestSystem_RemoveHoveredTrigger(t *testing.T) {
	s := newTestSystem()
	tr := s.AddTrigger("a", Rect{0, 0, 100, 100}, quickSettings("A", ""))
	s.Update(0.1, at(50, 50))
	s.RemoveTrigger(tr)
	if s.Hovered() != nil || s.Tooltip().Active() {
		t.Error("removed trigger still hovered")
	}
	if len(s.Triggers()) != 0 || s.Trigger("a") != nil {
		t.Error("trigger still registered")
	}
}

func TestSystem_AddTriggerClampsSettings(t *testing.T) {
	s := newTestSystem()
	set := DefaultTriggerSettings()
	set.HeaderSize = 100
	set.ContentSize = 1
	set.BorderWidth = -2
	set.BorderRadius = 99
	set.PopupDelay = 10
	set.HeaderFont = 42
	tr := s.AddTrigger("a", Rect{}, set)

	got := tr.Settings
	if got.HeaderSize != MaxTextSize || got.ContentSize != MinTextSize {
		t.Errorf("sizes = %d %d", got.HeaderSize, got.ContentSize)
	}
	if got.BorderWidth != 0 || got.BorderRadius != MaxBorderRadius {
		t.Errorf("border = %d %d", got.BorderWidth, got.BorderRadius)
	}
	if got.PopupDelay != MaxPopupDelay || got.HeaderFont != 0 {
		t.Errorf("delay %v font %d", got.PopupDelay, got.HeaderFont)
	}
}

func TestSystem_InjectOverridesPointer(t *testing.T) {
	s := newTestSystem()
	s.AddTrigger("a", Rect{0, 0, 100, 100}, quickSettings("A", ""))
	s.InjectMove(50, 50)
	s.Update(0.1, at(500, 500))
	if s.Hovered() == nil {
		t.Fatal("injected sample ignored")
	}
	s.Update(0.1, at(500, 500))
	if s.Hovered() != nil {
		t.Error("real pointer ignored once the queue drained")
	}
}

func TestSystem_InjectPressSuppresses(t *testing.T) {
	s := newTestSystem()
	s.AddTrigger("a", Rect{0, 0, 100, 100}, quickSettings("A", ""))
	s.InjectHold(50, 50, 3)
	s.InjectPress(50, 50)
	for range 4 {
		s.Update(0.25, PointerState{})
	}
	if s.Tooltip().Visible() {
		t.Error("visible while pressed")
	}
	s.InjectRelease(50, 50)
	s.Update(0.25, PointerState{})
	if !s.Tooltip().Visible() {
		t.Error("not visible after release")
	}
}

func TestSystem_Snapshot(t *testing.T) {
	s := newTestSystem()
	s.SetContent("H", "C")
	s.Tooltip().SetPopupDelay(0)
	s.Tooltip().SetFade(nil, false, false)
	s.Show()
	s.Update(0.1, at(100, 100))

	s.Snapshot("open")
	dl := s.Draw()
	snap := s.SnapshotFor("open")
	if snap == nil || snap.Len() != dl.Len() {
		t.Fatalf("snapshot = %v", snap)
	}
	s.Hide()
	s.Draw()
	if snap.Len() == 0 {
		t.Error("snapshot shares the live draw list")
	}
	if s.SnapshotFor("missing") != nil {
		t.Error("unknown label returned a snapshot")
	}
}

func TestSystem_SetColors(t *testing.T) {
	s := newTestSystem()
	c := Color{0.1, 0.2, 0.3, 1}
	s.SetColors(c, c, c, c)
	if s.Tooltip().Style().PanelColor != c {
		t.Error("colors not forwarded")
	}
}
