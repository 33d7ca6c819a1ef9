package tooltip

// System owns the shared tooltip and the triggers that show it. Hosts create
// one System and drive it with Update and Draw each frame; nothing is global.
type System struct {
	tooltip  *Tooltip
	fonts    *FontRegistry
	triggers []*Trigger
	hover    *Trigger
	screen   Vec2

	handlers    handlerRegistry
	injectQueue []PointerState
	lastInject  PointerState
	injected    bool
	script      *Script

	drawList      DrawList
	snapshotQueue []string
	snapshots     map[string]*DrawList
}

// NewSystem creates a system for a screen of the given size. A nil registry
// uses the default font names with no fonts loaded.
func NewSystem(fonts *FontRegistry, screen Vec2) *System {
	if fonts == nil {
		fonts = NewFontRegistry()
	}
	return &System{
		tooltip:   NewTooltip(fonts),
		fonts:     fonts,
		screen:    screen,
		snapshots: make(map[string]*DrawList),
	}
}

// Tooltip returns the shared tooltip.
func (s *System) Tooltip() *Tooltip { return s.tooltip }

// Fonts returns the font registry.
func (s *System) Fonts() *FontRegistry { return s.fonts }

// SetScreenSize sets the screen size used for layout.
func (s *System) SetScreenSize(screen Vec2) { s.screen = screen }

// ScreenSize returns the screen size used for layout.
func (s *System) ScreenSize() Vec2 { return s.screen }

// AddTrigger registers a hoverable region. Settings are clamped to their
// authoring ranges. Later triggers are hit-tested first.
func (s *System) AddTrigger(name string, bounds Rect, settings TriggerSettings) *Trigger {
	settings.Clamp(len(s.fonts.Names()))
	tr := &Trigger{Name: name, Bounds: bounds, Settings: settings, sys: s}
	s.triggers = append(s.triggers, tr)
	return tr
}

// RemoveTrigger unregisters tr, hiding the tooltip if tr was hovered.
func (s *System) RemoveTrigger(tr *Trigger) {
	for i, t := range s.triggers {
		if t == tr {
			s.triggers = append(s.triggers[:i], s.triggers[i+1:]...)
			break
		}
	}
	if s.hover == tr {
		s.hover = nil
		tr.PointerExit()
	}
}

// Triggers returns the registered triggers. The returned slice MUST NOT be
// mutated.
func (s *System) Triggers() []*Trigger { return s.triggers }

// Trigger returns the first trigger with the given name, or nil.
func (s *System) Trigger(name string) *Trigger {
	for _, t := range s.triggers {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Hovered returns the trigger under the pointer, or nil.
func (s *System) Hovered() *Trigger { return s.hover }

// OnPointerEnter registers a callback fired after a trigger shows the tooltip.
func (s *System) OnPointerEnter(fn func(HoverContext)) CallbackHandle {
	return s.handlers.add(EventPointerEnter, fn)
}

// OnPointerLeave registers a callback fired after a trigger hides the tooltip.
func (s *System) OnPointerLeave(fn func(HoverContext)) CallbackHandle {
	return s.handlers.add(EventPointerLeave, fn)
}

// Show shows the tooltip with its current settings.
func (s *System) Show() { s.tooltip.Show() }

// Hide hides the tooltip.
func (s *System) Hide() { s.tooltip.Hide() }

// SetColors sets the tooltip colors.
func (s *System) SetColors(panel, border, content, header Color) {
	s.tooltip.SetColors(panel, border, content, header)
}

// SetContent sets the tooltip text.
func (s *System) SetContent(header, content string) {
	s.tooltip.SetContent(header, content)
}

// SetScript attaches a script that feeds injected input. Pass nil to detach.
func (s *System) SetScript(sc *Script) { s.script = sc }

// Update advances the system by dt seconds. The pointer sample p is replaced
// by a queued injected sample when one is pending. While an attached script
// is running the pointer stays at the last injected sample between
// injections.
func (s *System) Update(dt float64, p PointerState) {
	if s.script != nil {
		s.script.step(s)
	}
	if injected, ok := s.nextInjected(); ok {
		s.lastInject, s.injected = injected, true
		p = injected
	} else if s.injected && s.script != nil && !s.script.Done() {
		p = s.lastInject
	}
	s.processPointer(p)
	s.tooltip.Update(dt, p)
}

// Draw rebuilds and returns the frame's draw list. The list is reused on the
// next call.
func (s *System) Draw() *DrawList {
	s.drawList.Clear()
	s.tooltip.Draw(s.screen, &s.drawList)
	s.flushSnapshots()
	return &s.drawList
}

// Snapshot queues a labeled copy of the draw list, taken at the end of the
// next Draw.
func (s *System) Snapshot(label string) {
	s.snapshotQueue = append(s.snapshotQueue, label)
}

// SnapshotFor returns the draw list recorded under label, or nil.
func (s *System) SnapshotFor(label string) *DrawList {
	return s.snapshots[label]
}

func (s *System) flushSnapshots() {
	if len(s.snapshotQueue) == 0 {
		return
	}
	for _, label := range s.snapshotQueue {
		s.snapshots[label] = s.drawList.Clone()
	}
	s.snapshotQueue = s.snapshotQueue[:0]
}
