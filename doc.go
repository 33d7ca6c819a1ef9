// Package tooltip provides hover tooltips for [Ebitengine] games and the
// procedural rounded-rectangle skins they are drawn with.
//
// # Quick start
//
// Create a [System], register hoverable regions with [System.AddTrigger] and
// hand the system to [Run], which opens a window and game loop for you:
//
//	sys := tooltip.NewSystem(nil, tooltip.Vec2{X: 640, Y: 480})
//	s := tooltip.DefaultTriggerSettings()
//	s.Header, s.Content = "Sword", "A sharp blade."
//	sys.AddTrigger("sword", tooltip.Rect{X: 40, Y: 40, Width: 64, Height: 64}, s)
//	tooltip.Run(sys, tooltip.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// For full control, call [System.Update] with a [PointerState] each tick and
// draw the [DrawList] returned by [System.Draw] with a [Renderer]:
//
//	func (g *Game) Update() error {
//		g.sys.Update(1.0/60, tooltip.EbitenPointer{}.Pointer())
//		return nil
//	}
//	func (g *Game) Draw(screen *ebiten.Image) { g.renderer.Draw(screen, g.sys.Draw()) }
//
// # Tooltip behavior
//
// A trigger's settings are applied to the shared [Tooltip] when the pointer
// enters it. The popup appears after the pointer has rested for the popup
// delay, fading in over [FadeDuration] when fading is enabled. Moving the
// pointer hides it until the pointer rests again; holding a mouse button
// hides it while held. The panel starts near the pointer, fits its text and
// stays on screen.
//
// # Skins
//
// [GenerateRoundedRect] rasterizes a rounded rectangle with a 1 to 4 stop
// gradient fill, a 1 to 3 stop border and an optional inner shadow into a
// [Canvas]. Invalid parameters return a [*ParamError] matching
// [ErrInvalidParameters]. [SortRects] and [SliceSprites] order sprite bounds
// into reading order and [ExportSkin] writes the texture and its atlas.
// The cmd/rectgen command does the same from a YAML file.
//
// # Presets
//
// [PresetManager] saves and loads trigger styling in a [Prefs] store.
// [FilePrefs] keeps presets in a YAML file and [WatchPresets] reloads it when
// it changes on disk.
//
// # Logging
//
// Nothing is logged by default. Call [SetLogger] with a [log/slog] logger to
// see generation timings, preset reloads and trigger transitions.
//
// [Ebitengine]: https://ebitengine.org
package tooltip
