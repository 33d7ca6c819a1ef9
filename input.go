package tooltip

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerSource supplies one pointer sample per frame.
type PointerSource interface {
	Pointer() PointerState
}

// EbitenPointer reads the mouse cursor and buttons from Ebitengine.
type EbitenPointer struct{}

// Pointer returns the current cursor position and button state.
func (EbitenPointer) Pointer() PointerState {
	x, y := ebiten.CursorPosition()
	return PointerState{
		X: float64(x),
		Y: float64(y),
		Buttons: [3]bool{
			MouseButtonLeft:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			MouseButtonRight:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
			MouseButtonMiddle: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		},
	}
}

// HoverContext describes a hover transition.
type HoverContext struct {
	Trigger *Trigger
	X, Y    float64
}

// --- Handler registry ---

type hoverHandler struct {
	id uint32
	fn func(HoverContext)
}

type handlerRegistry struct {
	pointerEnter []hoverHandler
	pointerLeave []hoverHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerEnter:
		h.reg.pointerEnter = removeHoverHandler(h.reg.pointerEnter, h.id)
	case EventPointerLeave:
		h.reg.pointerLeave = removeHoverHandler(h.reg.pointerLeave, h.id)
	}
}

func removeHoverHandler(s []hoverHandler, id uint32) []hoverHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = hoverHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(event EventType, fn func(HoverContext)) CallbackHandle {
	r.nextID++
	h := hoverHandler{id: r.nextID, fn: fn}
	switch event {
	case EventPointerEnter:
		r.pointerEnter = append(r.pointerEnter, h)
	case EventPointerLeave:
		r.pointerLeave = append(r.pointerLeave, h)
	}
	return CallbackHandle{id: h.id, reg: r, event: event}
}

func fireHover(handlers []hoverHandler, ctx HoverContext) {
	for _, h := range handlers {
		h.fn(ctx)
	}
}

// --- Hit testing ---

// hitTest returns the topmost trigger containing (x, y). Triggers added later
// are on top. Returns nil if nothing is hit.
func (s *System) hitTest(x, y float64) *Trigger {
	for i := len(s.triggers) - 1; i >= 0; i-- {
		if s.triggers[i].Bounds.Contains(x, y) {
			return s.triggers[i]
		}
	}
	return nil
}

// processPointer runs enter/leave detection for one pointer sample.
func (s *System) processPointer(p PointerState) {
	target := s.hitTest(p.X, p.Y)
	if target == s.hover {
		return
	}
	if prev := s.hover; prev != nil {
		s.hover = nil
		prev.PointerExit()
		fireHover(s.handlers.pointerLeave, HoverContext{Trigger: prev, X: p.X, Y: p.Y})
	}
	if target != nil {
		s.hover = target
		target.PointerEnter()
		fireHover(s.handlers.pointerEnter, HoverContext{Trigger: target, X: p.X, Y: p.Y})
	}
}
