package tooltip

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a hover script.
type scriptStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	Trigger string  `json:"trigger,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

type scriptDoc struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected pointer samples and draw-list snapshots across
// frames, for automated checks of tooltip behavior. Attach it with
// System.SetScript.
//
// Actions: "move" and "release" (x, y), "press" (x, y), "hold" (x, y, frames),
// "hover" (trigger, frames: rest at the trigger's center), "wait" (frames),
// "snapshot" (label).
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON hover script.
func LoadScript(jsonData []byte) (*Script, error) {
	var doc scriptDoc
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("tooltip: parse script: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("tooltip: parse script: no steps")
	}
	for i, st := range doc.Steps {
		switch st.Action {
		case "move", "press", "release", "hold", "hover", "wait", "snapshot":
		default:
			return nil, fmt.Errorf("tooltip: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: doc.Steps}, nil
}

// Done reports whether all steps have been executed.
func (sc *Script) Done() bool { return sc.done }

// step advances the script by one frame. Called from System.Update.
func (sc *Script) step(s *System) {
	if sc.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if sc.waitCount > 0 {
		sc.waitCount--
		return
	}
	if sc.cursor >= len(sc.steps) {
		sc.done = true
		return
	}

	st := sc.steps[sc.cursor]
	sc.cursor++

	switch st.Action {
	case "snapshot":
		s.Snapshot(st.Label)
	case "move", "release":
		s.InjectMove(st.X, st.Y)
	case "press":
		s.InjectPress(st.X, st.Y)
	case "hold":
		s.InjectHold(st.X, st.Y, max(st.Frames, 1))
	case "hover":
		if tr := s.Trigger(st.Trigger); tr != nil {
			b := tr.Bounds
			s.InjectHold(b.X+b.Width/2, b.Y+b.Height/2, max(st.Frames, 1))
		} else {
			Logger().Warn("script hover target not found", "trigger", st.Trigger)
		}
	case "wait":
		if st.Frames > 0 {
			sc.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if sc.cursor >= len(sc.steps) && sc.waitCount == 0 && len(s.injectQueue) == 0 {
		sc.done = true
	}
}
