package tooltip

// CommandKind identifies the kind of draw command.
type CommandKind uint8

const (
	CmdPanel  CommandKind = iota // filled rounded rectangle
	CmdBorder                    // rounded rectangle outline
	CmdText                      // wrapped text block
)

func (k CommandKind) String() string {
	switch k {
	case CmdPanel:
		return "panel"
	case CmdBorder:
		return "border"
	case CmdText:
		return "text"
	default:
		return "unknown"
	}
}

// DrawCmd is a single draw instruction. Colors already include the tooltip's
// fade alpha.
type DrawCmd struct {
	Kind      CommandKind
	Rect      Rect
	Color     Color
	Thickness float64 // border width (CmdBorder)
	Radius    float64 // corner radius (CmdPanel, CmdBorder)

	// Text fields (CmdText).
	Lines []string
	Font  Font
	Size  float64
	Bold  bool
}

// DrawList accumulates draw commands for a frame, in painter order.
type DrawList struct {
	Cmds []DrawCmd
}

// Clear resets the list for a new frame, keeping its capacity.
func (dl *DrawList) Clear() {
	dl.Cmds = dl.Cmds[:0]
}

// Len returns the number of commands.
func (dl *DrawList) Len() int { return len(dl.Cmds) }

// AddPanel appends a filled rounded rectangle.
func (dl *DrawList) AddPanel(r Rect, c Color, radius float64) {
	dl.Cmds = append(dl.Cmds, DrawCmd{Kind: CmdPanel, Rect: r, Color: c, Radius: radius})
}

// AddBorder appends a rounded rectangle outline.
func (dl *DrawList) AddBorder(r Rect, c Color, thickness, radius float64) {
	dl.Cmds = append(dl.Cmds, DrawCmd{Kind: CmdBorder, Rect: r, Color: c, Thickness: thickness, Radius: radius})
}

// AddText appends pre-wrapped lines of text.
func (dl *DrawList) AddText(r Rect, c Color, lines []string, f Font, size float64, bold bool) {
	dl.Cmds = append(dl.Cmds, DrawCmd{Kind: CmdText, Rect: r, Color: c, Lines: lines, Font: f, Size: size, Bold: bold})
}

// Clone returns a deep copy of the list.
func (dl *DrawList) Clone() *DrawList {
	out := &DrawList{Cmds: make([]DrawCmd, len(dl.Cmds))}
	copy(out.Cmds, dl.Cmds)
	for i := range out.Cmds {
		if out.Cmds[i].Lines != nil {
			out.Cmds[i].Lines = append([]string(nil), out.Cmds[i].Lines...)
		}
	}
	return out
}
