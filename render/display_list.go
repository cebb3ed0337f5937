package render

import "github.com/lixenwraith/cannonball/core"

// Op identifies a recorded draw call
type Op uint8

const (
	OpFillRect Op = iota
	OpFillCircle
	OpDrawText
	OpPresent
	OpClear
)

func (o Op) String() string {
	switch o {
	case OpFillRect:
		return "fill-rect"
	case OpFillCircle:
		return "fill-circle"
	case OpDrawText:
		return "draw-text"
	case OpPresent:
		return "present"
	case OpClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Command is one recorded draw call. Fields not used by Op are zero.
type Command struct {
	Op     Op
	Rect   Rect
	X, Y   float64
	Radius float64
	Text   string
	FG, BG core.RGB
}

// DisplayList is a Canvas that records draw calls for later replay.
// Hosts whose draw phase is separate from their update phase record a frame
// during update and replay it when the host asks for pixels.
type DisplayList struct {
	cmds []Command
}

// NewDisplayList creates an empty list
func NewDisplayList() *DisplayList {
	return &DisplayList{cmds: make([]Command, 0, 64)}
}

func (d *DisplayList) FillRect(r Rect, c core.RGB) {
	d.cmds = append(d.cmds, Command{Op: OpFillRect, Rect: r, FG: c})
}

func (d *DisplayList) FillCircle(x, y, radius float64, c core.RGB) {
	d.cmds = append(d.cmds, Command{Op: OpFillCircle, X: x, Y: y, Radius: radius, FG: c})
}

func (d *DisplayList) DrawText(x, y float64, text string, fg, bg core.RGB) {
	d.cmds = append(d.cmds, Command{Op: OpDrawText, X: x, Y: y, Text: text, FG: fg, BG: bg})
}

func (d *DisplayList) Present() {
	d.cmds = append(d.cmds, Command{Op: OpPresent})
}

func (d *DisplayList) Clear(c core.RGB) {
	d.cmds = append(d.cmds, Command{Op: OpClear, BG: c})
}

// Commands returns the recorded calls; the slice is reused after Reset
func (d *DisplayList) Commands() []Command {
	return d.cmds
}

// Reset drops recorded calls, keeping capacity
func (d *DisplayList) Reset() {
	d.cmds = d.cmds[:0]
}

// Replay issues every recorded call on c in recording order
func (d *DisplayList) Replay(c Canvas) {
	for i := range d.cmds {
		cmd := &d.cmds[i]
		switch cmd.Op {
		case OpFillRect:
			c.FillRect(cmd.Rect, cmd.FG)
		case OpFillCircle:
			c.FillCircle(cmd.X, cmd.Y, cmd.Radius, cmd.FG)
		case OpDrawText:
			c.DrawText(cmd.X, cmd.Y, cmd.Text, cmd.FG, cmd.BG)
		case OpPresent:
			c.Present()
		case OpClear:
			c.Clear(cmd.BG)
		}
	}
}

// Count returns how many recorded calls have the given op
func (d *DisplayList) Count(op Op) int {
	n := 0
	for i := range d.cmds {
		if d.cmds[i].Op == op {
			n++
		}
	}
	return n
}
