// Package input turns raw tcell events into the engine's input vocabulary.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cannonball/engine"
	"github.com/lixenwraith/cannonball/render"
)

// Machine is the input state machine
// Parses tcell.Event into engine.InputEvent, tracking the primary button so
// that only press and release edges are reported
type Machine struct {
	buttons tcell.ButtonMask
}

// NewMachine creates a new input machine with no buttons held
func NewMachine() *Machine {
	return &Machine{}
}

// Reset forgets held buttons
func (m *Machine) Reset() {
	m.buttons = tcell.ButtonNone
}

// Held reports whether the primary button is down
func (m *Machine) Held() bool {
	return m.buttons&tcell.Button1 != 0
}

// Process parses a tcell event against the current viewport
// Returns false if the event carries nothing for the simulation
func (m *Machine) Process(ev tcell.Event, view render.Viewport) (engine.InputEvent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev, view)
	case *tcell.EventInterrupt:
		return engine.InputEvent{Kind: engine.EventQuit}, true
	}
	return engine.InputEvent{}, false
}

func (m *Machine) processKey(ev *tcell.EventKey) (engine.InputEvent, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return engine.InputEvent{Kind: engine.EventQuit}, true
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			return engine.InputEvent{Kind: engine.EventQuit}, true
		}
	}
	return engine.InputEvent{}, false
}

func (m *Machine) processMouse(ev *tcell.EventMouse, view render.Viewport) (engine.InputEvent, bool) {
	col, row := ev.Position()
	x, y := view.ToArena(col, row)

	was := m.buttons&tcell.Button1 != 0
	now := ev.Buttons()&tcell.Button1 != 0
	m.buttons = ev.Buttons()

	switch {
	case now && !was:
		return engine.InputEvent{Kind: engine.EventPress, X: x, Y: y}, true
	case !now && was:
		return engine.InputEvent{Kind: engine.EventRelease, X: x, Y: y}, true
	}
	// Motion and drag only move the cursor
	return engine.InputEvent{}, false
}

