// Package engine runs the artillery simulation one fixed step at a time.
//
// Hosts translate their native input into InputEvent values, queue them for
// the duration of a frame, then call Game.Frame with the queue and a canvas.
// Frame applies input, advances every entity by constants.FrameDelta, resolves
// collisions and scoring, and issues the frame's draw calls in layering order.
// All mutation happens inside Frame on the caller's goroutine; the engine
// starts no goroutines of its own.
package engine

// EventKind enumerates the input vocabulary consumed by the simulation
type EventKind uint8

const (
	EventNone EventKind = iota
	EventQuit
	EventPress   // pointer down: begin charge
	EventRelease // pointer up: fire towards (X, Y)
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventPress:
		return "press"
	case EventRelease:
		return "release"
	default:
		return "none"
	}
}

// InputEvent carries pointer coordinates in arena pixels
type InputEvent struct {
	Kind EventKind
	X, Y float64
}
