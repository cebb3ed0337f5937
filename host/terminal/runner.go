// Package terminal hosts the game in a tcell screen.
//
// Two goroutines cooperate under an errgroup: a pump that blocks on
// PollEvent and forwards events, and the frame loop that owns the game and
// the canvas. Input arriving between ticks is queued and handed to the next
// frame. The loop exits on a quit event or context cancellation and wakes the
// pump with an interrupt event so both return.
package terminal

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/cannonball/constants"
	"github.com/lixenwraith/cannonball/core"
	"github.com/lixenwraith/cannonball/engine"
	"github.com/lixenwraith/cannonball/input"
	"github.com/lixenwraith/cannonball/render"
)

// Runner drives a Game on a tcell screen at the fixed frame rate
type Runner struct {
	screen tcell.Screen
	canvas *render.TerminalCanvas
	input  *input.Machine
	game   *engine.Game
	events chan tcell.Event

	interval time.Duration
	frames   uint64
}

// NewRunner binds an initialized screen to a game. Mouse reporting is enabled
// here; the caller keeps ownership of the screen and calls Fini.
func NewRunner(screen tcell.Screen, game *engine.Game) *Runner {
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()
	screen.Clear()

	return &Runner{
		screen:   screen,
		canvas:   render.NewTerminalCanvas(screen),
		input:    input.NewMachine(),
		game:     game,
		events:   make(chan tcell.Event, constants.EventQueueSize),
		interval: constants.FrameUpdateInterval,
	}
}

// Frames returns the number of frames run so far
func (r *Runner) Frames() uint64 {
	return r.frames
}

// Run blocks until the game quits or ctx is cancelled
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer core.Recover()
		return r.pump(gctx)
	})
	g.Go(func() error {
		defer core.Recover()
		defer func() {
			cancel()
			// Wake the pump out of PollEvent
			_ = r.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}()
		return r.loop(gctx)
	})

	err := g.Wait()
	log.Printf("terminal host stopped after %d frames", r.frames)
	return err
}

func (r *Runner) pump(ctx context.Context) error {
	for {
		ev := r.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			// Screen finalized or loop gone
			return nil
		}
		select {
		case r.events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

func (r *Runner) loop(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	pending := make([]engine.InputEvent, 0, 16)
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-r.events:
			if _, ok := ev.(*tcell.EventResize); ok {
				r.screen.Sync()
				r.canvas.Resize()
				vp := r.canvas.Viewport()
				log.Printf("resize: %dx%d cells", vp.Cols, vp.Rows)
				continue
			}
			if ie, ok := r.input.Process(ev, r.canvas.Viewport()); ok {
				pending = append(pending, ie)
			}

		case <-ticker.C:
			running := r.game.Frame(pending, r.canvas)
			pending = pending[:0]
			r.frames++
			if !running {
				return nil
			}
		}
	}
}
