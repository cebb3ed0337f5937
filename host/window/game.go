// Package window hosts the game in a desktop window through ebiten.
//
// Ebiten separates Update from Draw. Update translates input edges, runs one
// engine frame into a display list and Draw replays that list onto the
// screen image. TPS is pinned to the engine frame rate.
package window

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/lixenwraith/cannonball/constants"
	"github.com/lixenwraith/cannonball/engine"
	"github.com/lixenwraith/cannonball/render"
)

// Game adapts engine.Game to ebiten.Game
type Game struct {
	game    *engine.Game
	frame   *render.DisplayList
	pending []engine.InputEvent
}

// NewGame wraps an engine game
func NewGame(g *engine.Game) *Game {
	return &Game{
		game:    g,
		frame:   render.NewDisplayList(),
		pending: make([]engine.InputEvent, 0, 8),
	}
}

func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pending = append(g.pending, engine.InputEvent{Kind: engine.EventPress, X: float64(x), Y: float64(y)})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.pending = append(g.pending, engine.InputEvent{Kind: engine.EventRelease, X: float64(x), Y: float64(y)})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) || ebiten.IsWindowBeingClosed() {
		g.pending = append(g.pending, engine.InputEvent{Kind: engine.EventQuit})
	}

	g.frame.Reset()
	running := g.game.Frame(g.pending, g.frame)
	g.pending = g.pending[:0]
	if !running {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.frame.Replay(&Canvas{dst: screen})
}

func (g *Game) Layout(_, _ int) (int, int) {
	return constants.ArenaWidth, constants.ArenaHeight
}

// Run opens the window and blocks until the game quits
func Run(g *engine.Game) error {
	ebiten.SetWindowSize(constants.ArenaWidth, constants.ArenaHeight)
	ebiten.SetWindowTitle("Cannonball")
	ebiten.SetTPS(constants.FPS)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(NewGame(g)); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "window host")
	}
	log.Printf("window host stopped")
	return nil
}
