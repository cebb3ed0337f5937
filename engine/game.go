package engine

import (
	"fmt"
	"log"

	"github.com/lixenwraith/cannonball/constants"
	"github.com/lixenwraith/cannonball/core"
	"github.com/lixenwraith/cannonball/physics"
	"github.com/lixenwraith/cannonball/render"
)

var (
	fieldRect  = render.Rect{X: constants.FieldX, Y: constants.FieldY, W: constants.FieldWidth, H: constants.FieldHeight}
	markerRect = render.Rect{X: constants.MarkerX, Y: constants.MarkerY, W: constants.MarkerSize, H: constants.MarkerSize}
	meterRect  = render.Rect{X: constants.MeterX, Y: constants.MeterY, W: constants.MeterWidth, H: constants.MeterHeight}
	meterTrack = core.RGBWhite.Scale(0.2)
)

// Game drives a Session one frame at a time
type Game struct {
	session *Session
	sounder Sounder
	quit    bool
}

// NewGame binds a session to an optional sounder (nil plays nothing)
func NewGame(s *Session, sounder Sounder) *Game {
	return &Game{session: s, sounder: sounder}
}

// Session returns the game state
func (g *Game) Session() *Session {
	return g.session
}

// Frame runs one fixed step: input, target motion, ball physics with
// collision and scoring, HUD, present. Returns false once a quit event has
// been processed; the frame in which it arrives still completes.
func (g *Game) Frame(events []InputEvent, c render.Canvas) bool {
	s := g.session
	s.Frame++

	c.FillRect(fieldRect, core.RGBWhite)
	c.FillRect(markerRect, core.RGBRed)
	g.drawTargets(c)

	for _, ev := range events {
		switch ev.Kind {
		case EventQuit:
			g.quit = true
		case EventPress:
			s.Gun.StartCharge()
		case EventRelease:
			g.fire(ev.X, ev.Y)
		}
	}

	for _, t := range s.Targets {
		t.Move(constants.FrameDelta)
	}

	s.Projectiles.Each(func(b *physics.Ball) {
		if b.Move(constants.FrameDelta) {
			g.play(core.SoundRetire)
			return
		}
		c.FillCircle(b.X, b.Y, b.R, b.Color)

		// Every overlapped target scores, in target order
		for _, hit := range physics.ProbeAll(b, s.Targets) {
			g.score(hit.TargetID)
		}
		g.drawTargets(c)
	})

	if s.Frame%constants.CompactEvery == 0 {
		if n := s.Projectiles.Compact(); n > 0 {
			log.Printf("frame %d: compacted %d retired balls, %d live", s.Frame, n, s.Projectiles.LiveCount())
		}
	}

	g.drawHUD(c)
	c.Present()
	c.Clear(core.RGBBlack)

	return !g.quit
}

// fire reads angle and power from the gun, launches a ball and ends the charge
func (g *Game) fire(x, y float64) {
	s := g.session
	angle := s.Gun.Targeting(x, y)
	power := s.Gun.ReadPower()

	color := core.BallPalette[s.rng.Pick(len(core.BallPalette))]
	b := physics.NewBall(color)
	b.SetSpeed(float64(power), angle)
	s.Projectiles.Add(b)
	s.Shots++

	s.Gun.EndCharge()
	g.play(core.SoundLaunch)
	log.Printf("shot %d: power=%d angle=%.3f", s.Shots, power, angle)
}

func (g *Game) score(id int) {
	s := g.session
	t := s.Targets[id]
	s.Score += t.Points
	s.Hits++
	t.Respawn(s.rng)
	g.play(core.SoundHit)
}

func (g *Game) play(st core.SoundType) {
	if g.sounder != nil {
		g.sounder.Play(st)
	}
}

func (g *Game) drawTargets(c render.Canvas) {
	for _, t := range g.session.Targets {
		c.FillCircle(t.X, t.Y, t.R, t.Color)
	}
}

func (g *Game) drawHUD(c render.Canvas) {
	s := g.session
	c.DrawText(constants.ShotsTextX, constants.ShotsTextY, fmt.Sprintf(constants.ShotsFormat, s.Shots), core.RGBWhite, core.RGBBlack)
	c.DrawText(constants.ScoreTextX, constants.ScoreTextY, fmt.Sprintf(constants.ScoreFormat, s.Result()), core.RGBWhite, core.RGBBlack)

	if !s.Gun.Charging() {
		return
	}
	level := s.Gun.ChargeLevel()
	c.FillRect(meterRect, meterTrack)
	if level > 0 {
		fill := meterRect
		fill.W *= level
		c.FillRect(fill, render.MeterColor(level))
	}
}
