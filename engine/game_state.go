package engine

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/cannonball/constants"
	"github.com/lixenwraith/cannonball/core"
	"github.com/lixenwraith/cannonball/physics"
	"github.com/lixenwraith/cannonball/vmath"
)

// Session holds all mutable state of one play session. It is owned by a
// single Game and touched only from the frame goroutine.
type Session struct {
	ID string

	// Counters
	Shots int
	Score int
	Hits  int
	Frame uint64

	// Entities
	Projectiles *physics.ProjectilePool
	Targets     []*physics.Target
	Gun         *physics.Gun

	rng     *vmath.FastRand
	clock   core.Clock
	started time.Time
}

// NewSession creates a fresh session with two targets. A zero seed derives
// one from the clock.
func NewSession(clock core.Clock, seed uint64) *Session {
	now := clock.Now()
	if seed == 0 {
		seed = uint64(now.UnixNano())
	}
	rng := vmath.NewFastRand(seed)

	s := &Session{
		ID:          uuid.NewString(),
		Projectiles: physics.NewProjectilePool(64),
		Targets:     make([]*physics.Target, constants.TargetCount),
		Gun:         physics.NewGun(clock),
		rng:         rng,
		clock:       clock,
		started:     now,
	}
	for i := range s.Targets {
		s.Targets[i] = physics.NewTarget(rng)
	}

	log.Printf("session %s started (seed %d)", s.ID, seed)
	return s
}

// Result is the displayed score: rewards minus shots, plus one
func (s *Session) Result() int {
	return s.Score - s.Shots + 1
}

// Close logs a summary and releases projectile storage
func (s *Session) Close() {
	log.Printf("session %s ended after %v: shots=%d hits=%d score=%d result=%d",
		s.ID, s.clock.Now().Sub(s.started).Round(time.Millisecond), s.Shots, s.Hits, s.Score, s.Result())
	s.Projectiles.Reset()
}
