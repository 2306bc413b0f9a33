package game

import (
	"fmt"
	"math/rand"

	"github.com/skydrift/skydrift/internal/config"
	"github.com/skydrift/skydrift/internal/core"
)

// Phase is the session's top-level state.
type Phase int

const (
	PhaseIdle     Phase = iota // Pre-start title state
	PhasePlaying               // Simulation running, collisions live
	PhaseGameOver              // Terminal until an explicit reset
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Session is one independent game: entity, obstacle pool, background and
// phase state, owned as an explicit context object. The platform drives
// it with Step once per tick; all state mutation happens there or in the
// input methods called from the same loop.
type Session struct {
	cfg  config.Config
	rng  *rand.Rand
	sink EventSink

	entity Entity
	pool   *ObstaclePool
	bg     Background

	phase    Phase
	paused   bool
	score    int
	scoreAcc float64 // Simulated seconds toward the next score point
	tick     uint64
}

// NewSession builds a session in the Idle phase. Configuration errors
// are fatal here; nothing else in this core can fail.
func NewSession(cfg config.Config, seed int64, sink EventSink) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if sink == nil {
		sink = NopSink{}
	}

	rng := rand.New(rand.NewSource(seed))
	pool, err := newPool(cfg.Obstacles, cfg.World.Height, rng)
	if err != nil {
		return nil, err
	}

	return &Session{
		cfg:    cfg,
		rng:    rng,
		sink:   sink,
		entity: newEntity(cfg.Entity, cfg.World.Height),
		pool:   pool,
		bg:     newBackground(cfg.Background, cfg.World.Width),
		phase:  PhaseIdle,
	}, nil
}

// Step advances the simulation by dt seconds of simulated time, applying
// this frame's input first. Exactly one Step runs per external tick.
func (s *Session) Step(dt float64, in core.InputFrame) {
	if dt < 0 {
		dt = 0
	}

	if in.Has(core.ActionRestart) {
		s.Reset()
	}
	if in.Has(core.ActionPause) && s.phase == PhasePlaying {
		s.paused = !s.paused
	}
	if in.Has(core.ActionBoost) {
		s.Boost()
	}

	if s.paused {
		return
	}
	s.tick++

	switch s.phase {
	case PhaseIdle:
		// Title screen: only the backdrop drifts.
		s.bg.Step(dt)

	case PhasePlaying:
		s.entity.Step(dt, s.cfg.Physics.Gravity)
		s.pool.Step(dt, s.cfg.Obstacles.ScrollSpeed)
		s.bg.Step(dt)
		s.accumulateScore(dt)

		if Collides(s.entity, s.pool.Slots(), s.pool.Width(), s.cfg.World.Height) {
			s.crash()
		}

	case PhaseGameOver:
		// The entity keeps falling and spinning for effect while the
		// world stops scrolling; the background layers keep moving.
		s.entity.Step(dt, s.cfg.Physics.Gravity)
		s.bg.Step(dt)
	}
}

// Boost overwrites the entity's velocity with the configured upward
// impulse. It never accumulates, and it is a silent no-op outside
// Playing or while paused.
func (s *Session) Boost() {
	if s.phase != PhasePlaying || s.paused {
		return
	}
	s.entity.Vel = -s.cfg.Physics.Boost
	s.sink.Boosted()
}

// Reset transitions Idle/GameOver -> Playing: respawns the entity,
// re-spaces the obstacle pool and zeroes the score. Calling it while
// already Playing is a silent no-op, tolerating redundant external
// restart events.
func (s *Session) Reset() {
	if s.phase == PhasePlaying {
		return
	}

	s.entity = newEntity(s.cfg.Entity, s.cfg.World.Height)
	s.pool.Reset()
	s.score = 0
	s.scoreAcc = 0
	s.paused = false
	s.phase = PhasePlaying

	s.sink.Restarted()
	s.sink.ScoreChanged(0)
}

// accumulateScore converts simulated elapsed time into score points.
// Score is a plain accumulator inside the step loop, so there is no
// timer handle to leak or double-start, and replays are deterministic.
func (s *Session) accumulateScore(dt float64) {
	s.scoreAcc += dt
	for s.scoreAcc >= s.cfg.Score.IntervalSeconds {
		s.scoreAcc -= s.cfg.Score.IntervalSeconds
		s.score++
		s.sink.ScoreChanged(s.score)
	}
}

// crash performs the single Playing -> GameOver transition. Only called
// from the Playing branch of Step, so a simultaneous bounds violation
// and obstacle overlap still transition exactly once.
func (s *Session) crash() {
	s.phase = PhaseGameOver
	s.entity.kill(s.cfg.CrashSpin)
	s.sink.Crashed(s.entity.X, s.entity.Y)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the current survival score.
func (s *Session) Score() int {
	return s.score
}

// Paused reports whether the simulation is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// Entity returns a copy of the entity state.
func (s *Session) Entity() Entity {
	return s.entity
}

// Config returns the session's immutable configuration.
func (s *Session) Config() config.Config {
	return s.cfg
}
