// Package game implements the Sky Drift simulation core: entity physics,
// the recyclable obstacle pool, collision detection, and the session
// state machine. It is pure logic with no platform dependencies.
package game

import (
	"github.com/skydrift/skydrift/internal/config"
	"github.com/skydrift/skydrift/internal/core"
)

// Entity is the controlled actor. Position and velocity are in world
// units; the angle is a derived, presentation-only output.
type Entity struct {
	X, Y  float64
	Vel   float64 // Vertical velocity, positive = down
	Angle float64 // Degrees, positive = nose down
	HalfW float64
	HalfH float64
	Alive bool

	spin spinTween
}

func newEntity(cfg config.EntityConfig, worldH float64) Entity {
	return Entity{
		X:     cfg.X,
		Y:     worldH / 2,
		Vel:   0,
		HalfW: cfg.HalfWidth,
		HalfH: cfg.HalfHeight,
		Alive: true,
	}
}

// Step advances the entity by one semi-implicit Euler step:
// velocity first, then position with the updated velocity.
func (e *Entity) Step(dt, gravity float64) {
	e.Vel += gravity * dt
	e.Y += e.Vel * dt

	if e.Alive {
		// Tilt follows fall velocity, for presentation only.
		e.Angle = core.ClampF(e.Vel*4, -35, 90)
	} else {
		e.Angle = e.spin.advance(dt)
	}
}

// Rect returns the entity's collision box, centered on its position.
func (e Entity) Rect() core.Rect {
	return core.CenteredRect(e.X, e.Y, e.HalfW, e.HalfH)
}

// kill marks the entity dead and starts the crash spin toward the
// configured target angle. Physics integration keeps running.
func (e *Entity) kill(cfg config.CrashSpinConfig) {
	e.Alive = false
	e.spin = spinTween{
		start:    e.Angle,
		target:   cfg.TargetDegrees,
		duration: cfg.DurationSeconds,
	}
}

// spinTween is the post-crash rotation animation: explicit interpolation
// state advanced each step, no fire-and-forget animation objects.
type spinTween struct {
	start    float64
	target   float64
	elapsed  float64
	duration float64
}

// advance moves the tween forward and returns the current angle,
// easing out toward the target.
func (t *spinTween) advance(dt float64) float64 {
	t.elapsed += dt
	if t.duration <= 0 || t.elapsed >= t.duration {
		return t.target
	}
	p := t.elapsed / t.duration
	p = 1 - (1-p)*(1-p)
	return t.start + (t.target-t.start)*p
}
