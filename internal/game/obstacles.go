package game

import (
	"fmt"
	"math/rand"

	"github.com/skydrift/skydrift/internal/config"
	"github.com/skydrift/skydrift/internal/core"
)

// Anchor selects which edge of the play field an obstacle hangs from.
type Anchor int

const (
	AnchorTop Anchor = iota
	AnchorBottom
)

// Obstacle is one scrolling barrier. Slots are created once at startup
// and recycled forever; the slot index is the obstacle's identity.
type Obstacle struct {
	X      float64 // Left edge, decreases as the world scrolls
	Height float64
	Anchor Anchor
}

// Rect returns the obstacle's collision box. The box is derived from the
// same height used for rendering; there is no separate collision shape.
func (o Obstacle) Rect(width, worldH float64) core.Rect {
	if o.Anchor == AnchorTop {
		return core.NewRect(o.X, 0, width, o.Height)
	}
	return core.NewRect(o.X, worldH-o.Height, width, o.Height)
}

// ObstaclePool holds a fixed-size set of recyclable obstacle slots.
// The tail index always names the slot holding the rightmost (most
// recently assigned) x, so a recycled slot is placed exactly one
// spacing beyond it regardless of recycling order.
type ObstaclePool struct {
	slots []Obstacle
	tail  int

	cfg    config.ObstaclesConfig
	worldH float64
	rng    *rand.Rand
}

// newPool creates a pool with evenly spaced slots and random looks.
// Misconfiguration is fatal here: a broken pool must never reach play.
func newPool(cfg config.ObstaclesConfig, worldH float64, rng *rand.Rand) (*ObstaclePool, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("game: obstacle count must be positive, got %d", cfg.Count)
	}
	if cfg.Spacing <= 0 {
		return nil, fmt.Errorf("game: obstacle spacing must be positive, got %g", cfg.Spacing)
	}
	if cfg.Width <= 0 || cfg.HeightUnit <= 0 {
		return nil, fmt.Errorf("game: obstacle dimensions must be positive, got width=%g unit=%g", cfg.Width, cfg.HeightUnit)
	}
	if cfg.MinMultiplier <= 0 || cfg.MaxMultiplier < cfg.MinMultiplier {
		return nil, fmt.Errorf("game: obstacle multipliers must satisfy 0 < min <= max, got %d..%d",
			cfg.MinMultiplier, cfg.MaxMultiplier)
	}

	p := &ObstaclePool{
		slots:  make([]Obstacle, cfg.Count),
		cfg:    cfg,
		worldH: worldH,
		rng:    rng,
	}
	p.Reset()
	return p, nil
}

// Reset reassigns the original evenly spaced positions and fresh random
// heights and anchors. Slot identities are preserved.
func (p *ObstaclePool) Reset() {
	for i := range p.slots {
		p.slots[i] = Obstacle{
			X:      p.cfg.Offset + float64(i)*p.cfg.Spacing,
			Height: p.randomHeight(),
			Anchor: p.randomAnchor(),
		}
	}
	p.tail = len(p.slots) - 1
}

// Step scrolls every slot left by speed*dt and recycles any slot that
// has fully left the field. Recycling reads the tail at the moment of
// recycling, not the original spawn order, so the spacing invariant
// holds under any number of recycle events per frame.
func (p *ObstaclePool) Step(dt, speed float64) {
	for i := range p.slots {
		p.slots[i].X -= speed * dt
	}

	for i := range p.slots {
		if p.slots[i].X < -p.cfg.Width {
			p.slots[i].X = p.slots[p.tail].X + p.cfg.Spacing
			p.slots[i].Height = p.randomHeight()
			p.slots[i].Anchor = p.randomAnchor()
			p.tail = i
		}
	}
}

// Slots returns the pool's obstacles. Callers must treat this as read-only.
func (p *ObstaclePool) Slots() []Obstacle {
	return p.slots
}

// Width returns the shared obstacle width.
func (p *ObstaclePool) Width() float64 {
	return p.cfg.Width
}

// Tail returns the index of the rightmost (most recently placed) slot.
func (p *ObstaclePool) Tail() int {
	return p.tail
}

func (p *ObstaclePool) randomHeight() float64 {
	mult := p.cfg.MinMultiplier + p.rng.Intn(p.cfg.MaxMultiplier-p.cfg.MinMultiplier+1)
	return float64(mult) * p.cfg.HeightUnit
}

func (p *ObstaclePool) randomAnchor() Anchor {
	if p.rng.Intn(2) == 0 {
		return AnchorTop
	}
	return AnchorBottom
}
