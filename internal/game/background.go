package game

import "github.com/skydrift/skydrift/internal/config"

// Layer is one decorative scrolling strip. Purely cosmetic; never
// participates in collision.
type Layer struct {
	X       float64 // Current scroll offset
	Speed   float64 // Leftward speed, units/s
	WrapAt  float64 // Offset at which the layer wraps
	ResetTo float64 // Offset assigned on wrap
}

// Step scrolls the layer and wraps it when it passes the threshold.
func (l *Layer) Step(dt float64) {
	l.X -= l.Speed * dt
	if l.X < l.WrapAt {
		l.X = l.ResetTo
	}
}

// Background holds the cloud and ground layers, each scrolling at its
// own rate. Background scrolling continues after game over even though
// obstacles freeze; that matches the original behavior and is covered
// by tests.
type Background struct {
	Clouds Layer
	Ground Layer
}

func newBackground(cfg config.BackgroundConfig, worldW float64) Background {
	return Background{
		Clouds: Layer{Speed: cfg.CloudSpeed, WrapAt: -worldW, ResetTo: 0},
		Ground: Layer{Speed: cfg.GroundSpeed, WrapAt: -worldW, ResetTo: 0},
	}
}

// Step advances both layers.
func (b *Background) Step(dt float64) {
	b.Clouds.Step(dt)
	b.Ground.Step(dt)
}
