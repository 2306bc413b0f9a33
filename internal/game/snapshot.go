package game

// ObstacleView is the read-only presentation view of one obstacle slot.
type ObstacleView struct {
	X      float64
	Width  float64
	Height float64
	Top    bool
}

// Snapshot is a read-only copy of the session state for presentation.
// Primitive fields only; observers never touch live simulation state.
type Snapshot struct {
	Tick        uint64
	Phase       Phase
	Paused      bool
	Score       int
	EntityX     float64
	EntityY     float64
	EntityVel   float64
	EntityAngle float64
	EntityAlive bool
	Obstacles   []ObstacleView
	CloudX      float64
	GroundX     float64
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	views := make([]ObstacleView, len(s.pool.Slots()))
	for i, o := range s.pool.Slots() {
		views[i] = ObstacleView{
			X:      o.X,
			Width:  s.pool.Width(),
			Height: o.Height,
			Top:    o.Anchor == AnchorTop,
		}
	}

	return Snapshot{
		Tick:        s.tick,
		Phase:       s.phase,
		Paused:      s.paused,
		Score:       s.score,
		EntityX:     s.entity.X,
		EntityY:     s.entity.Y,
		EntityVel:   s.entity.Vel,
		EntityAngle: s.entity.Angle,
		EntityAlive: s.entity.Alive,
		Obstacles:   views,
		CloudX:      s.bg.Clouds.X,
		GroundX:     s.bg.Ground.X,
	}
}
