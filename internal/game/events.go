package game

// EventSink receives discrete session events. Presentation and audio
// layers implement it; the simulation never blocks on a sink, so
// implementations must return quickly.
type EventSink interface {
	// Boosted is emitted when a boost is accepted (Playing only).
	Boosted()
	// Crashed is emitted once on the Playing -> GameOver transition,
	// carrying the entity position for feedback placement.
	Crashed(x, y float64)
	// Restarted is emitted when a reset enters Playing.
	Restarted()
	// ScoreChanged is emitted whenever the survival score changes,
	// including the reset back to zero.
	ScoreChanged(score int)
}

// NopSink is an EventSink that ignores everything.
type NopSink struct{}

func (NopSink) Boosted() {}

func (NopSink) Crashed(x, y float64) {}

func (NopSink) Restarted() {}

func (NopSink) ScoreChanged(score int) {}

// MultiSink fans events out to several sinks in order.
type MultiSink []EventSink

func (m MultiSink) Boosted() {
	for _, s := range m {
		s.Boosted()
	}
}

func (m MultiSink) Crashed(x, y float64) {
	for _, s := range m {
		s.Crashed(x, y)
	}
}

func (m MultiSink) Restarted() {
	for _, s := range m {
		s.Restarted()
	}
}

func (m MultiSink) ScoreChanged(score int) {
	for _, s := range m {
		s.ScoreChanged(score)
	}
}
