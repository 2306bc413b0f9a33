package game

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/skydrift/skydrift/internal/config"
)

func testPoolConfig() config.ObstaclesConfig {
	return config.ObstaclesConfig{
		Count:         5,
		Spacing:       26,
		Offset:        90,
		Width:         5,
		HeightUnit:    3,
		MinMultiplier: 2,
		MaxMultiplier: 4,
		ScrollSpeed:   14,
	}
}

func TestPoolInitialLayout(t *testing.T) {
	cfg := testPoolConfig()
	pool, err := newPool(cfg, 24, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("newPool failed: %v", err)
	}

	slots := pool.Slots()
	if len(slots) != cfg.Count {
		t.Fatalf("Pool size = %d, expected %d", len(slots), cfg.Count)
	}

	for i, o := range slots {
		want := cfg.Offset + float64(i)*cfg.Spacing
		if o.X != want {
			t.Errorf("Slot %d x = %v, expected %v", i, o.X, want)
		}

		mult := o.Height / cfg.HeightUnit
		if mult != math.Trunc(mult) || mult < float64(cfg.MinMultiplier) || mult > float64(cfg.MaxMultiplier) {
			t.Errorf("Slot %d height = %v, expected a multiple of %v in [%d..%d] units",
				i, o.Height, cfg.HeightUnit, cfg.MinMultiplier, cfg.MaxMultiplier)
		}
	}

	if pool.Tail() != cfg.Count-1 {
		t.Errorf("Tail = %d, expected %d", pool.Tail(), cfg.Count-1)
	}
}

func TestPoolRejectsMisconfiguration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.ObstaclesConfig)
	}{
		{"zero count", func(c *config.ObstaclesConfig) { c.Count = 0 }},
		{"negative count", func(c *config.ObstaclesConfig) { c.Count = -1 }},
		{"zero spacing", func(c *config.ObstaclesConfig) { c.Spacing = 0 }},
		{"negative spacing", func(c *config.ObstaclesConfig) { c.Spacing = -5 }},
		{"zero width", func(c *config.ObstaclesConfig) { c.Width = 0 }},
		{"zero unit", func(c *config.ObstaclesConfig) { c.HeightUnit = 0 }},
		{"inverted multipliers", func(c *config.ObstaclesConfig) { c.MinMultiplier = 4; c.MaxMultiplier = 2 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testPoolConfig()
			tc.mutate(&cfg)
			if _, err := newPool(cfg, 24, rand.New(rand.NewSource(1))); err == nil {
				t.Error("newPool should fail fast on broken configuration")
			}
		})
	}
}

// checkSpacing verifies that consecutive obstacles sorted by x are exactly
// one spacing apart and that no two slots are coincident.
func checkSpacing(t *testing.T, slots []Obstacle, spacing float64) {
	t.Helper()

	xs := make([]float64, len(slots))
	for i, o := range slots {
		xs[i] = o.X
	}
	sort.Float64s(xs)

	for i := 1; i < len(xs); i++ {
		gap := xs[i] - xs[i-1]
		if math.Abs(gap-spacing) > 1e-6 {
			t.Fatalf("Gap between slots %d and %d = %v, expected %v (xs=%v)", i-1, i, gap, spacing, xs)
		}
		if gap == 0 {
			t.Fatalf("Coincident slots at x=%v", xs[i])
		}
	}
}

func TestPoolSpacingInvariantUnderRecycling(t *testing.T) {
	cfg := testPoolConfig()
	pool, err := newPool(cfg, 24, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("newPool failed: %v", err)
	}

	// Fast scroll for many frames so every slot recycles dozens of times
	// in arbitrary order.
	const frames = 5000
	for i := 0; i < frames; i++ {
		pool.Step(0.05, 40)
		checkSpacing(t, pool.Slots(), cfg.Spacing)
	}
}

func TestPoolRecycleUsesCurrentTail(t *testing.T) {
	cfg := testPoolConfig()
	cfg.Count = 3
	cfg.Offset = 0
	cfg.Spacing = 10
	pool, err := newPool(cfg, 24, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("newPool failed: %v", err)
	}

	// One giant step pushes slots 0 and 1 off the left edge in the same
	// frame. Each must be placed one spacing beyond the tail as recycled,
	// not beyond the original layout.
	pool.Step(1.0, 16) // x: 0,10,20 -> -16,-6,4

	slots := pool.Slots()
	if slots[0].X != 14 { // old tail (slot 2, x=4) + spacing
		t.Errorf("Slot 0 recycled to x=%v, expected 14", slots[0].X)
	}
	if slots[1].X != 24 { // new tail (slot 0, x=14) + spacing
		t.Errorf("Slot 1 recycled to x=%v, expected 24", slots[1].X)
	}
	if pool.Tail() != 1 {
		t.Errorf("Tail = %d, expected 1", pool.Tail())
	}
	checkSpacing(t, slots, cfg.Spacing)
}

func TestPoolStepOnlyRecyclesFullyOffscreen(t *testing.T) {
	cfg := testPoolConfig()
	cfg.Count = 2
	cfg.Offset = -4 // partially offscreen, still visible: -width < x
	cfg.Spacing = 30
	pool, err := newPool(cfg, 24, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("newPool failed: %v", err)
	}

	pool.Step(0.01, 10) // x -> about -4.1, still above the -width threshold (-5)
	got := pool.Slots()[0].X
	if got > 0 {
		t.Errorf("Slot 0 x = %v, partially visible slot must not recycle", got)
	}
	if got < -cfg.Width {
		t.Errorf("Slot 0 x = %v, should still be on the edge of the field", got)
	}

	pool.Step(0.2, 10) // x -> about -6.1, now fully offscreen
	if pool.Slots()[0].X < 0 {
		t.Errorf("Slot 0 x = %v, fully offscreen slot should have recycled to the right", pool.Slots()[0].X)
	}
}

func TestPoolReset(t *testing.T) {
	cfg := testPoolConfig()
	pool, err := newPool(cfg, 24, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("newPool failed: %v", err)
	}

	for i := 0; i < 300; i++ {
		pool.Step(0.05, 40)
	}

	pool.Reset()
	for i, o := range pool.Slots() {
		want := cfg.Offset + float64(i)*cfg.Spacing
		if o.X != want {
			t.Errorf("After Reset, slot %d x = %v, expected %v", i, o.X, want)
		}
	}
	if pool.Tail() != cfg.Count-1 {
		t.Errorf("After Reset, tail = %d, expected %d", pool.Tail(), cfg.Count-1)
	}
}
