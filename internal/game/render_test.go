package game

import (
	"strings"
	"testing"

	"github.com/skydrift/skydrift/internal/config"
	"github.com/skydrift/skydrift/internal/core"
)

func renderSession(t *testing.T) (*Session, *core.Screen) {
	t.Helper()
	s, err := NewSession(config.Default(), 1, nil)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s, core.NewScreen(80, 24)
}

func TestRenderIdleShowsTitle(t *testing.T) {
	s, screen := renderSession(t)
	s.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "SKY DRIFT") {
		t.Error("Idle render should show the title")
	}
	if !strings.Contains(out, "Score: 0") {
		t.Error("Render should always show the score HUD")
	}
}

func TestRenderPlayingShowsField(t *testing.T) {
	s, screen := renderSession(t)
	s.Reset()
	s.Render(screen)

	out := screen.String()
	if strings.Contains(out, "SKY DRIFT") || strings.Contains(out, "GAME OVER") {
		t.Error("Playing render should not show a message box")
	}
	if !strings.ContainsRune(out, GroundChar) {
		t.Error("Playing render should draw the ground strip")
	}
	if !strings.ContainsRune(out, BodyChar) {
		t.Error("Playing render should draw the entity")
	}
}

func TestRenderGameOverShowsMessage(t *testing.T) {
	s, screen := renderSession(t)
	s.Reset()
	s.entity.Y = -1
	s.Step(0.001, core.NewInputFrame())
	s.Render(screen)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("GameOver render should show the game over box")
	}
}

func TestRenderPausedShowsOverlay(t *testing.T) {
	s, screen := renderSession(t)
	s.Reset()
	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	s.Step(0.016, in)
	s.Render(screen)

	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("Paused render should show the pause overlay")
	}
}

func TestRenderGroundScrolls(t *testing.T) {
	s, screen := renderSession(t)
	s.Reset()

	s.Render(screen)
	first := screen.Row(23)

	for i := 0; i < 20; i++ {
		s.Step(1.0/60.0, core.NewInputFrame())
	}
	s.Render(screen)
	second := screen.Row(23)

	if first == second {
		t.Error("Ground tick marks should shift as the ground layer scrolls")
	}
}
