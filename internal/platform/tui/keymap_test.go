package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skydrift/skydrift/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapBindings(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space boosts", tea.KeyMsg{Type: tea.KeySpace}, core.ActionBoost},
		{"up arrow boosts", tea.KeyMsg{Type: tea.KeyUp}, core.ActionBoost},
		{"w boosts", runeKey('w'), core.ActionBoost},
		{"r restarts", runeKey('r'), core.ActionRestart},
		{"enter restarts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart},
		{"p pauses", runeKey('p'), core.ActionPause},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound key ignored", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Map(tc.msg); got != tc.want {
				t.Errorf("Map(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestRenderScreenPreservesContent(t *testing.T) {
	screen := core.NewScreen(10, 3)
	screen.DrawTextColored(1, 1, "hi", core.ColorGreen)
	screen.SetCell(5, 2, '!', core.ColorRed)

	out := RenderScreen(screen)

	if !strings.Contains(out, "hi") {
		t.Error("Rendered output should contain the drawn text")
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("Rendered output has %d newlines, expected 2", strings.Count(out, "\n"))
	}
}
