package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skydrift/skydrift/internal/config"
	"github.com/skydrift/skydrift/internal/core"
	"github.com/skydrift/skydrift/internal/game"
	"github.com/skydrift/skydrift/internal/storage"
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model driving one game session.
type Model struct {
	session *game.Session
	screen  *core.Screen
	store   *storage.Store
	rt      core.RuntimeConfig

	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame

	prevPhase  game.Phase
	runSeconds float64
	highScore  int
	scoreSaved bool
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game configuration.
// The store and sink may be nil.
func NewModel(cfg config.Config, rt core.RuntimeConfig, store *storage.Store, sink game.EventSink) (Model, error) {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	session, err := game.NewSession(cfg, rt.Seed, sink)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		session:    session,
		screen:     core.NewScreen(rt.ScreenW, gameHeight(rt.ScreenH)),
		store:      store,
		rt:         rt,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		prevPhase:  game.PhaseIdle,
	}

	if store != nil {
		if high, err := store.HighScore(); err == nil {
			m.highScore = high
		}
	}

	return m, nil
}

// gameHeight reserves the bottom terminal row for the help footer.
func gameHeight(screenH int) int {
	return core.Max(1, screenH-1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.rt.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.rt.ScreenW = msg.Width
		m.rt.ScreenH = msg.Height
		m.screen.Resize(msg.Width, gameHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers input actions for the next simulation tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Map(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick advances the simulation by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := m.rt.Dt()
	m.session.Step(dt, m.inputFrame)
	m.inputFrame.Clear()

	phase := m.session.Phase()
	if phase == game.PhasePlaying {
		if m.prevPhase != game.PhasePlaying {
			// A new run just started.
			m.runSeconds = 0
			m.scoreSaved = false
		}
		if !m.session.Paused() {
			m.runSeconds += dt
		}
	}

	if phase == game.PhaseGameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}
	m.prevPhase = phase

	return m, tickCmd(m.rt.TickRate)
}

// saveRun records the finished run. Best effort, the game continues
// whether it works or not.
func (m *Model) saveRun() {
	score := m.session.Score()
	if score > m.highScore {
		m.highScore = score
	}
	if m.store == nil || score == 0 {
		return
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveRun(score, m.runSeconds)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".skydrift", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("skydrift_%s.txt", timestamp))
	//nolint:errcheck // Best-effort save
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game plus a one-line footer with the best score and
// key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.highScore > 0 {
		footer = footerStyle.Render(fmt.Sprintf("best %d  ", m.highScore)) + footer
	}

	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(cfg config.Config, rt core.RuntimeConfig, store *storage.Store, sink game.EventSink) error {
	model, err := NewModel(cfg, rt, store, sink)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
