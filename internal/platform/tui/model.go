package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/registry"
	"github.com/vovakirdan/tui-racer/internal/storage"
)

// Model is the Bubble Tea model for running a race.
type Model struct {
	race       registry.Race
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	controls   *ControlState
	clock      *frameClock
	actions    core.ActionFrame
	state      core.RaceState
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been stored
}

// NewModel creates a new Bubble Tea model for the given race.
func NewModel(race registry.Race, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	return Model{
		race:      race,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		controls:  NewControlState(),
		clock:     &frameClock{tickRate: cfg.TickRate},
		actions:   core.NewActionFrame(),
	}
}

// Init starts the race and the tick loop.
func (m Model) Init() tea.Cmd {
	m.race.Reset(m.config)
	m.clock.reset()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if c := m.keyMapper.MapControl(msg); c != ControlNone {
		m.controls.Press(c, time.Now())
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.saveRun()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		m.saveRun()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil

	case action == core.ActionRestart:
		m.saveRun()
		m.actions.Set(action)

	case action != core.ActionNone:
		m.actions.Set(action)
	}

	return m, nil
}

// handleTick advances the race by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	dt := m.clock.advance(now)
	restart := m.actions.Has(core.ActionRestart)

	result := m.race.Step(m.actions, m.controls.Snapshot(now), dt)
	m.state = result.State

	if restart {
		m.controls.Release()
		m.runSaved = false
	}
	if m.state.Paused {
		m.controls.Release()
	}

	m.actions.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the current run once, if the car has moved.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil {
		return
	}
	st := m.race.State()
	if !st.Started || st.Distance <= 0 {
		return
	}

	run := storage.Run{
		TrackID:  m.race.ID(),
		Elapsed:  time.Duration(st.Elapsed * float64(time.Second)),
		Distance: st.Distance,
		Crashes:  st.Crashes,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "track", run.TrackID, "error", err)
		return
	}
	m.runSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.race.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".racer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.race.ID(), timestamp)

	//nolint:errcheck // Best-effort save, race continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.race.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the race status after the last tick.
func (m Model) State() core.RaceState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given race.
func Run(race registry.Race, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(race, store, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
