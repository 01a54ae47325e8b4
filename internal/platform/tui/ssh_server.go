// Package tui provides terminal UI components including SSH server support via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/registry"
	"github.com/vovakirdan/tui-racer/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.racer/host_key.
	HostKeyPath string

	// DBPath is the path to the runs database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate for every session.
	TickRate int

	// Race holds the car and session settings shared by all sessions.
	Race registry.Options

	// Logger receives server and session events. If nil, a timestamped
	// logger on stderr is used.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.racer/runs.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer wraps a Wish SSH server for the racer.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "racer-ssh",
		})
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("ssh: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".racer", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("ssh: cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("ssh: cannot create server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	// Create runtime config from PTY size
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}

	// Create session model that handles menu + race flow
	logger := s.logger.With("user", sshSession.User())
	model := NewSessionModel(s.store, cfg, s.config.Race, logger)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen is the part of a session currently shown.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenRace
	screenScoreboard
)

// SessionModel manages the full racer session flow: menu -> race -> menu,
// with the runs scoreboard reachable from the menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	opts       registry.Options
	logger     *log.Logger
	screen     sessionScreen
	menu       MenuModel
	race       *Model
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, opts registry.Options, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	return SessionModel{
		store:  store,
		config: cfg,
		opts:   opts,
		logger: logger,
		menu:   NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenRace:
		return m.updateRace(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.screen = screenScoreboard
		return m, sb.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		r, err := registry.Create(selected.TrackID, m.opts)
		if err != nil {
			// Shouldn't happen since menu only shows registered tracks
			m.logger.Error("cannot start race", "track", selected.TrackID, "error", err)
			m.menu = NewMenuModel(m.store, m.config)
			return m, nil
		}

		m.config = m.menu.Config() // Get possibly updated config from resize
		m.logger.Info("race started", "track", r.ID())

		model := NewModel(r, m.store, m.config, m.logger)
		m.race = &model
		m.screen = screenRace
		return m, m.race.Init()
	}

	return m, cmd
}

// updateRace handles updates when a race is running.
func (m SessionModel) updateRace(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.race.Update(msg)
	if raceModel, ok := newModel.(Model); ok {
		m.race = &raceModel
	}

	if m.race.BackToMenu() {
		st := m.race.State()
		m.logger.Info("race finished", "track", m.race.race.ID(),
			"distance", fmt.Sprintf("%.0f", st.Distance), "crashes", st.Crashes)
		return m.returnToMenu()
	}

	if m.race.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is shown.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.returnToMenu()
	}

	return m, cmd
}

// returnToMenu drops the current screen and shows a fresh menu.
func (m SessionModel) returnToMenu() (tea.Model, tea.Cmd) {
	m.race = nil
	m.scoreboard = nil
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenRace:
		return m.race.View()
	case screenScoreboard:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}
