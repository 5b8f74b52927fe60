// Package tui provides terminal UI components including SSH server support via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
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

	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/registry"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.dash/host_key.
	HostKeyPath string

	// DBPath is the path to the attempts database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.dash/dash.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server serving the level menu.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "dash-ssh",
		})
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open attempts database", "error", err)
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
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".dash", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
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
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
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
	cfg := core.DefaultConfig()
	cfg.ScreenW = pty.Window.Width
	cfg.ScreenH = pty.Window.Height

	// Create session model that handles menu + level flow
	logger := s.logger.With("user", sshSession.User())
	model := NewSessionModel(s.store, cfg, logger)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithReportFocus(),
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

// sessionScreen is the screen a session is currently showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenScoreboard
	screenLevel
)

// SessionModel manages the full session flow: menu -> level -> menu.
// This is the top-level model used for SSH sessions and the local menu.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	screen     sessionScreen
	menu       MenuModel
	scoreboard ScoreboardModel
	level      *Model
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		store:  store,
		config: cfg,
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
	case screenLevel:
		return m.updateLevel(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	// Check if user quit
	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.screen = screenScoreboard
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()
	}

	// Check if a level was selected
	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.LevelID)
		if err != nil {
			// Shouldn't happen since menu only shows registered levels
			m.logger.Error("cannot create level", "level", selected.LevelID, "err", err)
			m.menu = NewMenuModel(m.store, m.config)
			return m, nil
		}

		m.config = m.menu.Config() // Get possibly updated config from resize
		level := NewModel(game, m.store, m.config, WithLogger(m.logger.With("level", game.ID())))
		m.level = &level
		m.screen = screenLevel
		m.logger.Info("level started", "level", game.ID())

		return m, m.level.Init()
	}

	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is shown.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.scoreboard.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.scoreboard = board
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.toMenu()
	}
	return m, cmd
}

// updateLevel handles updates while a level is running.
func (m SessionModel) updateLevel(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.level.Update(msg)
	if level, ok := newModel.(Model); ok {
		m.level = &level
	}

	// Check if user left the level (back to menu)
	if m.level.BackToMenu() {
		m.logger.Info("level left", "level", m.level.game.ID(), "attempts", m.level.gameState.Attempts)
		return m.toMenu()
	}

	// Check if user quit entirely
	if m.level.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// toMenu returns to a freshly loaded menu.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.level = nil
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenLevel:
		return m.level.View()
	case screenScoreboard:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// RunSession runs the menu, scoreboard and levels in one local program.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(store, cfg, logger),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
