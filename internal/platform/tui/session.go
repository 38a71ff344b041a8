package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tron/internal/core"
	"github.com/vovakirdan/tui-tron/internal/multiplayer"
	"github.com/vovakirdan/tui-tron/internal/registry"
)

// SessionModel manages the full session flow: menu -> game -> menu.
// It is the top-level model for SSH sessions and the local menu command.
type SessionModel struct {
	config    core.RuntimeConfig
	username  string
	sessionID multiplayer.SessionID
	results   *Results
	logger    *log.Logger
	menu      MenuModel
	gameModel *GameModel
	quitting  bool
}

// NewSessionModel creates a new session model. A nil logger discards output.
func NewSessionModel(cfg core.RuntimeConfig, username string, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	results := NewResults()

	return SessionModel{
		config:    cfg,
		username:  username,
		sessionID: multiplayer.NewSessionID(),
		results:   results,
		logger:    logger,
		menu:      NewMenuModel(results, cfg),
	}
}

// SessionID returns the session identifier.
func (m SessionModel) SessionID() multiplayer.SessionID {
	return m.sessionID
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

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
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

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	game, err := registry.Create(selected.GameID)
	if err != nil {
		// Menu only lists registered games
		m.logger.Error("cannot create game", "game", selected.GameID, "error", err)
		m.menu = NewMenuModel(m.results, m.config)
		return m, nil
	}

	m.config = m.menu.Config()
	match := multiplayer.NewMatch(game.ID(), multiplayer.MatchModeSolo, m.sessionID)
	m.logger.Info("game selected",
		"user", m.username,
		"session", m.sessionID.Short(),
		"match", match.ID().Short(),
		"mode", match.Mode().String(),
		"game", game.ID(),
	)

	gameModel := NewGameModel(game, m.config, match, m.results)
	m.gameModel = &gameModel
	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.menu = NewMenuModel(m.results, m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.menu.View()
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.gameModel != nil
}

// RunSession runs the menu/game loop in the local terminal.
func RunSession(cfg core.RuntimeConfig, username string, logger *log.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, username, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
