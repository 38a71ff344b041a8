package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tron/internal/core"
	"github.com/vovakirdan/tui-tron/internal/multiplayer"
	"github.com/vovakirdan/tui-tron/internal/registry"
)

// helpHeight is the number of rows reserved below the game for the key help.
const helpHeight = 1

// zoneCounter is implemented by games steered with directional zones.
type zoneCounter interface {
	Zones() int
}

// timedGame is implemented by games scored by survival time.
type timedGame interface {
	Elapsed() time.Duration
}

// GameModel is the Bubble Tea model running one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	match      *multiplayer.Match
	results    *Results
	recorded   bool // current round already added to results
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	lastTick   time.Time

	standalone bool // back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. A nil match gets a fresh solo match;
// nil results get a private table.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, match *multiplayer.Match, results *Results) GameModel {
	if match == nil {
		match = multiplayer.NewMatch(game.ID(), multiplayer.MatchModeSolo, multiplayer.NewSessionID())
	}
	if results == nil {
		results = NewResults()
	}

	zones := core.MaxZones
	if zc, ok := game.(zoneCounter); ok {
		zones = zc.Zones()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		config:     cfg,
		match:      match,
		results:    results,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultGameKeyMap(zones),
		help:       help.New(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The arena scales to any size, so the round keeps going
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu only when the round can't be lost by leaving
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick advances the game by the real time since the previous tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	dt := frameDelta(m.lastTick, now, m.config.TickInterval())
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()
	m.recordResult()

	return m, tickCmd(m.config.TickInterval())
}

// recordResult adds a finished round to the results once.
func (m *GameModel) recordResult() {
	if !m.gameState.GameOver {
		m.recorded = false
		return
	}
	if m.recorded {
		return
	}
	m.recorded = true

	d := time.Duration(m.gameState.Score) * time.Second
	if tg, ok := m.game.(timedGame); ok {
		d = tg.Elapsed()
	}
	m.results.Record(m.game.ID(), d)
}

// View renders the game and the key help.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Match returns the match this model plays.
func (m GameModel) Match() *multiplayer.Match {
	return m.match
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, cfg, nil, nil)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
