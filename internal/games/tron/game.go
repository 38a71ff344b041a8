// Package tron implements the light cycle arena: agents that ride at constant
// speed, turn in discrete steps and die when their newest trail segment
// crosses any trail or when they leave the circular arena.
package tron

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tron/internal/config"
	"github.com/vovakirdan/tui-tron/internal/core"
	"github.com/vovakirdan/tui-tron/internal/geom"
	"github.com/vovakirdan/tui-tron/internal/registry"
)

// Registered game IDs.
const (
	IDCoarse = "tron"
	IDFine   = "tron_fine"
)

const hudHeight = 2

// Package-level settings applied on the next Reset (like the CLI flags they come from).
var (
	configPath       string
	difficultyPreset string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLogger sets the logger used by new matches. Nil restores the silent logger.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a Match to the platform's game interface.
type Game struct {
	id    string
	title string
	zones int // 0 = take the zone count from the config

	base       *config.TronConfig // loaded once, before presets
	cfg        config.TronConfig
	difficulty *config.DifficultyManager
	match      *Match
	tick       uint64
	paused     bool
	now        func() time.Time
}

// New creates the light cycle game with the configured zone count (5 by default).
func New() *Game {
	return &Game{
		id:    IDCoarse,
		title: "Light Cycles",
		now:   time.Now,
	}
}

// NewFine creates the light cycle game steered with 10 directional zones.
func NewFine() *Game {
	return &Game{
		id:    IDFine,
		title: "Light Cycles (10 zones)",
		zones: config.ZonesFine,
		now:   time.Now,
	}
}

func init() {
	registry.Register(IDCoarse, func() registry.Game {
		return New()
	})
	registry.Register(IDFine, func() registry.Game {
		return NewFine()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the configuration and starts a new match.
func (g *Game) Reset(_ core.RuntimeConfig) {
	cfg := g.baseConfig()

	preset, err := config.ParsePreset(difficultyPreset)
	if err != nil {
		logger.Warn("ignoring difficulty", "error", err)
	}
	config.ApplyTronPreset(&cfg, preset)

	if g.zones != 0 {
		cfg.Input.Zones = g.zones
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.paused = false
	g.newMatch()
}

// baseConfig returns a copy of the config file contents, reading the file on
// first use only. A file that fails to load falls back to the defaults.
func (g *Game) baseConfig() config.TronConfig {
	if g.base == nil {
		cfg, err := config.LoadTron(configPath)
		if err != nil {
			logger.Warn("using default config", "error", err)
			cfg = config.DefaultTronConfig()
		}
		g.base = &cfg
	}
	cfg := *g.base
	cfg.Spawns = slices.Clone(cfg.Spawns)
	return cfg
}

// newMatch replaces the current match with a fresh one.
func (g *Game) newMatch() {
	arena, err := NewArena(ArenaConfigFrom(g.cfg))
	if err != nil {
		logger.Error("invalid arena config, using defaults", "error", err)
		g.cfg = config.DefaultTronConfig()
		arena, _ = NewArena(DefaultArenaConfig())
	}
	g.tick = 0
	g.match = NewMatch(arena, WithClock(g.now), WithLogger(logger))
}

// ArenaConfigFrom converts loaded configuration into an arena description.
func ArenaConfigFrom(cfg config.TronConfig) ArenaConfig {
	spawns := make([]geom.Point, 0, len(cfg.Spawns))
	for _, s := range cfg.Spawns {
		spawns = append(spawns, geom.Point{X: s.X, Y: s.Y})
	}

	return ArenaConfig{
		Radius: cfg.Arena.Radius,
		Zones:  cfg.Input.Zones,
		Spawns: spawns,
		Agent: AgentOptions{
			Heading:    cfg.Agent.Heading,
			Speed:      cfg.Agent.Speed,
			MarkerSize: cfg.Agent.MarkerSize,
		},
	}
}

// Zones returns the number of directional zones the game is steered with.
func (g *Game) Zones() int {
	if g.match != nil {
		return g.match.Arena().Zones()
	}
	if g.zones != 0 {
		return g.zones
	}
	return g.baseConfig().Input.Zones
}

// Elapsed returns the running time of the current match, frozen once it is over.
func (g *Game) Elapsed() time.Duration {
	return g.match.Elapsed()
}

// Match returns the running match.
func (g *Game) Match() *Match {
	return g.match
}

// Step advances the game by dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && g.match.IsDone() {
		g.newMatch()
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.match.IsDone() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.applySpeed()
	g.match.Tick(g.steer(in), float64(dt)/float64(time.Millisecond))

	return core.StepResult{State: g.State()}
}

// steer turns relative turn actions into a press of the neighbouring zone.
// Direct zone presses take precedence.
func (g *Game) steer(in core.InputFrame) ZoneInput {
	if in.AnyZone() {
		return in
	}

	turn := 0
	if in.Has(core.ActionTurnLeft) {
		turn--
	}
	if in.Has(core.ActionTurnRight) {
		turn++
	}
	if turn == 0 {
		return in
	}

	arena := g.match.Arena()
	zones := arena.Zones()
	zone := arena.HeadingZone(arena.Local().Heading())

	steered := in.Clone()
	steered.PressZone((zone + turn + zones) % zones)
	return steered
}

// applySpeed ramps every agent's speed when difficulty progression is on.
func (g *Game) applySpeed() {
	if !g.difficulty.IsEnabled() {
		return
	}
	speed := g.difficulty.Speed(g.cfg.Agent.Speed, g.match.Elapsed())
	for _, agent := range g.match.Arena().Agents() {
		agent.SetSpeed(speed)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.match.Elapsed().Seconds()),
		GameOver: g.match.IsDone(),
		Paused:   g.paused,
	}
}

// Render draws the HUD and the arena.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if dst.Height() < hudHeight+5 || dst.Width() < 20 {
		dst.DrawTextCentered(dst.Height()-1, "Window too small", core.ColorBrightRed)
		return
	}

	view := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	g.match.Draw(core.NewCanvas(dst, view, g.match.Arena().Radius()))

	switch {
	case g.match.IsDone():
		dst.DrawTextCentered(dst.Height()-1, "Press R to restart, Esc for menu", core.ColorGray)
	case g.paused:
		dst.DrawTextCentered(view.Y+view.H/2, " Paused - press P to continue ", core.ColorBrightWhite)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	arena := g.match.Arena()
	hud := fmt.Sprintf(" %s | Time: %s  Alive: %d/%d  Speed: %.0f",
		g.title,
		FormatDuration(g.match.Elapsed()),
		arena.AliveCount(),
		len(arena.Agents()),
		arena.Local().Speed(),
	)
	dst.DrawText(0, 0, hud, core.ColorBrightCyan)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}
