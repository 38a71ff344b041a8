package tron

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tron/internal/config"
	"github.com/vovakirdan/tui-tron/internal/core"
	"github.com/vovakirdan/tui-tron/internal/registry"
)

const frame = 16 * time.Millisecond

func newTestGame(t *testing.T, g *Game, clock *fakeClock) *Game {
	t.Helper()
	if clock != nil {
		g.now = clock.now
	}
	g.Reset(core.DefaultConfig())
	return g
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDCoarse, IDFine} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}

	g, err := registry.Create(IDFine)
	if err != nil {
		t.Fatalf("Create(%q) error = %v", IDFine, err)
	}
	if g.ID() != IDFine {
		t.Errorf("ID() = %q, expected %q", g.ID(), IDFine)
	}
}

func TestGameZoneCount(t *testing.T) {
	coarse := newTestGame(t, New(), nil)
	if z := coarse.Match().Arena().Zones(); z != 5 {
		t.Errorf("tron zones = %d, expected 5", z)
	}

	fine := newTestGame(t, NewFine(), nil)
	if z := fine.Match().Arena().Zones(); z != 10 {
		t.Errorf("tron_fine zones = %d, expected 10", z)
	}
}

func TestGameConfigLoadedOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tron.yaml")
	write := func(zones int) {
		t.Helper()
		body := fmt.Sprintf("input:\n  zones: %d\n", zones)
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("WriteFile() failed: %v", err)
		}
	}
	SetConfigPath(path)
	defer SetConfigPath("")

	write(10)
	g := New()
	if z := g.Zones(); z != 10 {
		t.Fatalf("Zones() = %d, expected 10", z)
	}

	// Later edits reach new games only
	write(5)
	if z := g.Zones(); z != 10 {
		t.Errorf("Zones() after edit = %d, expected cached 10", z)
	}
	g.Reset(core.DefaultConfig())
	if z := g.Match().Arena().Zones(); z != 10 {
		t.Errorf("arena zones after Reset = %d, expected cached 10", z)
	}
	if z := New().Zones(); z != 5 {
		t.Errorf("new game Zones() = %d, expected 5", z)
	}
}

func TestGameTurnActions(t *testing.T) {
	tests := []struct {
		name     string
		game     func() *Game
		action   core.Action
		expected float64
	}{
		{"coarse right", New, core.ActionTurnRight, 72},
		{"coarse left", New, core.ActionTurnLeft, 288},
		{"fine right", NewFine, core.ActionTurnRight, 36},
		{"fine left", NewFine, core.ActionTurnLeft, 324},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, tc.game(), nil)

			in := core.NewInputFrame()
			in.Set(tc.action)
			g.Step(in, frame)

			if h := g.Match().Arena().Local().Heading(); h != tc.expected {
				t.Errorf("Heading() = %v, expected %v", h, tc.expected)
			}
		})
	}
}

func TestGameTurnTwice(t *testing.T) {
	g := newTestGame(t, New(), nil)

	in := core.NewInputFrame()
	in.Set(core.ActionTurnRight)
	g.Step(in, frame)
	g.Step(in, frame)

	if h := g.Match().Arena().Local().Heading(); h != 144 {
		t.Errorf("Heading() = %v, expected 144", h)
	}
}

func TestGameZoneBeatsTurn(t *testing.T) {
	g := newTestGame(t, New(), nil)

	in := core.NewInputFrame()
	in.Set(core.ActionTurnRight)
	in.PressZone(3)
	g.Step(in, frame)

	if h := g.Match().Arena().Local().Heading(); h != 216 {
		t.Errorf("Heading() = %v, expected 216", h)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, New(), nil)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, frame)

	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	before := g.Match().Arena().Local().Position()
	g.Step(core.NewInputFrame(), time.Second)
	if after := g.Match().Arena().Local().Position(); after != before {
		t.Errorf("paused agent moved from %v to %v", before, after)
	}

	g.Step(pause, frame)
	if g.State().Paused {
		t.Error("game should be unpaused")
	}
}

func TestGameRestartOnlyWhenDone(t *testing.T) {
	g := newTestGame(t, New(), nil)

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)

	g.Step(core.NewInputFrame(), frame)
	running := g.Match()
	g.Step(restart, frame)
	if g.Match() != running {
		t.Fatal("restart during a running match should be ignored")
	}

	running.Arena().Local().Die()
	g.Step(core.NewInputFrame(), frame)
	if !g.State().GameOver {
		t.Fatal("game should be over")
	}

	g.Step(restart, frame)
	if g.Match() == running {
		t.Fatal("restart after game over should start a new match")
	}
	if g.State().GameOver || !g.Match().Arena().Local().Alive() {
		t.Error("new match should be running with a living agent")
	}
	if g.Snapshot().Tick != 0 {
		t.Errorf("Tick = %d after restart, expected 0", g.Snapshot().Tick)
	}
}

func TestGameScoreIsWholeSeconds(t *testing.T) {
	clock := newFakeClock()
	g := newTestGame(t, New(), clock)

	clock.advance(2700 * time.Millisecond)
	if s := g.State().Score; s != 2 {
		t.Errorf("Score = %d, expected 2", s)
	}
}

func TestGameRender(t *testing.T) {
	clock := newFakeClock()
	g := newTestGame(t, New(), clock)

	screen := core.NewScreen(80, 40)
	g.Render(screen)
	if hud := screen.Row(0); !strings.Contains(hud, "Light Cycles") || !strings.Contains(hud, "Alive: 1/1") {
		t.Errorf("HUD = %q", hud)
	}

	clock.advance(1500 * time.Millisecond)
	g.Match().Arena().Local().Die()
	g.Step(core.NewInputFrame(), frame)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "1.500s") {
		t.Errorf("screen should show the match duration:\n%s", out)
	}
	if !strings.Contains(screen.Row(39), "Press R") {
		t.Errorf("last row = %q, expected restart hint", screen.Row(39))
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t, New(), nil)

	screen := core.NewScreen(30, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window") {
		t.Errorf("tiny screen should show a size warning:\n%s", screen.String())
	}
}

func TestGameDifficultyRamp(t *testing.T) {
	SetDifficultyPreset(string(config.DifficultyHard))
	defer SetDifficultyPreset("")

	g := newTestGame(t, New(), nil)
	g.Step(core.NewInputFrame(), frame)

	if s := g.Match().Arena().Local().Speed(); s <= 75 {
		t.Errorf("Speed() = %v, expected above the hard base speed 75", s)
	}
}

func TestGameConstantSpeedByDefault(t *testing.T) {
	g := newTestGame(t, New(), nil)
	for range 10 {
		g.Step(core.NewInputFrame(), frame)
	}

	if s := g.Match().Arena().Local().Speed(); s != DefaultSpeed {
		t.Errorf("Speed() = %v, expected %v", s, DefaultSpeed)
	}
}

func TestDeterminism(t *testing.T) {
	clock := newFakeClock()
	g1 := newTestGame(t, New(), clock)
	g2 := newTestGame(t, New(), clock)

	for i := range 120 {
		in := core.NewInputFrame()
		switch i {
		case 20:
			in.Set(core.ActionTurnRight)
		case 45:
			in.PressZone(2)
		case 70:
			in.Set(core.ActionTurnLeft)
		}
		g1.Step(in, frame)
		g2.Step(in, frame)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}
