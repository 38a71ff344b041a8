package tron

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-tron/internal/geom"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestMatch(t *testing.T, clock *fakeClock, cfg ArenaConfig) *Match {
	t.Helper()
	arena, err := NewArena(cfg)
	if err != nil {
		t.Fatalf("NewArena() error = %v", err)
	}
	return NewMatch(arena, WithClock(clock.now))
}

func TestMatchSingleAgentRun(t *testing.T) {
	clock := newFakeClock()
	m := newTestMatch(t, clock, DefaultArenaConfig())

	if !m.StartedAt().Equal(clock.now()) {
		t.Errorf("StartedAt() = %v, expected %v", m.StartedAt(), clock.now())
	}

	clock.advance(time.Second)
	m.Tick(nil, 1000)

	local := m.Arena().Local()
	if !approxPoint(local.Position(), geom.Point{X: -50, Y: -60}) {
		t.Fatalf("Position() = %v, expected (-50, -60)", local.Position())
	}
	if !local.Alive() {
		t.Fatal("agent at (-50, -60) should be alive")
	}
	if m.IsDone() {
		t.Fatal("match should still be running")
	}
	if m.Duration() != 0 {
		t.Errorf("Duration() = %v while running, expected 0", m.Duration())
	}
	if m.Elapsed() != time.Second {
		t.Errorf("Elapsed() = %v, expected 1s", m.Elapsed())
	}

	// (-50, -120) is outside the radius-120 circle
	clock.advance(time.Second)
	m.Tick(nil, 1000)

	if local.Alive() {
		t.Fatal("agent beyond the boundary should be dead")
	}
	if !m.Arena().IsOver() || !m.IsDone() {
		t.Fatal("match should be done")
	}
	if m.Duration() != 2*time.Second {
		t.Errorf("Duration() = %v, expected 2s", m.Duration())
	}
}

func TestMatchDurationLatchedOnce(t *testing.T) {
	clock := newFakeClock()
	cfg := DefaultArenaConfig()
	cfg.Spawns = []geom.Point{{X: 0, Y: -115}}
	m := newTestMatch(t, clock, cfg)

	clock.advance(1500 * time.Millisecond)
	m.Tick(nil, 1000)
	if !m.IsDone() {
		t.Fatal("match should be done")
	}
	latched := m.Duration()
	if latched != 1500*time.Millisecond {
		t.Fatalf("Duration() = %v, expected 1.5s", latched)
	}

	for range 5 {
		clock.advance(time.Second)
		m.Tick(nil, 1000)
	}

	if m.Duration() != latched {
		t.Errorf("Duration() changed to %v, expected %v", m.Duration(), latched)
	}
	if m.Elapsed() != latched {
		t.Errorf("Elapsed() = %v after finish, expected %v", m.Elapsed(), latched)
	}
}

func TestMatchWaitsForLastAgent(t *testing.T) {
	clock := newFakeClock()
	cfg := DefaultArenaConfig()
	cfg.Spawns = []geom.Point{{X: 0, Y: -115}, {X: 30, Y: 50}}
	m := newTestMatch(t, clock, cfg)

	m.Tick(nil, 1000)
	if m.Arena().Local().Alive() {
		t.Fatal("local agent should have left the arena")
	}
	if other, _ := m.Arena().Agent(1); !other.Alive() {
		t.Fatal("agent 1 should survive the first tick")
	}
	if m.IsDone() {
		t.Fatal("match should run while another agent is alive")
	}

	clock.advance(3 * time.Second)
	for range 5 {
		m.Tick(nil, 1000)
	}
	if !m.IsDone() {
		t.Fatal("match should be done once every agent is dead")
	}
	if m.Duration() != 3*time.Second {
		t.Errorf("Duration() = %v, expected 3s", m.Duration())
	}
}

func TestMatchNilLoggerKeepsDefault(t *testing.T) {
	arena, err := NewArena(DefaultArenaConfig())
	if err != nil {
		t.Fatalf("NewArena() error = %v", err)
	}
	m := NewMatch(arena, WithLogger(nil))
	if m.logger == nil {
		t.Error("WithLogger(nil) should keep the default logger")
	}
}
