package tron

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// MatchOption configures a Match.
type MatchOption func(*Match)

// WithClock replaces time.Now as the match's time source.
func WithClock(now func() time.Time) MatchOption {
	return func(m *Match) {
		m.now = now
	}
}

// WithLogger sets the logger for match lifecycle events.
func WithLogger(logger *log.Logger) MatchOption {
	return func(m *Match) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Match is one round in an arena. It measures how long the round lasts:
// the duration is latched once, on the tick where the last agent dies.
// Restarting means creating a new Match.
type Match struct {
	arena     *Arena
	startedAt time.Time
	finished  bool
	duration  time.Duration

	now    func() time.Time
	logger *log.Logger
}

// NewMatch starts a match in the given arena.
func NewMatch(arena *Arena, opts ...MatchOption) *Match {
	m := &Match{
		arena:  arena,
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.startedAt = m.now()
	m.logger.Info("match started", "agents", len(arena.agents), "zones", arena.zones)
	return m
}

// Arena returns the match's arena.
func (m *Match) Arena() *Arena {
	return m.arena
}

// StartedAt returns when the match began.
func (m *Match) StartedAt() time.Time {
	return m.startedAt
}

// Tick advances the arena and latches the duration when it is over.
func (m *Match) Tick(in ZoneInput, deltaMS float64) {
	m.arena.Tick(in, deltaMS)

	if m.finished || !m.arena.IsOver() {
		return
	}
	m.finished = true
	m.duration = m.now().Sub(m.startedAt)
	m.logger.Info("match over", "duration", FormatDuration(m.duration))
}

// IsDone reports whether every agent has died.
func (m *Match) IsDone() bool {
	return m.finished
}

// Duration returns the latched match duration, zero while the match runs.
func (m *Match) Duration() time.Duration {
	return m.duration
}

// Elapsed returns the running time so far, or the latched duration once done.
func (m *Match) Elapsed() time.Duration {
	if m.finished {
		return m.duration
	}
	return m.now().Sub(m.startedAt)
}
