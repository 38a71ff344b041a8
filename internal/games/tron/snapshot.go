package tron

import "time"

// AgentSnapshot captures one agent's state.
type AgentSnapshot struct {
	ID        AgentID
	X, Y      float64
	Heading   float64
	Speed     float64
	Alive     bool
	Waypoints int
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Zones    int
	Done     bool
	Paused   bool
	Duration time.Duration
	Agents   []AgentSnapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	arena := g.match.Arena()
	snap := Snapshot{
		Tick:     g.tick,
		Zones:    arena.Zones(),
		Done:     g.match.IsDone(),
		Paused:   g.paused,
		Duration: g.match.Duration(),
	}

	for _, id := range arena.IDs() {
		a, _ := arena.Agent(id)
		snap.Agents = append(snap.Agents, AgentSnapshot{
			ID:        id,
			X:         a.position.X,
			Y:         a.position.Y,
			Heading:   a.heading,
			Speed:     a.speed,
			Alive:     a.alive,
			Waypoints: len(a.trail),
		})
	}
	return snap
}
