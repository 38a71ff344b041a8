package tron

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/vovakirdan/tui-tron/internal/core"
	"github.com/vovakirdan/tui-tron/internal/geom"
)

// AgentID identifies an agent within an arena.
type AgentID int

// LocalAgent is the id of the agent driven by local input.
const LocalAgent AgentID = 0

// ZoneInput is the directional input read by the arena each tick.
type ZoneInput interface {
	ZonePressed(zone int) bool
}

var _ ZoneInput = core.InputFrame{}

// ArenaConfig describes the arena to build.
type ArenaConfig struct {
	Radius float64      // boundary radius
	Zones  int          // directional zones, 5 or 10
	Spawns []geom.Point // one agent per spawn, the first is local
	Agent  AgentOptions // template for every agent; Color and Radius are set per agent
}

// DefaultArenaConfig returns the single-agent arena: one cycle at (-50, 0)
// heading north at 60 units/s inside a radius-120 circle.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Radius: DefaultRadius,
		Zones:  5,
		Spawns: []geom.Point{{X: -50, Y: 0}},
		Agent:  DefaultAgentOptions(),
	}
}

// Arena holds every agent of a match and advances them together.
type Arena struct {
	agents map[AgentID]*Agent
	local  AgentID
	zones  int
	radius float64
}

// NewArena creates the agents for every spawn. Agent ids follow spawn order.
func NewArena(cfg ArenaConfig) (*Arena, error) {
	if cfg.Zones != 5 && cfg.Zones != 10 {
		return nil, fmt.Errorf("tron: unsupported zone count %d (want 5 or 10)", cfg.Zones)
	}
	if !(cfg.Radius > 0) || math.IsInf(cfg.Radius, 0) {
		return nil, fmt.Errorf("tron: arena radius must be positive and finite, got %v", cfg.Radius)
	}
	if m := cfg.Agent.MarkerSize; math.IsNaN(m) || m > 2*cfg.Radius {
		return nil, fmt.Errorf("tron: marker size %v does not fit the arena", m)
	}
	if len(cfg.Spawns) == 0 {
		return nil, errors.New("tron: arena needs at least one spawn")
	}

	a := &Arena{
		agents: make(map[AgentID]*Agent, len(cfg.Spawns)),
		local:  LocalAgent,
		zones:  cfg.Zones,
		radius: cfg.Radius,
	}
	for i, spawn := range cfg.Spawns {
		opts := cfg.Agent
		opts.Radius = cfg.Radius
		opts.Color = core.PaletteColor(i)
		a.agents[AgentID(i)] = NewAgent(spawn, opts)
	}
	return a, nil
}

// Zones returns the number of directional zones.
func (a *Arena) Zones() int {
	return a.zones
}

// Radius returns the boundary radius.
func (a *Arena) Radius() float64 {
	return a.radius
}

// Local returns the locally controlled agent.
func (a *Arena) Local() *Agent {
	return a.agents[a.local]
}

// Agent returns the agent with the given id.
func (a *Arena) Agent(id AgentID) (*Agent, bool) {
	agent, ok := a.agents[id]
	return agent, ok
}

// IDs returns the agent ids in ascending order.
func (a *Arena) IDs() []AgentID {
	return slices.Sorted(maps.Keys(a.agents))
}

// Agents returns every agent in id order.
func (a *Arena) Agents() []*Agent {
	agents := make([]*Agent, 0, len(a.agents))
	for _, id := range a.IDs() {
		agents = append(agents, a.agents[id])
	}
	return agents
}

// ZoneHeading returns the heading selected by a zone.
func (a *Arena) ZoneHeading(zone int) float64 {
	return float64(zone) * (360 / float64(a.zones))
}

// HeadingZone returns the zone whose heading is closest to the given one.
func (a *Arena) HeadingZone(heading float64) int {
	step := 360 / float64(a.zones)
	zone := int(math.Floor(heading/step+0.5)) % a.zones
	if zone < 0 {
		zone += a.zones
	}
	return zone
}

// Tick advances the arena by deltaMS milliseconds.
//
// The first pressed zone steers the local agent, then every agent moves, then
// every agent is checked against the segments of all agents as they stand
// after the moves, so agents that collide in the same tick die together.
func (a *Arena) Tick(in ZoneInput, deltaMS float64) {
	if in != nil {
		for zone := range a.zones {
			if in.ZonePressed(zone) {
				a.Local().SetDirection(a.ZoneHeading(zone))
				break
			}
		}
	}

	for _, agent := range a.agents {
		agent.Move(deltaMS)
	}

	all := a.Segments()
	for _, agent := range a.agents {
		agent.CheckCollision(all)
	}
}

// Segments flattens every agent's trail into one slice.
func (a *Arena) Segments() []geom.Segment {
	var all []geom.Segment
	for _, agent := range a.agents {
		all = slices.AppendSeq(all, agent.Segments())
	}
	return all
}

// IsOver reports whether every agent is dead.
func (a *Arena) IsOver() bool {
	for _, agent := range a.agents {
		if agent.Alive() {
			return false
		}
	}
	return true
}

// AliveCount returns the number of agents still riding.
func (a *Arena) AliveCount() int {
	n := 0
	for _, agent := range a.agents {
		if agent.Alive() {
			n++
		}
	}
	return n
}
