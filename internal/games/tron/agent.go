package tron

import (
	"iter"
	"math"

	"github.com/vovakirdan/tui-tron/internal/core"
	"github.com/vovakirdan/tui-tron/internal/geom"
)

// Agent defaults.
const (
	DefaultSpeed      = 60.0  // units per second
	DefaultRadius     = 120.0 // arena boundary
	DefaultMarkerSize = 10.0
)

// AgentOptions configures a new agent. Zero values select the defaults,
// except Speed and Heading where zero is meaningful; use DefaultAgentOptions.
type AgentOptions struct {
	Heading    float64 // degrees, 0 = north, clockwise
	Speed      float64 // units per second
	Radius     float64 // boundary radius, agent dies beyond it
	MarkerSize float64
	Color      core.Color
}

// DefaultAgentOptions returns the options of a freshly spawned agent.
func DefaultAgentOptions() AgentOptions {
	return AgentOptions{
		Heading:    0,
		Speed:      DefaultSpeed,
		Radius:     DefaultRadius,
		MarkerSize: DefaultMarkerSize,
		Color:      core.ColorBrightYellow,
	}
}

// Agent is a light cycle: a moving head that leaves a trail of waypoints.
//
// trail[0] is the spawn point. Each heading change appends the position at
// which it happened; the pair (trail[last], position) is the live segment
// that grows every tick.
type Agent struct {
	position geom.Point
	heading  float64
	speed    float64
	trail    []geom.Point
	alive    bool

	radius     float64
	markerSize float64
	color      core.Color
}

// NewAgent spawns an agent at the given point.
func NewAgent(spawn geom.Point, opts AgentOptions) *Agent {
	if !(opts.Radius > 0) || math.IsInf(opts.Radius, 0) {
		opts.Radius = DefaultRadius
	}
	if !(opts.MarkerSize > 0) || math.IsInf(opts.MarkerSize, 0) {
		opts.MarkerSize = DefaultMarkerSize
	}

	a := &Agent{
		position:   spawn,
		heading:    opts.Heading,
		trail:      []geom.Point{spawn},
		alive:      true,
		radius:     opts.Radius,
		markerSize: opts.MarkerSize,
		color:      opts.Color,
	}
	a.SetSpeed(opts.Speed)
	return a
}

// Position returns the current head position.
func (a *Agent) Position() geom.Point {
	return a.position
}

// Heading returns the direction of travel in degrees.
func (a *Agent) Heading() float64 {
	return a.heading
}

// Speed returns the speed in units per second.
func (a *Agent) Speed() float64 {
	return a.speed
}

// Alive reports whether the agent is still riding.
func (a *Agent) Alive() bool {
	return a.alive
}

// Color returns the trail color.
func (a *Agent) Color() core.Color {
	return a.color
}

// Trail returns a copy of the waypoints, spawn point first.
// The current position is not included.
func (a *Agent) Trail() []geom.Point {
	return append([]geom.Point(nil), a.trail...)
}

// SetDirection turns the agent. Turning to the current heading or reversing
// by 180 degrees is ignored; any other turn freezes the live segment at the
// current position.
func (a *Agent) SetDirection(heading float64) {
	if isReversal(a.heading, heading) {
		return
	}
	if heading == a.heading {
		return
	}
	a.heading = heading
	a.trail = append(a.trail, a.position)
}

// isReversal reports whether (to - from) mod 360 is exactly 180.
func isReversal(from, to float64) bool {
	diff := math.Mod(to-from, 360)
	if diff < 0 {
		diff += 360
	}
	return diff == 180
}

// SetSpeed changes the speed. Negative or non-finite speeds are ignored.
func (a *Agent) SetSpeed(speed float64) {
	if !(speed >= 0) || math.IsInf(speed, 0) {
		return
	}
	a.speed = speed
}

// Move advances the head by speed * deltaMS. Leaving the arena kills the agent.
func (a *Agent) Move(deltaMS float64) {
	if !a.alive {
		return
	}

	rad := a.heading * math.Pi / 180
	dist := a.speed * deltaMS / 1000
	a.position = geom.Point{
		X: a.position.X + dist*math.Sin(rad),
		Y: a.position.Y - dist*math.Cos(rad),
	}

	if a.position.LenSq() > a.radius*a.radius {
		a.Die()
	}
}

// LiveSegment returns the segment from the last waypoint to the head.
func (a *Agent) LiveSegment() geom.Segment {
	return geom.Segment{Start: a.trail[len(a.trail)-1], End: a.position}
}

// Segments yields the trail as segments: each consecutive pair of
// waypoints, then the live segment. The sequence reads the agent's current
// state each time it is ranged over.
func (a *Agent) Segments() iter.Seq[geom.Segment] {
	return func(yield func(geom.Segment) bool) {
		last := a.trail[0]
		for _, p := range a.trail[1:] {
			if !yield(geom.Segment{Start: last, End: p}) {
				return
			}
			last = p
		}
		yield(geom.Segment{Start: last, End: a.position})
	}
}

// CheckCollision kills the agent if its live segment crosses any of the
// given segments. The live segment itself is skipped by equality, not by
// geometry. Zero-length segments (left by turning without moving) have no
// extent and never collide, either as the live segment or as a candidate.
func (a *Agent) CheckCollision(all []geom.Segment) {
	if !a.alive {
		return
	}

	live := a.LiveSegment()
	if live.Degenerate() {
		return
	}

	for _, s := range all {
		if s == live || s.Degenerate() {
			continue
		}
		if geom.Intersects(live, s) {
			a.Die()
			return
		}
	}
}

// Die marks the agent dead. Dead agents stay dead.
func (a *Agent) Die() {
	a.alive = false
}
