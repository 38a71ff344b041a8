package tron

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-tron/internal/core"
)

// ringSteps is the number of chords used to draw the arena boundary.
const ringSteps = 72

// FormatDuration renders a match duration as seconds with millisecond precision.
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// Draw renders the trail and head marker.
func (a *Agent) Draw(s core.Surface) {
	s.SetColor(a.color)
	s.MoveTo(a.trail[0].X, a.trail[0].Y)
	for _, p := range a.trail[1:] {
		s.LineTo(p.X, p.Y)
	}
	s.LineTo(a.position.X, a.position.Y)
	s.Stroke()

	if !a.alive {
		s.SetColor(core.ColorRed)
	}
	half := a.markerSize / 2
	s.FillRect(a.position.X-half, a.position.Y-half, a.markerSize, a.markerSize)
}

// Draw renders the boundary ring and every agent, local agent last.
func (a *Arena) Draw(s core.Surface) {
	s.SetColor(core.ColorGray)
	s.MoveTo(0, -a.radius)
	for i := 1; i <= ringSteps; i++ {
		theta := 2 * math.Pi * float64(i) / ringSteps
		s.LineTo(a.radius*math.Sin(theta), -a.radius*math.Cos(theta))
	}
	s.Stroke()

	agents := a.Agents()
	for i := len(agents) - 1; i >= 0; i-- {
		agents[i].Draw(s)
	}
}

// Draw renders the arena and, once the match is over, the duration overlay.
func (m *Match) Draw(s core.Surface) {
	m.arena.Draw(s)

	if !m.finished {
		return
	}
	r := m.arena.radius
	w, h := r*5/3, r/2
	s.SetColor(core.ColorOverlay)
	s.FillRect(-w/2, -h/2, w, h)
	s.SetColor(core.ColorBrightWhite)
	s.Text(0, 0, FormatDuration(m.duration))
}
