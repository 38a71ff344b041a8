package core

import "math"

// Surface is the drawing contract games render against. Coordinates are in
// game space; the implementation decides how they map onto the output.
type Surface interface {
	// SetColor selects the color for subsequent strokes, fills and text.
	SetColor(c Color)
	// MoveTo starts a new polyline at (x, y).
	MoveTo(x, y float64)
	// LineTo extends the current polyline to (x, y).
	LineTo(x, y float64)
	// Stroke draws every polyline accumulated since the last Stroke.
	Stroke()
	// FillRect fills the axis-aligned rectangle with top-left (x, y).
	FillRect(x, y, w, h float64)
	// Text draws text centered on (x, y).
	Text(x, y float64, text string)
}

// Glyphs used when rasterizing onto a Screen.
const (
	RuneStroke  = '•'
	RuneFill    = '█'
	RuneOverlay = '░'
)

type cellPos struct {
	x, y int
}

// Canvas rasterizes Surface calls into a Screen region.
// Game space [-extent, extent] on both axes is fit into the region, with
// cells treated as twice as tall as they are wide.
type Canvas struct {
	dst   *Screen
	view  Rect
	color Color

	sx, sy float64 // cells per game unit
	ox, oy float64 // cell position of the game origin

	paths [][]cellPos
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates a canvas drawing into the view region of dst.
func NewCanvas(dst *Screen, view Rect, extent float64) *Canvas {
	if extent <= 0 {
		extent = 1
	}

	sy := float64(max(view.H-1, 0)) / (2 * extent)
	sx := 2 * sy
	if maxW := float64(max(view.W-1, 0)); 2*extent*sx > maxW {
		sx = maxW / (2 * extent)
		sy = sx / 2
	}

	return &Canvas{
		dst:   dst,
		view:  view,
		color: ColorDefault,
		sx:    sx,
		sy:    sy,
		ox:    float64(view.X) + float64(view.W-1)/2,
		oy:    float64(view.Y) + float64(view.H-1)/2,
	}
}

// Project maps a game-space point to the nearest screen cell.
func (c *Canvas) Project(x, y float64) (int, int) {
	return int(math.Round(c.ox + x*c.sx)), int(math.Round(c.oy + y*c.sy))
}

// SetColor selects the current color.
func (c *Canvas) SetColor(col Color) {
	c.color = col
}

// MoveTo starts a new polyline.
func (c *Canvas) MoveTo(x, y float64) {
	px, py := c.Project(x, y)
	c.paths = append(c.paths, []cellPos{{px, py}})
}

// LineTo extends the current polyline, starting one if none is open.
func (c *Canvas) LineTo(x, y float64) {
	if len(c.paths) == 0 {
		c.MoveTo(x, y)
		return
	}
	px, py := c.Project(x, y)
	last := len(c.paths) - 1
	c.paths[last] = append(c.paths[last], cellPos{px, py})
}

// Stroke rasterizes and discards the pending polylines.
func (c *Canvas) Stroke() {
	for _, path := range c.paths {
		if len(path) == 1 {
			c.plot(path[0].x, path[0].y, RuneStroke)
			continue
		}
		for i := 1; i < len(path); i++ {
			c.line(path[i-1], path[i])
		}
	}
	c.paths = c.paths[:0]
}

// FillRect fills every cell the rectangle touches, at least one. The
// rectangle is clipped to the view before it is walked.
func (c *Canvas) FillRect(x, y, w, h float64) {
	fx0, fy0 := c.ox+x*c.sx, c.oy+y*c.sy
	fx1, fy1 := c.ox+(x+w)*c.sx, c.oy+(y+h)*c.sy
	if math.IsNaN(fx0 + fy0 + fx1 + fy1) {
		return
	}
	if fx0 > fx1 {
		fx0, fx1 = fx1, fx0
	}
	if fy0 > fy1 {
		fy0, fy1 = fy1, fy0
	}

	// Clip in float space so huge rectangles cannot overflow int.
	x0 := int(math.Round(math.Max(fx0, float64(c.view.X))))
	x1 := int(math.Round(math.Min(fx1, float64(c.view.Right()-1))))
	y0 := int(math.Round(math.Max(fy0, float64(c.view.Y))))
	y1 := int(math.Round(math.Min(fy1, float64(c.view.Bottom()-1))))

	fill := RuneFill
	if c.color == ColorOverlay {
		fill = RuneOverlay
	}
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			c.plot(cx, cy, fill)
		}
	}
}

// Text draws text centered on the projected point.
func (c *Canvas) Text(x, y float64, text string) {
	runes := []rune(text)
	cx, cy := c.Project(x, y)
	start := cx - len(runes)/2
	for i, r := range runes {
		c.plot(start+i, cy, r)
	}
}

func (c *Canvas) plot(x, y int, r rune) {
	if !c.view.Contains(x, y) {
		return
	}
	c.dst.SetCell(x, y, r, c.color)
}

// line draws a Bresenham line between two cells, both ends included.
func (c *Canvas) line(a, b cellPos) {
	dx := Abs(b.x - a.x)
	dy := -Abs(b.y - a.y)
	stepX, stepY := 1, 1
	if a.x > b.x {
		stepX = -1
	}
	if a.y > b.y {
		stepY = -1
	}

	err := dx + dy
	x, y := a.x, a.y
	for {
		c.plot(x, y, RuneStroke)
		if x == b.x && y == b.y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += stepX
		}
		if e2 <= dx {
			err += dx
			y += stepY
		}
	}
}
