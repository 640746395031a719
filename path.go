package raster

import "math"

// Verb identifies a path segment type.
type Verb uint8

const (
	// VerbMove starts a new contour.
	VerbMove Verb = iota
	// VerbLine is a line segment.
	VerbLine
	// VerbQuad is a quadratic Bezier segment.
	VerbQuad
	// VerbCubic is a cubic Bezier segment.
	VerbCubic
	// VerbDone terminates iteration.
	VerbDone
)

// Direction is the winding direction of a contour.
type Direction uint8

const (
	// Clockwise winds in device order (y grows downward).
	Clockwise Direction = iota
	// CounterClockwise winds against device order.
	CounterClockwise
)

// Path is an ordered sequence of verbs with a parallel point stream.
// A Move starts a new contour; contours are closed implicitly by the
// rasterizer. Move and Line carry one point, Quad two, Cubic three.
type Path struct {
	verbs []Verb
	pts   []Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new contour at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, VerbMove)
	p.pts = append(p.pts, Pt(x, y))
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.verbs = append(p.verbs, VerbLine)
	p.pts = append(p.pts, Pt(x, y))
}

// QuadTo draws a quadratic Bezier with control point (cx, cy) to (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.verbs = append(p.verbs, VerbQuad)
	p.pts = append(p.pts, Pt(cx, cy), Pt(x, y))
}

// CubicTo draws a cubic Bezier with control points (c1x, c1y) and
// (c2x, c2y) to (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.verbs = append(p.verbs, VerbCubic)
	p.pts = append(p.pts, Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y))
}

// AddRect adds a rectangle contour with the given winding direction.
func (p *Path) AddRect(r Rect, dir Direction) {
	pts := [4]Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	if dir == Clockwise {
		p.LineTo(pts[1].X, pts[1].Y)
		p.LineTo(pts[2].X, pts[2].Y)
		p.LineTo(pts[3].X, pts[3].Y)
	} else {
		p.LineTo(pts[3].X, pts[3].Y)
		p.LineTo(pts[2].X, pts[2].Y)
		p.LineTo(pts[1].X, pts[1].Y)
	}
	p.LineTo(pts[0].X, pts[0].Y)
}

// AddPolygon adds a closed polygon contour through pts.
func (p *Path) AddPolygon(pts []Point) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
}

// Quadratic control net of the first quarter of the unit circle,
// tan(pi/8) construction. The remaining quarters are reflections.
const (
	tanPi8 = 0.4142
	cosPi4 = 0.7071
)

// AddCircle adds a circle contour approximated by eight quadratic
// Bezier segments.
func (p *Path) AddCircle(center Point, radius float64, dir Direction) {
	mx := Translate(center.X, center.Y).Multiply(Scale(radius, radius))

	start := mx.TransformPoint(Pt(1, 0))
	p.MoveTo(start.X, start.Y)

	var unit []Point
	if dir == CounterClockwise {
		unit = []Point{
			{1, -tanPi8}, {cosPi4, -cosPi4},
			{tanPi8, -1}, {0, -1},
			{-tanPi8, -1}, {-cosPi4, -cosPi4},
			{-1, -tanPi8}, {-1, 0},
			{-1, tanPi8}, {-cosPi4, cosPi4},
			{-tanPi8, 1}, {0, 1},
			{tanPi8, 1}, {cosPi4, cosPi4},
			{1, tanPi8}, {1, 0},
		}
	} else {
		unit = []Point{
			{1, tanPi8}, {cosPi4, cosPi4},
			{tanPi8, 1}, {0, 1},
			{-tanPi8, 1}, {-cosPi4, cosPi4},
			{-1, tanPi8}, {-1, 0},
			{-1, -tanPi8}, {-cosPi4, -cosPi4},
			{-tanPi8, -1}, {0, -1},
			{tanPi8, -1}, {cosPi4, -cosPi4},
			{1, -tanPi8}, {1, 0},
		}
	}
	mx.MapPoints(unit, unit)
	for i := 0; i < 8; i++ {
		ctrl := unit[2*i]
		end := unit[2*i+1]
		p.QuadTo(ctrl.X, ctrl.Y, end.X, end.Y)
	}
}

// Transform applies m to every point of the path in place.
func (p *Path) Transform(m Matrix) {
	m.MapPoints(p.pts, p.pts)
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	q := &Path{
		verbs: make([]Verb, len(p.verbs)),
		pts:   make([]Point, len(p.pts)),
	}
	copy(q.verbs, p.verbs)
	copy(q.pts, p.pts)
	return q
}

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool {
	return len(p.verbs) == 0
}

// Bounds returns the bounding box of the path's control points.
// Curve segments may stay strictly inside it.
func (p *Path) Bounds() Rect {
	if len(p.pts) == 0 {
		return Rect{}
	}
	min := p.pts[0]
	max := p.pts[0]
	for _, pt := range p.pts[1:] {
		min.X = math.Min(min.X, pt.X)
		min.Y = math.Min(min.Y, pt.Y)
		max.X = math.Max(max.X, pt.X)
		max.Y = math.Max(max.Y, pt.Y)
	}
	return Rect{Min: min, Max: max}
}

// Edger iterates a path's segments in drawing order, yielding for each
// segment its full control polygon: [start, end] for VerbLine,
// [start, ctrl, end] for VerbQuad, [start, c1, c2, end] for VerbCubic.
// The closing line of every drawn contour is emitted implicitly.
type Edger struct {
	path    *Path
	vi, pi  int
	cur     Point
	start   Point
	started bool
}

// Edger returns an iterator over the path's segments.
func (p *Path) Edger() *Edger {
	return &Edger{path: p}
}

// Next stores the next segment's points into pts (capacity >= 4) and
// returns its verb, or VerbDone when the path is exhausted.
func (e *Edger) Next(pts []Point) Verb {
	p := e.path
	for e.vi < len(p.verbs) {
		switch p.verbs[e.vi] {
		case VerbMove:
			if e.started && e.cur != e.start {
				// close the previous contour before starting the next
				pts[0] = e.cur
				pts[1] = e.start
				e.cur = e.start
				e.started = false
				return VerbLine
			}
			e.cur = p.pts[e.pi]
			e.start = e.cur
			e.started = false
			e.vi++
			e.pi++
		case VerbLine:
			pts[0] = e.cur
			pts[1] = p.pts[e.pi]
			e.cur = pts[1]
			e.started = true
			e.vi++
			e.pi++
			return VerbLine
		case VerbQuad:
			pts[0] = e.cur
			pts[1] = p.pts[e.pi]
			pts[2] = p.pts[e.pi+1]
			e.cur = pts[2]
			e.started = true
			e.vi++
			e.pi += 2
			return VerbQuad
		case VerbCubic:
			pts[0] = e.cur
			pts[1] = p.pts[e.pi]
			pts[2] = p.pts[e.pi+1]
			pts[3] = p.pts[e.pi+2]
			e.cur = pts[3]
			e.started = true
			e.vi++
			e.pi += 3
			return VerbCubic
		}
	}
	if e.started && e.cur != e.start {
		pts[0] = e.cur
		pts[1] = e.start
		e.cur = e.start
		e.started = false
		return VerbLine
	}
	return VerbDone
}
