package raster

import "math"

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Chop splits the curve at t using de Casteljau's construction.
// The two halves share the split point.
func (q QuadBez) Chop(t float64) (QuadBez, QuadBez) {
	ab := q.P0.Lerp(q.P1, t)
	bc := q.P1.Lerp(q.P2, t)
	mid := ab.Lerp(bc, t)
	return QuadBez{P0: q.P0, P1: ab, P2: mid},
		QuadBez{P0: mid, P1: bc, P2: q.P2}
}

// Segments returns the number of equal-t chords needed so the flattened
// polyline stays within tol of the curve. The bound comes from the
// second difference of the control polygon: E = (P0 - 2*P1 + P2)/4,
// N = ceil(sqrt(|E|/tol)).
func (q QuadBez) Segments(tol float64) int {
	e := q.P0.Sub(q.P1.Mul(2)).Add(q.P2).Mul(0.25)
	n := int(math.Ceil(math.Sqrt(e.Length() / tol)))
	if n < 1 {
		n = 1
	}
	return n
}

// CubicBez represents a cubic Bezier curve with control points P0..P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Chop splits the curve at t using de Casteljau's construction.
// The two halves share the split point.
func (c CubicBez) Chop(t float64) (CubicBez, CubicBez) {
	ab := c.P0.Lerp(c.P1, t)
	bc := c.P1.Lerp(c.P2, t)
	cd := c.P2.Lerp(c.P3, t)
	abc := ab.Lerp(bc, t)
	bcd := bc.Lerp(cd, t)
	mid := abc.Lerp(bcd, t)
	return CubicBez{P0: c.P0, P1: ab, P2: abc, P3: mid},
		CubicBez{P0: mid, P1: bcd, P2: cd, P3: c.P3}
}

// Segments returns the number of equal-t chords needed so the flattened
// polyline stays within tol of the curve. The bound uses the component-wise
// maximum of the two second differences of the control polygon:
// N = ceil(sqrt(3*|E| / (4*tol))).
func (c CubicBez) Segments(tol float64) int {
	e0 := c.P0.Sub(c.P1.Mul(2)).Add(c.P2)
	e1 := c.P1.Sub(c.P2.Mul(2)).Add(c.P3)
	e := Point{
		X: math.Max(math.Abs(e0.X), math.Abs(e1.X)),
		Y: math.Max(math.Abs(e0.Y), math.Abs(e1.Y)),
	}
	n := int(math.Ceil(math.Sqrt(3 * e.Length() / (4 * tol))))
	if n < 1 {
		n = 1
	}
	return n
}
