package raster

import (
	"math"
	"testing"
)

func TestCubicEval(t *testing.T) {
	c := CubicBez{Pt(-1, 4), Pt(-1, 2), Pt(7, 2), Pt(7, 6)}
	tests := []struct {
		t    float64
		want Point
	}{
		{0, Pt(-1, 4)},
		{0.1, Pt(-0.776, 3.462)},
		{0.5, Pt(3, 2.75)},
		{1, Pt(7, 6)},
	}
	for _, tt := range tests {
		got := c.Eval(tt.t)
		if math.Abs(got.X-tt.want.X) > 1e-3 || math.Abs(got.Y-tt.want.Y) > 1e-3 {
			t.Errorf("Eval(%g) = (%g, %g), want (%g, %g)", tt.t, got.X, got.Y, tt.want.X, tt.want.Y)
		}
	}
}

func TestQuadEvalEndpoints(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(5, 10), Pt(10, 0)}
	if got := q.Eval(0); got != q.P0 {
		t.Errorf("Eval(0) = %+v, want %+v", got, q.P0)
	}
	if got := q.Eval(1); got != q.P2 {
		t.Errorf("Eval(1) = %+v, want %+v", got, q.P2)
	}
	mid := q.Eval(0.5)
	if math.Abs(mid.X-5) > 1e-12 || math.Abs(mid.Y-5) > 1e-12 {
		t.Errorf("Eval(0.5) = %+v, want (5, 5)", mid)
	}
}

func TestQuadChop(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(4, 8), Pt(8, 0)}
	for _, tv := range []float64{0.25, 0.5, 0.75} {
		l, r := q.Chop(tv)
		if l.P0 != q.P0 || r.P2 != q.P2 {
			t.Fatalf("Chop(%g) lost endpoints", tv)
		}
		if l.P2 != r.P0 {
			t.Fatalf("Chop(%g) halves do not share the split point", tv)
		}
		want := q.Eval(tv)
		if math.Abs(l.P2.X-want.X) > 1e-12 || math.Abs(l.P2.Y-want.Y) > 1e-12 {
			t.Fatalf("Chop(%g) split = %+v, want %+v", tv, l.P2, want)
		}
		// the left half re-evaluated at its own midpoint lies on the curve
		on := q.Eval(tv / 2)
		half := l.Eval(0.5)
		if math.Abs(on.X-half.X) > 1e-9 || math.Abs(on.Y-half.Y) > 1e-9 {
			t.Fatalf("Chop(%g) left half deviates from curve", tv)
		}
	}
}

func TestCubicChop(t *testing.T) {
	c := CubicBez{Pt(-1, 4), Pt(-1, 2), Pt(7, 2), Pt(7, 6)}
	l, r := c.Chop(0.5)
	if l.P0 != c.P0 || r.P3 != c.P3 {
		t.Fatal("Chop lost endpoints")
	}
	if l.P3 != r.P0 {
		t.Fatal("Chop halves do not share the split point")
	}
	want := c.Eval(0.5)
	if math.Abs(l.P3.X-want.X) > 1e-12 || math.Abs(l.P3.Y-want.Y) > 1e-12 {
		t.Fatalf("split point = %+v, want %+v", l.P3, want)
	}
	// sub-curves trace the original
	for _, tv := range []float64{0.2, 0.6, 0.9} {
		a := l.Eval(tv)
		b := c.Eval(tv / 2)
		if math.Abs(a.X-b.X) > 1e-9 || math.Abs(a.Y-b.Y) > 1e-9 {
			t.Fatalf("left half Eval(%g) = %+v, want %+v", tv, a, b)
		}
	}
}

func TestSegmentsDegenerate(t *testing.T) {
	// coincident control points flatten to at least one segment
	q := QuadBez{Pt(3, 3), Pt(3, 3), Pt(3, 3)}
	if n := q.Segments(0.25); n < 1 {
		t.Errorf("quad Segments = %d, want >= 1", n)
	}
	c := CubicBez{Pt(3, 3), Pt(3, 3), Pt(3, 3), Pt(3, 3)}
	if n := c.Segments(0.25); n < 1 {
		t.Errorf("cubic Segments = %d, want >= 1", n)
	}
}

// polylineDistance returns the distance from p to the nearest point of
// the polyline.
func polylineDistance(p Point, poly []Point) float64 {
	best := math.MaxFloat64
	for i := 0; i+1 < len(poly); i++ {
		best = math.Min(best, pointSegDistance(p, poly[i], poly[i+1]))
	}
	return best
}

func pointSegDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	den := ab.X*ab.X + ab.Y*ab.Y
	if den == 0 {
		return ap.Length()
	}
	t := (ap.X*ab.X + ap.Y*ab.Y) / den
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Sub(a.Add(ab.Mul(t))).Length()
}

func TestFlatteningWithinTolerance(t *testing.T) {
	const tol = 0.25

	t.Run("quad", func(t *testing.T) {
		q := QuadBez{Pt(0, 0), Pt(40, 80), Pt(80, 0)}
		n := q.Segments(tol)
		poly := make([]Point, 0, n+1)
		for k := 0; k <= n; k++ {
			poly = append(poly, q.Eval(float64(k)/float64(n)))
		}
		for i := 0; i <= 1000; i++ {
			p := q.Eval(float64(i) / 1000)
			if d := polylineDistance(p, poly); d > tol+1e-6 {
				t.Fatalf("t=%g: distance %g exceeds tolerance", float64(i)/1000, d)
			}
		}
	})

	t.Run("cubic", func(t *testing.T) {
		c := CubicBez{Pt(-10, 40), Pt(-10, -20), Pt(70, -20), Pt(70, 60)}
		n := c.Segments(tol)
		poly := make([]Point, 0, n+1)
		for k := 0; k <= n; k++ {
			poly = append(poly, c.Eval(float64(k)/float64(n)))
		}
		for i := 0; i <= 1000; i++ {
			p := c.Eval(float64(i) / 1000)
			if d := polylineDistance(p, poly); d > tol+1e-6 {
				t.Fatalf("t=%g: distance %g exceeds tolerance", float64(i)/1000, d)
			}
		}
	})
}
