package raster

import "math"

// gradientMatrix builds the inverse of the transform that carries the
// unit gradient segment (0,0)->(1,0) onto p0->p1. Applying the result to
// a device point yields the gradient parameter u in its X coordinate.
func gradientMatrix(p0, p1 Point) (Matrix, bool) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	fwd := Matrix{
		A: dx, B: -dy, C: p0.X,
		D: dy, E: dx, F: p0.Y,
	}
	return fwd.Invert()
}

// NewLinearGradient returns a shader interpolating colors along the
// segment p0 -> p1. One- and two-color stop arrays take dedicated fast
// paths. Returns nil when colors is empty.
func NewLinearGradient(p0, p1 Point, colors []Color, mode TileMode) Shader {
	switch len(colors) {
	case 0:
		return nil
	case 1:
		return &singleColorShader{pix: colors[0].Pixel()}
	case 2:
		g := &twoColorGradient{c0: colors[0], c1: colors[1], mode: mode}
		g.left = colors[0].Pixel()
		g.right = colors[1].Pixel()
		g.grad, g.ok = gradientMatrix(p0, p1)
		return g
	}
	g := &linearGradient{mode: mode}
	g.colors = make([]Color, len(colors)+1)
	copy(g.colors, colors)
	// sentinel past the last stop; read with weight zero when u == 1
	g.colors[len(colors)] = White
	g.n = len(colors)
	g.grad, g.ok = gradientMatrix(p0, p1)
	return g
}

// singleColorShader ignores geometry entirely and emits one pixel.
type singleColorShader struct {
	pix Pixel
}

func (s *singleColorShader) IsOpaque() bool {
	return false
}

func (s *singleColorShader) SetContext(Matrix) bool {
	return true
}

func (s *singleColorShader) ShadeRow(x, y, count int, row []Pixel) {
	for j := 0; j < count; j++ {
		row[j] = s.pix
	}
}

// twoColorGradient avoids the color-index arithmetic of the general
// gradient and short-circuits the clamped ends to prepacked pixels.
type twoColorGradient struct {
	c0, c1      Color
	left, right Pixel
	grad        Matrix
	m           Matrix
	mode        TileMode
	ok          bool
}

func (g *twoColorGradient) IsOpaque() bool {
	return g.c0.A == 1 && g.c1.A == 1
}

func (g *twoColorGradient) SetContext(ctm Matrix) bool {
	if !g.ok {
		return false
	}
	inv, ok := ctm.Invert()
	if !ok {
		return false
	}
	g.m = g.grad.Multiply(inv)
	return true
}

func (g *twoColorGradient) ShadeRow(x, y, count int, row []Pixel) {
	local := g.m.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
	dx := g.m.A
	for j := 0; j < count; j++ {
		u := local.X + dx*float64(j)
		if g.mode == TileClamp {
			if u <= 0 {
				row[j] = g.left
				continue
			}
			if u >= 1 {
				row[j] = g.right
				continue
			}
		} else {
			u = tileUnit(u, g.mode)
		}
		row[j] = g.c0.Lerp(g.c1, u).Pixel()
	}
}

// linearGradient is the general n-color stop gradient.
type linearGradient struct {
	colors []Color // n stops plus a sentinel
	n      int
	grad   Matrix
	m      Matrix
	mode   TileMode
	ok     bool
}

func (g *linearGradient) IsOpaque() bool {
	for _, c := range g.colors[:g.n] {
		if c.A != 1 {
			return false
		}
	}
	return true
}

func (g *linearGradient) SetContext(ctm Matrix) bool {
	if !g.ok {
		return false
	}
	inv, ok := ctm.Invert()
	if !ok {
		return false
	}
	g.m = g.grad.Multiply(inv)
	return true
}

func (g *linearGradient) ShadeRow(x, y, count int, row []Pixel) {
	local := g.m.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
	dx := g.m.A
	for j := 0; j < count; j++ {
		u := tileUnit(local.X+dx*float64(j), g.mode)
		f := u * float64(g.n-1)
		i := int(math.Floor(f))
		w := float64(i+1) - f
		row[j] = g.colors[i].Lerp(g.colors[i+1], 1-w).Pixel()
	}
}
