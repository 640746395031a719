package raster

// triBasis builds the affine matrix carrying the unit basis triangle
// (0,0), (1,0), (0,1) onto v0, v1, v2.
func triBasis(v [3]Point) Matrix {
	return Matrix{
		A: v[1].X - v[0].X, B: v[2].X - v[0].X, C: v[0].X,
		D: v[1].Y - v[0].Y, E: v[2].Y - v[0].Y, F: v[0].Y,
	}
}

// triColorShader interpolates three vertex colors linearly in barycentric
// coordinates. The color is evaluated once per row and advanced with a
// constant per-pixel increment.
type triColorShader struct {
	colors [3]Color
	toBary Matrix
	m      Matrix
	opaque bool
	ok     bool
}

// NewTriColorShader interpolates colors over the triangle verts.
func NewTriColorShader(colors [3]Color, verts [3]Point) Shader {
	s := &triColorShader{colors: colors}
	s.toBary, s.ok = triBasis(verts).Invert()
	s.opaque = colors[0].A == 1 && colors[1].A == 1 && colors[2].A == 1
	return s
}

func (s *triColorShader) IsOpaque() bool {
	return s.opaque
}

func (s *triColorShader) SetContext(ctm Matrix) bool {
	if !s.ok {
		return false
	}
	inv, ok := ctm.Invert()
	if !ok {
		return false
	}
	s.m = s.toBary.Multiply(inv)
	return true
}

func (s *triColorShader) ShadeRow(x, y, count int, row []Pixel) {
	dc1 := s.colors[1].Sub(s.colors[0])
	dc2 := s.colors[2].Sub(s.colors[0])
	dc := dc1.Mul(s.m.A).Add(dc2.Mul(s.m.D))
	bary := s.m.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
	c := dc1.Mul(bary.X).Add(dc2.Mul(bary.Y)).Add(s.colors[0])
	for i := 0; i < count; i++ {
		row[i] = c.Pixel()
		c = c.Add(dc)
	}
}

// triTexShader maps a texture triangle onto a device triangle. The
// texture-to-vertex matrix is pushed into the provider's CTM, reducing
// triangle texturing to the provider shading with a pre-composed
// transform.
type triTexShader struct {
	provider Shader
	m        Matrix
	ok       bool
}

// NewTriTexShader textures the triangle verts with the provider sampled
// at texs.
func NewTriTexShader(texs [3]Point, verts [3]Point, provider Shader) Shader {
	s := &triTexShader{provider: provider}
	texInv, ok := triBasis(texs).Invert()
	s.ok = ok && provider != nil
	if s.ok {
		s.m = triBasis(verts).Multiply(texInv)
	}
	return s
}

func (s *triTexShader) IsOpaque() bool {
	if !s.ok {
		return false
	}
	return s.provider.IsOpaque()
}

func (s *triTexShader) SetContext(ctm Matrix) bool {
	if !s.ok {
		return false
	}
	return s.provider.SetContext(ctm.Multiply(s.m))
}

func (s *triTexShader) ShadeRow(x, y, count int, row []Pixel) {
	s.provider.ShadeRow(x, y, count, row)
}

// triColorTexShader modulates a texture shader with a color shader:
// both children shade into parallel rows which are multiplied
// channel-wise.
type triColorTexShader struct {
	tex      Shader
	color    Shader
	texRow   []Pixel
	colorRow []Pixel
}

// NewTriColorTexShader combines a triangle texture shader with a triangle
// color shader. The children must outlive the enclosing draw.
func NewTriColorTexShader(tex, color Shader) Shader {
	return &triColorTexShader{tex: tex, color: color}
}

func (s *triColorTexShader) IsOpaque() bool {
	return s.tex.IsOpaque() && s.color.IsOpaque()
}

func (s *triColorTexShader) SetContext(ctm Matrix) bool {
	return s.tex.SetContext(ctm) && s.color.SetContext(ctm)
}

func (s *triColorTexShader) ShadeRow(x, y, count int, row []Pixel) {
	if cap(s.texRow) < count {
		s.texRow = make([]Pixel, count)
		s.colorRow = make([]Pixel, count)
	}
	tr := s.texRow[:count]
	cr := s.colorRow[:count]
	s.tex.ShadeRow(x, y, count, tr)
	s.color.ShadeRow(x, y, count, cr)
	for i := 0; i < count; i++ {
		row[i] = pixelModulate(tr[i], cr[i])
	}
}
