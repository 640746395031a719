package raster

// bitmapShader samples the nearest texel of a source bitmap. The caller
// supplies a local inverse matrix mapping device space to whatever local
// space it drew the bitmap in; the shader composes it with the inverted
// CTM once per draw and walks rows with a fixed step.
type bitmapShader struct {
	src          *Bitmap
	localInverse Matrix
	mode         TileMode
	m            Matrix
}

// NewBitmapShader wraps src with a device-to-local matrix and a tile mode.
func NewBitmapShader(src *Bitmap, localInverse Matrix, mode TileMode) Shader {
	return &bitmapShader{src: src, localInverse: localInverse, mode: mode}
}

func (s *bitmapShader) IsOpaque() bool {
	return s.src.Opaque()
}

func (s *bitmapShader) SetContext(ctm Matrix) bool {
	inv, ok := ctm.Invert()
	if !ok {
		return false
	}
	s.m = s.localInverse.Multiply(inv)
	return true
}

func (s *bitmapShader) ShadeRow(x, y, count int, row []Pixel) {
	local := s.m.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
	dx, dy := s.m.A, s.m.D
	w := float64(s.src.Width())
	h := float64(s.src.Height())
	for j := 0; j < count; j++ {
		ix := tile(local.X+dx*float64(j), w, s.mode)
		iy := tile(local.Y+dy*float64(j), h, s.mode)
		row[j] = s.src.At(int(ix), int(iy))
	}
}
