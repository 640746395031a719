package raster

// Paint carries what to draw with: a source color or a shader, and a
// Porter-Duff blend mode. When Shader is non-nil it supplies the source
// pixels and Color is ignored.
type Paint struct {
	Color  Color
	Shader Shader
	Blend  BlendMode
}

// NewPaint returns a paint drawing opaque black with SrcOver.
func NewPaint() *Paint {
	return &Paint{Color: Black, Blend: BlendSrcOver}
}

// ColorPaint returns a SrcOver paint for the given color.
func ColorPaint(c Color) *Paint {
	return &Paint{Color: c, Blend: BlendSrcOver}
}

// ShaderPaint returns a SrcOver paint sourcing from the given shader.
func ShaderPaint(s Shader) *Paint {
	return &Paint{Shader: s, Blend: BlendSrcOver}
}

// WithBlend returns a copy of the paint using the given blend mode.
func (p Paint) WithBlend(mode BlendMode) *Paint {
	p.Blend = mode
	return &p
}
