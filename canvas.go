package raster

// defaultTolerance is the curve flattening tolerance in pixels.
const defaultTolerance = 0.25

// Canvas rasterizes primitives into a device bitmap through a stack of
// transformation matrices. A canvas is the only writer of its device
// bitmap and must not be used from multiple goroutines concurrently;
// distinct canvases over distinct bitmaps may run in parallel.
type Canvas struct {
	device  *Bitmap
	stack   []Matrix
	tol     float64
	scratch []Pixel
}

// Option configures a canvas during creation.
type Option func(*Canvas)

// WithFlattenTolerance sets the Bezier flattening tolerance in pixels.
// The default is 0.25.
func WithFlattenTolerance(px float64) Option {
	return func(c *Canvas) {
		c.tol = px
	}
}

// NewCanvas creates a canvas rendering into device. The device bitmap is
// borrowed for the lifetime of the canvas.
func NewCanvas(device *Bitmap, opts ...Option) *Canvas {
	c := &Canvas{
		device: device,
		stack:  []Matrix{Identity()},
		tol:    defaultTolerance,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Device returns the bitmap the canvas renders into.
func (c *Canvas) Device() *Bitmap {
	return c.device
}

// CTM returns the current transformation matrix.
func (c *Canvas) CTM() Matrix {
	return c.stack[len(c.stack)-1]
}

// Save pushes a copy of the current transformation matrix.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.CTM())
}

// Restore pops the matrix stack, reinstating the transform in effect at
// the matching Save. Restore without a matching Save is a programmer
// error and panics.
func (c *Canvas) Restore() {
	if len(c.stack) == 1 {
		panic("raster: Restore without matching Save")
	}
	c.stack = c.stack[:len(c.stack)-1]
}

// Concat post-multiplies the current transform by m, so transforms
// concatenated later apply to the object first.
func (c *Canvas) Concat(m Matrix) {
	c.stack[len(c.stack)-1] = c.CTM().Multiply(m)
}

// DrawPaint fills the entire device. Without a shader every row is
// blended with the paint's broadcast source pixel. With a shader each
// row is written by the shader directly; the paint's blend mode is
// intentionally not applied on that path.
func (c *Canvas) DrawPaint(paint *Paint) {
	if paint.Shader == nil {
		b := blenderFor(paint.Blend)
		src := [1]Pixel{paint.Color.Pixel()}
		for y := 0; y < c.device.height; y++ {
			blendRow(b, c.device.row(y), src[:], true)
		}
		return
	}
	if !paint.Shader.SetContext(c.CTM()) {
		Logger().Debug("raster: DrawPaint skipped, shader context failed")
		return
	}
	for y := 0; y < c.device.height; y++ {
		paint.Shader.ShadeRow(0, y, c.device.width, c.device.row(y))
	}
}

// DrawRect fills the rectangle r under the current transform.
func (c *Canvas) DrawRect(r Rect, paint *Paint) {
	pts := []Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
	c.DrawConvexPolygon(pts, paint)
}

// DrawConvexPolygon fills the convex polygon through pts under the
// current transform. The polygon is closed implicitly.
func (c *Canvas) DrawConvexPolygon(pts []Point, paint *Paint) {
	if len(pts) < 3 {
		return
	}
	if paint.Shader != nil && !paint.Shader.SetContext(c.CTM()) {
		Logger().Debug("raster: draw skipped, shader context failed")
		return
	}

	dev := make([]Point, len(pts))
	c.CTM().MapPoints(dev, pts)

	var edges []edge
	for i := 0; i+1 < len(dev); i++ {
		edges = clipSegment(edges, dev[i], dev[i+1], c.device.width, c.device.height)
	}
	edges = clipSegment(edges, dev[len(dev)-1], dev[0], c.device.width, c.device.height)

	scanConvex(edges, c.device.height, func(y, left, right int) {
		c.fillRow(y, left, right, paint)
	})
}

// DrawPath fills a path with the non-zero winding rule under the current
// transform. Contours are closed implicitly; Bezier segments are
// flattened to chords within the canvas tolerance.
func (c *Canvas) DrawPath(path *Path, paint *Paint) {
	if path.Empty() {
		return
	}
	if paint.Shader != nil && !paint.Shader.SetContext(c.CTM()) {
		Logger().Debug("raster: draw skipped, shader context failed")
		return
	}

	dev := path.Clone()
	dev.Transform(c.CTM())

	edges := c.pathEdges(dev)
	scanPath(edges, c.device.height, func(y, left, right int) {
		c.fillRow(y, left, right, paint)
	})
}

// pathEdges flattens and clips every segment of a device-space path.
func (c *Canvas) pathEdges(path *Path) []edge {
	var edges []edge
	var pts [4]Point
	w, h := c.device.width, c.device.height

	iter := path.Edger()
	for {
		switch iter.Next(pts[:]) {
		case VerbLine:
			edges = clipSegment(edges, pts[0], pts[1], w, h)
		case VerbQuad:
			q := QuadBez{P0: pts[0], P1: pts[1], P2: pts[2]}
			n := q.Segments(c.tol)
			p0 := q.P0
			for k := 1; k < n; k++ {
				p1 := q.Eval(float64(k) / float64(n))
				edges = clipSegment(edges, p0, p1, w, h)
				p0 = p1
			}
			edges = clipSegment(edges, p0, q.P2, w, h)
		case VerbCubic:
			cb := CubicBez{P0: pts[0], P1: pts[1], P2: pts[2], P3: pts[3]}
			n := cb.Segments(c.tol)
			p0 := cb.P0
			for k := 1; k < n; k++ {
				p1 := cb.Eval(float64(k) / float64(n))
				edges = clipSegment(edges, p0, p1, w, h)
				p0 = p1
			}
			edges = clipSegment(edges, p0, cb.P3, w, h)
		case VerbDone:
			return edges
		}
	}
}

// fillRow blends the pixels left..right inclusive on row y with the
// paint. Out-of-range indices are clamped to the device.
func (c *Canvas) fillRow(y, left, right int, paint *Paint) {
	w := c.device.width
	if left < 0 {
		left = 0
	}
	if right >= w {
		right = w - 1
	}
	if left > right {
		return
	}
	count := right - left + 1
	dst := c.device.row(y)[left : left+count]

	if paint.Shader == nil {
		src := [1]Pixel{paint.Color.Pixel()}
		blendRow(blenderFor(paint.Blend), dst, src[:], true)
		return
	}

	sh := paint.Shader
	if sh.IsOpaque() {
		// opaque source overwrites the destination completely
		sh.ShadeRow(left, y, count, dst)
		return
	}
	if cap(c.scratch) < count {
		c.scratch = make([]Pixel, count)
	}
	src := c.scratch[:count]
	sh.ShadeRow(left, y, count, src)
	blendRow(blenderFor(paint.Blend), dst, src, false)
}
