package raster

// DrawMesh draws triCount triangles over the vertex array. indices holds
// three vertex indices per triangle. colors and texs are optional
// per-vertex attributes: with colors the triangle is filled with
// barycentric color, with texs it is textured by the paint's shader, and
// with both the color modulates the texture. With neither the call is a
// no-op.
func (c *Canvas) DrawMesh(verts []Point, colors []Color, texs []Point, triCount int, indices []int, paint *Paint) {
	hasColor := colors != nil
	hasTex := texs != nil && paint.Shader != nil
	if !hasColor && !hasTex {
		return
	}

	for t := 0; t < triCount; t++ {
		i0, i1, i2 := indices[3*t], indices[3*t+1], indices[3*t+2]
		tri := [3]Point{verts[i0], verts[i1], verts[i2]}

		var sh Shader
		switch {
		case hasColor && hasTex:
			cs := NewTriColorShader([3]Color{colors[i0], colors[i1], colors[i2]}, tri)
			ts := NewTriTexShader([3]Point{texs[i0], texs[i1], texs[i2]}, tri, paint.Shader)
			sh = NewTriColorTexShader(ts, cs)
		case hasColor:
			sh = NewTriColorShader([3]Color{colors[i0], colors[i1], colors[i2]}, tri)
		default:
			sh = NewTriTexShader([3]Point{texs[i0], texs[i1], texs[i2]}, tri, paint.Shader)
		}

		c.DrawConvexPolygon(tri[:], &Paint{Shader: sh, Blend: paint.Blend})
	}
}

// DrawQuad subdivides the quad verts into a (level+1)^2 cell grid by
// bilinear interpolation and draws it as a triangle mesh. colors and
// texs, when present, are interpolated with the same bilinear weights.
// Vertex order is v0 top-left, v1 top-right, v2 bottom-right, v3
// bottom-left; each cell splits into two triangles along its
// top-right/bottom-left diagonal.
func (c *Canvas) DrawQuad(verts []Point, colors []Color, texs []Point, level int, paint *Paint) {
	if colors == nil && texs == nil {
		return
	}
	if level < 0 {
		level = 0
	}

	n := level + 2 // grid points per side
	grid := make([]Point, n*n)
	var gridColors []Color
	var gridTexs []Point
	if colors != nil {
		gridColors = make([]Color, n*n)
	}
	if texs != nil {
		gridTexs = make([]Point, n*n)
	}

	for i := 0; i < n; i++ {
		t := float64(i) / float64(level+1)
		for j := 0; j < n; j++ {
			s := float64(j) / float64(level+1)
			idx := i*n + j
			grid[idx] = bilerpPoint(s, t, verts)
			if colors != nil {
				gridColors[idx] = bilerpColor(s, t, colors)
			}
			if texs != nil {
				gridTexs[idx] = bilerpPoint(s, t, texs)
			}
		}
	}

	triCount := 2 * (n - 1) * (n - 1)
	indices := make([]int, 0, 3*triCount)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1; j++ {
			c00 := i*n + j
			c01 := i*n + j + 1
			c10 := (i+1)*n + j
			c11 := (i+1)*n + j + 1
			indices = append(indices, c00, c01, c10, c10, c01, c11)
		}
	}

	c.DrawMesh(grid, gridColors, gridTexs, triCount, indices, paint)
}

// bilerpPoint interpolates the quad corners v[0..3] at (s, t).
func bilerpPoint(s, t float64, v []Point) Point {
	return v[0].Mul((1 - s) * (1 - t)).
		Add(v[1].Mul(s * (1 - t))).
		Add(v[2].Mul(s * t)).
		Add(v[3].Mul((1 - s) * t))
}

// bilerpColor interpolates the quad corner colors at (s, t).
func bilerpColor(s, t float64, v []Color) Color {
	return v[0].Mul((1 - s) * (1 - t)).
		Add(v[1].Mul(s * (1 - t))).
		Add(v[2].Mul(s * t)).
		Add(v[3].Mul((1 - s) * t))
}
