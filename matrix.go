package raster

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	m := Identity()
	m.C = x
	m.F = y
	return m
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// Multiply multiplies two matrices (m * other). Composition is not
// commutative: the transform of other is applied first.
func (m Matrix) Multiply(other Matrix) Matrix {
	var r Matrix
	r.A = m.A*other.A + m.B*other.D
	r.D = m.D*other.A + m.E*other.D
	r.B = m.A*other.B + m.B*other.E
	r.E = m.D*other.B + m.E*other.E
	r.C = m.A*other.C + m.B*other.F + m.C
	r.F = m.D*other.C + m.E*other.F + m.F
	return r
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Pt(m.A*p.X+m.B*p.Y+m.C, m.D*p.X+m.E*p.Y+m.F)
}

// MapPoints transforms src into dst. The slices may be identical.
func (m Matrix) MapPoints(dst, src []Point) {
	for i, p := range src {
		dst[i] = m.TransformPoint(p)
	}
}

// Invert returns the inverse matrix. The second return value reports
// whether the matrix was invertible; it is false iff the determinant
// a*e - b*d is zero.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*m.E - m.B*m.D
	if det == 0 {
		return Matrix{}, false
	}

	ia := m.E
	ib := -m.B
	id := -m.D
	ie := m.A
	ic := -(ia*m.C + ib*m.F)
	iff := -(id*m.C + ie*m.F)

	invDet := 1.0 / det
	return Matrix{
		A: ia * invDet,
		B: ib * invDet,
		C: ic * invDet,
		D: id * invDet,
		E: ie * invDet,
		F: iff * invDet,
	}, true
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
