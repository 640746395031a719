package raster

import "math"

// Shader produces rows of premultiplied source pixels for the rasterizer.
//
// SetContext is called once per draw with the canvas CTM. It reports
// false when the shader cannot invert its device mapping; the canvas then
// skips the draw and never calls ShadeRow. ShadeRow fills row[:count]
// with the pixels for the device span starting at (x, y).
type Shader interface {
	IsOpaque() bool
	SetContext(ctm Matrix) bool
	ShadeRow(x, y, count int, row []Pixel)
}

// TileMode selects how a shader samples outside its natural domain.
type TileMode uint8

const (
	// TileClamp extends the edge values.
	TileClamp TileMode = iota
	// TileRepeat tiles the domain.
	TileRepeat
	// TileMirror tiles the domain with alternating reflection.
	TileMirror
)

// tile maps u into [0, extent-1] under the tile mode. The trailing clamp
// keeps float rounding from overshooting the last texel.
func tile(u, extent float64, mode TileMode) float64 {
	switch mode {
	case TileRepeat:
		u /= extent
		u -= math.Floor(u)
		u *= extent
	case TileMirror:
		u /= 2 * extent
		u -= math.Floor(u)
		if u <= 0.5 {
			u *= 2 * extent
		} else {
			u = (1 - u) * 2 * extent
		}
	default: // TileClamp
		if u < 0 {
			u = 0
		}
	}
	if u > extent-1 {
		u = extent - 1
	}
	return u
}

// tileUnit maps u into [0, 1] under the tile mode.
func tileUnit(u float64, mode TileMode) float64 {
	switch mode {
	case TileRepeat:
		return u - math.Floor(u)
	case TileMirror:
		half := u / 2
		frac := half - math.Floor(half)
		if frac > 0.5 {
			frac = 1 - frac
		}
		return frac * 2
	default: // TileClamp
		if u < 0 {
			return 0
		}
		if u > 1 {
			return 1
		}
		return u
	}
}
