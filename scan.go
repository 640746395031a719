package raster

import "sort"

// spanFunc receives a fill span on row y covering pixels left..right
// inclusive. Spans are produced top to bottom.
type spanFunc func(y, left, right int)

// scanConvex sweeps at most two active edges per scan line. It is valid
// only for convex polygons, whose clipped edge set crosses each row at
// most twice. Spans are half-open on the right: the rounded crossings
// l < r fill pixels [l, r-1].
func scanConvex(edges []edge, height int, fill spanFunc) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].top != edges[j].top {
			return edges[i].top < edges[j].top
		}
		return edges[i].bot < edges[j].bot
	})

	for y := 0; y < height; y++ {
		if len(edges) < 2 {
			return
		}
		e1 := edges[0]
		e2 := edges[1]
		if y < e1.top || y > e2.bot {
			continue
		}

		x1 := roundToInt(e1.xAt(y))
		x2 := roundToInt(e2.xAt(y))
		if x2 < x1 {
			x1, x2 = x2, x1
		}
		if x1 < x2 {
			fill(y, x1, x2-1)
		}

		// retire edges whose last covered row is y
		if y == e2.bot-1 {
			edges = append(edges[:1], edges[2:]...)
		}
		if y == e1.bot-1 {
			edges = edges[1:]
		}
	}
}

// scanPath sweeps an arbitrary edge set with the non-zero winding rule.
// Active edges are walked in x order accumulating orientations; a span is
// recorded between each 0 -> nonzero and nonzero -> 0 transition, filled
// half-open on the right like scanConvex.
func scanPath(edges []edge, height int, fill spanFunc) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].top != edges[j].top {
			return edges[i].top < edges[j].top
		}
		return edges[i].xAt(edges[i].top) < edges[j].xAt(edges[j].top)
	})

	for y := 0; y < height; {
		if len(edges) == 0 {
			return
		}

		i := 0
		winding := 0
		left := 0
		for i < len(edges) && edges[i].top <= y {
			x := roundToInt(edges[i].xAt(y))
			if winding == 0 {
				left = x
			}
			winding += edges[i].orient
			if winding == 0 && left < x {
				fill(y, left, x-1)
			}
			if y == edges[i].bot-1 {
				edges = append(edges[:i], edges[i+1:]...)
			} else {
				i++
			}
		}

		y++

		// admit edges that become active on the next scan line
		for i < len(edges) && edges[i].top <= y {
			i++
		}
		resortActive(edges[:i], y)
	}
}

// resortActive re-sorts the active prefix by x at row y. Active lists are
// short, so an insertion sort beats a comparison sort here.
func resortActive(active []edge, y int) {
	for i := 1; i < len(active); i++ {
		key := active[i]
		kx := key.xAt(y)
		j := i - 1
		for j >= 0 && active[j].xAt(y) > kx {
			active[j+1] = active[j]
			j--
		}
		active[j+1] = key
	}
}
