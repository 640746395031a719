package raster

// edge is a directed segment clipped to the device and prepared for the
// scan converters. Its x-intersection with the scan line through row y is
// x(y) = m*(y+0.5) + b. top < bot always holds; one-pixel edges are
// dropped at construction. orient records whether the source segment
// pointed up (+1) or down (-1) in device space, which drives the
// winding accumulation.
type edge struct {
	orient   int
	top, bot int
	m, b     float64
}

// xAt returns the edge's x at the center of row y.
func (e *edge) xAt(y int) float64 {
	return e.m*(float64(y)+0.5) + e.b
}

// appendEdge converts the segment (p1, p2), p1.Y <= p2.Y, into an edge.
// Segments whose rounded endpoints land on the same row produce nothing.
func appendEdge(edges []edge, p1, p2 Point, orient int) []edge {
	top := roundToInt(p1.Y)
	bot := roundToInt(p2.Y)
	if top == bot {
		return edges
	}
	m := (p1.X - p2.X) / (p1.Y - p2.Y)
	return append(edges, edge{
		orient: orient,
		top:    top,
		bot:    bot,
		m:      m,
		b:      p1.X - m*p1.Y,
	})
}

// appendVertical emits a vertical edge at x spanning y1..y2 in either order.
func appendVertical(edges []edge, x, y1, y2 float64, orient int) []edge {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	return appendEdge(edges, Pt(x, y1), Pt(x, y2), orient)
}

// clipSegment clips the segment (p1, p2) against the device rectangle
// [0,width] x [0,height] and appends the resulting edges.
//
// Vertical clipping moves endpoints onto the top/bottom boundary, keeping
// x proportional. Horizontal clipping never discards: the portion beyond
// the left or right boundary is projected onto that boundary as a
// vertical edge so winding is preserved for shapes that extend past the
// device. All emitted edges keep the segment's original orientation.
func clipSegment(edges []edge, p1, p2 Point, width, height int) []edge {
	orient := 1
	if p1.Y < p2.Y {
		orient = -1
	}
	if p2.Y < p1.Y {
		p1, p2 = p2, p1
	}

	// vertical clip
	h := float64(height)
	if p1.Y < 0 {
		if p2.Y < 0 {
			return edges
		}
		t := -p1.Y / (p2.Y - p1.Y)
		p1.X += (p2.X - p1.X) * t
		p1.Y = 0
	}
	if p2.Y > h {
		if p1.Y > h {
			return edges
		}
		t := (p2.Y - h) / (p2.Y - p1.Y)
		p2.X += (p1.X - p2.X) * t
		p2.Y = h
	}

	// horizontal clip
	w := float64(width)
	if p1.X <= 0 && p2.X <= 0 {
		return appendVertical(edges, 0, p1.Y, p2.Y, orient)
	}
	if p1.X >= w && p2.X >= w {
		return appendVertical(edges, w, p1.Y, p2.Y, orient)
	}
	if p1.X < 0 || p2.X < 0 {
		t := -p1.X / (p2.X - p1.X)
		y := p1.Y + t*(p2.Y-p1.Y)
		if p1.X < 0 {
			edges = appendVertical(edges, 0, p1.Y, y, orient)
			p1 = Pt(0, y)
		} else {
			edges = appendVertical(edges, 0, y, p2.Y, orient)
			p2 = Pt(0, y)
		}
	}
	if p1.X > w || p2.X > w {
		t := (w - p1.X) / (p2.X - p1.X)
		y := p1.Y + t*(p2.Y-p1.Y)
		if p1.X > w {
			edges = appendVertical(edges, w, p1.Y, y, orient)
			p1 = Pt(w, y)
		} else {
			edges = appendVertical(edges, w, y, p2.Y, orient)
			p2 = Pt(w, y)
		}
	}
	return appendEdge(edges, p1, p2, orient)
}
