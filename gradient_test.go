package raster

import "testing"

func TestGradientHorizontalClampRamp(t *testing.T) {
	bm := NewBitmap(10, 10)
	cv := NewCanvas(bm)
	sh := NewLinearGradient(Pt(0, 0), Pt(9, 0), []Color{Black, White}, TileClamp)
	cv.DrawPaint(ShaderPaint(sh))

	for y := 0; y < 10; y++ {
		prev := uint32(0)
		for x := 0; x < 10; x++ {
			p := bm.At(x, y)
			if p.A() != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d, want opaque", x, y, p.A())
			}
			if p.R() != p.G() || p.G() != p.B() {
				t.Fatalf("pixel (%d,%d) = %#08x, want gray", x, y, uint32(p))
			}
			if p.R() < prev {
				t.Fatalf("row %d not monotonic at x=%d: %d < %d", y, x, p.R(), prev)
			}
			prev = p.R()
		}
	}
	if got := bm.At(9, 0); got != 0xFFFFFFFF {
		t.Errorf("right end = %#08x, want white", uint32(got))
	}
	if got := bm.At(0, 0); got.R() > 20 {
		t.Errorf("left end = %#08x, want near black", uint32(got))
	}
}

func TestTwoColorClampFillsWholeRow(t *testing.T) {
	// gradient confined to the middle of the row: both clamped ends must
	// still be written
	bm := NewBitmap(12, 1)
	cv := NewCanvas(bm)
	sh := NewLinearGradient(Pt(5, 0), Pt(7, 0), []Color{Red, Blue}, TileClamp)
	cv.DrawPaint(ShaderPaint(sh))

	if got := bm.At(0, 0); got != Red.Pixel() {
		t.Errorf("left clamp = %#08x, want red", uint32(got))
	}
	if got := bm.At(11, 0); got != Blue.Pixel() {
		t.Errorf("right clamp = %#08x, want blue", uint32(got))
	}
	for x := 0; x < 12; x++ {
		if bm.At(x, 0) == 0 {
			t.Fatalf("pixel %d left unwritten", x)
		}
	}
}

func TestSingleColorGradient(t *testing.T) {
	bm := NewBitmap(4, 4)
	cv := NewCanvas(bm)
	sh := NewLinearGradient(Pt(0, 0), Pt(3, 3), []Color{Green}, TileRepeat)
	cv.DrawPaint(ShaderPaint(sh))

	want := Green.Pixel()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := bm.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, uint32(got), uint32(want))
			}
		}
	}
}

func TestGradientThreeStops(t *testing.T) {
	bm := NewBitmap(21, 1)
	cv := NewCanvas(bm)
	sh := NewLinearGradient(Pt(0.5, 0), Pt(20.5, 0), []Color{Black, Red, White}, TileClamp)
	cv.DrawPaint(ShaderPaint(sh))

	// u at pixel 10 is exactly 0.5: the middle stop
	if got := bm.At(10, 0); got != Red.Pixel() {
		t.Errorf("middle = %#08x, want pure red", uint32(got))
	}
	if got := bm.At(0, 0); got != Black.Pixel() {
		t.Errorf("start = %#08x, want black", uint32(got))
	}
	if got := bm.At(20, 0); got != White.Pixel() {
		t.Errorf("end = %#08x, want white", uint32(got))
	}
}

func TestGradientOpacity(t *testing.T) {
	opaque := NewLinearGradient(Pt(0, 0), Pt(1, 0), []Color{Black, White, Red}, TileClamp)
	if !opaque.IsOpaque() {
		t.Error("all-opaque stops reported non-opaque")
	}
	translucent := NewLinearGradient(Pt(0, 0), Pt(1, 0),
		[]Color{Black, White, {R: 1, A: 0.5}}, TileClamp)
	if translucent.IsOpaque() {
		t.Error("translucent final stop reported opaque")
	}
}

func TestGradientDegeneratePointsSkipsDraw(t *testing.T) {
	bm := NewBitmap(4, 4)
	cv := NewCanvas(bm)
	sh := NewLinearGradient(Pt(2, 2), Pt(2, 2), []Color{Red, Blue, Green}, TileClamp)
	cv.DrawPaint(ShaderPaint(sh))

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := bm.At(x, y); got != 0 {
				t.Fatalf("pixel (%d,%d) = %#08x, want untouched", x, y, uint32(got))
			}
		}
	}
}

func TestGradientEmptyColors(t *testing.T) {
	if sh := NewLinearGradient(Pt(0, 0), Pt(1, 0), nil, TileClamp); sh != nil {
		t.Error("empty color array should produce no shader")
	}
}

func TestTileUnit(t *testing.T) {
	tests := []struct {
		name string
		u    float64
		mode TileMode
		want float64
	}{
		{"clamp low", -0.5, TileClamp, 0},
		{"clamp high", 1.5, TileClamp, 1},
		{"clamp inside", 0.25, TileClamp, 0.25},
		{"repeat", 2.25, TileRepeat, 0.25},
		{"repeat negative", -0.25, TileRepeat, 0.75},
		{"mirror forward", 0.25, TileMirror, 0.25},
		{"mirror back", 1.25, TileMirror, 0.75},
		{"mirror period", 2.25, TileMirror, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tileUnit(tt.u, tt.mode); got != tt.want {
				t.Errorf("tileUnit(%g) = %g, want %g", tt.u, got, tt.want)
			}
		})
	}
}
