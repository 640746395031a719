package raster

import (
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Bitmap is a view over a buffer of packed premultiplied pixels.
// Rows are rowBytes bytes apart; rowBytes is at least 4*width and always
// a multiple of 4. A bitmap used as a shader source is never written to;
// the device bitmap is mutated only by its canvas.
type Bitmap struct {
	width    int
	height   int
	rowBytes int
	pix      []Pixel
	opaque   bool
}

// NewBitmap creates a bitmap backed by a fresh zeroed pixel buffer.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		width:    width,
		height:   height,
		rowBytes: width * 4,
		pix:      make([]Pixel, width*height),
	}
}

// BitmapOf wraps an existing pixel buffer. rowBytes must be a multiple
// of 4 and at least 4*width; pix must hold height full rows.
func BitmapOf(pix []Pixel, width, height, rowBytes int, opaque bool) *Bitmap {
	return &Bitmap{
		width:    width,
		height:   height,
		rowBytes: rowBytes,
		pix:      pix,
		opaque:   opaque,
	}
}

// Width returns the width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the height in pixels.
func (b *Bitmap) Height() int { return b.height }

// RowBytes returns the distance between rows, in bytes.
func (b *Bitmap) RowBytes() int { return b.rowBytes }

// Size returns the dimensions of the bitmap.
func (b *Bitmap) Size() ISize { return ISize{Width: b.width, Height: b.height} }

// Opaque reports whether every pixel is known to be fully opaque.
func (b *Bitmap) Opaque() bool { return b.opaque }

// SetOpaque records the opacity hint used by the shader fast path.
func (b *Bitmap) SetOpaque(opaque bool) { b.opaque = opaque }

// Pix returns the underlying pixel buffer.
func (b *Bitmap) Pix() []Pixel { return b.pix }

// At returns the pixel at (x, y). The caller keeps coordinates in bounds.
func (b *Bitmap) At(x, y int) Pixel {
	return b.pix[y*(b.rowBytes>>2)+x]
}

// Set writes the pixel at (x, y).
func (b *Bitmap) Set(x, y int, p Pixel) {
	b.pix[y*(b.rowBytes>>2)+x] = p
}

// row returns the addressable pixels of row y.
func (b *Bitmap) row(y int) []Pixel {
	start := y * (b.rowBytes >> 2)
	return b.pix[start : start+b.width]
}

// Image converts the bitmap to an image.RGBA. Both representations are
// alpha-premultiplied, so the conversion is a channel reorder.
func (b *Bitmap) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		row := b.row(y)
		for x, p := range row {
			i := y*img.Stride + x*4
			img.Pix[i+0] = uint8(p.R())
			img.Pix[i+1] = uint8(p.G())
			img.Pix[i+2] = uint8(p.B())
			img.Pix[i+3] = uint8(p.A())
		}
	}
	return img
}

// FromImage creates a bitmap from an image. The opacity flag is derived
// from the pixels so the shader fast path can engage.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	bm := NewBitmap(bounds.Dx(), bounds.Dy())
	opaque := true
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			r, g, bl, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a != 0xFFFF {
				opaque = false
			}
			bm.Set(x, y, PackARGB(uint32(a>>8), uint32(r>>8), uint32(g>>8), uint32(bl>>8)))
		}
	}
	bm.opaque = opaque
	return bm
}

// FromImageScaled creates a width x height bitmap by resampling img with
// a Catmull-Rom kernel.
func FromImageScaled(img image.Image, width, height int) *Bitmap {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return FromImage(dst)
}

// SavePNG saves the bitmap to a PNG file.
func (b *Bitmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, b.Image())
}
