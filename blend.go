package raster

// BlendMode selects one of the twelve Porter-Duff compositing operators.
// All operate on premultiplied pixels; a is the source alpha, A the
// destination alpha.
type BlendMode uint8

const (
	BlendClear   BlendMode = iota // 0
	BlendSrc                      // S
	BlendDst                      // D
	BlendSrcOver                  // S + (1-a)*D
	BlendDstOver                  // D + (1-A)*S
	BlendSrcIn                    // A*S
	BlendDstIn                    // a*D
	BlendSrcOut                   // (1-A)*S
	BlendDstOut                   // (1-a)*D
	BlendSrcATop                  // A*S + (1-a)*D
	BlendDstATop                  // a*D + (1-A)*S
	BlendXor                      // (1-A)*S + (1-a)*D
)

// blendFunc combines one source pixel with one destination pixel.
type blendFunc func(src, dst Pixel) Pixel

func blendClear(src, dst Pixel) Pixel { return 0 }

func blendSrc(src, dst Pixel) Pixel { return src }

func blendDst(src, dst Pixel) Pixel { return dst }

func blendSrcOver(src, dst Pixel) Pixel {
	return src + pixelScale(dst, 255-src.A())
}

func blendDstOver(src, dst Pixel) Pixel {
	return dst + pixelScale(src, 255-dst.A())
}

func blendSrcIn(src, dst Pixel) Pixel {
	return pixelScale(src, dst.A())
}

func blendDstIn(src, dst Pixel) Pixel {
	return pixelScale(dst, src.A())
}

func blendSrcOut(src, dst Pixel) Pixel {
	return pixelScale(src, 255-dst.A())
}

func blendDstOut(src, dst Pixel) Pixel {
	return pixelScale(dst, 255-src.A())
}

func blendSrcATop(src, dst Pixel) Pixel {
	return pixelScale(src, dst.A()) + pixelScale(dst, 255-src.A())
}

func blendDstATop(src, dst Pixel) Pixel {
	return pixelScale(dst, src.A()) + pixelScale(src, 255-dst.A())
}

func blendXor(src, dst Pixel) Pixel {
	return pixelScale(src, 255-dst.A()) + pixelScale(dst, 255-src.A())
}

// blenderFor returns the blend function for the given mode.
// Unknown modes fall back to SrcOver.
func blenderFor(mode BlendMode) blendFunc {
	switch mode {
	case BlendClear:
		return blendClear
	case BlendSrc:
		return blendSrc
	case BlendDst:
		return blendDst
	case BlendSrcOver:
		return blendSrcOver
	case BlendDstOver:
		return blendDstOver
	case BlendSrcIn:
		return blendSrcIn
	case BlendDstIn:
		return blendDstIn
	case BlendSrcOut:
		return blendSrcOut
	case BlendDstOut:
		return blendDstOut
	case BlendSrcATop:
		return blendSrcATop
	case BlendDstATop:
		return blendDstATop
	case BlendXor:
		return blendXor
	default:
		return blendSrcOver
	}
}

// blendRow composites src into dst. With broadcast set, src[0] is applied
// to every destination pixel; otherwise src and dst are parallel rows of
// equal length.
func blendRow(b blendFunc, dst, src []Pixel, broadcast bool) {
	if broadcast {
		s := src[0]
		for i := range dst {
			dst[i] = b(s, dst[i])
		}
		return
	}
	for i := range dst {
		dst[i] = b(src[i], dst[i])
	}
}
