// Package raster is a software 2D rasterizer.
//
// # Overview
//
// raster renders vector primitives - rectangles, convex polygons, paths
// with line/quadratic/cubic Bezier segments, triangle meshes and
// bilinearly subdivided quads - into a 32-bit premultiplied pixel buffer.
// Drawing is driven by a Paint combining a source color or a Shader with
// a Porter-Duff blend mode, under a current transformation matrix managed
// by a save/restore stack.
//
// # Quick Start
//
//	import "github.com/gogpu/raster"
//
//	bm := raster.NewBitmap(256, 256)
//	cv := raster.NewCanvas(bm)
//
//	cv.DrawPaint(raster.ColorPaint(raster.White))
//	cv.DrawRect(raster.RectXYWH(32, 32, 192, 192), raster.ColorPaint(raster.Red))
//
//	_ = bm.SavePNG("out.png")
//
// # Pipeline
//
// A draw transforms its primitive by the top matrix, flattens Bezier
// segments into chords within a tolerance, clips each segment against the
// device (projecting off-device portions onto the boundary so winding
// survives) and sweeps the resulting edges scan line by scan line. Each
// span is handed to a row blender that either broadcasts a constant
// source pixel or asks the paint's shader for a row of source pixels.
//
// # Coordinate System
//
// Origin (0,0) at top-left, x increases right, y increases down, angles
// in radians. The rasterizer is single-sample with pixel centers at
// (x+0.5, y+0.5); there is no anti-aliasing and no stroking.
//
// # Concurrency
//
// A canvas must not be used from multiple goroutines concurrently.
// Distinct canvases rendering to distinct bitmaps with disjoint shader
// sources may proceed in parallel.
package raster

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
