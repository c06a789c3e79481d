// Package render orchestrates per-frame drawing: background grid, edges,
// nodes or cluster bubbles, labels, and frame statistics. It draws through
// the Surface interface so the same pass serves the terminal canvas, the PNG
// rasterizer and the SVG writer.
package render

import "image/color"

// Surface is the 2D drawing target. While a transform is set, coordinates
// and radii passed to Line, FillCircle and StrokeCircle are world-space and
// the surface applies the camera affine; Text and post-Reset calls are
// screen-space pixels. Stroke widths follow the active coordinate space;
// text sizes are always screen pixels.
type Surface interface {
	// Size reports the viewport dimensions in pixels.
	Size() (w, h float64)

	// Clear fills the whole surface with a color.
	Clear(c color.RGBA)

	// SetTransform installs the camera affine: screen = world*scale + t.
	SetTransform(scale, tx, ty float64)

	// ResetTransform restores the identity transform.
	ResetTransform()

	// Line draws a segment with the given stroke width.
	Line(x1, y1, x2, y2, width float64, c color.RGBA)

	// FillCircle draws a filled disc.
	FillCircle(x, y, r float64, c color.RGBA)

	// StrokeCircle draws a circle outline.
	StrokeCircle(x, y, r, width float64, c color.RGBA)

	// Text draws a string at a baseline-left anchor with the given font
	// size in pixels.
	Text(x, y float64, s string, size float64, c color.RGBA)
}
