// Package camera owns the viewport transform between world space (where the
// layout engine places nodes) and screen space (viewport pixels).
package camera

import "math"

const (
	// MinScale and MaxScale bound the zoom range. Scale clamping is the
	// documented contract here, unlike configuration errors which are
	// rejected outright.
	MinScale = 0.05
	MaxScale = 5.0

	// wheelK converts a wheel delta into an exponential zoom factor, so
	// repeated ticks compose multiplicatively and zoom-in mirrors zoom-out.
	wheelK = 0.0015
)

// Camera is the session-scoped viewport state. One instance is shared by
// reference between the input handlers and the frame renderer; all access
// happens on the UI event loop, so there is no locking.
type Camera struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// New returns a camera at the default view: unit scale, origin translation.
func New() *Camera {
	return &Camera{Scale: 1}
}

// WorldToScreen maps a world point to viewport pixels.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx*c.Scale + c.TranslateX, wy*c.Scale + c.TranslateY
}

// ScreenToWorld maps viewport pixels back into world space.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx - c.TranslateX) / c.Scale, (sy - c.TranslateY) / c.Scale
}

// Pan shifts the view by screen-space deltas.
func (c *Camera) Pan(dx, dy float64) {
	c.TranslateX += dx
	c.TranslateY += dy
}

// ZoomAt scales the view by factor, anchored at the given screen point: the
// world point under (sx, sy) before the zoom is still under it afterwards.
// The resulting scale is clamped to [MinScale, MaxScale].
func (c *Camera) ZoomAt(sx, sy, factor float64) {
	wx, wy := c.ScreenToWorld(sx, sy)
	c.Scale = clampScale(c.Scale * factor)
	c.TranslateX = sx - wx*c.Scale
	c.TranslateY = sy - wy*c.Scale
}

// WheelFactor maps a wheel delta to a zoom factor. Negative deltas (wheel up)
// zoom in.
func WheelFactor(deltaY float64) float64 {
	return math.Exp(-deltaY * wheelK)
}

// FitToBounds frames the given world-space rectangle inside the viewport with
// the given padding on every side, centering the bounds. Inverted (empty)
// bounds leave the camera unchanged. Zero-extent bounds are legal: the unused
// axis does not constrain the scale, which then clamps at MaxScale for a
// single point.
func (c *Camera) FitToBounds(minX, maxX, minY, maxY, viewportW, viewportH, padding float64) {
	if minX > maxX || minY > maxY {
		return
	}

	boundsW := maxX - minX
	boundsH := maxY - minY
	scale := math.Inf(1)
	if boundsW > 0 {
		scale = (viewportW - 2*padding) / boundsW
	}
	if boundsH > 0 {
		if sy := (viewportH - 2*padding) / boundsH; sy < scale {
			scale = sy
		}
	}
	c.Scale = clampScale(scale)

	centerX := (minX + maxX) / 2
	centerY := (minY + maxY) / 2
	c.TranslateX = viewportW/2 - centerX*c.Scale
	c.TranslateY = viewportH/2 - centerY*c.Scale
}

func clampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
