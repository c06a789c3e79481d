// Package svg implements render.Surface on an svgo canvas, for scalable
// snapshots of the current view.
package svg

import (
	"fmt"
	"image/color"
	"io"

	svgo "github.com/ajstarks/svgo"
)

// Surface streams SVG elements to a writer as draw calls arrive. Call Start
// before drawing and End when the frame is complete.
type Surface struct {
	canvas      *svgo.SVG
	w, h        int
	transformed bool
}

// New creates an SVG surface writing to w with the given pixel size.
func New(w io.Writer, width, height int) *Surface {
	return &Surface{canvas: svgo.New(w), w: width, h: height}
}

// Start opens the SVG document.
func (s *Surface) Start() {
	s.canvas.Start(s.w, s.h)
}

// End closes any open transform group and the document.
func (s *Surface) End() {
	s.ResetTransform()
	s.canvas.End()
}

// Size implements render.Surface.
func (s *Surface) Size() (float64, float64) {
	return float64(s.w), float64(s.h)
}

// Clear implements render.Surface.
func (s *Surface) Clear(c color.RGBA) {
	s.canvas.Rect(0, 0, s.w, s.h, "fill:"+cssColor(c))
}

// SetTransform implements render.Surface.
func (s *Surface) SetTransform(scale, tx, ty float64) {
	s.ResetTransform()
	s.canvas.Gtransform(fmt.Sprintf("translate(%.3f,%.3f) scale(%.5f)", tx, ty, scale))
	s.transformed = true
}

// ResetTransform implements render.Surface.
func (s *Surface) ResetTransform() {
	if s.transformed {
		s.canvas.Gend()
		s.transformed = false
	}
}

// Line implements render.Surface.
func (s *Surface) Line(x1, y1, x2, y2, width float64, c color.RGBA) {
	s.canvas.Path(fmt.Sprintf("M%.2f %.2f L%.2f %.2f", x1, y1, x2, y2),
		fmt.Sprintf("stroke:%s;stroke-opacity:%s;stroke-width:%.2f;fill:none", cssColor(c), cssOpacity(c), width))
}

// FillCircle implements render.Surface.
func (s *Surface) FillCircle(x, y, r float64, c color.RGBA) {
	s.circle(x, y, r, fmt.Sprintf("fill:%s;fill-opacity:%s", cssColor(c), cssOpacity(c)))
}

// StrokeCircle implements render.Surface.
func (s *Surface) StrokeCircle(x, y, r, width float64, c color.RGBA) {
	s.circle(x, y, r, fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%s;stroke-width:%.2f",
		cssColor(c), cssOpacity(c), width))
}

// Text implements render.Surface.
func (s *Surface) Text(x, y float64, str string, size float64, c color.RGBA) {
	s.canvas.Text(int(x), int(y), str,
		fmt.Sprintf("fill:%s;font-size:%.0fpx;font-family:system-ui,sans-serif", cssColor(c), size))
}

// circle works around svgo's integer-only Circle by emitting the element
// directly with float coordinates, which matters under a scaled transform.
func (s *Surface) circle(x, y, r float64, style string) {
	fmt.Fprintf(s.canvas.Writer, `<circle cx="%.3f" cy="%.3f" r="%.3f" style="%s" />`+"\n", x, y, r, style)
}

func cssColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func cssOpacity(c color.RGBA) string {
	return fmt.Sprintf("%.3f", float64(c.A)/255)
}
