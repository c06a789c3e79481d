// Package raster implements render.Surface on a gg raster context, for PNG
// snapshots of the current view.
package raster

import (
	"fmt"
	"image/color"
	"io"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Surface draws into an in-memory RGBA image via gg.
type Surface struct {
	dc    *gg.Context
	w, h  int
	otf   *opentype.Font
	faces map[float64]font.Face
}

// New creates a raster surface of the given pixel size.
func New(w, h int) (*Surface, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("raster surface size must be positive, got %dx%d", w, h)
	}
	otf, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	return &Surface{
		dc:    gg.NewContext(w, h),
		w:     w,
		h:     h,
		otf:   otf,
		faces: make(map[float64]font.Face),
	}, nil
}

// Size implements render.Surface.
func (s *Surface) Size() (float64, float64) {
	return float64(s.w), float64(s.h)
}

// Clear implements render.Surface.
func (s *Surface) Clear(c color.RGBA) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

// SetTransform implements render.Surface.
func (s *Surface) SetTransform(scale, tx, ty float64) {
	s.dc.Push()
	s.dc.Translate(tx, ty)
	s.dc.Scale(scale, scale)
}

// ResetTransform implements render.Surface.
func (s *Surface) ResetTransform() {
	s.dc.Pop()
}

// Line implements render.Surface.
func (s *Surface) Line(x1, y1, x2, y2, width float64, c color.RGBA) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.Stroke()
}

// FillCircle implements render.Surface.
func (s *Surface) FillCircle(x, y, r float64, c color.RGBA) {
	s.dc.SetColor(c)
	s.dc.DrawCircle(x, y, r)
	s.dc.Fill()
}

// StrokeCircle implements render.Surface.
func (s *Surface) StrokeCircle(x, y, r, width float64, c color.RGBA) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.DrawCircle(x, y, r)
	s.dc.Stroke()
}

// Text implements render.Surface.
func (s *Surface) Text(x, y float64, str string, size float64, c color.RGBA) {
	face, err := s.face(size)
	if err != nil {
		return
	}
	s.dc.SetFontFace(face)
	s.dc.SetColor(c)
	s.dc.DrawString(str, x, y)
}

// WritePNG encodes the current image to w.
func (s *Surface) WritePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

func (s *Surface) face(size float64) (font.Face, error) {
	if f, ok := s.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(s.otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	s.faces[size] = f
	return f, nil
}
