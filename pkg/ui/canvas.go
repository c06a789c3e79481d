// Package ui is the interactive terminal frontend: a cell canvas the frame
// renderer draws into, mouse and keyboard handlers driving the camera, and a
// status bar for the sampled frame statistics.
package ui

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cell is one terminal character with a foreground color.
type cell struct {
	r  rune
	fg color.RGBA
}

// cellCanvas implements render.Surface on a grid of terminal cells. One cell
// is one screen pixel; terminal cells are taller than wide, so the view is
// vertically squashed, which in practice reads fine for a node-and-edge
// graph.
type cellCanvas struct {
	w, h  int
	cells []cell
	bg    color.RGBA

	// Active affine transform, identity when scale == 0.
	scale, tx, ty float64
}

func newCellCanvas(w, h int) *cellCanvas {
	c := &cellCanvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid. Contents are discarded; the next frame redraws
// everything anyway.
func (c *cellCanvas) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.w, c.h = w, h
	c.cells = make([]cell, w*h)
}

func (c *cellCanvas) Size() (float64, float64) {
	return float64(c.w), float64(c.h)
}

func (c *cellCanvas) Clear(bg color.RGBA) {
	c.bg = bg
	for i := range c.cells {
		c.cells[i] = cell{}
	}
}

func (c *cellCanvas) SetTransform(scale, tx, ty float64) {
	c.scale, c.tx, c.ty = scale, tx, ty
}

func (c *cellCanvas) ResetTransform() {
	c.scale = 0
}

// apply maps a coordinate pair through the active transform.
func (c *cellCanvas) apply(x, y float64) (float64, float64) {
	if c.scale == 0 {
		return x, y
	}
	return x*c.scale + c.tx, y*c.scale + c.ty
}

// applyLen scales a length through the active transform.
func (c *cellCanvas) applyLen(l float64) float64 {
	if c.scale == 0 {
		return l
	}
	return l * c.scale
}

func (c *cellCanvas) set(x, y int, r rune, fg color.RGBA) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, fg: fg}
}

func (c *cellCanvas) Line(x1, y1, x2, y2, _ float64, fg color.RGBA) {
	x1, y1 = c.apply(x1, y1)
	x2, y2 = c.apply(x2, y2)

	// Bresenham over rounded endpoints.
	ax, ay := int(math.Round(x1)), int(math.Round(y1))
	bx, by := int(math.Round(x2)), int(math.Round(y2))
	dx, dy := abs(bx-ax), -abs(by-ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	err := dx + dy
	for {
		c.set(ax, ay, '·', fg)
		if ax == bx && ay == by {
			return
		}
		if e2 := 2 * err; e2 >= dy {
			err += dy
			ax += sx
		} else {
			err += dx
			ay += sy
		}
	}
}

func (c *cellCanvas) FillCircle(x, y, r float64, fg color.RGBA) {
	x, y = c.apply(x, y)
	r = c.applyLen(r)

	// Below one cell a disc is just a glyph sized by radius.
	if r < 1.5 {
		glyph := '●'
		if r < 0.75 {
			glyph = '•'
		}
		c.set(int(math.Round(x)), int(math.Round(y)), glyph, fg)
		return
	}
	for cy := int(math.Floor(y - r)); cy <= int(math.Ceil(y+r)); cy++ {
		for cx := int(math.Floor(x - r)); cx <= int(math.Ceil(x+r)); cx++ {
			ddx, ddy := float64(cx)-x, float64(cy)-y
			if ddx*ddx+ddy*ddy <= r*r {
				c.set(cx, cy, '█', fg)
			}
		}
	}
}

func (c *cellCanvas) StrokeCircle(x, y, r, _ float64, fg color.RGBA) {
	x, y = c.apply(x, y)
	r = c.applyLen(r)
	if r < 1 {
		return
	}
	steps := int(math.Max(8, 2*math.Pi*r))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.set(int(math.Round(x+r*math.Cos(a))), int(math.Round(y+r*math.Sin(a))), '∘', fg)
	}
}

func (c *cellCanvas) Text(x, y float64, s string, _ float64, fg color.RGBA) {
	x, y = c.apply(x, y)
	cx, cy := int(math.Round(x)), int(math.Round(y))
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if cx >= c.w {
			return
		}
		c.set(cx, cy, r, fg)
		cx += w
	}
}

// Render flattens the grid into styled terminal lines.
func (c *cellCanvas) Render() string {
	var b strings.Builder
	styles := map[color.RGBA]lipgloss.Style{}
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			if cl.r == 0 {
				b.WriteByte(' ')
				continue
			}
			st, ok := styles[cl.fg]
			if !ok {
				st = lipgloss.NewStyle().Foreground(lipglossColor(cl.fg))
				styles[cl.fg] = st
			}
			b.WriteString(st.Render(string(cl.r)))
		}
	}
	return b.String()
}

func lipglossColor(c color.RGBA) lipgloss.Color {
	const hex = "0123456789abcdef"
	buf := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		buf[1+2*i] = hex[v>>4]
		buf[2+2*i] = hex[v&0xf]
	}
	return lipgloss.Color(string(buf))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
