package render

import (
	"fmt"
	"math"

	"github.com/Dicklesworthstone/hiviz/pkg/scene"
)

const (
	// NodeRadius is the world-space radius of an individual node disc.
	NodeRadius = 7.0

	// gridStep is the world-space spacing of the background grid.
	gridStep = 200.0

	// labelMinScale suppresses labels when the camera is too far out for
	// them to be readable anyway.
	labelMinScale = 0.8

	// cullPadPx expands the node/edge culling rectangle so shapes whose
	// centers are just off screen still draw their on-screen part.
	cullPadPx = 60.0

	labelSize        = 11.0
	clusterLabelSize = 12.0
)

// Options tune a single frame.
type Options struct {
	// HighValueThreshold draws an accent ring on nodes at or above it.
	// Zero disables highlighting.
	HighValueThreshold float64
}

// FrameStats reports what one frame actually drew.
type FrameStats struct {
	Nodes    int
	Edges    int
	Clusters int
	LOD      bool
}

// DrawFrame renders one complete frame of sc onto s: grid, then edges, then
// nodes or cluster bubbles, then labels. Both render modes cull against the
// expanded viewport rectangle with a linear scan; at the target node counts
// that beats maintaining a spatial index across regenerations.
func DrawFrame(s Surface, sc *scene.Scene, opts Options) FrameStats {
	w, h := s.Size()
	cam := sc.Cam

	s.Clear(bgDark)
	drawGrid(s, sc, w, h)

	stats := FrameStats{LOD: sc.LODActive()}
	if stats.LOD {
		drawClusters(s, sc, w, h, &stats)
		return stats
	}

	minX, maxX, minY, maxY := sc.ViewportWorldBounds(w, h, cullPadPx)
	inView := func(x, y float64) bool {
		return x >= minX && x <= maxX && y >= minY && y <= maxY
	}

	s.SetTransform(cam.Scale, cam.TranslateX, cam.TranslateY)

	if sc.Params.ShowEdges {
		edgeWidth := 1.2 / cam.Scale
		for i := range sc.Nodes {
			n := &sc.Nodes[i]
			if n.IsRoot() || !sc.IsVisible(n) {
				continue
			}
			parent := sc.Index.ByID[n.ParentID]
			if !sc.IsVisible(parent) {
				continue
			}
			if !inView(n.X, n.Y) && !inView(parent.X, parent.Y) {
				continue
			}
			s.Line(parent.X, parent.Y, n.X, n.Y, edgeWidth, edgeColor)
			stats.Edges++
		}
	}

	ringWidth := 1.5 / cam.Scale
	for i := range sc.Nodes {
		n := &sc.Nodes[i]
		if !sc.IsVisible(n) || !inView(n.X, n.Y) {
			continue
		}
		s.FillCircle(n.X, n.Y, NodeRadius, LevelColor(n.Level))
		if opts.HighValueThreshold > 0 && n.Value >= opts.HighValueThreshold {
			s.StrokeCircle(n.X, n.Y, NodeRadius+3, ringWidth, accentRing)
		}
		if sc.IsCollapsed(n.ID) {
			s.StrokeCircle(n.X, n.Y, NodeRadius+6, ringWidth, collapseRing)
		}
		stats.Nodes++
	}

	s.ResetTransform()

	if sc.Params.ShowLabels && cam.Scale >= labelMinScale {
		for i := range sc.Nodes {
			n := &sc.Nodes[i]
			if !sc.IsVisible(n) || !inView(n.X, n.Y) {
				continue
			}
			sx, sy := cam.WorldToScreen(n.X, n.Y)
			s.Text(sx+NodeRadius*cam.Scale+3, sy-3, n.Name, labelSize, textSecondary)
		}
	}

	return stats
}

// drawGrid draws world-aligned grid lines across the viewport in screen
// space, before the camera transform is installed.
func drawGrid(s Surface, sc *scene.Scene, w, h float64) {
	cam := sc.Cam
	minX, minY := cam.ScreenToWorld(0, 0)
	maxX, maxY := cam.ScreenToWorld(w, h)

	for x := math.Floor(minX/gridStep) * gridStep; x <= maxX; x += gridStep {
		sx, _ := cam.WorldToScreen(x, 0)
		s.Line(sx, 0, sx, h, 1, gridLine)
	}
	for y := math.Floor(minY/gridStep) * gridStep; y <= maxY; y += gridStep {
		_, sy := cam.WorldToScreen(0, y)
		s.Line(0, sy, w, sy, 1, gridLine)
	}
}

// drawClusters renders the LOD view: one bubble per in-view depth-1 subtree,
// sized by member count, with the count as its label. Bubbles draw in screen
// space so they keep a readable size however far out the camera sits.
func drawClusters(s Surface, sc *scene.Scene, w, h float64, stats *FrameStats) {
	cam := sc.Cam
	for _, c := range sc.Clusters(w, h) {
		sx, sy := cam.WorldToScreen(c.X, c.Y)
		r := c.Radius()
		s.FillCircle(sx, sy, r, clusterFill)
		s.StrokeCircle(sx, sy, r, 1.5, clusterRing)
		s.Text(sx-r/2, sy+clusterLabelSize/3, fmt.Sprintf("%d", c.Count), clusterLabelSize, textPrimary)
		stats.Clusters++
	}
}
