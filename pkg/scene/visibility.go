package scene

import "github.com/Dicklesworthstone/hiviz/pkg/model"

// IsVisible is the per-frame visibility predicate: the node passes the depth
// limit, passes the value threshold, and has no collapsed ancestor. A node
// whose own id is in the collapse set stays visible; only its descendants are
// hidden.
//
// The ancestor walk is bounded by MaxDepth hops. Any node that passes the
// depth check has at most MaxDepth ancestors, so the bound never cuts a walk
// short; it only caps the cost of the pure computed predicate.
func (s *Scene) IsVisible(n *model.Node) bool {
	if n.Depth > s.Params.MaxDepth {
		return false
	}
	if n.Value < s.Params.MinValue {
		return false
	}

	cur := n
	for hops := 0; hops < s.Params.MaxDepth; hops++ {
		if cur.IsRoot() {
			break
		}
		parent, ok := s.Index.ByID[cur.ParentID]
		if !ok {
			break
		}
		if s.collapsed[parent.ID] {
			return false
		}
		cur = parent
	}
	return true
}

// VisibleBounds returns the world-space bounding rectangle over all visible
// nodes and whether any node is visible at all.
func (s *Scene) VisibleBounds() (minX, maxX, minY, maxY float64, ok bool) {
	for i := range s.Nodes {
		n := &s.Nodes[i]
		if !s.IsVisible(n) {
			continue
		}
		if !ok {
			minX, maxX, minY, maxY = n.X, n.X, n.Y, n.Y
			ok = true
			continue
		}
		if n.X < minX {
			minX = n.X
		}
		if n.X > maxX {
			maxX = n.X
		}
		if n.Y < minY {
			minY = n.Y
		}
		if n.Y > maxY {
			maxY = n.Y
		}
	}
	return minX, maxX, minY, maxY, ok
}

// ViewportWorldBounds returns the world-space rectangle currently on screen,
// expanded on every side by padPx screen pixels converted to world units. It
// is the culling rectangle for both node and cluster rendering.
func (s *Scene) ViewportWorldBounds(viewportW, viewportH, padPx float64) (minX, maxX, minY, maxY float64) {
	pad := padPx / s.Cam.Scale
	minX, minY = s.Cam.ScreenToWorld(0, 0)
	maxX, maxY = s.Cam.ScreenToWorld(viewportW, viewportH)
	return minX - pad, maxX + pad, minY - pad, maxY + pad
}
