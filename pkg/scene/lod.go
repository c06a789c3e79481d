package scene

import "math"

const (
	// LODThreshold is the camera scale below which individual nodes give way
	// to cluster bubbles.
	LODThreshold = 0.35

	// clusterCullPadPx expands the viewport culling rectangle so bubbles
	// whose centers sit just off screen still draw their overhang.
	clusterCullPadPx = 100.0

	clusterBaseRadius   = 6.0
	clusterRadiusPerLog = 7.0
)

// Cluster is the LOD summary of one depth-1 subtree: position of the depth-1
// node plus count and value sum over its immediate children that pass the
// value threshold. Collapse state and deeper descendants are intentionally
// ignored; clustering summarizes one level only.
type Cluster struct {
	ID    int
	Name  string
	X, Y  float64
	Count int
	Sum   float64
}

// Radius returns the bubble's world-space radius. Growth is logarithmic in
// the member count, so dense regions stay legible.
func (c Cluster) Radius() float64 {
	return clusterBaseRadius + clusterRadiusPerLog*math.Log2(1+float64(c.Count))
}

// LODActive reports whether the current zoom renders clusters instead of
// individual nodes.
func (s *Scene) LODActive() bool {
	return s.Params.LODEnabled && s.Cam.Scale < LODThreshold
}

// Clusters aggregates every depth-1 node inside the expanded viewport into a
// cluster record. It is meaningful regardless of LODActive so exports can
// force either mode.
func (s *Scene) Clusters(viewportW, viewportH float64) []Cluster {
	minX, maxX, minY, maxY := s.ViewportWorldBounds(viewportW, viewportH, clusterCullPadPx)

	var clusters []Cluster
	if s.Index.Root == nil {
		return clusters
	}
	for _, id := range s.Index.Children[s.Index.Root.ID] {
		n := s.Index.ByID[id]
		if n.X < minX || n.X > maxX || n.Y < minY || n.Y > maxY {
			continue
		}
		c := Cluster{ID: n.ID, Name: n.Name, X: n.X, Y: n.Y}
		for _, childID := range s.Index.Children[n.ID] {
			child := s.Index.ByID[childID]
			if child.Value < s.Params.MinValue {
				continue
			}
			c.Count++
			c.Sum += child.Value
		}
		clusters = append(clusters, c)
	}
	return clusters
}
