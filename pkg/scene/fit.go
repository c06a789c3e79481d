package scene

import (
	"strconv"
	"strings"

	"github.com/Dicklesworthstone/hiviz/pkg/model"
)

// focusMinScale is the floor the camera zooms to when jumping to a search
// match that was found while zoomed far out.
const focusMinScale = 0.8

// FitToContent frames every currently-visible node inside the viewport with
// the given padding. When nothing is visible the camera keeps its last valid
// state; an empty view is a no-op, not an error.
func (s *Scene) FitToContent(viewportW, viewportH, padding float64) {
	minX, maxX, minY, maxY, ok := s.VisibleBounds()
	if !ok {
		return
	}
	s.Cam.FitToBounds(minX, maxX, minY, maxY, viewportW, viewportH, padding)
}

// FocusOnMatch recenters the camera on the first node matching query:
// case-insensitive substring on the name, or exact match on the id rendered
// as a string. The scale is raised to focusMinScale if currently below it and
// the match lands horizontally centered at one quarter of the viewport
// height, so its subtree has room below. A miss or an empty query is a no-op.
// Returns the matched node, or nil.
func (s *Scene) FocusOnMatch(query string, viewportW, viewportH float64) *model.Node {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	lower := strings.ToLower(query)

	for i := range s.Nodes {
		n := &s.Nodes[i]
		if !strings.Contains(strings.ToLower(n.Name), lower) && strconv.Itoa(n.ID) != query {
			continue
		}
		if s.Cam.Scale < focusMinScale {
			s.Cam.Scale = focusMinScale
		}
		s.Cam.TranslateX = viewportW/2 - n.X*s.Cam.Scale
		s.Cam.TranslateY = viewportH/4 - n.Y*s.Cam.Scale
		return n
	}
	return nil
}
