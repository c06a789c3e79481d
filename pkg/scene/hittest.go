package scene

import "github.com/Dicklesworthstone/hiviz/pkg/model"

// hitBaseRadius is the pick radius in screen pixels. Dividing by the camera
// scale keeps the clickable area constant on screen regardless of zoom.
const hitBaseRadius = 12.0

// HitTest maps a screen position to the first visible node within the
// scale-adjusted radius, or nil. First match by node-list order, not nearest
// match: at this radius the simplification is not noticeable and it keeps the
// scan a single linear pass.
func (s *Scene) HitTest(sx, sy float64) *model.Node {
	wx, wy := s.Cam.ScreenToWorld(sx, sy)
	r := hitBaseRadius / s.Cam.Scale
	r2 := r * r

	for i := range s.Nodes {
		n := &s.Nodes[i]
		if !s.IsVisible(n) {
			continue
		}
		dx := n.X - wx
		dy := n.Y - wy
		if dx*dx+dy*dy <= r2 {
			return n
		}
	}
	return nil
}
