// Package scene holds the live viewer state: the generated nodes, their
// spatial index, the camera, the collapse set and the filter parameters. All
// per-frame queries (visibility, clustering, hit-testing, view fitting) live
// here.
package scene

import (
	"fmt"

	"github.com/Dicklesworthstone/hiviz/pkg/camera"
	"github.com/Dicklesworthstone/hiviz/pkg/gen"
	"github.com/Dicklesworthstone/hiviz/pkg/layout"
	"github.com/Dicklesworthstone/hiviz/pkg/model"
)

// Scene is owned by the UI event loop. Nothing in it is safe for concurrent
// mutation; background goroutines communicate with it only through messages.
type Scene struct {
	Spec   model.GenSpec
	Params model.ViewParams

	Nodes []model.Node
	Index *layout.Index
	Cam   *camera.Camera

	collapsed map[int]bool
	maxValue  float64
}

// New generates, indexes and lays out a scene from spec.
func New(spec model.GenSpec) (*Scene, error) {
	s := &Scene{
		Params:    model.DefaultViewParams(),
		Cam:       camera.New(),
		collapsed: make(map[int]bool),
	}
	if err := s.Regenerate(spec); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate replaces the node set from a new spec, rebuilding the index and
// layout and clearing the collapse set. The camera is left alone so the
// caller decides whether to re-fit. If the previous MinValue now exceeds
// every node's value, it is re-clamped to the observed maximum so a
// regeneration can never silently blank the view.
func (s *Scene) Regenerate(spec model.GenSpec) error {
	nodes, err := gen.Generate(spec)
	if err != nil {
		return fmt.Errorf("regenerate scene: %w", err)
	}

	s.Spec = spec
	s.Nodes = nodes
	s.Index = layout.BuildIndex(s.Nodes)
	layout.Apply(s.Nodes, s.Index)
	s.collapsed = make(map[int]bool)

	s.maxValue = 0
	for i := range s.Nodes {
		if v := s.Nodes[i].Value; v > s.maxValue {
			s.maxValue = v
		}
	}
	if s.Params.MinValue > s.maxValue {
		s.Params.MinValue = s.maxValue
	}
	return nil
}

// MaxValue returns the largest node value in the current generation.
func (s *Scene) MaxValue() float64 {
	return s.maxValue
}

// ToggleCollapse flips the children-hidden flag for id. Unknown ids are
// ignored, as are leaves: collapsing a node without children is meaningless.
func (s *Scene) ToggleCollapse(id int) {
	n, ok := s.Index.ByID[id]
	if !ok || !n.HasChildren {
		return
	}
	if s.collapsed[id] {
		delete(s.collapsed, id)
	} else {
		s.collapsed[id] = true
	}
}

// IsCollapsed reports whether id's descendants are currently hidden.
func (s *Scene) IsCollapsed(id int) bool {
	return s.collapsed[id]
}

// CollapsedCount returns the size of the collapse set.
func (s *Scene) CollapsedCount() int {
	return len(s.collapsed)
}

// ExpandAll clears the collapse set.
func (s *Scene) ExpandAll() {
	s.collapsed = make(map[int]bool)
}
