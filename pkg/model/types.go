package model

import "fmt"

// Node is a single entry in the generated hierarchy. Nodes are created by the
// generator, positioned once by the layout engine, and never mutated after
// that: camera changes, filtering and collapsing all read node state without
// touching it.
type Node struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	ParentID int     `json:"parent_id"` // 0 for the root
	Level    Level   `json:"level"`
	Value    float64 `json:"value"`
	Depth    int     `json:"depth"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`

	// HasChildren is derived during index building: true iff some other
	// node's ParentID equals this node's ID.
	HasChildren bool `json:"has_children,omitempty"`
}

// IsRoot returns true if the node has no parent.
func (n *Node) IsRoot() bool {
	return n.ParentID == 0
}

// Validate checks structural invariants that hold for every generated node.
func (n *Node) Validate() error {
	if n.ID < 1 {
		return fmt.Errorf("node ID must be positive, got %d", n.ID)
	}
	if n.ParentID < 0 {
		return fmt.Errorf("node %d: parent ID cannot be negative", n.ID)
	}
	if n.ParentID >= n.ID {
		return fmt.Errorf("node %d: parent ID %d must precede the node", n.ID, n.ParentID)
	}
	if !n.Level.IsValid() {
		return fmt.Errorf("node %d: invalid level %q", n.ID, n.Level)
	}
	if n.Value < 0 {
		return fmt.Errorf("node %d: value cannot be negative", n.ID)
	}
	if n.Depth < 0 {
		return fmt.Errorf("node %d: depth cannot be negative", n.ID)
	}
	return nil
}

// Level is the performance category assigned to a node at generation time.
type Level string

const (
	LevelS Level = "S"
	LevelA Level = "A"
	LevelB Level = "B"
	LevelC Level = "C"
)

// IsValid returns true if the level is a recognized category.
func (l Level) IsValid() bool {
	switch l {
	case LevelS, LevelA, LevelB, LevelC:
		return true
	}
	return false
}

// GenSpec describes one generation run: how many nodes to create, how wide
// the tree may fan out, and the seed that makes the run reproducible.
type GenSpec struct {
	Total     int    `yaml:"total" json:"total"`
	MaxFanout int    `yaml:"max_fanout" json:"max_fanout"`
	Seed      uint64 `yaml:"seed" json:"seed"`
}

// Validate rejects impossible generation parameters. Invalid specs are an
// error, never silently clamped.
func (g GenSpec) Validate() error {
	if g.Total < 1 {
		return fmt.Errorf("total node count must be at least 1, got %d", g.Total)
	}
	if g.MaxFanout < 1 {
		return fmt.Errorf("max fanout must be at least 1, got %d", g.MaxFanout)
	}
	return nil
}

// ViewParams are the filter and display settings owned by the surrounding UI
// and read by the core each frame.
type ViewParams struct {
	MaxDepth   int     `yaml:"max_depth" json:"max_depth"`
	MinValue   float64 `yaml:"min_value" json:"min_value"`
	ShowEdges  bool    `yaml:"show_edges" json:"show_edges"`
	ShowLabels bool    `yaml:"show_labels" json:"show_labels"`
	LODEnabled bool    `yaml:"lod_enabled" json:"lod_enabled"`
}

// Validate rejects impossible filter settings.
func (v ViewParams) Validate() error {
	if v.MaxDepth < 0 {
		return fmt.Errorf("max depth cannot be negative, got %d", v.MaxDepth)
	}
	if v.MinValue < 0 {
		return fmt.Errorf("min value cannot be negative, got %v", v.MinValue)
	}
	return nil
}

// DefaultViewParams returns the settings a fresh scene starts with.
func DefaultViewParams() ViewParams {
	return ViewParams{
		MaxDepth:   10,
		MinValue:   0,
		ShowEdges:  true,
		ShowLabels: true,
		LODEnabled: true,
	}
}
