package layout

import "github.com/Dicklesworthstone/hiviz/pkg/model"

const (
	// MinColumnGap is the guaranteed horizontal spacing between adjacent
	// slots in a depth layer.
	MinColumnGap = 28.0

	// MinLayerWidth keeps sparse layers from collapsing into a sliver, so a
	// two-node layer still spreads visibly around the root.
	MinLayerWidth = 800.0

	// RowSpacing is the vertical distance between consecutive depth layers.
	RowSpacing = 140.0
)

// Apply computes every node's depth by BFS from the root and assigns layered
// coordinates: each depth layer is centered on x=0 with evenly spaced columns,
// and y grows strictly with depth. Coordinates are written once per
// generation; camera changes never touch them.
//
// This is deliberately not a tidy-tree layout. Slotting each layer
// independently trades edge-crossing minimization for a simple O(N log N)
// pass that cannot overlap siblings within a layer.
func Apply(nodes []model.Node, idx *Index) {
	if len(nodes) == 0 || idx.Root == nil {
		return
	}

	// BFS depth assignment. Every non-root node is reachable because
	// parents always precede children.
	queue := make([]int, 0, len(nodes))
	queue = append(queue, idx.Root.ID)
	idx.Root.Depth = 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		parent := idx.ByID[id]
		for _, childID := range idx.Children[id] {
			child := idx.ByID[childID]
			child.Depth = parent.Depth + 1
			queue = append(queue, childID)
		}
	}

	// Group by depth in id order, then slot each layer.
	maxDepth := 0
	for i := range nodes {
		if d := nodes[i].Depth; d > maxDepth {
			maxDepth = d
		}
	}
	layers := make([][]*model.Node, maxDepth+1)
	for i := range nodes {
		n := &nodes[i]
		layers[n.Depth] = append(layers[n.Depth], n)
	}

	for depth, layer := range layers {
		n := len(layer)
		if n == 0 {
			continue
		}
		width := float64(n) * MinColumnGap
		if width < MinLayerWidth {
			width = MinLayerWidth
		}
		slot := width / float64(n)
		for i, node := range layer {
			node.X = (float64(i)+0.5)*slot - width/2
			node.Y = float64(depth) * RowSpacing
		}
	}
}
