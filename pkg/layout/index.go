// Package layout turns the flat generated node list into a positioned
// hierarchy: it builds the adjacency index, computes depths by BFS from the
// root, and assigns world-space coordinates with a layered scheme.
package layout

import "github.com/Dicklesworthstone/hiviz/pkg/model"

// Index holds the lookup structures every per-frame pass needs: id→node and
// parent→children adjacency. Children lists preserve creation order, which is
// also the hit-test iteration order.
type Index struct {
	ByID     map[int]*model.Node
	Children map[int][]int
	Root     *model.Node
}

// BuildIndex constructs the index over nodes and derives HasChildren. The
// returned index points into the nodes slice, so it must be rebuilt after
// regeneration.
func BuildIndex(nodes []model.Node) *Index {
	idx := &Index{
		ByID:     make(map[int]*model.Node, len(nodes)),
		Children: make(map[int][]int),
	}
	for i := range nodes {
		n := &nodes[i]
		idx.ByID[n.ID] = n
		if n.IsRoot() {
			idx.Root = n
		} else {
			idx.Children[n.ParentID] = append(idx.Children[n.ParentID], n.ID)
		}
	}
	for i := range nodes {
		n := &nodes[i]
		n.HasChildren = len(idx.Children[n.ID]) > 0
	}
	return idx
}
