package tree

// FindNode returns the node with the given id. The returned node is shared
// with the forest and must be treated as read-only.
func FindNode(forest Forest, id string) (*Node, bool) {
	var found *Node
	_ = Walk(forest, func(v Visit) error {
		if v.Node.ID == id {
			found = v.Node
			return errStop
		}
		return nil
	})
	return found, found != nil
}

// PathTo returns the chain of nodes from a top-level node down to the node
// with the given id, both ends included.
func PathTo(forest Forest, id string) ([]*Node, bool) {
	var stack, path []*Node
	_ = Walk(forest, func(v Visit) error {
		stack = append(stack[:v.Depth], v.Node)
		if v.Node.ID == id {
			path = append([]*Node(nil), stack...)
			return errStop
		}
		return nil
	})
	return path, path != nil
}

// Descendants returns the ids below the node with the given id in pre-order.
// It returns nil when the id is not in the forest.
func Descendants(forest Forest, id string) []string {
	n, ok := FindNode(forest, id)
	if !ok {
		return nil
	}
	ids := []string{}
	_ = Walk(n.Children, func(v Visit) error {
		ids = append(ids, v.Node.ID)
		return nil
	})
	return ids
}

// Stats summarizes the shape of a forest.
type Stats struct {
	Nodes  int `json:"nodes"`
	Roots  int `json:"roots"`
	Leaves int `json:"leaves"`
	// MaxDepth is the depth of the deepest node; top-level nodes are depth 0.
	MaxDepth int `json:"maxDepth"`
}

// StatsOf walks the forest once and counts its nodes.
func StatsOf(forest Forest) Stats {
	s := Stats{Roots: len(forest)}
	_ = Walk(forest, func(v Visit) error {
		s.Nodes++
		if v.Node.IsLeaf() {
			s.Leaves++
		}
		if v.Depth > s.MaxDepth {
			s.MaxDepth = v.Depth
		}
		return nil
	})
	return s
}
