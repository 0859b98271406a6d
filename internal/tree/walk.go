package tree

import "errors"

// SkipChildren is returned by a WalkFunc to skip the children of the node
// being visited. Walk itself never returns it.
var SkipChildren = errors.New("skip children")

// Visit describes one step of a Walk.
type Visit struct {
	Node *Node
	// Parent is nil for top-level nodes.
	Parent *Node
	// Depth is 0 for top-level nodes.
	Depth int
	// Index is the position of Node among its siblings.
	Index int
}

// WalkFunc is called once per visited node.
type WalkFunc func(v Visit) error

// Walk visits the forest in pre-order: every node before its children and
// siblings in their stored order. If fn returns SkipChildren the node's
// subtree is skipped; any other non-nil error stops the walk and is returned.
func Walk(forest Forest, fn WalkFunc) error {
	return walk(forest, nil, 0, fn)
}

func walk(nodes []*Node, parent *Node, depth int, fn WalkFunc) error {
	for i, n := range nodes {
		err := fn(Visit{Node: n, Parent: parent, Depth: depth, Index: i})
		if errors.Is(err, SkipChildren) {
			continue
		}
		if err != nil {
			return err
		}
		if err := walk(n.Children, n, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// errStop ends a walk early once a query has its answer.
var errStop = errors.New("stop walk")
