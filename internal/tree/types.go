package tree

// Record is one flat row of a hierarchy as delivered by a data source.
type Record struct {
	// ID is unique within one BuildForest call and must not be empty.
	ID string `json:"id" yaml:"id"`
	// ParentID is the id of the parent record. Empty means top level.
	ParentID string `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	Label    string `json:"label" yaml:"label"`
	// Order is the sibling sort key. Nil keeps the input position.
	Order *int `json:"order,omitempty" yaml:"order,omitempty"`
	// Payload is carried through to the node untouched.
	Payload any `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// IsRoot reports whether the record declares no parent.
func (r Record) IsRoot() bool {
	return r.ParentID == ""
}

// Node is a single vertex of a built forest.
type Node struct {
	ID       string  `json:"id" yaml:"id"`
	Label    string  `json:"label" yaml:"label"`
	Payload  any     `json:"payload,omitempty" yaml:"payload,omitempty"`
	Children []*Node `json:"children" yaml:"children"`
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Forest is an ordered sequence of independent trees.
type Forest []*Node

// Len returns the total number of nodes in the forest.
func (f Forest) Len() int {
	count := 0
	_ = Walk(f, func(Visit) error {
		count++
		return nil
	})
	return count
}

// OrderOf is a convenience for building records with an explicit order.
func OrderOf(v int) *int {
	return &v
}
