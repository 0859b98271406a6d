package tree

import "strings"

// ParentOption is one entry of a "choose parent" dropdown.
type ParentOption struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Depth int    `json:"depth" yaml:"depth"`
}

// Indented returns the label prefixed with unit once per depth level.
func (o ParentOption) Indented(unit string) string {
	return strings.Repeat(unit, o.Depth) + o.Label
}

// FilterOptionsExcluding lists every node of the forest in pre-order, except
// the node with excludedID and all of its descendants. Those are exactly the
// nodes that would create a cycle if chosen as the new parent of excludedID.
//
// An excludedID that is not in the forest (e.g. a node that has not been
// saved yet) excludes nothing.
func FilterOptionsExcluding(forest Forest, excludedID string) []ParentOption {
	opts := []ParentOption{}
	_ = Walk(forest, func(v Visit) error {
		if v.Node.ID == excludedID {
			return SkipChildren
		}
		opts = append(opts, ParentOption{ID: v.Node.ID, Label: v.Node.Label, Depth: v.Depth})
		return nil
	})
	return opts
}
