package tree

// Flatten converts a forest back into records in pre-order. ParentID is taken
// from each node's position and Order is renumbered to the node's index among
// its siblings, so BuildForest(Flatten(f)) reproduces f. The forest is not
// modified.
func Flatten(forest Forest) []Record {
	records := make([]Record, 0, forest.Len())
	_ = Walk(forest, func(v Visit) error {
		parentID := ""
		if v.Parent != nil {
			parentID = v.Parent.ID
		}
		records = append(records, Record{
			ID:       v.Node.ID,
			ParentID: parentID,
			Label:    v.Node.Label,
			Order:    OrderOf(v.Index),
			Payload:  v.Node.Payload,
		})
		return nil
	})
	return records
}
