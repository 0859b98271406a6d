package tree

import "sort"

// BuildForest turns a flat slice of records into an ordered forest.
//
// Records with an empty ParentID become top-level trees. Records whose parent
// is present become children of that parent's node. Records whose parent is
// absent are orphans and are handled according to the OrphanPolicy.
//
// Siblings, including the top-level trees, are sorted by Order ascending.
// Records with an Order come before records without one; records without an
// Order, and records with equal Orders, keep their input sequence.
//
// The build is all-or-nothing. It fails with *EmptyIDError,
// *DuplicateIDError, *OrphanReferenceError or *CyclicReferenceError and
// returns no forest in that case. The input slice is not modified.
func BuildForest(records []Record, opts ...BuildOption) (Forest, error) {
	cfg := newBuildConfig(opts)

	index := make(map[string]int, len(records))
	for i, r := range records {
		if r.ID == "" {
			return nil, &EmptyIDError{Index: i}
		}
		if _, exists := index[r.ID]; exists {
			return nil, &DuplicateIDError{ID: r.ID}
		}
		index[r.ID] = i
	}

	parents := make([]int, len(records))
	for i, r := range records {
		parents[i] = noParent
		if r.IsRoot() {
			continue
		}
		p, ok := index[r.ParentID]
		if !ok {
			if cfg.orphans == Reject {
				return nil, &OrphanReferenceError{ID: r.ID, ParentID: r.ParentID}
			}
			continue // promoted to root
		}
		parents[i] = p
	}

	if cycle := findCycle(parents); cycle != nil {
		ids := make([]string, len(cycle))
		for i, idx := range cycle {
			ids[i] = records[idx].ID
		}
		return nil, &CyclicReferenceError{IDs: ids}
	}

	// Group by parent. Indices are appended in input order, which the stable
	// sort below relies on.
	var roots []int
	children := make([][]int, len(records))
	for i, p := range parents {
		if p == noParent {
			roots = append(roots, i)
		} else {
			children[p] = append(children[p], i)
		}
	}

	nodes := make([]*Node, len(records))
	for i, r := range records {
		nodes[i] = &Node{
			ID:       r.ID,
			Label:    r.Label,
			Payload:  r.Payload,
			Children: make([]*Node, 0, len(children[i])),
		}
	}
	for i, kids := range children {
		sortSiblings(records, kids)
		for _, k := range kids {
			nodes[i].Children = append(nodes[i].Children, nodes[k])
		}
	}

	sortSiblings(records, roots)
	forest := make(Forest, 0, len(roots))
	for _, r := range roots {
		forest = append(forest, nodes[r])
	}
	return forest, nil
}

// sortSiblings orders arena indices by their record's Order, keeping input
// order for ties and for records without an Order.
func sortSiblings(records []Record, siblings []int) {
	if len(siblings) < 2 {
		return
	}
	sort.SliceStable(siblings, func(a, b int) bool {
		oa, ob := records[siblings[a]].Order, records[siblings[b]].Order
		switch {
		case oa != nil && ob != nil:
			return *oa < *ob
		case oa != nil:
			return true
		default:
			return false
		}
	})
}
