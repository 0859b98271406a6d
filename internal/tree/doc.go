// Package tree converts flat parent-pointer records into ordered forests and
// back again.
//
// # Why Tree Package Exists
//
// Every hierarchical screen of the console (departments, menus, role menus)
// receives its rows as a flat list where each row names its own id and its
// parent's id. The tree widget, on the other hand, needs nested nodes with
// ordered children. This package is the single place where that conversion
// happens, so the per-domain mappers only have to rename fields.
//
// # Construction
//
// BuildForest works on the input slice as an arena: it indexes every record
// by id once, resolves each parent to an arena index, checks the parent links
// for cycles and only then allocates nodes. Either the whole forest is
// returned or a typed error is; there is no partial result.
//
//	forest, err := tree.BuildForest(records, tree.WithOrphanPolicy(tree.Reject))
//	if err != nil {
//	    var cyc *tree.CyclicReferenceError
//	    if errors.As(err, &cyc) {
//	        // cyc.IDs lists the records forming the loop
//	    }
//	}
//
// Nodes never point back to their parent. The parent of a node is implied by
// its position in the forest, which keeps ownership strictly top-down.
//
// # Queries
//
// Flatten, FindNode, PathTo, Descendants, FilterOptionsExcluding and Stats are
// all built on Walk, a pre-order visitor.
//
// # Thread-Safety
//
// Every function is pure and reentrant. Nothing is cached between calls.
// Callers must not mutate the input while a call is running, and must not
// mutate nodes returned by FindNode in place; rebuild instead.
package tree
