package tree

const noParent = -1

// visit states for the ancestor walk.
const (
	unvisited = iota
	onPath
	done
)

// findCycle checks the parent links for loops. parents[i] is the arena index
// of record i's parent, or noParent. It returns the arena indices of the
// first cycle found in ancestry order, or nil.
//
// Classic three-colour marking, but iterative: each walk follows parent links
// from an unvisited record until it reaches a root, a record finished by an
// earlier walk, or a record already on the current path. Every record is
// walked at most once, so the whole check is O(n).
func findCycle(parents []int) []int {
	state := make([]uint8, len(parents))
	pathPos := make([]int, len(parents))
	var path []int

	for start := range parents {
		if state[start] != unvisited {
			continue
		}

		path = path[:0]
		cur := start
		for cur != noParent && state[cur] == unvisited {
			state[cur] = onPath
			pathPos[cur] = len(path)
			path = append(path, cur)
			cur = parents[cur]
		}

		if cur != noParent && state[cur] == onPath {
			// We've reached a record that is on the current path, so we have a loop.
			return rotateToSmallest(path[pathPos[cur]:])
		}

		for _, i := range path {
			state[i] = done
		}
	}
	return nil
}

// rotateToSmallest returns a rotated copy of a cycle so it starts at its lowest arena index,
// making the reported order independent of where the walk entered the loop.
func rotateToSmallest(cycle []int) []int {
	minPos := 0
	for i, idx := range cycle {
		if idx < cycle[minPos] {
			minPos = i
		}
	}
	rotated := make([]int, 0, len(cycle))
	rotated = append(rotated, cycle[minPos:]...)
	return append(rotated, cycle[:minPos]...)
}
