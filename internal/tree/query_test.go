package tree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSample builds:
//
//	A
//	├── B
//	│   └── C
//	└── D
//	E
func buildSample(t *testing.T) Forest {
	t.Helper()
	forest, err := BuildForest([]Record{
		rec("A", ""),
		rec("B", "A"),
		rec("C", "B"),
		rec("D", "A"),
		rec("E", ""),
	})
	require.NoError(t, err)
	return forest
}

func TestWalk_PreOrder(t *testing.T) {
	forest := buildSample(t)

	var visited []string
	var depths []int
	var parents []string
	err := Walk(forest, func(v Visit) error {
		visited = append(visited, v.Node.ID)
		depths = append(depths, v.Depth)
		if v.Parent != nil {
			parents = append(parents, v.Parent.ID)
		} else {
			parents = append(parents, "")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, visited)
	assert.Equal(t, []int{0, 1, 2, 1, 0}, depths)
	assert.Equal(t, []string{"", "A", "B", "A", ""}, parents)
}

func TestWalk_SkipChildrenAndStop(t *testing.T) {
	forest := buildSample(t)

	var visited []string
	err := Walk(forest, func(v Visit) error {
		visited = append(visited, v.Node.ID)
		if v.Node.ID == "B" {
			return SkipChildren
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "E"}, visited)

	boom := errors.New("boom")
	visited = nil
	err = Walk(forest, func(v Visit) error {
		visited = append(visited, v.Node.ID)
		if v.Node.ID == "C" {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"A", "B", "C"}, visited)
}

func TestFlatten(t *testing.T) {
	forest := buildSample(t)

	flat := Flatten(forest)
	require.Len(t, flat, 5)

	expected := []struct {
		id, parent string
		order      int
	}{
		{"A", "", 0},
		{"B", "A", 0},
		{"C", "B", 0},
		{"D", "A", 1},
		{"E", "", 1},
	}
	for i, e := range expected {
		assert.Equal(t, e.id, flat[i].ID)
		assert.Equal(t, e.parent, flat[i].ParentID)
		require.NotNil(t, flat[i].Order)
		assert.Equal(t, e.order, *flat[i].Order)
		assert.Equal(t, "label-"+e.id, flat[i].Label)
	}
}

func TestFlatten_DoesNotMutateForest(t *testing.T) {
	forest := buildSample(t)
	before := shape(forest)

	_ = Flatten(forest)
	assert.Equal(t, before, shape(forest))
}

func TestFlatten_Empty(t *testing.T) {
	assert.Empty(t, Flatten(nil))
}

func TestFindNode(t *testing.T) {
	forest := buildSample(t)

	n, ok := FindNode(forest, "C")
	require.True(t, ok)
	assert.Equal(t, "C", n.ID)

	again, ok := FindNode(forest, "C")
	require.True(t, ok)
	assert.Same(t, n, again, "repeated lookups return the same node")

	missing, ok := FindNode(forest, "nope")
	assert.False(t, ok)
	assert.Nil(t, missing)

	_, ok = FindNode(forest, "nope")
	assert.False(t, ok)
}

func TestPathTo(t *testing.T) {
	forest := buildSample(t)

	path, ok := PathTo(forest, "C")
	require.True(t, ok)
	ids := make([]string, len(path))
	for i, n := range path {
		ids[i] = n.ID
	}
	assert.Equal(t, []string{"A", "B", "C"}, ids)

	path, ok = PathTo(forest, "D")
	require.True(t, ok)
	require.Len(t, path, 2)
	assert.Equal(t, "A", path[0].ID)
	assert.Equal(t, "D", path[1].ID)

	path, ok = PathTo(forest, "nope")
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestDescendants(t *testing.T) {
	forest := buildSample(t)

	assert.Equal(t, []string{"B", "C", "D"}, Descendants(forest, "A"))
	assert.Equal(t, []string{}, Descendants(forest, "E"))
	assert.Nil(t, Descendants(forest, "nope"))
}

func TestStatsOf(t *testing.T) {
	assert.Equal(t, Stats{Nodes: 5, Roots: 2, Leaves: 3, MaxDepth: 2}, StatsOf(buildSample(t)))
	assert.Equal(t, Stats{}, StatsOf(nil))
}

func TestFilterOptionsExcluding(t *testing.T) {
	chain, err := BuildForest([]Record{rec("A", ""), rec("B", "A"), rec("C", "B")})
	require.NoError(t, err)

	opts := FilterOptionsExcluding(chain, "B")
	assert.Equal(t, []ParentOption{{ID: "A", Label: "label-A", Depth: 0}}, opts)
}

func TestFilterOptionsExcluding_Cases(t *testing.T) {
	forest := buildSample(t)

	testCases := []struct {
		name     string
		excluded string
		expected []string
	}{
		{name: "leaf", excluded: "C", expected: []string{"A", "B", "D", "E"}},
		{name: "root with subtree", excluded: "A", expected: []string{"E"}},
		{name: "unknown id keeps everything", excluded: "new", expected: []string{"A", "B", "C", "D", "E"}},
		{name: "empty id keeps everything", excluded: "", expected: []string{"A", "B", "C", "D", "E"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := FilterOptionsExcluding(forest, tc.excluded)
			ids := make([]string, len(opts))
			for i, o := range opts {
				ids[i] = o.ID
			}
			assert.Equal(t, tc.expected, ids)
		})
	}
}

func TestParentOption_Indented(t *testing.T) {
	forest := buildSample(t)
	opts := FilterOptionsExcluding(forest, "")

	var lines []string
	for _, o := range opts {
		lines = append(lines, o.Indented("--"))
	}
	assert.Equal(t, []string{"label-A", "--label-B", "----label-C", "--label-D", "label-E"}, lines)
}

func TestForest_Len(t *testing.T) {
	assert.Equal(t, 5, buildSample(t).Len())
	assert.Equal(t, 0, Forest(nil).Len())
}
