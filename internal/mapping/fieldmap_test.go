package mapping

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/specialistvlad/treegridgo/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreset(t *testing.T) {
	fm, err := Preset("")
	require.NoError(t, err)
	assert.Equal(t, "id", fm.ID)

	fm, err = Preset("department")
	require.NoError(t, err)
	assert.Equal(t, "parentDeptId", fm.ParentID)

	_, err = Preset("boards")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rolemenu")

	assert.Equal(t, []string{"department", "generic", "menu", "rolemenu"}, PresetNames())
}

func TestRecords_Department(t *testing.T) {
	fm, err := Preset("department")
	require.NoError(t, err)

	rows := []map[string]any{
		{"deptId": float64(10), "parentDeptId": float64(0), "deptName": "Head Office", "sortOrder": float64(1)},
		{"deptId": float64(11), "parentDeptId": float64(10), "deptName": "Finance", "sortOrder": "2"},
		{"deptId": "12", "parentDeptId": "10", "deptName": "IT"},
	}

	records, err := fm.Records(rows)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "10", records[0].ID)
	assert.Equal(t, "", records[0].ParentID, "0 is the root sentinel for departments")
	assert.Equal(t, "Head Office", records[0].Label)
	require.NotNil(t, records[0].Order)
	assert.Equal(t, 1, *records[0].Order)
	assert.Equal(t, rows[0], records[0].Payload)

	assert.Equal(t, "10", records[1].ParentID)
	assert.Equal(t, 2, *records[1].Order)

	assert.Nil(t, records[2].Order)

	forest, err := tree.BuildForest(records)
	require.NoError(t, err)
	require.Len(t, forest, 1)
	assert.Len(t, forest[0].Children, 2)
}

func TestRecord_GenericKeepsZeroParent(t *testing.T) {
	fm, err := Preset("generic")
	require.NoError(t, err)

	r, err := fm.Record(map[string]any{"id": "a", "parentId": "0"})
	require.NoError(t, err)
	assert.Equal(t, "0", r.ParentID)
}

func TestRecord_Coercion(t *testing.T) {
	fm := FieldMap{ID: "id", ParentID: "p", Label: "l", Order: "o"}

	testCases := []struct {
		name          string
		row           map[string]any
		expectedID    string
		expectedOrder *int
	}{
		{name: "yaml int", row: map[string]any{"id": 7, "o": 3}, expectedID: "7", expectedOrder: tree.OrderOf(3)},
		{name: "neo4j int64", row: map[string]any{"id": int64(8), "o": int64(4)}, expectedID: "8", expectedOrder: tree.OrderOf(4)},
		{name: "json number", row: map[string]any{"id": json.Number("9"), "o": json.Number("5")}, expectedID: "9", expectedOrder: tree.OrderOf(5)},
		{name: "whole float", row: map[string]any{"id": 1.0, "o": 2.0}, expectedID: "1", expectedOrder: tree.OrderOf(2)},
		{name: "null order", row: map[string]any{"id": "x", "o": nil}, expectedID: "x"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := fm.Record(tc.row)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedID, r.ID)
			assert.Equal(t, tc.expectedOrder, r.Order)
		})
	}
}

func TestRecord_LabelIsStringified(t *testing.T) {
	fm := FieldMap{ID: "id", ParentID: "p", Label: "l"}
	r, err := fm.Record(map[string]any{"id": "a", "l": 42})
	require.NoError(t, err)
	assert.Equal(t, "42", r.Label)
}

func TestRecords_Errors(t *testing.T) {
	fm := FieldMap{ID: "id", ParentID: "p", Label: "l", Order: "o"}

	testCases := []struct {
		name          string
		rows          []map[string]any
		expectedIndex int
		expectedField string
	}{
		{
			name:          "missing id",
			rows:          []map[string]any{{"id": "a"}, {"l": "no id"}},
			expectedIndex: 1,
			expectedField: "id",
		},
		{
			name:          "fractional order",
			rows:          []map[string]any{{"id": "a", "o": 1.5}},
			expectedIndex: 0,
			expectedField: "o",
		},
		{
			name:          "non numeric order",
			rows:          []map[string]any{{"id": "a"}, {"id": "b"}, {"id": "c", "o": "first"}},
			expectedIndex: 2,
			expectedField: "o",
		},
		{
			name:          "structured parent",
			rows:          []map[string]any{{"id": "a", "p": map[string]any{"id": "b"}}},
			expectedIndex: 0,
			expectedField: "p",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := fm.Records(tc.rows)
			require.Error(t, err)
			assert.Nil(t, records)

			var rowErr *RowError
			require.True(t, errors.As(err, &rowErr))
			assert.Equal(t, tc.expectedIndex, rowErr.Index)
			assert.Equal(t, tc.expectedField, rowErr.Field)
		})
	}
}

func TestRecords_MissingIDWrapsSentinel(t *testing.T) {
	fm, _ := Preset("menu")
	_, err := fm.Records([]map[string]any{{"menuName": "orphan"}})
	assert.ErrorIs(t, err, ErrMissingField)
}
