package mapping

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/specialistvlad/treegridgo/internal/tree"
)

// ErrMissingField is wrapped by RowError when a required field is absent.
var ErrMissingField = errors.New("required field missing")

// FieldMap names the row fields that carry the hierarchy attributes.
type FieldMap struct {
	ID       string
	ParentID string
	Label    string
	// Order is optional; an empty name disables ordering.
	Order string
	// RootParents lists parent values, besides empty and null, that mean
	// "no parent". Several back-office tables use "0" for this.
	RootParents []string
}

// Built-in field maps, keyed by preset name.
var presets = map[string]FieldMap{
	"generic": {
		ID: "id", ParentID: "parentId", Label: "label", Order: "order",
	},
	"department": {
		ID: "deptId", ParentID: "parentDeptId", Label: "deptName", Order: "sortOrder",
		RootParents: []string{"0"},
	},
	"menu": {
		ID: "menuId", ParentID: "upperMenuId", Label: "menuName", Order: "menuOrder",
		RootParents: []string{"0"},
	},
	"rolemenu": {
		ID: "menuId", ParentID: "upperMenuId", Label: "menuName", Order: "menuOrder",
		RootParents: []string{"0"},
	},
}

// DefaultPreset is used when no preset is configured.
const DefaultPreset = "generic"

// Preset returns the built-in field map with the given name. An empty name
// selects DefaultPreset.
func Preset(name string) (FieldMap, error) {
	if name == "" {
		name = DefaultPreset
	}
	fm, ok := presets[name]
	if !ok {
		return FieldMap{}, fmt.Errorf("unknown preset %q: must be one of %v", name, PresetNames())
	}
	return fm, nil
}

// PresetNames returns the built-in preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RowError reports a row that could not be mapped.
type RowError struct {
	Index int
	Field string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, field %q: %v", e.Index, e.Field, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Records maps every row. The whole row becomes the record payload.
func (m FieldMap) Records(rows []map[string]any) ([]tree.Record, error) {
	records := make([]tree.Record, 0, len(rows))
	for i, row := range rows {
		r, err := m.record(row)
		if err != nil {
			var rowErr *RowError
			if errors.As(err, &rowErr) {
				rowErr.Index = i
			}
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// Record maps a single row.
func (m FieldMap) Record(row map[string]any) (tree.Record, error) {
	return m.record(row)
}

func (m FieldMap) record(row map[string]any) (tree.Record, error) {
	raw, ok := row[m.ID]
	if !ok || raw == nil {
		return tree.Record{}, &RowError{Field: m.ID, Err: ErrMissingField}
	}
	id, err := scalarString(raw)
	if err != nil {
		return tree.Record{}, &RowError{Field: m.ID, Err: err}
	}

	r := tree.Record{ID: id, Payload: row}

	if raw := row[m.ParentID]; raw != nil {
		parent, err := scalarString(raw)
		if err != nil {
			return tree.Record{}, &RowError{Field: m.ParentID, Err: err}
		}
		if !slices.Contains(m.RootParents, parent) {
			r.ParentID = parent
		}
	}

	if raw := row[m.Label]; raw != nil {
		r.Label = fmt.Sprint(raw)
	}

	if m.Order != "" {
		if raw := row[m.Order]; raw != nil {
			order, err := scalarInt(raw)
			if err != nil {
				return tree.Record{}, &RowError{Field: m.Order, Err: err}
			}
			r.Order = &order
		}
	}

	return r, nil
}
