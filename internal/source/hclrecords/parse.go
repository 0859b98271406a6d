// Package hclrecords reads hierarchical records written as HCL blocks:
//
//	record "menu-users" {
//	  parent  = "menu-admin"
//	  label   = "Users"
//	  order   = 2
//	  payload = { path = "/admin/users" }
//	}
package hclrecords

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/treegridgo/internal/tree"
	"github.com/zclconf/go-cty/cty"
)

// recordBlock is the decoding target of a single `record` block.
type recordBlock struct {
	ID      string    `hcl:"id,label"`
	Parent  *string   `hcl:"parent,optional"`
	Label   string    `hcl:"label,optional"`
	Order   *int      `hcl:"order,optional"`
	Payload cty.Value `hcl:"payload,optional"`
}

// fileRoot decodes all top-level blocks of a records file.
type fileRoot struct {
	Records []*recordBlock `hcl:"record,block"`
}

// Parse decodes the records in src. filename is used in diagnostics only.
func Parse(filename string, src []byte) ([]tree.Record, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	records := make([]tree.Record, 0, len(root.Records))
	for _, block := range root.Records {
		payload, err := ctyToNative(block.Payload)
		if err != nil {
			return nil, fmt.Errorf("invalid payload for record %q in %s: %w", block.ID, filename, err)
		}
		r := tree.Record{
			ID:      block.ID,
			Label:   block.Label,
			Order:   block.Order,
			Payload: payload,
		}
		if block.Parent != nil {
			r.ParentID = *block.Parent
		}
		records = append(records, r)
	}
	return records, nil
}
