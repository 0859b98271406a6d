// Package render writes forests, records and parent options in the output
// formats supported by the CLI.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	lgtree "github.com/charmbracelet/lipgloss/tree"
	"github.com/specialistvlad/treegridgo/internal/tree"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML:
		return f, nil
	case "":
		return Text, nil
	default:
		return "", fmt.Errorf("invalid output format %q: must be 'text', 'json' or 'yaml'", s)
	}
}

// Forest writes a forest. The text format draws it as a tree with one line
// per node.
func Forest(w io.Writer, f tree.Forest, format Format) error {
	if format != Text {
		return encode(w, f, format)
	}
	if len(f) == 0 {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	root := lgtree.New()
	for _, n := range f {
		root.Child(textTree(n))
	}
	_, err := fmt.Fprintln(w, root.String())
	return err
}

// textTree converts a node and its subtree into a lipgloss tree. Leaves are
// plain strings.
func textTree(n *tree.Node) any {
	label := nodeLabel(n)
	if n.IsLeaf() {
		return label
	}
	t := lgtree.Root(label)
	for _, child := range n.Children {
		t.Child(textTree(child))
	}
	return t
}

func nodeLabel(n *tree.Node) string {
	if n.Label == "" || n.Label == n.ID {
		return n.ID
	}
	return fmt.Sprintf("%s [%s]", n.Label, n.ID)
}

// Records writes flat records. The text format prints one tab separated row
// per record: id, parent id, order, label.
func Records(w io.Writer, records []tree.Record, format Format) error {
	if format != Text {
		return encode(w, records, format)
	}
	for _, r := range records {
		order := "-"
		if r.Order != nil {
			order = fmt.Sprint(*r.Order)
		}
		parent := r.ParentID
		if parent == "" {
			parent = "-"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, parent, order, r.Label); err != nil {
			return err
		}
	}
	return nil
}

// Options writes parent options. The text format indents labels by depth.
func Options(w io.Writer, opts []tree.ParentOption, format Format) error {
	if format != Text {
		return encode(w, opts, format)
	}
	for _, o := range opts {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", o.ID, o.Indented("  ")); err != nil {
			return err
		}
	}
	return nil
}

func encode(w io.Writer, v any, format Format) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
