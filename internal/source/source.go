// Package source defines where hierarchical records come from. A Source hands
// back records already mapped to tree.Record; field renaming and decoding stay
// inside the implementation.
package source

import (
	"context"

	"github.com/specialistvlad/treegridgo/internal/tree"
)

// Source loads the records for one build.
type Source interface {
	Records(ctx context.Context) ([]tree.Record, error)
}

// Static is a Source over records already in memory.
type Static []tree.Record

// Records returns a copy of the static records.
func (s Static) Records(ctx context.Context) ([]tree.Record, error) {
	return append([]tree.Record(nil), s...), nil
}
