package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/treegridgo/internal/mapping"
	"github.com/specialistvlad/treegridgo/internal/source"
	"github.com/specialistvlad/treegridgo/internal/source/file"
	"github.com/specialistvlad/treegridgo/internal/source/neo4jsource"
)

// OpenSource creates the record source selected by the config. The returned
// close function must be called once the source is no longer needed.
func OpenSource(cfg *Config) (source.Source, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	if !cfg.HasSource() {
		// Only valid for serve: the API receives its records in requests.
		return source.Static(nil), noop, nil
	}

	if cfg.Neo4j.URI != "" {
		src, err := neo4jsource.New(cfg.Neo4j)
		if err != nil {
			return nil, nil, err
		}
		return src, src.Close, nil
	}

	fields, err := mapping.Preset(cfg.Preset)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve preset: %w", err)
	}
	return file.New(fields, cfg.SourcePaths...), noop, nil
}
