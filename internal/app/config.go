package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/treegridgo/internal/mapping"
	"github.com/specialistvlad/treegridgo/internal/render"
	"github.com/specialistvlad/treegridgo/internal/source/neo4jsource"
	"github.com/specialistvlad/treegridgo/internal/tree"
)

// Actions understood by App.Run.
const (
	ActionTree    = "tree"
	ActionFlatten = "flatten"
	ActionFind    = "find"
	ActionOptions = "options"
	ActionServe   = "serve"
)

// Actions lists every valid action.
var Actions = []string{ActionTree, ActionFlatten, ActionFind, ActionOptions, ActionServe}

// DefaultForestName is the name a served source forest is stored under.
const DefaultForestName = "default"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// SourcePaths are record files or directories. Ignored when Neo4j.URI is set.
	SourcePaths []string
	Neo4j       neo4jsource.Config
	// Preset names the field map used for JSON and YAML rows.
	Preset       string
	OrphanPolicy string

	Action string
	// TargetID is the node looked up by "find" and excluded by "options".
	TargetID     string
	OutputFormat string
	ListenAddr   string
	// ForestName is the name the serve action stores the source forest under.
	ForestName string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

// NewConfig validates cfg and returns a copy with defaults applied.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Action == "" {
		cfg.Action = ActionTree
	}
	if !slices.Contains(Actions, cfg.Action) {
		return nil, fmt.Errorf("invalid action %q: must be one of %v", cfg.Action, Actions)
	}

	if len(cfg.SourcePaths) > 0 && cfg.Neo4j.URI != "" {
		return nil, errors.New("records paths and a neo4j URI are mutually exclusive")
	}
	if cfg.Action == ActionServe {
		if cfg.ListenAddr == "" {
			return nil, errors.New("ListenAddr is required for the serve action")
		}
		if cfg.ForestName == "" {
			cfg.ForestName = DefaultForestName
		}
	} else if !cfg.HasSource() {
		return nil, errors.New("a records path or a neo4j URI is required")
	}

	if cfg.Action == ActionFind && cfg.TargetID == "" {
		return nil, errors.New("the find action requires a target id")
	}

	if _, err := mapping.Preset(cfg.Preset); err != nil {
		return nil, err
	}
	policy, err := tree.ParseOrphanPolicy(cfg.OrphanPolicy)
	if err != nil {
		return nil, err
	}
	cfg.OrphanPolicy = string(policy)

	format, err := render.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return nil, err
	}
	cfg.OutputFormat = string(format)

	return &cfg, nil
}

// HasSource reports whether a records source is configured.
func (c *Config) HasSource() bool {
	return len(c.SourcePaths) > 0 || c.Neo4j.URI != ""
}
