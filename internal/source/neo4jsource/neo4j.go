// Package neo4jsource loads hierarchical records from a Neo4j graph where
// each node points at its parent through a HAS_PARENT relationship.
package neo4jsource

import (
	"context"
	"fmt"
	"regexp"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/specialistvlad/treegridgo/internal/ctxlog"
	"github.com/specialistvlad/treegridgo/internal/mapping"
	"github.com/specialistvlad/treegridgo/internal/tree"
)

// Config holds the connection and schema settings.
type Config struct {
	URI      string
	Username string
	Password string
	Database string
	// Label is the node label to read, e.g. "Menu" or "Department".
	Label string
	// LabelProperty is the node property shown as the record label.
	LabelProperty string
	// OrderProperty is the node property used as the sibling order.
	OrderProperty string
}

// Defaults for optional Config fields.
const (
	DefaultLabel         = "Task"
	DefaultLabelProperty = "title"
	DefaultOrderProperty = "order"
)

var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// rowFields maps the columns returned by the query.
var rowFields = mapping.FieldMap{ID: "id", ParentID: "parent_id", Label: "label", Order: "order"}

// Source reads records through a neo4j driver.
type Source struct {
	driver neo4j.DriverWithContext
	cfg    Config
	query  string
}

// New validates the config and creates the driver. The driver connects
// lazily; call Close when done.
func New(cfg Config) (*Source, error) {
	if cfg.Label == "" {
		cfg.Label = DefaultLabel
	}
	if cfg.LabelProperty == "" {
		cfg.LabelProperty = DefaultLabelProperty
	}
	if cfg.OrderProperty == "" {
		cfg.OrderProperty = DefaultOrderProperty
	}
	query, err := buildQuery(cfg)
	if err != nil {
		return nil, err
	}

	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}
	return &Source{driver: driver, cfg: cfg, query: query}, nil
}

// buildQuery renders the read query. Labels and property names cannot be
// query parameters, so they are validated as plain identifiers instead.
func buildQuery(cfg Config) (string, error) {
	for name, value := range map[string]string{
		"label":          cfg.Label,
		"label property": cfg.LabelProperty,
		"order property": cfg.OrderProperty,
	} {
		if !identifierRegex.MatchString(value) {
			return "", fmt.Errorf("invalid neo4j %s %q", name, value)
		}
	}
	return fmt.Sprintf(
		"MATCH (n:%[1]s) "+
			"OPTIONAL MATCH (n)-[:HAS_PARENT]->(p:%[1]s) "+
			"RETURN n.id AS id, p.id AS parent_id, n.%[2]s AS label, n.%[3]s AS order, properties(n) AS props "+
			"ORDER BY elementId(n)",
		cfg.Label, cfg.LabelProperty, cfg.OrderProperty,
	), nil
}

// Records runs the read query in a read transaction.
func (s *Source) Records(ctx context.Context) ([]tree.Record, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Neo4j source started.", "label", s.cfg.Label, "database", s.cfg.Database)

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: s.cfg.Database,
	})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, s.query, nil)
		if err != nil {
			return nil, err
		}

		var records []tree.Record
		for res.Next(ctx) {
			r, err := recordFromRow(res.Record().AsMap())
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", len(records), err)
			}
			records = append(records, r)
		}
		if err := res.Err(); err != nil {
			return nil, err
		}
		return records, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s nodes from neo4j: %w", s.cfg.Label, err)
	}

	records, _ := result.([]tree.Record)
	logger.Debug("Neo4j records loaded.", "count", len(records))
	return records, nil
}

// Close releases the driver.
func (s *Source) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// recordFromRow converts one query row. The node's properties become the
// payload.
func recordFromRow(row map[string]any) (tree.Record, error) {
	r, err := rowFields.Record(row)
	if err != nil {
		return tree.Record{}, err
	}
	r.Payload = row["props"]
	return r, nil
}
