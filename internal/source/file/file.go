// Package file loads hierarchical records from JSON, YAML and HCL files.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/treegridgo/internal/ctxlog"
	"github.com/specialistvlad/treegridgo/internal/mapping"
	"github.com/specialistvlad/treegridgo/internal/source/hclrecords"
	"github.com/specialistvlad/treegridgo/internal/tree"
	"gopkg.in/yaml.v3"
)

// supportedExts lists the file extensions the source reads.
var supportedExts = map[string]struct{}{
	".json": {},
	".yaml": {},
	".yml":  {},
	".hcl":  {},
}

// Source reads every supported file found under its paths. JSON and YAML
// files hold a list of rows mapped through the FieldMap; HCL files use the
// `record` block format and bypass the FieldMap.
type Source struct {
	paths  []string
	fields mapping.FieldMap
}

// New creates a file source over files or directories.
func New(fields mapping.FieldMap, paths ...string) *Source {
	return &Source{paths: paths, fields: fields}
}

// Records loads and concatenates the records of all files in walk order.
func (s *Source) Records(ctx context.Context) ([]tree.Record, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("File source started.", "path_count", len(s.paths))

	files, err := findRecordFiles(s.paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no record files (.json, .yaml, .yml, .hcl) found in %v", s.paths)
	}
	logger.Debug("Discovered record files.", "count", len(files))

	var records []tree.Record
	for _, f := range files {
		fileRecords, err := s.readFile(f)
		if err != nil {
			return nil, err
		}
		logger.Debug("Record file loaded.", "file", f, "records", len(fileRecords))
		records = append(records, fileRecords...)
	}
	return records, nil
}

func (s *Source) readFile(path string) ([]tree.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file %s: %w", path, err)
	}

	var rows []map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hclrecords.Parse(path, data)
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&rows); err != nil {
			return nil, fmt.Errorf("failed to decode JSON file %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
		}
	}

	records, err := s.fields.Records(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to map rows of %s: %w", path, err)
	}
	return records, nil
}

// findRecordFiles walks all given paths and returns a flat list of all
// supported files found, without duplicates.
func findRecordFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, ok := supportedExts[strings.ToLower(filepath.Ext(p))]; !ok {
			return
		}
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}
		err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return allFiles, nil
}
