// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-explorer/pkg/types"
)

// decode parses a dataset document into raw records. JSON is the primary
// format; files ending in .yaml or .yml are parsed as YAML.
func decode(data []byte, name string) ([]map[string]any, error) {
	var raws []map[string]any

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raws); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	default:
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	}
	return raws, nil
}

// Load reads the dataset file at path and returns the normalized records.
// The load happens once per process; a failure here is terminal for the
// session and is surfaced to the caller, never retried.
func Load(path string) ([]types.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}

	raws, err := decode(data, path)
	if err != nil {
		return nil, err
	}
	return NormalizeAll(raws), nil
}
