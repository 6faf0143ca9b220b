// Package tables provides the default adversary cost table and party threshold table, and loads overrides from JSON.
package tables

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/encounter-diversifier/internal/schemas"
	"github.com/jonathan/encounter-diversifier/internal/types"
	schemadocs "github.com/jonathan/encounter-diversifier/schemas"
)

// LoadCostTable reads a JSON object of identifier -> cost from path,
// validates it against the cost table schema and decodes it.
func LoadCostTable(path string) (types.CostTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cost table %s: %w", path, err)
	}
	return ParseCostTable(data)
}

// ParseCostTable validates and decodes cost table JSON
func ParseCostTable(data []byte) (types.CostTable, error) {
	if err := schemas.ValidateDocument(schemadocs.CostTable, data); err != nil {
		return nil, fmt.Errorf("invalid cost table: %w", err)
	}

	var costs types.CostTable
	if err := json.Unmarshal(data, &costs); err != nil {
		return nil, fmt.Errorf("failed to parse cost table JSON: %w", err)
	}
	if err := costs.Validate(); err != nil {
		return nil, err
	}
	return costs, nil
}

// LoadThresholdTable reads a 20x4 JSON array of per-level thresholds from path
func LoadThresholdTable(path string) (*types.ThresholdTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read threshold table %s: %w", path, err)
	}
	return ParseThresholdTable(data)
}

// ParseThresholdTable validates and decodes threshold table JSON
func ParseThresholdTable(data []byte) (*types.ThresholdTable, error) {
	if err := schemas.ValidateDocument(schemadocs.ThresholdTable, data); err != nil {
		return nil, fmt.Errorf("invalid threshold table: %w", err)
	}

	var table types.ThresholdTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse threshold table JSON: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}
