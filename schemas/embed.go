// Package schemas embeds the JSON Schema documents for cost tables, threshold tables and encounter plans.
package schemas

import "embed"

// Files holds every *.schema.json document in this directory
//
//go:embed *.schema.json
var Files embed.FS

const (
	CostTable      = "cost_table.schema.json"
	ThresholdTable = "threshold_table.schema.json"
	EncounterPlan  = "encounter_plan.schema.json"
)
