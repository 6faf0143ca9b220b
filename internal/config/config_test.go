package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/encounter-diversifier/internal/pipeline"
	"github.com/jonathan/encounter-diversifier/internal/selection"
	"github.com/jonathan/encounter-diversifier/internal/types"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64     { return &v }

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"party": [3, 3, 4],
		"encounters": 5,
		"mean": "hard",
		"stddev": 0.4,
		"fill_ratio": 0,
		"max_lineups": 2,
		"clip": true,
		"seed": 42,
		"score": "streak-penalty",
		"workers": 2,
		"verbose": true
	}`

	cfg, err := LoadConfig(writeTemp(t, "config.json", content))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []int{3, 3, 4}, cfg.Party)
	assert.Equal(t, 5, *cfg.Encounters)
	assert.Equal(t, "hard", cfg.Mean)
	assert.InDelta(t, 0.4, *cfg.Stddev, 1e-9)
	require.NotNil(t, cfg.FillRatio, "explicit zero must survive decoding")
	assert.Zero(t, *cfg.FillRatio)
	assert.Equal(t, 2, *cfg.MaxLineups)
	assert.True(t, cfg.Clip)
	assert.Equal(t, int64(42), *cfg.Seed)
	assert.Equal(t, "streak-penalty", cfg.Score)
	assert.Equal(t, 2, *cfg.Workers)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeTemp(t, "config.json", `{ invalid json }`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		contain string
	}{
		{name: "level too high", cfg: Config{Party: []int{1, 21}}, contain: "Party[1]"},
		{name: "negative stddev", cfg: Config{Stddev: floatPtr(-0.5)}, contain: "Stddev"},
		{name: "fill ratio above one", cfg: Config{FillRatio: floatPtr(1.5)}, contain: "FillRatio"},
		{name: "negative cap", cfg: Config{MaxLineups: intPtr(-1)}, contain: "MaxLineups"},
		{name: "negative workers", cfg: Config{Workers: intPtr(-3)}, contain: "Workers"},
		{name: "unknown mean", cfg: Config{Mean: "trivial"}, contain: "'mean'"},
		{name: "unknown score", cfg: Config{Score: "random"}, contain: "'score'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contain)
			assert.True(t, errors.Is(err, types.ErrInvalidArgument))
		})
	}
}

func TestValidate_MissingTableFiles(t *testing.T) {
	cfg := &Config{CostTable: "/nonexistent/costs.json"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cost table file not found")

	cfg = &Config{ThresholdTable: "/nonexistent/thresholds.json"}
	err = cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "threshold table file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Party:      []int{1, 20},
		Mean:       "Deadly",
		FillRatio:  floatPtr(1),
		MaxLineups: intPtr(0),
		Score:      "diversity",
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Party:      []int{5, 5},
		Mean:       "moderate",
		Encounters: intPtr(9),
		FillRatio:  floatPtr(0.7),
		MaxLineups: intPtr(4),
		Seed:       int64Ptr(7),
		CostTable:  "default-costs.json",
		Workers:    intPtr(3),
	}

	partial := Config{
		Party:     []int{2},
		FillRatio: floatPtr(0),
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved, including an explicit zero
	assert.Equal(t, []int{2}, merged.Party)
	require.NotNil(t, merged.FillRatio)
	assert.Zero(t, *merged.FillRatio)

	// Default values should fill in unset fields
	assert.Equal(t, "moderate", merged.Mean)
	assert.Equal(t, 9, *merged.Encounters)
	assert.Equal(t, 4, *merged.MaxLineups)
	assert.Equal(t, int64(7), *merged.Seed)
	assert.Equal(t, "default-costs.json", merged.CostTable)
	assert.Equal(t, 3, *merged.Workers)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Party: []int{4},
		Mean:  "high",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, []int{4}, merged.Party)
	assert.Equal(t, "high", merged.Mean)
	assert.Nil(t, merged.Seed)
}

func TestOptions_Defaults(t *testing.T) {
	cfg := &Config{Party: []int{1, 1, 1}}
	opts, err := cfg.Options()
	require.NoError(t, err)

	want := pipeline.DefaultOptions(1, 1, 1)
	assert.Equal(t, want.EncounterCount, opts.EncounterCount)
	assert.Equal(t, want.MeanDifficulty, opts.MeanDifficulty)
	assert.Equal(t, want.FillRatio, opts.FillRatio)
	assert.Equal(t, want.MaxLineups, opts.MaxLineups)
	assert.Nil(t, opts.CostTable)
	assert.Nil(t, opts.Thresholds)
	assert.NotNil(t, opts.Score)
	assert.NoError(t, opts.Validate())
}

func TestOptions_Overrides(t *testing.T) {
	costs := writeTemp(t, "costs.json", `{"bandit": 25, "guard": 25, "thug": 100}`)
	rows := make([]string, types.MaxLevel)
	for i := range rows {
		rows[i] = "[10, 20, 30, 40]"
	}
	thresholds := writeTemp(t, "thresholds.json", "["+strings.Join(rows, ",")+"]")

	cfg := &Config{
		Party:          []int{2, 2},
		Encounters:     intPtr(4),
		Mean:           "easy",
		Stddev:         floatPtr(0),
		FillRatio:      floatPtr(0.5),
		MaxLineups:     intPtr(0),
		Clip:           true,
		Seed:           int64Ptr(11),
		Score:          selection.ScoreStreakPenalty,
		CostTable:      costs,
		ThresholdTable: thresholds,
		Workers:        intPtr(2),
	}
	require.NoError(t, cfg.Validate())

	opts, err := cfg.Options()
	require.NoError(t, err)

	assert.Equal(t, 4, opts.EncounterCount)
	assert.Equal(t, types.Low, opts.MeanDifficulty)
	assert.Zero(t, opts.StddevFraction)
	assert.InDelta(t, 0.5, opts.FillRatio, 1e-9)
	assert.Equal(t, selection.Unbounded, opts.MaxLineups)
	assert.True(t, opts.ClipToThresholds)
	assert.Equal(t, int64(11), *opts.Seed)
	assert.Equal(t, 2, opts.Workers)
	assert.Equal(t, types.CostTable{"bandit": 25, "guard": 25, "thug": 100}, opts.CostTable)
	require.NotNil(t, opts.Thresholds)
	assert.Equal(t, 40, opts.Thresholds[0][3])
	assert.Equal(t, selection.Score{1, -1, -1, -1}, opts.Score(types.Lineup{"bandit"}))
}

func TestOptions_BadTableFile(t *testing.T) {
	cfg := &Config{Party: []int{1}, CostTable: writeTemp(t, "costs.json", `{"goblin": -5}`)}
	_, err := cfg.Options()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cost table")
}

func TestOptions_ZeroWorkersMeansOnePerBudget(t *testing.T) {
	cfg := Config{Party: []int{3}, Workers: intPtr(0)}
	merged := cfg.MergeWithDefaults(Config{Workers: intPtr(4)})
	require.NotNil(t, merged.Workers)
	assert.Zero(t, *merged.Workers, "an explicit zero must not be replaced by a default")

	opts, err := merged.Options()
	require.NoError(t, err)
	assert.Zero(t, opts.Workers)

	opts, err = (&Config{Party: []int{3}}).Options()
	require.NoError(t, err)
	assert.Equal(t, pipeline.DefaultWorkers, opts.Workers)
}
