// Package pipeline composes the budget planner and lineup selector into an encounter plan.
package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/jonathan/encounter-diversifier/internal/selection"
	"github.com/jonathan/encounter-diversifier/internal/types"
)

// Defaults for Options
const (
	DefaultEncounterCount = 7
	DefaultMean           = types.Moderate
	DefaultStddevFraction = 0.6
	DefaultFillRatio      = 0.85
	DefaultMaxLineups     = 3
	DefaultWorkers        = 1
)

// Options holds configuration for one Diversify run
type Options struct {
	PartyLevels      []int            `validate:"required,min=1,dive,min=1,max=20"`
	EncounterCount   int              // <= 0 yields a plan with no buckets
	MeanDifficulty   types.Difficulty `validate:"required"`
	StddevFraction   float64          `validate:"gte=0"`
	FillRatio        float64          `validate:"gte=0,lte=1"`
	MaxLineups       int              `validate:"gte=0"` // selection.Unbounded keeps every distinct lineup
	ClipToThresholds bool
	CostTable        types.CostTable       // nil uses tables.SRDCostTable
	Thresholds       *types.ThresholdTable // nil uses tables.DefaultThresholds
	Seed             *int64                // nil seeds from the clock
	Score            selection.ScoreFunc   // nil uses selection.DiversityScore
	Workers          int                   `validate:"gte=0"` // 0 runs one worker per budget
	Logger           *zerolog.Logger       // nil discards log events
	OnProgress       ProgressCallback
}

// DefaultOptions returns Options for a party with every documented default applied
func DefaultOptions(levels ...int) Options {
	return Options{
		PartyLevels:    levels,
		EncounterCount: DefaultEncounterCount,
		MeanDifficulty: DefaultMean,
		StddevFraction: DefaultStddevFraction,
		FillRatio:      DefaultFillRatio,
		MaxLineups:     DefaultMaxLineups,
		Workers:        DefaultWorkers,
	}
}

var validate = validator.New()

// Validate checks the struct tags and the difficulty label. Every failure
// wraps types.ErrInvalidArgument.
func (o *Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, describe(fe))
			}
			return fmt.Errorf("%w: %s", types.ErrInvalidArgument, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", types.ErrInvalidArgument, err)
	}
	if _, err := o.MeanDifficulty.Index(); err != nil {
		return err
	}
	if o.CostTable != nil {
		if err := o.CostTable.Validate(); err != nil {
			return err
		}
	}
	if o.Thresholds != nil {
		if err := o.Thresholds.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s, got %v", field, fe.Param(), fe.Value())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s, got %v", field, fe.Param(), fe.Value())
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}
