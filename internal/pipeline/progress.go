// Package pipeline composes the budget planner and lineup selector into an encounter plan.
package pipeline

// Progress steps
const (
	StepThresholds = "thresholds"
	StepBudgets    = "budgets"
	StepBucket     = "bucket"
	StepDropped    = "dropped"
)

// ProgressEvent represents a progress update during a Diversify run
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs. Bucket events
// may arrive from several goroutines when Workers > 1.
type ProgressCallback func(event ProgressEvent)

func emitProgress(opts *Options, runID, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID,
			Content: content,
		})
	}
}
