// Package pipeline composes the budget planner and lineup selector into an encounter plan.
package pipeline

import "fmt"

// Error represents an error that occurs during a Diversify run
type Error struct {
	Step    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Step, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Step, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
