package scenario

import (
	"encoding/json"
	"fmt"
	"time"
)

// ExecutionResult is the record of one scenario run
type ExecutionResult struct {
	ScenarioID   string        `json:"scenario_id"`
	ScenarioName string        `json:"scenario_name"`
	Success      bool          `json:"success"`
	StartedAt    time.Time     `json:"started_at"`
	Duration     time.Duration `json:"duration"`
	Steps        []StepResult  `json:"steps"`
	Error        string        `json:"error,omitempty"`
	Final        *Observation  `json:"final,omitempty"`
}

// StepResult is the record of one step: what was seen and what was checked
type StepResult struct {
	Index       int               `json:"index"`
	Name        string            `json:"name"`
	Action      ActionType        `json:"action"`
	Success     bool              `json:"success"`
	Error       string            `json:"error,omitempty"`
	Observation *Observation      `json:"observation,omitempty"`
	Assertions  []AssertionResult `json:"assertions,omitempty"`
}

// Err is nil for a passing run. Otherwise it names the first failure.
func (r *ExecutionResult) Err() error {
	if r.Success {
		return nil
	}
	for _, step := range r.Steps {
		if step.Success {
			continue
		}
		if step.Error != "" {
			return fmt.Errorf("%w: %s: step %d %q: %s", ErrExecutionFailed, r.ScenarioID, step.Index, step.Name, step.Error)
		}
		for _, a := range step.Assertions {
			if !a.Passed {
				return fmt.Errorf("%w: %s: step %d %q: %s %s: %s", ErrExecutionFailed, r.ScenarioID, step.Index, step.Name, a.Type, a.Path, a.Error)
			}
		}
	}
	if r.Error != "" {
		return fmt.Errorf("%w: %s: %s", ErrExecutionFailed, r.ScenarioID, r.Error)
	}
	return fmt.Errorf("%w: %s", ErrExecutionFailed, r.ScenarioID)
}

// Tally counts steps and assertions run and passed
func (r *ExecutionResult) Tally() (steps, passedSteps, checks, passedChecks int) {
	for _, step := range r.Steps {
		steps++
		if step.Success {
			passedSteps++
		}
		for _, a := range step.Assertions {
			checks++
			if a.Passed {
				passedChecks++
			}
		}
	}
	return steps, passedSteps, checks, passedChecks
}

// JSON renders the result for a failing run's report
func (r *ExecutionResult) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
