package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Dreadlight_Go/internal/logger"
)

// Provider performs scenario actions against a running game
type Provider interface {
	SupportsAction(action ActionType) bool

	// Perform runs the step and observes the game afterwards. A returned
	// error means the step could not run; a rejected action is reported
	// through the observation.
	Perform(ctx context.Context, step Step) (*Observation, error)
}

// Engine executes scenarios against a provider
type Engine struct{}

// NewEngine creates a new scenario execution engine
func NewEngine() *Engine {
	return &Engine{}
}

// Execute runs every step of scenario in order, stopping at the first
// failed step. The returned error is only set when ctx ends the run.
func (e *Engine) Execute(ctx context.Context, scenario Scenario, provider Provider) (*ExecutionResult, error) {
	result := &ExecutionResult{
		ScenarioID:   scenario.ID,
		ScenarioName: scenario.Name,
		Success:      true,
		StartedAt:    time.Now(),
		Steps:        make([]StepResult, 0, len(scenario.Steps)),
	}
	log := logger.FromContext(ctx)

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			result.Success = false
			result.Error = err.Error()
			result.Duration = time.Since(result.StartedAt)
			return result, err
		}

		sr := e.runStep(ctx, i, step, provider)
		result.Steps = append(result.Steps, sr)
		if sr.Observation != nil {
			result.Final = sr.Observation
		}
		if !sr.Success {
			result.Success = false
			log.Warn(LogMsgStepFailed, "scenario_id", scenario.ID, "step", step.Name, "action", step.Action, "error", sr.Error)
			break
		}
	}

	result.Duration = time.Since(result.StartedAt)
	log.Info(LogMsgScenarioCompleted,
		"scenario_id", scenario.ID,
		"success", result.Success,
		"steps", len(result.Steps),
		"duration", result.Duration)
	return result, nil
}

func (e *Engine) runStep(ctx context.Context, index int, step Step, provider Provider) StepResult {
	sr := StepResult{Index: index, Name: step.Name, Action: step.Action, Success: true}

	if !provider.SupportsAction(step.Action) {
		sr.Success = false
		sr.Error = fmt.Errorf("%w: %s", ErrInvalidAction, step.Action).Error()
		return sr
	}

	obs, err := provider.Perform(ctx, step)
	if err != nil {
		sr.Success = false
		sr.Error = err.Error()
		return sr
	}
	sr.Observation = obs

	for _, a := range step.Assertions {
		verdict := a.Check(obs)
		sr.Assertions = append(sr.Assertions, verdict)
		if !verdict.Passed {
			sr.Success = false
		}
	}
	return sr
}
