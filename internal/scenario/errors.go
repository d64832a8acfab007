package scenario

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidScenario  = errors.New("invalid scenario")
	ErrInvalidAction    = errors.New("invalid action")
	ErrMissingParameter = errors.New("missing required parameter")
	ErrInvalidParameter = errors.New("invalid parameter value")
	ErrUnknownField     = errors.New("unknown field")
	ErrExecutionFailed  = errors.New("scenario execution failed")
)

// ParamError is a malformed step parameter. It fails the step instead of
// being reported as the action's outcome.
type ParamError struct {
	Param string
	Err   error // ErrMissingParameter or ErrInvalidParameter
	Got   any
}

func (e *ParamError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("%s: %v", e.Param, e.Err)
	}
	return fmt.Sprintf("%s: %v: %v (%T)", e.Param, e.Err, e.Got, e.Got)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

func missingParam(name string) error {
	return &ParamError{Param: name, Err: ErrMissingParameter}
}

func invalidParam(name string, got any) error {
	return &ParamError{Param: name, Err: ErrInvalidParameter, Got: got}
}

// isScriptError separates a broken script from a rejected action
func isScriptError(err error) bool {
	var perr *ParamError
	return errors.As(err, &perr) || errors.Is(err, ErrInvalidAction)
}
