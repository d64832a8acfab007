package scenario

import (
	"fmt"
	"strings"
)

// AssertionResult is the verdict on one assertion
type AssertionResult struct {
	Type     AssertionType `json:"type"`
	Path     string        `json:"path"`
	Expected any           `json:"expected,omitempty"`
	Actual   any           `json:"actual,omitempty"`
	Passed   bool          `json:"passed"`
	Reason   string        `json:"reason,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// Check evaluates the assertion against obs
func (a Assertion) Check(obs *Observation) AssertionResult {
	res := AssertionResult{Type: a.Type, Path: a.Path, Expected: a.Value, Reason: a.Reason}
	if a.Type == AssertBetween {
		res.Expected = fmt.Sprintf("[%v, %v]", a.Min, a.Max)
	}

	field, err := ParseField(a.Path)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	actual, ok := obs.Lookup(field)
	if !ok {
		res.Error = "not observed"
		return res
	}
	res.Actual = actual

	if err := a.verdict(actual); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Passed = true
	return res
}

func (a Assertion) verdict(actual any) error {
	switch a.Type {
	case AssertEquals:
		if !sameValue(actual, a.Value) {
			return fmt.Errorf("expected %v, got %v", a.Value, actual)
		}
	case AssertGreaterThan, AssertLessThan:
		got, ok1 := number(actual)
		want, ok2 := number(a.Value)
		if !ok1 || !ok2 {
			return fmt.Errorf("%s compares numbers, got %v and %v", a.Type, actual, a.Value)
		}
		if a.Type == AssertGreaterThan && got <= want {
			return fmt.Errorf("%v is not above %v", got, want)
		}
		if a.Type == AssertLessThan && got >= want {
			return fmt.Errorf("%v is not below %v", got, want)
		}
	case AssertBetween:
		got, ok := number(actual)
		lo, ok1 := number(a.Min)
		hi, ok2 := number(a.Max)
		if !ok || !ok1 || !ok2 {
			return fmt.Errorf("between compares numbers, got %v in [%v, %v]", actual, a.Min, a.Max)
		}
		if got < lo || got > hi {
			return fmt.Errorf("%v is outside [%v, %v]", got, lo, hi)
		}
	case AssertContains:
		got, ok1 := actual.(string)
		want, ok2 := a.Value.(string)
		if !ok1 || !ok2 {
			return fmt.Errorf("contains compares text, got %v and %v", actual, a.Value)
		}
		if !strings.Contains(strings.ToLower(got), strings.ToLower(want)) {
			return fmt.Errorf("%q does not mention %q", got, want)
		}
	case AssertEmpty:
		if !isZero(actual) {
			return fmt.Errorf("expected nothing, got %v", actual)
		}
	case AssertNotEmpty:
		if isZero(actual) {
			return fmt.Errorf("expected a value, got %v", actual)
		}
	case AssertTrue, AssertFalse:
		b, ok := actual.(bool)
		if !ok || b != (a.Type == AssertTrue) {
			return fmt.Errorf("expected %s, got %v", a.Type, actual)
		}
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
	return nil
}

// sameValue compares observed and scripted values. YAML numbers decode as
// int or float64, observed ones may be either.
func sameValue(actual, expected any) bool {
	if x, ok := number(actual); ok {
		y, ok := number(expected)
		return ok && x == y
	}
	return actual == expected
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// isZero treats "", 0 and false as empty: an empty slot reads as "" and a
// missing item as 0 held
func isZero(v any) bool {
	switch x := v.(type) {
	case string:
		return x == ""
	case bool:
		return !x
	default:
		n, ok := number(v)
		return !ok || n == 0
	}
}
