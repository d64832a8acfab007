// Package leaktest fails tests that leave goroutines running, such as a
// worker pool or scheduler that was not stopped.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultTimeout bounds how long Check waits for goroutines to exit
const DefaultTimeout = 2 * time.Second

const pollInterval = 10 * time.Millisecond

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Leaked returns how many goroutines exceed the baseline once they had
// up to timeout to exit
func (g *GoroutineChecker) Leaked(timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		leaked := runtime.NumGoroutine() - g.before
		if leaked <= 0 || time.Now().After(deadline) {
			return max(0, leaked)
		}
		time.Sleep(pollInterval)
	}
}

// Check fails the test when more than tolerance goroutines outlived the baseline
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	if leaked := g.Leaked(DefaultTimeout); leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, leaked=%d (tolerance=%d)", g.before, leaked, tolerance)
	}
}

// VerifyNone checks for leaks when the test finishes. Call it first so
// its cleanup runs after the test's own cleanups.
func VerifyNone(t testing.TB) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	t.Cleanup(func() { checker.Check(0) })
}

// CheckNoGoroutineLeak runs fn and fails if it left goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
