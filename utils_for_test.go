package backprop

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// Check that a function panics.
// https://stackoverflow.com/a/31596110
func assertPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("The code did not panic")
		}
	}()
	f()
}

// Check that a function panics with an error matching target.
func assertPanicIs(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Errorf("Panic value %v; expected %v", r, target)
		}
	}()
	f()
}

// Test whether two values are equal up to a relative tolerance.
func almostEqual(a, b float64) bool {
	const tol = 1.0e-06
	if b == 0 {
		return math.Abs(a) < tol
	}
	return math.Abs(a-b)/math.Abs(b) < tol
}

// Test whether two gradients agree to the absolute tolerance used for
// numeric gradient checks.
func gradClose(a, b float64) bool {
	const tol = 1.0e-03
	return scalar.EqualWithinAbs(a, b, tol)
}
