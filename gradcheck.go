package backprop

import "gonum.org/v1/gonum/diff/fd"

// NumericStep is the finite difference step used by NumericGrad and
// NumericDerivative.
const NumericStep = 1.0e-04

var numericSettings = &fd.Settings{
	Formula: fd.Central,
	Step:    NumericStep,
}

// NumericGrad estimates the gradient of f at x by central differences. It is
// an independent check on the gradients written by Backward.
func NumericGrad(f func(x []float64) float64, x []float64) []float64 {
	return fd.Gradient(nil, f, x, numericSettings)
}

// NumericDerivative estimates f'(x) by central differences.
func NumericDerivative(f func(x float64) float64, x float64) float64 {
	return fd.Derivative(f, x, numericSettings)
}
