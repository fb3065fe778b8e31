// Package backprop implements a small reverse-mode differentiation engine
// over scalar values, and a margin-based linear classifier trained with it.
//
// Graphs are wired by hand from gates. Each gate computes its output in
// Forward and chains the output gradient back into its inputs in Backward.
// Gradients accumulate, so they need to be zeroed between passes.
package backprop

// A Unit is a wire in the circuit: a value computed in the forward pass and
// the derivative of the circuit output with respect to it, computed in the
// backward pass.
type Unit struct {
	Value float64
	Grad  float64
}

// NewUnit creates a new Unit.
func NewUnit(value, grad float64) *Unit {
	return &Unit{Value: value, Grad: grad}
}

// ZeroGrad zeros out the unit's gradient
func (u *Unit) ZeroGrad() {
	u.Grad = 0.0
}
