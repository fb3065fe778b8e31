package backprop

import (
	"fmt"
	"math"
)

// A Gate is a differentiable operation on Units. Forward computes a fresh
// output Unit and remembers its inputs; Backward chains the output's gradient
// into the inputs' gradients using the values seen in Forward.
//
// A gate remembers only its most recent Forward call.
type Gate interface {
	Forward(in ...*Unit) *Unit
	Backward()
}

// MultiplyGate computes u0 * u1.
type MultiplyGate struct {
	u0, u1 *Unit
	utop   *Unit
}

// Forward multiply.
func (g *MultiplyGate) Forward(in ...*Unit) *Unit {
	checkArity("multiply", in, 2)
	g.u0, g.u1 = in[0], in[1]
	g.utop = NewUnit(g.u0.Value*g.u1.Value, 0.0)
	return g.utop
}

// Backward pass of multiply. Each input's local gradient is the other input.
func (g *MultiplyGate) Backward() {
	if g.utop == nil {
		panic(fmt.Errorf("%w: multiply gate", ErrNoForward))
	}
	g.u0.Grad += g.u1.Value * g.utop.Grad
	g.u1.Grad += g.u0.Value * g.utop.Grad
}

// AddGate computes u0 + u1.
type AddGate struct {
	u0, u1 *Unit
	utop   *Unit
}

// Forward add.
func (g *AddGate) Forward(in ...*Unit) *Unit {
	checkArity("add", in, 2)
	g.u0, g.u1 = in[0], in[1]
	g.utop = NewUnit(g.u0.Value+g.u1.Value, 0.0)
	return g.utop
}

// Backward pass of add. The local gradient is 1 for both inputs.
func (g *AddGate) Backward() {
	if g.utop == nil {
		panic(fmt.Errorf("%w: add gate", ErrNoForward))
	}
	g.u0.Grad += 1.0 * g.utop.Grad
	g.u1.Grad += 1.0 * g.utop.Grad
}

// SigmoidGate computes the logistic function of its single input.
type SigmoidGate struct {
	u0   *Unit
	utop *Unit
}

// Forward sigmoid.
func (g *SigmoidGate) Forward(in ...*Unit) *Unit {
	checkArity("sigmoid", in, 1)
	g.u0 = in[0]
	g.utop = NewUnit(Sigmoid(g.u0.Value), 0.0)
	return g.utop
}

// Backward pass of sigmoid. The activation is recomputed from the input,
// which can't change between Forward and Backward.
func (g *SigmoidGate) Backward() {
	if g.utop == nil {
		panic(fmt.Errorf("%w: sigmoid gate", ErrNoForward))
	}
	s := Sigmoid(g.u0.Value)
	g.u0.Grad += (s * (1 - s)) * g.utop.Grad
}

// Sigmoid is the logistic function 1/(1+exp(-x)). It saturates to 0 and 1
// for large negative and positive x instead of overflowing.
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1.0 / (1.0 + math.Exp(-x))
	}
	z := math.Exp(x)
	return z / (1.0 + z)
}

func checkArity(name string, in []*Unit, want int) {
	if len(in) != want {
		panic(fmt.Errorf("%w: %s gate takes %d, got %d", ErrArity, name, want, len(in)))
	}
}
