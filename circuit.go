package backprop

import "fmt"

// A Circuit computes the score a*x + b*y + c from five Units, and can
// back-propagate a gradient on the score into all of them.
type Circuit struct {
	mulg0, mulg1 MultiplyGate
	addg0, addg1 AddGate
	// Intermediate units from the last forward pass.
	ax, by, axpby, axpbypc *Unit
}

// NewCircuit creates a new Circuit.
func NewCircuit() *Circuit {
	return new(Circuit)
}

// Forward pass through the circuit. Returns the score unit.
func (c *Circuit) Forward(x, y, a, b, cc *Unit) *Unit {
	c.ax = c.mulg0.Forward(a, x)
	c.by = c.mulg1.Forward(b, y)
	c.axpby = c.addg0.Forward(c.ax, c.by)
	c.axpbypc = c.addg1.Forward(c.axpby, cc)
	return c.axpbypc
}

// Backward pass through the circuit, seeded with gradTop on the score. Gates
// run in reverse of the forward order so each output gradient is final
// before it is used. Gradients accumulate into the five inputs; the
// intermediate units are private and restart from zero on every pass.
func (c *Circuit) Backward(gradTop float64) {
	if c.axpbypc == nil {
		panic(fmt.Errorf("%w: circuit", ErrNoForward))
	}
	c.ax.ZeroGrad()
	c.by.ZeroGrad()
	c.axpby.ZeroGrad()
	c.axpbypc.Grad = gradTop
	c.addg1.Backward() // axpby, c
	c.addg0.Backward() // ax, by
	c.mulg1.Backward() // b, y
	c.mulg0.Backward() // a, x
}

// A Neuron is a single sigmoid neuron, sigmoid(a*x + b*y + c), built from a
// Circuit feeding a SigmoidGate.
type Neuron struct {
	circuit Circuit
	sg      SigmoidGate
	score   *Unit
	out     *Unit
}

// Forward pass through the neuron. Returns the activation unit.
func (n *Neuron) Forward(x, y, a, b, c *Unit) *Unit {
	n.score = n.circuit.Forward(x, y, a, b, c)
	n.out = n.sg.Forward(n.score)
	return n.out
}

// Score returns the pre-activation unit from the last forward pass.
func (n *Neuron) Score() *Unit {
	return n.score
}

// Backward pass through the neuron, seeded with gradTop on the activation.
func (n *Neuron) Backward(gradTop float64) {
	if n.out == nil {
		panic(fmt.Errorf("%w: neuron", ErrNoForward))
	}
	n.out.Grad = gradTop
	// The score is internal, so its gradient comes only from the sigmoid.
	n.score.ZeroGrad()
	n.sg.Backward()
	n.circuit.Backward(n.score.Grad)
}
