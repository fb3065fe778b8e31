package backprop

import "fmt"

// An SVM is a linear margin classifier scoring a*x + b*y + c. It learns one
// example at a time: a forward pass, a backward pass pulling the score toward
// the margin plus an L2 pull of a and b toward zero, then a parameter update.
type SVM struct {
	A, B, C *Unit
	// Regularization scales the pull of a and b toward zero. The bias c is
	// never regularized.
	Regularization float64
	Opt            Optimizer

	circuit *Circuit
	out     *Unit
}

// NewSVM creates a new SVM with parameters a=1, b=-2, c=-1, unit
// regularization, and plain ascent with DefaultStepSize.
func NewSVM() *SVM {
	s := &SVM{
		A:              NewUnit(1.0, 0.0),
		B:              NewUnit(-2.0, 0.0),
		C:              NewUnit(-1.0, 0.0),
		Regularization: 1.0,
		Opt:            NewSGA(DefaultStepSize, 0.0),
		circuit:        NewCircuit(),
	}
	logf(2, "New SVM a=%.3f b=%.3f c=%.3f\n", s.A.Value, s.B.Value, s.C.Value)
	return s
}

// Forward scores x and y with the current parameters.
func (s *SVM) Forward(x, y *Unit) *Unit {
	if s.circuit == nil {
		s.circuit = NewCircuit()
	}
	s.out = s.circuit.Forward(x, y, s.A, s.B, s.C)
	return s.out
}

// Backward writes gradients into x, y and the parameters for the last
// forward pass, given the true label (+1 or -1). Parameter gradients are
// reset first; input gradients accumulate.
func (s *SVM) Backward(label int) error {
	if s.out == nil {
		return fmt.Errorf("%w: svm", ErrNoForward)
	}
	loss, pull, err := MarginLoss(s.out.Value, label)
	if err != nil {
		return err
	}

	s.A.ZeroGrad()
	s.B.ZeroGrad()
	s.C.ZeroGrad()

	s.circuit.Backward(pull)

	// Regularization pull toward zero, proportional to value.
	s.A.Grad += -s.Regularization * s.A.Value
	s.B.Grad += -s.Regularization * s.B.Value
	logf(3, "Backward score=%.3e loss=%.3e pull=%.0f\n", s.out.Value, loss, pull)
	return nil
}

// ParameterUpdate moves the parameters along their gradients.
func (s *SVM) ParameterUpdate() {
	if s.Opt == nil {
		panic("SVM optimizer is uninitialized!")
	}
	s.Opt.Step(s.A)
	s.Opt.Step(s.B)
	s.Opt.Step(s.C)
	logf(3, "Step a=%.3e b=%.3e c=%.3e\n", s.A.Value, s.B.Value, s.C.Value)
}

// LearnFrom runs one full training step on a labeled example. An invalid
// label is rejected before any state changes.
func (s *SVM) LearnFrom(x, y *Unit, label int) error {
	if err := checkLabel(label); err != nil {
		return err
	}
	s.Forward(x, y)
	if err := s.Backward(label); err != nil {
		return err
	}
	s.ParameterUpdate()
	return nil
}

// Predict classifies a raw point by the sign of its score.
func (s *SVM) Predict(x, y float64) int {
	if s.Forward(NewUnit(x, 0.0), NewUnit(y, 0.0)).Value > 0 {
		return 1
	}
	return -1
}
