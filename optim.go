package backprop

// DefaultStepSize is the step size used by NewSVM.
const DefaultStepSize = 0.01

// An Optimizer performs gradient based parameter updates
type Optimizer interface {
	Step(u *Unit)
}

// SGA is stochastic gradient ascent with optional momentum. Parameters move
// along their gradient, which for the classifier is the pull toward a
// satisfied margin.
type SGA struct {
	StepSize float64
	Momentum float64
	buf      map[*Unit]float64
}

// NewSGA creates a new SGA optimizer.
func NewSGA(stepSize float64, momentum float64) *SGA {
	return &SGA{
		StepSize: stepSize,
		Momentum: momentum,
		buf:      make(map[*Unit]float64),
	}
}

// Step takes an ascent step on one parameter unit. The gradient is left in
// place.
func (opt *SGA) Step(u *Unit) {
	v := u.Grad
	if opt.Momentum > 0 {
		if opt.buf == nil {
			opt.buf = make(map[*Unit]float64)
		}
		if prev, ok := opt.buf[u]; ok {
			v = opt.Momentum*prev + v
		}
		opt.buf[u] = v
	}
	u.Value += opt.StepSize * v
}
