package backprop

import (
	"fmt"
	"math"
)

// MarginLoss computes the hinge loss max(0, 1 - label*score) and the pull on
// the score: +1 if a positive example scored below 1, -1 if a negative
// example scored above -1, and 0 once the margin is satisfied. The pull is
// the direction the score should move, not the derivative of the loss.
func MarginLoss(score float64, label int) (loss float64, pull float64, err error) {
	if err = checkLabel(label); err != nil {
		return
	}

	labelf := float64(label)
	loss = math.Max(1.0-score*labelf, 0.0)
	switch {
	case label == 1 && score < 1:
		pull = 1.0
	case label == -1 && score > -1:
		pull = -1.0
	}
	return
}

func checkLabel(label int) error {
	if !(label == 1 || label == -1) {
		return fmt.Errorf("%w: got %d", ErrInvalidLabel, label)
	}
	return nil
}
