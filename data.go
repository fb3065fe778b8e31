package backprop

// An Example is a labeled 2D data point. Label is +1 or -1.
type Example struct {
	X, Y  float64
	Label int
}

// Accuracy returns the fraction of examples the classifier labels correctly.
func Accuracy(s *SVM, data []Example) float64 {
	if len(data) == 0 {
		return 0.0
	}
	correct := 0
	for _, ex := range data {
		if s.Predict(ex.X, ex.Y) == ex.Label {
			correct++
		}
	}
	return float64(correct) / float64(len(data))
}
