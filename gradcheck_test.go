package backprop

import "testing"

func TestNumericDerivative(t *testing.T) {
	d := NumericDerivative(func(x float64) float64 { return x * x }, 3.0)
	if !gradClose(d, 6.0) {
		t.Errorf("d/dx x^2 at 3 = %.6f; expected 6", d)
	}
}

func TestNumericGrad(t *testing.T) {
	g := NumericGrad(func(v []float64) float64 { return v[0]*v[1] + v[2] }, []float64{-2.0, 5.0, 4.0})
	want := []float64{5.0, -2.0, 1.0}
	for ii := range want {
		if !gradClose(g[ii], want[ii]) {
			t.Errorf("grad = %v; expected %v", g, want)
			break
		}
	}
}
