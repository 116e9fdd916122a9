package solver

import (
	"errors"
	"math"
	"testing"
)

func TestSolveKepler(t *testing.T) {
	tests := []struct {
		m, ecc float64
		want   float64
	}{
		{0, 0.0549, 0},
		{90, 0.0549, 1.625613861239322},
		{180, 0.0549, math.Pi},
		{300, 0.016718, 5.221389059901387},
		{45, 0, math.Pi / 4},
	}

	for _, tt := range tests {
		got, err := SolveKepler(tt.m, tt.ecc, DefaultTolerance)
		if err != nil {
			t.Errorf("SolveKepler(%v, %v) error: %v", tt.m, tt.ecc, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SolveKepler(%v, %v) = %.15f, want %.15f", tt.m, tt.ecc, got, tt.want)
		}

		// E must satisfy Kepler's equation to the tolerance.
		resid := got - tt.ecc*math.Sin(got) - tt.m*math.Pi/180
		if math.Abs(resid) > DefaultTolerance {
			t.Errorf("SolveKepler(%v, %v): residual %g", tt.m, tt.ecc, resid)
		}
	}
}

func TestSolveKepler_NonConvergence(t *testing.T) {
	for _, m := range []float64{math.NaN(), math.Inf(1)} {
		_, err := SolveKepler(m, 0.0549, DefaultTolerance)
		if !errors.Is(err, ErrNonConvergence) {
			t.Errorf("SolveKepler(%v) error = %v, want ErrNonConvergence", m, err)
		}
	}
}
