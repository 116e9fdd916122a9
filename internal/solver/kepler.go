package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/thurmanmarka/moonglide/internal/timeutil"
)

// DefaultTolerance is the convergence threshold (radians) used by the solar
// model.
const DefaultTolerance = 1e-6

// MaxKeplerIterations bounds SolveKepler. Newton's method converges in a
// handful of steps for e < 0.1; the bound only exists to fail instead of
// spinning on NaN or absurd eccentricities.
const MaxKeplerIterations = 100

// ErrNonConvergence is returned when an iterative solve exceeds its bound.
var ErrNonConvergence = errors.New("iteration did not converge")

// SolveKepler solves Kepler's equation M = E - e·sin(E) for the eccentric
// anomaly E (radians), given the mean anomaly in degrees.
//
// It is a single-variable Newton iteration seeded with E = M. The loop stops
// once the residual measured before an update is within tol.
func SolveKepler(meanAnomalyDeg, ecc, tol float64) (float64, error) {
	m := timeutil.Deg2Rad(meanAnomalyDeg)
	e := m

	for i := 0; i < MaxKeplerIterations; i++ {
		delta := e - ecc*math.Sin(e) - m
		e -= delta / (1 - ecc*math.Cos(e))
		if math.Abs(delta) <= tol {
			return e, nil
		}
	}

	return 0, fmt.Errorf("kepler M=%g e=%g: %w", meanAnomalyDeg, ecc, ErrNonConvergence)
}
