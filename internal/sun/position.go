package sun

import (
	"math"

	"github.com/thurmanmarka/moonglide/internal/solver"
	"github.com/thurmanmarka/moonglide/internal/timeutil"
)

// Position is the Sun's geocentric state at one instant.
type Position struct {
	MeanAnomaly     float64 // M, degrees [0,360), referred to Epoch
	TrueAnomaly     float64 // v, degrees
	Longitude       float64 // geocentric ecliptic longitude, degrees [0,360)
	DistanceKm      float64 // Earth–Sun distance
	AngularDiameter float64 // degrees
}

// PositionAt returns the Sun's position day days after Epoch.
//
// The mean anomaly comes from uniform motion over the tropical year, Kepler's
// equation gives the eccentric anomaly, and the true anomaly follows from
//
//	tan(v/2) = sqrt((1+e)/(1-e)) · tan(E/2)
func PositionAt(day float64) (Position, error) {
	n := timeutil.Normalize360((360 / TropicalYear) * day)

	// Convert from perigee co-ordinates to epoch 1980.0
	m := timeutil.Normalize360(n + EclipticLongitudeEpoch - EclipticLongitudePerigee)

	ea, err := solver.SolveKepler(m, Eccentricity, solver.DefaultTolerance)
	if err != nil {
		return Position{}, err
	}

	ec := math.Sqrt((1+Eccentricity)/(1-Eccentricity)) * math.Tan(ea/2)
	v := 2 * timeutil.Rad2Deg(math.Atan(ec))

	lambda := timeutil.Normalize360(v + EclipticLongitudePerigee)

	// Orbital distance factor
	f := (1 + Eccentricity*timeutil.CosD(v)) / (1 - Eccentricity*Eccentricity)

	return Position{
		MeanAnomaly:     m,
		TrueAnomaly:     v,
		Longitude:       lambda,
		DistanceKm:      SemiMajorAxisKm / f,
		AngularDiameter: f * AngularSizeDeg,
	}, nil
}
