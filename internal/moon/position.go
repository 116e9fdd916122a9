package moon

import (
	"math"

	"github.com/thurmanmarka/moonglide/internal/sun"
	"github.com/thurmanmarka/moonglide/internal/timeutil"
)

// Position is the Moon's geocentric state and phase at one instant.
type Position struct {
	// Longitude is the true ecliptic longitude after all corrections (deg,
	// not normalized).
	Longitude float64

	// AgeDegrees is Longitude minus the Sun's longitude, not normalized.
	AgeDegrees float64

	Phase        float64 // [0,1), 0 = new, 0.5 = full
	Illumination float64 // illuminated fraction of the disc [0,1]
	AgeDays      float64 // days since new moon [0,SynodicMonth)

	DistanceKm      float64 // Earth–Moon distance, centre to centre
	AngularDiameter float64 // degrees
}

// PositionAt evaluates the Moon day days after sun.Epoch, given the Sun's
// position at the same instant.
//
// The mean longitude and anomaly are corrected by evection, the annual
// equation, the equation of the centre, two smaller anomaly terms and the
// variation, in that order.
func PositionAt(day float64, s sun.Position) Position {
	ml := timeutil.Normalize360(meanLongitudeRate*day + MeanLongitudeEpoch)
	mm := timeutil.Normalize360(ml - perigeeRate*day - MeanLongitudePerigee)

	evection := 1.2739 * timeutil.SinD(2*(ml-s.Longitude)-mm)
	annualEq := 0.1858 * timeutil.SinD(s.MeanAnomaly)
	a3 := 0.37 * timeutil.SinD(s.MeanAnomaly)

	// Corrected anomaly
	mmp := mm + evection - annualEq - a3

	centre := 6.2886 * timeutil.SinD(mmp)
	a4 := 0.214 * timeutil.SinD(2*mmp)

	lp := ml + evection + centre - annualEq + a4
	variation := 0.6583 * timeutil.SinD(2*(lp-s.Longitude))
	lpp := lp + variation

	age := lpp - s.Longitude
	phase := timeutil.Normalize360(age) / 360

	dist := (SemiMajorAxisKm * (1 - Eccentricity*Eccentricity)) /
		(1 + Eccentricity*timeutil.CosD(mmp+centre))

	return Position{
		Longitude:       lpp,
		AgeDegrees:      age,
		Phase:           phase,
		Illumination:    (1 - math.Cos(timeutil.Deg2Rad(age))) / 2,
		AgeDays:         SynodicMonth * phase,
		DistanceKm:      dist,
		AngularDiameter: AngularSizeDeg / (dist / SemiMajorAxisKm),
	}
}
