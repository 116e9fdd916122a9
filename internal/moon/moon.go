// Package moon holds the lunar half of the model: the Moon's position and
// phase at an instant, and the search for the surrounding phase times.
package moon

// SynodicMonth is the mean interval between new moons, in days.
const SynodicMonth = 29.53058868

// Elements of the Moon's orbit, epoch 1980.0.
const (
	// MeanLongitudeEpoch is the Moon's mean longitude at the epoch (deg).
	MeanLongitudeEpoch = 64.975464

	// MeanLongitudePerigee is the mean longitude of the perigee (deg).
	MeanLongitudePerigee = 349.383063

	// Eccentricity of the Moon's orbit.
	Eccentricity = 0.054900

	// AngularSizeDeg is the Moon's angular size at SemiMajorAxisKm.
	AngularSizeDeg = 0.5181

	// SemiMajorAxisKm of the Moon's orbit.
	SemiMajorAxisKm = 384401.0
)

// Daily motions (deg/day).
const (
	meanLongitudeRate = 13.1763966
	perigeeRate       = 0.1114041
)
