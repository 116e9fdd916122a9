// Package sun models the Sun's apparent orbit with the low-precision
// elements of epoch 1980 January 0.0.
package sun

// Epoch is 1980 January 0.0 as a Julian date. Model inputs are expressed as
// days since this instant.
const Epoch = 2444238.5

// Elements of the Sun's apparent orbit at Epoch.
const (
	// EclipticLongitudeEpoch is the Sun's ecliptic longitude at Epoch (deg).
	EclipticLongitudeEpoch = 278.833540

	// EclipticLongitudePerigee is the ecliptic longitude at perigee (deg).
	EclipticLongitudePerigee = 282.596403

	// Eccentricity of Earth's orbit.
	Eccentricity = 0.016718

	// SemiMajorAxisKm of Earth's orbit.
	SemiMajorAxisKm = 1.495985e8

	// AngularSizeDeg is the Sun's angular size at SemiMajorAxisKm.
	AngularSizeDeg = 0.533128

	// TropicalYear in days.
	TropicalYear = 365.2422
)
