package timeutil

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"
)

// -----------------------------
// Julian dates and Unix seconds
// -----------------------------

const (
	// UnixEpochJD is the Julian date of 1970-01-01T00:00:00 UTC.
	UnixEpochJD = 2440587.5

	// SecondsPerDay ignores leap seconds, like Unix time itself.
	SecondsPerDay = 86400.0
)

// JulianFromUnix converts Unix seconds (UTC) to a Julian date.
//
// Intermediate values are never rounded; the lunar model is sensitive to
// the fractional day.
func JulianFromUnix(sec float64) float64 {
	return sec/SecondsPerDay + UnixEpochJD
}

// UnixFromJulian converts a Julian date back to Unix seconds.
func UnixFromJulian(jd float64) float64 {
	return (jd - UnixEpochJD) * SecondsPerDay
}

// JulianToTime converts a Julian date to a UTC time.Time.
func JulianToTime(jd float64) time.Time {
	return julian.JDToTime(jd).UTC()
}

// TimeToJulian converts t to a Julian date using the Gregorian calendar
// reckoning from meeus. It agrees with JulianFromUnix to well under a
// millisecond and is only used for presentation.
func TimeToJulian(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// SeedYearMonth returns the UTC calendar year and month of the instant
// daysBefore days ahead of sec.
func SeedYearMonth(sec int64, daysBefore int) (year int, month time.Month) {
	t := time.Unix(sec-int64(daysBefore)*int64(SecondsPerDay), 0).UTC()
	return t.Year(), t.Month()
}

// -----------------------------
// Angles
// -----------------------------

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return unit.AngleFromDeg(d).Rad()
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return unit.Angle(r).Deg()
}

// SinD returns the sine of an angle given in degrees.
func SinD(deg float64) float64 {
	return math.Sin(Deg2Rad(deg))
}

// CosD returns the cosine of an angle given in degrees.
func CosD(deg float64) float64 {
	return math.Cos(Deg2Rad(deg))
}

// Normalize360 reduces an angle to [0, 360).
func Normalize360(d float64) float64 {
	r := d - 360.0*math.Floor(d/360.0)
	// Tiny negative inputs round up to exactly 360.
	if r >= 360.0 {
		return 0
	}
	return r
}
