package moon

import (
	"math"

	"github.com/thurmanmarka/moonglide/internal/timeutil"
)

// Phase selectors understood by TruePhase, as fractions of a lunation.
const (
	SelectNew          = 0.0
	SelectFirstQuarter = 0.25
	SelectFull         = 0.5
	SelectLastQuarter  = 0.75
)

// Selectors lists the four phase selectors in lunation order.
var Selectors = [4]float64{SelectNew, SelectFirstQuarter, SelectFull, SelectLastQuarter}

// selectorTolerance is how close a selector must be to a canonical value.
const selectorTolerance = 0.01

// base1900 is 1900 January 0.5, the origin of the phase series (JD).
const base1900 = 2415020.0

// meanNewMoon1900 is the time of the mean new moon with k = 0 (JD).
const meanNewMoon1900 = 2415020.75933

// MeanPhase returns the Julian date of the mean new moon with synodic index
// k, evaluated at Julian date jd.
//
// jd only enters the small secular and periodic terms; k is what selects the
// lunation. k is conventionally (year − 1900) × 12.3685 for a fractional
// year.
func MeanPhase(jd, k float64) float64 {
	// Julian centuries from 1900 January 0.5
	jt := (jd - base1900) / 36525
	t2 := jt * jt
	t3 := t2 * jt

	return meanNewMoon1900 + SynodicMonth*k +
		0.0001178*t2 -
		0.000000155*t3 +
		0.00033*timeutil.SinD(166.56+132.87*jt-0.009173*t2)
}

// TruePhase returns the corrected Julian date of the phase selected by sel
// (one of the Select* constants) in lunation k.
//
// ok is false when sel is not within 0.01 of a canonical selector.
func TruePhase(k, sel float64) (jd float64, ok bool) {
	k += sel

	t := k / 1236.85
	t2 := t * t
	t3 := t2 * t

	// Mean time of phase
	pt := meanNewMoon1900 + SynodicMonth*k +
		0.0001178*t2 -
		0.000000155*t3 +
		0.00033*timeutil.SinD(166.56+132.87*t-0.009173*t2)

	// Sun's mean anomaly, Moon's mean anomaly, Moon's argument of latitude
	m := 359.2242 + 29.10535608*k - 0.0000333*t2 - 0.00000347*t3
	mp := 306.0253 + 385.81691806*k + 0.0107306*t2 + 0.00001236*t3
	f := 21.2964 + 390.67050646*k - 0.0016528*t2 - 0.00000239*t3

	sin := timeutil.SinD
	cos := timeutil.CosD

	switch {
	case math.Abs(sel-SelectNew) < selectorTolerance || math.Abs(sel-SelectFull) < selectorTolerance:
		pt += (0.1734-0.000393*t)*sin(m) +
			0.0021*sin(2*m) -
			0.4068*sin(mp) +
			0.0161*sin(2*mp) -
			0.0004*sin(3*mp) +
			0.0104*sin(2*f) -
			0.0051*sin(m+mp) -
			0.0074*sin(m-mp) +
			0.0004*sin(2*f+m) -
			0.0004*sin(2*f-m) -
			0.0006*sin(2*f+mp) +
			0.0010*sin(2*f-mp) +
			0.0005*sin(m+2*mp)

	case math.Abs(sel-SelectFirstQuarter) < selectorTolerance || math.Abs(sel-SelectLastQuarter) < selectorTolerance:
		pt += (0.1721-0.0004*t)*sin(m) +
			0.0021*sin(2*m) -
			0.6280*sin(mp) +
			0.0089*sin(2*mp) -
			0.0004*sin(3*mp) +
			0.0079*sin(2*f) -
			0.0119*sin(m+mp) -
			0.0047*sin(m-mp) +
			0.0003*sin(2*f+m) -
			0.0004*sin(2*f-m) -
			0.0006*sin(2*f+mp) +
			0.0021*sin(2*f-mp) +
			0.0003*sin(m+2*mp) +
			0.0004*sin(m-2*mp) -
			0.0003*sin(2*m+mp)

		if sel < SelectFull {
			pt += 0.0028 - 0.0004*cos(m) + 0.0003*cos(mp)
		} else {
			pt += -0.0028 + 0.0004*cos(m) - 0.0003*cos(mp)
		}

	default:
		return 0, false
	}

	return pt, true
}

// ValidSelector reports whether sel names one of the four principal phases.
func ValidSelector(sel float64) bool {
	for _, s := range Selectors {
		if math.Abs(sel-s) < selectorTolerance {
			return true
		}
	}
	return false
}
