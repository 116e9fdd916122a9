// Package reference wraps the higher-order phase solutions from meeus
// (Astronomical Algorithms, chapter 49) for checking the model against.
package reference

import (
	"time"

	"github.com/soniakeys/meeus/v3/moonphase"

	"github.com/thurmanmarka/moonglide/internal/timeutil"
)

// lunationYears is one mean lunation as a fraction of a year.
const lunationYears = 1 / 12.3685

var solutions = [4]func(year float64) float64{
	moonphase.New,
	moonphase.First,
	moonphase.Full,
	moonphase.Last,
}

// DecimalYear returns t as a fractional Gregorian year.
func DecimalYear(t time.Time) float64 {
	t = t.UTC()
	start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	return float64(t.Year()) + float64(t.Sub(start))/float64(end.Sub(start))
}

// Nearest returns the meeus time of the phase closest to t. phase is 0 for
// new moon, 1 first quarter, 2 full moon and 3 last quarter.
//
// Results are in dynamical time (TT), about a minute ahead of UTC in the
// current era.
func Nearest(phase int, t time.Time) time.Time {
	fn := solutions[phase%4]
	y := DecimalYear(t)

	var best time.Time
	for _, dy := range []float64{-lunationYears, 0, lunationYears} {
		cand := timeutil.JulianToTime(fn(y + dy))
		if best.IsZero() || absDuration(cand.Sub(t)) < absDuration(best.Sub(t)) {
			best = cand
		}
	}
	return best
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
