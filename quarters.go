package moonglide

import (
	"fmt"
	"math"
	"time"

	"github.com/thurmanmarka/moonglide/internal/moon"
	"github.com/thurmanmarka/moonglide/internal/timeutil"
)

// QuarterKind identifies one of the eight phase times in Quarters.
type QuarterKind int

const (
	NewMoon QuarterKind = iota
	FirstQuarter
	FullMoon
	LastQuarter
	NextNewMoon
	NextFirstQuarter
	NextFullMoon
	NextLastQuarter
)

var quarterNames = [...]string{
	"new_moon",
	"first_quarter",
	"full_moon",
	"last_quarter",
	"next_new_moon",
	"next_first_quarter",
	"next_full_moon",
	"next_last_quarter",
}

func (k QuarterKind) String() string {
	if k < NewMoon || k > NextLastQuarter {
		return fmt.Sprintf("QuarterKind(%d)", int(k))
	}
	return quarterNames[k]
}

// QuarterKinds lists every QuarterKind in order.
func QuarterKinds() []QuarterKind {
	return []QuarterKind{
		NewMoon, FirstQuarter, FullMoon, LastQuarter,
		NextNewMoon, NextFirstQuarter, NextFullMoon, NextLastQuarter,
	}
}

// Quarters holds the phase times, in Unix seconds, around an instant:
// new moon, first quarter, full moon and last quarter of the current
// lunation followed by the same phases of the next one. Index it with a
// QuarterKind.
type Quarters [8]float64

// Time returns the phase time for kind as a UTC time.Time, to the
// nearest microsecond or so.
func (q Quarters) Time(kind QuarterKind) time.Time {
	return timeutil.JulianToTime(timeutil.JulianFromUnix(q[kind]))
}

// TruePhase returns the corrected time, in Unix seconds, of a principal
// phase in lunation k, where k counts new moons from 1900 January 6 (k = 0,
// see LunationAt). selector is 0 for new moon, 0.25 first quarter, 0.5 full
// moon and 0.75 last quarter; anything else gives ErrInvalidPhaseSelector.
func TruePhase(k, selector float64) (float64, error) {
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return 0, fmt.Errorf("%w: lunation %v", ErrInvalidInput, k)
	}
	jd, ok := moon.TruePhase(k, selector)
	if !ok {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidPhaseSelector, selector)
	}
	return timeutil.UnixFromJulian(jd), nil
}

// LunationAt returns the synodic index k of the mean new moon at or before
// t. It is an estimate; the true new moon may fall up to about a day to
// either side of the mean one.
func LunationAt(t time.Time) float64 {
	jd := timeutil.JulianFromUnix(float64(t.Unix()))
	return math.Floor((jd - moon.MeanPhase(jd, 0)) / SynodicMonth)
}
