// Package moonglide computes the phase of the Moon and related quantities
// for an instant: illuminated fraction, age, distance and angular diameter
// of the Moon, distance and angular diameter of the Sun, and the times of
// the principal phases around the instant.
//
// The model is the low-precision one popularised by Moontool: a handful of
// periodic terms on top of mean orbital elements for epoch 1980.0, plus
// the classical mean/true phase series for new, quarter and full moons.
// Expect phase times to within a few minutes and positions to a fraction of
// a degree.
//
// Everything is derived from a single UTC instant. A Snapshot is immutable
// apart from its lazily computed phase times and is safe for concurrent use.
package moonglide

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/soniakeys/unit"
	"go.uber.org/zap"

	"github.com/thurmanmarka/moonglide/internal/moon"
	"github.com/thurmanmarka/moonglide/internal/solver"
	"github.com/thurmanmarka/moonglide/internal/sun"
	"github.com/thurmanmarka/moonglide/internal/timeutil"
)

// SynodicMonth is the mean length of a lunation, new moon to new moon, in
// days.
const SynodicMonth = moon.SynodicMonth

var (
	// ErrInvalidInput is returned for instants that are not finite, are out
	// of range, or cannot be parsed.
	ErrInvalidInput = errors.New("invalid instant")

	// ErrNonConvergence is returned when one of the iterative solvers
	// exceeds its iteration bound. It indicates a model bug, not bad input.
	ErrNonConvergence = solver.ErrNonConvergence

	// ErrInvalidPhaseSelector is returned by TruePhase for a selector other
	// than 0, 0.25, 0.5 or 0.75.
	ErrInvalidPhaseSelector = errors.New("phase selector must be 0, 0.25, 0.5 or 0.75")
)

// maxUnixFloat is the largest magnitude accepted by FromUnixFloat; beyond
// it whole seconds are no longer exact in a float64.
const maxUnixFloat = 1 << 53

// phaseHunt is swapped out in tests to count evaluations.
var phaseHunt = moon.Hunt

// Option configures a Snapshot.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used for debug output from the phase search.
// By default nothing is logged.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Snapshot is the state of the Moon and Sun at one instant.
type Snapshot struct {
	epoch int64

	moon moon.Position
	sun  sun.Position

	logger *zap.Logger

	quartersOnce sync.Once
	quarters     Quarters
	quartersErr  error
}

// New evaluates the model at epochSeconds, Unix seconds in UTC.
func New(epochSeconds int64, opts ...Option) (*Snapshot, error) {
	o := buildOptions(opts)

	jd := timeutil.JulianFromUnix(float64(epochSeconds))
	day := jd - sun.Epoch

	sp, err := sun.PositionAt(day)
	if err != nil {
		return nil, fmt.Errorf("sun position at %d: %w", epochSeconds, err)
	}

	return &Snapshot{
		epoch:  epochSeconds,
		moon:   moon.PositionAt(day, sp),
		sun:    sp,
		logger: o.logger,
	}, nil
}

// At evaluates the model at t. Sub-second precision is discarded.
func At(t time.Time, opts ...Option) (*Snapshot, error) {
	return New(t.Unix(), opts...)
}

// Now evaluates the model at the current time.
func Now(opts ...Option) (*Snapshot, error) {
	return At(time.Now(), opts...)
}

// FromUnixFloat evaluates the model at sec Unix seconds, rounded down to a
// whole second. NaN, infinities and magnitudes of 2^53 or more are rejected
// with ErrInvalidInput.
func FromUnixFloat(sec float64, opts ...Option) (*Snapshot, error) {
	if err := checkUnixFloat(sec); err != nil {
		return nil, err
	}
	return New(int64(math.Floor(sec)), opts...)
}

func checkUnixFloat(sec float64) error {
	if math.IsNaN(sec) || math.IsInf(sec, 0) {
		return fmt.Errorf("%w: %v seconds", ErrInvalidInput, sec)
	}
	if math.Abs(sec) >= maxUnixFloat {
		return fmt.Errorf("%w: %g seconds out of range", ErrInvalidInput, sec)
	}
	return nil
}

// EpochSeconds returns the instant the snapshot was evaluated at.
func (s *Snapshot) EpochSeconds() int64 { return s.epoch }

// Time returns the instant the snapshot was evaluated at, in UTC.
func (s *Snapshot) Time() time.Time { return time.Unix(s.epoch, 0).UTC() }

// Phase returns the position in the lunation in [0,1): 0 is new moon, 0.25
// first quarter, 0.5 full moon and 0.75 last quarter.
func (s *Snapshot) Phase() float64 { return s.moon.Phase }

// Illumination returns the illuminated fraction of the disc in [0,1].
func (s *Snapshot) Illumination() float64 { return s.moon.Illumination }

// Age returns the days elapsed since new moon.
func (s *Snapshot) Age() float64 { return s.moon.AgeDays }

// AgeDegrees returns the difference between the Moon's and the Sun's
// ecliptic longitudes, without normalization.
func (s *Snapshot) AgeDegrees() float64 { return s.moon.AgeDegrees }

// Elongation returns the phase angle, Moon minus Sun longitude, in [0,2π).
func (s *Snapshot) Elongation() unit.Angle {
	return unit.AngleFromDeg(s.moon.Phase * 360)
}

// Waxing reports whether the illuminated fraction is increasing.
func (s *Snapshot) Waxing() bool { return s.moon.Phase < 0.5 }

// Distance returns the Earth–Moon distance in km, centre to centre.
func (s *Snapshot) Distance() float64 { return s.moon.DistanceKm }

// Diameter returns the Moon's angular diameter in degrees.
func (s *Snapshot) Diameter() float64 { return s.moon.AngularDiameter }

// SunDistance returns the Earth–Sun distance in km.
func (s *Snapshot) SunDistance() float64 { return s.sun.DistanceKm }

// SunDiameter returns the Sun's angular diameter in degrees.
func (s *Snapshot) SunDiameter() float64 { return s.sun.AngularDiameter }

var phaseNames = [...]string{
	"New Moon",
	"Waxing Crescent",
	"First Quarter",
	"Waxing Gibbous",
	"Full Moon",
	"Waning Gibbous",
	"Third Quarter",
	"Waning Crescent",
	"New Moon",
}

// PhaseName returns one of eight names for the current phase. Each name
// covers an eighth of the lunation centred on its nominal phase, so "New
// Moon" spans the sixteenth either side of 0.
func (s *Snapshot) PhaseName() string {
	return phaseName(s.moon.Phase)
}

func phaseName(phase float64) string {
	i := int(math.Floor((phase + 0.0625) * 8))
	if i < 0 || i >= len(phaseNames) {
		i = 0
	}
	return phaseNames[i]
}

// Quarters returns the times of the principal phases around the snapshot.
// They are computed on first use and cached.
func (s *Snapshot) Quarters() (Quarters, error) {
	s.quartersOnce.Do(func() {
		q, err := phaseHunt(s.epoch, s.logger)
		if err != nil {
			s.quartersErr = err
			return
		}
		s.quarters = Quarters(q)
	})
	return s.quarters, s.quartersErr
}

// Quarter returns the time of one principal phase in Unix seconds.
func (s *Snapshot) Quarter(kind QuarterKind) (float64, error) {
	if kind < NewMoon || kind > NextLastQuarter {
		return 0, fmt.Errorf("unknown quarter %d", kind)
	}
	q, err := s.Quarters()
	if err != nil {
		return 0, err
	}
	return q[kind], nil
}

// NewMoon returns the time of the new moon starting the current lunation.
func (s *Snapshot) NewMoon() (float64, error) { return s.Quarter(NewMoon) }

// FirstQuarter returns the time of the current lunation's first quarter.
func (s *Snapshot) FirstQuarter() (float64, error) { return s.Quarter(FirstQuarter) }

// FullMoon returns the time of the current lunation's full moon.
func (s *Snapshot) FullMoon() (float64, error) { return s.Quarter(FullMoon) }

// LastQuarter returns the time of the current lunation's last quarter.
func (s *Snapshot) LastQuarter() (float64, error) { return s.Quarter(LastQuarter) }

// NextNewMoon returns the time of the new moon ending the current lunation.
func (s *Snapshot) NextNewMoon() (float64, error) { return s.Quarter(NextNewMoon) }

// NextFirstQuarter returns the time of the next lunation's first quarter.
func (s *Snapshot) NextFirstQuarter() (float64, error) { return s.Quarter(NextFirstQuarter) }

// NextFullMoon returns the time of the next lunation's full moon.
func (s *Snapshot) NextFullMoon() (float64, error) { return s.Quarter(NextFullMoon) }

// NextLastQuarter returns the time of the next lunation's last quarter.
func (s *Snapshot) NextLastQuarter() (float64, error) { return s.Quarter(NextLastQuarter) }
