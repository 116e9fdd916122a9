package moon

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/thurmanmarka/moonglide/internal/solver"
	"github.com/thurmanmarka/moonglide/internal/timeutil"
)

// MaxHuntIterations bounds the lunation search in Hunt. Real inputs bracket
// the query within two or three steps.
const MaxHuntIterations = 1000

const (
	// seedMarginDays moves the seed lunation back far enough that the
	// bracketing new moon can't be skipped because of mean/true drift.
	seedMarginDays = 45

	// refineWindowDays is how close a mean new moon must be to the query
	// before it is replaced by the true one.
	refineWindowDays = 0.75

	// lunationsPerYear converts a fractional year since 1900 to k.
	lunationsPerYear = 12.3685
)

// Hunt finds the times of the principal phases around the instant
// epochSeconds (Unix seconds, UTC).
//
// The result is in Unix seconds, ordered new moon, first quarter, full
// moon, last quarter for the lunation containing the instant, followed by
// the same four phases of the next lunation.
func Hunt(epochSeconds int64, logger *zap.Logger) ([8]float64, error) {
	var quarters [8]float64
	if logger == nil {
		logger = zap.NewNop()
	}

	sdate := timeutil.JulianFromUnix(float64(epochSeconds))

	year, month := timeutil.SeedYearMonth(epochSeconds, seedMarginDays)
	k1 := math.Floor((float64(year) + float64(month-1)*(1.0/12) - 1900) * lunationsPerYear)

	adate := MeanPhase(math.Trunc(sdate-seedMarginDays), k1)
	nt1 := adate

	var k2 float64
	for i := 0; ; i++ {
		if i >= MaxHuntIterations {
			return quarters, fmt.Errorf("phase hunt at %d stopped at k=%g: %w",
				epochSeconds, k1, solver.ErrNonConvergence)
		}

		adate += SynodicMonth
		k2 = k1 + 1
		nt2 := MeanPhase(math.Trunc(adate), k2)

		// The mean phase is too coarse this close to the query.
		if math.Abs(nt2-sdate) < refineWindowDays {
			nt2, _ = TruePhase(k2, SelectNew)
		}

		logger.Debug("phase hunt step",
			zap.Int("iteration", i),
			zap.Float64("k", k1),
			zap.Float64("nt1", nt1),
			zap.Float64("nt2", nt2),
			zap.Float64("target", sdate),
		)

		if nt1 <= sdate && nt2 > sdate {
			break
		}

		nt1, k1 = nt2, k2
	}

	for i, sel := range Selectors {
		cur, _ := TruePhase(k1, sel)
		next, _ := TruePhase(k2, sel)
		quarters[i] = timeutil.UnixFromJulian(cur)
		quarters[i+4] = timeutil.UnixFromJulian(next)
	}

	return quarters, nil
}
