package moon

import (
	"math"
	"testing"

	"github.com/thurmanmarka/moonglide/internal/sun"
	"github.com/thurmanmarka/moonglide/internal/timeutil"
)

func positionAt(t *testing.T, day float64) Position {
	t.Helper()
	sp, err := sun.PositionAt(day)
	if err != nil {
		t.Fatalf("sun.PositionAt(%v) error: %v", day, err)
	}
	return PositionAt(day, sp)
}

func TestPositionAt(t *testing.T) {
	// 2021-01-01T00:00:00Z, two days after full moon.
	p := positionAt(t, 14977)

	tests := []struct {
		name      string
		got, want float64
		tol       float64
	}{
		{"Phase", p.Phase, 0.5610006349719637, 1e-10},
		{"Illumination", p.Illumination, 0.9637218306811195, 1e-10},
		{"AgeDays", p.AgeDays, 16.566679000575885, 1e-8},
		{"DistanceKm", p.DistanceKm, 385284.3253193399, 1e-5},
		{"AngularDiameter", p.AngularDiameter, 0.5169121737172393, 1e-12},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > tt.tol {
			t.Errorf("%s = %.12f, want %.12f", tt.name, tt.got, tt.want)
		}
	}

	if got := timeutil.Normalize360(p.AgeDegrees) / 360; got != p.Phase {
		t.Errorf("AgeDegrees %v inconsistent with Phase %v", p.AgeDegrees, p.Phase)
	}
}

func TestPositionAt_Ranges(t *testing.T) {
	perigee := SemiMajorAxisKm * (1 - Eccentricity)
	apogee := SemiMajorAxisKm * (1 + Eccentricity)

	for day := -20000.0; day < 40000; day += 1.37 {
		p := positionAt(t, day)
		if p.Phase < 0 || p.Phase >= 1 {
			t.Fatalf("day %v: Phase %v", day, p.Phase)
		}
		if p.Illumination < 0 || p.Illumination > 1 {
			t.Fatalf("day %v: Illumination %v", day, p.Illumination)
		}
		if p.AgeDays < 0 || p.AgeDays >= SynodicMonth {
			t.Fatalf("day %v: AgeDays %v", day, p.AgeDays)
		}
		if p.DistanceKm < perigee*0.999 || p.DistanceKm > apogee*1.001 {
			t.Fatalf("day %v: DistanceKm %v", day, p.DistanceKm)
		}
	}
}
