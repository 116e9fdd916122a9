package moon

import (
	"math"
	"testing"
	"time"

	"github.com/thurmanmarka/moonglide/internal/reference"
	"github.com/thurmanmarka/moonglide/internal/timeutil"
)

func TestMeanPhase(t *testing.T) {
	got := MeanPhase(2459215.5, 1496)
	if want := 2459198.5199892963; math.Abs(got-want) > 1e-8 {
		t.Errorf("MeanPhase = %.10f, want %.10f", got, want)
	}

	// With jd fixed, consecutive indices are exactly one month apart.
	d := MeanPhase(2459215.5, 1497) - got
	if math.Abs(d-SynodicMonth) > 1e-8 {
		t.Errorf("spacing = %v, want %v", d, SynodicMonth)
	}
}

func TestTruePhase(t *testing.T) {
	tests := []struct {
		sel  float64
		want float64
	}{
		{SelectNew, 2459198.1796949045},
		{SelectFirstQuarter, 2459205.4878631793},
		{SelectFull, 2459213.646122191},
	}
	for _, tt := range tests {
		got, ok := TruePhase(1496, tt.sel)
		if !ok {
			t.Errorf("TruePhase(1496, %v) not ok", tt.sel)
			continue
		}
		if math.Abs(got-tt.want) > 1e-8 {
			t.Errorf("TruePhase(1496, %v) = %.8f, want %.8f", tt.sel, got, tt.want)
		}
	}

	for _, sel := range []float64{0.1, 0.3, 0.62, 1, -0.25} {
		if _, ok := TruePhase(1496, sel); ok {
			t.Errorf("TruePhase(1496, %v) ok, want rejected", sel)
		}
	}
}

func TestValidSelector(t *testing.T) {
	for _, sel := range Selectors {
		if !ValidSelector(sel) {
			t.Errorf("ValidSelector(%v) = false", sel)
		}
		if !ValidSelector(sel + 0.009) {
			t.Errorf("ValidSelector(%v) = false", sel+0.009)
		}
	}
	for _, sel := range []float64{0.02, 0.125, 0.9, math.NaN()} {
		if ValidSelector(sel) {
			t.Errorf("ValidSelector(%v) = true", sel)
		}
	}
}

// TestTruePhase_AgainstMeeus checks every principal phase from 2000 to 2030
// against the higher-order solutions in meeus. Those are in dynamical time,
// about a minute off UTC, so the tolerance is generous.
func TestTruePhase_AgainstMeeus(t *testing.T) {
	const tolerance = 30 * time.Minute

	var worst time.Duration
	for k := 1237.0; k < 1237+31*12.3685; k++ {
		for i, sel := range Selectors {
			jd, ok := TruePhase(k, sel)
			if !ok {
				t.Fatalf("TruePhase(%v, %v) not ok", k, sel)
			}
			got := timeutil.JulianToTime(jd)
			want := reference.Nearest(i, got)

			d := got.Sub(want).Abs()
			if d > worst {
				worst = d
			}
			if d > tolerance {
				t.Errorf("k=%v sel=%v: %s, meeus %s (off by %s)", k, sel, got.Format(time.RFC3339), want.Format(time.RFC3339), d)
			}
		}
	}
	t.Logf("worst difference from meeus: %s", worst)
}
