package analysis

import (
	"context"
	"math"
	"testing"

	"github.com/akathpalia/kmrsim/internal/kmr"
	"github.com/akathpalia/kmrsim/internal/sweep"
)

func fiducialCurve(t *testing.T) ([]float64, []float64) {
	t.Helper()
	res, err := sweep.Run(context.Background(), kmr.DefaultParams(), sweep.DefaultGrid())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	return res.Masses, res.Strains
}

func TestPeakAtHighMassEnd(t *testing.T) {
	masses, strains := fiducialCurve(t)

	idx, mass, value := Peak(masses, strains)
	if idx != len(strains)-1 {
		t.Errorf("expected peak at last index, got %d", idx)
	}
	if mass != masses[len(masses)-1] {
		t.Errorf("peak mass %g, want %g", mass, masses[len(masses)-1])
	}
	if value != strains[len(strains)-1] {
		t.Errorf("peak value %g, want %g", value, strains[len(strains)-1])
	}
}

func TestPeakEmpty(t *testing.T) {
	if idx, _, _ := Peak(nil, nil); idx != -1 {
		t.Errorf("expected -1 for empty curve, got %d", idx)
	}
}

func TestDetectableBand(t *testing.T) {
	masses, strains := fiducialCurve(t)

	lo, hi, ok := DetectableBand(masses, strains, 1e-23)
	if !ok {
		t.Fatal("fiducial curve should cross the threshold")
	}

	// The curve is a pure M^(2/3) power law; it crosses 1e-23 at
	// ~2.657e20 g and stays above through the top of the grid.
	want := 2.657348e20
	if math.Abs(lo-want)/want > 1e-3 {
		t.Errorf("band low edge %g, want ~%g", lo, want)
	}
	if hi != masses[len(masses)-1] {
		t.Errorf("band high edge %g, want grid top %g", hi, masses[len(masses)-1])
	}
}

func TestDetectableBandNever(t *testing.T) {
	masses, strains := fiducialCurve(t)

	if _, _, ok := DetectableBand(masses, strains, 1e-10); ok {
		t.Error("curve should never reach 1e-10")
	}
}

func TestDetectableBandWholeGrid(t *testing.T) {
	masses, strains := fiducialCurve(t)

	lo, hi, ok := DetectableBand(masses, strains, 1e-30)
	if !ok {
		t.Fatal("expected whole grid detectable")
	}
	if lo != masses[0] || hi != masses[len(masses)-1] {
		t.Errorf("band [%g, %g], want full grid [%g, %g]",
			lo, hi, masses[0], masses[len(masses)-1])
	}
}

func TestLogSlopeIsTwoThirds(t *testing.T) {
	masses, strains := fiducialCurve(t)

	slopes := LogSlope(masses, strains)
	if len(slopes) != len(masses)-1 {
		t.Fatalf("expected %d slopes, got %d", len(masses)-1, len(slopes))
	}

	for i, s := range slopes {
		if math.Abs(s-2.0/3.0) > 1e-6 {
			t.Errorf("slope[%d] = %g, want 2/3", i, s)
		}
	}
}

func TestLogSlopeShortCurve(t *testing.T) {
	if s := LogSlope([]float64{1e20}, []float64{1e-23}); s != nil {
		t.Errorf("expected nil for single-point curve, got %v", s)
	}
}
