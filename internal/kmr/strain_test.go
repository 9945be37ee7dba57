package kmr

import (
	"math"
	"testing"
)

func relDiff(a, b float64) float64 {
	if b == 0 {
		return math.Abs(a)
	}
	return math.Abs(a-b) / math.Abs(b)
}

func TestStrainGoldenValue(t *testing.T) {
	// Pins the normalization constant and formula structure. Computed once
	// from the fiducial parameters at m = 1e22 g.
	const want = 1.122968840334771e-22

	got := Strain(1e22, DefaultParams())

	if relDiff(got, want) > 1e-9 {
		t.Errorf("strain(1e22) = %.15e, want %.15e", got, want)
	}
}

func TestStrainNonNegative(t *testing.T) {
	p := DefaultParams()
	for _, m := range []float64{1e10, 1e20, 1e22, 1e25, 1e30} {
		if h := Strain(m, p); h < 0 {
			t.Errorf("strain(%g) = %g, want >= 0", m, h)
		}
	}
}

func TestStrainLinearInDeltaM(t *testing.T) {
	p := DefaultParams()
	h1 := Strain(1e22, p)

	p.DeltaM *= 2
	h2 := Strain(1e22, p)

	if relDiff(h2, 2*h1) > 1e-12 {
		t.Errorf("doubling deltaM: got %g, want %g", h2, 2*h1)
	}
}

func TestStrainLinearInEpsilon(t *testing.T) {
	p := DefaultParams()
	h1 := Strain(1e22, p)

	p.Epsilon *= 2
	h2 := Strain(1e22, p)

	if relDiff(h2, 2*h1) > 1e-12 {
		t.Errorf("doubling epsilon: got %g, want %g", h2, 2*h1)
	}
}

func TestStrainInverseWithDistance(t *testing.T) {
	p := DefaultParams()
	h1 := Strain(1e22, p)

	p.Distance *= 2
	h2 := Strain(1e22, p)

	if relDiff(h1/h2, 2) > 1e-12 {
		t.Errorf("doubling distance: ratio %g, want 2", h1/h2)
	}
}

func TestStrainMassScaling(t *testing.T) {
	// deltaM/m * (rg/rt) * m cancels to m^(2/3): the curve is a pure
	// power law in the black hole mass.
	p := DefaultParams()
	ratio := Strain(2e22, p) / Strain(1e22, p)
	want := math.Pow(2, 2.0/3.0)

	if relDiff(ratio, want) > 1e-12 {
		t.Errorf("mass scaling ratio %g, want %g", ratio, want)
	}
}

func TestStrainIdempotent(t *testing.T) {
	p := DefaultParams()
	h1 := Strain(3.7e21, p)
	h2 := Strain(3.7e21, p)

	if h1 != h2 {
		t.Errorf("repeated evaluation differs: %v vs %v", h1, h2)
	}
}

func TestTidalRadius(t *testing.T) {
	p := DefaultParams()

	// At m == MStar the tidal radius equals the stellar radius.
	if rt := TidalRadius(p.MStar, p); relDiff(rt, p.RStar) > 1e-12 {
		t.Errorf("tidal radius at MStar: %g, want %g", rt, p.RStar)
	}

	// Grows as m^(1/3).
	r1 := TidalRadius(1e22, p)
	r8 := TidalRadius(8e22, p)
	if relDiff(r8, 2*r1) > 1e-12 {
		t.Errorf("tidal radius scaling: %g, want %g", r8, 2*r1)
	}
}

func TestGravitationalRadius(t *testing.T) {
	m := 1e22
	want := 2 * G * m / (C * C)
	if rg := GravitationalRadius(m); rg != want {
		t.Errorf("gravitational radius %g, want %g", rg, want)
	}
}
