package sweep

import (
	"fmt"
	"math"
)

const (
	DefaultLowExp  = 20.0
	DefaultHighExp = 25.0
	DefaultPoints  = 200
)

// GridSpec describes a logarithmically spaced black hole mass grid in
// decade exponents: masses run from 10^LowExp to 10^HighExp grams.
type GridSpec struct {
	LowExp  float64
	HighExp float64
	Points  int
}

// DefaultGrid covers 1e20..1e25 g with 200 points.
func DefaultGrid() GridSpec {
	return GridSpec{LowExp: DefaultLowExp, HighExp: DefaultHighExp, Points: DefaultPoints}
}

func (g GridSpec) Validate() error {
	if g.Points < 2 {
		return fmt.Errorf("grid needs at least 2 points, got %d", g.Points)
	}
	if g.HighExp <= g.LowExp {
		return fmt.Errorf("grid bounds must increase, got [%g, %g]", g.LowExp, g.HighExp)
	}
	return nil
}

// Masses materializes the grid: strictly increasing, inclusive of both
// endpoints, deterministic for a given spec.
func (g GridSpec) Masses() []float64 {
	return LogSpace(g.LowExp, g.HighExp, g.Points)
}

// LogSpace returns n base-10 logarithmically spaced values from 10^low
// to 10^high inclusive.
func LogSpace(low, high float64, n int) []float64 {
	vals := make([]float64, n)
	step := (high - low) / float64(n-1)
	for i := range vals {
		vals[i] = math.Pow(10, low+step*float64(i))
	}
	return vals
}
