// Package analysis provides diagnostics over a computed strain curve:
// the peak, the detectable mass band relative to a sensitivity
// threshold, and the local log-log slope.
package analysis

import "math"

// Peak returns the index, mass and value of the curve maximum.
// Returns index -1 for an empty curve.
func Peak(masses, strains []float64) (int, float64, float64) {
	if len(strains) == 0 {
		return -1, 0, 0
	}

	idx := 0
	for i := 1; i < len(strains); i++ {
		if strains[i] > strains[idx] {
			idx = i
		}
	}
	return idx, masses[idx], strains[idx]
}

// DetectableBand returns the mass range over which the curve meets or
// exceeds the threshold. Crossings between grid points are located by
// log-log interpolation. ok is false when the curve never reaches the
// threshold.
func DetectableBand(masses, strains []float64, threshold float64) (lo, hi float64, ok bool) {
	first, last := -1, -1
	for i, h := range strains {
		if h >= threshold {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return 0, 0, false
	}

	lo = masses[first]
	if first > 0 {
		lo = crossing(masses[first-1], masses[first], strains[first-1], strains[first], threshold)
	}

	hi = masses[last]
	if last < len(masses)-1 {
		hi = crossing(masses[last], masses[last+1], strains[last], strains[last+1], threshold)
	}

	return lo, hi, true
}

// crossing interpolates the mass where the curve equals the threshold,
// linearly in (log m, log h).
func crossing(m0, m1, h0, h1, threshold float64) float64 {
	l0, l1 := math.Log10(h0), math.Log10(h1)
	if l0 == l1 {
		return m0
	}
	t := (math.Log10(threshold) - l0) / (l1 - l0)
	return math.Pow(10, math.Log10(m0)+t*(math.Log10(m1)-math.Log10(m0)))
}

// LogSlope returns the finite-difference d(log h)/d(log m) between
// consecutive grid points; the result has len(masses)-1 entries. For
// the memory relation the slope is 2/3 everywhere.
func LogSlope(masses, strains []float64) []float64 {
	if len(masses) < 2 {
		return nil
	}

	slopes := make([]float64, len(masses)-1)
	for i := range slopes {
		dm := math.Log10(masses[i+1]) - math.Log10(masses[i])
		dh := math.Log10(strains[i+1]) - math.Log10(strains[i])
		slopes[i] = dh / dm
	}
	return slopes
}
