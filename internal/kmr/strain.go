// Package kmr implements the Kathpalia Memory Relation: a closed-form
// scaling relation for the gravitational-wave memory strain sourced by
// tidal disruption events near primordial black holes.
//
// All quantities are CGS; the returned strain is dimensionless.
package kmr

import "math"

// TidalRadius returns the distance from a compact object of mass m at
// which its tidal field disrupts the star described by p.
func TidalRadius(m float64, p Params) float64 {
	return p.RStar * math.Cbrt(m/p.MStar)
}

// GravitationalRadius returns the Schwarzschild-scale radius 2Gm/c^2.
func GravitationalRadius(m float64) float64 {
	return 2 * G * m / (C * C)
}

// Strain evaluates the memory relation for a primordial black hole of
// mass m [g] and the fixed parameter bundle p.
//
// Strain is a pure function: identical inputs give bit-identical output.
// The factors are multiplied left to right in a fixed order so golden
// values stay reproducible; float multiplication is not associative.
//
// Precondition: m > 0. The caller guarantees this; grid construction
// only emits strictly positive masses.
func Strain(m float64, p Params) float64 {
	rt := TidalRadius(m, p)
	rg := GravitationalRadius(m)
	vc := p.VEj / C

	return Norm * (8 * p.Epsilon / (3 * math.Pi)) * (p.DeltaM / m) *
		(rg / rt) * (vc * vc) * (G / (C * C * C * C)) * (m / p.Distance)
}
