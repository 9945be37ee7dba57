package kmr

import "fmt"

// Params bundles the fixed astrophysical inputs of the memory relation.
// All fields are CGS. The bundle is a value type, constant across a sweep.
type Params struct {
	MStar    float64 // disrupted star mass [g]
	RStar    float64 // disrupted star radius [cm]
	Epsilon  float64 // ejection anisotropy factor, 0 < eps <= 1
	DeltaM   float64 // total mass ejected in the TDE [g]
	Distance float64 // luminosity distance to observer [cm]
	VEj      float64 // characteristic ejecta velocity [cm/s], 0 < v < c
}

// DefaultParams returns the fiducial parameter set: a solar-type star,
// 0.001 Msun of ejecta at 0.1c, observed from ~100 Mpc.
func DefaultParams() Params {
	return Params{
		MStar:    Msun,
		RStar:    Rsun,
		Epsilon:  0.02,
		DeltaM:   0.001 * Msun,
		Distance: 3.1e26,
		VEj:      0.1 * C,
	}
}

// Validate rejects any parameter outside its physical domain.
// A validated bundle can never produce NaN or Inf strain.
func (p Params) Validate() error {
	if p.MStar <= 0 {
		return fmt.Errorf("stellar mass must be positive, got %g", p.MStar)
	}
	if p.RStar <= 0 {
		return fmt.Errorf("stellar radius must be positive, got %g", p.RStar)
	}
	if p.Epsilon <= 0 || p.Epsilon > 1 {
		return fmt.Errorf("anisotropy factor must be in (0,1], got %g", p.Epsilon)
	}
	if p.DeltaM <= 0 {
		return fmt.Errorf("ejected mass must be positive, got %g", p.DeltaM)
	}
	if p.Distance <= 0 {
		return fmt.Errorf("distance must be positive, got %g", p.Distance)
	}
	if p.VEj <= 0 || p.VEj >= C {
		return fmt.Errorf("ejecta velocity must be in (0,c), got %g", p.VEj)
	}
	return nil
}
