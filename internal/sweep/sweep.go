// Package sweep evaluates the memory relation over a black hole mass
// grid and reports the extremal strain values.
package sweep

import (
	"context"
	"fmt"
	"math"

	"github.com/akathpalia/kmrsim/internal/kmr"
)

// Result holds the index-aligned mass grid and strain curve, plus the
// min/max reduction over the curve. len(Masses) == len(Strains), and
// equal indices refer to the same physical mass.
type Result struct {
	Masses  []float64
	Strains []float64
	Min     float64
	Max     float64
}

// Range formats the diagnostic min/max report in scientific notation.
func (r *Result) Range() string {
	return fmt.Sprintf("Δh range: %.3e – %.3e", r.Min, r.Max)
}

// Run evaluates the strain model at every grid point in order. The
// mapping is index-stable: one result per mass, no skipping, no
// reordering. Parameters are validated before any evaluation.
func Run(ctx context.Context, p kmr.Params, g GridSpec) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	masses := g.Masses()
	strains := make([]float64, len(masses))

	for i, m := range masses {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		strains[i] = kmr.Strain(m, p)
	}

	res := &Result{Masses: masses, Strains: strains}
	res.Min, res.Max = minMax(strains)
	return res, nil
}

func minMax(vals []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
