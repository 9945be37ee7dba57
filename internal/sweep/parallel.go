package sweep

import (
	"context"
	"runtime"
	"sync"

	"github.com/akathpalia/kmrsim/internal/kmr"
)

// RunParallel evaluates the grid across workers. Each evaluation is
// pure and writes only its own index, so the output is bit-identical
// to the sequential Run regardless of scheduling.
func RunParallel(ctx context.Context, p kmr.Params, g GridSpec, workers int) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	masses := g.Masses()
	strains := make([]float64, len(masses))

	var wg sync.WaitGroup
	chunk := (len(masses) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= len(masses) {
			break
		}
		end := start + chunk
		if end > len(masses) {
			end = len(masses)
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				strains[i] = kmr.Strain(masses[i], p)
			}
		}(start, end)
	}

	wg.Wait()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	res := &Result{Masses: masses, Strains: strains}
	res.Min, res.Max = minMax(strains)
	return res, nil
}
