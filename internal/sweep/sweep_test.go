package sweep_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/akathpalia/kmrsim/internal/kmr"
	"github.com/akathpalia/kmrsim/internal/sweep"
)

var _ = Describe("LogSpace", func() {
	It("hits both endpoints of the default decade range", func() {
		grid := sweep.DefaultGrid().Masses()

		Expect(grid).To(HaveLen(200))
		Expect(grid[0]).To(BeNumerically("~", 1e20, 1e11))
		Expect(grid[199]).To(BeNumerically("~", 1e25, 1e16))
	})

	It("is strictly increasing", func() {
		grid := sweep.DefaultGrid().Masses()
		for i := 1; i < len(grid); i++ {
			Expect(grid[i]).To(BeNumerically(">", grid[i-1]))
		}
	})

	It("is deterministic for the same spec", func() {
		a := sweep.LogSpace(20, 25, 200)
		b := sweep.LogSpace(20, 25, 200)
		Expect(a).To(Equal(b))
	})
})

var _ = Describe("GridSpec validation", func() {
	It("rejects fewer than two points", func() {
		g := sweep.GridSpec{LowExp: 20, HighExp: 25, Points: 1}
		Expect(g.Validate()).To(HaveOccurred())
	})

	It("rejects non-increasing bounds", func() {
		g := sweep.GridSpec{LowExp: 25, HighExp: 20, Points: 200}
		Expect(g.Validate()).To(HaveOccurred())
	})

	It("accepts the default spec", func() {
		Expect(sweep.DefaultGrid().Validate()).To(Succeed())
	})
})

var _ = Describe("Run", func() {
	var (
		params kmr.Params
		grid   sweep.GridSpec
	)

	BeforeEach(func() {
		params = kmr.DefaultParams()
		grid = sweep.DefaultGrid()
	})

	It("produces one strain per grid point, index-aligned", func() {
		res, err := sweep.Run(context.Background(), params, grid)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Strains).To(HaveLen(len(res.Masses)))

		for i, m := range res.Masses {
			Expect(res.Strains[i]).To(Equal(kmr.Strain(m, params)))
		}
	})

	It("reproduces the fiducial min/max reductions", func() {
		res, err := sweep.Run(context.Background(), params, grid)
		Expect(err).NotTo(HaveOccurred())

		// h grows as M^(2/3), so the extrema sit at the grid endpoints.
		Expect(res.Min).To(BeNumerically("~", 5.212359629792965e-24, 5.3e-33))
		Expect(res.Max).To(BeNumerically("~", 1.122968840334772e-20, 1.2e-29))
		Expect(res.Min).To(Equal(res.Strains[0]))
		Expect(res.Max).To(Equal(res.Strains[len(res.Strains)-1]))
	})

	It("yields a strictly increasing curve at the fiducial parameters", func() {
		res, err := sweep.Run(context.Background(), params, grid)
		Expect(err).NotTo(HaveOccurred())

		for i := 1; i < len(res.Strains); i++ {
			Expect(res.Strains[i]).To(BeNumerically(">", res.Strains[i-1]))
		}
	})

	It("rejects invalid parameters before evaluating", func() {
		params.Epsilon = 2.0
		_, err := sweep.Run(context.Background(), params, grid)
		Expect(err).To(MatchError(ContainSubstring("anisotropy")))
	})

	It("rejects an invalid grid", func() {
		grid.Points = 0
		_, err := sweep.Run(context.Background(), params, grid)
		Expect(err).To(HaveOccurred())
	})

	It("honors context cancellation", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := sweep.Run(ctx, params, grid)
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("RunParallel", func() {
	It("matches the sequential result bit for bit", func() {
		params := kmr.DefaultParams()
		grid := sweep.DefaultGrid()

		seq, err := sweep.Run(context.Background(), params, grid)
		Expect(err).NotTo(HaveOccurred())

		for _, workers := range []int{1, 3, 8} {
			par, err := sweep.RunParallel(context.Background(), params, grid, workers)
			Expect(err).NotTo(HaveOccurred())
			Expect(par.Strains).To(Equal(seq.Strains))
			Expect(par.Min).To(Equal(seq.Min))
			Expect(par.Max).To(Equal(seq.Max))
		}
	})

	It("handles more workers than grid points", func() {
		grid := sweep.GridSpec{LowExp: 20, HighExp: 25, Points: 4}
		res, err := sweep.RunParallel(context.Background(), kmr.DefaultParams(), grid, 16)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Strains).To(HaveLen(4))
	})
})
