package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/akathpalia/kmrsim/internal/analysis"
	"github.com/akathpalia/kmrsim/internal/config"
	"github.com/akathpalia/kmrsim/internal/export"
	"github.com/akathpalia/kmrsim/internal/storage"
	"github.com/akathpalia/kmrsim/internal/sweep"
	"github.com/akathpalia/kmrsim/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string

	epsilon   float64
	deltaM    float64
	distance  float64
	vEj       float64
	mStar     float64
	rStar     float64
	lowExp    float64
	highExp   float64
	points    int
	threshold float64

	parallel bool
	workers  int

	svgOut    string
	svgWidth  int
	svgHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kmrsim",
		Short: "gravitational-wave memory strain from TDEs near primordial black holes",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive explorer when no command given.
			return tui.Run(config.DefaultConfig())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".kmrsim", "data directory")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "evaluate the strain curve over the mass grid",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&epsilon, "epsilon", 0.02, "ejection anisotropy factor")
	sweepCmd.Flags().Float64Var(&deltaM, "delta-m", 2.0e30, "ejected mass [g]")
	sweepCmd.Flags().Float64Var(&distance, "distance", 3.1e26, "observer distance [cm]")
	sweepCmd.Flags().Float64Var(&vEj, "v-ej", 2.9979e9, "ejecta velocity [cm/s]")
	sweepCmd.Flags().Float64Var(&mStar, "m-star", 2.0e33, "stellar mass [g]")
	sweepCmd.Flags().Float64Var(&rStar, "r-star", 7.0e10, "stellar radius [cm]")
	sweepCmd.Flags().Float64Var(&lowExp, "low", 20, "low decade exponent of the mass grid")
	sweepCmd.Flags().Float64Var(&highExp, "high", 25, "high decade exponent of the mass grid")
	sweepCmd.Flags().IntVar(&points, "points", 200, "grid point count")
	sweepCmd.Flags().Float64Var(&threshold, "threshold", 1e-23, "detector sensitivity threshold")
	sweepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	sweepCmd.Flags().BoolVar(&parallel, "parallel", false, "evaluate the grid concurrently")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "worker count for --parallel (0 = NumCPU)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved sweeps",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a sweep curve to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a full sweep to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a sweep to an SVG figure",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&svgOut, "out", "o", "curve.svg", "output file")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "figure width [px]")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 600, "figure height [px]")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive parameter explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	exploreCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	exploreCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	rootCmd.AddCommand(sweepCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file, and changed flags, in that
// order of increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flagTargets := map[string]*float64{
		"epsilon":   &cfg.Epsilon,
		"delta-m":   &cfg.DeltaM,
		"distance":  &cfg.Distance,
		"v-ej":      &cfg.VEj,
		"m-star":    &cfg.MStar,
		"r-star":    &cfg.RStar,
		"low":       &cfg.MassLowExp,
		"high":      &cfg.MassHighExp,
		"threshold": &cfg.Threshold,
	}
	for name, target := range flagTargets {
		if cmd.Flags().Changed(name) {
			val, err := cmd.Flags().GetFloat64(name)
			if err != nil {
				return nil, err
			}
			*target = val
		}
	}
	if cmd.Flags().Changed("points") {
		cfg.GridCount = points
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	start := time.Now()

	var result *sweep.Result
	if parallel {
		result, err = sweep.RunParallel(context.Background(), cfg.Params(), cfg.Grid(), workers)
	} else {
		result, err = sweep.Run(context.Background(), cfg.Params(), cfg.Grid())
	}
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}

	fmt.Println(result.Range())

	_, peakMass, peakStrain := analysis.Peak(result.Masses, result.Strains)
	fmt.Printf("peak: Δh = %.3e at M = %.3e g\n", peakStrain, peakMass)

	if lo, hi, ok := analysis.DetectableBand(result.Masses, result.Strains, cfg.Threshold); ok {
		fmt.Printf("detectable above Δh = %.0e for M in [%.3e, %.3e] g\n", cfg.Threshold, lo, hi)
	} else {
		fmt.Printf("below Δh = %.0e over the whole grid\n", cfg.Threshold)
	}

	fmt.Printf("points: %d\n", len(result.Strains))
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tEPSILON\tDISTANCE\tGRID\tMIN\tMAX")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.3f\t%.2e\t10^%g–10^%g (%d)\t%.3e\t%.3e\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Config.Epsilon,
			run.Config.Distance,
			run.Config.MassLowExp,
			run.Config.MassHighExp,
			run.Config.GridCount,
			run.MinStrain,
			run.MaxStrain,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	masses, strains, err := st.LoadCurve(runID)
	if err != nil {
		return err
	}
	if len(strains) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("epsilon: %g, distance: %.2e cm, v_ej: %.2e cm/s\n",
		meta.Config.Epsilon, meta.Config.Distance, meta.Config.VEj)
	fmt.Printf("samples: %d\n\n", len(strains))

	// Plot in log10 so the power law reads as a straight line.
	data := make([]float64, len(strains))
	for i, h := range strains {
		data[i] = math.Log10(h)
	}

	caption := fmt.Sprintf("log10 strain vs PBH mass (10^%g–10^%g g), threshold 1e%.0f",
		meta.Config.MassLowExp, meta.Config.MassHighExp, math.Log10(meta.Config.Threshold))

	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	fmt.Println()

	if lo, hi, ok := analysis.DetectableBand(masses, strains, meta.Config.Threshold); ok {
		fmt.Printf("detectable for M in [%.3e, %.3e] g\n", lo, hi)
	} else {
		fmt.Println("below threshold everywhere")
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	masses, strains, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}
	if len(masses) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"mass", "strain"}); err != nil {
		return err
	}
	for i := range masses {
		row := []string{
			strconv.FormatFloat(masses[i], 'e', 12, 64),
			strconv.FormatFloat(strains[i], 'e', 12, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	masses, strains, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, masses, strains)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	masses, strains, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}

	if err := export.WriteCurveSVG(svgOut, masses, strains, meta.Config.Threshold, svgWidth, svgHeight); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", svgOut)
	return nil
}
