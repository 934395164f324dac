package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/eigenlab/internal/config"
	"github.com/san-kum/eigenlab/internal/export"
	"github.com/san-kum/eigenlab/internal/spectral"
	"github.com/san-kum/eigenlab/internal/storage"
	"github.com/san-kum/eigenlab/internal/sweep"
	"github.com/san-kum/eigenlab/internal/viz"
)

var (
	dataDir    string
	configFile string
	matrixFlag string
	dim        int
	saveRun    bool
	// Sweep parameters
	sweepRow   int
	sweepCol   int
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	// SVG output
	outFile string
	svgSize int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "eigenlab",
		Short: "closed-form eigen-decomposition and invariant-space lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive editor when no command given.
			cfg, _, err := resolveConfig(nil)
			if err != nil {
				return err
			}
			return viz.RunInteractive(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".eigenlab", "data directory")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [preset]",
		Short: "decompose a matrix and list its invariant lines and planes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVarP(&matrixFlag, "matrix", "m", "", "row-major coefficients, comma separated")
	analyzeCmd.Flags().IntVar(&dim, "dim", 3, "matrix dimension (2 or 3)")
	analyzeCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	analyzeCmd.Flags().BoolVar(&saveRun, "save", false, "save the analysis to the data directory")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "interactive matrix editor with live decomposition",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := resolveConfig(args)
			if err != nil {
				return err
			}
			return viz.RunInteractive(cfg)
		},
	}
	liveCmd.Flags().StringVarP(&matrixFlag, "matrix", "m", "", "row-major coefficients, comma separated")
	liveCmd.Flags().IntVar(&dim, "dim", 3, "matrix dimension (2 or 3)")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	sweepCmd := &cobra.Command{
		Use:   "sweep [preset]",
		Short: "sweep one coefficient and plot the eigenvalue traces",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVarP(&matrixFlag, "matrix", "m", "", "row-major coefficients, comma separated")
	sweepCmd.Flags().IntVar(&dim, "dim", 3, "matrix dimension (2 or 3)")
	sweepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sweepCmd.Flags().IntVar(&sweepRow, "row", 0, "swept entry row")
	sweepCmd.Flags().IntVar(&sweepCol, "col", 0, "swept entry column")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", config.DefaultSweepMin, "sweep start")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", config.DefaultSweepMax, "sweep end")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", config.DefaultSweepSteps, "sweep steps")

	renderCmd := &cobra.Command{
		Use:   "render [preset]",
		Short: "render the invariant objects to SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&matrixFlag, "matrix", "m", "", "row-major coefficients, comma separated")
	renderCmd.Flags().IntVar(&dim, "dim", 3, "matrix dimension (2 or 3)")
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	renderCmd.Flags().IntVar(&svgSize, "size", 480, "image size in pixels")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved analyses",
		RunE:  runList,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved analysis to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(dataDir)
			meta, err := st.Load(args[0])
			if err != nil {
				return err
			}
			objs, err := st.LoadObjects(args[0])
			if err != nil {
				return err
			}
			return export.WriteJSON(os.Stdout, meta, objs)
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved analysis to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(dataDir)
			objs, err := st.LoadObjects(args[0])
			if err != nil {
				return err
			}
			return export.WriteCSV(os.Stdout, objs)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available matrix presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDIM")
			for _, name := range config.ListPresets() {
				fmt.Fprintf(w, "%s\t%d\n", name, config.GetPreset(name).Dim)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(analyzeCmd, liveCmd, sweepCmd, renderCmd, listCmd, showCmd, exportJSONCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig builds the matrix config from, in priority order: a preset
// argument, a yaml config file, the --matrix flag, or the defaults.
func resolveConfig(args []string) (*config.Config, string, error) {
	if len(args) > 0 {
		cfg := config.GetPreset(args[0])
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
		return cfg, args[0], nil
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, "", err
		}
		return cfg, "config", nil
	}

	if matrixFlag != "" {
		cfg, err := parseMatrixFlag(matrixFlag, dim)
		if err != nil {
			return nil, "", err
		}
		return cfg, "custom", nil
	}

	return config.DefaultConfig(), "default", nil
}

func parseMatrixFlag(flag string, dim int) (*config.Config, error) {
	parts := strings.Split(flag, ",")
	if len(parts) != dim*dim {
		return nil, fmt.Errorf("expected %d coefficients for a %d×%d matrix, got %d", dim*dim, dim, dim, len(parts))
	}

	cfg := &config.Config{Dim: dim, Sweep: config.DefaultConfig().Sweep}
	cfg.Matrix = make([][]float64, dim)
	for r := 0; r < dim; r++ {
		cfg.Matrix[r] = make([]float64, dim)
		for c := 0; c < dim; c++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(parts[r*dim+c]), 64)
			if err != nil {
				return nil, fmt.Errorf("bad coefficient %q: %w", parts[r*dim+c], err)
			}
			cfg.Matrix[r][c] = v
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func analyzeConfig(cfg *config.Config) (spectral.Analysis, error) {
	if cfg.Dim == 2 {
		m, err := cfg.Mat2()
		if err != nil {
			return spectral.Analysis{}, err
		}
		return spectral.Analyze2(m), nil
	}
	m, err := cfg.Mat3()
	if err != nil {
		return spectral.Analysis{}, err
	}
	return spectral.Analyze3(m), nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, name, err := resolveConfig(args)
	if err != nil {
		return err
	}

	a, err := analyzeConfig(cfg)
	if err != nil {
		return err
	}

	fmt.Print(viz.RenderMatrix(cfg.Matrix, 0, 0, false))
	fmt.Println()
	fmt.Print(viz.RenderAnalysis(a))

	if len(a.Pairs) > 0 {
		fmt.Println()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "EIGENVALUE\tEIGENVECTOR")
		for _, p := range a.Pairs {
			fmt.Fprintf(w, "%.6f\t(%.4f, %.4f, %.4f)\n", p.Value, p.Vector[0], p.Vector[1], p.Vector[2])
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(name, cfg.Matrix, a)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, name, err := resolveConfig(args)
	if err != nil {
		return err
	}

	spec := sweep.Spec{
		Row:   cfg.Sweep.Row,
		Col:   cfg.Sweep.Col,
		Min:   cfg.Sweep.Min,
		Max:   cfg.Sweep.Max,
		Steps: cfg.Sweep.Steps,
	}
	// CLI flags override config values.
	if cmd.Flags().Changed("row") {
		spec.Row = sweepRow
	}
	if cmd.Flags().Changed("col") {
		spec.Col = sweepCol
	}
	if cmd.Flags().Changed("min") {
		spec.Min = sweepMin
	}
	if cmd.Flags().Changed("max") {
		spec.Max = sweepMax
	}
	if cmd.Flags().Changed("steps") {
		spec.Steps = sweepSteps
	}

	var points []sweep.Point
	if cfg.Dim == 2 {
		m, err := cfg.Mat2()
		if err != nil {
			return err
		}
		points, err = sweep.Run2(m, spec)
		if err != nil {
			return err
		}
	} else {
		m, err := cfg.Mat3()
		if err != nil {
			return err
		}
		points, err = sweep.Run3(m, spec)
		if err != nil {
			return err
		}
	}

	fmt.Printf("sweeping %s entry (%d,%d) over [%g, %g]\n\n", name, spec.Row, spec.Col, spec.Min, spec.Max)
	fmt.Println(viz.PlotSweep(points, "real parts of eigenvalues"))
	fmt.Println()

	// Report where the spectrum changes character.
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARAM\tREAL\tLINES\tPLANES")
	prev := sweep.Point{Reals: -1}
	for _, p := range points {
		if p.Reals != prev.Reals || p.Lines != prev.Lines || p.Planes != prev.Planes {
			fmt.Fprintf(w, "%.4f\t%d\t%d\t%d\n", p.Param, p.Reals, p.Lines, p.Planes)
		}
		prev = p
	}
	return w.Flush()
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(args)
	if err != nil {
		return err
	}

	a, err := analyzeConfig(cfg)
	if err != nil {
		return err
	}

	svg := export.SceneToSVG(a.Objects, svgSize)
	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(outFile, []byte(svg), 0644)
}

func runList(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no saved analyses")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tDIM\tREAL λ\tLINES\tPLANES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Dim,
			len(run.RealEigenvalues),
			run.Lines,
			run.Planes,
		)
	}
	return w.Flush()
}

func runShow(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	objs, err := st.LoadObjects(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("saved: %s\n\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Print(viz.RenderMatrix(meta.Matrix, 0, 0, false))
	fmt.Println()
	if meta.UniformScaling {
		fmt.Println("uniform scaling: every line is invariant, nothing to draw")
		return nil
	}
	fmt.Print(viz.RenderObjects(objs, false))
	return nil
}
