package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alexiusacademia/gostress/internal/diagram"
	"github.com/alexiusacademia/gostress/internal/solver"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	// Inversion inputs
	invertConfigFile string
	invertSources    []string
	invertSolver     string
	invertBudget     int
	invertSeed       int64
	invertWorkers    int

	// Output options
	invertConvergence bool
)

var invertCmd = &cobra.Command{
	Use:   "invert",
	Short: "Find the remote stress (θ, k) that best explains the data",
	Long: `Search the (θ, k) domain for the remote stress of least misfit with
the observed structures.

Strategies:
  mc       - Monte Carlo sampling, budget = number of samples (default 5000)
  regular  - Regular grid, budget = samples per axis (default 50)

Each improvement of the running best is logged at info level.

Examples:
  # Monte Carlo inversion of joints and stylolites
  gostress invert -d matelles-joints.txt:joint -d matelles-stylolites.txt:stylolite

  # Reproducible regular grid with 4 workers
  gostress invert -s regular -n 100 -w 4 -d joints.txt:joint

  # Everything from a run file
  gostress invert --config run.yaml --convergence`,
	RunE: runInvert,
}

func init() {
	rootCmd.AddCommand(invertCmd)

	addSourceFlags(invertCmd, &invertConfigFile, &invertSources)

	// Search flags
	invertCmd.Flags().StringVarP(&invertSolver, "solver", "s", "mc", "Search strategy (see 'gostress list')")
	invertCmd.Flags().IntVarP(&invertBudget, "budget", "n", 0, "Iteration budget (0 = strategy default)")
	invertCmd.Flags().Int64Var(&invertSeed, "seed", 0, "Random seed (0 = derive from the clock)")
	invertCmd.Flags().IntVarP(&invertWorkers, "workers", "w", 1, "Concurrent cost evaluations")

	// Output flags
	invertCmd.Flags().BoolVar(&invertConvergence, "convergence", false, "Show ASCII convergence chart")
}

func runInvert(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(invertConfigFile, invertSources)
	if err != nil {
		return err
	}

	// Command line flags override the run file
	flags := cmd.Flags()
	if flags.Changed("solver") || cfg.Solver == "" {
		cfg.Solver = invertSolver
	}
	if flags.Changed("budget") || cfg.Budget == 0 {
		cfg.Budget = invertBudget
	}
	if flags.Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = invertSeed
	}
	if flags.Changed("workers") || cfg.Workers == 0 {
		cfg.Workers = invertWorkers
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	runID := uuid.NewString()
	logger := slog.Default().With("run_id", runID)

	ds, err := loadDataset(cfg, logger)
	if err != nil {
		return err
	}

	var improvements []float64
	opts := solver.Options{
		Seed:    cfg.Seed,
		Workers: cfg.Workers,
		Logger:  logger,
		Observer: func(p solver.Progress) {
			improvements = append(improvements, p.Cost)
			logger.Info("improved", "iter", p.Iteration, "theta", p.Point.Theta, "k", p.Point.K, "cost", p.Cost)
		},
	}
	s, err := solver.New(cfg.Solver, opts)
	if err != nil {
		return err
	}
	budget := cfg.Budget
	if budget == 0 {
		budget = s.DefaultBudget()
	}

	res, err := s.Run(ds.Data(), budget)
	if err != nil {
		return err
	}

	// Print results
	out := cmd.OutOrStdout()
	printHeader(out, "REMOTE STRESS INVERSION - "+strings.ToUpper(s.Name()))
	printDataSummary(out, cfg, ds)

	printSection(out, "SEARCH")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Run ID:\t%s\n", runID)
	fmt.Fprintf(w, "  Strategy:\t%s\n", s.Name())
	fmt.Fprintf(w, "  Budget:\t%d\n", budget)
	fmt.Fprintf(w, "  Evaluations:\t%d\n", res.Evaluations)
	fmt.Fprintf(w, "  Seed:\t%d\n", cfg.Seed)
	fmt.Fprintf(w, "  Workers:\t%d\n", cfg.Workers)
	fmt.Fprintf(w, "  Improvements:\t%d\n", len(improvements))
	w.Flush()
	fmt.Fprintln(out)

	printSolution(out, res.Solution())

	if invertConvergence {
		printSection(out, "CONVERGENCE")
		fmt.Fprintln(out, diagram.DrawConvergence(improvements))
		fmt.Fprintln(out)
	}

	logger.Info("inversion finished", "theta", res.Best.Theta, "k", res.Best.K, "cost", res.Cost, "iter", res.Iteration)
	return nil
}

// printSolution prints the rounded final record
func printSolution(out io.Writer, sol solver.Solution) {
	printSection(out, "SOLUTION")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  nb data:\t%d\n", sol.DataCount)
	fmt.Fprintf(w, "  iter:\t%d / %d\n", sol.Iteration, sol.Budget)
	fmt.Fprintf(w, "  theta:\t%d°\n", sol.Theta)
	fmt.Fprintf(w, "  k:\t%.3f\n", sol.K)
	fmt.Fprintf(w, "  cost:\t%.3f\n", sol.Cost)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  ╔═════════════════════════════════════════╗\n")
	fmt.Fprintf(out, "  ║  θ = %d°   k = %.3f   cost = %.3f\n", sol.Theta, sol.K, sol.Cost)
	fmt.Fprintf(out, "  ╚═════════════════════════════════════════╝\n")
	fmt.Fprintln(out)
}
