package cmd

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/alexiusacademia/gostress/internal/diagram"
	"github.com/alexiusacademia/gostress/internal/solver"
	"github.com/spf13/cobra"
)

var (
	domainConfigFile string
	domainSources    []string
	domainBudget     int
	domainWorkers    int
	domainOutput     string
)

var domainCmd = &cobra.Command{
	Use:   "domain",
	Short: "Map the cost over the whole (θ, k) domain",
	Long: `Evaluate the aggregate cost on a regular budget×budget grid
(θ in [0, 180], k in [0, 1]) and draw it as a shaded map.

Examples:
  gostress domain -d joints.txt:joint -d stylolites.txt:stylolite

  # Finer grid exported as an image
  gostress domain -n 120 -w 4 -d joints.txt:joint -o domain.png`,
	RunE: runDomain,
}

func init() {
	rootCmd.AddCommand(domainCmd)

	addSourceFlags(domainCmd, &domainConfigFile, &domainSources)
	domainCmd.Flags().IntVarP(&domainBudget, "budget", "n", solver.DefaultGridBudget, "Samples per axis")
	domainCmd.Flags().IntVarP(&domainWorkers, "workers", "w", 1, "Concurrent cost evaluations")
	domainCmd.Flags().StringVarP(&domainOutput, "output", "o", "", "Export heat map (png, svg, pdf)")
}

func runDomain(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(domainConfigFile, domainSources)
	if err != nil {
		return err
	}
	// Command line flags override the run file
	flags := cmd.Flags()
	if flags.Changed("budget") || cfg.Budget == 0 {
		cfg.Budget = domainBudget
	}
	if flags.Changed("workers") || cfg.Workers == 0 {
		cfg.Workers = domainWorkers
	}

	logger := slog.Default()
	ds, err := loadDataset(cfg, logger)
	if err != nil {
		return err
	}

	surface, err := solver.Domain(ds.Data(), cfg.Budget, solver.Options{Workers: cfg.Workers, Logger: logger})
	if err != nil {
		return err
	}
	best, cost, index := surface.Min()
	lo, hi := surface.Range()

	data := diagram.DomainData{
		Thetas:    surface.Thetas,
		Ks:        surface.Ks,
		Costs:     surface.Costs,
		HasBest:   true,
		BestTheta: best.Theta,
		BestK:     best.K,
	}

	out := cmd.OutOrStdout()
	printHeader(out, "REMOTE STRESS COST DOMAIN")
	printDataSummary(out, cfg, ds)

	printSection(out, "GRID")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Size:\t%d × %d\n", cfg.Budget, cfg.Budget)
	fmt.Fprintf(w, "  Cost range:\t%.3f to %.3f\n", lo, hi)
	fmt.Fprintf(w, "  Minimum:\tθ = %.1f°, k = %.3f, cost = %.3f (iter %d)\n", best.Theta, best.K, cost, index)
	w.Flush()

	fmt.Fprint(out, diagram.DrawDomainMap(data))
	fmt.Fprintln(out)

	if domainOutput != "" {
		if err := diagram.ExportDomainHeatmap(data, domainOutput); err != nil {
			return fmt.Errorf("exporting heat map: %w", err)
		}
		fmt.Fprintf(out, "Heat map exported to: %s\n", domainOutput)
	}
	return nil
}
