package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"text/tabwriter"

	"github.com/alexiusacademia/gostress/internal/config"
	"github.com/alexiusacademia/gostress/internal/structure"
	"github.com/spf13/cobra"
)

const rule = "═══════════════════════════════════════════════════════════════"
const subRule = "───────────────────────────────────────────────────────────────"

var errNoSources = errors.New("no structure data given (use --data file:type or --config run.yaml)")

// addSourceFlags registers the data input flags shared by invert and domain
func addSourceFlags(c *cobra.Command, configFile *string, sources *[]string) {
	c.Flags().StringVarP(configFile, "config", "c", "", "YAML run file (solver, budget, seed, sources, types)")
	c.Flags().StringArrayVarP(sources, "data", "d", nil, "Structure data source as file:type, repeatable (e.g. joints.txt:joint)")
}

// resolveConfig merges the optional run file with --data sources
func resolveConfig(configFile string, sources []string) (*config.Config, error) {
	cfg := &config.Config{}
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}
	for _, spec := range sources {
		src, err := config.ParseSource(spec)
		if err != nil {
			return nil, err
		}
		cfg.Sources = append(cfg.Sources, src)
	}
	if len(cfg.Sources) == 0 {
		return nil, errNoSources
	}
	return cfg, nil
}

// loadDataset registers the run's custom types and loads every source.
// The first failing source aborts the load.
func loadDataset(cfg *config.Config, logger *slog.Logger) (*structure.Dataset, error) {
	reg := structure.NewDefaultRegistry()
	if err := cfg.RegisterTypes(reg); err != nil {
		return nil, err
	}

	ds := structure.NewDataset(reg)
	for i, src := range cfg.Sources {
		n, err := ds.LoadFile(src.File, src.Type)
		if err != nil {
			return nil, fmt.Errorf("source %d (%s): %w", i+1, src.Type, err)
		}
		logger.Info("structure data loaded", "file", src.File, "type", src.Type, "count", n)
	}
	return ds, nil
}

// printHeader prints a boxed section title
func printHeader(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "     %s\n", title)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out)
}

// printSection prints a section label followed by a rule
func printSection(out io.Writer, title string) {
	fmt.Fprintf(out, "%s:\n", title)
	fmt.Fprintln(out, subRule)
}

// printDataSummary lists the sources and the count per structure type
func printDataSummary(out io.Writer, cfg *config.Config, ds *structure.Dataset) {
	printSection(out, "INPUT DATA")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, src := range cfg.Sources {
		fmt.Fprintf(w, "  %s:\t%s\n", src.Type, src.File)
	}
	counts := ds.Counts()
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintf(w, "  Number of %s data:\t%d\n", t, counts[t])
	}
	fmt.Fprintf(w, "  Total data:\t%d\n", ds.Len())
	w.Flush()
	fmt.Fprintln(out)
}
