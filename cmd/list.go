package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gostress/internal/solver"
	"github.com/alexiusacademia/gostress/internal/stress"
	"github.com/alexiusacademia/gostress/internal/structure"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the structure types and search strategies",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		// A fixed reference state shows which principal axis each type follows
		eigen := stress.Principal(0, 0)

		printSection(out, "STRUCTURE TYPES")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, name := range structure.Default.Names() {
			b, err := structure.Lookup(name)
			if err != nil {
				return err
			}
			axis := structure.S3
			if b.Predict(eigen) == eigen.S1 {
				axis = structure.S1
			}
			fmt.Fprintf(w, "  %s\taligned with %s\n", name, axis)
		}
		w.Flush()
		fmt.Fprintln(out)

		printSection(out, "SEARCH STRATEGIES")
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, name := range solver.Default.Names() {
			s, err := solver.New(name, solver.Options{})
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  %s\t%s\tdefault budget %d\n", name, s.Name(), s.DefaultBudget())
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
