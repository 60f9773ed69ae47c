package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gostress/internal/diagram"
	"github.com/alexiusacademia/gostress/internal/stress"
	"github.com/spf13/cobra"
)

var (
	tractionTheta  float64
	tractionK      float64
	tractionStep   float64
	tractionOutput string
)

var tractionCmd = &cobra.Command{
	Use:   "traction",
	Short: "Tabulate normal and shear stress on a rotating plane",
	Long: `Resolve the remote stress (θ, k) on a plane whose normal sweeps 0° to 90°
from the x axis, and print the normal and shear stress for each angle.

With the defaults (θ = 0, k = 0) the stress is a pure vertical load
|0 0; 0 1|: the normal stress grows from 0 to 1 and the shear peaks
at 45°.

Examples:
  gostress traction
  gostress traction --theta 30 --k 0.5 --step 10 -o traction.svg`,
	RunE: runTraction,
}

func init() {
	rootCmd.AddCommand(tractionCmd)

	tractionCmd.Flags().Float64Var(&tractionTheta, "theta", 0, "Remote stress orientation in degrees")
	tractionCmd.Flags().Float64Var(&tractionK, "k", 0, "Stress ratio")
	tractionCmd.Flags().Float64Var(&tractionStep, "step", 5, "Plane angle increment in degrees")
	tractionCmd.Flags().StringVarP(&tractionOutput, "output", "o", "", "Export chart (png, svg, pdf)")
}

func runTraction(cmd *cobra.Command, args []string) error {
	if tractionStep <= 0 || tractionStep > 90 {
		return fmt.Errorf("--step must be in (0, 90], got %g", tractionStep)
	}
	if tractionK < 0 || tractionK > 1 {
		return fmt.Errorf("--k must be in [0, 1], got %g", tractionK)
	}

	tensor := stress.NewTensor(tractionTheta, tractionK)

	data := diagram.ProfileData{
		Title:    fmt.Sprintf("Normal and shear stress on a plane (θ = %.0f°, k = %.2f)", tractionTheta, tractionK),
		Quantity: "stress",
		Series: []diagram.Series{
			{Name: "normal"},
			{Name: "shear"},
		},
	}
	for angle := 0.0; angle <= 90+1e-9; angle += tractionStep {
		normal, shear := tensor.Traction(angle)
		data.Thetas = append(data.Thetas, angle)
		data.Series[0].Values = append(data.Series[0].Values, normal)
		data.Series[1].Values = append(data.Series[1].Values, shear)
	}

	out := cmd.OutOrStdout()
	printHeader(out, "PLANE TRACTION")

	printSection(out, "REMOTE STRESS")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  xx:\t%.4f\n", tensor.XX)
	fmt.Fprintf(w, "  xy:\t%.4f\n", tensor.XY)
	fmt.Fprintf(w, "  yy:\t%.4f\n", tensor.YY)
	w.Flush()
	fmt.Fprintln(out)

	printSection(out, "TRACTION")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "  Plane (°)\tNormal\tShear\t")
	for i, angle := range data.Thetas {
		fmt.Fprintf(w, "  %.1f\t%.4f\t%.4f\t\n", angle, data.Series[0].Values[i], data.Series[1].Values[i])
	}
	w.Flush()

	fmt.Fprint(out, diagram.DrawCostProfile(data))
	fmt.Fprintln(out)

	if tractionOutput != "" {
		if err := diagram.ExportCostProfile(data, tractionOutput); err != nil {
			return fmt.Errorf("exporting traction chart: %w", err)
		}
		fmt.Fprintf(out, "Traction chart exported to: %s\n", tractionOutput)
	}
	return nil
}
