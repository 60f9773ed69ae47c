package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gostress/internal/diagram"
	"github.com/alexiusacademia/gostress/internal/geometry"
	"github.com/alexiusacademia/gostress/internal/structure"
	"github.com/spf13/cobra"
)

var (
	profileK      float64
	profileStep   float64
	profileTypes  []string
	profileAngle  float64
	profileOutput string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Plot the cost of one structure as the remote stress rotates",
	Long: `Evaluate the cost of a single structure of each given type while the
remote stress orientation θ sweeps 0° to 90°.

The structure direction is given by --angle (degrees from the x axis,
default 90 = vertical). With the default k = 0 a joint fits perfectly
at θ = 0 and a stylolite at θ = 90.

Examples:
  gostress profile
  gostress profile --types joint,stylolite,dike --step 1 -o profile.svg`,
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmd.Flags().Float64Var(&profileK, "k", 0, "Stress ratio")
	profileCmd.Flags().Float64Var(&profileStep, "step", 5, "θ increment in degrees")
	profileCmd.Flags().Float64Var(&profileAngle, "angle", 90, "Structure direction in degrees")
	profileCmd.Flags().StringSliceVar(&profileTypes, "types", []string{"joint", "stylolite"}, "Structure types to plot")
	profileCmd.Flags().StringVarP(&profileOutput, "output", "o", "", "Export chart (png, svg, pdf)")
}

func runProfile(cmd *cobra.Command, args []string) error {
	if profileStep <= 0 || profileStep > 90 {
		return fmt.Errorf("--step must be in (0, 90], got %g", profileStep)
	}
	if profileK < 0 || profileK > 1 {
		return fmt.Errorf("--k must be in [0, 1], got %g", profileK)
	}

	var thetas []float64
	for theta := 0.0; theta <= 90+1e-9; theta += profileStep {
		thetas = append(thetas, theta)
	}

	rad := profileAngle * math.Pi / 180
	direction := geometry.Vector{X: math.Cos(rad), Y: math.Sin(rad)}

	data := diagram.ProfileData{
		Title:  fmt.Sprintf("Cost functions for a structure at %.0f° (k = %.2f)", profileAngle, profileK),
		Thetas: thetas,
	}
	for _, name := range profileTypes {
		b, err := structure.Lookup(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		costs, err := structure.Profile(b, direction, profileK, thetas)
		if err != nil {
			return err
		}
		data.Series = append(data.Series, diagram.Series{Name: name, Values: costs})
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, diagram.DrawCostProfile(data))
	fmt.Fprintln(out)

	if profileOutput != "" {
		if err := diagram.ExportCostProfile(data, profileOutput); err != nil {
			return fmt.Errorf("exporting profile: %w", err)
		}
		fmt.Fprintf(out, "Profile exported to: %s\n", profileOutput)
	}
	return nil
}
