package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// DomainData holds a cost surface sampled on a regular (θ, k) grid
type DomainData struct {
	Thetas []float64   // degrees, column coordinates
	Ks     []float64   // stress ratio, row coordinates
	Costs  [][]float64 // Costs[i][j] at (Thetas[j], Ks[i])

	// Optional optimum to highlight
	HasBest   bool
	BestTheta float64
	BestK     float64
}

// Series is one named curve
type Series struct {
	Name   string
	Values []float64
}

// ProfileData holds curves sharing the same θ axis
type ProfileData struct {
	Title  string
	Thetas []float64 // degrees
	Series []Series

	// Quantity plotted, "cost" when empty
	Quantity string
}

func (d ProfileData) quantity() string {
	if d.Quantity == "" {
		return "cost"
	}
	return d.Quantity
}

// shades from best (low cost) to worst (high cost)
const shades = "@%#*+=-:. "

// Maximum size of the ASCII domain map
const (
	mapColumns = 60
	mapRows    = 20
)

// DrawDomainMap renders the cost surface as shaded text, θ horizontal and
// k vertical (k = 1 on top). Low costs are dark. The optimum is marked X.
func DrawDomainMap(data DomainData) string {
	var sb strings.Builder

	rows, cols := len(data.Ks), len(data.Thetas)
	if rows == 0 || cols == 0 {
		return ""
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range data.Costs {
		for _, c := range row {
			lo = math.Min(lo, c)
			hi = math.Max(hi, c)
		}
	}
	span := hi - lo
	if span <= 0 {
		span = 1
	}

	width := min(cols, mapColumns)
	height := min(rows, mapRows)

	// Locate the optimum cell in the downsampled map
	bestRow, bestCol := -1, -1
	if data.HasBest {
		bestCol = int(math.Round(data.BestTheta / 180 * float64(width-1)))
		bestRow = int(math.Round(data.BestK * float64(height-1)))
	}

	sb.WriteString("\n")
	sb.WriteString("  COST DOMAIN (θ → , k ↑)\n")
	sb.WriteString("  ───────────────────────\n\n")

	for r := height - 1; r >= 0; r-- {
		i := sample(r, height, rows)
		k := data.Ks[i]
		sb.WriteString(fmt.Sprintf("  %5.2f │", k))
		for c := 0; c < width; c++ {
			if r == bestRow && c == bestCol {
				sb.WriteByte('X')
				continue
			}
			j := sample(c, width, cols)
			level := int((data.Costs[i][j] - lo) / span * float64(len(shades)-1))
			sb.WriteByte(shades[level])
		}
		sb.WriteString("│\n")
	}

	sb.WriteString("        └" + strings.Repeat("─", width) + "┘\n")
	sb.WriteString(fmt.Sprintf("         %-*s%s\n", width-3, "0°", "180°"))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString(fmt.Sprintf("  '%c' = cost %.3f (best)   '%c' = cost %.3f (worst)\n", shades[0], lo, shades[len(shades)-1], hi))
	if data.HasBest {
		sb.WriteString(fmt.Sprintf("  X = optimum at θ = %.1f°, k = %.3f\n", data.BestTheta, data.BestK))
	}

	return sb.String()
}

// sample maps cell c of an n-cell axis onto an index of a total-length axis
func sample(c, n, total int) int {
	if n <= 1 {
		return 0
	}
	return int(math.Round(float64(c) / float64(n-1) * float64(total-1)))
}

// DrawCostProfile plots each series against θ with asciigraph.
// It is used for cost curves and for traction curves alike.
func DrawCostProfile(data ProfileData) string {
	var sb strings.Builder

	if len(data.Series) == 0 || len(data.Thetas) == 0 {
		return ""
	}

	curves := make([][]float64, len(data.Series))
	for i, s := range data.Series {
		curves[i] = s.Values
	}

	caption := fmt.Sprintf("%s vs θ from %.0f° to %.0f°", data.quantity(), data.Thetas[0], data.Thetas[len(data.Thetas)-1])
	sb.WriteString("\n")
	if data.Title != "" {
		sb.WriteString("  " + strings.ToUpper(data.Title) + "\n")
		sb.WriteString("  " + strings.Repeat("─", len([]rune(data.Title))) + "\n\n")
	}
	sb.WriteString(asciigraph.PlotMany(curves,
		asciigraph.Height(12),
		asciigraph.Width(min(len(data.Thetas), 72)),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	))
	sb.WriteString("\n\n")

	// Legend
	sb.WriteString("  Series:\n")
	for i, s := range data.Series {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, s.Name))
	}

	return sb.String()
}

// DrawConvergence plots the best cost after each improvement
func DrawConvergence(costs []float64) string {
	if len(costs) == 0 {
		return ""
	}
	if len(costs) == 1 {
		costs = []float64{costs[0], costs[0]}
	}
	return asciigraph.Plot(costs,
		asciigraph.Height(8),
		asciigraph.Precision(3),
		asciigraph.Caption("best cost per improvement"),
	)
}
