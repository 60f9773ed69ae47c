package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// domainGrid adapts DomainData to plotter.GridXYZ (columns = θ, rows = k)
type domainGrid struct {
	data DomainData
}

func (g domainGrid) Dims() (c, r int)   { return len(g.data.Thetas), len(g.data.Ks) }
func (g domainGrid) Z(c, r int) float64 { return g.data.Costs[r][c] }
func (g domainGrid) X(c int) float64    { return g.data.Thetas[c] }
func (g domainGrid) Y(r int) float64    { return g.data.Ks[r] }

// ExportDomainHeatmap exports the cost surface as a heat map image file
func ExportDomainHeatmap(data DomainData, filename string) error {
	if len(data.Thetas) < 2 || len(data.Ks) < 2 {
		return fmt.Errorf("domain needs at least a 2x2 grid, got %dx%d", len(data.Thetas), len(data.Ks))
	}

	p := plot.New()
	p.Title.Text = "Cost Domain"
	p.X.Label.Text = "θ (degrees)"
	p.Y.Label.Text = "k (stress ratio)"

	heat := plotter.NewHeatMap(domainGrid{data}, palette.Heat(64, 1))
	p.Add(heat)

	// Mark the optimum
	if data.HasBest {
		best, err := plotter.NewScatter(plotter.XYs{{X: data.BestTheta, Y: data.BestK}})
		if err != nil {
			return err
		}
		best.GlyphStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		best.GlyphStyle.Radius = vg.Points(6)
		best.GlyphStyle.Shape = draw.CrossGlyph{}
		p.Add(best)

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: data.BestTheta, Y: data.BestK}},
			Labels: []string{fmt.Sprintf("  θ=%.0f° k=%.3f", data.BestTheta, data.BestK)},
		})
		if err != nil {
			return err
		}
		p.Add(lbl)
	}

	p.Legend.Top = true
	p.Legend.Add(fmt.Sprintf("cost %.3f to %.3f", heat.Min, heat.Max))

	return save(p, filename, 8*vg.Inch, 6*vg.Inch)
}

// ExportCostProfile exports the profile curves as a line chart
func ExportCostProfile(data ProfileData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = "θ (degrees)"
	p.Y.Label.Text = strings.ToUpper(data.quantity()[:1]) + data.quantity()[1:]

	// Costs span [0, 1]; tractions may go negative
	lo, hi := 0.0, 1.0
	for _, s := range data.Series {
		for _, v := range s.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	p.Y.Min = lo
	p.Y.Max = hi

	colors := []color.Color{
		color.RGBA{R: 0, G: 0, B: 139, A: 255},
		color.RGBA{R: 178, G: 34, B: 34, A: 255},
		color.RGBA{R: 0, G: 100, B: 0, A: 255},
		color.RGBA{R: 255, G: 140, B: 0, A: 255},
	}

	for i, s := range data.Series {
		if len(s.Values) != len(data.Thetas) {
			return fmt.Errorf("series %s has %d values for %d angles", s.Name, len(s.Values), len(data.Thetas))
		}
		pts := make(plotter.XYs, len(s.Values))
		for j, v := range s.Values {
			pts[j] = plotter.XY{X: data.Thetas[j], Y: v}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = colors[i%len(colors)]
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	// 45° reference, where S1 and S3 are equally inclined to the plane
	ref, err := plotter.NewLine(plotter.XYs{{X: 45, Y: lo}, {X: 45, Y: hi}})
	if err != nil {
		return err
	}
	ref.LineStyle.Width = vg.Points(1)
	ref.LineStyle.Color = color.Gray{Y: 128}
	ref.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	p.Add(ref)

	return save(p, filename, 8*vg.Inch, 6*vg.Inch)
}

// save writes p to filename. The format follows the extension
// (png, svg, pdf); anything else is written as png.
func save(p *plot.Plot, filename string, width, height vg.Length) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
