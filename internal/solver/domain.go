package solver

import (
	"math"

	"github.com/alexiusacademia/gostress/internal/structure"
)

// Surface is the aggregate cost sampled over the regular grid.
// Costs[i][j] is the cost at (Thetas[j], Ks[i]).
type Surface struct {
	Thetas []float64
	Ks     []float64
	Costs  [][]float64
}

// Min returns the first grid point of least cost in row-major order
// together with its flattened index.
func (s *Surface) Min() (Point, float64, int) {
	best, cost, index := Point{}, math.Inf(1), -1
	for i, row := range s.Costs {
		for j, c := range row {
			if c < cost {
				best, cost, index = Point{Theta: s.Thetas[j], K: s.Ks[i]}, c, i*len(row)+j
			}
		}
	}
	return best, cost, index
}

// Range returns the smallest and largest cost on the surface
func (s *Surface) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range s.Costs {
		for _, c := range row {
			lo = math.Min(lo, c)
			hi = math.Max(hi, c)
		}
	}
	return lo, hi
}

// Domain evaluates the aggregate cost on the budget×budget regular grid used
// by Regular and returns every value instead of the optimum.
// Only opts.Workers and opts.Logger are used.
func Domain(data []structure.Datum, budget int, opts Options) (*Surface, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}
	g, err := newGrid(budget)
	if err != nil {
		return nil, err
	}

	surface := &Surface{
		Thetas: make([]float64, budget),
		Ks:     make([]float64, budget),
		Costs:  make([][]float64, budget),
	}
	for i := 0; i < budget; i++ {
		surface.Thetas[i] = g.theta(i)
		surface.Ks[i] = g.k(i)
	}

	opts.logger().Debug("domain started", "data", len(data), "budget", budget, "workers", opts.Workers)

	// one row per block keeps the row-major layout trivial
	ev := newEvaluator(data, opts.Workers)
	row := make([]Point, budget)
	for i := 0; i < budget; i++ {
		for j := range row {
			row[j] = g.at(i*budget + j)
		}
		costs, err := ev.evaluate(row)
		if err != nil {
			return nil, err
		}
		surface.Costs[i] = append([]float64(nil), costs...)
	}
	return surface, nil
}
