package solver

import (
	"fmt"
	"log/slog"

	"github.com/alexiusacademia/gostress/internal/geometry"
	"github.com/alexiusacademia/gostress/internal/structure"
)

// DefaultGridBudget is the number of samples per axis of the regular grid
const DefaultGridBudget = 50

// grid is the n×n regular sampling of the parameter domain,
// k along rows (outer), θ along columns (inner).
type grid struct {
	n int
}

func newGrid(n int) (grid, error) {
	if n < 2 {
		return grid{}, fmt.Errorf("%w: regular grid needs at least 2 samples per axis, got %d", ErrInvalidBudget, n)
	}
	return grid{n: n}, nil
}

func (g grid) theta(j int) float64 {
	return geometry.Lerp(ThetaMin, ThetaMax, float64(j)/float64(g.n-1))
}

func (g grid) k(i int) float64 {
	return geometry.Lerp(KMin, KMax, float64(i)/float64(g.n-1))
}

// at returns the point of flattened index i*n+j
func (g grid) at(index int) Point {
	return Point{Theta: g.theta(index % g.n), K: g.k(index / g.n)}
}

// Regular scans a deterministic budget×budget grid of the parameter domain
type Regular struct {
	opts Options
	log  *slog.Logger
}

// NewRegular creates a regular grid solver
func NewRegular(opts Options) *Regular {
	return &Regular{opts: opts, log: opts.logger()}
}

// Name returns "regular"
func (r *Regular) Name() string { return "regular" }

// DefaultBudget returns DefaultGridBudget
func (r *Regular) DefaultBudget() int { return DefaultGridBudget }

// Run evaluates every grid point, k outer and θ inner, and returns the first
// point with the least aggregate cost. Iterations are numbered i*budget+j.
func (r *Regular) Run(data []structure.Datum, budget int) (Result, error) {
	s := newSearch(r.Name(), data, budget, r.opts)
	if len(data) == 0 {
		return s.best, ErrEmptyDataset
	}
	g, err := newGrid(budget)
	if err != nil {
		return s.best, err
	}

	r.log.Debug("regular grid started", "data", len(data), "budget", budget, "points", budget*budget, "workers", r.opts.Workers)

	if err := s.scan(budget*budget, g.at); err != nil {
		return s.best, err
	}

	r.log.Debug("regular grid finished", "iteration", s.best.Iteration, "theta", s.best.Best.Theta, "k", s.best.Best.K, "cost", s.best.Cost)
	return s.best, nil
}
