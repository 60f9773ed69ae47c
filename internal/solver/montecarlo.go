package solver

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/alexiusacademia/gostress/internal/geometry"
	"github.com/alexiusacademia/gostress/internal/structure"
)

// DefaultMonteCarloBudget is the number of random samples drawn by default
const DefaultMonteCarloBudget = 5000

// MonteCarlo samples θ and k uniformly at random and keeps the best sample.
// The random stream is created from Options.Seed when the solver is built and
// continues across runs. A MonteCarlo must not be shared between goroutines.
type MonteCarlo struct {
	opts Options
	rng  *rand.Rand
	log  *slog.Logger
}

// NewMonteCarlo creates a Monte Carlo solver
func NewMonteCarlo(opts Options) *MonteCarlo {
	return &MonteCarlo{opts: opts, rng: newRNG(opts.Seed), log: opts.logger()}
}

// Name returns "mc"
func (m *MonteCarlo) Name() string { return "mc" }

// DefaultBudget returns DefaultMonteCarloBudget
func (m *MonteCarlo) DefaultBudget() int { return DefaultMonteCarloBudget }

// Run draws budget independent (θ, k) samples and returns the first sample
// with the least aggregate cost. With budget < 1 nothing is evaluated: the
// result keeps its +Inf sentinel cost and ErrInvalidBudget is returned.
func (m *MonteCarlo) Run(data []structure.Datum, budget int) (Result, error) {
	s := newSearch(m.Name(), data, budget, m.opts)
	if len(data) == 0 {
		return s.best, ErrEmptyDataset
	}
	if budget < 1 {
		return s.best, fmt.Errorf("%w: monte carlo needs at least one sample, got %d", ErrInvalidBudget, budget)
	}

	m.log.Debug("monte carlo started", "data", len(data), "budget", budget, "seed", m.opts.Seed, "workers", m.opts.Workers)

	err := s.scan(budget, func(int) Point {
		return Point{
			Theta: geometry.Lerp(ThetaMin, ThetaMax, m.rng.Float64()),
			K:     geometry.Lerp(KMin, KMax, m.rng.Float64()),
		}
	})
	if err != nil {
		return s.best, err
	}

	m.log.Debug("monte carlo finished", "iteration", s.best.Iteration, "theta", s.best.Best.Theta, "k", s.best.Best.K, "cost", s.best.Cost)
	return s.best, nil
}
