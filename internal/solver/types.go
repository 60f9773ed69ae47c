package solver

import (
	"errors"
	"io"
	"log/slog"
	"math"

	"github.com/alexiusacademia/gostress/internal/structure"
)

var (
	// ErrEmptyDataset is returned when a search is run without data.
	ErrEmptyDataset = errors.New("solver: dataset is empty")
	// ErrInvalidBudget is returned when the iteration budget cannot drive the search.
	ErrInvalidBudget = errors.New("solver: invalid budget")
	// ErrUnknownStrategy is returned when no strategy is registered under a name.
	ErrUnknownStrategy = errors.New("solver: unknown strategy")
)

// Parameter domain bounds
const (
	ThetaMin = 0.0   // degrees
	ThetaMax = 180.0 // degrees
	KMin     = 0.0
	KMax     = 1.0
)

// Point is a candidate remote stress (θ in degrees, k stress ratio)
type Point struct {
	Theta float64 `json:"theta" yaml:"theta"`
	K     float64 `json:"k" yaml:"k"`
}

// Progress is emitted each time a search finds a strictly better point
type Progress struct {
	Iteration int
	Point     Point
	Cost      float64
}

// Observer receives progress events in iteration order
type Observer func(Progress)

// Solver searches the (θ, k) domain for the configuration of least aggregate cost
type Solver interface {
	// Name returns the strategy name
	Name() string
	// DefaultBudget returns the budget used when the caller has no preference
	DefaultBudget() int
	// Run scans the domain over data within budget
	Run(data []structure.Datum, budget int) (Result, error)
}

// Options configures a solver instance
type Options struct {
	// Seed for stochastic strategies. Zero selects a fixed default seed.
	Seed int64
	// Workers evaluating candidate points concurrently. Values below 2 run sequentially.
	Workers int
	// Observer is notified of every improvement. May be nil.
	Observer Observer
	// Logger for run diagnostics. Nil discards.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// Result holds the outcome of one search run
type Result struct {
	Solver string
	Best   Point
	Cost   float64

	// Iteration at which Best was found, -1 when nothing was evaluated
	Iteration   int
	Evaluations int
	Budget      int
	DataCount   int
}

// Found reports whether the search evaluated at least one point
func (r Result) Found() bool {
	return !math.IsInf(r.Cost, 1)
}

// Solution is the rounded final record of a search, as reported to users
type Solution struct {
	DataCount int
	Iteration int
	Budget    int
	Theta     int     // nearest integer degree
	K         float64 // 3 decimals
	Cost      float64 // 3 decimals
}

// Solution rounds r for reporting
func (r Result) Solution() Solution {
	return Solution{
		DataCount: r.DataCount,
		Iteration: r.Iteration,
		Budget:    r.Budget,
		Theta:     int(math.Round(r.Best.Theta)),
		K:         round3(r.Best.K),
		Cost:      round3(r.Cost),
	}
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
