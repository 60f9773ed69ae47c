package solver

import (
	"math"

	"github.com/alexiusacademia/gostress/internal/stress"
	"github.com/alexiusacademia/gostress/internal/structure"
	"golang.org/x/sync/errgroup"
)

// blockSize is the number of candidate points generated and evaluated at once
const blockSize = 4096

// AggregateCost returns the mean cost of data for the remote stress at p
func AggregateCost(data []structure.Datum, p Point) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyDataset
	}
	return aggregate(data, p), nil
}

func aggregate(data []structure.Datum, p Point) float64 {
	eigen := stress.Principal(p.Theta, p.K)
	var sum float64
	for _, d := range data {
		sum += d.Cost(eigen)
	}
	return sum / float64(len(data))
}

// evaluator computes aggregate costs for blocks of points, optionally
// spreading a block over several goroutines. data is only read.
type evaluator struct {
	data    []structure.Datum
	workers int
	costs   []float64
}

func newEvaluator(data []structure.Datum, workers int) *evaluator {
	return &evaluator{data: data, workers: workers}
}

// evaluate returns costs[i] for points[i]. The slice is reused by the next call.
func (e *evaluator) evaluate(points []Point) ([]float64, error) {
	if cap(e.costs) < len(points) {
		e.costs = make([]float64, len(points))
	}
	costs := e.costs[:len(points)]

	if e.workers < 2 || len(points) < 2*e.workers {
		for i, p := range points {
			costs[i] = aggregate(e.data, p)
		}
		return costs, nil
	}

	var g errgroup.Group
	chunk := (len(points) + e.workers - 1) / e.workers
	for lo := 0; lo < len(points); lo += chunk {
		hi := min(lo+chunk, len(points))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				costs[i] = aggregate(e.data, points[i])
			}
			return nil
		})
	}
	return costs, g.Wait()
}

// search is the running state of one Run: the best point so far and the
// block scan that feeds it.
type search struct {
	best     Result
	observer Observer
	eval     *evaluator
	points   []Point
}

func newSearch(name string, data []structure.Datum, budget int, opts Options) *search {
	return &search{
		best: Result{
			Solver:    name,
			Cost:      math.Inf(1),
			Iteration: -1,
			Budget:    budget,
			DataCount: len(data),
		},
		observer: opts.Observer,
		eval:     newEvaluator(data, opts.Workers),
	}
}

// scan evaluates total candidates. next is called once per iteration, in
// order, to produce the candidate for that iteration.
func (s *search) scan(total int, next func(iter int) Point) error {
	for start := 0; start < total; start += blockSize {
		n := min(blockSize, total-start)
		if cap(s.points) < n {
			s.points = make([]Point, n)
		}
		points := s.points[:n]
		for i := range points {
			points[i] = next(start + i)
		}

		costs, err := s.eval.evaluate(points)
		if err != nil {
			return err
		}
		for i, c := range costs {
			s.offer(start+i, points[i], c)
		}
		s.best.Evaluations += n
	}
	return nil
}

// offer replaces the best point on strict improvement only
func (s *search) offer(iter int, p Point, cost float64) {
	if !(cost < s.best.Cost) {
		return
	}
	s.best.Best = p
	s.best.Cost = cost
	s.best.Iteration = iter
	if s.observer != nil {
		s.observer(Progress{Iteration: iter, Point: p, Cost: cost})
	}
}
