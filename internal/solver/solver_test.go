package solver_test

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gostress/internal/geometry"
	"github.com/alexiusacademia/gostress/internal/solver"
	"github.com/alexiusacademia/gostress/internal/stress"
	"github.com/alexiusacademia/gostress/internal/structure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// perfectData returns one joint along S1 and one stylolite along S3 of the
// remote stress (theta, k), a dataset with an exact zero-cost solution.
func perfectData(t *testing.T, theta, k float64) []structure.Datum {
	t.Helper()
	eigen := stress.Principal(theta, k)
	ds := structure.NewDataset(structure.NewDefaultRegistry())
	require.NoError(t, ds.Add(eigen.S1, "joint"))
	require.NoError(t, ds.Add(eigen.S3, "stylolite"))
	return ds.Data()
}

// scatteredData returns a noisy dataset around theta=120 so that the cost
// surface has no exact zero and many distinct values.
func scatteredData(t *testing.T) []structure.Datum {
	t.Helper()
	ds := structure.NewDataset(structure.NewDefaultRegistry())
	for i, off := range []float64{-7, -3, 0, 2, 5, 9} {
		eigen := stress.Principal(120+off, 0.4)
		typ := "joint"
		dir := eigen.S1
		if i%2 == 1 {
			typ, dir = "stylo", eigen.S3
		}
		require.NoError(t, ds.Add(dir, typ))
	}
	return ds.Data()
}

// TestAggregateCost verifies the mean cost and the empty dataset guard.
func TestAggregateCost(t *testing.T) {
	data := perfectData(t, 30, 0.5)

	c, err := solver.AggregateCost(data, solver.Point{Theta: 30, K: 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, c, 1e-12)

	// rotating by 90 degrees swaps S1 and S3: every datum is perpendicular
	c, err = solver.AggregateCost(data, solver.Point{Theta: 120, K: 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c, 1e-9)

	_, err = solver.AggregateCost(nil, solver.Point{})
	assert.ErrorIs(t, err, solver.ErrEmptyDataset)
}

// TestRegular_FindsPerfectFit runs the 50×50 grid on a perfectly consistent
// dataset generated at (30, 0.5).
func TestRegular_FindsPerfectFit(t *testing.T) {
	data := perfectData(t, 30, 0.5)

	res, err := solver.NewRegular(solver.Options{}).Run(data, 50)
	require.NoError(t, err)

	spacing := 180.0 / 49
	assert.InDelta(t, 30, res.Best.Theta, spacing)
	assert.Less(t, res.Best.K, 1.0, "the isotropic row cannot fit")
	assert.InDelta(t, 0.0, res.Cost, 1e-3)
	assert.Equal(t, 2500, res.Evaluations)
	assert.Equal(t, 50, res.Budget)
	assert.Equal(t, 2, res.DataCount)
	assert.Equal(t, "regular", res.Solver)
	assert.True(t, res.Found())

	// the iteration index is flattened as i*budget+j
	j := res.Iteration % 50
	i := res.Iteration / 50
	assert.InDelta(t, geometry.Lerp(0, 180, float64(j)/49), res.Best.Theta, 1e-12)
	assert.InDelta(t, geometry.Lerp(0, 1, float64(i)/49), res.Best.K, 1e-12)
}

// TestRegular_InvalidBudget rejects grids with fewer than two samples per axis.
func TestRegular_InvalidBudget(t *testing.T) {
	data := perfectData(t, 30, 0.5)
	for _, budget := range []int{-1, 0, 1} {
		res, err := solver.NewRegular(solver.Options{}).Run(data, budget)
		assert.ErrorIs(t, err, solver.ErrInvalidBudget, "budget %d", budget)
		assert.False(t, res.Found())
		assert.Equal(t, 0, res.Evaluations)
	}
}

// TestSolvers_EmptyDataset ensures every strategy refuses an empty dataset.
func TestSolvers_EmptyDataset(t *testing.T) {
	for _, s := range []solver.Solver{solver.NewMonteCarlo(solver.Options{}), solver.NewRegular(solver.Options{})} {
		_, err := s.Run(nil, 10)
		assert.ErrorIs(t, err, solver.ErrEmptyDataset, s.Name())
	}
	_, err := solver.Domain(nil, 10, solver.Options{})
	assert.ErrorIs(t, err, solver.ErrEmptyDataset)
}

// TestMonteCarlo_ZeroBudget verifies that no evaluation happens and the
// result keeps its sentinel.
func TestMonteCarlo_ZeroBudget(t *testing.T) {
	calls := 0
	mc := solver.NewMonteCarlo(solver.Options{Observer: func(solver.Progress) { calls++ }})

	res, err := mc.Run(perfectData(t, 30, 0.5), 0)
	assert.ErrorIs(t, err, solver.ErrInvalidBudget)
	assert.True(t, math.IsInf(res.Cost, 1))
	assert.False(t, res.Found())
	assert.Equal(t, -1, res.Iteration)
	assert.Equal(t, 0, res.Evaluations)
	assert.Equal(t, 0, calls)
}

// TestMonteCarlo_Converges checks a seeded run lands near the true solution
// and evaluates exactly budget samples across several blocks.
func TestMonteCarlo_Converges(t *testing.T) {
	data := perfectData(t, 30, 0.5)

	res, err := solver.NewMonteCarlo(solver.Options{Seed: 7}).Run(data, 10000)
	require.NoError(t, err)
	assert.Equal(t, 10000, res.Evaluations)
	assert.InDelta(t, 30, res.Best.Theta, 3)
	assert.Less(t, res.Cost, 2e-3)
	assert.GreaterOrEqual(t, res.Best.K, 0.0)
	assert.LessOrEqual(t, res.Best.K, 1.0)
}

// TestMonteCarlo_Deterministic verifies equal seeds give equal runs and that
// the worker count does not change the outcome.
func TestMonteCarlo_Deterministic(t *testing.T) {
	data := scatteredData(t)

	a, err := solver.NewMonteCarlo(solver.Options{Seed: 42}).Run(data, 6000)
	require.NoError(t, err)
	b, err := solver.NewMonteCarlo(solver.Options{Seed: 42, Workers: 4}).Run(data, 6000)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := solver.NewMonteCarlo(solver.Options{Seed: 43}).Run(data, 6000)
	require.NoError(t, err)
	assert.NotEqual(t, a.Best, c.Best)
}

// TestObserver_Improvements checks progress events are strictly improving,
// in iteration order, and end at the reported optimum.
func TestObserver_Improvements(t *testing.T) {
	data := scatteredData(t)
	for _, name := range []string{"mc", "regular"} {
		var events []solver.Progress
		s, err := solver.New(name, solver.Options{Seed: 3, Observer: func(p solver.Progress) {
			events = append(events, p)
		}})
		require.NoError(t, err)

		res, err := s.Run(data, s.DefaultBudget())
		require.NoError(t, err)
		require.NotEmpty(t, events, name)

		for i := 1; i < len(events); i++ {
			assert.Less(t, events[i].Cost, events[i-1].Cost, name)
			assert.Greater(t, events[i].Iteration, events[i-1].Iteration, name)
		}
		last := events[len(events)-1]
		assert.Equal(t, res.Iteration, last.Iteration, name)
		assert.Equal(t, res.Best, last.Point, name)
		assert.Equal(t, res.Cost, last.Cost, name)
	}
}

// TestRegular_WorkersMatchSequential compares a parallel grid scan against
// the sequential one, event by event.
func TestRegular_WorkersMatchSequential(t *testing.T) {
	data := scatteredData(t)

	run := func(workers int) (solver.Result, []solver.Progress) {
		var events []solver.Progress
		res, err := solver.NewRegular(solver.Options{Workers: workers, Observer: func(p solver.Progress) {
			events = append(events, p)
		}}).Run(data, 80)
		require.NoError(t, err)
		return res, events
	}

	seqRes, seqEvents := run(1)
	parRes, parEvents := run(8)
	assert.Equal(t, seqRes, parRes)
	assert.Equal(t, seqEvents, parEvents)
	assert.Equal(t, 6400, parRes.Evaluations)
}

// TestDomain_MatchesRegular checks the surface layout and that its minimum
// is the regular grid optimum.
func TestDomain_MatchesRegular(t *testing.T) {
	data := scatteredData(t)

	surface, err := solver.Domain(data, 25, solver.Options{Workers: 3})
	require.NoError(t, err)
	require.Len(t, surface.Costs, 25)
	require.Len(t, surface.Thetas, 25)
	require.Len(t, surface.Ks, 25)
	for _, row := range surface.Costs {
		require.Len(t, row, 25)
	}
	assert.Equal(t, 0.0, surface.Thetas[0])
	assert.Equal(t, 180.0, surface.Thetas[24])
	assert.Equal(t, 0.0, surface.Ks[0])
	assert.Equal(t, 1.0, surface.Ks[24])

	// row-major, k outer / θ inner
	want, err := solver.AggregateCost(data, solver.Point{Theta: surface.Thetas[7], K: surface.Ks[3]})
	require.NoError(t, err)
	assert.Equal(t, want, surface.Costs[3][7])

	res, err := solver.NewRegular(solver.Options{}).Run(data, 25)
	require.NoError(t, err)
	p, c, idx := surface.Min()
	assert.Equal(t, res.Best, p)
	assert.Equal(t, res.Cost, c)
	assert.Equal(t, res.Iteration, idx)

	lo, hi := surface.Range()
	assert.Equal(t, c, lo)
	assert.GreaterOrEqual(t, hi, lo)
	assert.LessOrEqual(t, hi, 1.0)

	_, err = solver.Domain(data, 1, solver.Options{})
	assert.ErrorIs(t, err, solver.ErrInvalidBudget)
}

// TestRegistry covers built-in names, unknown lookups and last-write-wins.
func TestRegistry(t *testing.T) {
	reg := solver.NewDefaultRegistry()
	assert.Equal(t, []string{"grid", "mc", "montecarlo", "regular"}, reg.Names())

	s, err := reg.New("mc", solver.Options{})
	require.NoError(t, err)
	assert.Equal(t, "mc", s.Name())
	assert.Equal(t, solver.DefaultMonteCarloBudget, s.DefaultBudget())

	s, err = reg.New("grid", solver.Options{})
	require.NoError(t, err)
	assert.Equal(t, "regular", s.Name())
	assert.Equal(t, solver.DefaultGridBudget, s.DefaultBudget())

	_, err = reg.New("annealing", solver.Options{})
	assert.ErrorIs(t, err, solver.ErrUnknownStrategy)
	assert.False(t, reg.Has("annealing"))

	reg.Register("mc", func(opts solver.Options) solver.Solver { return solver.NewRegular(opts) })
	s, err = reg.New("mc", solver.Options{})
	require.NoError(t, err)
	assert.Equal(t, "regular", s.Name(), "second registration must win")
}

// TestResult_Solution checks the rounding contract of the final report.
func TestResult_Solution(t *testing.T) {
	res := solver.Result{
		Best:        solver.Point{Theta: 29.6, K: 0.12351},
		Cost:        0.00049,
		Iteration:   812,
		Evaluations: 5000,
		Budget:      5000,
		DataCount:   12,
	}
	sol := res.Solution()
	assert.Equal(t, 30, sol.Theta)
	assert.Equal(t, 0.124, sol.K)
	assert.Equal(t, 0.0, sol.Cost)
	assert.Equal(t, 812, sol.Iteration)
	assert.Equal(t, 5000, sol.Budget)
	assert.Equal(t, 12, sol.DataCount)
}
