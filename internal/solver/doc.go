// Package solver searches the remote stress domain (θ ∈ [0°,180°], k ∈ [0,1])
// for the configuration that best explains a set of observed structures.
//
// Two strategies are built in:
//
//   - MonteCarlo ("mc"): uniform random sampling from a seeded stream.
//   - Regular ("regular"): exhaustive budget×budget grid, k outer, θ inner.
//
// Both minimize the mean structure cost, keep the first strict minimum and
// report every improvement to an Observer. Domain evaluates the same grid as
// Regular and returns the whole cost surface.
//
// With Options.Workers > 1, candidates are evaluated in blocks by several
// goroutines and reduced in iteration order, so results do not depend on the
// worker count.
package solver
