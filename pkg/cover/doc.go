// Package cover implements the randomized greedy set-cover solver.
//
// Given a universe of (ingredient, effect) facts and a collection of
// candidate potions, Solver.Solve selects a sub-collection whose combined
// fact sets equal the universe exactly. Each selection round picks the
// candidate covering the most still-uncovered facts; ties are broken with a
// per-candidate uniform random perturbation drawn once per round, so
// rerunning with a different seed explores different equally-greedy
// solutions. The heuristic carries the classic logarithmic approximation
// guarantee relative to the optimum; it does not backtrack.
//
// The random source is an explicit, injectable dependency (WithRand,
// WithSeed) so tests run deterministically and batch runs diverge on seed
// alone. An impossible cover surfaces as a structured UNSATISFIABLE_COVER
// failure wrapping ErrUnsatisfiable rather than a partial result.
package cover
