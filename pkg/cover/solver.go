package cover

import (
	"context"
	stderrors "errors"
	"log/slog"
	"math/rand/v2"

	"github.com/brewlab/mortar/pkg/errors"
	"github.com/brewlab/mortar/pkg/potion"
)

// ErrUnsatisfiable is returned (wrapped in a StructuredError carrying
// ErrCodeUnsatisfiableCover) when the candidate potions cannot cover the
// remaining universe: either no candidate reveals any uncovered fact, or
// the candidates run out first. Callers match it with errors.Is.
var ErrUnsatisfiable = stderrors.New("no set cover possible")

// Solver selects a sub-collection of potions whose combined fact sets equal
// a given universe using a randomized greedy maximum-coverage heuristic.
// It holds no state between Solve calls beyond its random source.
type Solver struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// Option defines a functional option for configuring a Solver.
type Option func(*Solver)

// WithRand sets the random source used for tie-breaking. Supplying a fixed
// source makes Solve deterministic, which tests rely on; repeated runs with
// different sources can yield different, equally-greedy solutions.
func WithRand(r *rand.Rand) Option {
	return func(s *Solver) {
		s.rng = r
	}
}

// WithSeed seeds the solver's random source. Two solvers with the same seed
// produce identical covers over identical input.
func WithSeed(seed uint64) Option {
	return func(s *Solver) {
		s.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithLogger sets the logger used for progress reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

// New creates a Solver. Without WithRand or WithSeed the solver uses a
// non-deterministic source, so each run may find a different cover.
func New(opts ...Option) *Solver {
	s := &Solver{}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Solve picks potions until their fact sets cover the universe exactly.
//
// Each round scores every available candidate by how many still-uncovered
// facts it would reveal, plus one fresh uniform [0,1) draw per candidate to
// break ties between equally good candidates. The perturbation is strictly
// below 1, so a candidate covering fewer facts can never outrank one
// covering more; only exact ties are randomized. The best candidate is
// moved to the chosen set and its facts subtracted from the remainder.
//
// Returns the chosen potions in selection order. Fails with an
// UNSATISFIABLE_COVER error when uncovered facts remain but no available
// candidate can make progress, or when candidates are exhausted first; no
// partial cover is returned.
func (s *Solver) Solve(ctx context.Context, universe map[potion.Fact]struct{}, candidates []potion.Potion) ([]potion.Potion, error) {
	remaining := make(map[potion.Fact]struct{}, len(universe))
	for f := range universe {
		remaining[f] = struct{}{}
	}

	available := make([]potion.Potion, len(candidates))
	copy(available, candidates)

	chosen := make([]potion.Potion, 0)

	for len(remaining) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout, "cover solve canceled", err)
		}
		if len(available) == 0 {
			return nil, errors.WrapWithContext(errors.ErrCodeUnsatisfiableCover,
				"candidates exhausted before universe was covered", ErrUnsatisfiable,
				map[string]any{"uncovered": len(remaining), "chosen": len(chosen)})
		}

		best := -1
		bestScore := -1.0
		bestCovered := 0
		for i := range available {
			covered := coveredCount(remaining, available[i].Facts)
			score := float64(covered) + s.rng.Float64()
			if score > bestScore {
				best = i
				bestScore = score
				bestCovered = covered
			}
		}

		if bestCovered == 0 {
			return nil, errors.WrapWithContext(errors.ErrCodeUnsatisfiableCover,
				"no remaining candidate covers any uncovered fact", ErrUnsatisfiable,
				map[string]any{"uncovered": len(remaining), "chosen": len(chosen)})
		}

		pick := available[best]
		available[best] = available[len(available)-1]
		available = available[:len(available)-1]
		chosen = append(chosen, pick)

		for _, f := range pick.Facts {
			delete(remaining, f)
		}

		s.logger.Debug("candidate chosen",
			"covered", bestCovered,
			"uncovered", len(remaining),
			"chosen", len(chosen))
	}

	return chosen, nil
}

// coveredCount returns how many of the facts are still uncovered.
func coveredCount(remaining map[potion.Fact]struct{}, facts []potion.Fact) int {
	n := 0
	for _, f := range facts {
		if _, ok := remaining[f]; ok {
			n++
		}
	}
	return n
}
