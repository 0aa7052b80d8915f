package cover

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/brewlab/mortar/pkg/errors"
	"github.com/brewlab/mortar/pkg/potion"
)

func triadCandidates(t *testing.T) ([]potion.Potion, map[potion.Fact]struct{}) {
	t.Helper()
	ings := []potion.Ingredient{
		{ID: 0, Effects: []potion.EffectID{0, 1}},
		{ID: 1, Effects: []potion.EffectID{1, 2}},
		{ID: 2, Effects: []potion.EffectID{0, 2}},
	}
	candidates := potion.Collect(potion.All(ings))
	return candidates, potion.Universe(candidates)
}

func TestSolveCoversUniverse(t *testing.T) {
	candidates, universe := triadCandidates(t)

	chosen, err := New(WithSeed(1)).Solve(t.Context(), universe, candidates)
	require.NoError(t, err)
	require.NotEmpty(t, chosen)

	covered := potion.Universe(chosen)
	assert.Equal(t, len(universe), len(covered))
	for f := range universe {
		_, ok := covered[f]
		assert.True(t, ok, "fact %v left uncovered", f)
	}
}

func TestSolveNoWastedCandidates(t *testing.T) {
	candidates, universe := triadCandidates(t)

	chosen, err := New(WithSeed(7)).Solve(t.Context(), universe, candidates)
	require.NoError(t, err)

	// Replaying the selection order, every chosen potion must reveal at
	// least one fact that was still uncovered at the moment it was picked.
	remaining := make(map[potion.Fact]struct{}, len(universe))
	for f := range universe {
		remaining[f] = struct{}{}
	}
	for _, p := range chosen {
		fresh := 0
		for _, f := range p.Facts {
			if _, ok := remaining[f]; ok {
				fresh++
				delete(remaining, f)
			}
		}
		assert.GreaterOrEqual(t, fresh, 1, "potion %v covered nothing new", p.Ingredients)
	}
	assert.Empty(t, remaining)
}

func TestSolveDeterministicWithFixedSeed(t *testing.T) {
	candidates, universe := triadCandidates(t)

	first, err := New(WithSeed(42)).Solve(t.Context(), universe, candidates)
	require.NoError(t, err)
	second, err := New(WithSeed(42)).Solve(t.Context(), universe, candidates)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Key(), second[i].Key())
	}
}

func TestSolveVariedSeedStillCovers(t *testing.T) {
	candidates, universe := triadCandidates(t)

	for seed := uint64(0); seed < 20; seed++ {
		chosen, err := New(WithSeed(seed)).Solve(t.Context(), universe, candidates)
		require.NoError(t, err)
		assert.Equal(t, len(universe), len(potion.Universe(chosen)), "seed %d", seed)
	}
}

func TestSolveUnsatisfiableForeignFact(t *testing.T) {
	candidates, universe := triadCandidates(t)

	// A fact no candidate can reveal makes the cover impossible.
	universe[potion.Fact{Ingredient: 99, Effect: 99}] = struct{}{}

	chosen, err := New(WithSeed(3)).Solve(t.Context(), universe, candidates)
	require.Error(t, err)
	assert.Nil(t, chosen)
	assert.True(t, errors.Is(err, ErrUnsatisfiable))
	assert.Equal(t, apperrors.ErrCodeUnsatisfiableCover, apperrors.CodeOf(err))
}

func TestSolveUnsatisfiableNoCandidates(t *testing.T) {
	universe := map[potion.Fact]struct{}{
		{Ingredient: 0, Effect: 0}: {},
	}

	_, err := New(WithSeed(3)).Solve(t.Context(), universe, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsatisfiable))
}

func TestSolveEmptyUniverse(t *testing.T) {
	candidates, _ := triadCandidates(t)

	chosen, err := New(WithSeed(3)).Solve(t.Context(), map[potion.Fact]struct{}{}, candidates)
	require.NoError(t, err)
	assert.Empty(t, chosen)
}

func TestSolveCanceledContext(t *testing.T) {
	candidates, universe := triadCandidates(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(WithSeed(3)).Solve(ctx, universe, candidates)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeTimeout, apperrors.CodeOf(err))
}

func TestWithRand(t *testing.T) {
	candidates, universe := triadCandidates(t)

	r1 := rand.New(rand.NewPCG(11, 11))
	r2 := rand.New(rand.NewPCG(11, 11))

	first, err := New(WithRand(r1)).Solve(t.Context(), universe, candidates)
	require.NoError(t, err)
	second, err := New(WithRand(r2)).Solve(t.Context(), universe, candidates)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Key(), second[i].Key())
	}
}
