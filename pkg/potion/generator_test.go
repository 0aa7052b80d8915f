package potion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	effX EffectID = 0
	effY EffectID = 1
	effZ EffectID = 2
)

// triad returns the reference fixture: A={x,y}, B={y,z}, C={x,z}.
func triad() []Ingredient {
	return []Ingredient{
		{ID: 0, Effects: []EffectID{effX, effY}},
		{ID: 1, Effects: []EffectID{effY, effZ}},
		{ID: 2, Effects: []EffectID{effX, effZ}},
	}
}

func TestAllTriadExhaustive(t *testing.T) {
	potions := Collect(All(triad()))
	require.Len(t, potions, 4)

	// 3-combinations are enumerated first.
	full := potions[0]
	assert.Equal(t, []IngredientID{0, 1, 2}, full.Ingredients)
	require.Len(t, full.Facts, 6)
	assert.Equal(t, []Fact{
		{Ingredient: 0, Effect: effX},
		{Ingredient: 0, Effect: effY},
		{Ingredient: 1, Effect: effY},
		{Ingredient: 1, Effect: effZ},
		{Ingredient: 2, Effect: effX},
		{Ingredient: 2, Effect: effZ},
	}, full.Facts)
	assert.Equal(t, []EffectID{effX, effY, effZ}, full.Effects())

	// Each pair shares exactly one effect and yields a single-fact-per-member potion.
	pairEffects := map[string]EffectID{
		"0,1,": effY,
		"0,2,": effX,
		"1,2,": effZ,
	}
	for _, p := range potions[1:] {
		require.Len(t, p.Ingredients, 2)
		key := ""
		for _, id := range p.Ingredients {
			key += string(rune('0'+id)) + ","
		}
		want, ok := pairEffects[key]
		require.True(t, ok, "unexpected pair %v", p.Ingredients)
		assert.Equal(t, []EffectID{want}, p.Effects())
		require.Len(t, p.Facts, 2)
		for _, f := range p.Facts {
			assert.Equal(t, want, f.Effect)
		}
	}
}

func TestAllSkipsBarrenCombinations(t *testing.T) {
	// No effect overlaps anywhere, so nothing is brewable.
	ings := []Ingredient{
		{ID: 0, Effects: []EffectID{0}},
		{ID: 1, Effects: []EffectID{1}},
		{ID: 2, Effects: []EffectID{2}},
	}
	assert.Empty(t, Collect(All(ings)))
}

func TestAllValidity(t *testing.T) {
	ings := []Ingredient{
		{ID: 0, Effects: []EffectID{0, 1, 2, 3}},
		{ID: 1, Effects: []EffectID{1, 2, 4, 5}},
		{ID: 2, Effects: []EffectID{2, 3, 5, 6}},
		{ID: 3, Effects: []EffectID{0, 4, 6, 7}},
	}
	byID := map[IngredientID]Ingredient{}
	for _, in := range ings {
		byID[in.ID] = in
	}

	for p := range All(ings) {
		require.NotEmpty(t, p.Facts)
		members := map[IngredientID]struct{}{}
		for _, id := range p.Ingredients {
			members[id] = struct{}{}
		}
		for _, f := range p.Facts {
			_, isMember := members[f.Ingredient]
			assert.True(t, isMember, "fact names non-member ingredient %d", f.Ingredient)
			assert.True(t, byID[f.Ingredient].HasEffect(f.Effect),
				"ingredient %d does not carry effect %d", f.Ingredient, f.Effect)

			// Shared-by-two rule: at least two members must carry the effect.
			carriers := 0
			for id := range members {
				if byID[id].HasEffect(f.Effect) {
					carriers++
				}
			}
			assert.GreaterOrEqual(t, carriers, 2,
				"effect %d not confirmed by overlap", f.Effect)
		}
	}
}

func TestAllIdempotent(t *testing.T) {
	ings := []Ingredient{
		{ID: 0, Effects: []EffectID{0, 1, 2, 3}},
		{ID: 1, Effects: []EffectID{1, 2, 4, 5}},
		{ID: 2, Effects: []EffectID{2, 3, 5, 6}},
		{ID: 3, Effects: []EffectID{0, 4, 6, 7}},
	}

	first := Collect(All(ings))
	second := Collect(All(ings))
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Key(), second[i].Key())
	}
}

func TestCollectDeduplicates(t *testing.T) {
	p := Potion{
		Ingredients: []IngredientID{0, 1},
		Facts:       []Fact{{Ingredient: 0, Effect: 0}, {Ingredient: 1, Effect: 0}},
	}
	dup := Potion{
		Ingredients: []IngredientID{0, 1},
		Facts:       []Fact{{Ingredient: 0, Effect: 0}, {Ingredient: 1, Effect: 0}},
	}
	seq := func(yield func(Potion) bool) {
		if !yield(p) {
			return
		}
		yield(dup)
	}

	assert.Len(t, Collect(seq), 1)
}

func TestUniverse(t *testing.T) {
	potions := Collect(All(triad()))
	u := Universe(potions)

	// Every ingredient/effect pairing in the triad is discoverable.
	assert.Len(t, u, 6)
	_, ok := u[Fact{Ingredient: 0, Effect: effX}]
	assert.True(t, ok)
}
