package potion

import "iter"

// All enumerates every potion brewable from the given ingredient collection:
// each combination of exactly 3 and exactly 2 distinct ingredients that
// shares at least one effect between two or more of its members yields one
// potion. The sequence is lazy, finite, and restartable; it is a pure
// function of its input and yields every valid potion exactly once per pass.
//
// The dominant cost is the C(n,3)+C(n,2) combination walk; each combination
// is scored with a single counting pass over its members' effect sets.
func All(ingredients []Ingredient) iter.Seq[Potion] {
	return func(yield func(Potion) bool) {
		n := len(ingredients)
		for i := 0; i < n-2; i++ {
			for j := i + 1; j < n-1; j++ {
				for k := j + 1; k < n; k++ {
					if p, ok := brew(ingredients[i], ingredients[j], ingredients[k]); ok {
						if !yield(p) {
							return
						}
					}
				}
			}
		}
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				if p, ok := brew(ingredients[i], ingredients[j]); ok {
					if !yield(p) {
						return
					}
				}
			}
		}
	}
}

// brew combines 2 or 3 ingredients into a potion. An effect is revealed only
// when at least two members carry it; a combination retaining no effects
// yields no potion.
func brew(members ...Ingredient) (Potion, bool) {
	counts := make(map[EffectID]int, len(members)*4)
	for _, m := range members {
		for _, e := range m.Effects {
			counts[e]++
		}
	}

	shared := make(map[EffectID]struct{}, len(counts))
	for e, c := range counts {
		if c > 1 {
			shared[e] = struct{}{}
		}
	}
	if len(shared) == 0 {
		return Potion{}, false
	}

	p := Potion{
		Ingredients: make([]IngredientID, 0, len(members)),
		Facts:       make([]Fact, 0, len(shared)*len(members)),
	}
	for _, m := range members {
		p.Ingredients = append(p.Ingredients, m.ID)
		for _, e := range m.Effects {
			if _, ok := shared[e]; ok {
				p.Facts = append(p.Facts, Fact{Ingredient: m.ID, Effect: e})
			}
		}
	}
	sortIngredientIDs(p.Ingredients)
	sortFacts(p.Facts)
	return p, true
}

// Collect drains the sequence into a slice, deduplicating structurally
// identical potions. Order follows first occurrence in the sequence.
func Collect(seq iter.Seq[Potion]) []Potion {
	var out []Potion
	seen := make(map[string]struct{})
	for p := range seq {
		key := p.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Universe returns the union of all fact sets across the given potions:
// every (ingredient, effect) pair that some potion can reveal.
func Universe(potions []Potion) map[Fact]struct{} {
	u := make(map[Fact]struct{})
	for _, p := range potions {
		for _, f := range p.Facts {
			u[f] = struct{}{}
		}
	}
	return u
}
