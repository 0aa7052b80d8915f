package potion

import (
	"fmt"
	"sort"
	"strings"
)

// IngredientID is an interned ingredient identifier. IDs are assigned per
// run by a lexicon; the algorithms in this package never see raw labels.
type IngredientID int32

// EffectID is an interned effect identifier.
type EffectID int32

// Fact is a single (ingredient, effect) discovery: brewing a potion that
// carries this fact reveals that the ingredient has the effect. Facts are
// the atomic unit of the universe the cover solver must satisfy.
type Fact struct {
	Ingredient IngredientID `json:"ingredient" yaml:"ingredient"`
	Effect     EffectID     `json:"effect" yaml:"effect"`
}

// Ingredient is a base item with its known effect set.
// Constructed once from the input table; immutable thereafter.
type Ingredient struct {
	ID      IngredientID
	Effects []EffectID // sorted, unique, non-empty
}

// HasEffect reports whether the ingredient's own effect set contains e.
// Effect sets are tiny (four entries in the reference data) so a linear
// scan beats binary search here.
func (i Ingredient) HasEffect(e EffectID) bool {
	for _, have := range i.Effects {
		if have == e {
			return true
		}
	}
	return false
}

// Potion is a composite item brewed from 2 or 3 distinct ingredients.
// Facts holds every (member, effect) pair the potion reveals: the effect is
// shared by at least two members and present on that member. Both slices
// are kept sorted so structurally equal potions compare equal.
type Potion struct {
	Ingredients []IngredientID `json:"ingredients" yaml:"ingredients"`
	Facts       []Fact         `json:"facts" yaml:"facts"`
}

// Effects returns the sorted, unique effect identifiers revealed by the
// potion (the projection of Facts onto their effect component).
func (p Potion) Effects() []EffectID {
	seen := make(map[EffectID]struct{}, len(p.Facts))
	out := make([]EffectID, 0, len(p.Facts))
	for _, f := range p.Facts {
		if _, ok := seen[f.Effect]; ok {
			continue
		}
		seen[f.Effect] = struct{}{}
		out = append(out, f.Effect)
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out
}

// Key returns a canonical encoding of the potion's identity (member set and
// fact set). Two potions are equal iff their keys are equal, which makes the
// key suitable for deduplicating structurally identical potions.
func (p Potion) Key() string {
	var b strings.Builder
	for _, id := range p.Ingredients {
		fmt.Fprintf(&b, "%d,", id)
	}
	b.WriteByte('|')
	for _, f := range p.Facts {
		fmt.Fprintf(&b, "%d:%d,", f.Ingredient, f.Effect)
	}
	return b.String()
}

func sortIngredientIDs(ids []IngredientID) {
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
}

func sortFacts(facts []Fact) {
	sort.Slice(facts, func(a, b int) bool {
		if facts[a].Ingredient != facts[b].Ingredient {
			return facts[a].Ingredient < facts[b].Ingredient
		}
		return facts[a].Effect < facts[b].Effect
	})
}
