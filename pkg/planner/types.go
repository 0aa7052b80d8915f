package planner

import (
	"sort"

	"github.com/brewlab/mortar/pkg/lexicon"
	"github.com/brewlab/mortar/pkg/potion"
	"github.com/brewlab/mortar/pkg/serializer"
)

// PotionSummary is the output-boundary view of a potion, with interned
// identifiers restored to their labels. Both slices are sorted.
type PotionSummary struct {
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
	Effects     []string `json:"effects" yaml:"effects"`
}

// Plan is the result of a single solve run.
type Plan struct {
	RunID       string          `json:"run_id" yaml:"run_id"`
	Seed        *uint64         `json:"seed,omitempty" yaml:"seed,omitempty"`
	Ingredients int             `json:"ingredients" yaml:"ingredients"`
	Effects     int             `json:"effects" yaml:"effects"`
	Candidates  int             `json:"candidates" yaml:"candidates"`
	Universe    int             `json:"universe" yaml:"universe"`
	Chosen      int             `json:"chosen" yaml:"chosen"`
	Duration    string          `json:"duration" yaml:"duration"`
	Potions     []PotionSummary `json:"potions" yaml:"potions"`
}

// MarshalRecords renders the chosen potions as CSV records.
func (p *Plan) MarshalRecords() ([]string, [][]string, error) {
	return potionRecords(p.Potions)
}

// Inventory is the result of candidate enumeration without a solve.
type Inventory struct {
	Ingredients int             `json:"ingredients" yaml:"ingredients"`
	Effects     int             `json:"effects" yaml:"effects"`
	Candidates  int             `json:"candidates" yaml:"candidates"`
	Universe    int             `json:"universe" yaml:"universe"`
	Potions     []PotionSummary `json:"potions" yaml:"potions"`
}

// MarshalRecords renders every candidate potion as CSV records.
func (inv *Inventory) MarshalRecords() ([]string, [][]string, error) {
	return potionRecords(inv.Potions)
}

func potionRecords(potions []PotionSummary) ([]string, [][]string, error) {
	members := make([][]string, 0, len(potions))
	effects := make([][]string, 0, len(potions))
	for _, p := range potions {
		members = append(members, p.Ingredients)
		effects = append(effects, p.Effects)
	}
	return serializer.PotionRecords(members, effects)
}

// summarize restores labels for a set of potions through the lexicon.
func summarize(lex *lexicon.Lexicon, potions []potion.Potion) []PotionSummary {
	out := make([]PotionSummary, 0, len(potions))
	for _, p := range potions {
		members := make([]string, 0, len(p.Ingredients))
		for _, id := range p.Ingredients {
			members = append(members, lex.IngredientLabel(id))
		}
		sort.Strings(members)

		effectIDs := p.Effects()
		labels := make([]string, 0, len(effectIDs))
		for _, id := range effectIDs {
			labels = append(labels, lex.EffectLabel(id))
		}
		sort.Strings(labels)

		out = append(out, PotionSummary{Ingredients: members, Effects: labels})
	}
	return out
}
