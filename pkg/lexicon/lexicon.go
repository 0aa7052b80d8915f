package lexicon

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/brewlab/mortar/pkg/potion"
)

// Lexicon interns ingredient and effect labels to small integer identifiers
// and restores them at the output boundary. One Lexicon is constructed per
// run from the observed label set; there is no process-wide state, so
// concurrent runs never share mappings. The mapping is injective with an
// inverse lookup, and the algorithmic core only ever sees the interned IDs.
//
// A Lexicon is not safe for concurrent mutation; each run owns its own.
type Lexicon struct {
	canonical bool
	caser     cases.Caser

	ingredientIDs    map[string]potion.IngredientID
	ingredientLabels []string
	effectIDs        map[string]potion.EffectID
	effectLabels     []string
}

// Option defines a functional option for configuring a Lexicon.
type Option func(*Lexicon)

// WithCanonicalLabels normalizes labels to English title case before
// interning, so case-variant spellings of the same effect ("fire resist",
// "Fire Resist") collapse to a single identifier.
func WithCanonicalLabels() Option {
	return func(l *Lexicon) {
		l.canonical = true
	}
}

// New creates an empty Lexicon.
func New(opts ...Option) *Lexicon {
	l := &Lexicon{
		ingredientIDs: make(map[string]potion.IngredientID),
		effectIDs:     make(map[string]potion.EffectID),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.canonical {
		l.caser = cases.Title(language.English)
	}
	return l
}

func (l *Lexicon) normalize(label string) string {
	label = strings.TrimSpace(label)
	if l.canonical && label != "" {
		label = l.caser.String(strings.ToLower(label))
	}
	return label
}

// AddIngredient interns an ingredient label. The second return value is
// false when the label was already present, which callers treat as a
// duplicate-identifier input error.
func (l *Lexicon) AddIngredient(label string) (potion.IngredientID, bool) {
	label = l.normalize(label)
	if id, ok := l.ingredientIDs[label]; ok {
		return id, false
	}
	id := potion.IngredientID(len(l.ingredientLabels))
	l.ingredientIDs[label] = id
	l.ingredientLabels = append(l.ingredientLabels, label)
	return id, true
}

// InternEffect interns an effect label, returning the existing identifier
// when the label was seen before.
func (l *Lexicon) InternEffect(label string) potion.EffectID {
	label = l.normalize(label)
	if id, ok := l.effectIDs[label]; ok {
		return id
	}
	id := potion.EffectID(len(l.effectLabels))
	l.effectIDs[label] = id
	l.effectLabels = append(l.effectLabels, label)
	return id
}

// IngredientLabel restores the original label for an interned ingredient.
// Unknown identifiers return the empty string.
func (l *Lexicon) IngredientLabel(id potion.IngredientID) string {
	if int(id) < 0 || int(id) >= len(l.ingredientLabels) {
		return ""
	}
	return l.ingredientLabels[int(id)]
}

// EffectLabel restores the original label for an interned effect.
// Unknown identifiers return the empty string.
func (l *Lexicon) EffectLabel(id potion.EffectID) string {
	if int(id) < 0 || int(id) >= len(l.effectLabels) {
		return ""
	}
	return l.effectLabels[int(id)]
}

// Ingredients returns the number of interned ingredient labels.
func (l *Lexicon) Ingredients() int {
	return len(l.ingredientLabels)
}

// Effects returns the number of interned effect labels.
func (l *Lexicon) Effects() int {
	return len(l.effectLabels)
}
