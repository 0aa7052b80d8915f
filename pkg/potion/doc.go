// Package potion holds the brewing data model and the candidate generator.
//
// An Ingredient is a base item with a small set of effects. A Potion is a
// combination of 2 or 3 distinct ingredients; it reveals exactly those
// (ingredient, effect) Facts where the effect is shared by at least two of
// the combination's members. All enumerates every valid potion for an
// ingredient collection as a lazy, restartable sequence; Collect
// deduplicates it into a candidate slice and Universe computes the full set
// of discoverable facts.
//
// The package is purely functional over interned identifiers: label
// translation stays at the I/O boundary (see pkg/lexicon) and the types here
// are immutable once constructed.
package potion
