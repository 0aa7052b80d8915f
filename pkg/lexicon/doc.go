// Package lexicon maps ingredient and effect labels to interned small
// integer identifiers and back.
//
// Interning is a pure performance optimization: the generator and solver
// operate on compact comparable IDs while CSV reading and writing translate
// at the boundary. A Lexicon is built per run, replacing any notion of
// process-wide lookup tables, so parallel runs share nothing.
package lexicon
