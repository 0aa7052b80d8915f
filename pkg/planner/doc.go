// Package planner orchestrates the alchemy pipeline end to end. A Planner
// reads a row-oriented ingredient table, interns its labels, enumerates
// every candidate potion, solves a randomized greedy set cover over the
// resulting ingredient/effect facts, and serializes the plan. Batch fans a
// configurable number of independent runs out over an errgroup so repeated
// randomized solves can hunt for smaller covers.
package planner
