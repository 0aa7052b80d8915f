// Package cli implements the mortar command line interface: plan (solve a
// potion cover), potions (enumerate candidates), and batch (fan out many
// randomized solves).
package cli
