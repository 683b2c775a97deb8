// Package puzzle generates the interlocking-piece topology and geometry of
// a rectangular jigsaw puzzle.
//
// A puzzle is a grid of (columns × rows) pieces cut from a widthMM × heightMM
// rectangle. The generator works in four stages:
//
//  1. Vertex generation: the (columns+1) × (rows+1) lattice points, row-major.
//  2. Edge discovery: a breadth-first expansion over the lattice emits every
//     adjacent vertex pair exactly once, keyed by the canonical (min, max)
//     index pair.
//  3. Shape synthesis: border edges stay straight; interior edges receive a
//     randomized interlocking tab built from a canonical unit template.
//  4. Placement: each tab is mapped from its unit frame onto the real segment
//     between its two vertices (uniform scale, rotate, translate).
//
// Randomness is injected through a *rand.Rand so seeded generations are
// reproducible byte-for-byte. A built Puzzle is immutable; rendering it (see
// package outline) is a pure read.
package puzzle
