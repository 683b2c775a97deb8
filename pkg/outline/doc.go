// Package outline serializes a generated puzzle into a self-contained SVG
// document: one stroked, unfilled path whose commands trace every edge of
// the puzzle exactly once. PNG and PDF variants convert that SVG through
// rsvg-convert.
package outline
