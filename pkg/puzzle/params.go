package puzzle

import "github.com/puzzletools/puzzgen/pkg/errors"

// DefaultJitterPct is the vertex jitter applied when none is configured,
// as a percentage of the piece size.
const DefaultJitterPct = 10

// Params is the complete configuration of a generation run. It is the unit
// of exchange between the CLI, the HTTP server, the render cache, and the
// saved-puzzle store: hashing a Params value identifies a rendered artifact.
type Params struct {
	WidthMM   float64 `json:"width_mm" bson:"width_mm"`
	HeightMM  float64 `json:"height_mm" bson:"height_mm"`
	Columns   int     `json:"columns" bson:"columns"`
	Rows      int     `json:"rows" bson:"rows"`
	JitterPct float64 `json:"jitter_pct" bson:"jitter_pct"`
	Seed      uint64  `json:"seed" bson:"seed"`
}

// Validate checks the configuration before any generation happens.
// Violations are recoverable caller errors, never panics.
func (p Params) Validate() error {
	if p.WidthMM <= 0 || p.HeightMM <= 0 {
		return errors.New(errors.ErrCodeInvalidDimensions,
			"puzzle dimensions must be positive, got %gx%g mm", p.WidthMM, p.HeightMM)
	}
	if p.Columns < 1 {
		return errors.New(errors.ErrCodeInvalidPieces, "columns must be at least 1, got %d", p.Columns)
	}
	if p.Rows < 1 {
		return errors.New(errors.ErrCodeInvalidPieces, "rows must be at least 1, got %d", p.Rows)
	}
	if p.JitterPct < 0 {
		return errors.New(errors.ErrCodeInvalidJitter, "jitter must not be negative, got %g%%", p.JitterPct)
	}
	return nil
}

// Generate builds the puzzle described by p. The seed feeds a PCG source so
// equal Params always produce identical puzzles.
func (p Params) Generate() (*Puzzle, error) {
	return NewBuilder().
		Size(p.WidthMM, p.HeightMM).
		Pieces(p.Columns, p.Rows).
		VertexJitterPct(p.JitterPct).
		Seed(p.Seed).
		Build()
}
