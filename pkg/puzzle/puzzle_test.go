package puzzle

import (
	"reflect"
	"testing"

	"github.com/puzzletools/puzzgen/pkg/errors"
)

func mustBuild(t *testing.T, cols, rows int, jitter float64, seed uint64) *Puzzle {
	t.Helper()
	p, err := NewBuilder().
		Size(300, 200).
		Pieces(cols, rows).
		VertexJitterPct(jitter).
		Seed(seed).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return p
}

func TestBuildCounts(t *testing.T) {
	tests := []struct {
		name         string
		cols, rows   int
		wantVertices int
		wantEdges    int
	}{
		{"1x1", 1, 1, 4, 4},
		{"2x2", 2, 2, 9, 12},
		{"3x2", 3, 2, 12, 17},
		{"15x10", 15, 10, 176, 325},
		{"1x5", 1, 5, 12, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustBuild(t, tt.cols, tt.rows, DefaultJitterPct, 42)
			if got := p.VertexCount(); got != tt.wantVertices {
				t.Errorf("VertexCount = %d, want %d", got, tt.wantVertices)
			}
			if got := p.EdgeCount(); got != tt.wantEdges {
				t.Errorf("EdgeCount = %d, want %d", got, tt.wantEdges)
			}
		})
	}
}

func TestBuildValidation(t *testing.T) {
	tests := []struct {
		name     string
		build    func() (*Puzzle, error)
		wantCode errors.Code
	}{
		{
			"zero columns",
			func() (*Puzzle, error) { return NewBuilder().Pieces(0, 10).Build() },
			errors.ErrCodeInvalidPieces,
		},
		{
			"zero rows",
			func() (*Puzzle, error) { return NewBuilder().Pieces(15, 0).Build() },
			errors.ErrCodeInvalidPieces,
		},
		{
			"negative width",
			func() (*Puzzle, error) { return NewBuilder().Size(-1, 200).Build() },
			errors.ErrCodeInvalidDimensions,
		},
		{
			"zero height",
			func() (*Puzzle, error) { return NewBuilder().Size(300, 0).Build() },
			errors.ErrCodeInvalidDimensions,
		},
		{
			"negative jitter",
			func() (*Puzzle, error) { return NewBuilder().VertexJitterPct(-3).Build() },
			errors.ErrCodeInvalidJitter,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.build()
			if err == nil {
				t.Fatalf("Build succeeded with %d vertices, want error", p.VertexCount())
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %s, want %s", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestBuildDeterministicWithSeed(t *testing.T) {
	a := mustBuild(t, 15, 10, DefaultJitterPct, 42)
	b := mustBuild(t, 15, 10, DefaultJitterPct, 42)
	if !reflect.DeepEqual(a.Edges(), b.Edges()) {
		t.Error("same seed and configuration should produce identical edges")
	}

	c := mustBuild(t, 15, 10, DefaultJitterPct, 43)
	if reflect.DeepEqual(a.Edges(), c.Edges()) {
		t.Error("different seeds should produce different edge geometry")
	}
}

func TestEdgesSortedByKey(t *testing.T) {
	p := mustBuild(t, 4, 3, DefaultJitterPct, 7)
	edges := p.Edges()
	for i := 1; i < len(edges); i++ {
		if edges[i-1].Key.Compare(edges[i].Key) >= 0 {
			t.Fatalf("edges not strictly sorted at %d: %v >= %v", i, edges[i-1].Key, edges[i].Key)
		}
	}
}

func TestParamsGenerate(t *testing.T) {
	params := Params{WidthMM: 100, HeightMM: 100, Columns: 2, Rows: 2, JitterPct: 5, Seed: 9}
	p, err := params.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p.VertexCount() != 9 || p.EdgeCount() != 12 {
		t.Errorf("got %d vertices, %d edges; want 9, 12", p.VertexCount(), p.EdgeCount())
	}

	if err := (Params{WidthMM: 100, HeightMM: 100, Columns: 0, Rows: 2}).Validate(); err == nil {
		t.Error("Validate should reject zero columns")
	}
}
