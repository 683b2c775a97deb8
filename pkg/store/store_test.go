package store

import (
	"context"
	"testing"
	"time"

	"github.com/puzzletools/puzzgen/pkg/errors"
	"github.com/puzzletools/puzzgen/pkg/puzzle"
)

func testParams() puzzle.Params {
	return puzzle.Params{WidthMM: 300, HeightMM: 200, Columns: 15, Rows: 10, JitterPct: 10, Seed: 42}
}

func TestNewRecord(t *testing.T) {
	rec := NewRecord(testParams(), []byte("<svg/>"))
	if rec.ID == "" {
		t.Error("record should get a UUID")
	}
	if rec.SVG != "<svg/>" {
		t.Errorf("SVG = %q", rec.SVG)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("record should be timestamped")
	}

	other := NewRecord(testParams(), nil)
	if rec.ID == other.ID {
		t.Error("records should get distinct IDs")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	rec := NewRecord(testParams(), []byte("<svg/>"))
	if err := s.Save(ctx, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != rec.ID || got.SVG != rec.SVG || got.Params != rec.Params {
		t.Errorf("Get = %+v, want %+v", got, rec)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "no-such-id")
	if !errors.Is(err, errors.ErrCodePuzzleNotFound) {
		t.Errorf("missing puzzle should yield PUZZLE_NOT_FOUND, got %v", err)
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	base := time.Now().UTC()
	for i := range 5 {
		rec := NewRecord(testParams(), nil)
		rec.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := s.Save(ctx, rec); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	recs, err := s.List(ctx, 3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("List returned %d records, want 3", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i-1].CreatedAt.Before(recs[i].CreatedAt) {
			t.Error("List should order newest first")
		}
	}
}
