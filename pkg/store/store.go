// Package store persists generated puzzles so the preview server can hand
// out stable share links. A record couples the generation parameters (which
// fully determine the output) with the rendered SVG, under a UUID.
//
// Two backends: an in-memory store for single-process use and tests, and a
// MongoDB store for deployments that keep puzzles across restarts.
package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/puzzletools/puzzgen/pkg/errors"
	"github.com/puzzletools/puzzgen/pkg/puzzle"
)

// Record is one saved puzzle.
type Record struct {
	ID        string        `json:"id" bson:"_id"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	Params    puzzle.Params `json:"params" bson:"params"`
	SVG       string        `json:"svg" bson:"svg"`
}

// NewRecord builds a record with a fresh UUID and creation timestamp.
func NewRecord(params puzzle.Params, svg []byte) Record {
	return Record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Params:    params,
		SVG:       string(svg),
	}
}

// Store is the persistence interface for saved puzzles.
type Store interface {
	// Save persists a record. Saving an existing ID overwrites it.
	Save(ctx context.Context, rec Record) error
	// Get fetches a record by ID; a missing ID yields PUZZLE_NOT_FOUND.
	Get(ctx context.Context, id string) (Record, error)
	// List returns the most recent records, newest first, at most limit.
	List(ctx context.Context, limit int) ([]Record, error)
	// Close releases backend resources.
	Close(ctx context.Context) error
}

// MemoryStore keeps records in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	recs map[string]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{recs: make(map[string]Record)}
}

// Save implements Store.
func (s *MemoryStore) Save(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[rec.ID] = rec
	return nil
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.recs[id]
	if !ok {
		return Record{}, errors.New(errors.ErrCodePuzzleNotFound, "no saved puzzle with id %s", id)
	}
	return rec, nil
}

// List implements Store.
func (s *MemoryStore) List(ctx context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.recs))
	for _, rec := range s.recs {
		out = append(out, rec)
	}
	slices.SortFunc(out, func(a, b Record) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Close implements Store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
