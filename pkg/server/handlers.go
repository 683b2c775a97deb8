package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/puzzletools/puzzgen/pkg/errors"
	"github.com/puzzletools/puzzgen/pkg/outline"
	"github.com/puzzletools/puzzgen/pkg/puzzle"
	"github.com/puzzletools/puzzgen/pkg/store"
)

// maxListLimit caps the page size of the puzzle listing.
const maxListLimit = 100

// handlePuzzleSVG renders a preview straight from query parameters, serving
// from the render cache when the same configuration was seen before.
func (s *Server) handlePuzzleSVG(w http.ResponseWriter, r *http.Request) {
	params, err := paramsFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	key := s.keyer.RenderKey(params, "svg")
	if data, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
		s.logger.Debug("render cache hit", "key", key)
		writeSVG(w, data)
		return
	}

	svg, err := renderParams(params)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.cache.Set(r.Context(), key, svg, renderTTL); err != nil {
		// Serving the fresh render matters more than caching it.
		s.logger.Warn("render cache write failed", "err", err)
	}
	writeSVG(w, svg)
}

// handleSavePuzzle generates a puzzle from a JSON parameter document and
// persists it under a fresh ID.
func (s *Server) handleSavePuzzle(w http.ResponseWriter, r *http.Request) {
	var params puzzle.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode request body"))
		return
	}

	svg, err := renderParams(params)
	if err != nil {
		s.writeError(w, err)
		return
	}

	rec := store.NewRecord(params, svg)
	if err := s.store.Save(r.Context(), rec); err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("saved puzzle", "id", rec.ID, "columns", params.Columns, "rows", params.Rows)
	s.writeJSON(w, http.StatusCreated, rec)
}

// handleGetPuzzle returns a saved puzzle record as JSON.
func (s *Server) handleGetPuzzle(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

// handleGetPuzzleSVG returns a saved puzzle's rendered document directly.
func (s *Server) handleGetPuzzleSVG(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeSVG(w, []byte(rec.SVG))
}

// handleListPuzzles returns the most recent saved puzzles, newest first.
func (s *Server) handleListPuzzles(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidConfig, "limit must be a positive integer"))
			return
		}
		limit = min(n, maxListLimit)
	}

	recs, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, recs)
}

// renderParams validates, generates, and serializes in one step.
func renderParams(params puzzle.Params) ([]byte, error) {
	p, err := params.Generate()
	if err != nil {
		return nil, err
	}
	return outline.RenderSVG(p), nil
}

// paramsFromQuery reads generation parameters from the URL query, applying
// the tool's defaults for absent values.
func paramsFromQuery(r *http.Request) (puzzle.Params, error) {
	q := r.URL.Query()
	params := puzzle.Params{
		WidthMM:   300,
		HeightMM:  200,
		Columns:   15,
		Rows:      10,
		JitterPct: puzzle.DefaultJitterPct,
	}

	var err error
	if params.WidthMM, err = floatParam(q.Get("width"), params.WidthMM); err != nil {
		return params, errors.New(errors.ErrCodeInvalidDimensions, "width: %v", err)
	}
	if params.HeightMM, err = floatParam(q.Get("height"), params.HeightMM); err != nil {
		return params, errors.New(errors.ErrCodeInvalidDimensions, "height: %v", err)
	}
	if params.Columns, err = intParam(q.Get("columns"), params.Columns); err != nil {
		return params, errors.New(errors.ErrCodeInvalidPieces, "columns: %v", err)
	}
	if params.Rows, err = intParam(q.Get("rows"), params.Rows); err != nil {
		return params, errors.New(errors.ErrCodeInvalidPieces, "rows: %v", err)
	}
	if params.JitterPct, err = floatParam(q.Get("jitter"), params.JitterPct); err != nil {
		return params, errors.New(errors.ErrCodeInvalidJitter, "jitter: %v", err)
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return params, errors.New(errors.ErrCodeInvalidConfig, "seed: %v", err)
		}
		params.Seed = seed
	}

	return params, params.Validate()
}

func floatParam(v string, def float64) (float64, error) {
	if v == "" {
		return def, nil
	}
	return strconv.ParseFloat(v, 64)
}

func intParam(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func writeSVG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

// writeError maps structured error codes onto HTTP statuses and emits a
// machine-readable body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidPieces, errors.ErrCodeInvalidDimensions,
		errors.ErrCodeInvalidJitter, errors.ErrCodeInvalidConfig,
		errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodePuzzleNotFound, errors.ErrCodePresetNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}

	s.writeJSON(w, status, map[string]string{
		"code":    string(errors.GetCode(err)),
		"message": errors.UserMessage(err),
	})
}
