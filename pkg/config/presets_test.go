package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/puzzletools/puzzgen/pkg/errors"
)

func TestBuiltinPresetsValid(t *testing.T) {
	b := Builtin()
	for _, name := range b.Names() {
		if _, err := b.Get(name); err != nil {
			t.Errorf("built-in preset %q invalid: %v", name, err)
		}
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(p.Names(), Builtin().Names()) {
		t.Errorf("missing file should yield built-ins, got %v", p.Names())
	}
}

func TestLoadMergesAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	data := `
[presets.poster]
width = 600
height = 400
columns = 30
rows = 20
jitter = 8

[presets.classic]
width = 300
height = 200
columns = 20
rows = 15
jitter = 5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	poster, err := p.Get("poster")
	if err != nil {
		t.Fatalf("Get(poster): %v", err)
	}
	if poster.Columns != 30 || poster.Rows != 20 {
		t.Errorf("poster = %+v, want 30x20 pieces", poster)
	}

	classic, err := p.Get("classic")
	if err != nil {
		t.Fatalf("Get(classic): %v", err)
	}
	if classic.Columns != 20 || classic.Jitter != 5 {
		t.Errorf("user file should override built-in classic, got %+v", classic)
	}

	// Untouched built-ins survive the merge.
	if _, err := p.Get("a4"); err != nil {
		t.Errorf("built-in a4 lost after merge: %v", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	if err := os.WriteFile(path, []byte("[presets.broken\nwidth = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("malformed file should return INVALID_CONFIG, got %v", err)
	}
}

func TestGetUnknownPreset(t *testing.T) {
	if _, err := Builtin().Get("gigantic"); !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("unknown preset should return PRESET_NOT_FOUND, got %v", err)
	}
}

func TestGetInvalidPreset(t *testing.T) {
	p := &Presets{Presets: map[string]Preset{
		"broken": {Width: 100, Height: 100, Columns: 0, Rows: 4},
	}}
	if _, err := p.Get("broken"); !errors.Is(err, errors.ErrCodeInvalidPreset) {
		t.Errorf("invalid preset should return INVALID_PRESET, got %v", err)
	}
}
