// Package config loads named puzzle presets from TOML files.
//
// A preset bundles the five generation parameters under a memorable name so
// common sheet sizes don't have to be retyped:
//
//	[presets.a4]
//	width = 297
//	height = 210
//	columns = 12
//	rows = 8
//	jitter = 10
//
// Built-in presets cover common cases; a user file (default
// ~/.config/puzzgen/presets.toml) extends or overrides them.
package config

import (
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/puzzletools/puzzgen/pkg/errors"
	"github.com/puzzletools/puzzgen/pkg/puzzle"
)

// Preset is one named puzzle configuration.
type Preset struct {
	Width   float64 `toml:"width"`   // sheet width in mm
	Height  float64 `toml:"height"`  // sheet height in mm
	Columns int     `toml:"columns"` // pieces across
	Rows    int     `toml:"rows"`    // pieces down
	Jitter  float64 `toml:"jitter"`  // control-point jitter percent
}

// Params converts the preset into generation parameters. The seed is left
// zero; callers decide seeding.
func (p Preset) Params() puzzle.Params {
	return puzzle.Params{
		WidthMM:   p.Width,
		HeightMM:  p.Height,
		Columns:   p.Columns,
		Rows:      p.Rows,
		JitterPct: p.Jitter,
	}
}

// Presets is a named collection, usually one per config file.
type Presets struct {
	Presets map[string]Preset `toml:"presets"`
}

// Builtin returns the presets shipped with the tool.
func Builtin() *Presets {
	return &Presets{Presets: map[string]Preset{
		"classic": {Width: 300, Height: 200, Columns: 15, Rows: 10, Jitter: 10},
		"a4":      {Width: 297, Height: 210, Columns: 12, Rows: 8, Jitter: 10},
		"a3":      {Width: 420, Height: 297, Columns: 20, Rows: 14, Jitter: 10},
		"mini":    {Width: 100, Height: 100, Columns: 4, Rows: 4, Jitter: 12},
		"square":  {Width: 250, Height: 250, Columns: 10, Rows: 10, Jitter: 10},
	}}
}

// Load reads presets from path and merges them over the built-ins, so a
// user file can redefine a built-in name. A missing file is not an error;
// it yields the built-ins alone.
func Load(path string) (*Presets, error) {
	merged := Builtin()

	var file Presets
	if _, err := toml.DecodeFile(path, &file); err != nil {
		if os.IsNotExist(err) {
			return merged, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode presets file %s", path)
	}

	maps.Copy(merged.Presets, file.Presets)
	return merged, nil
}

// Get resolves a preset by name, validating it before handing it out.
func (p *Presets) Get(name string) (Preset, error) {
	preset, ok := p.Presets[name]
	if !ok {
		return Preset{}, errors.New(errors.ErrCodePresetNotFound,
			"unknown preset %q (available: %v)", name, p.Names())
	}
	if err := preset.Params().Validate(); err != nil {
		return Preset{}, errors.Wrap(errors.ErrCodeInvalidPreset, err, "preset %q", name)
	}
	return preset, nil
}

// Names returns all preset names, sorted.
func (p *Presets) Names() []string {
	return slices.Sorted(maps.Keys(p.Presets))
}

// DefaultPath returns the user preset file location
// (XDG config dir, ~/.config/puzzgen/presets.toml by default).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "puzzgen", "presets.toml"), nil
}
