package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/puzzletools/puzzgen/pkg/cache"
	"github.com/puzzletools/puzzgen/pkg/config"
	"github.com/puzzletools/puzzgen/pkg/errors"
	"github.com/puzzletools/puzzgen/pkg/outline"
	"github.com/puzzletools/puzzgen/pkg/puzzle"
)

const (
	formatSVG = "svg"
	formatPDF = "pdf"
	formatPNG = "png"
)

// generateTTL bounds how long rendered outlines stay in the file cache.
const generateTTL = 7 * 24 * time.Hour

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output      string  // output file path ("" or "-" means stdout for SVG)
	format      string  // output format: "svg", "pdf", "png"
	width       float64 // sheet width in mm
	height      float64 // sheet height in mm
	columns     int     // pieces across
	rows        int     // pieces down
	jitter      float64 // control-point jitter percent
	seed        uint64  // random seed for reproducible tab shapes
	preset      string  // named preset to start from
	presetsFile string  // preset file overriding the default location
	scale       float64 // raster scale factor for PNG export
	noCache     bool    // bypass the render cache
	interactive bool    // pick a preset interactively
}

// generateCommand creates the generate command, the tool's main entry point.
//
// Default settings:
//   - sheet: 300x200 mm
//   - pieces: 15 columns x 10 rows
//   - jitter: 10% of the shorter sheet side
//   - format: svg, written to stdout when no output file is given
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		width:   300,
		height:  200,
		columns: 15,
		rows:    10,
		jitter:  puzzle.DefaultJitterPct,
		format:  formatSVG,
		scale:   defaultPNGScale,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle cutting outline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			params, err := c.resolveParams(cmd, &opts)
			if err != nil {
				return err
			}
			return c.runGenerate(withLogger(cmd.Context(), c.Logger), params, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout for svg, puzzle.<format> otherwise)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), pdf, png")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "sheet width in mm")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "sheet height in mm")
	cmd.Flags().IntVar(&opts.columns, "columns", opts.columns, "pieces across")
	cmd.Flags().IntVar(&opts.rows, "rows", opts.rows, "pieces down")
	cmd.Flags().Float64Var(&opts.jitter, "jitter", opts.jitter, "tab jitter as percent of the shorter side")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for reproducible tab shapes")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "named preset to start from (see 'puzzgen presets')")
	cmd.Flags().StringVar(&opts.presetsFile, "presets-file", "", "preset file (default: user config dir)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale for png export")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick a preset interactively")

	return cmd
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatSVG: true, formatPDF: true, formatPNG: true}

// validateFormat checks that the requested format is supported.
func validateFormat(format string) error {
	if !validFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %s (must be 'svg', 'pdf', or 'png')", format)
	}
	return nil
}

// resolveParams builds generation parameters from preset and flags. A preset
// (named or interactively chosen) supplies the base values; explicitly set
// flags override individual fields on top of it.
func (c *CLI) resolveParams(cmd *cobra.Command, opts *generateOpts) (puzzle.Params, error) {
	// Without an explicit seed every run gets a fresh puzzle; the seed is
	// logged so a good one can be reproduced.
	if !cmd.Flags().Changed("seed") {
		opts.seed = rand.Uint64()
		c.Logger.Debug("picked random seed", "seed", opts.seed)
	}

	params := puzzle.Params{
		WidthMM:   opts.width,
		HeightMM:  opts.height,
		Columns:   opts.columns,
		Rows:      opts.rows,
		JitterPct: opts.jitter,
		Seed:      opts.seed,
	}

	if opts.preset == "" && !opts.interactive {
		return params, params.Validate()
	}

	presets, err := loadPresets(opts.presetsFile)
	if err != nil {
		return params, err
	}

	name := opts.preset
	if opts.interactive {
		name, err = pickPreset(presets)
		if err != nil {
			return params, err
		}
		if name == "" {
			return params, errors.New(errors.ErrCodeInvalidPreset, "no preset selected")
		}
	}

	preset, err := presets.Get(name)
	if err != nil {
		return params, err
	}
	base := preset.Params()
	base.Seed = opts.seed

	// Flags the user set explicitly win over the preset.
	flags := cmd.Flags()
	if flags.Changed("width") {
		base.WidthMM = opts.width
	}
	if flags.Changed("height") {
		base.HeightMM = opts.height
	}
	if flags.Changed("columns") {
		base.Columns = opts.columns
	}
	if flags.Changed("rows") {
		base.Rows = opts.rows
	}
	if flags.Changed("jitter") {
		base.JitterPct = opts.jitter
	}
	return base, base.Validate()
}

// loadPresets loads the preset collection from the given file, falling back
// to the default user location when none is specified.
func loadPresets(path string) (*config.Presets, error) {
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return config.Builtin(), nil
		}
	}
	return config.Load(path)
}

// pickPreset runs the interactive preset picker and returns the chosen name.
func pickPreset(presets *config.Presets) (string, error) {
	model := NewPresetListModel(presets)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", fmt.Errorf("preset picker: %w", err)
	}
	if m, ok := final.(PresetListModel); ok && m.Selected != "" {
		return m.Selected, nil
	}
	return "", nil
}

// runGenerate builds the puzzle, renders it in the requested format (serving
// repeated renders from the cache), and writes the result.
func (c *CLI) runGenerate(ctx context.Context, params puzzle.Params, opts *generateOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	p, err := params.Generate()
	if err != nil {
		return err
	}
	logger.Debugf("Built lattice: %d vertices, %d edges", p.VertexCount(), p.EdgeCount())

	renderCache, err := newRenderCache(opts.noCache)
	if err != nil {
		return err
	}
	defer renderCache.Close()

	key := cache.NewDefaultKeyer().RenderKey(params, opts.format)
	data, hit, err := renderCache.Get(ctx, key)
	if err != nil || !hit {
		if data, err = renderOutline(p, opts); err != nil {
			return err
		}
		if err := renderCache.Set(ctx, key, data, generateTTL); err != nil {
			logger.Warn("render cache write failed", "err", err)
		}
	}

	path, toStdout := outputPath(opts)
	if toStdout {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	cols, rows := p.Pieces()
	prog.done(fmt.Sprintf("Generated %dx%d puzzle", cols, rows))
	printSuccess("Wrote %s outline", opts.format)
	printFile(path)
	printStats(p.VertexCount(), p.EdgeCount(), hit)
	printDetail("Seed: %d (reuse with --seed)", params.Seed)
	printNewline()
	printNextStep("Preview in a browser", "puzzgen serve")
	return nil
}

// renderOutline dispatches to the renderer for the requested format. Raster
// formats shell out to a converter, so they get a spinner.
func renderOutline(p *puzzle.Puzzle, opts *generateOpts) ([]byte, error) {
	switch opts.format {
	case formatSVG:
		return outline.RenderSVG(p), nil
	case formatPDF:
		spin := newSpinner("Converting to PDF")
		spin.Start()
		data, err := outline.RenderPDF(p)
		spin.Stop()
		return data, err
	case formatPNG:
		spin := newSpinner("Converting to PNG")
		spin.Start()
		data, err := outline.RenderPNG(p, opts.scale)
		spin.Stop()
		return data, err
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", opts.format)
	}
}

// outputPath resolves where the rendered bytes go. SVG defaults to stdout;
// raster formats default to puzzle.<format> in the working directory.
func outputPath(opts *generateOpts) (path string, toStdout bool) {
	switch opts.output {
	case "-":
		return "", true
	case "":
		if opts.format == formatSVG {
			return "", true
		}
		return "puzzle." + opts.format, false
	default:
		return opts.output, false
	}
}
