package outline

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/puzzletools/puzzgen/pkg/puzzle"
)

// RenderPDF renders the puzzle outline as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(p *puzzle.Puzzle, opts ...SVGOption) ([]byte, error) {
	return rsvgConvert(RenderSVG(p, opts...), "pdf")
}

// RenderPNG renders the puzzle outline as PNG via SVG conversion with the
// given scale factor. Scale of 2.0 produces a 2x resolution image.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(p *puzzle.Puzzle, scale float64, opts ...SVGOption) ([]byte, error) {
	return rsvgConvert(RenderSVG(p, opts...), "png", "-z", fmt.Sprintf("%.2f", scale))
}

// rsvgConvert shells out to rsvg-convert for format conversion.
func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, fmt.Errorf("%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command("rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rsvg-convert: %v: %s", err, errBuf.String())
	}
	return out.Bytes(), nil
}
