// Package graphdot renders the puzzle's vertex/edge topology as a Graphviz
// diagram. It is a debugging aid for the edge-graph builder: every lattice
// vertex becomes a positioned node and every generated edge a link, with
// interlocking edges drawn dashed so classification mistakes stand out.
package graphdot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/puzzletools/puzzgen/pkg/puzzle"
)

// dotScale converts millimeters to Graphviz inches for pinned positions.
const dotScale = 0.05

// ToDOT converts a puzzle's topology to Graphviz DOT format. Nodes are
// pinned to their lattice positions (y negated, DOT's y axis grows upward)
// so the drawing mirrors the physical sheet.
func ToDOT(p *puzzle.Puzzle) string {
	var buf bytes.Buffer
	buf.WriteString("graph puzzle {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  node [shape=point, width=0.08, color=gray30];\n")
	buf.WriteString("  edge [color=gray60];\n")
	buf.WriteString("\n")

	columns, rows := p.Pieces()
	for row := 0; row <= rows; row++ {
		for col := 0; col <= columns; col++ {
			v := puzzle.VertexIndex{Row: row, Col: col}
			pt := p.Vertex(v)
			fmt.Fprintf(&buf, "  %q [pos=\"%f,%f!\"];\n", v.String(), pt.X*dotScale, -pt.Y*dotScale)
		}
	}

	buf.WriteString("\n")
	for _, e := range p.Edges() {
		attrs := ""
		if e.Kind == puzzle.EdgeTabbed {
			attrs = " [style=dashed, color=steelblue]"
		}
		fmt.Fprintf(&buf, "  %q -- %q%s;\n", e.Key.A.String(), e.Key.B.String(), attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
