package puzzle

import (
	"fmt"

	"github.com/puzzletools/puzzgen/pkg/geom"
)

// genVertices fills the vertex table with the (columns+1) × (rows+1) lattice
// points in row-major order. Spacing is uniform: widthMM/columns horizontally
// and heightMM/rows vertically. The Builder has already rejected zero piece
// counts, so the divisions are well-defined.
func (p *Puzzle) genVertices() {
	pieceWidth := p.widthMM / float64(p.xPieces)
	pieceHeight := p.heightMM / float64(p.yPieces)

	p.vertices = make([]geom.Point, 0, (p.xPieces+1)*(p.yPieces+1))
	for row := 0; row <= p.yPieces; row++ {
		for col := 0; col <= p.xPieces; col++ {
			p.vertices = append(p.vertices, geom.Pt(float64(col)*pieceWidth, float64(row)*pieceHeight))
		}
	}

	if want := (p.xPieces + 1) * (p.yPieces + 1); len(p.vertices) != want {
		panic(fmt.Sprintf("puzzle: generated %d vertices for %dx%d pieces, want %d",
			len(p.vertices), p.xPieces, p.yPieces, want))
	}
}

// flatIndex maps a vertex index to its row-major position in the vertex
// table: row*(columns+1) + col.
func (p *Puzzle) flatIndex(v VertexIndex) int {
	return v.Row*(p.xPieces+1) + v.Col
}

// inBounds reports whether v is a valid lattice position.
func (p *Puzzle) inBounds(v VertexIndex) bool {
	return v.Row >= 0 && v.Row <= p.yPieces && v.Col >= 0 && v.Col <= p.xPieces
}

// onBoundary reports whether v lies on the outer rectangle of the lattice.
func (p *Puzzle) onBoundary(v VertexIndex) bool {
	return v.Row == 0 || v.Row == p.yPieces || v.Col == 0 || v.Col == p.xPieces
}

// Vertex resolves a lattice index to its generated point.
func (p *Puzzle) Vertex(v VertexIndex) geom.Point {
	if !p.inBounds(v) {
		panic(fmt.Sprintf("puzzle: vertex %v out of bounds for %dx%d pieces", v, p.xPieces, p.yPieces))
	}
	return p.vertices[p.flatIndex(v)]
}
