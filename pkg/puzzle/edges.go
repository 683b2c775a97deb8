package puzzle

import "fmt"

// neighborOffsets is the fixed visitation order (up, down, left, right).
// A fixed order pins down which random draws pair with which edge, so a
// seeded generation is reproducible byte-for-byte.
var neighborOffsets = [4]struct{ dRow, dCol int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
}

// genEdges discovers every lattice edge exactly once via breadth-first
// expansion from the top-left vertex, then synthesizes per-edge geometry.
//
// The frontier is an explicit FIFO queue; a vertex enters it at most once.
// Each dequeued vertex emits one edge per not-yet-visited neighbor, keyed by
// the canonical (min, max) index pair. Duplicate keys and vertex re-visits
// are generator bugs and panic.
func (p *Puzzle) genEdges() {
	vertexCount := (p.xPieces + 1) * (p.yPieces + 1)
	visited := make(map[VertexIndex]bool, vertexCount)
	enqueued := make(map[VertexIndex]bool, vertexCount)
	p.edges = make(map[EdgeKey]Edge, expectedEdgeCount(p.xPieces, p.yPieces))

	queue := make([]VertexIndex, 0, vertexCount)
	origin := VertexIndex{Row: 0, Col: 0}
	queue = append(queue, origin)
	enqueued[origin] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			panic(fmt.Sprintf("puzzle: vertex %v visited twice during edge expansion", current))
		}

		for _, d := range neighborOffsets {
			neighbor := VertexIndex{Row: current.Row + d.dRow, Col: current.Col + d.dCol}
			if !p.inBounds(neighbor) || visited[neighbor] {
				continue
			}

			key := MakeEdgeKey(current, neighbor)
			if _, dup := p.edges[key]; dup {
				panic(fmt.Sprintf("puzzle: duplicate edge %v-%v", key.A, key.B))
			}
			p.edges[key] = p.synthesizeEdge(key)

			if !enqueued[neighbor] {
				enqueued[neighbor] = true
				queue = append(queue, neighbor)
			}
		}

		visited[current] = true
	}

	if want := expectedEdgeCount(p.xPieces, p.yPieces); len(p.edges) != want {
		panic(fmt.Sprintf("puzzle: generated %d edges for %dx%d pieces, want %d",
			len(p.edges), p.xPieces, p.yPieces, want))
	}
}

// expectedEdgeCount is all horizontal plus all vertical lattice edges:
// (columns+1)*rows + columns*(rows+1).
func expectedEdgeCount(xPieces, yPieces int) int {
	return (xPieces+1)*yPieces + xPieces*(yPieces+1)
}

// classifyEdge decides the edge variant: an edge is plain iff both of its
// endpoints lie on the outer rectangle. Everything else separates two
// pieces and interlocks.
func (p *Puzzle) classifyEdge(key EdgeKey) EdgeKind {
	if p.onBoundary(key.A) && p.onBoundary(key.B) {
		return EdgePlain
	}
	return EdgeTabbed
}
