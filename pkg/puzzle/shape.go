package puzzle

import "github.com/puzzletools/puzzgen/pkg/geom"

// tabTemplate is the canonical interlocking tab, defined in the unit frame
// where the parent segment runs from (0,0) to (1,0). The tab bulges above
// the segment line; mirroring flips it below.
var tabTemplate = Tab{
	StartControl:       geom.Pt(0.2, 0),
	LeftNubbinControl:  geom.Pt(0.5, -0.1),
	NubbinStart:        geom.Pt(0.4, 0.1),
	RightNubbinControl: geom.Pt(0.7, 0.3),
	NubbinEnd:          geom.Pt(0.6, 0.1),
	EndControl:         geom.Pt(0.8, 0),
}

// synthesizeEdge produces the control geometry for one discovered edge.
// Border edges carry none. Interior edges get a jittered copy of the unit
// template, mirrored across the segment axis with probability 1/2 so tabs
// bulge to either side.
//
// Jitter magnitudes are relative to the unit frame (piece size 1): the two
// nubbin-neck points move at half the configured magnitude, the four curve
// controls at the full magnitude. Draw order is fixed so a seeded run
// reproduces exactly.
func (p *Puzzle) synthesizeEdge(key EdgeKey) Edge {
	kind := p.classifyEdge(key)
	if kind == EdgePlain {
		return Edge{Key: key, Kind: EdgePlain}
	}

	full := p.jitterPct / 100
	half := full / 2

	tab := Tab{
		StartControl:       tabTemplate.StartControl.Jitter(p.rng, full, full),
		LeftNubbinControl:  tabTemplate.LeftNubbinControl.Jitter(p.rng, full, full),
		NubbinStart:        tabTemplate.NubbinStart.Jitter(p.rng, half, half),
		RightNubbinControl: tabTemplate.RightNubbinControl.Jitter(p.rng, full, full),
		NubbinEnd:          tabTemplate.NubbinEnd.Jitter(p.rng, half, half),
		EndControl:         tabTemplate.EndControl.Jitter(p.rng, full, full),
	}
	if p.rng.IntN(2) == 1 {
		tab = tab.Mirror()
	}

	return Edge{Key: key, Kind: EdgeTabbed, Tab: &tab}
}

// Template returns a copy of the canonical unit-frame tab. Exposed for
// rendering previews and tests.
func Template() Tab {
	return tabTemplate
}
