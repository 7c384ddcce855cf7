package grid

import (
	"testing"

	"gridwire/core"
)

func testGeometry(cols, rows int) core.Geometry {
	return core.Geometry{Cols: cols, Rows: rows, PlayMinCol: 0, PlayMaxCol: cols - 1}
}

func TestOccupancyBlockAndClear(t *testing.T) {
	occ := New(testGeometry(10, 8))
	p := core.GridPoint{Col: 3, Row: 4}

	if occ.At(p) {
		t.Error("fresh grid has a blocked cell")
	}
	occ.Block(p)
	if !occ.At(p) {
		t.Error("Block did not mark the cell")
	}
	occ.Clear(p)
	if occ.At(p) {
		t.Error("Clear did not unmark the cell")
	}
}

func TestOccupancyOutOfBoundsReadsClear(t *testing.T) {
	occ := New(testGeometry(4, 4))
	outside := core.GridPoint{Col: 9, Row: 9}
	occ.Block(outside) // ignored
	if occ.At(outside) {
		t.Error("out-of-bounds cell reads blocked")
	}
}

func TestOccupancyBlockRect(t *testing.T) {
	occ := New(testGeometry(10, 10))
	occ.BlockRect(2, 3, 3, 2)

	for c := 0; c < 10; c++ {
		for r := 0; r < 10; r++ {
			inRect := c >= 2 && c < 5 && r >= 3 && r < 5
			if got := occ.At(core.GridPoint{Col: c, Row: r}); got != inRect {
				t.Errorf("cell (%d,%d) blocked=%v, want %v", c, r, got, inRect)
			}
		}
	}

	occ.ClearRect(2, 3, 3, 2)
	if occ.At(core.GridPoint{Col: 3, Row: 4}) {
		t.Error("ClearRect left a blocked cell")
	}
}

func TestOccupancyBlockRectClipsAtEdges(t *testing.T) {
	occ := New(testGeometry(5, 5))
	occ.BlockRect(3, 3, 4, 4) // spills past both edges
	if !occ.At(core.GridPoint{Col: 4, Row: 4}) {
		t.Error("in-bounds portion of the rect not blocked")
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	geom := testGeometry(6, 6)
	a := New(geom)
	b := New(geom)
	a.Block(core.GridPoint{Col: 1, Row: 1})
	b.Block(core.GridPoint{Col: 4, Row: 4})

	m := Merge(a, b)

	if !m.At(core.GridPoint{Col: 1, Row: 1}) || !m.At(core.GridPoint{Col: 4, Row: 4}) {
		t.Error("merge lost a blocked cell")
	}
	if m.At(core.GridPoint{Col: 2, Row: 2}) {
		t.Error("merge invented a blocked cell")
	}
	if a.At(core.GridPoint{Col: 4, Row: 4}) || b.At(core.GridPoint{Col: 1, Row: 1}) {
		t.Error("merge mutated an input grid")
	}

	// The merged grid is independent of both inputs.
	m.Block(core.GridPoint{Col: 3, Row: 3})
	if a.At(core.GridPoint{Col: 3, Row: 3}) || b.At(core.GridPoint{Col: 3, Row: 3}) {
		t.Error("writes to the merged grid reached an input")
	}
}

func TestMergeNilInput(t *testing.T) {
	geom := testGeometry(4, 4)
	a := New(geom)
	a.Block(core.GridPoint{Col: 2, Row: 2})

	if m := Merge(a, nil); !m.At(core.GridPoint{Col: 2, Row: 2}) {
		t.Error("Merge(a, nil) lost a's cells")
	}
	if m := Merge(nil, a); !m.At(core.GridPoint{Col: 2, Row: 2}) {
		t.Error("Merge(nil, a) lost a's cells")
	}
}

func TestPassableRespectsPlayfield(t *testing.T) {
	geom := core.Geometry{Cols: 10, Rows: 5, PlayMinCol: 2, PlayMaxCol: 7}
	occ := New(geom)
	occ.Block(core.GridPoint{Col: 4, Row: 2})

	tests := []struct {
		name string
		p    core.GridPoint
		want bool
	}{
		{"clear playfield cell", core.GridPoint{Col: 3, Row: 2}, true},
		{"blocked playfield cell", core.GridPoint{Col: 4, Row: 2}, false},
		{"reserved west cell", core.GridPoint{Col: 1, Row: 2}, false},
		{"reserved east cell", core.GridPoint{Col: 8, Row: 2}, false},
		{"outside grid", core.GridPoint{Col: -1, Row: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := occ.Passable(tt.p); got != tt.want {
				t.Errorf("Passable(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBlockPath(t *testing.T) {
	occ := New(testGeometry(8, 8))
	path := core.Path{Points: []core.GridPoint{{Col: 1, Row: 1}, {Col: 2, Row: 1}, {Col: 3, Row: 2}}}
	occ.BlockPath(path)
	for _, p := range path.Points {
		if !occ.At(p) {
			t.Errorf("path cell %v not blocked", p)
		}
	}
}
