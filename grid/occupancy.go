// Package grid provides the occupancy field the autorouter reads: a boolean
// per cell marking which parts of the board are blocked.
package grid

import "gridwire/core"

// Occupancy is a rectangular boolean field over the full grid extent of a
// board. A true cell is blocked. The pathfinder only ever reads an
// Occupancy; marking and clearing are the board owner's job, done between
// searches.
type Occupancy struct {
	geom  core.Geometry
	cells []bool
}

// New returns an all-clear occupancy sized to the given geometry.
func New(geom core.Geometry) *Occupancy {
	return &Occupancy{
		geom:  geom,
		cells: make([]bool, geom.Cols*geom.Rows),
	}
}

// Geometry returns the geometry the field was sized to.
func (o *Occupancy) Geometry() core.Geometry {
	return o.geom
}

func (o *Occupancy) index(p core.GridPoint) int {
	return p.Col*o.geom.Rows + p.Row
}

// At reports whether the cell is blocked. Out-of-bounds cells read as clear.
func (o *Occupancy) At(p core.GridPoint) bool {
	if !o.geom.InBounds(p) {
		return false
	}
	return o.cells[o.index(p)]
}

// Block marks a single cell as occupied. Out-of-bounds cells are ignored.
func (o *Occupancy) Block(p core.GridPoint) {
	if o.geom.InBounds(p) {
		o.cells[o.index(p)] = true
	}
}

// Clear unmarks a single cell. Out-of-bounds cells are ignored.
func (o *Occupancy) Clear(p core.GridPoint) {
	if o.geom.InBounds(p) {
		o.cells[o.index(p)] = false
	}
}

// BlockRect marks a w×h footprint with its top-left corner at (col, row).
// Cells falling outside the grid are ignored.
func (o *Occupancy) BlockRect(col, row, w, h int) {
	for c := col; c < col+w; c++ {
		for r := row; r < row+h; r++ {
			o.Block(core.GridPoint{Col: c, Row: r})
		}
	}
}

// ClearRect unmarks a w×h footprint with its top-left corner at (col, row).
func (o *Occupancy) ClearRect(col, row, w, h int) {
	for c := col; c < col+w; c++ {
		for r := row; r < row+h; r++ {
			o.Clear(core.GridPoint{Col: c, Row: r})
		}
	}
}

// BlockPath marks every cell of a routed path, so later routes in the same
// pass prefer not to cross it.
func (o *Occupancy) BlockPath(p core.Path) {
	for _, pt := range p.Points {
		o.Block(pt)
	}
}

// Passable reports whether a wire may travel through the cell: inside the
// playfield and not blocked.
func (o *Occupancy) Passable(p core.GridPoint) bool {
	return o.geom.Routable(p) && !o.At(p)
}

// Merge returns a fresh occupancy in which a cell is blocked when it is
// blocked in either input. Neither input is mutated; a nil input counts as
// all-clear. Both non-nil inputs must share a geometry.
func Merge(a, b *Occupancy) *Occupancy {
	switch {
	case a == nil && b == nil:
		panic("grid: merge of two nil occupancies")
	case a == nil:
		a = New(b.geom)
	case b == nil:
		b = New(a.geom)
	}
	if a.geom != b.geom {
		panic("grid: merge of occupancies with different geometries")
	}
	out := New(a.geom)
	for i := range out.cells {
		out.cells[i] = a.cells[i] || b.cells[i]
	}
	return out
}
