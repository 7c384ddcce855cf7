// Package render draws a routed board as plain text: component footprints
// as boxes, wires as line runes with diagonals, and optionally the blocked
// cells of an occupancy field as dots.
package render

import (
	"strings"

	"gridwire/board"
	"gridwire/core"
	"gridwire/grid"
	"gridwire/routing"
)

// wire runes per travel direction. Diagonals render as slashes, orthogonal
// runs as pipes and dashes.
var wireRunes = [8]rune{
	core.East:      '-',
	core.SouthEast: '\\',
	core.South:     '|',
	core.SouthWest: '/',
	core.West:      '-',
	core.NorthWest: '\\',
	core.North:     '|',
	core.NorthEast: '/',
}

// Canvas is a rune matrix sized to a board geometry. (0,0) is the top-left
// cell; columns increase rightward, rows downward.
type Canvas struct {
	geom  core.Geometry
	cells [][]rune
}

// NewCanvas returns a blank canvas for the geometry.
func NewCanvas(geom core.Geometry) *Canvas {
	cells := make([][]rune, geom.Rows)
	for r := range cells {
		cells[r] = make([]rune, geom.Cols)
		for c := range cells[r] {
			cells[r][c] = ' '
		}
	}
	return &Canvas{geom: geom, cells: cells}
}

// Set places a rune at the cell, ignoring out-of-bounds writes.
func (cv *Canvas) Set(p core.GridPoint, ch rune) {
	if cv.geom.InBounds(p) {
		cv.cells[p.Row][p.Col] = ch
	}
}

// Get returns the rune at the cell, or space when out of bounds.
func (cv *Canvas) Get(p core.GridPoint) rune {
	if !cv.geom.InBounds(p) {
		return ' '
	}
	return cv.cells[p.Row][p.Col]
}

// String renders the canvas as rows of runes, trailing spaces trimmed.
func (cv *Canvas) String() string {
	var sb strings.Builder
	for _, row := range cv.cells {
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DrawOccupancy dots every blocked cell that is still blank, for debugging
// route failures.
func (cv *Canvas) DrawOccupancy(occ *grid.Occupancy) {
	for c := 0; c < cv.geom.Cols; c++ {
		for r := 0; r < cv.geom.Rows; r++ {
			p := core.GridPoint{Col: c, Row: r}
			if occ.At(p) && cv.Get(p) == ' ' {
				cv.Set(p, '.')
			}
		}
	}
}

// DrawComponent draws a component footprint as a box with its id along the
// top edge.
func (cv *Canvas) DrawComponent(c board.Component) {
	w, h := c.Width(), c.Height()
	for col := c.Col; col < c.Col+w; col++ {
		cv.Set(core.GridPoint{Col: col, Row: c.Row}, '-')
		cv.Set(core.GridPoint{Col: col, Row: c.Row + h - 1}, '-')
	}
	for row := c.Row; row < c.Row+h; row++ {
		cv.Set(core.GridPoint{Col: c.Col, Row: row}, '|')
		cv.Set(core.GridPoint{Col: c.Col + w - 1, Row: row}, '|')
	}
	for _, corner := range []core.GridPoint{
		{Col: c.Col, Row: c.Row},
		{Col: c.Col + w - 1, Row: c.Row},
		{Col: c.Col, Row: c.Row + h - 1},
		{Col: c.Col + w - 1, Row: c.Row + h - 1},
	} {
		cv.Set(corner, '+')
	}
	label := []rune(c.ID)
	for i := 0; i < len(label) && i < w-2; i++ {
		cv.Set(core.GridPoint{Col: c.Col + 1 + i, Row: c.Row}, label[i])
	}
}

// DrawPath draws a routed wire. Bends render as '+', endpoints as 'o', and
// straight runs use the rune of their travel direction.
func (cv *Canvas) DrawPath(p core.Path) {
	if p.IsEmpty() {
		return
	}
	for i := 1; i < p.Len()-1; i++ {
		in := p.SegmentDirection(i - 1)
		out := p.SegmentDirection(i)
		ch := wireRunes[out]
		if in != out {
			ch = '+'
		}
		cv.Set(p.Points[i], ch)
	}
	cv.Set(p.Points[0], 'o')
	cv.Set(p.Points[p.Len()-1], 'o')
}

// Board renders a complete routed design. When occ is non-nil its blocked
// cells are dotted underneath everything else.
func Board(b *board.Board, routes []routing.Routed, occ *grid.Occupancy) string {
	cv := NewCanvas(b.Geometry)
	for _, c := range b.Components {
		cv.DrawComponent(c)
	}
	for _, r := range routes {
		cv.DrawPath(r.Path)
	}
	if occ != nil {
		cv.DrawOccupancy(occ)
	}
	return cv.String()
}
