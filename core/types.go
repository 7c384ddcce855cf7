// Package core contains the fundamental types shared by the gridwire
// autorouter: grid points, the 8-way compass model, paths and board geometry.
package core

// GridPoint identifies a single cell on the board as a (column, row) pair.
// Rows grow downward, columns grow to the right.
type GridPoint struct {
	Col, Row int
}

// Step returns the cell one unit away from p in direction d.
func (p GridPoint) Step(d Direction) GridPoint {
	dc, dr := d.Delta()
	return GridPoint{Col: p.Col + dc, Row: p.Row + dr}
}

// Chebyshev returns the Chebyshev distance between two points:
// max(|dCol|, |dRow|). It is the exact number of unit steps between the
// points under 8-way movement, and therefore an admissible heuristic for
// unit-cost searches.
func Chebyshev(a, b GridPoint) int {
	dc := abs(a.Col - b.Col)
	dr := abs(a.Row - b.Row)
	if dc > dr {
		return dc
	}
	return dr
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Path is an ordered sequence of grid cells, each exactly one compass step
// from the previous. An empty Path is the "disconnected wire" state.
type Path struct {
	Points []GridPoint
}

// Len returns the number of points in the path.
func (p Path) Len() int {
	return len(p.Points)
}

// IsEmpty reports whether the path has no points.
func (p Path) IsEmpty() bool {
	return len(p.Points) == 0
}

// SegmentDirection returns the travel direction of segment i, the step from
// Points[i] to Points[i+1]. It panics if the step is not a unit compass step.
func (p Path) SegmentDirection(i int) Direction {
	d, ok := DirectionFromDelta(p.Points[i+1].Col-p.Points[i].Col, p.Points[i+1].Row-p.Points[i].Row)
	if !ok {
		panic("core: path segment is not a unit compass step")
	}
	return d
}

// Geometry describes the board dimensions: the full grid extent, and the
// playfield sub-region where wires may travel. The columns outside
// [PlayMinCol, PlayMaxCol] are reserved connector zones; endpoints may sit
// there but routes may not pass through.
type Geometry struct {
	Cols, Rows int
	PlayMinCol int
	PlayMaxCol int // inclusive
}

// DefaultGeometry is the standard board: 54 columns by 36 rows, with the
// playfield spanning columns 6 through 47.
var DefaultGeometry = Geometry{
	Cols:       54,
	Rows:       36,
	PlayMinCol: 6,
	PlayMaxCol: 47,
}

// InBounds reports whether p lies within the full grid extent.
func (g Geometry) InBounds(p GridPoint) bool {
	return p.Col >= 0 && p.Col < g.Cols && p.Row >= 0 && p.Row < g.Rows
}

// Routable reports whether p lies within the playfield sub-region. Reserved
// side zones are in bounds but not routable.
func (g Geometry) Routable(p GridPoint) bool {
	return p.Col >= g.PlayMinCol && p.Col <= g.PlayMaxCol &&
		p.Row >= 0 && p.Row < g.Rows
}
