package core

// Direction is one of the 8 compass directions, indexed clockwise starting
// at East. Wires travel in unit steps along these directions; the 4
// diagonals are legal moves.
type Direction int

const (
	East Direction = iota
	SouthEast
	South
	SouthWest
	West
	NorthWest
	North
	NorthEast
)

// directionCount is the size of the compass.
const directionCount = 8

var deltas = [directionCount][2]int{
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
	North:     {0, -1},
	NorthEast: {1, -1},
}

var directionNames = [directionCount]string{
	East:      "East",
	SouthEast: "SouthEast",
	South:     "South",
	SouthWest: "SouthWest",
	West:      "West",
	NorthWest: "NorthWest",
	North:     "North",
	NorthEast: "NorthEast",
}

// String returns the compass name of the direction.
func (d Direction) String() string {
	if d < 0 || d >= directionCount {
		return "Unknown"
	}
	return directionNames[d]
}

// Delta returns the unit column/row movement for the direction.
func (d Direction) Delta() (dCol, dRow int) {
	return deltas[d][0], deltas[d][1]
}

// Opposite returns the direction rotated 180 degrees.
func (d Direction) Opposite() Direction {
	return (d + 4) % directionCount
}

// Neighbors returns the three directions reachable from d in a single step:
// straight ahead, 45 degrees counter-clockwise and 45 degrees clockwise.
// A wire may never turn more sharply than 45 degrees at once.
func (d Direction) Neighbors() [3]Direction {
	return [3]Direction{
		d,
		(d + directionCount - 1) % directionCount,
		(d + 1) % directionCount,
	}
}

// CanFollow reports whether next is a legal continuation of d, meaning the
// two differ by at most 45 degrees.
func (d Direction) CanFollow(next Direction) bool {
	diff := (next - d + directionCount) % directionCount
	return diff == 0 || diff == 1 || diff == directionCount-1
}

// DirectionFromDelta maps a unit (dCol, dRow) pair back to its Direction.
// The second result is false when the pair is not one of the 8 unit vectors.
func DirectionFromDelta(dCol, dRow int) (Direction, bool) {
	for d, v := range deltas {
		if v[0] == dCol && v[1] == dRow {
			return Direction(d), true
		}
	}
	return East, false
}
