// Package board models the gameboard the autorouter serves: placed
// components with directional ports, the connections between them, and the
// static occupancy their footprints produce.
package board

import (
	"fmt"

	"gridwire/core"
	"gridwire/grid"
)

// componentDepth is the footprint depth of a component along its port axis,
// before rotation.
const componentDepth = 4

// Rotation is a component orientation in degrees, clockwise. Only quarter
// turns are valid.
type Rotation int

const (
	Rot0   Rotation = 0
	Rot90  Rotation = 90
	Rot180 Rotation = 180
	Rot270 Rotation = 270
)

// Valid reports whether r is one of the four quarter turns.
func (r Rotation) Valid() bool {
	return r == Rot0 || r == Rot90 || r == Rot180 || r == Rot270
}

// PortRole distinguishes a component's input ports from its output ports.
type PortRole int

const (
	RoleInput PortRole = iota
	RoleOutput
)

// String returns "input" or "output".
func (r PortRole) String() string {
	if r == RoleInput {
		return "input"
	}
	return "output"
}

// Component is a placed part on the board. (Col, Row) is the top-left cell
// of its footprint. At rotation 0 the inputs sit on the west face and the
// outputs on the east face; both faces rotate with the component.
type Component struct {
	ID       string   `yaml:"id"`
	Kind     string   `yaml:"kind"`
	Col      int      `yaml:"col"`
	Row      int      `yaml:"row"`
	Rotation Rotation `yaml:"rotation"`
	Inputs   int      `yaml:"inputs"`
	Outputs  int      `yaml:"outputs"`
}

// portSpan is the number of port slots the long faces must accommodate.
func (c Component) portSpan() int {
	n := c.Inputs
	if c.Outputs > n {
		n = c.Outputs
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Width returns the footprint width in columns at the component's rotation.
func (c Component) Width() int {
	if c.Rotation == Rot90 || c.Rotation == Rot270 {
		return 2*c.portSpan() + 1
	}
	return componentDepth
}

// Height returns the footprint height in rows at the component's rotation.
func (c Component) Height() int {
	if c.Rotation == Rot90 || c.Rotation == Rot270 {
		return componentDepth
	}
	return 2*c.portSpan() + 1
}

// Contains reports whether the cell lies inside the component's footprint.
func (c Component) Contains(p core.GridPoint) bool {
	return p.Col >= c.Col && p.Col < c.Col+c.Width() &&
		p.Row >= c.Row && p.Row < c.Row+c.Height()
}

// PortRef names one port on one component.
type PortRef struct {
	Component string `yaml:"component"`
	Port      int    `yaml:"port"`
}

// Connection is a wire to be routed from an output port to an input port.
type Connection struct {
	ID   string  `yaml:"id"`
	From PortRef `yaml:"from"` // output port
	To   PortRef `yaml:"to"`   // input port
}

// Board is a complete design: geometry, placed components and the wires
// between them, in the order they were added. Connection order is the
// routing order, so it must stay stable.
type Board struct {
	Geometry    core.Geometry
	Components  []Component
	Connections []Connection
}

// New returns an empty board on the given geometry.
func New(geom core.Geometry) *Board {
	return &Board{Geometry: geom}
}

// Find returns the component with the given id.
func (b *Board) Find(id string) (Component, bool) {
	for _, c := range b.Components {
		if c.ID == id {
			return c, true
		}
	}
	return Component{}, false
}

// StaticOccupancy builds the occupancy field of all component footprints.
// The router merges this with the transient per-pass route occupancy.
func (b *Board) StaticOccupancy() *grid.Occupancy {
	occ := grid.New(b.Geometry)
	for _, c := range b.Components {
		occ.BlockRect(c.Col, c.Row, c.Width(), c.Height())
	}
	return occ
}

// Validate checks the design for structural problems: bad rotations,
// footprints leaving the grid, overlapping components, and connections
// naming unknown components or ports.
func (b *Board) Validate() error {
	seen := make(map[string]bool, len(b.Components))
	for _, c := range b.Components {
		if c.ID == "" {
			return fmt.Errorf("board: component with empty id")
		}
		if seen[c.ID] {
			return fmt.Errorf("board: duplicate component id %q", c.ID)
		}
		seen[c.ID] = true
		if !c.Rotation.Valid() {
			return fmt.Errorf("board: component %q has invalid rotation %d", c.ID, c.Rotation)
		}
		corner := core.GridPoint{Col: c.Col + c.Width() - 1, Row: c.Row + c.Height() - 1}
		if !b.Geometry.InBounds(core.GridPoint{Col: c.Col, Row: c.Row}) || !b.Geometry.InBounds(corner) {
			return fmt.Errorf("board: component %q footprint leaves the grid", c.ID)
		}
	}
	for i, a := range b.Components {
		for _, o := range b.Components[i+1:] {
			if a.Col < o.Col+o.Width() && o.Col < a.Col+a.Width() &&
				a.Row < o.Row+o.Height() && o.Row < a.Row+a.Height() {
				return fmt.Errorf("board: components %q and %q overlap", a.ID, o.ID)
			}
		}
	}
	for _, conn := range b.Connections {
		if _, _, err := b.ResolvePortAnchor(conn.From, RoleOutput); err != nil {
			return fmt.Errorf("board: connection %q: %w", conn.ID, err)
		}
		if _, _, err := b.ResolvePortAnchor(conn.To, RoleInput); err != nil {
			return fmt.Errorf("board: connection %q: %w", conn.ID, err)
		}
	}
	return nil
}
