package board

import (
	"fmt"

	"gridwire/core"
)

// ResolvePortAnchor turns a port reference into the cell the wire docks at
// and the direction of travel through it: the direction a wire leaves an
// output port, or the direction it must be travelling when it arrives at an
// input port. The anchor sits one cell off the port's face, so it may fall
// inside a reserved side zone; the pathfinder's target exemption covers
// docking there.
func (b *Board) ResolvePortAnchor(ref PortRef, role PortRole) (core.GridPoint, core.Direction, error) {
	comp, ok := b.Find(ref.Component)
	if !ok {
		return core.GridPoint{}, core.East, fmt.Errorf("unknown component %q", ref.Component)
	}
	count := comp.Inputs
	if role == RoleOutput {
		count = comp.Outputs
	}
	if ref.Port < 0 || ref.Port >= count {
		return core.GridPoint{}, core.East,
			fmt.Errorf("component %q has no %s port %d", ref.Component, role, ref.Port)
	}

	// Port slots sit at odd offsets along the long faces: 1, 3, 5, ...
	slot := 1 + 2*ref.Port
	w, h := comp.Width(), comp.Height()

	switch comp.Rotation {
	case Rot0: // inputs west, outputs east, travel East
		if role == RoleInput {
			return core.GridPoint{Col: comp.Col - 1, Row: comp.Row + slot}, core.East, nil
		}
		return core.GridPoint{Col: comp.Col + w, Row: comp.Row + slot}, core.East, nil
	case Rot90: // inputs north, outputs south, travel South
		if role == RoleInput {
			return core.GridPoint{Col: comp.Col + slot, Row: comp.Row - 1}, core.South, nil
		}
		return core.GridPoint{Col: comp.Col + slot, Row: comp.Row + h}, core.South, nil
	case Rot180: // inputs east, outputs west, travel West
		if role == RoleInput {
			return core.GridPoint{Col: comp.Col + w, Row: comp.Row + slot}, core.West, nil
		}
		return core.GridPoint{Col: comp.Col - 1, Row: comp.Row + slot}, core.West, nil
	case Rot270: // inputs south, outputs north, travel North
		if role == RoleInput {
			return core.GridPoint{Col: comp.Col + slot, Row: comp.Row + h}, core.North, nil
		}
		return core.GridPoint{Col: comp.Col + slot, Row: comp.Row - 1}, core.North, nil
	}
	return core.GridPoint{}, core.East,
		fmt.Errorf("component %q has invalid rotation %d", ref.Component, comp.Rotation)
}
