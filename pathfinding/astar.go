// Package pathfinding implements the directional A* search that routes a
// single wire between two port anchors on the board.
//
// The search runs over (cell, arrival direction, stem phase) states rather
// than bare cells: a wire leaves its source port with a forced straight stem,
// may never turn more than 45 degrees in one step, and must arrive at the
// target travelling in the required direction.
package pathfinding

import (
	"container/heap"
	"errors"

	"gridwire/core"
	"gridwire/grid"
)

// ErrNoPath is returned when no legal route exists between the endpoints
// under the turn, stem and occupancy constraints, or when an endpoint lies
// outside the full grid. It is an expected outcome, not a fault.
var ErrNoPath = errors.New("pathfinding: no path between endpoints")

// PathCost is the cost model for the search. Costs are integers; the
// straight step cost sets the scale and TurnCost is the additive penalty
// for changing direction, biasing the search toward straighter wires.
type PathCost struct {
	StraightCost int
	TurnCost     int
}

// DefaultPathCost keeps the turn penalty at 0.3 of a straight step.
var DefaultPathCost = PathCost{
	StraightCost: 10,
	TurnCost:     3,
}

// Request describes a single routing problem. SourceDir is the direction of
// travel leaving the source; TargetDir is the direction of travel required
// on arrival. StemLength is the number of forced-straight steps immediately
// after the source.
type Request struct {
	Source     core.GridPoint
	Target     core.GridPoint
	SourceDir  core.Direction
	TargetDir  core.Direction
	StemLength int
}

// NewRequest returns a Request with the conventional defaults: travel East
// out of the source, arrive East at the target, one stem step.
func NewRequest(source, target core.GridPoint) Request {
	return Request{
		Source:     source,
		Target:     target,
		SourceDir:  core.East,
		TargetDir:  core.East,
		StemLength: 1,
	}
}

// stemPhase tags a search state as still inside the forced straight stem or
// free to turn. Keeping it an explicit state component (rather than folding
// it into cost math) lets the goal test and expansion rules stay independent.
type stemPhase uint8

const (
	inStem stemPhase = iota
	free
)

// stateKey identifies a search state. Two visits to the same cell with
// different arrival directions or stem phases are distinct states.
type stateKey struct {
	Cell  core.GridPoint
	Dir   core.Direction
	Phase stemPhase
}

// searchNode is one entry in the A* open set.
type searchNode struct {
	key    stateKey
	gCost  int // cost from start
	hCost  int // heuristic cost to goal
	fCost  int // gCost + hCost
	steps  int // unit steps taken from the source
	parent *searchNode
	index  int // position in the heap
}

// nodeQueue is a priority queue of search nodes.
type nodeQueue []*searchNode

func (nq nodeQueue) Len() int { return len(nq) }

func (nq nodeQueue) Less(i, j int) bool {
	if nq[i].fCost != nq[j].fCost {
		return nq[i].fCost < nq[j].fCost
	}
	// Tie-break on hCost first (prefer nodes closer to the goal), then on a
	// fixed state ordering so equal-cost pops are deterministic run to run.
	if nq[i].hCost != nq[j].hCost {
		return nq[i].hCost < nq[j].hCost
	}
	return stateOrder(nq[i].key, nq[j].key)
}

func stateOrder(a, b stateKey) bool {
	if a.Cell.Col != b.Cell.Col {
		return a.Cell.Col < b.Cell.Col
	}
	if a.Cell.Row != b.Cell.Row {
		return a.Cell.Row < b.Cell.Row
	}
	if a.Dir != b.Dir {
		return a.Dir < b.Dir
	}
	return a.Phase < b.Phase
}

func (nq nodeQueue) Swap(i, j int) {
	nq[i], nq[j] = nq[j], nq[i]
	nq[i].index = i
	nq[j].index = j
}

func (nq *nodeQueue) Push(x interface{}) {
	n := x.(*searchNode)
	n.index = len(*nq)
	*nq = append(*nq, n)
}

func (nq *nodeQueue) Pop() interface{} {
	old := *nq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil // avoid memory leak
	node.index = -1
	*nq = old[:n-1]
	return node
}

// Finder runs directional A* searches with a fixed cost model. The zero
// value is not usable; construct with NewFinder.
type Finder struct {
	costs PathCost
}

// NewFinder returns a Finder using the default cost model.
func NewFinder() *Finder {
	return NewFinderWithCosts(DefaultPathCost)
}

// NewFinderWithCosts returns a Finder using a custom cost model.
func NewFinderWithCosts(costs PathCost) *Finder {
	return &Finder{costs: costs}
}

// FindPath routes a wire for the given request over the supplied occupancy.
// The result is either a complete path whose first point is the source and
// last point is the target, or ErrNoPath. Every point except possibly the
// last is inside the playfield and unoccupied; the target itself is exempt
// so wires can dock onto reserved boundary cells. The source cell's own
// occupancy is never checked, since port anchors legitimately sit against a
// component's footprint.
//
// The call is pure and deterministic: same inputs, same path.
func (f *Finder) FindPath(req Request, occ *grid.Occupancy) (core.Path, error) {
	geom := occ.Geometry()

	if !geom.InBounds(req.Source) || !geom.InBounds(req.Target) {
		return core.Path{}, ErrNoPath
	}
	if req.Source == req.Target {
		return core.Path{Points: []core.GridPoint{req.Source}}, nil
	}

	openSet := &nodeQueue{}
	heap.Init(openSet)
	closedSet := make(map[stateKey]bool)
	nodeMap := make(map[stateKey]*searchNode)

	startPhase := free
	if req.StemLength > 0 {
		startPhase = inStem
	}
	start := &searchNode{
		key:   stateKey{Cell: req.Source, Dir: req.SourceDir, Phase: startPhase},
		hCost: f.heuristic(req.Source, req.Target),
	}
	start.fCost = start.hCost

	heap.Push(openSet, start)
	nodeMap[start.key] = start

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*searchNode)

		// A goal can only be declared once the forced stem is complete, so
		// the initial straight run is honored even for very short paths.
		if current.key.Cell == req.Target &&
			current.key.Dir == req.TargetDir &&
			current.key.Phase == free {
			return reconstructPath(current), nil
		}

		closedSet[current.key] = true

		for _, dir := range f.expansions(current.key) {
			next := current.key.Cell.Step(dir)

			// The target is exempt from the passability check: connectors
			// dock at reserved cells just past the playfield boundary.
			if next != req.Target && !occ.Passable(next) {
				continue
			}

			phase := free
			if current.key.Phase == inStem && current.steps+1 < req.StemLength {
				phase = inStem
			}
			key := stateKey{Cell: next, Dir: dir, Phase: phase}
			if closedSet[key] {
				continue
			}

			stepCost := f.costs.StraightCost
			if dir != current.key.Dir {
				stepCost += f.costs.TurnCost
			}
			tentativeG := current.gCost + stepCost

			existing, exists := nodeMap[key]
			if !exists {
				node := &searchNode{
					key:    key,
					gCost:  tentativeG,
					hCost:  f.heuristic(next, req.Target),
					steps:  current.steps + 1,
					parent: current,
				}
				node.fCost = node.gCost + node.hCost
				heap.Push(openSet, node)
				nodeMap[key] = node
			} else if tentativeG < existing.gCost {
				existing.gCost = tentativeG
				existing.fCost = existing.gCost + existing.hCost
				existing.steps = current.steps + 1
				existing.parent = current
				heap.Fix(openSet, existing.index)
			}
		}
	}

	return core.Path{}, ErrNoPath
}

// expansions returns the candidate travel directions out of a state: the
// forced straight continuation while inside the stem, otherwise the three
// directions within the 45-degree turn bound.
func (f *Finder) expansions(key stateKey) []core.Direction {
	if key.Phase == inStem {
		return []core.Direction{key.Dir}
	}
	n := key.Dir.Neighbors()
	return n[:]
}

// heuristic estimates the remaining cost as Chebyshev distance at straight
// cost. It does not account for turn penalties, so the search is biased
// toward straighter wires rather than guaranteed minimum-cost; path
// legality is unaffected.
func (f *Finder) heuristic(from, to core.GridPoint) int {
	return core.Chebyshev(from, to) * f.costs.StraightCost
}

// reconstructPath walks the parent pointers back from the goal node.
func reconstructPath(goal *searchNode) core.Path {
	var points []core.GridPoint
	for n := goal; n != nil; n = n.parent {
		points = append(points, n.key.Cell)
	}
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return core.Path{Points: points}
}
