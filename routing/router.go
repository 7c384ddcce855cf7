// Package routing runs a full-board route pass: one pathfinder call per
// connection, each successful route becoming an obstacle for the next.
package routing

import (
	"errors"
	"io"
	"log/slog"

	"gridwire/board"
	"gridwire/core"
	"gridwire/grid"
	"gridwire/pathfinding"
)

// StemLength is the forced straight run out of every port. One step keeps
// wires from folding back onto a component face immediately after leaving it.
const StemLength = 1

// Routed pairs a connection with its computed route. An empty Path means
// the connection could not be routed and renders as a disconnected wire;
// it is not an error.
type Routed struct {
	Connection board.Connection
	Path       core.Path
}

// Router routes the connections of a board in order. Connections later in
// the list avoid crossing earlier ones where the geometry allows it, so a
// pass is order-dependent by design and must stay sequential.
type Router struct {
	finder *pathfinding.Finder
	log    *slog.Logger
}

// NewRouter returns a Router with the default cost model and a no-op logger.
func NewRouter() *Router {
	return &Router{
		finder: pathfinding.NewFinder(),
		log:    slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(1 << 30)})),
	}
}

// SetLogger installs a logger for per-connection diagnostics.
func (r *Router) SetLogger(log *slog.Logger) {
	if log != nil {
		r.log = log
	}
}

// SetCosts replaces the pathfinder cost model.
func (r *Router) SetCosts(costs pathfinding.PathCost) {
	r.finder = pathfinding.NewFinderWithCosts(costs)
}

// RouteAll routes every connection on the board, in list order. The result
// always has one entry per connection; unroutable connections carry an
// empty path. The board is not mutated.
func (r *Router) RouteAll(b *board.Board) []Routed {
	static := b.StaticOccupancy()
	transient := grid.New(b.Geometry)

	results := make([]Routed, 0, len(b.Connections))
	for _, conn := range b.Connections {
		routed := Routed{Connection: conn, Path: r.routeOne(b, conn, static, transient)}
		transient.BlockPath(routed.Path)
		results = append(results, routed)
	}
	return results
}

// routeOne routes a single connection. It first tries the merged view of
// component footprints plus already-routed wires; if that is infeasible it
// drops the wire-crossing constraint and retries against the footprints
// alone. That graceful degradation trades a crossing for a connection, the
// original behavior.
func (r *Router) routeOne(b *board.Board, conn board.Connection, static, transient *grid.Occupancy) core.Path {
	source, sourceDir, err := b.ResolvePortAnchor(conn.From, board.RoleOutput)
	if err != nil {
		r.log.Warn("unresolvable source port", "connection", conn.ID, "err", err)
		return core.Path{}
	}
	target, targetDir, err := b.ResolvePortAnchor(conn.To, board.RoleInput)
	if err != nil {
		r.log.Warn("unresolvable target port", "connection", conn.ID, "err", err)
		return core.Path{}
	}

	req := pathfinding.Request{
		Source:     source,
		Target:     target,
		SourceDir:  sourceDir,
		TargetDir:  targetDir,
		StemLength: StemLength,
	}

	path, err := r.finder.FindPath(req, grid.Merge(static, transient))
	if err == nil {
		r.log.Debug("routed", "connection", conn.ID, "points", path.Len())
		return path
	}
	if !errors.Is(err, pathfinding.ErrNoPath) {
		r.log.Warn("route failed", "connection", conn.ID, "err", err)
		return core.Path{}
	}

	// Retry without the transient overlay.
	path, err = r.finder.FindPath(req, static)
	if err != nil {
		r.log.Warn("connection left unrouted", "connection", conn.ID)
		return core.Path{}
	}
	r.log.Debug("routed crossing earlier wires", "connection", conn.ID, "points", path.Len())
	return path
}
