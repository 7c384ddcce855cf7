package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridwire/board"
	"gridwire/core"
	"gridwire/grid"
)

// twoPortBench is a small open board: a two-output source on the west side
// facing a two-input sink on the east side.
func twoPortBench() *board.Board {
	b := board.New(core.Geometry{Cols: 30, Rows: 9, PlayMinCol: 0, PlayMaxCol: 29})
	b.Components = []board.Component{
		{ID: "src", Kind: "source", Col: 0, Row: 1, Outputs: 2},
		{ID: "dst", Kind: "sink", Col: 26, Row: 1, Inputs: 2},
	}
	return b
}

func TestRouteAll_StraightPair(t *testing.T) {
	b := twoPortBench()
	b.Connections = []board.Connection{
		{ID: "w1", From: board.PortRef{Component: "src", Port: 0}, To: board.PortRef{Component: "dst", Port: 0}},
		{ID: "w2", From: board.PortRef{Component: "src", Port: 1}, To: board.PortRef{Component: "dst", Port: 1}},
	}
	require.NoError(t, b.Validate())

	routes := NewRouter().RouteAll(b)
	require.Len(t, routes, 2)

	for i, r := range routes {
		require.False(t, r.Path.IsEmpty(), "connection %d unrouted", i)
		source, _, err := b.ResolvePortAnchor(r.Connection.From, board.RoleOutput)
		require.NoError(t, err)
		target, _, err := b.ResolvePortAnchor(r.Connection.To, board.RoleInput)
		require.NoError(t, err)
		assert.Equal(t, source, r.Path.Points[0])
		assert.Equal(t, target, r.Path.Points[r.Path.Len()-1])
	}
}

func TestRouteAll_LaterWiresAvoidEarlierOnes(t *testing.T) {
	// Swapped ports make the two wires cross in the plane. With room to
	// spare they must still end up cell-disjoint: 8-way paths can pass
	// through each other's diagonal gaps.
	b := twoPortBench()
	b.Connections = []board.Connection{
		{ID: "w1", From: board.PortRef{Component: "src", Port: 0}, To: board.PortRef{Component: "dst", Port: 1}},
		{ID: "w2", From: board.PortRef{Component: "src", Port: 1}, To: board.PortRef{Component: "dst", Port: 0}},
	}
	require.NoError(t, b.Validate())

	routes := NewRouter().RouteAll(b)
	require.Len(t, routes, 2)
	require.False(t, routes[0].Path.IsEmpty())
	require.False(t, routes[1].Path.IsEmpty())

	seen := make(map[core.GridPoint]bool)
	for _, p := range routes[0].Path.Points {
		seen[p] = true
	}
	for _, p := range routes[1].Path.Points {
		assert.False(t, seen[p], "wires share cell %v", p)
	}
}

func TestRouteOne_FallsBackToStaticOccupancy(t *testing.T) {
	// A single one-cell corridor joins the two components. When the
	// transient overlay has already consumed it, the merged search fails
	// and the router retries without collision avoidance.
	b := board.New(core.Geometry{Cols: 30, Rows: 9, PlayMinCol: 0, PlayMaxCol: 29})
	b.Components = []board.Component{
		{ID: "src", Col: 0, Row: 3, Outputs: 1},
		{ID: "dst", Col: 26, Row: 3, Inputs: 1},
	}
	conn := board.Connection{ID: "w", From: board.PortRef{Component: "src", Port: 0}, To: board.PortRef{Component: "dst", Port: 0}}

	static := b.StaticOccupancy()
	static.BlockRect(5, 0, 20, 4) // wall above the corridor
	static.BlockRect(5, 5, 20, 4) // wall below the corridor

	transient := grid.New(b.Geometry)
	transient.BlockRect(5, 4, 20, 1) // corridor already used by an earlier wire

	r := NewRouter()
	path := r.routeOne(b, conn, static, transient)

	require.False(t, path.IsEmpty(), "fallback should have routed through the corridor")
	assert.True(t, transient.At(path.Points[5]), "fallback path should reuse the consumed corridor")
}

func TestRouteAll_UnroutableConnectionDoesNotAbortBatch(t *testing.T) {
	b := twoPortBench()
	b.Connections = []board.Connection{
		{ID: "ghost", From: board.PortRef{Component: "nosuch", Port: 0}, To: board.PortRef{Component: "dst", Port: 0}},
		{ID: "w1", From: board.PortRef{Component: "src", Port: 0}, To: board.PortRef{Component: "dst", Port: 1}},
	}
	// The board is deliberately not validated: a stale design can reference
	// a deleted component and must still render with a disconnected wire.

	routes := NewRouter().RouteAll(b)
	require.Len(t, routes, 2)
	assert.True(t, routes[0].Path.IsEmpty(), "ghost connection should be empty, not fatal")
	assert.False(t, routes[1].Path.IsEmpty(), "later connection should still route")
}

func TestRouteAll_OffGridAnchorIsDisconnected(t *testing.T) {
	// An input port on a component flush against the west edge resolves to
	// an anchor outside the grid; the connection stays as a disconnected
	// wire rather than an error.
	b := board.New(core.Geometry{Cols: 30, Rows: 12, PlayMinCol: 0, PlayMaxCol: 29})
	b.Components = []board.Component{
		{ID: "src", Col: 0, Row: 1, Outputs: 1},
		{ID: "edge", Col: 0, Row: 7, Inputs: 1},
	}
	b.Connections = []board.Connection{
		{ID: "w", From: board.PortRef{Component: "src", Port: 0}, To: board.PortRef{Component: "edge", Port: 0}},
	}

	routes := NewRouter().RouteAll(b)
	require.Len(t, routes, 1)
	assert.True(t, routes[0].Path.IsEmpty())
}

func TestRouteAll_Deterministic(t *testing.T) {
	b := twoPortBench()
	b.Connections = []board.Connection{
		{ID: "w1", From: board.PortRef{Component: "src", Port: 0}, To: board.PortRef{Component: "dst", Port: 1}},
		{ID: "w2", From: board.PortRef{Component: "src", Port: 1}, To: board.PortRef{Component: "dst", Port: 0}},
	}

	first := NewRouter().RouteAll(b)
	for i := 0; i < 3; i++ {
		again := NewRouter().RouteAll(b)
		require.Equal(t, first, again, "route pass %d differed", i)
	}
}
