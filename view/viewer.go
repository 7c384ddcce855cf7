// Package view is an interactive terminal viewer for routed boards. It is a
// pure consumer of routing results: no editing, no persistence.
package view

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"gridwire/board"
	"gridwire/core"
	"gridwire/render"
	"gridwire/routing"
)

// netColors cycles per-connection so adjacent wires are distinguishable.
var netColors = []tcell.Color{
	tcell.ColorGreen,
	tcell.ColorAqua,
	tcell.ColorYellow,
	tcell.ColorFuchsia,
	tcell.ColorLime,
	tcell.ColorOrange,
}

// Viewer displays one board and its routes on a tcell screen.
type Viewer struct {
	board        *board.Board
	router       *routing.Router
	routes       []routing.Routed
	showOccupied bool
}

// New returns a viewer for the board. Routes are computed on Run and
// recomputed on demand.
func New(b *board.Board, r *routing.Router) *Viewer {
	return &Viewer{board: b, router: r}
}

// Run routes the board and enters the event loop. Keys: q/Esc quit,
// o toggles the occupancy overlay, r reroutes.
func (v *Viewer) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("view: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("view: init screen: %w", err)
	}
	defer screen.Fini()

	v.routes = v.router.RouteAll(v.board)

	for {
		v.draw(screen)
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				return nil
			case ev.Rune() == 'o':
				v.showOccupied = !v.showOccupied
			case ev.Rune() == 'r':
				v.routes = v.router.RouteAll(v.board)
			}
		}
	}
}

func (v *Viewer) draw(screen tcell.Screen) {
	screen.Clear()
	geom := v.board.Geometry

	if v.showOccupied {
		occ := v.board.StaticOccupancy()
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		for c := 0; c < geom.Cols; c++ {
			for r := 0; r < geom.Rows; r++ {
				if occ.At(core.GridPoint{Col: c, Row: r}) {
					screen.SetContent(c, r, '.', nil, style)
				}
			}
		}
	}

	// Components and endpoints come from the shared ASCII canvas; wires are
	// overdrawn with per-net colors.
	cv := render.NewCanvas(geom)
	for _, c := range v.board.Components {
		cv.DrawComponent(c)
	}
	compStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for c := 0; c < geom.Cols; c++ {
		for r := 0; r < geom.Rows; r++ {
			if ch := cv.Get(core.GridPoint{Col: c, Row: r}); ch != ' ' {
				screen.SetContent(c, r, ch, nil, compStyle)
			}
		}
	}

	for i, routed := range v.routes {
		style := tcell.StyleDefault.Foreground(netColors[i%len(netColors)])
		wc := render.NewCanvas(geom)
		wc.DrawPath(routed.Path)
		for c := 0; c < geom.Cols; c++ {
			for r := 0; r < geom.Rows; r++ {
				if ch := wc.Get(core.GridPoint{Col: c, Row: r}); ch != ' ' {
					screen.SetContent(c, r, ch, nil, style)
				}
			}
		}
	}

	v.statusLine(screen)
	screen.Show()
}

func (v *Viewer) statusLine(screen tcell.Screen) {
	_, h := screen.Size()
	unrouted := 0
	for _, r := range v.routes {
		if r.Path.IsEmpty() {
			unrouted++
		}
	}
	msg := fmt.Sprintf(" %d components, %d/%d wires routed | o: occupancy  r: reroute  q: quit",
		len(v.board.Components), len(v.routes)-unrouted, len(v.routes))
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	for i, ch := range msg {
		screen.SetContent(i, h-1, ch, nil, style)
	}
}
