// pkg/render/terminal.go
package render

import (
	"fmt"
	"strings"

	"github.com/opd-ai/go-hovercraft/pkg/engine"
	"github.com/opd-ai/go-hovercraft/pkg/entity"
	"github.com/opd-ai/go-hovercraft/pkg/physics"
)

// TerminalRenderer draws committed simulation snapshots as ASCII for
// headless runs. It reads GameState snapshots only, never live entities.
type TerminalRenderer struct {
	width     int
	height    int
	buffer    [][]rune
	scale     float64
	centerPos physics.Vector2D
}

// NewTerminalRenderer creates a terminal renderer with the given view size.
// scale is world meters per character cell.
func NewTerminalRenderer(width, height int, scale float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	return &TerminalRenderer{
		width:  width,
		height: height,
		buffer: buffer,
		scale:  scale,
	}
}

// SetCenter sets the world position at the middle of the view
func (r *TerminalRenderer) SetCenter(pos physics.Vector2D) {
	r.centerPos = pos
}

// worldToScreen converts world coordinates to buffer coordinates
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	screenX := int((pos.X-r.centerPos.X)/r.scale + float64(r.width)/2)
	screenY := int((pos.Y-r.centerPos.Y)/r.scale + float64(r.height)/2)
	return screenX, screenY
}

// put writes a rune into the buffer if it lands inside the view
func (r *TerminalRenderer) put(x, y int, c rune) {
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = c
	}
}

// DrawState clears the buffer and draws one committed snapshot. The craft
// glyph encodes class; a selected target is framed with the marker glyphs.
func (r *TerminalRenderer) DrawState(state *engine.GameState, viewController string) {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}

	for _, beacon := range state.Beacons {
		x, y := r.worldToScreen(beacon.Position)
		r.put(x, y, 'O')
	}

	for _, craft := range state.Crafts {
		x, y := r.worldToScreen(craft.Position)
		r.put(x, y, craftGlyph(craft.Class))
	}

	// Frame the viewing controller's selected target.
	if selected, ok := state.Selections[viewController]; ok {
		if pos, ok := r.targetPosition(state, selected); ok {
			x, y := r.worldToScreen(pos)
			r.put(x-1, y-1, '+')
			r.put(x+1, y-1, '+')
			r.put(x-1, y+1, '+')
			r.put(x+1, y+1, '+')
		}
	}
}

// targetPosition finds the snapshot position of a craft or beacon
func (r *TerminalRenderer) targetPosition(state *engine.GameState, id entity.ID) (physics.Vector2D, bool) {
	if craft, ok := state.Crafts[id]; ok {
		return craft.Position, true
	}
	if beacon, ok := state.Beacons[id]; ok {
		return beacon.Position, true
	}
	return physics.Vector2D{}, false
}

// Present writes the buffer to the terminal
func (r *TerminalRenderer) Present() {
	fmt.Print("\033[H\033[2J")
	fmt.Println("+" + strings.Repeat("-", r.width) + "+")
	for y := range r.buffer {
		fmt.Print("|")
		for x := range r.buffer[y] {
			fmt.Print(string(r.buffer[y][x]))
		}
		fmt.Println("|")
	}
	fmt.Println("+" + strings.Repeat("-", r.width) + "+")
}

// craftGlyph maps a craft class to its display rune
func craftGlyph(class entity.CraftClass) rune {
	switch class {
	case entity.Gnat:
		return '@'
	case entity.Gubbins:
		return 'G'
	case entity.Freighter:
		return 'F'
	default:
		return '?'
	}
}
