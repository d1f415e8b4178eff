package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/darkwarren/internal/entity"
	"github.com/samdwyer/darkwarren/internal/vision"
	"github.com/samdwyer/darkwarren/internal/world"
)

// Tile palette. Walls and floors each have a lit color for tiles in
// the current field of view and a dark color for remembered ones.
var (
	colorDarkWall    = tcell.NewRGBColor(0, 0, 100)
	colorDarkGround  = tcell.NewRGBColor(50, 50, 150)
	colorLightWall   = tcell.NewRGBColor(130, 110, 50)
	colorLightGround = tcell.NewRGBColor(200, 180, 50)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the dungeon and entities. Tiles the viewer has never
// seen stay blank; remembered tiles use the dark palette; tiles in the
// current field of view use the lit palette. Entities are drawn only
// when currently visible.
func (r *Renderer) Render(dungeon *world.Dungeon, entities []*entity.Entity, tracker *vision.Tracker) {
	r.screen.Clear()

	for y := 0; y < dungeon.Height; y++ {
		for x := 0; x < dungeon.Width; x++ {
			state := tracker.StateAt(x, y)
			if state == vision.StateUnknown {
				continue
			}
			bg := tileColor(dungeon.GetTile(x, y), state)
			r.screen.SetContent(x, y, ' ', tcell.StyleDefault.Background(bg))
		}
	}

	for _, e := range entities {
		if !tracker.IsVisible(e.X, e.Y) {
			continue
		}
		bg := tileColor(dungeon.GetTile(e.X, e.Y), vision.StateVisible)
		style := tcell.StyleDefault.Foreground(e.Color).Background(bg)
		r.screen.SetContent(e.X, e.Y, e.Glyph, style)
	}

	r.screen.Show()
}

// tileColor resolves a tile's background color from its opacity and
// visibility state.
func tileColor(tile world.Tile, state vision.State) tcell.Color {
	wall := tile.BlockSight
	if state == vision.StateVisible {
		if wall {
			return colorLightWall
		}
		return colorLightGround
	}
	if wall {
		return colorDarkWall
	}
	return colorDarkGround
}

// RenderMessage displays a message at the given row of the screen.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
