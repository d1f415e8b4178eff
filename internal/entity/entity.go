// Package entity provides game entities: the viewer and monsters are
// one uniform type distinguished only by data, not behavior.
package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/darkwarren/internal/gamedata"
)

// KindViewer is the kind tag of the player-controlled entity.
const KindViewer = "viewer"

// Entity is anything that occupies a map position and is drawn as a
// glyph: the viewer, monsters, and whatever else a level spawns.
type Entity struct {
	ID     uuid.UUID   // stable handle, independent of list position
	Name   string      // display name (e.g., "Orc")
	Kind   string      // kind tag (e.g., "orc", KindViewer)
	X, Y   int         // position in the dungeon
	Glyph  rune        // display character
	Color  tcell.Color // display color
	Blocks bool        // whether this entity blocks movement
	Alive  bool
}

// New creates an entity at the given position.
func New(x, y int, glyph rune, color tcell.Color, name, kind string, blocks bool) *Entity {
	return &Entity{
		ID:     uuid.New(),
		Name:   name,
		Kind:   kind,
		X:      x,
		Y:      y,
		Glyph:  glyph,
		Color:  color,
		Blocks: blocks,
		Alive:  true,
	}
}

// NewViewer creates the player-controlled entity.
func NewViewer(x, y int) *Entity {
	return New(x, y, '@', tcell.ColorWhite, "Player", KindViewer, true)
}

// NewMonster creates a monster entity from a data-driven definition.
func NewMonster(def *gamedata.MonsterDef, x, y int) *Entity {
	return New(x, y, def.GlyphRune(), def.TCellColor(), def.Name, def.ID, def.Blocks)
}

// MoveBy updates the entity position by the given delta. Collision
// checks belong to the caller.
func (e *Entity) MoveBy(dx, dy int) {
	e.X += dx
	e.Y += dy
}

// Position returns the current x, y coordinates.
func (e *Entity) Position() (int, int) {
	return e.X, e.Y
}
