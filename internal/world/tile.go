// Package world provides dungeon generation and map management.
package world

// Tile represents a single map cell.
type Tile struct {
	Blocked    bool // cannot be occupied or entered
	BlockSight bool // opaque to the visibility sweep
	Explored   bool // has ever been visible to the viewer
}

// Wall returns an impassable, opaque tile.
func Wall() Tile {
	return Tile{Blocked: true, BlockSight: true}
}

// Floor returns a passable, transparent tile.
func Floor() Tile {
	return Tile{}
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.Blocked
}

// IsTransparent returns true if the tile does not block line of sight.
func (t Tile) IsTransparent() bool {
	return !t.BlockSight
}
