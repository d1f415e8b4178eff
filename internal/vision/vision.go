// Package vision maintains the per-tile visibility and exploration
// state. It owns the policy of when the field of view is recomputed;
// the sweep geometry itself belongs to the oracle.
package vision

import (
	"github.com/samdwyer/darkwarren/internal/fov"
	"github.com/samdwyer/darkwarren/internal/world"
)

// Oracle is the visibility computation the tracker drives. IsVisible
// reflects the most recent Compute call; before any Compute it must
// report false everywhere.
type Oracle interface {
	SetProperties(x, y int, transparent, walkable bool)
	Compute(originX, originY, radius int, lightWalls bool, algo fov.Algorithm)
	IsVisible(x, y int) bool
}

// State is the observable rendering state of one tile.
type State int

const (
	// StateUnknown means the tile has never been visible.
	StateUnknown State = iota
	// StateRemembered means the tile was visible before but is not now.
	StateRemembered
	// StateVisible means the tile is in the current field of view.
	StateVisible
)

// Tracker drives the oracle on viewer movement and keeps the grid's
// explored flags in sync with what has been seen. It holds no history
// beyond the previous viewer position.
type Tracker struct {
	dungeon    *world.Dungeon
	oracle     Oracle
	radius     int
	lightWalls bool
	algo       fov.Algorithm

	prevX, prevY int
}

// NewTracker creates a tracker and feeds the grid's sight-blocking and
// walkability flags to the oracle. The previous-position sentinel can
// never match an in-bounds viewer, so the first Update always computes.
func NewTracker(d *world.Dungeon, oracle Oracle, radius int, lightWalls bool) *Tracker {
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			tile := d.GetTile(x, y)
			oracle.SetProperties(x, y, tile.IsTransparent(), tile.IsPassable())
		}
	}

	return &Tracker{
		dungeon:    d,
		oracle:     oracle,
		radius:     radius,
		lightWalls: lightWalls,
		algo:       fov.AlgoShadowcast,
		prevX:      -1,
		prevY:      -1,
	}
}

// Update runs once per tick with the viewer's current position. The
// oracle is re-queried only when the position changed since the last
// tick; every currently visible tile is then marked explored. Explored
// never reverts. Returns whether a recompute happened.
func (t *Tracker) Update(viewerX, viewerY int) bool {
	recomputed := false
	if viewerX != t.prevX || viewerY != t.prevY {
		t.oracle.Compute(viewerX, viewerY, t.radius, t.lightWalls, t.algo)
		t.prevX = viewerX
		t.prevY = viewerY
		recomputed = true
	}

	for y := 0; y < t.dungeon.Height; y++ {
		for x := 0; x < t.dungeon.Width; x++ {
			if t.oracle.IsVisible(x, y) {
				t.dungeon.MarkExplored(x, y)
			}
		}
	}

	return recomputed
}

// StateAt resolves the tile's three-way rendering state from the
// current sweep and the persistent explored flag.
func (t *Tracker) StateAt(x, y int) State {
	if t.oracle.IsVisible(x, y) {
		return StateVisible
	}
	if t.dungeon.GetTile(x, y).Explored {
		return StateRemembered
	}
	return StateUnknown
}

// IsVisible reports whether the tile is in the current field of view.
func (t *Tracker) IsVisible(x, y int) bool {
	return t.oracle.IsVisible(x, y)
}
