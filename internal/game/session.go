package game

import (
	"context"
	"math/rand"

	"github.com/samdwyer/darkwarren/internal/entity"
	"github.com/samdwyer/darkwarren/internal/gamedata"
	"github.com/samdwyer/darkwarren/internal/world"
)

// Session owns one dungeon level: the grid and the entity collection.
// It lives for exactly one level and is replaced wholesale on
// regeneration. The viewer sits at index 0 of the entity list but
// callers should go through Viewer() rather than rely on that.
type Session struct {
	Dungeon  *world.Dungeon
	Entities []*entity.Entity
	viewer   *entity.Entity
}

// NewSession generates a level and populates it. The viewer starts at
// the center of the first accepted room; if generation accepted no
// rooms the viewer keeps its default position of (0, 0), which the
// caller can inspect via RoomCount() == 0.
func NewSession(ctx context.Context, cfg Config, rng *rand.Rand, registry *gamedata.MonsterRegistry) *Session {
	s := &Session{
		Dungeon: world.NewDungeon(cfg.MapWidth, cfg.MapHeight, rng),
	}

	viewer := entity.NewViewer(0, 0)
	s.Entities = append(s.Entities, viewer)
	s.viewer = viewer

	spawner := entity.NewSpawner(registry, rng, cfg.MaxMonstersPerRoom)
	s.Dungeon.Generate(ctx, world.GenConfig{
		MinRoomSize: cfg.MinRoomSize,
		MaxRoomSize: cfg.MaxRoomSize,
		MaxRooms:    cfg.MaxRooms,
		Spawn: func(room world.Rect) {
			s.Entities = append(s.Entities, spawner.Populate(room)...)
		},
	})

	if x, y, ok := s.Dungeon.EntryPoint(); ok {
		viewer.X = x
		viewer.Y = y
	}

	return s
}

// Viewer returns the player-controlled entity.
func (s *Session) Viewer() *entity.Entity {
	return s.viewer
}

// RoomCount returns how many rooms generation accepted. Zero is a
// legal, if unplayable, outcome.
func (s *Session) RoomCount() int {
	return len(s.Dungeon.Rooms)
}

// IsBlocked reports whether the position cannot be entered, either
// because of the tile or because a blocking entity stands there.
// Out-of-bounds positions are blocked.
func (s *Session) IsBlocked(x, y int) bool {
	if !s.Dungeon.IsPassable(x, y) {
		return true
	}
	for _, e := range s.Entities {
		if e.Blocks && e.X == x && e.Y == y {
			return true
		}
	}
	return false
}

// MoveEntity moves an entity by the given delta if the destination is
// not blocked. Returns whether the move happened.
func (s *Session) MoveEntity(e *entity.Entity, dx, dy int) bool {
	if s.IsBlocked(e.X+dx, e.Y+dy) {
		return false
	}
	e.MoveBy(dx, dy)
	return true
}

// MoveViewer moves the player-controlled entity by the given delta.
func (s *Session) MoveViewer(dx, dy int) bool {
	return s.MoveEntity(s.viewer, dx, dy)
}
