package entity

import (
	"math/rand"

	"github.com/samdwyer/darkwarren/internal/gamedata"
	"github.com/samdwyer/darkwarren/internal/world"
)

// DefaultMaxMonstersPerRoom caps how many monsters one room can spawn.
const DefaultMaxMonstersPerRoom = 3

// Spawner populates accepted rooms with monsters drawn from a weighted
// registry. It shares the generator's rng so a seeded run reproduces
// the same dungeon and the same spawns.
type Spawner struct {
	registry   *gamedata.MonsterRegistry
	rng        *rand.Rand
	maxPerRoom int
}

// NewSpawner creates a spawner using the given registry and rng.
func NewSpawner(registry *gamedata.MonsterRegistry, rng *rand.Rand, maxPerRoom int) *Spawner {
	return &Spawner{
		registry:   registry,
		rng:        rng,
		maxPerRoom: maxPerRoom,
	}
}

// Populate rolls a monster count on [0, maxPerRoom] and places each
// monster at a random spot in the room. The x range is inset one tile
// from the room edges while the y range is not; the reference behavior
// lets monsters spawn flush against the top and bottom walls, so this
// keeps it. Spawns may overlap existing entities; no collision check
// is made.
func (s *Spawner) Populate(room world.Rect) []*Entity {
	count := s.rng.Intn(s.maxPerRoom + 1)

	spawned := make([]*Entity, 0, count)
	for i := 0; i < count; i++ {
		x := room.X1 + 1 + s.rng.Intn(room.X2-room.X1-1)
		y := room.Y1 + s.rng.Intn(room.Y2-room.Y1)

		def := s.registry.SpawnRandom(s.rng)
		if def == nil {
			continue
		}
		spawned = append(spawned, NewMonster(def, x, y))
	}
	return spawned
}
