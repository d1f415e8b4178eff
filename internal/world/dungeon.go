package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/darkwarren/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 45

	// Room placement parameters
	DefaultMinRoomSize = 6  // Minimum room dimension
	DefaultMaxRoomSize = 10 // Maximum room dimension
	DefaultMaxRooms    = 30 // Placement attempts per generation run
)

// SpawnFunc is called once for each accepted room, immediately after
// its interior is carved, so callers can populate it with entities.
type SpawnFunc func(room Rect)

// GenConfig holds the tunable inputs to a generation run.
type GenConfig struct {
	MinRoomSize int
	MaxRoomSize int
	MaxRooms    int       // attempt budget, not a room-count target
	Spawn       SpawnFunc // optional; nil skips entity placement
}

// DefaultGenConfig returns the standard generation parameters.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		MinRoomSize: DefaultMinRoomSize,
		MaxRoomSize: DefaultMaxRoomSize,
		MaxRooms:    DefaultMaxRooms,
	}
}

// Dungeon represents the game map.
type Dungeon struct {
	Width  int
	Height int
	Tiles  [][]Tile
	Rooms  []Rect
	rng    *rand.Rand
}

// NewDungeon creates a new dungeon filled with walls.
func NewDungeon(width, height int, rng *rand.Rand) *Dungeon {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = Wall()
		}
	}

	return &Dungeon{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		Rooms:  make([]Rect, 0),
		rng:    rng,
	}
}

// Generate carves the dungeon layout by rejection sampling: it makes
// exactly cfg.MaxRooms placement attempts, discarding any candidate
// that overlaps an already accepted room. Each accepted room after the
// first is joined to its predecessor by one orthogonal dogleg corridor.
// The run cannot fail; an unlucky budget just yields fewer rooms, and
// zero accepted rooms is a legal outcome.
func (d *Dungeon) Generate(ctx context.Context, cfg GenConfig) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	for i := 0; i < cfg.MaxRooms; i++ {
		w := cfg.MinRoomSize + d.rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
		h := cfg.MinRoomSize + d.rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize+1)
		x := d.rng.Intn(d.Width - w)
		y := d.rng.Intn(d.Height - h)

		candidate := NewRect(x, y, w, h)

		failed := false
		for _, other := range d.Rooms {
			if candidate.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue // attempt spent, no room
		}

		d.carveRoom(candidate)

		if cfg.Spawn != nil {
			cfg.Spawn(candidate)
		}

		if len(d.Rooms) > 0 {
			d.carveCorridor(d.Rooms[len(d.Rooms)-1], candidate)
		}

		d.Rooms = append(d.Rooms, candidate)
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.Int("dungeon.attempts", cfg.MaxRooms),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// EntryPoint returns the center of the first accepted room, where the
// viewer starts. ok is false when generation accepted no rooms; the
// caller keeps its own default position in that case.
func (d *Dungeon) EntryPoint() (x, y int, ok bool) {
	if len(d.Rooms) == 0 {
		return 0, 0, false
	}
	x, y = d.Rooms[0].Center()
	return x, y, true
}

// IsPassable returns true if the given position can be walked on.
// Out-of-bounds positions are treated as blocked.
func (d *Dungeon) IsPassable(x, y int) bool {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return false
	}
	return d.Tiles[y][x].IsPassable()
}

// IsTransparent returns true if the given position does not block sight.
func (d *Dungeon) IsTransparent(x, y int) bool {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return false
	}
	return d.Tiles[y][x].IsTransparent()
}

// GetTile returns the tile at the given position.
func (d *Dungeon) GetTile(x, y int) Tile {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return Wall()
	}
	return d.Tiles[y][x]
}

// MarkExplored sets the explored flag on a tile. The flag is monotonic;
// there is no way to clear it.
func (d *Dungeon) MarkExplored(x, y int) {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return
	}
	d.Tiles[y][x].Explored = true
}

// carveRoom sets the strict interior of the room to floor. The one-tile
// border stays wall so that rooms accepted flush against each other
// still have a separating wall.
func (d *Dungeon) carveRoom(room Rect) {
	for x := room.X1 + 1; x < room.X2; x++ {
		for y := room.Y1 + 1; y < room.Y2; y++ {
			d.Tiles[y][x] = Floor()
		}
	}
}

// carveCorridor joins two room centers with one dogleg, choosing the
// segment ordering uniformly at random.
func (d *Dungeon) carveCorridor(prev, next Rect) {
	prevX, prevY := prev.Center()
	newX, newY := next.Center()

	if d.rng.Intn(2) == 0 {
		d.carveHorizontalTunnel(prevX, newX, prevY)
		d.carveVerticalTunnel(prevY, newY, newX)
	} else {
		d.carveVerticalTunnel(prevY, newY, prevX)
		d.carveHorizontalTunnel(prevX, newX, newY)
	}
}

// carveHorizontalTunnel carves floor from x1 to x2 inclusive at row y.
// The endpoints may arrive in either order.
func (d *Dungeon) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		d.Tiles[y][x] = Floor()
	}
}

// carveVerticalTunnel carves floor from y1 to y2 inclusive at column x.
func (d *Dungeon) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		d.Tiles[y][x] = Floor()
	}
}
