// Package game provides the main game loop and session state.
package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds game configuration options, parsed from the environment.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon
	// generation. A seed of 0 means a time-based seed will be used.
	Seed int64 `env:"DARKWARREN_SEED" envDefault:"0"`

	MapWidth  int `env:"DARKWARREN_MAP_WIDTH" envDefault:"80"`
	MapHeight int `env:"DARKWARREN_MAP_HEIGHT" envDefault:"45"`

	MinRoomSize int `env:"DARKWARREN_MIN_ROOM_SIZE" envDefault:"6"`
	MaxRoomSize int `env:"DARKWARREN_MAX_ROOM_SIZE" envDefault:"10"`
	MaxRooms    int `env:"DARKWARREN_MAX_ROOMS" envDefault:"30"`

	MaxMonstersPerRoom int `env:"DARKWARREN_MAX_MONSTERS_PER_ROOM" envDefault:"3"`

	FOVRadius  int  `env:"DARKWARREN_FOV_RADIUS" envDefault:"10"`
	LightWalls bool `env:"DARKWARREN_LIGHT_WALLS" envDefault:"true"`
}

// LoadConfig parses configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config from environment: %w", err)
	}
	if cfg.MinRoomSize < 3 || cfg.MaxRoomSize < cfg.MinRoomSize {
		return cfg, fmt.Errorf("invalid room size bounds [%d, %d]", cfg.MinRoomSize, cfg.MaxRoomSize)
	}
	if cfg.MaxRoomSize >= cfg.MapWidth || cfg.MaxRoomSize >= cfg.MapHeight {
		return cfg, fmt.Errorf("max room size %d does not fit a %dx%d map",
			cfg.MaxRoomSize, cfg.MapWidth, cfg.MapHeight)
	}
	return cfg, nil
}
