package utils

import (
	"fmt"
	"os"

	"musou/world"

	"github.com/pelletier/go-toml/v2"
)

type GameConfig struct {
	Width, Height float64
	TickRate      int
	// InitialScore is nil when the key is absent.
	InitialScore  *int
	Seed          int64
	History       int
}

type ResolutionConfig struct {
	X, Y int
}

type UIConfig struct {
	Title      string
	Resolution ResolutionConfig
}

type Config struct {
	Game GameConfig
	UI   UIConfig
}

func ReadTOML(fileName string) (*Config, error) {
	file, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := toml.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	return &config, nil
}

// World builds the simulation config. Anything left at zero keeps its
// default, except InitialScore which only falls back when the key is absent.
func (c *Config) World() world.Config {
	cfg := world.DefaultConfig()
	if c.Game.Width > 0 {
		cfg.FieldWidth = c.Game.Width
	}
	if c.Game.Height > 0 {
		cfg.FieldHeight = c.Game.Height
	}
	if c.Game.TickRate > 0 {
		cfg.TickRate = c.Game.TickRate
	}
	if c.Game.InitialScore != nil {
		cfg.InitialScore = *c.Game.InitialScore
	}
	if c.Game.History > 0 {
		cfg.History = c.Game.History
	}
	cfg.Seed = c.Game.Seed
	// Keep the player's spawn point the same distance from the bottom-right
	// corner when the field is resized.
	defaults := world.DefaultConfig()
	cfg.PlayerStart = world.Vector{
		X: cfg.FieldWidth - (defaults.FieldWidth - defaults.PlayerStart.X),
		Y: cfg.FieldHeight - (defaults.FieldHeight - defaults.PlayerStart.Y),
	}
	return cfg
}

// Resolution is the window size, falling back to the field size.
func (c *Config) Resolution(cfg world.Config) (int, int) {
	x, y := c.UI.Resolution.X, c.UI.Resolution.Y
	if x <= 0 || y <= 0 {
		return int(cfg.FieldWidth), int(cfg.FieldHeight)
	}
	return x, y
}
