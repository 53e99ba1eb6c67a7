// Package level loads the hand-authored tile map and answers the collision
// and fade queries the gameplay code needs. The map is a JSON asset with
// four named layers; a map missing any of them is a configuration error and
// fails the load.
package level

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"chosenoffset.com/groundzero/internal/geom"
)

// Cells within this many tiles of the player fade the tree layer.
const fadeRadiusTiles = 4

// Layers holds the tile grids of the map. Each grid is indexed [y][x] and a
// zero cell is empty.
type Layers struct {
	Ground    [][]int `json:"ground"`
	Collision [][]int `json:"collision"`
	Trees     [][]int `json:"trees"`
	Other     [][]int `json:"other"`
}

// SpawnPoint defines the player spawn location in world units.
type SpawnPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Config represents the map configuration as authored on disk.
type Config struct {
	Name        string     `json:"name"`
	Width       int        `json:"width"`     // Map width in tiles
	Height      int        `json:"height"`    // Map height in tiles
	TileSize    int        `json:"tile_size"` // World units per tile
	PlayerSpawn SpawnPoint `json:"player_spawn"`
	Layers      Layers     `json:"layers"`
}

// Level is a loaded, validated map. It is read-only after construction and
// safe to share between every moving entity.
type Level struct {
	cfg        Config
	fadeRadius float64
}

// Load reads and validates a map from a JSON file.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", path, err)
	}

	lvl, err := New(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", path, err)
	}
	return lvl, nil
}

// New validates an in-memory map configuration and wraps it in a Level.
func New(cfg Config) (*Level, error) {
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &Level{
		cfg:        cfg,
		fadeRadius: float64(cfg.TileSize * fadeRadiusTiles),
	}, nil
}

func validate(cfg *Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.TileSize <= 0 {
		return fmt.Errorf("invalid tile size: %d", cfg.TileSize)
	}

	layers := map[string][][]int{
		"ground":    cfg.Layers.Ground,
		"collision": cfg.Layers.Collision,
		"trees":     cfg.Layers.Trees,
		"other":     cfg.Layers.Other,
	}
	for name, grid := range layers {
		if grid == nil {
			return fmt.Errorf("map must contain a ground, collision, trees, and other layer: missing %q", name)
		}
		if len(grid) != cfg.Height {
			return fmt.Errorf("layer %q height mismatch: expected %d, got %d", name, cfg.Height, len(grid))
		}
		for y, row := range grid {
			if len(row) != cfg.Width {
				return fmt.Errorf("layer %q width mismatch at row %d: expected %d, got %d", name, y, cfg.Width, len(row))
			}
		}
	}
	return nil
}

// Name returns the map's display name.
func (l *Level) Name() string { return l.cfg.Name }

// PlayerSpawn returns the player's starting position in world units.
func (l *Level) PlayerSpawn() geom.Vec2 {
	return geom.Vec2{X: l.cfg.PlayerSpawn.X, Y: l.cfg.PlayerSpawn.Y}
}

// TileSize returns the size of one tile in world units.
func (l *Level) TileSize() float64 { return float64(l.cfg.TileSize) }

// Width returns the map width in tiles.
func (l *Level) Width() int { return l.cfg.Width }

// Height returns the map height in tiles.
func (l *Level) Height() int { return l.cfg.Height }

// PixelWidth returns the map width in world units.
func (l *Level) PixelWidth() float64 { return float64(l.cfg.Width * l.cfg.TileSize) }

// PixelHeight returns the map height in world units.
func (l *Level) PixelHeight() float64 { return float64(l.cfg.Height * l.cfg.TileSize) }

// IsWallAt reports whether the world coordinate hits an occupied cell in
// the collision layer. Coordinates outside the grid are never walls.
func (l *Level) IsWallAt(worldX, worldY float64) bool {
	ts := l.TileSize()
	cx := int(math.Floor(worldX / ts))
	cy := int(math.Floor(worldY / ts))
	return l.CollisionAt(cx, cy) != 0
}

// GroundAt returns the ground layer cell, or 0 outside the grid.
func (l *Level) GroundAt(cx, cy int) int { return l.cellAt(l.cfg.Layers.Ground, cx, cy) }

// CollisionAt returns the collision layer cell, or 0 outside the grid.
func (l *Level) CollisionAt(cx, cy int) int { return l.cellAt(l.cfg.Layers.Collision, cx, cy) }

// TreeAt returns the trees layer cell, or 0 outside the grid.
func (l *Level) TreeAt(cx, cy int) int { return l.cellAt(l.cfg.Layers.Trees, cx, cy) }

// OtherAt returns the other layer cell, or 0 outside the grid.
func (l *Level) OtherAt(cx, cy int) int { return l.cellAt(l.cfg.Layers.Other, cx, cy) }

func (l *Level) cellAt(grid [][]int, cx, cy int) int {
	if cx < 0 || cx >= l.cfg.Width || cy < 0 || cy >= l.cfg.Height {
		return 0
	}
	return grid[cy][cx]
}

// TreeFadeAlpha returns the alpha a tree cell at the given world position
// should render with, given the player's bounding box: trees close to the
// player fade toward 50% so the player stays visible underneath them.
func (l *Level) TreeFadeAlpha(worldX, worldY float64, playerBounds geom.Rect) float64 {
	c := playerBounds.Center()
	dist := math.Hypot(worldX-c.X, worldY-c.Y)
	if dist >= l.fadeRadius {
		return 1.0
	}
	return 0.5 + 0.5*(dist/l.fadeRadius)
}
