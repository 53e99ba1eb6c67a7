package level

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/groundzero/internal/geom"
)

func testConfig() Config {
	grid := func(fill int) [][]int {
		g := make([][]int, 4)
		for y := range g {
			g[y] = []int{fill, fill, fill, fill}
		}
		return g
	}
	collision := grid(0)
	collision[1][2] = 1
	return Config{
		Name:     "test",
		Width:    4,
		Height:   4,
		TileSize: 64,
		Layers: Layers{
			Ground:    grid(1),
			Collision: collision,
			Trees:     grid(0),
			Other:     grid(0),
		},
	}
}

func TestConfigParsing(t *testing.T) {
	jsonData := `{
		"name": "parse_test",
		"width": 2,
		"height": 2,
		"tile_size": 64,
		"player_spawn": {"x": 100, "y": 120},
		"layers": {
			"ground":    [[1,1],[1,1]],
			"collision": [[0,1],[0,0]],
			"trees":     [[0,0],[1,0]],
			"other":     [[0,0],[0,0]]
		}
	}`

	var cfg Config
	require.NoError(t, json.Unmarshal([]byte(jsonData), &cfg))

	lvl, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "parse_test", lvl.Name())
	assert.Equal(t, 64.0, lvl.TileSize())
	assert.Equal(t, geom.Vec2{X: 100, Y: 120}, lvl.PlayerSpawn())
	assert.Equal(t, 1, lvl.CollisionAt(1, 0))
	assert.Equal(t, 1, lvl.TreeAt(0, 1))
}

func TestMissingLayerIsFatal(t *testing.T) {
	cfg := testConfig()
	cfg.Layers.Trees = nil
	_, err := New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trees")
}

func TestLayerDimensionMismatch(t *testing.T) {
	cfg := testConfig()
	cfg.Layers.Collision = cfg.Layers.Collision[:2]
	_, err := New(cfg)
	require.Error(t, err)

	cfg = testConfig()
	cfg.Layers.Other[3] = []int{0}
	_, err = New(cfg)
	require.Error(t, err)
}

func TestInvalidDimensions(t *testing.T) {
	cfg := testConfig()
	cfg.Width = 0
	_, err := New(cfg)
	require.Error(t, err)

	cfg = testConfig()
	cfg.TileSize = -1
	_, err = New(cfg)
	require.Error(t, err)
}

func TestIsWallAt(t *testing.T) {
	lvl, err := New(testConfig())
	require.NoError(t, err)

	// Cell (2,1) is the wall: world x in [128,192), y in [64,128).
	assert.True(t, lvl.IsWallAt(128, 64))
	assert.True(t, lvl.IsWallAt(160, 100))
	assert.True(t, lvl.IsWallAt(191.9, 127.9))
	assert.False(t, lvl.IsWallAt(127, 64))
	assert.False(t, lvl.IsWallAt(128, 128))

	// Out-of-grid coordinates are never walls.
	assert.False(t, lvl.IsWallAt(-10, 64))
	assert.False(t, lvl.IsWallAt(64, 10000))
	assert.False(t, lvl.IsWallAt(-0.001, -0.001))
}

func TestTreeFadeAlpha(t *testing.T) {
	lvl, err := New(testConfig())
	require.NoError(t, err)

	playerBounds := geom.Rect{X: 0, Y: 0, W: 64, H: 64} // center (32,32)

	// On top of the player the tree is half transparent.
	assert.InDelta(t, 0.5, lvl.TreeFadeAlpha(32, 32, playerBounds), 1e-9)

	// Beyond the fade radius (4 tiles = 256) it is opaque.
	assert.Equal(t, 1.0, lvl.TreeFadeAlpha(32+300, 32, playerBounds))

	// Halfway out it is three quarters opaque.
	assert.InDelta(t, 0.75, lvl.TreeFadeAlpha(32+128, 32, playerBounds), 1e-9)
}
