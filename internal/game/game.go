// Package game is the presentation collaborator: it implements
// ebiten.Game, feeds one input snapshot and one fixed time step into the
// core per frame, follows the player with the camera, and renders whatever
// state the core exposes. No gameplay rules live here beyond the
// frame-level collision rollback the core contract requires.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/groundzero/internal/dice"
	"chosenoffset.com/groundzero/internal/entity"
	"chosenoffset.com/groundzero/internal/geom"
	"chosenoffset.com/groundzero/internal/input"
	"chosenoffset.com/groundzero/internal/level"
	"chosenoffset.com/groundzero/internal/spawn"
	"chosenoffset.com/groundzero/internal/ui/hud"
)

// Delta time for timers (assuming 60 FPS)
const frameDelta = 1.0 / 60.0

// deathDelay is how long the death screen lingers before game over.
const deathDelay = 2.0

// State is the coarse game screen state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// Game holds the level, the core entities, and the camera.
type Game struct {
	screenWidth  int
	screenHeight int

	lvl     *level.Level
	player  *entity.Player
	spawner *spawn.Spawner
	gameHUD *hud.HUD

	state      State
	deathTimer float64

	lastCursorX int
	lastCursorY int
	cursorSeen  bool
}

// New creates a game over the given level.
func New(lvl *level.Level, screenWidth, screenHeight int) *Game {
	g := &Game{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		lvl:          lvl,
		gameHUD:      hud.New(nil),
	}
	g.reset()
	return g
}

func (g *Game) reset() {
	spawnAt := g.lvl.PlayerSpawn()
	g.player = entity.NewPlayer(spawnAt.X, spawnAt.Y, g.lvl)
	g.spawner = spawn.New(spawn.DefaultConfig(), g.lvl, dice.NewTimeSeeded())
	g.state = StatePlaying
	g.deathTimer = 0
}

// Update steps the core once: player, then spawner (which updates all
// enemies), then player-bullet resolution. Rendering afterwards is a pure
// read of the resulting state.
func (g *Game) Update() error {
	if g.state == StateGameOver {
		if ebiten.IsKeyPressed(ebiten.KeyEnter) {
			g.reset()
		}
		return nil
	}

	if !g.player.Alive() {
		g.deathTimer += frameDelta
		if g.deathTimer >= deathDelay {
			g.state = StateGameOver
		}
		return nil
	}

	in := g.readInput()
	view := g.view()

	// Whole-frame rollback on top of the player's own per-axis collision:
	// if the resolved box still clips a wall, the entire move is undone.
	oldPos := g.player.Pos()
	g.player.Update(frameDelta, in, view)
	if g.playerColliding() {
		g.player.SetPos(oldPos)
	}

	view = g.view()
	g.spawner.Update(frameDelta, g.player, view)
	g.spawner.ResolvePlayerBullets(g.player)

	return nil
}

// view returns the camera viewport in world units, centered on the player.
func (g *Game) view() geom.Rect {
	c := g.player.Center()
	w := float64(g.screenWidth)
	h := float64(g.screenHeight)
	return geom.Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (g *Game) playerColliding() bool {
	b := g.player.Bounds()
	return g.lvl.IsWallAt(b.X, b.Y) ||
		g.lvl.IsWallAt(b.Right(), b.Y) ||
		g.lvl.IsWallAt(b.X, b.Bottom()) ||
		g.lvl.IsWallAt(b.Right(), b.Bottom())
}

// readInput builds the frame's input snapshot from the input device. This
// is the only place the input APIs are polled.
func (g *Game) readInput() input.State {
	in := input.State{
		MoveUp:    ebiten.IsKeyPressed(ebiten.KeyW),
		MoveDown:  ebiten.IsKeyPressed(ebiten.KeyS),
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyD),
		Sprint:    ebiten.IsKeyPressed(ebiten.KeyShiftLeft),
		Reload:    ebiten.IsKeyPressed(ebiten.KeyR),
		Fire:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}

	cx, cy := ebiten.CursorPosition()
	if g.cursorSeen {
		in.LookDX = float64(cx - g.lastCursorX)
		in.LookDY = float64(cy - g.lastCursorY)
	}
	g.lastCursorX = cx
	g.lastCursorY = cy
	g.cursorSeen = true

	return in
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}
