package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/groundzero/internal/entity"
	"chosenoffset.com/groundzero/internal/geom"
	"chosenoffset.com/groundzero/internal/item"
)

// Placeholder palette. All art is flat shapes; no image assets are shipped.
var (
	colorGroundA  = color.NRGBA{R: 0x3a, G: 0x5f, B: 0x3a, A: 0xff}
	colorGroundB  = color.NRGBA{R: 0x41, G: 0x68, B: 0x41, A: 0xff}
	colorWall     = color.NRGBA{R: 0x5a, G: 0x5a, B: 0x62, A: 0xff}
	colorOther    = color.NRGBA{R: 0x6b, G: 0x53, B: 0x3b, A: 0xff}
	colorTree     = color.NRGBA{R: 0x1e, G: 0x46, B: 0x1e, A: 0xff}
	colorPlayer   = color.NRGBA{R: 0x3c, G: 0x78, B: 0xd2, A: 0xff}
	colorDead     = color.NRGBA{R: 0x46, G: 0x46, B: 0x46, A: 0xff}
	colorEnemy    = color.NRGBA{R: 0xc8, G: 0x3c, B: 0x3c, A: 0xff}
	colorHitFlash = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorIdle     = color.NRGBA{R: 0x96, G: 0x3c, B: 0x3c, A: 0xff}
	colorBullet   = color.NRGBA{R: 0xf0, G: 0xd0, B: 0x40, A: 0xff}
	colorGun      = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	colorMedKit   = color.NRGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff}
	colorMedCross = color.NRGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff}
	colorAmmoPack = color.NRGBA{R: 0xb0, G: 0x98, B: 0x30, A: 0xff}
	colorHair     = color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
)

// Draw renders the frame: tiles, enemies with their drops, the player,
// trees with proximity fade, the crosshair, and the HUD. It only reads
// core state.
func (g *Game) Draw(screen *ebiten.Image) {
	cam := g.cameraTopLeft()

	g.drawTiles(screen, cam)
	for _, e := range g.spawner.Enemies() {
		g.drawEnemy(screen, cam, e)
	}
	g.drawPlayer(screen, cam)
	g.drawTrees(screen, cam)
	g.drawCrosshair(screen, cam)

	g.gameHUD.Draw(screen, g.player)

	if g.state == StateGameOver || !g.player.Alive() {
		g.drawDeathOverlay(screen)
	}
}

func (g *Game) cameraTopLeft() geom.Vec2 {
	c := g.player.Center()
	return geom.Vec2{
		X: c.X - float64(g.screenWidth)/2,
		Y: c.Y - float64(g.screenHeight)/2,
	}
}

// visibleCells returns the tile range covering the viewport, padded by one
// cell and clamped to the grid.
func (g *Game) visibleCells(cam geom.Vec2) (x0, y0, x1, y1 int) {
	ts := g.lvl.TileSize()
	x0 = max(0, int(cam.X/ts)-1)
	y0 = max(0, int(cam.Y/ts)-1)
	x1 = min(g.lvl.Width(), int((cam.X+float64(g.screenWidth))/ts)+1)
	y1 = min(g.lvl.Height(), int((cam.Y+float64(g.screenHeight))/ts)+1)
	return
}

func (g *Game) drawTiles(screen *ebiten.Image, cam geom.Vec2) {
	ts := g.lvl.TileSize()
	x0, y0, x1, y1 := g.visibleCells(cam)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			sx := float32(float64(cx)*ts - cam.X)
			sy := float32(float64(cy)*ts - cam.Y)

			ground := colorGroundA
			if (cx+cy)%2 == 0 {
				ground = colorGroundB
			}
			vector.DrawFilledRect(screen, sx, sy, float32(ts), float32(ts), ground, false)

			if g.lvl.CollisionAt(cx, cy) != 0 {
				vector.DrawFilledRect(screen, sx, sy, float32(ts), float32(ts), colorWall, false)
			} else if g.lvl.OtherAt(cx, cy) != 0 {
				vector.DrawFilledRect(screen, sx, sy, float32(ts), float32(ts), colorOther, false)
			}
		}
	}
}

// drawTrees renders the tree layer above the entities, faded near the
// player so the player stays visible underneath.
func (g *Game) drawTrees(screen *ebiten.Image, cam geom.Vec2) {
	ts := g.lvl.TileSize()
	playerBounds := g.player.Bounds()
	x0, y0, x1, y1 := g.visibleCells(cam)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			if g.lvl.TreeAt(cx, cy) == 0 {
				continue
			}
			wx := float64(cx)*ts + ts/2
			wy := float64(cy)*ts + ts/2
			alpha := g.lvl.TreeFadeAlpha(wx, wy, playerBounds)

			clr := colorTree
			clr.A = uint8(alpha * 255)
			vector.DrawFilledRect(screen,
				float32(float64(cx)*ts-cam.X), float32(float64(cy)*ts-cam.Y),
				float32(ts), float32(ts), clr, false)
		}
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, cam geom.Vec2) {
	b := g.player.Bounds()
	clr := colorPlayer
	if !g.player.Alive() {
		clr = colorDead
	}
	vector.DrawFilledRect(screen,
		float32(b.X-cam.X), float32(b.Y-cam.Y),
		float32(b.W), float32(b.H), clr, false)

	if g.player.Alive() {
		rifle := g.player.Rifle()
		flip := 1.0
		if !rifle.FacingRight() {
			flip = -1.0
		}
		a := rifle.AimAngle()
		g.drawGun(screen, cam, g.player.Center(), math.Cos(a)*flip, math.Sin(a))
	}

	for _, b := range g.player.Bullets() {
		g.drawBullet(screen, cam, b)
	}
}

func (g *Game) drawEnemy(screen *ebiten.Image, cam geom.Vec2, e *entity.Enemy) {
	box := e.CollisionBox()
	if e.Alive() {
		clr := colorEnemy
		if e.HitFlashing() {
			clr = colorHitFlash
		} else if e.Idle() {
			clr = colorIdle
		}
		vector.DrawFilledRect(screen,
			float32(box.X-cam.X), float32(box.Y-cam.Y),
			float32(box.W), float32(box.H), clr, false)

		a := e.AimAngle()
		g.drawGun(screen, cam, box.Center(), math.Cos(a), math.Sin(a))
	} else {
		vector.DrawFilledRect(screen,
			float32(box.X-cam.X), float32(box.Y-cam.Y),
			float32(box.W), float32(box.H), colorDead, false)

		if m := e.MedKit(); m != nil && !m.PickedUp() {
			g.drawMedKit(screen, cam, m)
		}
		if a := e.AmmoPack(); a != nil && !a.PickedUp() {
			g.drawAmmoPack(screen, cam, a)
		}
	}

	for _, b := range e.Bullets() {
		g.drawBullet(screen, cam, b)
	}
}

func (g *Game) drawGun(screen *ebiten.Image, cam geom.Vec2, from geom.Vec2, dx, dy float64) {
	const gunLength = 28
	vector.StrokeLine(screen,
		float32(from.X-cam.X), float32(from.Y-cam.Y),
		float32(from.X+dx*gunLength-cam.X), float32(from.Y+dy*gunLength-cam.Y),
		4, colorGun, false)
}

func (g *Game) drawBullet(screen *ebiten.Image, cam geom.Vec2, b *entity.Bullet) {
	vector.DrawFilledCircle(screen,
		float32(b.Pos.X-cam.X), float32(b.Pos.Y-cam.Y), 3, colorBullet, false)
}

func (g *Game) drawMedKit(screen *ebiten.Image, cam geom.Vec2, m *item.MedKit) {
	b := m.Bounds()
	y := b.Y + m.BobOffset()
	vector.DrawFilledRect(screen,
		float32(b.X-cam.X), float32(y-cam.Y),
		float32(b.W), float32(b.H), colorMedKit, false)
	vector.DrawFilledRect(screen,
		float32(b.X+b.W/2-2-cam.X), float32(y+2-cam.Y),
		4, float32(b.H-4), colorMedCross, false)
	vector.DrawFilledRect(screen,
		float32(b.X+2-cam.X), float32(y+b.H/2-2-cam.Y),
		float32(b.W-4), 4, colorMedCross, false)
}

func (g *Game) drawAmmoPack(screen *ebiten.Image, cam geom.Vec2, a *item.AmmoPack) {
	b := a.Bounds()
	vector.DrawFilledRect(screen,
		float32(b.X-cam.X), float32(b.Y+a.BobOffset()-cam.Y),
		float32(b.W), float32(b.H), colorAmmoPack, false)
}

func (g *Game) drawCrosshair(screen *ebiten.Image, cam geom.Vec2) {
	if !g.player.Alive() {
		return
	}
	p := g.player.CrosshairPos()
	x := float32(p.X - cam.X)
	y := float32(p.Y - cam.Y)
	vector.StrokeCircle(screen, x, y, 7, 1.5, colorHair, false)
	vector.DrawFilledCircle(screen, x, y, 1.5, colorHair, false)
}

func (g *Game) drawDeathOverlay(screen *ebiten.Image) {
	bounds := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0,
		float32(bounds.Dx()), float32(bounds.Dy()),
		color.NRGBA{A: 0x80}, false)
	msg := "YOU DIED"
	if g.state == StateGameOver {
		msg = "YOU DIED - PRESS ENTER TO RESTART"
	}
	ebitenutil.DebugPrintAt(screen, msg,
		bounds.Dx()/2-len(msg)*3, bounds.Dy()/2)
}
