package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/groundzero/internal/dice"
	"chosenoffset.com/groundzero/internal/geom"
)

// farView is a viewport that contains no test entity, so enemies never
// consider the player visible and hold their fire.
var farView = geom.Rect{X: 1e6, Y: 1e6, W: 10, H: 10}

func TestEnemyChasesPlayer(t *testing.T) {
	lvl := openLevel(t)
	e := NewEnemy(0, 100, lvl, dice.NewSeeded(1))
	p := NewPlayer(600, 100, lvl)

	e.Update(1.0, p, farView)

	assert.InDelta(t, EnemySpeed, e.Pos().X, 1e-6, "one second of chase covers full speed")
	assert.InDelta(t, 100.0, e.Pos().Y, 1e-6)
	assert.False(t, e.Idle())
	assert.True(t, e.FacingRight())
}

func TestEnemyLeashStopsChase(t *testing.T) {
	lvl := openLevel(t)
	e := NewEnemy(0, 0, lvl, dice.NewSeeded(1))
	p := NewPlayer(2000, 0, lvl)

	// Walk the enemy out near its leash limit, then propose a step past it.
	e.pos = geom.Vec2{X: 480, Y: 0}
	e.Update(1.0, p, farView)

	assert.Equal(t, geom.Vec2{X: 480, Y: 0}, e.Pos(), "no movement past the leash")
	assert.True(t, e.Idle())
}

func TestLeashMeasuresFromSpawnNotCurrentPosition(t *testing.T) {
	lvl := openLevel(t)
	p := NewPlayer(2000, 0, lvl)

	// Same world position, spawn right here: the proposed step is only
	// EnemySpeed from spawn and the chase proceeds.
	e := NewEnemy(480, 0, lvl, dice.NewSeeded(1))
	e.Update(1.0, p, farView)
	assert.False(t, e.Idle())
	assert.Greater(t, e.Pos().X, 480.0)
}

func TestEnemySlidesAlongWall(t *testing.T) {
	// Wall column 4 occupies world x in [256, 320).
	lvl := levelWithWallColumn(t, 4)
	e := NewEnemy(190, 300, lvl, dice.NewSeeded(1))
	p := NewPlayer(600, 0, lvl)

	e.Update(0.1, p, farView)

	assert.Equal(t, 190.0, e.Pos().X, "X move into the wall must be rejected")
	assert.Less(t, e.Pos().Y, 300.0, "Y move must slide through")
}

func TestDropsRollExactlyOnce(t *testing.T) {
	lvl := openLevel(t)
	p := NewPlayer(5000, 5000, lvl)

	e := NewEnemy(100, 100, lvl, dice.NewSeeded(7))
	e.SetDropChances(1.0, 1.0)
	e.TakeDamage(100)
	require.False(t, e.Alive())

	e.Update(1.0/60, p, farView)
	medKit := e.MedKit()
	ammoPack := e.AmmoPack()
	require.NotNil(t, medKit, "chance 1.0 always drops a medkit")
	require.NotNil(t, ammoPack, "chance 1.0 always drops an ammo pack")

	// The roll must not repeat on later dead frames.
	for i := 0; i < 10; i++ {
		e.Update(1.0/60, p, farView)
	}
	assert.Same(t, medKit, e.MedKit())
	assert.Same(t, ammoPack, e.AmmoPack())

	// Drops scatter within the configured offset of the death position.
	assert.InDelta(t, 100.0, medKit.Pos().X, DropScatter)
	assert.InDelta(t, 100.0, medKit.Pos().Y, DropScatter)
}

func TestDropsChanceZeroDropsNothing(t *testing.T) {
	lvl := openLevel(t)
	p := NewPlayer(5000, 5000, lvl)

	e := NewEnemy(100, 100, lvl, dice.NewSeeded(7))
	e.SetDropChances(0.0, 0.0)
	e.TakeDamage(100)

	for i := 0; i < 10; i++ {
		e.Update(1.0/60, p, farView)
	}
	assert.Nil(t, e.MedKit())
	assert.Nil(t, e.AmmoPack())
	assert.True(t, e.DropsSettled())
}

func TestDamageIgnoredWhenDead(t *testing.T) {
	e := NewEnemy(0, 0, openLevel(t), dice.NewSeeded(1))

	e.TakeDamage(150)
	assert.Equal(t, -50, e.Health())

	e.TakeDamage(25)
	assert.Equal(t, -50, e.Health(), "a corpse takes no further damage")
}

func TestDeadEnemyHoldsPosition(t *testing.T) {
	lvl := openLevel(t)
	e := NewEnemy(100, 100, lvl, dice.NewSeeded(1))
	e.SetDropChances(0, 0)
	e.TakeDamage(100)

	p := NewPlayer(600, 100, lvl)
	for i := 0; i < 30; i++ {
		e.Update(1.0/60, p, bigView)
	}
	assert.Equal(t, geom.Vec2{X: 100, Y: 100}, e.Pos())
	assert.Empty(t, e.Bullets())
}

func TestSweptBulletHitsPlayer(t *testing.T) {
	lvl := openLevel(t)
	p := NewPlayer(0, 0, lvl)
	e := NewEnemy(500, 0, lvl, dice.NewSeeded(1))

	// A bullet whose frame step jumps clean over the player box: the
	// swept segment still registers, exactly once.
	e.bullets = append(e.bullets,
		NewBullet(geom.Vec2{X: 200, Y: 32}, geom.Vec2{X: -1}, 0, EnemyBulletDamage))

	e.Update(0.05, p, bigView)

	assert.Equal(t, 100-EnemyBulletDamage, p.Health())
	assert.Empty(t, e.Bullets(), "a bullet is destroyed on hit")
}

func TestEnemyBulletDespawnsOutsideView(t *testing.T) {
	lvl := openLevel(t)
	p := NewPlayer(0, 800, lvl)
	e := NewEnemy(300, 800, lvl, dice.NewSeeded(1))
	view := geom.Rect{X: 0, Y: 0, W: 640, H: 1000}

	e.bullets = append(e.bullets,
		NewBullet(geom.Vec2{X: 200, Y: 32}, geom.Vec2{X: 1}, 0, EnemyBulletDamage))

	// 400 units per step at dt=0.05: one step stays inside the padded
	// view, the second leaves it.
	e.Update(0.05, p, view)
	require.Len(t, e.Bullets(), 1)
	e.Update(0.05, p, view)
	assert.Empty(t, e.Bullets())
	assert.Equal(t, 100, p.Health())
}

func TestEnemyFiresOnVisiblePlayer(t *testing.T) {
	lvl := openLevel(t)
	p := NewPlayer(400, 300, lvl)
	e := NewEnemy(100, 300, lvl, dice.NewSeeded(3))
	view := geom.Rect{X: 0, Y: 0, W: 1280, H: 800}

	// Over 30 simulated seconds the enemy attempts a shot every 1-3s
	// with an 80% success roll; the player ends up hit.
	for i := 0; i < 60; i++ {
		e.Update(0.5, p, view)
	}
	assert.Less(t, p.Health(), 100)
}

func TestEnemyHoldsFireWhenPlayerNotVisible(t *testing.T) {
	lvl := openLevel(t)
	p := NewPlayer(400, 300, lvl)
	e := NewEnemy(100, 300, lvl, dice.NewSeeded(3))

	for i := 0; i < 60; i++ {
		e.Update(0.5, p, farView)
	}
	assert.Equal(t, 100, p.Health())
}

func TestPushApartOnOverlap(t *testing.T) {
	lvl := openLevel(t)
	p := NewPlayer(300, 300, lvl)
	e := NewEnemy(290, 300, lvl, dice.NewSeeded(1))

	pBefore := p.Pos()
	eBefore := e.Pos()
	e.Update(1.0/60, p, farView)

	assert.NotEqual(t, eBefore.X, e.Pos().X, "overlapping enemy is shoved away")
	assert.NotEqual(t, pBefore.X, p.Pos().X, "player is shoved the other way")
}
