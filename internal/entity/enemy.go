package entity

import (
	"math"

	"github.com/google/uuid"

	"chosenoffset.com/groundzero/internal/dice"
	"chosenoffset.com/groundzero/internal/geom"
	"chosenoffset.com/groundzero/internal/item"
	"chosenoffset.com/groundzero/internal/level"
)

const (
	// EnemySize is the side length of an enemy's collision box.
	EnemySize = SpriteSize * SpriteScale

	// EnemyHitBoxScale widens the box player bullets are tested against,
	// relative to the collision box.
	EnemyHitBoxScale = 2.0

	// EnemySpeed is the chase speed in world units per second.
	EnemySpeed = 140.0

	// LeashDistance is the maximum Euclidean distance from the spawn
	// point an enemy will chase to. Measured against the proposed
	// position, not the current one.
	LeashDistance = 500.0

	// Shoot interval bounds in seconds; a new cooldown is rolled after
	// every attempt.
	MinShootInterval = 1.0
	MaxShootInterval = 3.0

	// FireChance is the per-attempt probability an enemy actually fires.
	FireChance = 0.8

	// Default drop probabilities rolled once on death.
	MedKitDropChance   = 0.25
	AmmoPackDropChance = 0.15

	// DropScatter bounds the random per-axis offset of dropped items
	// from the death position.
	DropScatter = 40.0

	// Gun muzzle geometry, mirroring the rendered gun sprite.
	enemyGunOffsetX      = 8.0
	enemyGunOffsetY      = 15.0
	enemyGunLeftShift    = 32.0
	enemyMuzzleDistance  = 60.0
	enemyGunBobAmplitude = 0.5

	hitFlashDuration = 0.1

	pushApartMultiplier = 1.5
)

// Enemy is an autonomous agent: it chases the player while inside its
// leash radius, fires at random intervals when the player is in view, rolls
// item drops on death, and then persists in the world as a corpse that only
// tends its remaining drops.
type Enemy struct {
	ID uuid.UUID

	pos      geom.Vec2
	spawnPos geom.Vec2
	speed    float64
	health   int

	facingRight bool
	idle        bool
	stateTime   float64
	animTimer   float64
	aimAngle    float64

	hitFlashTimer float64

	shootTimer    float64
	shootCooldown float64

	bullets []*Bullet

	medKit             *item.MedKit
	ammoPack           *item.AmmoPack
	medKitDropChance   float64
	ammoPackDropChance float64
	dropsHandled       bool

	lvl    *level.Level
	roller *dice.Roller
}

// NewEnemy creates an enemy at the given world position. The position also
// becomes the spawn origin the leash is measured from.
func NewEnemy(x, y float64, lvl *level.Level, roller *dice.Roller) *Enemy {
	return &Enemy{
		ID:                 uuid.New(),
		pos:                geom.Vec2{X: x, Y: y},
		spawnPos:           geom.Vec2{X: x, Y: y},
		speed:              EnemySpeed,
		health:             MaxHealth,
		facingRight:        true,
		shootCooldown:      roller.Range(MinShootInterval, MaxShootInterval),
		medKitDropChance:   MedKitDropChance,
		ammoPackDropChance: AmmoPackDropChance,
		lvl:                lvl,
		roller:             roller,
	}
}

// SetDropChances overrides the death drop probabilities.
func (e *Enemy) SetDropChances(medKit, ammoPack float64) {
	e.medKitDropChance = medKit
	e.ammoPackDropChance = ammoPack
}

// Update advances the enemy one frame. Bullets already in flight keep
// flying regardless of the enemy's state; everything else depends on
// whether the enemy is alive.
func (e *Enemy) Update(dt float64, player *Player, view geom.Rect) {
	e.animTimer += dt

	e.updateBullets(dt, player, view)

	if e.health > 0 {
		e.updateAlive(dt, player, view)
	} else {
		e.updateDead(dt, player)
	}
}

// updateBullets advances the enemy's bullets, applying a swept segment test
// against the player: the bullet's whole path for the frame is tested, not
// just its endpoint, since a bullet crosses the player box in one tick.
func (e *Enemy) updateBullets(dt float64, player *Player, view geom.Rect) {
	playerBounds := player.Bounds()
	kept := e.bullets[:0]
	for _, b := range e.bullets {
		b.Advance(dt)
		if geom.SegmentIntersectsRect(b.PrevPos, b.Pos, playerBounds) {
			player.TakeDamage(b.Damage)
			continue
		}
		if b.OutOfBounds(view) {
			continue
		}
		kept = append(kept, b)
	}
	e.bullets = kept
}

func (e *Enemy) updateAlive(dt float64, player *Player, view geom.Rect) {
	if e.hitFlashTimer > 0 {
		e.hitFlashTimer -= dt
	}

	toPlayer := player.Pos().Sub(e.pos)
	dir := toPlayer.Normalize()

	// Leash check uses the proposed position against the spawn origin.
	proposed := e.pos.Add(dir.Scale(e.speed * dt))
	if proposed.Sub(e.spawnPos).Len() <= LeashDistance {
		e.pos = moveAxisSeparated(e.lvl, e.pos, proposed, EnemySize, EnemySize)
		e.idle = false
	} else {
		e.idle = true
	}

	e.facingRight = toPlayer.X >= 0
	e.aimAngle = math.Atan2(toPlayer.Y, toPlayer.X)

	if !e.idle {
		e.stateTime += dt
	}

	// Fire attempts happen on a randomized cooldown and only when the
	// enemy is inside the player's view; an idle enemy still shoots.
	e.shootTimer += dt
	if e.shootTimer >= e.shootCooldown {
		if e.inView(view) && e.roller.Chance(FireChance) {
			e.shoot(player)
		}
		e.shootTimer = 0
		e.shootCooldown = e.roller.Range(MinShootInterval, MaxShootInterval)
	}

	e.pushApart(player)
}

// pushApart separates the enemy and the player when their boxes overlap,
// shoving both halves of the overlap apart along the shallow axis.
func (e *Enemy) pushApart(player *Player) {
	eBox := e.CollisionBox()
	pBox := player.Bounds()
	if !eBox.Overlaps(pBox) {
		return
	}

	d := eBox.Center().Sub(pBox.Center())
	if d.X == 0 && d.Y == 0 {
		d.X = 1
	}
	overlapX := math.Min(eBox.Right(), pBox.Right()) - math.Max(eBox.X, pBox.X)
	overlapY := math.Min(eBox.Bottom(), pBox.Bottom()) - math.Max(eBox.Y, pBox.Y)

	if overlapX < overlapY {
		push := (overlapX / 2) * pushApartMultiplier
		sign := math.Copysign(1, d.X)
		e.pos.X += push * sign
		player.PushBy(-push*sign, 0)
	} else {
		push := (overlapY / 2) * pushApartMultiplier
		sign := math.Copysign(1, d.Y)
		e.pos.Y += push * sign
		player.PushBy(0, -push*sign)
	}
}

func (e *Enemy) inView(view geom.Rect) bool {
	return e.pos.X >= view.X && e.pos.X <= view.Right() &&
		e.pos.Y >= view.Y && e.pos.Y <= view.Bottom()
}

// shoot fires a bullet from the gun muzzle toward the player's center.
func (e *Enemy) shoot(player *Player) {
	muzzle := e.gunPos()
	to := player.Center().Sub(muzzle)
	angle := math.Atan2(to.Y, to.X)
	dir := geom.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
	origin := muzzle.Add(dir.Scale(enemyMuzzleDistance))
	e.bullets = append(e.bullets, NewBullet(origin, dir, angle, EnemyBulletDamage))
}

// gunPos returns the gun's world position including the bob offset.
func (e *Enemy) gunPos() geom.Vec2 {
	gx := e.pos.X + enemyGunOffsetX
	if !e.facingRight {
		gx -= enemyGunLeftShift
	}
	bob := math.Sin(e.animTimer*2*math.Pi) * enemyGunBobAmplitude
	return geom.Vec2{X: gx, Y: e.pos.Y + enemyGunOffsetY + bob}
}

// updateDead rolls the item drops exactly once, then keeps any un-picked
// drops live. A corpse takes no other actions.
func (e *Enemy) updateDead(dt float64, player *Player) {
	if !e.dropsHandled {
		if e.roller.Chance(e.medKitDropChance) {
			e.medKit = item.NewMedKit(e.dropPos())
		}
		if e.roller.Chance(e.ammoPackDropChance) {
			e.ammoPack = item.NewAmmoPack(e.dropPos())
		}
		e.dropsHandled = true
	}
	if e.medKit != nil {
		e.medKit.Update(dt, player)
	}
	if e.ammoPack != nil {
		e.ammoPack.Update(dt, player)
	}
}

func (e *Enemy) dropPos() (float64, float64) {
	return e.pos.X + e.roller.Range(-DropScatter, DropScatter),
		e.pos.Y + e.roller.Range(-DropScatter, DropScatter)
}

// TakeDamage applies damage and starts the hit flash. Damage against an
// already-dead enemy is ignored.
func (e *Enemy) TakeDamage(amount int) {
	if e.health <= 0 {
		return
	}
	e.health -= amount
	e.hitFlashTimer = hitFlashDuration
}

// Alive reports whether the enemy has health remaining.
func (e *Enemy) Alive() bool { return e.health > 0 }

// Health returns the enemy's current health. It may be negative.
func (e *Enemy) Health() int { return e.health }

// Pos returns the enemy's top-left world position.
func (e *Enemy) Pos() geom.Vec2 { return e.pos }

// SpawnPos returns the spawn origin the leash is measured from.
func (e *Enemy) SpawnPos() geom.Vec2 { return e.spawnPos }

// CollisionBox returns the box used for walls and player overlap.
func (e *Enemy) CollisionBox() geom.Rect {
	return geom.Rect{X: e.pos.X, Y: e.pos.Y, W: EnemySize, H: EnemySize}
}

// HitBox returns the wider box player bullets are tested against. Like the
// collision box it is anchored at the enemy position, not centered.
func (e *Enemy) HitBox() geom.Rect {
	return geom.Rect{
		X: e.pos.X,
		Y: e.pos.Y,
		W: EnemySize * EnemyHitBoxScale,
		H: EnemySize * EnemyHitBoxScale,
	}
}

// Idle reports whether the enemy held position last frame (leash exceeded).
func (e *Enemy) Idle() bool { return e.idle }

// FacingRight reports the enemy's horizontal facing.
func (e *Enemy) FacingRight() bool { return e.facingRight }

// AimAngle returns the gun angle toward the player in radians.
func (e *Enemy) AimAngle() float64 { return e.aimAngle }

// StateTime returns the accumulated run-animation phase.
func (e *Enemy) StateTime() float64 { return e.stateTime }

// HitFlashing reports whether the hit flash is active.
func (e *Enemy) HitFlashing() bool { return e.hitFlashTimer > 0 }

// Bullets returns the enemy's live bullets.
func (e *Enemy) Bullets() []*Bullet { return e.bullets }

// MedKit returns the dropped medkit, or nil.
func (e *Enemy) MedKit() *item.MedKit { return e.medKit }

// AmmoPack returns the dropped ammo pack, or nil.
func (e *Enemy) AmmoPack() *item.AmmoPack { return e.ammoPack }

// DropsSettled reports whether a dead enemy has nothing left to hand out:
// drops were rolled and anything dropped has been picked up.
func (e *Enemy) DropsSettled() bool {
	if !e.dropsHandled {
		return false
	}
	if e.medKit != nil && !e.medKit.PickedUp() {
		return false
	}
	if e.ammoPack != nil && !e.ammoPack.PickedUp() {
		return false
	}
	return true
}
