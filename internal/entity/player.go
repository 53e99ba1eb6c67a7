package entity

import (
	"math"

	"chosenoffset.com/groundzero/internal/geom"
	"chosenoffset.com/groundzero/internal/input"
	"chosenoffset.com/groundzero/internal/level"
	"chosenoffset.com/groundzero/internal/weapon"
)

const (
	// SpriteSize and SpriteScale derive every entity's world-space box
	// from its fixed sprite dimensions.
	SpriteSize  = 16.0
	SpriteScale = 4.0

	// PlayerSize is the side length of the player's bounding box.
	PlayerSize = SpriteSize * SpriteScale

	// PlayerSpeed is the base movement speed in world units per second.
	PlayerSpeed = 180.0

	// SprintMultiplier scales movement (and run animation) while sprinting.
	SprintMultiplier = 1.25

	// ShootCooldown is the minimum time between player shots. The rifle
	// itself has no rate limit beyond reloading.
	ShootCooldown = 0.2

	// MaxHealth is the health cap for every entity.
	MaxHealth = 100
)

// Player is the input-driven entity. It owns its rifle, its outgoing
// bullets, and the crosshair the camera and aim are derived from.
type Player struct {
	pos    geom.Vec2
	speed  float64
	health int
	score  int

	facingRight bool
	moving      bool
	stateTime   float64

	cooldownTimer   float64
	crosshairOffset geom.Vec2

	rifle   *weapon.Rifle
	bullets []*Bullet

	lvl *level.Level
}

// NewPlayer creates a player at the given world position.
func NewPlayer(x, y float64, lvl *level.Level) *Player {
	return &Player{
		pos:           geom.Vec2{X: x, Y: y},
		speed:         PlayerSpeed,
		health:        MaxHealth,
		facingRight:   true,
		cooldownTimer: ShootCooldown,
		rifle:         weapon.New(x, y),
		lvl:           lvl,
	}
}

// Update advances the player one frame: movement with axis-separated wall
// collision, crosshair and aim, reloading, shooting, and pruning of bullets
// that left the view. A dead player does nothing.
func (p *Player) Update(dt float64, in input.State, view geom.Rect) {
	if p.health <= 0 {
		return
	}

	moveDelta := dt
	if in.Sprint {
		moveDelta *= SprintMultiplier
	}
	p.stateTime += moveDelta // sprinting speeds the run animation up too

	proposed := p.pos
	p.moving = false
	if in.MoveUp {
		proposed.Y -= p.speed * moveDelta
		p.moving = true
	}
	if in.MoveDown {
		proposed.Y += p.speed * moveDelta
		p.moving = true
	}
	if in.MoveLeft {
		proposed.X -= p.speed * moveDelta
		p.moving = true
	}
	if in.MoveRight {
		proposed.X += p.speed * moveDelta
		p.moving = true
	}
	p.pos = moveAxisSeparated(p.lvl, p.pos, proposed, PlayerSize, PlayerSize)

	p.cooldownTimer += dt

	if in.Reload {
		p.rifle.TriggerReload()
	}

	p.updateCrosshair(in, view)

	angle := math.Atan2(p.crosshairOffset.Y, p.crosshairOffset.X)
	if !p.facingRight {
		angle = math.Pi - angle
	}
	p.rifle.Update(p.pos.X, p.pos.Y, p.facingRight, angle, dt)

	if in.Fire && p.cooldownTimer >= ShootCooldown {
		if shot := p.rifle.Shoot(); shot != nil {
			p.bullets = append(p.bullets, NewBullet(shot.Origin, shot.Dir, shot.Rotation, shot.Damage))
			p.cooldownTimer = 0
		}
	}

	kept := p.bullets[:0]
	for _, b := range p.bullets {
		b.Advance(dt)
		if !b.OutOfBounds(view) {
			kept = append(kept, b)
		}
	}
	p.bullets = kept
}

// updateCrosshair applies the frame's look delta and clamps the crosshair
// to the view rectangle. Facing follows the crosshair.
func (p *Player) updateCrosshair(in input.State, view geom.Rect) {
	p.crosshairOffset.X += in.LookDX
	p.crosshairOffset.Y += in.LookDY

	c := p.Center()
	target := c.Add(p.crosshairOffset)
	target.X = math.Max(view.X, math.Min(view.Right(), target.X))
	target.Y = math.Max(view.Y, math.Min(view.Bottom(), target.Y))
	p.crosshairOffset = target.Sub(c)

	p.facingRight = target.X >= c.X
}

// TakeDamage applies damage. Health may go negative; any value at or below
// zero counts as dead.
func (p *Player) TakeDamage(amount int) {
	p.health -= amount
}

// Heal restores health, clamped at the cap.
func (p *Player) Heal(amount int) {
	p.health = min(MaxHealth, p.health+amount)
}

// AddReserveAmmo adds rounds to the rifle's reserve.
func (p *Player) AddReserveAmmo(amount int) {
	p.rifle.AddReserve(amount)
}

// AddScore adds to the player's score.
func (p *Player) AddScore(amount int) {
	p.score += amount
}

// PushBy shifts the player's position, bypassing collision. Used by the
// enemy push-apart resolution.
func (p *Player) PushBy(dx, dy float64) {
	p.pos.X += dx
	p.pos.Y += dy
}

// SetPos teleports the player. Used by the frame-level collision rollback.
func (p *Player) SetPos(pos geom.Vec2) { p.pos = pos }

// Pos returns the player's top-left world position.
func (p *Player) Pos() geom.Vec2 { return p.pos }

// Bounds returns the player's bounding box.
func (p *Player) Bounds() geom.Rect {
	return geom.Rect{X: p.pos.X, Y: p.pos.Y, W: PlayerSize, H: PlayerSize}
}

// Center returns the center of the player's bounding box.
func (p *Player) Center() geom.Vec2 { return p.Bounds().Center() }

// Alive reports whether the player has health remaining.
func (p *Player) Alive() bool { return p.health > 0 }

// Health returns the player's current health.
func (p *Player) Health() int { return p.health }

// Score returns the player's score.
func (p *Player) Score() int { return p.score }

// FacingRight reports the player's horizontal facing.
func (p *Player) FacingRight() bool { return p.facingRight }

// Moving reports whether a movement intent was active last frame.
func (p *Player) Moving() bool { return p.moving }

// StateTime returns the accumulated animation phase.
func (p *Player) StateTime() float64 { return p.stateTime }

// CrosshairPos returns the crosshair's world position.
func (p *Player) CrosshairPos() geom.Vec2 {
	return p.Center().Add(p.crosshairOffset)
}

// Rifle returns the player's weapon.
func (p *Player) Rifle() *weapon.Rifle { return p.rifle }

// MagazineAmmo returns the rifle's ready-to-fire rounds.
func (p *Player) MagazineAmmo() int { return p.rifle.MagazineAmmo() }

// ReserveAmmo returns the rifle's reserve rounds.
func (p *Player) ReserveAmmo() int { return p.rifle.ReserveAmmo() }

// Reloading reports whether the rifle is mid-reload.
func (p *Player) Reloading() bool { return p.rifle.Reloading() }

// Bullets returns the player's live bullets.
func (p *Player) Bullets() []*Bullet { return p.bullets }

// SetBullets replaces the live bullet list. Combat resolution uses this to
// drop bullets that hit something.
func (p *Player) SetBullets(bullets []*Bullet) { p.bullets = bullets }
