// Package weapon implements the player's rifle: a magazine/reserve ammo
// pool with a timed reload state machine. The rifle spawns shots on demand;
// the rate-of-fire cooldown between shots belongs to the entity holding it.
package weapon

import (
	"math"

	"chosenoffset.com/groundzero/internal/geom"
)

const (
	// MagazineCapacity is the number of rounds a full magazine holds.
	MagazineCapacity = 30

	// DefaultReserveAmmo is the reserve the rifle starts with.
	DefaultReserveAmmo = 90

	// ReloadTime is the fixed reload duration in seconds.
	ReloadTime = 1.2

	// MuzzleDistance is how far along the aim the shot origin sits.
	MuzzleDistance = 30.0

	// ShotDamage is the damage carried by each rifle bullet.
	ShotDamage = 15
)

// Shot describes a bullet leaving the rifle: where it starts, its unit
// direction, and the damage it carries. The entity that fired turns this
// into a live bullet it owns.
type Shot struct {
	Origin   geom.Vec2
	Dir      geom.Vec2
	Rotation float64 // Aim angle in radians, for rendering
	Damage   int
}

// Rifle tracks ammo, the reload state machine, and the current aim pose.
type Rifle struct {
	pos         geom.Vec2
	facingRight bool
	aimAngle    float64 // Radians; mirrored convention when facing left

	magazineAmmo int
	reserveAmmo  int
	reloading    bool
	reloadTimer  float64

	animTimer float64
}

// New creates a rifle with a full magazine and the default reserve.
func New(x, y float64) *Rifle {
	return NewWithAmmo(x, y, MagazineCapacity, DefaultReserveAmmo)
}

// NewWithAmmo creates a rifle with a specific ammo loadout.
func NewWithAmmo(x, y float64, magazine, reserve int) *Rifle {
	if magazine > MagazineCapacity {
		magazine = MagazineCapacity
	}
	return &Rifle{
		pos:          geom.Vec2{X: x, Y: y},
		facingRight:  true,
		magazineAmmo: magazine,
		reserveAmmo:  reserve,
	}
}

// Update moves the rifle to the owner's pose and advances the reload state
// machine. An empty magazine with reserve available starts a reload on its
// own; when the reload timer expires the transfer happens atomically.
func (r *Rifle) Update(x, y float64, facingRight bool, aimAngle, dt float64) {
	r.pos = geom.Vec2{X: x, Y: y}
	r.facingRight = facingRight
	r.aimAngle = aimAngle
	r.animTimer += dt

	if !r.reloading && r.magazineAmmo == 0 && r.reserveAmmo > 0 {
		r.reloading = true
		r.reloadTimer = 0
	}

	if r.reloading {
		r.reloadTimer += dt
		if r.reloadTimer >= ReloadTime {
			needed := MagazineCapacity - r.magazineAmmo
			loaded := min(needed, r.reserveAmmo)
			r.magazineAmmo += loaded
			r.reserveAmmo -= loaded
			r.reloading = false
			r.reloadTimer = 0
		}
	}
}

// TriggerReload starts a manual reload. Ignored while already reloading,
// when the magazine is full, or when the reserve is empty.
func (r *Rifle) TriggerReload() {
	if !r.reloading && r.magazineAmmo < MagazineCapacity && r.reserveAmmo > 0 {
		r.reloading = true
		r.reloadTimer = 0
	}
}

// Shoot fires one round. Returns nil while reloading or with an empty
// magazine; otherwise it decrements the magazine and describes the shot.
func (r *Rifle) Shoot() *Shot {
	if r.reloading || r.magazineAmmo <= 0 {
		return nil
	}
	r.magazineAmmo--

	flip := 1.0
	if !r.facingRight {
		flip = -1.0
	}
	cos := math.Cos(r.aimAngle)
	sin := math.Sin(r.aimAngle)

	return &Shot{
		Origin: geom.Vec2{
			X: r.pos.X + cos*MuzzleDistance*flip,
			Y: r.pos.Y + sin*MuzzleDistance,
		},
		Dir:      geom.Vec2{X: cos * flip, Y: sin},
		Rotation: r.aimAngle,
		Damage:   ShotDamage,
	}
}

// AddReserve adds rounds to the reserve pool.
func (r *Rifle) AddReserve(amount int) {
	r.reserveAmmo += amount
}

// MagazineAmmo returns the rounds ready to fire.
func (r *Rifle) MagazineAmmo() int { return r.magazineAmmo }

// ReserveAmmo returns the rounds available for reloading.
func (r *Rifle) ReserveAmmo() int { return r.reserveAmmo }

// Reloading reports whether a reload is in progress.
func (r *Rifle) Reloading() bool { return r.reloading }

// AimAngle returns the current aim angle in radians.
func (r *Rifle) AimAngle() float64 { return r.aimAngle }

// FacingRight reports the rifle's horizontal facing.
func (r *Rifle) FacingRight() bool { return r.facingRight }

// BobOffset returns the vertical bobbing offset for rendering.
func (r *Rifle) BobOffset() float64 {
	return math.Sin(r.animTimer*2*math.Pi) * 0.5
}
