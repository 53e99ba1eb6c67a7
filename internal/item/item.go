// Package item implements the pickups enemies drop on death: medkits and
// rifle ammo packs. A pickup sits where it dropped until the player's box
// overlaps it, applies its effect once, and is done; the picked-up flag
// never resets.
package item

import (
	"math"

	"chosenoffset.com/groundzero/internal/geom"
)

const (
	// MedKitSize is the side length of a medkit's pickup box.
	MedKitSize = 16.0

	// AmmoPackSize is the side length of an ammo pack's pickup box.
	AmmoPackSize = 40.0

	// AmmoPackRounds is the reserve ammo granted by one ammo pack.
	AmmoPackRounds = 30

	// MaxHealth is the health a medkit restores the collector to.
	MaxHealth = 100

	bobAmplitude = 2.0
	bobFrequency = math.Pi
)

// Collector is the entity that can pick items up. Satisfied by the player.
type Collector interface {
	Bounds() geom.Rect
	Health() int
	Heal(amount int)
	AddReserveAmmo(amount int)
}

// MedKit restores the collector to full health on pickup.
type MedKit struct {
	pos       geom.Vec2
	pickedUp  bool
	animTimer float64
}

// NewMedKit creates a medkit at the given world position.
func NewMedKit(x, y float64) *MedKit {
	return &MedKit{pos: geom.Vec2{X: x, Y: y}}
}

// Update advances the bob animation and applies the pickup when the
// collector overlaps it. A collector at full health walks over the kit
// without consuming it.
func (m *MedKit) Update(dt float64, c Collector) {
	m.animTimer += dt
	if m.pickedUp || c.Health() >= MaxHealth {
		return
	}
	if m.Bounds().Overlaps(c.Bounds()) {
		c.Heal(MaxHealth)
		m.pickedUp = true
	}
}

// Bounds returns the pickup box.
func (m *MedKit) Bounds() geom.Rect {
	return geom.Rect{X: m.pos.X, Y: m.pos.Y, W: MedKitSize, H: MedKitSize}
}

// Pos returns the medkit's world position.
func (m *MedKit) Pos() geom.Vec2 { return m.pos }

// PickedUp reports whether the medkit has been consumed.
func (m *MedKit) PickedUp() bool { return m.pickedUp }

// BobOffset returns the vertical hover offset for rendering.
func (m *MedKit) BobOffset() float64 {
	return math.Sin(m.animTimer*bobFrequency) * bobAmplitude
}

// AmmoPack adds rifle reserve ammo on pickup.
type AmmoPack struct {
	pos       geom.Vec2
	pickedUp  bool
	animTimer float64
}

// NewAmmoPack creates an ammo pack at the given world position.
func NewAmmoPack(x, y float64) *AmmoPack {
	return &AmmoPack{pos: geom.Vec2{X: x, Y: y}}
}

// Update advances the bob animation and applies the pickup when the
// collector overlaps it.
func (a *AmmoPack) Update(dt float64, c Collector) {
	a.animTimer += dt
	if a.pickedUp {
		return
	}
	if a.Bounds().Overlaps(c.Bounds()) {
		c.AddReserveAmmo(AmmoPackRounds)
		a.pickedUp = true
	}
}

// Bounds returns the pickup box.
func (a *AmmoPack) Bounds() geom.Rect {
	return geom.Rect{X: a.pos.X, Y: a.pos.Y, W: AmmoPackSize, H: AmmoPackSize}
}

// Pos returns the ammo pack's world position.
func (a *AmmoPack) Pos() geom.Vec2 { return a.pos }

// PickedUp reports whether the ammo pack has been consumed.
func (a *AmmoPack) PickedUp() bool { return a.pickedUp }

// BobOffset returns the vertical hover offset for rendering.
func (a *AmmoPack) BobOffset() float64 {
	return math.Sin(a.animTimer*bobFrequency) * bobAmplitude
}
