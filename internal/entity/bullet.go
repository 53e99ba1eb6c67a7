// Package entity implements the moving actors of the game: the player, the
// AI enemies, and the bullets both of them fire. Each firing entity owns
// the bullets it fired and prunes them itself; the level's collision layer
// is shared read-only between everyone.
package entity

import "chosenoffset.com/groundzero/internal/geom"

const (
	// BulletSpeed is the travel speed of every bullet in world units per
	// second. Bullets cross most of a screen in a single frame, which is
	// why collision against them is swept rather than point-sampled.
	BulletSpeed = 8000.0

	// BulletDespawnMargin extends the viewport bound bullets despawn at.
	BulletDespawnMargin = 50.0

	// EnemyBulletDamage is the damage carried by enemy-fired bullets.
	EnemyBulletDamage = 10
)

// Bullet is a straight-line moving point with a damage payload. PrevPos
// holds the position before the latest Advance so collision can test the
// full path traveled in the frame.
type Bullet struct {
	Pos     geom.Vec2
	PrevPos geom.Vec2
	Dir     geom.Vec2 // Unit direction
	Damage  int

	// Rotation is the flight angle in radians, used only for rendering.
	Rotation float64
}

// NewBullet creates a bullet at origin heading along dir.
func NewBullet(origin, dir geom.Vec2, rotation float64, damage int) *Bullet {
	return &Bullet{
		Pos:      origin,
		PrevPos:  origin,
		Dir:      dir,
		Damage:   damage,
		Rotation: rotation,
	}
}

// Advance moves the bullet for one frame, recording the previous position
// for swept collision tests.
func (b *Bullet) Advance(dt float64) {
	b.PrevPos = b.Pos
	b.Pos = b.Pos.Add(b.Dir.Scale(BulletSpeed * dt))
}

// OutOfBounds reports whether the bullet has left the view rectangle
// extended by the despawn margin.
func (b *Bullet) OutOfBounds(view geom.Rect) bool {
	bounds := view.Expand(BulletDespawnMargin)
	return b.Pos.X < bounds.X || b.Pos.X > bounds.Right() ||
		b.Pos.Y < bounds.Y || b.Pos.Y > bounds.Bottom()
}
