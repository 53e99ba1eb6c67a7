package weapon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmmoConservedAcrossReload(t *testing.T) {
	r := NewWithAmmo(0, 0, 10, 25)
	before := r.MagazineAmmo() + r.ReserveAmmo()

	r.TriggerReload()
	require.True(t, r.Reloading())
	r.Update(0, 0, true, 0, ReloadTime)

	assert.False(t, r.Reloading())
	assert.Equal(t, MagazineCapacity, r.MagazineAmmo())
	assert.Equal(t, 5, r.ReserveAmmo())
	assert.Equal(t, before, r.MagazineAmmo()+r.ReserveAmmo())
}

func TestReloadWithShortReserve(t *testing.T) {
	r := NewWithAmmo(0, 0, 0, 7)
	// Empty magazine with reserve starts the reload automatically.
	r.Update(0, 0, true, 0, 0.01)
	require.True(t, r.Reloading())

	r.Update(0, 0, true, 0, ReloadTime)
	assert.Equal(t, 7, r.MagazineAmmo())
	assert.Equal(t, 0, r.ReserveAmmo())
}

func TestShootFailsWhileReloading(t *testing.T) {
	r := NewWithAmmo(0, 0, 10, 90)
	r.TriggerReload()
	assert.Nil(t, r.Shoot())
	assert.Equal(t, 10, r.MagazineAmmo(), "failed shot must not consume ammo")
}

func TestShootNeverGoesNegative(t *testing.T) {
	r := NewWithAmmo(0, 0, 2, 0)
	require.NotNil(t, r.Shoot())
	require.NotNil(t, r.Shoot())
	assert.Nil(t, r.Shoot())
	assert.Equal(t, 0, r.MagazineAmmo())
}

func TestManualReloadNoOps(t *testing.T) {
	// Full magazine: ignored.
	r := NewWithAmmo(0, 0, MagazineCapacity, 90)
	r.TriggerReload()
	assert.False(t, r.Reloading())

	// Empty reserve: ignored.
	r = NewWithAmmo(0, 0, 10, 0)
	r.TriggerReload()
	assert.False(t, r.Reloading())

	// Already reloading: the timer does not restart.
	r = NewWithAmmo(0, 0, 10, 90)
	r.TriggerReload()
	r.Update(0, 0, true, 0, ReloadTime/2)
	r.TriggerReload()
	r.Update(0, 0, true, 0, ReloadTime/2)
	assert.False(t, r.Reloading(), "second trigger must not extend the reload")
	assert.Equal(t, MagazineCapacity, r.MagazineAmmo())
}

func TestNoAutoReloadWithoutReserve(t *testing.T) {
	r := NewWithAmmo(0, 0, 0, 0)
	r.Update(0, 0, true, 0, 1.0)
	assert.False(t, r.Reloading())
	assert.Nil(t, r.Shoot())
}

func TestShotGeometry(t *testing.T) {
	r := NewWithAmmo(100, 200, 30, 90)
	r.Update(100, 200, true, 0, 0)

	shot := r.Shoot()
	require.NotNil(t, shot)
	assert.InDelta(t, 100+MuzzleDistance, shot.Origin.X, 1e-9)
	assert.InDelta(t, 200.0, shot.Origin.Y, 1e-9)
	assert.InDelta(t, 1.0, shot.Dir.X, 1e-9)
	assert.Equal(t, ShotDamage, shot.Damage)

	// Facing left mirrors the X component of both origin and direction.
	r.Update(100, 200, false, 0, 0)
	shot = r.Shoot()
	require.NotNil(t, shot)
	assert.InDelta(t, 100-MuzzleDistance, shot.Origin.X, 1e-9)
	assert.InDelta(t, -1.0, shot.Dir.X, 1e-9)
}

func TestMagazineExhaustionAndReload(t *testing.T) {
	r := NewWithAmmo(0, 0, 30, 100)

	for i := 0; i < 30; i++ {
		require.NotNil(t, r.Shoot(), "shot %d should fire", i+1)
	}
	assert.Nil(t, r.Shoot(), "31st shot must return no bullet")
	assert.Equal(t, 0, r.MagazineAmmo())

	r.TriggerReload()
	r.Update(0, 0, true, 0, ReloadTime)

	assert.Equal(t, 30, r.MagazineAmmo())
	assert.Equal(t, 70, r.ReserveAmmo())
}
