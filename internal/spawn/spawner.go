// Package spawn manages the enemy population: periodic off-screen spawning
// and the resolution of player bullets against enemies. Retention of dead
// and far-away enemies is an explicit policy knob; the defaults reproduce
// the observed behavior of keeping everything forever.
package spawn

import (
	"chosenoffset.com/groundzero/internal/dice"
	"chosenoffset.com/groundzero/internal/entity"
	"chosenoffset.com/groundzero/internal/geom"
	"chosenoffset.com/groundzero/internal/level"
)

// Config tunes spawning, scoring, and retention.
type Config struct {
	SpawnInterval float64 // Seconds between spawn rolls
	SpawnChance   float64 // Probability a roll produces a wave
	MinPerWave    int     // Minimum enemies per wave
	MaxPerWave    int     // Maximum enemies per wave
	EdgeMargin    float64 // Distance outside the viewport enemies appear at
	KillScore     int     // Score awarded per enemy killed by a player bullet
	MaxEnemies    int     // Population cap; 0 means unlimited
	RetainDead    bool    // Keep corpses whose drops are settled
}

// DefaultConfig returns the observed gameplay defaults.
func DefaultConfig() Config {
	return Config{
		SpawnInterval: 5.0,
		SpawnChance:   0.5,
		MinPerWave:    1,
		MaxPerWave:    2,
		EdgeMargin:    50.0,
		KillScore:     100,
		MaxEnemies:    0,
		RetainDead:    true,
	}
}

// Spawner owns the enemy collection.
type Spawner struct {
	cfg     Config
	lvl     *level.Level
	roller  *dice.Roller
	enemies []*entity.Enemy

	spawnTimer float64
}

// New creates a spawner with the given configuration.
func New(cfg Config, lvl *level.Level, roller *dice.Roller) *Spawner {
	return &Spawner{
		cfg:    cfg,
		lvl:    lvl,
		roller: roller,
	}
}

// Update rolls for a spawn wave when the interval elapses, then updates
// every enemy. With RetainDead disabled, corpses whose drops are settled
// are pruned afterwards.
func (s *Spawner) Update(dt float64, player *entity.Player, view geom.Rect) {
	s.spawnTimer += dt
	if s.spawnTimer >= s.cfg.SpawnInterval {
		s.spawnTimer = 0
		if s.roller.Chance(s.cfg.SpawnChance) {
			count := s.roller.IntRange(s.cfg.MinPerWave, s.cfg.MaxPerWave)
			for i := 0; i < count; i++ {
				if s.cfg.MaxEnemies > 0 && len(s.enemies) >= s.cfg.MaxEnemies {
					break
				}
				s.spawnEnemy(view)
			}
		}
	}

	for _, e := range s.enemies {
		e.Update(dt, player, view)
	}

	if !s.cfg.RetainDead {
		kept := s.enemies[:0]
		for _, e := range s.enemies {
			if e.Alive() || !e.DropsSettled() {
				kept = append(kept, e)
			}
		}
		s.enemies = kept
	}
}

// spawnEnemy places a new enemy just outside a uniformly chosen edge of the
// viewport, uniformly positioned along that edge.
func (s *Spawner) spawnEnemy(view geom.Rect) {
	m := s.cfg.EdgeMargin
	var x, y float64
	switch s.roller.IntN(4) {
	case 0: // left
		x = view.X - m
		y = s.roller.Range(view.Y, view.Bottom())
	case 1: // right
		x = view.Right() + m
		y = s.roller.Range(view.Y, view.Bottom())
	case 2: // top
		y = view.Y - m
		x = s.roller.Range(view.X, view.Right())
	default: // bottom
		y = view.Bottom() + m
		x = s.roller.Range(view.X, view.Right())
	}
	s.enemies = append(s.enemies, entity.NewEnemy(x, y, s.lvl, s.roller))
}

// ResolvePlayerBullets tests every player bullet against every live enemy.
// A bullet's center point hitting an enemy's hit box damages that enemy and
// removes the bullet; the scan continues so one enemy can absorb several
// bullets in the same tick, but a bullet never hits more than one enemy.
// Kills award the configured score.
func (s *Spawner) ResolvePlayerBullets(player *entity.Player) {
	bullets := player.Bullets()
	kept := bullets[:0]
	for _, b := range bullets {
		hit := false
		for _, e := range s.enemies {
			if !e.Alive() {
				continue
			}
			if e.HitBox().ContainsPoint(b.Pos) {
				e.TakeDamage(b.Damage)
				if !e.Alive() {
					player.AddScore(s.cfg.KillScore)
				}
				hit = true
				break
			}
		}
		if !hit {
			kept = append(kept, b)
		}
	}
	player.SetBullets(kept)
}

// Enemies returns the enemy collection for rendering and inspection.
func (s *Spawner) Enemies() []*entity.Enemy { return s.enemies }

// Count returns the current population, dead enemies included.
func (s *Spawner) Count() int { return len(s.enemies) }

// Add inserts an externally created enemy. Used by tests and scripted
// encounters.
func (s *Spawner) Add(e *entity.Enemy) {
	s.enemies = append(s.enemies, e)
}
