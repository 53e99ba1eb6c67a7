// Package hud draws the in-game overlay: health bar, ammo counter, and
// score. It reads only snapshot accessors from the player and mutates no
// game state.
package hud

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayerInfo is the read-only view of the player the HUD renders from.
type PlayerInfo interface {
	Health() int
	MagazineAmmo() int
	ReserveAmmo() int
	Reloading() bool
	Score() int
}

// Config positions and sizes the HUD elements.
type Config struct {
	Margin    float64 // Distance from the screen edges
	BarWidth  float64 // Health bar width
	BarHeight float64 // Health bar height
}

// DefaultConfig returns the default HUD layout.
func DefaultConfig() *Config {
	return &Config{
		Margin:    30,
		BarWidth:  200,
		BarHeight: 20,
	}
}

// HUD renders the player overlay.
type HUD struct {
	cfg *Config
}

// New creates a HUD with the given configuration.
func New(cfg *Config) *HUD {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &HUD{cfg: cfg}
}

// Draw renders the health bar bottom-left, the ammo counter bottom-right,
// and the score top-right.
func (h *HUD) Draw(screen *ebiten.Image, info PlayerInfo) {
	bounds := screen.Bounds()
	w := float64(bounds.Dx())
	sh := float64(bounds.Dy())

	// Health bar
	barX := h.cfg.Margin
	barY := sh - h.cfg.Margin - h.cfg.BarHeight
	frac := float64(info.Health()) / 100.0
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	vector.DrawFilledRect(screen,
		float32(barX), float32(barY),
		float32(h.cfg.BarWidth*frac), float32(h.cfg.BarHeight),
		color.NRGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff}, false)
	vector.StrokeRect(screen,
		float32(barX), float32(barY),
		float32(h.cfg.BarWidth), float32(h.cfg.BarHeight),
		2, color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}, false)

	// Ammo counter
	ammoText := fmt.Sprintf("%d|%d", info.MagazineAmmo(), info.ReserveAmmo())
	if info.Reloading() {
		ammoText = "RELOADING"
	}
	ebitenutil.DebugPrintAt(screen, ammoText,
		int(w-h.cfg.Margin)-len(ammoText)*6, int(sh-h.cfg.Margin)-16)

	// Score
	scoreText := fmt.Sprintf("SCORE %d", info.Score())
	ebitenutil.DebugPrintAt(screen, scoreText,
		int(w-h.cfg.Margin)-len(scoreText)*6, int(h.cfg.Margin))
}
