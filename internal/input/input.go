// Package input defines the per-frame input snapshot passed into the
// gameplay update. Core packages never poll the input device directly; the
// presentation layer fills one State per frame and hands it down.
package input

// State captures every input signal the gameplay code reads in one frame.
type State struct {
	MoveUp    bool
	MoveDown  bool
	MoveLeft  bool
	MoveRight bool

	Sprint bool // Hold to move faster
	Reload bool // Request a magazine reload
	Fire   bool // Trigger held

	// Mouse motion since the previous frame, in screen units.
	LookDX float64
	LookDY float64
}
