package entity

import (
	"chosenoffset.com/groundzero/internal/geom"
	"chosenoffset.com/groundzero/internal/level"
)

// moveAxisSeparated resolves a proposed move against the level one axis at
// a time: the X move is accepted only if the box at (proposedX, y) is
// wall-free, then the Y move is tested with the accepted X held. A diagonal
// move into a wall still proceeds along the unblocked axis, which is what
// makes entities slide along walls instead of sticking to them.
func moveAxisSeparated(lvl *level.Level, pos, proposed geom.Vec2, w, h float64) geom.Vec2 {
	out := pos
	if boxClear(lvl, proposed.X, out.Y, w, h) {
		out.X = proposed.X
	}
	if boxClear(lvl, out.X, proposed.Y, w, h) {
		out.Y = proposed.Y
	}
	return out
}

// boxClear reports whether all four corners of the box are outside walls.
func boxClear(lvl *level.Level, x, y, w, h float64) bool {
	return !lvl.IsWallAt(x, y) &&
		!lvl.IsWallAt(x+w, y) &&
		!lvl.IsWallAt(x, y+h) &&
		!lvl.IsWallAt(x+w, y+h)
}
