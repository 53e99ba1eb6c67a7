// Package geom provides the 2D math primitives shared by the gameplay
// packages: vectors, axis-aligned rectangles, and the segment-vs-rectangle
// test used for swept bullet collision.
package geom

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the maximum X edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the maximum Y edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Overlaps reports whether r and o share any area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// ContainsPoint reports whether p lies strictly inside r. Points on the
// edge do not count, matching the bullet hit test this backs.
func (r Rect) ContainsPoint(p Vec2) bool {
	return p.X > r.X && p.X < r.Right() &&
		p.Y > r.Y && p.Y < r.Bottom()
}

// Expand returns r grown by margin on every side.
func (r Rect) Expand(margin float64) Rect {
	return Rect{r.X - margin, r.Y - margin, r.W + 2*margin, r.H + 2*margin}
}

// SegmentIntersectsRect reports whether the segment a->b touches or crosses
// the rectangle, including the case where either endpoint is inside it.
// Uses Liang-Barsky clipping of the parametric segment against the four
// rectangle slabs.
func SegmentIntersectsRect(a, b Vec2, r Rect) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y

	tMin, tMax := 0.0, 1.0
	// Each pair is (p, q) for one rectangle edge: the segment crosses the
	// edge plane at t = q/p.
	edges := [4][2]float64{
		{-dx, a.X - r.X},
		{dx, r.Right() - a.X},
		{-dy, a.Y - r.Y},
		{dy, r.Bottom() - a.Y},
	}

	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			// Segment parallel to this edge; outside the slab entirely?
			if q < 0 {
				return false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > tMax {
				return false
			}
			if t > tMin {
				tMin = t
			}
		} else {
			if t < tMin {
				return false
			}
			if t < tMax {
				tMax = t
			}
		}
	}

	return tMin <= tMax
}
