// Package geom provides the rectangle and segment tests shared by every
// collision check in the arena.
package geom

import "math"

// Epsilon is the length below which a direction vector is treated as zero.
const Epsilon = 1e-9

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(px, py float64) bool {
	return PointInRect(px, py, r)
}

// Overlaps reports whether r and o share interior area.
func (r Rect) Overlaps(o Rect) bool {
	return RectsOverlap(r, o)
}

// PointInRect is an inclusive bounds test.
func PointInRect(px, py float64, r Rect) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// RectsOverlap is a strict AABB overlap test: touching edges do not count.
func RectsOverlap(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// SegmentIntersectsRect reports whether the segment (x1,y1)-(x2,y2) touches r.
// Either endpoint inside r counts; otherwise the segment must properly cross
// one of the four edges. Collinear overlap with an edge is not a crossing.
func SegmentIntersectsRect(x1, y1, x2, y2 float64, r Rect) bool {
	if PointInRect(x1, y1, r) || PointInRect(x2, y2, r) {
		return true
	}

	left, right := r.X, r.X+r.W
	top, bottom := r.Y, r.Y+r.H

	return segmentsCross(x1, y1, x2, y2, left, top, left, bottom) ||
		segmentsCross(x1, y1, x2, y2, right, top, right, bottom) ||
		segmentsCross(x1, y1, x2, y2, left, top, right, top) ||
		segmentsCross(x1, y1, x2, y2, left, bottom, right, bottom)
}

// SweptHit tests a projectile that moved by (dx,dy) this tick and now sits at
// (x,y). The previous position is derived, not stored.
func SweptHit(x, y, dx, dy float64, r Rect) bool {
	return SegmentIntersectsRect(x-dx, y-dy, x, y, r)
}

// segmentsCross is the strict cross-product sign test for AB against CD.
func segmentsCross(ax, ay, bx, by, cx, cy, dx, dy float64) bool {
	d1 := cross(bx-ax, by-ay, cx-ax, cy-ay)
	d2 := cross(bx-ax, by-ay, dx-ax, dy-ay)
	d3 := cross(dx-cx, dy-cy, ax-cx, ay-cy)
	d4 := cross(dx-cx, dy-cy, bx-cx, by-cy)

	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func cross(ux, uy, vx, vy float64) float64 {
	return ux*vy - uy*vx
}

// Normalize returns the unit vector of (x,y) and its original length.
// ok is false for vectors shorter than Epsilon; callers skip the move then.
func Normalize(x, y float64) (nx, ny, length float64, ok bool) {
	length = math.Hypot(x, y)
	if length < Epsilon {
		return 0, 0, length, false
	}
	return x / length, y / length, length, true
}

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
