package entity

import "math"

// Point is an absolute screen position in cells.
type Point struct {
	X, Y int
}

// DistanceTo returns the straight-line distance between two points.
func (p Point) DistanceTo(o Point) float64 {
	return math.Hypot(float64(o.X-p.X), float64(o.Y-p.Y))
}

// Rect represents a slot's position and size relative to its surface.
type Rect struct {
	X, Y int // Top-left position
	W, H int // Width and height
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Extent returns the rectangle's length along the split axis of o.
// Horizontal splits divide the width, vertical splits divide the height.
func (r Rect) Extent(o Orientation) int {
	if o == OrientationVertical {
		return r.H
	}
	return r.W
}

// Split divides the rectangle along o, giving the first part `first` cells.
func (r Rect) Split(o Orientation, first int) (Rect, Rect) {
	if o == OrientationVertical {
		return Rect{X: r.X, Y: r.Y, W: r.W, H: first},
			Rect{X: r.X, Y: r.Y + first, W: r.W, H: r.H - first}
	}
	return Rect{X: r.X, Y: r.Y, W: first, H: r.H},
		Rect{X: r.X + first, Y: r.Y, W: r.W - first, H: r.H}
}
